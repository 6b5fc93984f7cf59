package db

import "time"

// KnowledgeFeedback é uma reação (positiva/negativa) a uma unidade citada em
// uma resposta do chat. Tabela append-only: não há update nem delete.
type KnowledgeFeedback struct {
	Id              string    `db:"id" json:"id"`
	KnowledgeUnitId string    `db:"knowledge_unit_id" json:"knowledgeUnitId"`
	IsPositive      bool      `db:"is_positive" json:"isPositive"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}

func (KnowledgeFeedback) TableName() string {
	return `knowledge_feedbacks`
}
