package db

import (
	"time"

	"github.com/empregga/eva-portal/model/enum"
	"github.com/pgvector/pgvector-go"
)

// KnowledgeUnit é um par problema/resolução curado.
// Campos que podem ser NULL usam ponteiro.
type KnowledgeUnit struct {
	Id                 string           `db:"id" json:"id"`
	Title              string           `db:"title" json:"title"`
	Category           enum.Category    `db:"category" json:"category"`
	ProblemDescription string           `db:"problem_description" json:"problemDescription"`
	OfficialResolution string           `db:"official_resolution" json:"officialResolution"`
	Tags               StringList       `db:"tags" json:"tags"`
	TargetAudience     StringList       `db:"target_audience" json:"targetAudience"`
	Author             string           `db:"author" json:"author"`
	Status             enum.UnitStatus  `db:"status" json:"status"`
	Version            int              `db:"version" json:"version"`
	ZammadRef          *string          `db:"zammad_ref" json:"zammadRef,omitempty"`
	Embedding          *pgvector.Vector `db:"embedding" json:"-"`
	CreatedAt          time.Time        `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time        `db:"updated_at" json:"updatedAt"`
	// DeletedAt não nulo marca soft delete: a unidade sai da busca e das
	// listagens padrão, mas o histórico de feedback é preservado.
	DeletedAt *time.Time `db:"deleted_at" json:"deletedAt,omitempty"`
}

func (KnowledgeUnit) TableName() string {
	return `knowledge_units`
}
