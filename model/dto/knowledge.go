package dto

import (
	"time"

	"github.com/empregga/eva-portal/model/db"
	"github.com/empregga/eva-portal/model/enum"
)

// SearchResult é uma linha da busca vetorial: a unidade com a similaridade
// de cosseno (1 - distância) calculada pelo Postgres.
type SearchResult struct {
	Id                 string  `db:"id" json:"id"`
	Title              string  `db:"title" json:"title"`
	ProblemDescription string  `db:"problem_description" json:"problemDescription"`
	OfficialResolution string  `db:"official_resolution" json:"officialResolution"`
	Similarity         float64 `db:"similarity" json:"similarity"`
}

// CurationSearchResult estende o SearchResult com os metadados exibidos na
// busca semântica da tela de curadoria.
type CurationSearchResult struct {
	SearchResult
	Category  enum.Category   `db:"category" json:"category"`
	Author    string          `db:"author" json:"author"`
	Status    enum.UnitStatus `db:"status" json:"status"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time       `db:"updated_at" json:"updatedAt"`
}

// KnowledgeWithFeedback é uma linha da listagem de curadoria: a unidade com
// os contadores de feedback agregados na leitura.
type KnowledgeWithFeedback struct {
	Id                 string          `db:"id" json:"id"`
	Title              string          `db:"title" json:"title"`
	Category           enum.Category   `db:"category" json:"category"`
	ProblemDescription string          `db:"problem_description" json:"problemDescription"`
	OfficialResolution string          `db:"official_resolution" json:"officialResolution"`
	Tags               db.StringList   `db:"tags" json:"tags"`
	TargetAudience     db.StringList   `db:"target_audience" json:"targetAudience"`
	Author             string          `db:"author" json:"author"`
	Status             enum.UnitStatus `db:"status" json:"status"`
	Version            int             `db:"version" json:"version"`
	ZammadRef          *string         `db:"zammad_ref" json:"zammadRef,omitempty"`
	CreatedAt          time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time       `db:"updated_at" json:"updatedAt"`
	DeletedAt          *time.Time      `db:"deleted_at" json:"deletedAt,omitempty"`
	PositiveFeedbacks  int             `db:"positive_feedbacks" json:"positiveFeedbacks"`
	NegativeFeedbacks  int             `db:"negative_feedbacks" json:"negativeFeedbacks"`
}

// KnowledgeListItem é o item final da listagem, com a classificação de saúde
// computada a cada leitura (nunca persistida).
type KnowledgeListItem struct {
	KnowledgeWithFeedback
	Health enum.HealthStatus `json:"health"`
	// DaysRemaining é a variante legada de exibição (janela de validade em
	// dias); mantida apenas para a listagem antiga. Deprecated: usar Health.
	DaysRemaining int `json:"daysRemaining"`
}

// WorstUnit é uma unidade com mais feedbacks negativos (analytics).
type WorstUnit struct {
	Id            string `db:"id" json:"id"`
	Title         string `db:"title" json:"title"`
	NegativeCount int    `db:"negative_count" json:"negativeCount"`
}

// AnalyticsOverview agrega os contadores exibidos no dashboard.
type AnalyticsOverview struct {
	TotalQueries   int64       `json:"totalQueries"`
	TotalHandoffs  int64       `json:"totalHandoffs"`
	ResolutionRate int         `json:"resolutionRate"`
	WorstUnits     []WorstUnit `json:"worstUnits"`
}
