package admin

import (
	"context"

	"github.com/empregga/eva-portal/model/db"
	"github.com/empregga/eva-portal/model/dto"
)

type ServiceGroup struct {
	KnowledgeService *KnowledgeService
	BlindSpotService *BlindSpotService
	AnalyticsService *AnalyticsService
	AuthService      *AuthService
	UploadService    *UploadService
}

// Interfaces locais sobre o dao; os testes injetam implementações em memória.

type knowledgeStore interface {
	Insert(ctx context.Context, unit *db.KnowledgeUnit) error
	GetByID(ctx context.Context, id string) (*db.KnowledgeUnit, error)
	Update(ctx context.Context, unit *db.KnowledgeUnit) error
	SetDeleted(ctx context.Context, ids []string, deleted bool) (int64, error)
	ListWithFeedback(ctx context.Context) ([]dto.KnowledgeWithFeedback, error)
	SearchCuration(ctx context.Context, embedding []float32, limit int) ([]dto.CurationSearchResult, error)
	UpdateEmbedding(ctx context.Context, id string, embedding []float32) error
	Count(ctx context.Context) (int64, error)
}

type blindSpotStore interface {
	List(ctx context.Context, limit int) ([]db.BlindSpot, error)
	SetResolved(ctx context.Context, id string) (int64, error)
}

type adminStore interface {
	GetByEmail(ctx context.Context, email string) (*db.Admin, error)
	Insert(ctx context.Context, admin *db.Admin) error
	Count(ctx context.Context) (int64, error)
}
