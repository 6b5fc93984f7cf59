package user

import (
	"context"

	"github.com/empregga/eva-portal/model/db"
	"github.com/empregga/eva-portal/model/dto"
)

type ServiceGroup struct {
	ChatService     *ChatService
	FeedbackService *FeedbackService
	HandoffService  *HandoffService
}

// Interfaces locais sobre o dao; os testes injetam implementações em memória.

type knowledgeSearcher interface {
	SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]dto.SearchResult, error)
}

type blindSpotStore interface {
	Insert(ctx context.Context, spot *db.BlindSpot) error
}

type eventStore interface {
	Insert(ctx context.Context, event *db.SystemEvent) error
}

type feedbackStore interface {
	InsertBatch(ctx context.Context, feedbacks []db.KnowledgeFeedback) error
}
