package user

import (
	"context"
	"time"

	"github.com/empregga/eva-portal/dao"
	"github.com/empregga/eva-portal/global"
	"github.com/empregga/eva-portal/model/common"
	"github.com/empregga/eva-portal/model/db"
	"github.com/empregga/eva-portal/model/enum"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type FeedbackService struct {
	log       *logrus.Logger
	feedbacks feedbackStore
}

func NewFeedbackService() *FeedbackService {
	return &FeedbackService{
		log:       global.Log,
		feedbacks: &dao.App.FeedbackDb,
	}
}

// Register grava um feedback por unidade citada na resposta avaliada.
// Resposta sem fontes não tem a quem atribuir o voto: no-op bem-sucedido.
func (s *FeedbackService) Register(ctx context.Context, req *common.FeedbackRequest) error {
	if len(req.Sources) == 0 {
		return nil
	}

	now := time.Now()
	feedbacks := make([]db.KnowledgeFeedback, 0, len(req.Sources))
	for _, source := range req.Sources {
		feedbacks = append(feedbacks, db.KnowledgeFeedback{
			Id:              uuid.NewString(),
			KnowledgeUnitId: source.Id,
			IsPositive:      req.FeedbackType == string(enum.FeedbackUp),
			CreatedAt:       now,
		})
	}

	return s.feedbacks.InsertBatch(ctx, feedbacks)
}
