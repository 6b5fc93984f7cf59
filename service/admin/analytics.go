package admin

import (
	"context"
	"math"

	"github.com/empregga/eva-portal/dao"
	"github.com/empregga/eva-portal/global"
	"github.com/empregga/eva-portal/model/dto"
	"github.com/empregga/eva-portal/model/enum"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type analyticsStore interface {
	CountByType(ctx context.Context, eventType enum.EventType) (int64, error)
	WorstUnits(ctx context.Context, limit int) ([]dto.WorstUnit, error)
}

type AnalyticsService struct {
	log    *logrus.Logger
	events analyticsStore
}

func NewAnalyticsService() *AnalyticsService {
	return &AnalyticsService{
		log:    global.Log,
		events: &dao.App.EventDb,
	}
}

// Overview agrega os contadores do dashboard; as consultas são independentes
// e rodam em paralelo.
func (s *AnalyticsService) Overview(ctx context.Context) (*dto.AnalyticsOverview, error) {
	overview := new(dto.AnalyticsOverview)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		overview.TotalQueries, err = s.events.CountByType(egCtx, enum.EventChatQuery)
		return
	})
	eg.Go(func() (err error) {
		overview.TotalHandoffs, err = s.events.CountByType(egCtx, enum.EventHandoff)
		return
	})
	eg.Go(func() (err error) {
		overview.WorstUnits, err = s.events.WorstUnits(egCtx, 5)
		return
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// Taxa de resolução: perguntas que não viraram transferência humana,
	// arredondada para o inteiro mais próximo.
	if overview.TotalQueries > 0 {
		resolved := overview.TotalQueries - overview.TotalHandoffs
		if resolved < 0 {
			resolved = 0
		}
		overview.ResolutionRate = int(math.Round(float64(resolved) * 100 / float64(overview.TotalQueries)))
	}

	return overview, nil
}
