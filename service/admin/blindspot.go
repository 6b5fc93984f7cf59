package admin

import (
	"context"
	"errors"

	"github.com/empregga/eva-portal/dao"
	"github.com/empregga/eva-portal/global"
	"github.com/empregga/eva-portal/model/db"
	"github.com/sirupsen/logrus"
)

var ErrBlindSpotNotFound = errors.New("ponto cego não encontrado ou já resolvido")

// BlindSpotService é a fila de curadoria: perguntas que o chat não soube
// responder, aguardando virar unidade de conhecimento.
type BlindSpotService struct {
	log   *logrus.Logger
	spots blindSpotStore
	limit int
}

func NewBlindSpotService() *BlindSpotService {
	return &BlindSpotService{
		log:   global.Log,
		spots: &dao.App.BlindSpotDb,
		limit: 50,
	}
}

func (s *BlindSpotService) List(ctx context.Context) ([]db.BlindSpot, error) {
	return s.spots.List(ctx, s.limit)
}

// Resolve marca o ponto cego como tratado; resolver duas vezes é erro.
func (s *BlindSpotService) Resolve(ctx context.Context, id string) error {
	affected, err := s.spots.SetResolved(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrBlindSpotNotFound
	}
	return nil
}
