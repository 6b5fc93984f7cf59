package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/empregga/eva-portal/dao"
	"github.com/empregga/eva-portal/global"
	"github.com/empregga/eva-portal/internal/embedding"
	"github.com/empregga/eva-portal/model/common"
	"github.com/empregga/eva-portal/model/db"
	"github.com/empregga/eva-portal/model/dto"
	"github.com/empregga/eva-portal/model/enum"
	"github.com/empregga/eva-portal/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrUnitNotFound = errors.New("unidade de conhecimento não encontrada")

// KnowledgeService é o CRUD de curadoria. A vetorização acontece fora do
// caminho da requisição: a unidade nasce sem embedding e a sincronização
// (imediata em goroutine, periódica via cron) preenche depois.
type KnowledgeService struct {
	log       *logrus.Logger
	embedder  embedding.Service
	knowledge knowledgeStore

	curationLimit int
	embedTimeout  time.Duration
}

func NewKnowledgeService() *KnowledgeService {
	return &KnowledgeService{
		log:           global.Log,
		embedder:      global.EmbeddingService,
		knowledge:     &dao.App.KnowledgeDb,
		curationLimit: global.Config.Ai.CurationSearchLimit,
		embedTimeout:  30 * time.Second,
	}
}

// EmbeddingContent monta o texto vetorizado de uma unidade. Qualquer mudança
// aqui exige ressincronizar a base inteira.
func EmbeddingContent(unit *db.KnowledgeUnit) string {
	return fmt.Sprintf("Título: %s\nPergunta: %s\nResposta: %s",
		unit.Title, unit.ProblemDescription, unit.OfficialResolution)
}

// validateContent guarda a validação de conteúdo fora do binding: o PUT de
// restauração usa a mesma struct de requisição sem carregar conteúdo algum.
func validateContent(req *common.UpsertKnowledgeRequest) error {
	if req.Title == "" || req.ProblemDescription == "" || req.OfficialResolution == "" {
		return errors.New("título, problema e resolução são obrigatórios")
	}
	if utils.InSlice(enum.Categories, enum.Category(req.Category)) < 0 {
		return fmt.Errorf("categoria inválida: %s", req.Category)
	}
	return nil
}

func (s *KnowledgeService) Create(ctx context.Context, req *common.UpsertKnowledgeRequest) (*db.KnowledgeUnit, error) {
	if err := validateContent(req); err != nil {
		return nil, err
	}
	category := enum.Category(req.Category)

	now := time.Now()
	unit := &db.KnowledgeUnit{
		Id:                 uuid.NewString(),
		Title:              req.Title,
		Category:           category,
		ProblemDescription: req.ProblemDescription,
		OfficialResolution: req.OfficialResolution,
		Tags:               db.StringList(req.Tags),
		TargetAudience:     db.StringList(req.TargetAudience),
		Author:             req.Author,
		Status:             enum.StatusPublished,
		Version:            1,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.knowledge.Insert(ctx, unit); err != nil {
		return nil, err
	}

	s.embedAsync(unit)
	return unit, nil
}

func (s *KnowledgeService) Update(ctx context.Context, id string, req *common.UpsertKnowledgeRequest) (*db.KnowledgeUnit, error) {
	unit, err := s.knowledge.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, ErrUnitNotFound
	}

	if req.Restore {
		if _, err = s.knowledge.SetDeleted(ctx, []string{id}, false); err != nil {
			return nil, err
		}
		unit.DeletedAt = nil
		return unit, nil
	}

	if err = validateContent(req); err != nil {
		return nil, err
	}
	category := enum.Category(req.Category)

	contentChanged := unit.Title != req.Title ||
		unit.ProblemDescription != req.ProblemDescription ||
		unit.OfficialResolution != req.OfficialResolution

	unit.Title = req.Title
	unit.Category = category
	unit.ProblemDescription = req.ProblemDescription
	unit.OfficialResolution = req.OfficialResolution
	unit.Tags = db.StringList(req.Tags)
	unit.TargetAudience = db.StringList(req.TargetAudience)
	if req.Author != "" {
		unit.Author = req.Author
	}
	unit.Version++
	unit.UpdatedAt = time.Now()
	if contentChanged {
		// Vetor antigo não representa mais o conteúdo; zera e ressincroniza.
		unit.Embedding = nil
	}

	if err = s.knowledge.Update(ctx, unit); err != nil {
		return nil, err
	}

	if contentChanged {
		s.embedAsync(unit)
	}
	return unit, nil
}

// Delete é sempre exclusão lógica: a unidade some da busca do chat, mas a
// curadoria pode restaurá-la.
func (s *KnowledgeService) Delete(ctx context.Context, id string) error {
	affected, err := s.knowledge.SetDeleted(ctx, []string{id}, true)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUnitNotFound
	}
	return nil
}

func (s *KnowledgeService) Bulk(ctx context.Context, req *common.BulkKnowledgeRequest) (int64, error) {
	return s.knowledge.SetDeleted(ctx, req.Ids, req.Action == "delete")
}

// List devolve todas as unidades com feedbacks agregados e a saúde calculada
// na hora da leitura.
func (s *KnowledgeService) List(ctx context.Context) ([]dto.KnowledgeListItem, error) {
	units, err := s.knowledge.ListWithFeedback(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	items := make([]dto.KnowledgeListItem, 0, len(units))
	for _, unit := range units {
		items = append(items, dto.KnowledgeListItem{
			KnowledgeWithFeedback: unit,
			Health:                CalculateHealth(unit.PositiveFeedbacks, unit.NegativeFeedbacks, unit.UpdatedAt, now),
			DaysRemaining:         DaysRemaining(unit.PositiveFeedbacks, unit.NegativeFeedbacks, unit.UpdatedAt, now),
		})
	}
	return items, nil
}

// Search é a busca semântica da curadoria (inclui rascunhos e revisões).
func (s *KnowledgeService) Search(ctx context.Context, query string) ([]dto.CurationSearchResult, error) {
	vector, err := s.embedder.CreateEmbedding(ctx, query)
	if err != nil {
		s.log.Errorf("vetorização da busca de curadoria falhou: %v", err)
		return nil, errors.New("serviço de busca indisponível no momento")
	}
	return s.knowledge.SearchCuration(ctx, vector, s.curationLimit)
}

// embedAsync vetoriza a unidade fora da requisição. Se falhar, a
// sincronização periódica tenta de novo (a unidade fica com embedding nulo).
func (s *KnowledgeService) embedAsync(unit *db.KnowledgeUnit) {
	content := EmbeddingContent(unit)
	id := unit.Id
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.log.Errorf("pânico na vetorização assíncrona: %v", r)
			}
		}()
		bg, cancel := context.WithTimeout(context.Background(), s.embedTimeout)
		defer cancel()

		vector, err := s.embedder.CreateEmbedding(bg, content)
		if err != nil {
			s.log.Errorf("vetorização da unidade %s falhou: %v", id, err)
			return
		}
		if err = s.knowledge.UpdateEmbedding(bg, id, vector); err != nil {
			s.log.Errorf("gravação do embedding da unidade %s falhou: %v", id, err)
		}
	}()
}
