package user

import (
	"context"
	"errors"
	"time"

	"github.com/empregga/eva-portal/dao"
	"github.com/empregga/eva-portal/global"
	"github.com/empregga/eva-portal/internal/embedding"
	"github.com/empregga/eva-portal/internal/llm"
	"github.com/empregga/eva-portal/model/common"
	"github.com/empregga/eva-portal/model/db"
	"github.com/empregga/eva-portal/model/enum"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyQuery   = errors.New("nenhuma pergunta de usuário encontrada na conversa")
	ErrQueryTooLong = errors.New("pergunta excede o tamanho máximo permitido")
)

// ChatService executa o pipeline completo de uma pergunta:
// vetorização -> busca -> filtro -> contexto -> geração -> efeitos colaterais.
type ChatService struct {
	log       *logrus.Logger
	embedder  embedding.Service
	generator llm.Service
	knowledge knowledgeSearcher
	spots     blindSpotStore
	events    eventStore

	topK          int
	minSimilarity float64
	historyWindow int
	maxQueryLen   int
	// sideEffectTimeout limita as gravações assíncronas pós-resposta.
	sideEffectTimeout time.Duration
}

func NewChatService() *ChatService {
	return &ChatService{
		log:               global.Log,
		embedder:          global.EmbeddingService,
		generator:         global.LlmService,
		knowledge:         &dao.App.KnowledgeDb,
		spots:             &dao.App.BlindSpotDb,
		events:            &dao.App.EventDb,
		topK:              global.Config.Ai.VectorSearchTopK,
		minSimilarity:     global.Config.Ai.VectorSearchMinSimilarity,
		historyWindow:     global.Config.Ai.HistoryWindow,
		maxQueryLen:       global.Config.Ai.MaxQueryLength,
		sideEffectTimeout: 10 * time.Second,
	}
}

// HandleChat responde de forma síncrona; os registros de uso e de ponto cego
// acontecem em segundo plano e nunca atrasam nem derrubam a resposta.
func (s *ChatService) HandleChat(ctx context.Context, req *common.ChatRequest) (*common.ChatResponse, error) {
	query, err := s.extractQuery(req)
	if err != nil {
		return nil, err
	}

	s.recordAsync(func(bg context.Context) error {
		return s.events.Insert(bg, &db.SystemEvent{
			Id:        uuid.NewString(),
			EventType: enum.EventChatQuery,
			CreatedAt: time.Now(),
		})
	})

	vector, err := s.embedder.CreateEmbedding(ctx, query)
	if err != nil {
		s.log.Errorf("vetorização da pergunta falhou: %v", err)
		return nil, errors.New("serviço de busca indisponível no momento")
	}

	results, err := s.knowledge.SearchSimilar(ctx, vector, s.topK)
	if err != nil {
		s.log.Errorf("busca vetorial falhou: %v", err)
		return nil, errors.New("busca na base de conhecimento falhou")
	}

	relevant := FilterRelevant(results, s.minSimilarity)
	contextText := ComposeContext(relevant)

	answer, err := s.generator.GenerateAnswer(ctx, s.recentHistory(req.Messages), contextText)
	if err != nil {
		return nil, err
	}

	if !answer.HasAnswer {
		s.recordAsync(func(bg context.Context) error {
			return s.spots.Insert(bg, &db.BlindSpot{
				Id:        uuid.NewString(),
				Query:     query,
				Resolved:  false,
				CreatedAt: time.Now(),
			})
		})
	}

	sources := make([]common.SourceRef, 0, len(relevant))
	for _, r := range relevant {
		sources = append(sources, common.SourceRef{
			Id:         r.Id,
			Title:      r.Title,
			Similarity: r.Similarity,
		})
	}

	return &common.ChatResponse{
		HasAnswer: answer.HasAnswer,
		Response:  answer.Response,
		Sources:   sources,
	}, nil
}

// extractQuery acha a pergunta varrendo a conversa de trás para frente: a UI
// pode reenviar o histórico terminando em uma resposta do assistente.
func (s *ChatService) extractQuery(req *common.ChatRequest) (string, error) {
	if req == nil {
		return "", ErrEmptyQuery
	}
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role != "user" {
			continue
		}
		content := req.Messages[i].Content
		if content == "" {
			return "", ErrEmptyQuery
		}
		if s.maxQueryLen > 0 && len([]rune(content)) > s.maxQueryLen {
			return "", ErrQueryTooLong
		}
		return content, nil
	}
	return "", ErrEmptyQuery
}

// recentHistory corta a conversa para a janela configurada, incluindo a
// última mensagem do usuário.
func (s *ChatService) recentHistory(messages []common.ChatMessage) []common.LlmMessage {
	start := 0
	if s.historyWindow > 0 && len(messages) > s.historyWindow {
		start = len(messages) - s.historyWindow
	}
	history := make([]common.LlmMessage, 0, len(messages)-start)
	for _, msg := range messages[start:] {
		history = append(history, common.LlmMessage{Role: msg.Role, Content: msg.Content})
	}
	return history
}

// recordAsync executa uma gravação de efeito colateral fora do caminho da
// resposta. Erro é logado e descartado.
func (s *ChatService) recordAsync(fn func(ctx context.Context) error) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.log.Errorf("pânico em gravação assíncrona: %v", r)
			}
		}()
		bg, cancel := context.WithTimeout(context.Background(), s.sideEffectTimeout)
		defer cancel()
		if err := fn(bg); err != nil {
			s.log.Errorf("gravação assíncrona falhou: %v", err)
		}
	}()
}
