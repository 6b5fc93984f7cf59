package user

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/empregga/eva-portal/internal/llm"
	"github.com/empregga/eva-portal/model/common"
	"github.com/empregga/eva-portal/model/db"
	"github.com/empregga/eva-portal/model/dto"
	"github.com/empregga/eva-portal/model/enum"
	"github.com/sirupsen/logrus"
)

type fakeEmbedder struct {
	vector []float32
	err    error
}

func (f *fakeEmbedder) CreateEmbedding(_ context.Context, _ string) ([]float32, error) {
	return f.vector, f.err
}

// searchableUnit espelha a linha da base: a busca só enxerga unidades sem
// exclusão lógica.
type searchableUnit struct {
	result    dto.SearchResult
	deletedAt *time.Time
}

type fakeSearcher struct {
	units []searchableUnit
	err   error
}

func searcherOf(results ...dto.SearchResult) *fakeSearcher {
	s := &fakeSearcher{}
	for _, r := range results {
		s.units = append(s.units, searchableUnit{result: r})
	}
	return s
}

func (f *fakeSearcher) SearchSimilar(_ context.Context, _ []float32, limit int) ([]dto.SearchResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	results := []dto.SearchResult{}
	for _, unit := range f.units {
		if unit.deletedAt != nil {
			continue
		}
		results = append(results, unit.result)
		if len(results) == limit {
			break
		}
	}
	return results, nil
}

type fakeGenerator struct {
	answer     *llm.Answer
	err        error
	gotContext string
	gotHistory []common.LlmMessage
}

func (f *fakeGenerator) GenerateAnswer(_ context.Context, history []common.LlmMessage, contextText string) (*llm.Answer, error) {
	f.gotHistory = history
	f.gotContext = contextText
	return f.answer, f.err
}

type fakeSpotStore struct {
	inserted chan *db.BlindSpot
}

func (f *fakeSpotStore) Insert(_ context.Context, spot *db.BlindSpot) error {
	f.inserted <- spot
	return nil
}

type fakeEventStore struct {
	inserted chan *db.SystemEvent
}

func (f *fakeEventStore) Insert(_ context.Context, event *db.SystemEvent) error {
	if f.inserted != nil {
		f.inserted <- event
	}
	return nil
}

func silentLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestChatService(embedder *fakeEmbedder, searcher *fakeSearcher, generator *fakeGenerator, spots *fakeSpotStore, events *fakeEventStore) *ChatService {
	return &ChatService{
		log:               silentLogger(),
		embedder:          embedder,
		generator:         generator,
		knowledge:         searcher,
		spots:             spots,
		events:            events,
		topK:              4,
		minSimilarity:     0.6,
		historyWindow:     3,
		maxQueryLen:       2000,
		sideEffectTimeout: time.Second,
	}
}

func chatRequest(contents ...string) *common.ChatRequest {
	messages := make([]common.ChatMessage, 0, len(contents))
	for i, content := range contents {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		messages = append(messages, common.ChatMessage{Role: role, Content: content})
	}
	return &common.ChatRequest{Messages: messages}
}

// Caminho feliz: unidade relevante encontrada, resposta positiva com fonte.
func TestHandleChatAnswered(t *testing.T) {
	generator := &fakeGenerator{answer: &llm.Answer{HasAnswer: true, Response: "Acesse o menu **Vagas**."}}
	searcher := searcherOf(
		dto.SearchResult{Id: "u1", Title: "Cadastro de vaga", ProblemDescription: "p", OfficialResolution: "r", Similarity: 0.88},
		dto.SearchResult{Id: "u2", Title: "Outro assunto", Similarity: 0.41},
	)
	spots := &fakeSpotStore{inserted: make(chan *db.BlindSpot, 1)}
	events := &fakeEventStore{inserted: make(chan *db.SystemEvent, 1)}

	s := newTestChatService(&fakeEmbedder{vector: []float32{0.1, 0.2}}, searcher, generator, spots, events)

	resp, err := s.HandleChat(context.Background(), chatRequest("Como cadastrar uma vaga?"))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !resp.HasAnswer {
		t.Error("esperado hasAnswer=true")
	}
	if len(resp.Sources) != 1 || resp.Sources[0].Id != "u1" {
		t.Errorf("fontes devem conter apenas a unidade relevante: %v", resp.Sources)
	}
	if !strings.Contains(generator.gotContext, "Cadastro de vaga") {
		t.Errorf("contexto do gerador não contém a unidade relevante: %q", generator.gotContext)
	}
	if strings.Contains(generator.gotContext, "Outro assunto") {
		t.Errorf("unidade abaixo do limiar vazou para o contexto: %q", generator.gotContext)
	}

	select {
	case event := <-events.inserted:
		if event.EventType != enum.EventChatQuery {
			t.Errorf("tipo de evento = %s, esperado CHAT_QUERY", event.EventType)
		}
	case <-time.After(2 * time.Second):
		t.Error("evento CHAT_QUERY não registrado")
	}

	select {
	case <-spots.inserted:
		t.Error("ponto cego não deve ser registrado quando há resposta")
	case <-time.After(100 * time.Millisecond):
	}
}

// Sem unidade relevante: contexto sentinela, recusa e ponto cego registrado.
func TestHandleChatBlindSpot(t *testing.T) {
	generator := &fakeGenerator{answer: &llm.Answer{HasAnswer: false, Response: enum.DeclineMessage}}
	searcher := searcherOf(dto.SearchResult{Id: "u9", Similarity: 0.31})
	spots := &fakeSpotStore{inserted: make(chan *db.BlindSpot, 1)}
	events := &fakeEventStore{}

	s := newTestChatService(&fakeEmbedder{vector: []float32{0.5}}, searcher, generator, spots, events)

	query := "Qual a previsão do tempo?"
	resp, err := s.HandleChat(context.Background(), chatRequest(query))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if resp.HasAnswer {
		t.Error("esperado hasAnswer=false")
	}
	if len(resp.Sources) != 0 {
		t.Errorf("recusa não deve citar fontes: %v", resp.Sources)
	}
	if generator.gotContext != enum.NoKnowledgeSentinel {
		t.Errorf("gerador deveria receber a sentinela, got %q", generator.gotContext)
	}

	select {
	case spot := <-spots.inserted:
		if spot.Query != query {
			t.Errorf("ponto cego gravou %q, esperado %q", spot.Query, query)
		}
		if spot.Resolved {
			t.Error("ponto cego deve nascer não resolvido")
		}
	case <-time.After(2 * time.Second):
		t.Error("ponto cego não registrado")
	}
}

// Exclusão lógica tira a unidade do ranking mesmo com similaridade alta.
func TestHandleChatSkipsDeletedUnits(t *testing.T) {
	deletedAt := time.Now()
	searcher := &fakeSearcher{units: []searchableUnit{
		{result: dto.SearchResult{Id: "morta", Title: "Unidade excluída", Similarity: 0.99}, deletedAt: &deletedAt},
		{result: dto.SearchResult{Id: "viva", Title: "Unidade ativa", Similarity: 0.75}},
	}}
	generator := &fakeGenerator{answer: &llm.Answer{HasAnswer: true, Response: "ok"}}
	s := newTestChatService(&fakeEmbedder{vector: []float32{1}}, searcher, generator,
		&fakeSpotStore{inserted: make(chan *db.BlindSpot, 1)}, &fakeEventStore{})

	resp, err := s.HandleChat(context.Background(), chatRequest("pergunta"))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(resp.Sources) != 1 || resp.Sources[0].Id != "viva" {
		t.Errorf("fontes devem ignorar unidades excluídas: %v", resp.Sources)
	}
	if strings.Contains(generator.gotContext, "Unidade excluída") {
		t.Errorf("unidade excluída vazou para o contexto: %q", generator.gotContext)
	}
}

// A conversa pode terminar em mensagem do assistente: a pergunta é a última
// mensagem do usuário, onde quer que esteja.
func TestHandleChatAssistantTail(t *testing.T) {
	generator := &fakeGenerator{answer: &llm.Answer{HasAnswer: false, Response: enum.DeclineMessage}}
	spots := &fakeSpotStore{inserted: make(chan *db.BlindSpot, 1)}
	s := newTestChatService(&fakeEmbedder{vector: []float32{1}}, &fakeSearcher{}, generator,
		spots, &fakeEventStore{})

	if _, err := s.HandleChat(context.Background(), chatRequest("como emitir boleto?", "não sei")); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	select {
	case spot := <-spots.inserted:
		if spot.Query != "como emitir boleto?" {
			t.Errorf("pergunta extraída = %q, esperado a última mensagem do usuário", spot.Query)
		}
	case <-time.After(2 * time.Second):
		t.Error("ponto cego não registrado")
	}
}

func TestHandleChatHistoryWindow(t *testing.T) {
	generator := &fakeGenerator{answer: &llm.Answer{HasAnswer: true, Response: "ok"}}
	s := newTestChatService(&fakeEmbedder{vector: []float32{1}}, &fakeSearcher{}, generator,
		&fakeSpotStore{inserted: make(chan *db.BlindSpot, 1)}, &fakeEventStore{})

	if _, err := s.HandleChat(context.Background(), chatRequest("m1", "m2", "m3", "m4", "m5")); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(generator.gotHistory) != 3 {
		t.Fatalf("janela de histórico = %d mensagens, esperado 3", len(generator.gotHistory))
	}
	if generator.gotHistory[2].Content != "m5" {
		t.Errorf("última mensagem da janela = %q, esperado m5", generator.gotHistory[2].Content)
	}
}

func TestHandleChatGeneratorFailure(t *testing.T) {
	wantErr := errors.New("serviço de geração indisponível no momento")
	generator := &fakeGenerator{err: wantErr}
	s := newTestChatService(&fakeEmbedder{vector: []float32{1}}, &fakeSearcher{}, generator,
		&fakeSpotStore{inserted: make(chan *db.BlindSpot, 1)}, &fakeEventStore{})

	if _, err := s.HandleChat(context.Background(), chatRequest("oi")); !errors.Is(err, wantErr) {
		t.Errorf("falha do gerador deve subir como erro da requisição, got %v", err)
	}
}

func TestHandleChatEmbedderFailure(t *testing.T) {
	s := newTestChatService(&fakeEmbedder{err: errors.New("timeout")}, &fakeSearcher{},
		&fakeGenerator{}, &fakeSpotStore{inserted: make(chan *db.BlindSpot, 1)}, &fakeEventStore{})

	if _, err := s.HandleChat(context.Background(), chatRequest("oi")); err == nil {
		t.Error("falha de vetorização deve ser erro duro")
	}
}

func TestExtractQueryValidation(t *testing.T) {
	s := newTestChatService(&fakeEmbedder{}, &fakeSearcher{}, &fakeGenerator{},
		&fakeSpotStore{}, &fakeEventStore{})

	if _, err := s.extractQuery(&common.ChatRequest{}); !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("sem mensagens: %v", err)
	}

	assistantOnly := &common.ChatRequest{Messages: []common.ChatMessage{{Role: "assistant", Content: "olá"}}}
	if _, err := s.extractQuery(assistantOnly); !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("conversa sem mensagem de usuário: %v", err)
	}

	assistantTail := &common.ChatRequest{Messages: []common.ChatMessage{
		{Role: "user", Content: "como cadastrar?"},
		{Role: "assistant", Content: "respondendo"},
	}}
	if query, err := s.extractQuery(assistantTail); err != nil || query != "como cadastrar?" {
		t.Errorf("extractQuery = (%q, %v), esperado a última pergunta do usuário", query, err)
	}

	s.maxQueryLen = 5
	long := &common.ChatRequest{Messages: []common.ChatMessage{{Role: "user", Content: "pergunta longa"}}}
	if _, err := s.extractQuery(long); !errors.Is(err, ErrQueryTooLong) {
		t.Errorf("pergunta longa: %v", err)
	}
}
