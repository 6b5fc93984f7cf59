package admin

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/empregga/eva-portal/model/common"
	"github.com/empregga/eva-portal/model/db"
	"github.com/empregga/eva-portal/model/dto"
	"github.com/empregga/eva-portal/model/enum"
	"github.com/sirupsen/logrus"
)

type fakeKnowledgeStore struct {
	mu         sync.Mutex
	units      map[string]*db.KnowledgeUnit
	embeddings map[string][]float32
	embedded   chan string
	listed     []dto.KnowledgeWithFeedback
}

func newFakeKnowledgeStore() *fakeKnowledgeStore {
	return &fakeKnowledgeStore{
		units:      map[string]*db.KnowledgeUnit{},
		embeddings: map[string][]float32{},
		embedded:   make(chan string, 4),
	}
}

func (f *fakeKnowledgeStore) Insert(_ context.Context, unit *db.KnowledgeUnit) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *unit
	f.units[unit.Id] = &clone
	return nil
}

func (f *fakeKnowledgeStore) GetByID(_ context.Context, id string) (*db.KnowledgeUnit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	unit, ok := f.units[id]
	if !ok {
		return nil, nil
	}
	clone := *unit
	return &clone, nil
}

func (f *fakeKnowledgeStore) Update(_ context.Context, unit *db.KnowledgeUnit) error {
	return f.Insert(context.Background(), unit)
}

func (f *fakeKnowledgeStore) SetDeleted(_ context.Context, ids []string, deleted bool) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var affected int64
	now := time.Now()
	for _, id := range ids {
		unit, ok := f.units[id]
		if !ok {
			continue
		}
		if deleted && unit.DeletedAt == nil {
			unit.DeletedAt = &now
			affected++
		}
		if !deleted && unit.DeletedAt != nil {
			unit.DeletedAt = nil
			affected++
		}
	}
	return affected, nil
}

func (f *fakeKnowledgeStore) ListWithFeedback(_ context.Context) ([]dto.KnowledgeWithFeedback, error) {
	return f.listed, nil
}

func (f *fakeKnowledgeStore) SearchCuration(_ context.Context, _ []float32, _ int) ([]dto.CurationSearchResult, error) {
	return nil, nil
}

func (f *fakeKnowledgeStore) UpdateEmbedding(_ context.Context, id string, embedding []float32) error {
	f.mu.Lock()
	f.embeddings[id] = embedding
	f.mu.Unlock()
	f.embedded <- id
	return nil
}

func (f *fakeKnowledgeStore) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.units)), nil
}

type fakeEmbedder struct {
	vector  []float32
	mu      sync.Mutex
	lastDoc string
}

func (f *fakeEmbedder) CreateEmbedding(_ context.Context, text string) ([]float32, error) {
	f.mu.Lock()
	f.lastDoc = text
	f.mu.Unlock()
	return f.vector, nil
}

func newTestKnowledgeService(store *fakeKnowledgeStore, embedder *fakeEmbedder) *KnowledgeService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &KnowledgeService{
		log:           log,
		embedder:      embedder,
		knowledge:     store,
		curationLimit: 5,
		embedTimeout:  2 * time.Second,
	}
}

func TestKnowledgeCreate(t *testing.T) {
	store := newFakeKnowledgeStore()
	embedder := &fakeEmbedder{vector: []float32{0.1, 0.2}}
	s := newTestKnowledgeService(store, embedder)

	unit, err := s.Create(context.Background(), &common.UpsertKnowledgeRequest{
		Title:              "Cadastro de vaga",
		Category:           "PLATAFORMA",
		ProblemDescription: "Como cadastrar uma vaga?",
		OfficialResolution: "Acesse o menu Vagas.",
		Author:             "Maria",
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if unit.Status != enum.StatusPublished {
		t.Errorf("unidade nova deve nascer publicada, got %s", unit.Status)
	}
	if unit.Version != 1 {
		t.Errorf("versão inicial = %d, esperado 1", unit.Version)
	}

	// A vetorização é assíncrona mas deve acontecer.
	select {
	case id := <-store.embedded:
		if id != unit.Id {
			t.Errorf("embedding gravado para %s, esperado %s", id, unit.Id)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("embedding não foi gravado")
	}

	embedder.mu.Lock()
	doc := embedder.lastDoc
	embedder.mu.Unlock()
	for _, want := range []string{"Título: Cadastro de vaga", "Pergunta: Como cadastrar uma vaga?", "Resposta: Acesse o menu Vagas."} {
		if !strings.Contains(doc, want) {
			t.Errorf("documento vetorizado não contém %q: %q", want, doc)
		}
	}
}

func TestKnowledgeCreateInvalidCategory(t *testing.T) {
	s := newTestKnowledgeService(newFakeKnowledgeStore(), &fakeEmbedder{})
	_, err := s.Create(context.Background(), &common.UpsertKnowledgeRequest{
		Title:              "t",
		Category:           "FINANCEIRO",
		ProblemDescription: "p",
		OfficialResolution: "r",
	})
	if err == nil {
		t.Error("categoria fora da lista deveria ser rejeitada")
	}
}

func TestKnowledgeCreateMissingContent(t *testing.T) {
	s := newTestKnowledgeService(newFakeKnowledgeStore(), &fakeEmbedder{})
	_, err := s.Create(context.Background(), &common.UpsertKnowledgeRequest{
		Title:    "t",
		Category: "OUTROS",
	})
	if err == nil {
		t.Error("unidade sem problema e resolução deveria ser rejeitada")
	}
}

// O PUT de restauração carrega só {"restore": true}; a validação de conteúdo
// não pode barrá-lo.
func TestKnowledgeRestoreOnlyBody(t *testing.T) {
	store := newFakeKnowledgeStore()
	s := newTestKnowledgeService(store, &fakeEmbedder{vector: []float32{1}})

	created, err := s.Create(context.Background(), &common.UpsertKnowledgeRequest{
		Title:              "t",
		Category:           "OUTROS",
		ProblemDescription: "p",
		OfficialResolution: "r",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err = s.Delete(context.Background(), created.Id); err != nil {
		t.Fatalf("delete: %v", err)
	}

	restored, err := s.Update(context.Background(), created.Id, &common.UpsertKnowledgeRequest{Restore: true})
	if err != nil {
		t.Fatalf("restauração sem campos de conteúdo: %v", err)
	}
	if restored.DeletedAt != nil {
		t.Error("restore deveria limpar deletedAt")
	}
	if restored.Title != "t" || restored.OfficialResolution != "r" {
		t.Errorf("restore não deve tocar o conteúdo: %+v", restored)
	}
}

func TestKnowledgeUpdateReembedsOnContentChange(t *testing.T) {
	store := newFakeKnowledgeStore()
	embedder := &fakeEmbedder{vector: []float32{0.3}}
	s := newTestKnowledgeService(store, embedder)

	created, err := s.Create(context.Background(), &common.UpsertKnowledgeRequest{
		Title:              "t",
		Category:           "OUTROS",
		ProblemDescription: "p",
		OfficialResolution: "r",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	<-store.embedded

	updated, err := s.Update(context.Background(), created.Id, &common.UpsertKnowledgeRequest{
		Title:              "t",
		Category:           "OUTROS",
		ProblemDescription: "p",
		OfficialResolution: "resolução nova",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Version != 2 {
		t.Errorf("versão após edição = %d, esperado 2", updated.Version)
	}

	select {
	case <-store.embedded:
	case <-time.After(2 * time.Second):
		t.Error("edição de conteúdo deveria ressincronizar o embedding")
	}
}

func TestKnowledgeDeleteAndRestore(t *testing.T) {
	store := newFakeKnowledgeStore()
	s := newTestKnowledgeService(store, &fakeEmbedder{vector: []float32{1}})

	created, err := s.Create(context.Background(), &common.UpsertKnowledgeRequest{
		Title:              "t",
		Category:           "OUTROS",
		ProblemDescription: "p",
		OfficialResolution: "r",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err = s.Delete(context.Background(), created.Id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, _ := store.GetByID(context.Background(), created.Id)
	if got.DeletedAt == nil {
		t.Fatal("delete deve ser lógico, marcando deletedAt")
	}

	restored, err := s.Update(context.Background(), created.Id, &common.UpsertKnowledgeRequest{
		Title:              "t",
		Category:           "OUTROS",
		ProblemDescription: "p",
		OfficialResolution: "r",
		Restore:            true,
	})
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.DeletedAt != nil {
		t.Error("restore deveria limpar deletedAt")
	}

	if err = s.Delete(context.Background(), "nao-existe"); err != ErrUnitNotFound {
		t.Errorf("delete de id inexistente = %v, esperado ErrUnitNotFound", err)
	}
}

func TestKnowledgeListAttachesHealth(t *testing.T) {
	store := newFakeKnowledgeStore()
	store.listed = []dto.KnowledgeWithFeedback{
		{Id: "fresca", UpdatedAt: time.Now().AddDate(0, 0, -1)},
		{Id: "reprovada", UpdatedAt: time.Now().AddDate(0, 0, -1), PositiveFeedbacks: 0, NegativeFeedbacks: 3},
		{Id: "estagnada", UpdatedAt: time.Now().AddDate(0, 0, -200)},
	}
	s := newTestKnowledgeService(store, &fakeEmbedder{})

	items, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := map[string]enum.HealthStatus{
		"fresca":    enum.HealthGreat,
		"reprovada": enum.HealthCritical,
		"estagnada": enum.HealthCritical,
	}
	for _, item := range items {
		if item.Health != want[item.Id] {
			t.Errorf("saúde de %s = %s, esperado %s", item.Id, item.Health, want[item.Id])
		}
	}
}
