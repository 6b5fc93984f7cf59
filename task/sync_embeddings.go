package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/empregga/eva-portal/dao"
	"github.com/empregga/eva-portal/global"
	"github.com/empregga/eva-portal/model/db"
	"github.com/empregga/eva-portal/service/admin"
)

// Lote por execução; o agendamento a cada 10 minutos dá vazão de sobra para
// o volume de curadoria.
const embeddingSyncBatch = 50

// EmbeddingReloader vetoriza unidades que ficaram sem embedding (falha do
// provedor na criação, edição de conteúdo, importação em massa). Uma falha
// individual não interrompe o lote.
func (m *Manager) EmbeddingReloader() error {
	if m.embeddingService == nil {
		return errors.New("serviço de vetorização indisponível")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	units, err := dao.App.KnowledgeDb.ListMissingEmbedding(ctx, embeddingSyncBatch)
	if err != nil {
		return fmt.Errorf("falha ao listar unidades sem embedding: %w", err)
	}
	if len(units) == 0 {
		return nil
	}

	global.Log.Infof("sincronização de embeddings: %d unidade(s) pendente(s)", len(units))

	var failed int
	for idx := range units {
		if err = m.syncUnit(ctx, &units[idx]); err != nil {
			global.Log.Errorf("vetorização da unidade %s falhou: %v", units[idx].Id, err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("sincronização de embeddings terminou com %d falha(s) em %d unidade(s)", failed, len(units))
	}
	global.Log.Infof("sincronização de embeddings concluída: %d unidade(s)", len(units))
	return nil
}

func (m *Manager) syncUnit(ctx context.Context, unit *db.KnowledgeUnit) error {
	vector, err := m.embeddingService.CreateEmbedding(ctx, admin.EmbeddingContent(unit))
	if err != nil {
		return err
	}
	return dao.App.KnowledgeDb.UpdateEmbedding(ctx, unit.Id, vector)
}
