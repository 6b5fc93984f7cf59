package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/empregga/eva-portal/model/db"
	"github.com/empregga/eva-portal/model/dto"
	"github.com/jmoiron/sqlx"
	"github.com/pgvector/pgvector-go"
)

type knowledgeDb struct{}

func (k *knowledgeDb) Insert(ctx context.Context, unit *db.KnowledgeUnit) error {
	sqlStr := fmt.Sprintf(`INSERT INTO %s
		(id, title, category, problem_description, official_resolution, tags, target_audience, author, status, version, zammad_ref, embedding, created_at, updated_at)
		VALUES (:id, :title, :category, :problem_description, :official_resolution, :tags, :target_audience, :author, :status, :version, :zammad_ref, :embedding, :created_at, :updated_at)`,
		unit.TableName())
	_, err := DB.NamedExecContext(ctx, sqlStr, unit)
	return err
}

func (k *knowledgeDb) GetByID(ctx context.Context, id string) (*db.KnowledgeUnit, error) {
	unit := new(db.KnowledgeUnit)
	sqlStr := fmt.Sprintf(`SELECT * FROM %s WHERE id = $1`, unit.TableName())
	if err := DB.GetContext(ctx, unit, sqlStr, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return unit, nil
}

func (k *knowledgeDb) Update(ctx context.Context, unit *db.KnowledgeUnit) error {
	sqlStr := fmt.Sprintf(`UPDATE %s SET
		title = :title, category = :category, problem_description = :problem_description,
		official_resolution = :official_resolution, tags = :tags, target_audience = :target_audience,
		author = :author, status = :status, version = :version, zammad_ref = :zammad_ref,
		embedding = :embedding, updated_at = :updated_at, deleted_at = :deleted_at
		WHERE id = :id`, unit.TableName())
	_, err := DB.NamedExecContext(ctx, sqlStr, unit)
	return err
}

// SetDeleted marca (ou desmarca) a exclusão lógica em lote.
func (k *knowledgeDb) SetDeleted(ctx context.Context, ids []string, deleted bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var sqlStr string
	if deleted {
		sqlStr = `UPDATE knowledge_units SET deleted_at = NOW(), updated_at = NOW() WHERE id IN (?) AND deleted_at IS NULL`
	} else {
		sqlStr = `UPDATE knowledge_units SET deleted_at = NULL, updated_at = NOW() WHERE id IN (?) AND deleted_at IS NOT NULL`
	}
	query, args, err := sqlx.In(sqlStr, ids)
	if err != nil {
		return 0, err
	}
	res, err := DB.ExecContext(ctx, DB.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ListWithFeedback devolve as unidades (inclusive excluídas, para curadoria)
// já com a contagem de feedbacks agregada, mais recentes primeiro.
func (k *knowledgeDb) ListWithFeedback(ctx context.Context) ([]dto.KnowledgeWithFeedback, error) {
	list := []dto.KnowledgeWithFeedback{}
	sqlStr := `SELECT u.id, u.title, u.category, u.problem_description, u.official_resolution,
			u.tags, u.target_audience, u.author, u.status, u.version, u.zammad_ref,
			u.created_at, u.updated_at, u.deleted_at,
			COALESCE(SUM(CASE WHEN f.is_positive THEN 1 ELSE 0 END), 0) AS positive_feedbacks,
			COALESCE(SUM(CASE WHEN NOT f.is_positive THEN 1 ELSE 0 END), 0) AS negative_feedbacks
		FROM knowledge_units u
		LEFT JOIN knowledge_feedbacks f ON f.knowledge_unit_id = u.id
		GROUP BY u.id
		ORDER BY u.created_at DESC`
	if err := DB.SelectContext(ctx, &list, sqlStr); err != nil {
		return nil, err
	}
	return list, nil
}

// SearchSimilar é a busca vetorial do chat: `<=>` é a distância de cosseno do
// pgvector, então a similaridade devolvida é `1 - distância`.
func (k *knowledgeDb) SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]dto.SearchResult, error) {
	list := []dto.SearchResult{}
	sqlStr := `SELECT id, title, problem_description, official_resolution,
			1 - (embedding <=> $1) AS similarity
		FROM knowledge_units
		WHERE deleted_at IS NULL AND status = 'PUBLISHED' AND embedding IS NOT NULL
		ORDER BY embedding <=> $1
		LIMIT $2`
	if err := DB.SelectContext(ctx, &list, sqlStr, pgvector.NewVector(embedding), limit); err != nil {
		return nil, err
	}
	return list, nil
}

// SearchCuration é a busca semântica do portal de curadoria; diferente do
// chat, inclui rascunhos e unidades em revisão.
func (k *knowledgeDb) SearchCuration(ctx context.Context, embedding []float32, limit int) ([]dto.CurationSearchResult, error) {
	list := []dto.CurationSearchResult{}
	sqlStr := `SELECT id, title, problem_description, official_resolution,
			category, author, status, created_at, updated_at,
			1 - (embedding <=> $1) AS similarity
		FROM knowledge_units
		WHERE deleted_at IS NULL AND embedding IS NOT NULL
		ORDER BY embedding <=> $1
		LIMIT $2`
	if err := DB.SelectContext(ctx, &list, sqlStr, pgvector.NewVector(embedding), limit); err != nil {
		return nil, err
	}
	return list, nil
}

// ListMissingEmbedding alimenta a sincronização periódica de embeddings.
func (k *knowledgeDb) ListMissingEmbedding(ctx context.Context, limit int) ([]db.KnowledgeUnit, error) {
	list := []db.KnowledgeUnit{}
	sqlStr := `SELECT * FROM knowledge_units
		WHERE deleted_at IS NULL AND embedding IS NULL
		ORDER BY updated_at ASC
		LIMIT $1`
	if err := DB.SelectContext(ctx, &list, sqlStr, limit); err != nil {
		return nil, err
	}
	return list, nil
}

// Preencher o embedding não é edição: updated_at fica intacto para não
// rejuvenescer o relógio de saúde da unidade.
const updateEmbeddingSql = `UPDATE knowledge_units SET embedding = $1 WHERE id = $2`

func (k *knowledgeDb) UpdateEmbedding(ctx context.Context, id string, embedding []float32) error {
	_, err := DB.ExecContext(ctx, updateEmbeddingSql, pgvector.NewVector(embedding), id)
	return err
}

func (k *knowledgeDb) Count(ctx context.Context) (int64, error) {
	var total int64
	sqlStr := `SELECT COUNT(*) FROM knowledge_units WHERE deleted_at IS NULL`
	if err := DB.GetContext(ctx, &total, sqlStr); err != nil {
		return 0, err
	}
	return total, nil
}
