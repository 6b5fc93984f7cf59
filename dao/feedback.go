package dao

import (
	"context"
	"fmt"

	"github.com/empregga/eva-portal/model/db"
)

type feedbackDb struct{}

// InsertBatch grava um feedback por unidade citada, em uma única transação.
func (f *feedbackDb) InsertBatch(ctx context.Context, feedbacks []db.KnowledgeFeedback) error {
	if len(feedbacks) == 0 {
		return nil
	}
	sqlStr := fmt.Sprintf(`INSERT INTO %s (id, knowledge_unit_id, is_positive, created_at)
		VALUES (:id, :knowledge_unit_id, :is_positive, :created_at)`,
		db.KnowledgeFeedback{}.TableName())

	tx, err := DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.NamedExecContext(ctx, sqlStr, feedbacks); err != nil {
		return err
	}
	return tx.Commit()
}
