package dao

import (
	"context"
	"fmt"

	"github.com/empregga/eva-portal/model/db"
)

type blindSpotDb struct{}

func (b *blindSpotDb) Insert(ctx context.Context, spot *db.BlindSpot) error {
	sqlStr := fmt.Sprintf(`INSERT INTO %s (id, query, resolved, created_at)
		VALUES (:id, :query, :resolved, :created_at)`, spot.TableName())
	_, err := DB.NamedExecContext(ctx, sqlStr, spot)
	return err
}

// A fila da curadoria mostra os mais recentes, resolvidos ou não: o estado
// vai para a UI em vez de filtrar a listagem.
const listBlindSpotsSql = `SELECT * FROM blind_spots ORDER BY created_at DESC LIMIT $1`

func (b *blindSpotDb) List(ctx context.Context, limit int) ([]db.BlindSpot, error) {
	list := []db.BlindSpot{}
	if err := DB.SelectContext(ctx, &list, listBlindSpotsSql, limit); err != nil {
		return nil, err
	}
	return list, nil
}

func (b *blindSpotDb) SetResolved(ctx context.Context, id string) (int64, error) {
	sqlStr := `UPDATE blind_spots SET resolved = TRUE WHERE id = $1 AND resolved = FALSE`
	res, err := DB.ExecContext(ctx, sqlStr, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
