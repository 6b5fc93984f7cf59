package dao

import (
	"context"
	"fmt"

	"github.com/empregga/eva-portal/model/db"
	"github.com/empregga/eva-portal/model/dto"
	"github.com/empregga/eva-portal/model/enum"
)

type eventDb struct{}

func (e *eventDb) Insert(ctx context.Context, event *db.SystemEvent) error {
	sqlStr := fmt.Sprintf(`INSERT INTO %s (id, event_type, created_at)
		VALUES (:id, :event_type, :created_at)`, event.TableName())
	_, err := DB.NamedExecContext(ctx, sqlStr, event)
	return err
}

func (e *eventDb) CountByType(ctx context.Context, eventType enum.EventType) (int64, error) {
	var total int64
	sqlStr := `SELECT COUNT(*) FROM system_events WHERE event_type = $1`
	if err := DB.GetContext(ctx, &total, sqlStr, eventType); err != nil {
		return 0, err
	}
	return total, nil
}

// WorstUnits lista as unidades com mais feedbacks negativos (dashboard).
func (e *eventDb) WorstUnits(ctx context.Context, limit int) ([]dto.WorstUnit, error) {
	list := []dto.WorstUnit{}
	sqlStr := `SELECT u.id, u.title, COUNT(f.id) AS negative_count
		FROM knowledge_units u
		JOIN knowledge_feedbacks f ON f.knowledge_unit_id = u.id AND NOT f.is_positive
		WHERE u.deleted_at IS NULL
		GROUP BY u.id
		ORDER BY negative_count DESC
		LIMIT $1`
	if err := DB.SelectContext(ctx, &list, sqlStr, limit); err != nil {
		return nil, err
	}
	return list, nil
}
