package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/empregga/eva-portal/model/db"
)

type adminDb struct{}

func (a *adminDb) GetByEmail(ctx context.Context, email string) (*db.Admin, error) {
	admin := new(db.Admin)
	sqlStr := fmt.Sprintf(`SELECT * FROM %s WHERE email = $1`, admin.TableName())
	if err := DB.GetContext(ctx, admin, sqlStr, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return admin, nil
}

func (a *adminDb) Insert(ctx context.Context, admin *db.Admin) error {
	sqlStr := fmt.Sprintf(`INSERT INTO %s (id, email, password, name, created_at)
		VALUES (:id, :email, :password, :name, :created_at)`, admin.TableName())
	_, err := DB.NamedExecContext(ctx, sqlStr, admin)
	return err
}

func (a *adminDb) Count(ctx context.Context) (int64, error) {
	var total int64
	sqlStr := `SELECT COUNT(*) FROM admins`
	if err := DB.GetContext(ctx, &total, sqlStr); err != nil {
		return 0, err
	}
	return total, nil
}
