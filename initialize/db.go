package initialize

import (
	"fmt"
	"time"

	"github.com/empregga/eva-portal/dao"
	"github.com/empregga/eva-portal/global"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// dbStart conecta no Postgres e garante a extensão pgvector.
func (i *Initializer) dbStart() error {
	cfg := global.Config.Database
	dsn := fmt.Sprintf("host=%s port=%s dbname=%s user=%s password=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.Dbname, cfg.Username, cfg.Password, cfg.Sslmode)

	var err error
	if dao.DB, err = sqlx.Connect("pgx", dsn); err != nil {
		return fmt.Errorf("falha na conexão com o Postgres (host: %s, db: %s): %w", cfg.Host, cfg.Dbname, err)
	}

	dao.DB.SetMaxOpenConns(16)
	dao.DB.SetMaxIdleConns(8)
	dao.DB.SetConnMaxLifetime(time.Minute * 5)

	// A busca vetorial depende da extensão; sem ela nada funciona.
	if _, err = dao.DB.Exec(`CREATE EXTENSION IF NOT EXISTS vector`); err != nil {
		return fmt.Errorf("falha ao habilitar a extensão vector: %w", err)
	}

	global.Log.Infof("Postgres %s; host: %s, db: %s", i.dbVersion(), cfg.Host, cfg.Dbname)
	return nil
}

func (i *Initializer) dbClose() error {
	if dao.DB != nil {
		return dao.DB.Close()
	}
	return nil
}

func (i *Initializer) dbVersion() (v string) {
	if err := dao.DB.Get(&v, `SHOW server_version`); err != nil {
		global.Log.Warnf("falha ao consultar a versão do Postgres: %v", err)
	}
	return
}
