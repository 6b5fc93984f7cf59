package task

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/empregga/eva-portal/global"
)

// CleanUpLogs remove arquivos de log datados além da retenção configurada.
func (m *Manager) CleanUpLogs() error {
	retentionDays := global.Config.LogRetentionDays
	if retentionDays == 0 {
		global.Log.Info("limpeza de logs desativada (log_retention_days = 0)")
		return nil
	}

	// gin_log_path e run_log_path vivem no mesmo diretório.
	logDir := filepath.Dir(global.Config.RunLogPath)
	now := time.Now().In(global.Tz)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, global.Tz)
	cutoffDate := today.AddDate(0, 0, -int(retentionDays))

	deletedCount := 0
	var errs []string

	err := filepath.WalkDir(logDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		// Extrai a data do sufixo do nome, ex.: run.log.2026-08-30
		fileDate, ok := parseDateFromLogFileName(d.Name())
		if !ok {
			return nil
		}

		if fileDate.Before(cutoffDate) {
			if err := os.Remove(path); err != nil {
				errMsg := fmt.Sprintf("falha ao remover %s: %v", path, err)
				global.Log.Error(errMsg)
				errs = append(errs, errMsg)
			} else {
				deletedCount++
			}
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("falha ao percorrer o diretório de logs '%s': %w", logDir, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("erros na limpeza de logs: %s", strings.Join(errs, "; "))
	}

	global.Log.Infof("limpeza de logs concluída, %d arquivo(s) removido(s)", deletedCount)
	return nil
}

func parseDateFromLogFileName(filename string) (time.Time, bool) {
	parts := strings.Split(filename, ".")
	if len(parts) < 2 {
		return time.Time{}, false
	}

	dateStr := parts[len(parts)-1]
	t, err := time.ParseInLocation("2006-01-02", dateStr, global.Tz)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
