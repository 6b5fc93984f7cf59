package admin

import (
	"time"

	"github.com/empregga/eva-portal/model/enum"
)

// CalculateHealth classifica a saúde de uma unidade a partir dos feedbacks
// acumulados e da idade da última atualização. Função pura: o resultado é
// recomputado a cada listagem, nunca persistido.
//
// Regras, avaliadas em ordem:
//  1. CRITICAL: 2+ negativos com taxa de aprovação abaixo de 50%;
//  2. CRITICAL: mais de 180 dias sem atualização;
//  3. WARNING: qualquer negativo, ou mais de 90 dias sem atualização;
//  4. GREAT: caso contrário.
func CalculateHealth(positive, negative int, updatedAt, now time.Time) enum.HealthStatus {
	approveRate := 1.0
	if total := positive + negative; total > 0 {
		approveRate = float64(positive) / float64(total)
	}
	daysSince := daysBetween(updatedAt, now)

	if negative >= 2 && approveRate < 0.5 {
		return enum.HealthCritical
	}
	if daysSince > 180 {
		return enum.HealthCritical
	}
	if negative > 0 || daysSince > 90 {
		return enum.HealthWarning
	}
	return enum.HealthGreat
}

// DaysRemaining é a variante antiga da mesma medida, mantida enquanto a UI
// exibe a janela de validade: cada negativo encurta o prazo em 45 dias, cada
// positivo estende em 15, sempre entre 0 e 365.
//
// Deprecated: usar CalculateHealth; o prazo some junto com a listagem antiga.
func DaysRemaining(positive, negative int, updatedAt, now time.Time) int {
	target := 180 - 45*negative + 15*positive
	if target < 0 {
		target = 0
	}
	if target > 365 {
		target = 365
	}
	return target - daysBetween(updatedAt, now)
}

func daysBetween(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours() / 24)
}
