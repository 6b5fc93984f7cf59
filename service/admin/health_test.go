package admin

import (
	"testing"
	"time"

	"github.com/empregga/eva-portal/model/enum"
)

func TestCalculateHealth(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	daysAgo := func(days int) time.Time { return now.AddDate(0, 0, -days) }

	tests := []struct {
		name      string
		positive  int
		negative  int
		updatedAt time.Time
		want      enum.HealthStatus
	}{
		{"nova sem feedback", 0, 0, daysAgo(1), enum.HealthGreat},
		{"recente com aprovação alta", 10, 1, daysAgo(10), enum.HealthWarning},
		{"reprovada pela comunidade", 1, 2, daysAgo(5), enum.HealthCritical},
		{"dois negativos mas aprovação >= 50%", 2, 2, daysAgo(5), enum.HealthWarning},
		{"estagnada há mais de 180 dias", 0, 0, daysAgo(181), enum.HealthCritical},
		{"envelhecendo, mais de 90 dias", 0, 0, daysAgo(91), enum.HealthWarning},
		{"no limite de 90 dias", 0, 0, daysAgo(90), enum.HealthGreat},
		{"no limite de 180 dias", 0, 0, daysAgo(180), enum.HealthWarning},
		{"um negativo apenas", 0, 1, daysAgo(1), enum.HealthWarning},
		{"muitos positivos não salvam unidade estagnada", 50, 0, daysAgo(200), enum.HealthCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateHealth(tt.positive, tt.negative, tt.updatedAt, now)
			if got != tt.want {
				t.Errorf("CalculateHealth(%d, %d, -%v) = %s, esperado %s",
					tt.positive, tt.negative, now.Sub(tt.updatedAt), got, tt.want)
			}
			// Função pura: chamar de novo com as mesmas entradas não muda nada.
			if again := CalculateHealth(tt.positive, tt.negative, tt.updatedAt, now); again != got {
				t.Errorf("resultado não determinístico: %s != %s", again, got)
			}
		})
	}
}

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	daysAgo := func(days int) time.Time { return now.AddDate(0, 0, -days) }

	// Sem feedback: 180 dias a partir da última atualização.
	if got := DaysRemaining(0, 0, daysAgo(30), now); got != 150 {
		t.Errorf("sem feedback, 30 dias atrás = %d, esperado 150", got)
	}

	// Negativos encurtam 45 dias cada, positivos estendem 15.
	if got := DaysRemaining(2, 1, daysAgo(0), now); got != 165 {
		t.Errorf("2 positivos e 1 negativo = %d, esperado 165", got)
	}

	// O alvo satura em 0: muitos negativos não deixam o prazo negativo
	// antes de descontar a idade.
	if got := DaysRemaining(0, 10, daysAgo(0), now); got != 0 {
		t.Errorf("alvo deve saturar em 0, got %d", got)
	}

	// E satura em 365 no outro extremo.
	if got := DaysRemaining(100, 0, daysAgo(0), now); got != 365 {
		t.Errorf("alvo deve saturar em 365, got %d", got)
	}

	// Unidade vencida: prazo negativo é permitido após descontar a idade.
	if got := DaysRemaining(0, 0, daysAgo(200), now); got != -20 {
		t.Errorf("unidade vencida = %d, esperado -20", got)
	}
}
