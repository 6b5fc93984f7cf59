package llm

import (
	"errors"
	"testing"
)

func TestParseAnswerValid(t *testing.T) {
	answer, err := ParseAnswer(`{"has_answer": true, "response": "Acesse o menu **Vagas**."}`)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !answer.HasAnswer {
		t.Error("has_answer deveria ser true")
	}
	if answer.Response != "Acesse o menu **Vagas**." {
		t.Errorf("response inesperado: %q", answer.Response)
	}
}

func TestParseAnswerDecline(t *testing.T) {
	answer, err := ParseAnswer(`{"has_answer": false, "response": "Desculpe, não consigo atender essa demanda no momento."}`)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if answer.HasAnswer {
		t.Error("has_answer deveria ser false")
	}
}

// Qualquer divergência do contrato de dois campos é rejeitada, nunca
// corrigida: o texto seria repassado ao usuário final.
func TestParseAnswerRejected(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"nao é JSON", `Claro! Aqui está a resposta...`},
		{"JSON truncado", `{"has_answer": true, "response": "ok`},
		{"sem has_answer", `{"response": "ok"}`},
		{"sem response", `{"has_answer": true}`},
		{"has_answer como string", `{"has_answer": "true", "response": "ok"}`},
		{"response como número", `{"has_answer": true, "response": 42}`},
		{"array no topo", `[{"has_answer": true, "response": "ok"}]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseAnswer(tc.raw); !errors.Is(err, ErrMalformedOutput) {
				t.Errorf("esperado ErrMalformedOutput, obtido %v", err)
			}
		})
	}
}

// Campos extras não derrubam a validação: o schema exige os dois campos com
// os tipos corretos e ignora o restante.
func TestParseAnswerExtraFields(t *testing.T) {
	answer, err := ParseAnswer(`{"has_answer": true, "response": "ok", "confidence": 0.9}`)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !answer.HasAnswer || answer.Response != "ok" {
		t.Errorf("resposta inesperada: %+v", answer)
	}
}
