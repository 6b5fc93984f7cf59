package user

import (
	"fmt"
	"strings"

	"github.com/empregga/eva-portal/model/dto"
	"github.com/empregga/eva-portal/model/enum"
)

// FilterRelevant mantém apenas os resultados com similaridade estritamente
// maior que o limiar. A ordem de entrada (mais similar primeiro) é preservada.
func FilterRelevant(results []dto.SearchResult, minSimilarity float64) []dto.SearchResult {
	relevant := make([]dto.SearchResult, 0, len(results))
	for _, r := range results {
		if r.Similarity > minSimilarity {
			relevant = append(relevant, r)
		}
	}
	return relevant
}

// ComposeContext monta o bloco de contexto injetado no prompt de sistema.
// Sem resultados relevantes, devolve a sentinela que instrui o modelo a
// declinar em vez de inventar resposta.
func ComposeContext(results []dto.SearchResult) string {
	if len(results) == 0 {
		return enum.NoKnowledgeSentinel
	}

	blocks := make([]string, 0, len(results))
	for _, r := range results {
		blocks = append(blocks, fmt.Sprintf("[Unidade ID: %s | Título: %s]\nProblema: %s\nResolução Oficial: %s",
			r.Id, r.Title, r.ProblemDescription, r.OfficialResolution))
	}
	return strings.Join(blocks, "\n---\n")
}
