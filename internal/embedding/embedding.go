package embedding

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

type Service interface {
	// CreateEmbedding converte um texto em um vetor denso de dimensão fixa.
	// Falha do provedor é erro duro; quem chama decide se tenta de novo.
	CreateEmbedding(ctx context.Context, text string) ([]float32, error)
}

type client struct {
	openAIClient *openai.Client
	modelName    string
	// dim esperado do vetor; 0 desativa a checagem.
	dim int
}

func NewClient(openAIClient *openai.Client, modelName string, dim int) Service {
	return &client{
		openAIClient: openAIClient,
		modelName:    modelName,
		dim:          dim,
	}
}

func (c *client) CreateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("texto vazio não pode ser vetorizado")
	}

	req := openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(c.modelName),
	}

	resp, err := c.openAIClient.CreateEmbeddings(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("requisição de vetorização falhou: %w", err)
	}

	if len(resp.Data) != 1 {
		return nil, fmt.Errorf("provedor devolveu %d vetores, esperado 1", len(resp.Data))
	}

	vec := resp.Data[0].Embedding
	if c.dim > 0 && len(vec) != c.dim {
		return nil, fmt.Errorf("dimensão do vetor incompatível: esperado %d, recebido %d", c.dim, len(vec))
	}

	return vec, nil
}
