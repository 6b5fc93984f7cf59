package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/empregga/eva-portal/model/common"
	"github.com/empregga/eva-portal/model/config"
	"github.com/empregga/eva-portal/model/enum"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// ErrMalformedOutput indica que o modelo devolveu algo fora do contrato JSON
// de dois campos. É falha dura da requisição: repassar texto não validado ao
// usuário final não é seguro.
var ErrMalformedOutput = errors.New("saída do modelo fora do formato JSON esperado")

// Answer é a resposta tipada do gerador.
type Answer struct {
	HasAnswer bool   `json:"has_answer"`
	Response  string `json:"response"`
}

type Service interface {
	// GenerateAnswer envia o prompt de sistema (com o bloco de contexto) e o
	// histórico recente, e devolve a resposta já validada.
	// history deve incluir a última mensagem do usuário.
	GenerateAnswer(ctx context.Context, history []common.LlmMessage, contextText string) (*Answer, error)
}

type client struct {
	log          *logrus.Logger
	openAIClient *openai.Client
	cfg          config.Llm
}

func NewClient(log *logrus.Logger, openAIClient *openai.Client, cfg config.Llm) Service {
	return &client{
		log:          log,
		openAIClient: openAIClient,
		cfg:          cfg,
	}
}

// answerSchema define o contrato estrito da saída do modelo: exatamente os
// dois campos reconhecidos, ambos obrigatórios, sem coerção de tipos.
var answerSchema = func() *jsonschema.Resolved {
	s := &jsonschema.Schema{
		Type:     "object",
		Required: []string{enum.AnswerFieldHasAnswer, enum.AnswerFieldResponse},
		Properties: map[string]*jsonschema.Schema{
			enum.AnswerFieldHasAnswer: {Type: "boolean"},
			enum.AnswerFieldResponse:  {Type: "string"},
		},
	}
	resolved, err := s.Resolve(nil)
	if err != nil {
		panic(fmt.Sprintf("schema de resposta inválido: %v", err))
	}
	return resolved
}()

func (c *client) GenerateAnswer(ctx context.Context, history []common.LlmMessage, contextText string) (*Answer, error) {
	if c.cfg.Model == "" {
		return nil, errors.New("modelo de geração não configurado")
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: fmt.Sprintf(string(enum.SystemPromptRAG), contextText),
	})
	for _, msg := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	req := openai.ChatCompletionRequest{
		Model:    c.cfg.Model,
		Messages: messages,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}
	if c.cfg.Temperature != nil {
		req.Temperature = *c.cfg.Temperature
	}

	resp, err := c.openAIClient.CreateChatCompletion(ctx, req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		c.log.Errorf("chamada ao provedor de geração falhou: %v", err)
		return nil, errors.New("serviço de geração indisponível no momento")
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, errors.New("provedor de geração devolveu resposta vazia")
	}

	return ParseAnswer(resp.Choices[0].Message.Content)
}

// ParseAnswer valida a saída bruta do modelo contra o schema de dois campos.
// Rejeita (nunca corrige) qualquer divergência.
func ParseAnswer(raw string) (*Answer, error) {
	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	if err := answerSchema.Validate(payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	var answer Answer
	if err := json.Unmarshal([]byte(raw), &answer); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	return &answer, nil
}
