package user

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/empregga/eva-portal/dao"
	"github.com/empregga/eva-portal/global"
	"github.com/empregga/eva-portal/model/common"
	"github.com/empregga/eva-portal/model/config"
	"github.com/empregga/eva-portal/model/db"
	"github.com/empregga/eva-portal/model/enum"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// HandoffService transfere a conversa para atendimento humano: envia a
// transcrição ao webhook do n8n, que abre o ticket no Zammad.
type HandoffService struct {
	log        *logrus.Logger
	httpClient *http.Client
	cfg        config.Handoff
	events     eventStore

	sideEffectTimeout time.Duration
}

func NewHandoffService() *HandoffService {
	timeout := time.Duration(global.Config.Handoff.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HandoffService{
		log:               global.Log,
		httpClient:        &http.Client{Timeout: timeout},
		cfg:               global.Config.Handoff,
		events:            &dao.App.EventDb,
		sideEffectTimeout: 10 * time.Second,
	}
}

type handoffPayload struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Transcript string `json:"transcript"`
}

type handoffWebhookResult struct {
	TicketId string `json:"ticketId"`
}

// Open registra o evento de HANDOFF e aciona o webhook. Falha do webhook não
// perde o atendimento: devolve um protocolo interno de contingência.
func (s *HandoffService) Open(ctx context.Context, req *common.HandoffRequest) (*common.HandoffResponse, error) {
	if s.cfg.WebhookUrl == "" {
		return nil, errors.New("transferência para atendimento humano não está configurada")
	}

	s.recordEvent()

	payload := handoffPayload{
		Email:      req.UserEmail,
		Name:       req.UserName,
		Transcript: renderTranscript(req.Messages),
	}
	if payload.Email == "" {
		payload.Email = s.cfg.FallbackEmail
	}
	if payload.Name == "" {
		payload.Name = s.cfg.FallbackName
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.WebhookUrl, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		s.log.Errorf("webhook de transferência falhou: %v", err)
		return &common.HandoffResponse{TicketId: fallbackTicketId()}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.log.Errorf("webhook de transferência devolveu status %d", resp.StatusCode)
		return &common.HandoffResponse{TicketId: fallbackTicketId()}, nil
	}

	var result handoffWebhookResult
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil || result.TicketId == "" {
		return &common.HandoffResponse{TicketId: fallbackTicketId()}, nil
	}

	return &common.HandoffResponse{TicketId: result.TicketId}, nil
}

func (s *HandoffService) recordEvent() {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.log.Errorf("pânico ao registrar evento de transferência: %v", r)
			}
		}()
		bg, cancel := context.WithTimeout(context.Background(), s.sideEffectTimeout)
		defer cancel()
		if err := s.events.Insert(bg, &db.SystemEvent{
			Id:        uuid.NewString(),
			EventType: enum.EventHandoff,
			CreatedAt: time.Now(),
		}); err != nil {
			s.log.Errorf("registro de evento de transferência falhou: %v", err)
		}
	}()
}

// renderTranscript monta a conversa em HTML simples para o corpo do ticket.
func renderTranscript(messages []common.ChatMessage) string {
	var sb strings.Builder
	for _, msg := range messages {
		author := "Usuário"
		if msg.Role == "assistant" {
			author = "EVA"
		}
		sb.WriteString(fmt.Sprintf("<p><b>%s:</b> %s</p>", author, html.EscapeString(msg.Content)))
	}
	return sb.String()
}

// fallbackTicketId gera um protocolo interno quando o webhook não devolve o
// número do ticket; o suporte localiza a conversa por ele nos logs.
func fallbackTicketId() string {
	return "INT-" + strings.ToUpper(uuid.NewString()[:8])
}
