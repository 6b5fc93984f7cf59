package common

// ChatMessage é uma mensagem da conversa enviada pela UI do chat.
type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages" binding:"required,min=1,dive"`
}

// LlmMessage define o formato de mensagem repassado ao provedor de geração.
type LlmMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// FeedbackSource identifica uma unidade citada na resposta avaliada.
// A UI devolve as fontes como recebidas; somente o id importa aqui.
type FeedbackSource struct {
	Id string `json:"id" binding:"required"`
}

type FeedbackRequest struct {
	FeedbackType string `json:"feedbackType" binding:"required,oneof=up down"`
	// Sources pode ser vazio: uma resposta sem fontes citadas não recebe
	// feedback atribuível e a requisição é um no-op bem-sucedido.
	Sources []FeedbackSource `json:"sources"`
}

type HandoffRequest struct {
	Messages  []ChatMessage `json:"messages" binding:"required,min=1,dive"`
	UserEmail string        `json:"userEmail"`
	UserName  string        `json:"userName"`
}

// UpsertKnowledgeRequest atende criação, edição e restauração. Os campos de
// conteúdo são validados no serviço, não no binding: um PUT de restauração
// carrega apenas {"restore": true}.
type UpsertKnowledgeRequest struct {
	Title              string   `json:"title"`
	Category           string   `json:"category"`
	ProblemDescription string   `json:"problemDescription"`
	OfficialResolution string   `json:"officialResolution"`
	Tags               []string `json:"tags"`
	TargetAudience     []string `json:"targetAudience"`
	Author             string   `json:"author"`
	// Restore limpa deletedAt em vez de editar o conteúdo (PUT).
	Restore bool `json:"restore"`
}

type BulkKnowledgeRequest struct {
	Ids    []string `json:"ids" binding:"required,min=1"`
	Action string   `json:"action" binding:"required,oneof=delete restore"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SetupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}
