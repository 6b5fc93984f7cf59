package enum

type Msg string

const (
	DefaultSuccessMsg Msg = `ok`
	DefaultFailMsg    Msg = `erro`
)

type ResCode int8

const (
	SuccessCode   ResCode = 0
	ErrorCode     ResCode = 1
	AuthErrorCode ResCode = 2
)

// Category é a categoria de negócio de uma unidade de conhecimento.
type Category string

const (
	CategoryPlataforma   Category = "PLATAFORMA"
	CategoryOperacional  Category = "OPERACIONAL"
	CategoryUniversidade Category = "UNIVERSIDADE"
	CategoryPagamento    Category = "PAGAMENTO"
	CategoryCorporativo  Category = "CORPORATIVO"
	CategoryOutros       Category = "OUTROS"
)

// Categories lista todas as categorias aceitas, na ordem exibida pela UI.
var Categories = []Category{
	CategoryPlataforma,
	CategoryOperacional,
	CategoryUniversidade,
	CategoryPagamento,
	CategoryCorporativo,
	CategoryOutros,
}

type UnitStatus string

const (
	StatusDraft       UnitStatus = "DRAFT"
	StatusPublished   UnitStatus = "PUBLISHED"
	StatusNeedsReview UnitStatus = "NEEDS_REVIEW"
	StatusArchived    UnitStatus = "ARCHIVED"
)

// EventType é o tipo de evento de uso registrado para o analytics.
type EventType string

const (
	EventChatQuery EventType = "CHAT_QUERY"
	EventHandoff   EventType = "HANDOFF"
)

type FeedbackType string

const (
	FeedbackUp   FeedbackType = "up"
	FeedbackDown FeedbackType = "down"
)

// HealthStatus é a classificação de saúde/confiança de uma unidade,
// derivada dos feedbacks e da idade da última atualização.
type HealthStatus string

const (
	HealthGreat    HealthStatus = "GREAT"
	HealthWarning  HealthStatus = "WARNING"
	HealthCritical HealthStatus = "CRITICAL"
)
