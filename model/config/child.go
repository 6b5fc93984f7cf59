package config

type Database struct {
	Host     string `json:"host" mapstructure:"host" yaml:"host"`
	Port     string `json:"port" mapstructure:"port" yaml:"port"`
	Dbname   string `json:"dbname" mapstructure:"dbname" yaml:"dbname"`
	Username string `json:"username" mapstructure:"username" yaml:"username"`
	Password string `json:"password" mapstructure:"password" yaml:"password"`
	Sslmode  string `json:"sslmode" mapstructure:"sslmode" yaml:"sslmode"`
}

type Redis struct {
	Addr          string `json:"addr" mapstructure:"addr" yaml:"addr"`
	Password      string `json:"password" mapstructure:"password" yaml:"password"`
	DB            int64  `json:"db" mapstructure:"db" yaml:"db"`
	SessionPrefix string `json:"session_prefix" mapstructure:"session_prefix" yaml:"session_prefix"`
	// SessionTTL em segundos; o cookie de admin usa o mesmo valor.
	SessionTTL int64 `json:"session_ttl" mapstructure:"session_ttl" yaml:"session_ttl"`
}

type Llm struct {
	Url     string `json:"url" mapstructure:"url" yaml:"url"`
	Model   string `json:"model" mapstructure:"model" yaml:"model"`
	Auth    string `json:"auth" mapstructure:"auth" yaml:"auth"`
	Timeout int64  `json:"timeout" mapstructure:"timeout" yaml:"timeout"`
	// Temperature próxima de zero para respostas determinísticas e fiéis
	// ao contexto. Ponteiro para distinguir "não configurado" de 0.
	Temperature *float32 `json:"temperature" mapstructure:"temperature" yaml:"temperature"`
}

type LlmEmbedding struct {
	Url     string `json:"url" mapstructure:"url" yaml:"url"`
	Model   string `json:"model" mapstructure:"model" yaml:"model"`
	Auth    string `json:"auth" mapstructure:"auth" yaml:"auth"`
	Timeout int64  `json:"timeout" mapstructure:"timeout" yaml:"timeout"`
	// Dim é a dimensionalidade fixa do vetor (coluna vector do Postgres).
	Dim int `json:"dim" mapstructure:"dim" yaml:"dim"`
}

type Ai struct {
	// VectorSearchTopK unidades retornadas pela busca vetorial do chat.
	VectorSearchTopK int `json:"vector_search_top_k" mapstructure:"vector_search_top_k" yaml:"vector_search_top_k"`
	// VectorSearchMinSimilarity: somente unidades com similaridade
	// estritamente maior entram no contexto do gerador.
	VectorSearchMinSimilarity float64 `json:"vector_search_min_similarity" mapstructure:"vector_search_min_similarity" yaml:"vector_search_min_similarity"`
	// HistoryWindow é o número de mensagens recentes repassadas ao modelo.
	HistoryWindow int `json:"history_window" mapstructure:"history_window" yaml:"history_window"`
	// CurationSearchLimit é o limite da busca semântica da curadoria.
	CurationSearchLimit int `json:"curation_search_limit" mapstructure:"curation_search_limit" yaml:"curation_search_limit"`
	MaxQueryLength      int `json:"max_query_length" mapstructure:"max_query_length" yaml:"max_query_length"`
}

type Handoff struct {
	// WebhookUrl do fluxo n8n que abre o ticket no Zammad.
	WebhookUrl    string `json:"webhook_url" mapstructure:"webhook_url" yaml:"webhook_url"`
	Timeout       int64  `json:"timeout" mapstructure:"timeout" yaml:"timeout"`
	FallbackEmail string `json:"fallback_email" mapstructure:"fallback_email" yaml:"fallback_email"`
	FallbackName  string `json:"fallback_name" mapstructure:"fallback_name" yaml:"fallback_name"`
}

type Oss struct {
	Endpoint  string `json:"endpoint" mapstructure:"endpoint" yaml:"endpoint"`
	AccessKey string `json:"access_key" mapstructure:"access_key" yaml:"access_key"`
	SecretKey string `json:"secret_key" mapstructure:"secret_key" yaml:"secret_key"`
	Bucket    string `json:"bucket" mapstructure:"bucket" yaml:"bucket"`
	UseSSL    bool   `json:"use_ssl" mapstructure:"use_ssl" yaml:"use_ssl"`
	// PublicDomain opcional para montar a URL pública (ex.: via Traefik).
	PublicDomain string `json:"public_domain" mapstructure:"public_domain" yaml:"public_domain"`
}
