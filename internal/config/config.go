package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// defaultInstructionTemplate enforces grounded, citation-bearing answers.
// Deployments override it with ASSISTANT_INSTRUCTIONS; {assistant_name} is
// substituted at render time.
const defaultInstructionTemplate = `You are a **{assistant_name}**.

**Your task**
- Use the retrieved passages below as your only evidence.
- Compose a concise answer (2-4 sentences) grounded **only** in the retrieved passages.
- Every factual sentence must include a citation in the format ` + "`(filename, page/section)`" + `.
  If you cannot provide such a citation, say "I don't see that in the knowledge base." instead of guessing.
- Finish with a ` + "`Sources:`" + ` section listing each supporting document on its own line: ` + "`- filename (page/section)`" + `.
  Do not omit this section even if there is only one source.

**Interaction guardrails**
1. Ask for clarification when the question is ambiguous.
2. Explain when the knowledge base does not contain the requested information.
3. Never rely on external knowledge or unstated assumptions.
4. Be helpful, professional, and concise.`

// Config holds all environment backed configuration for the chat server.
// Everything is read once at process start; there is no hot reload.
type Config struct {
	// Service settings
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"kbchat"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPHost        string        `env:"SERVER_HOST" envDefault:"127.0.0.1"`
	HTTPPort        int           `env:"SERVER_PORT" envDefault:"8002"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"console"`

	// External AI platform
	PlatformAPIKey  string        `env:"OPENAI_API_KEY,notEmpty"`
	PlatformBaseURL string        `env:"PLATFORM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	PlatformTimeout time.Duration `env:"PLATFORM_TIMEOUT" envDefault:"120s"`
	VectorStoreID   string        `env:"VECTOR_STORE_ID,notEmpty"`

	// Assistant behavior
	AssistantName        string  `env:"ASSISTANT_NAME" envDefault:"Knowledge Assistant"`
	AssistantModel       string  `env:"ASSISTANT_MODEL" envDefault:"gpt-4.1-mini"`
	AssistantTemperature float32 `env:"ASSISTANT_TEMPERATURE" envDefault:"0.3"`
	MaxSearchResults     int     `env:"MAX_SEARCH_RESULTS" envDefault:"5"`
	InstructionTemplate  string  `env:"ASSISTANT_INSTRUCTIONS"`

	// Documents
	DocumentManifest string `env:"DOCUMENT_MANIFEST" envDefault:"documents.yaml"`

	// CORS
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	// OpenTelemetry
	EnableTracing bool   `env:"OTEL_ENABLED" envDefault:"false"`
	OTLPEndpoint  string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
}

// Load parses environment variables into Config and performs minimal
// validation. A validation failure is fatal; the process must not start
// serving traffic with incomplete configuration.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	if cfg.AssistantTemperature < 0 || cfg.AssistantTemperature > 1 {
		return nil, fmt.Errorf("ASSISTANT_TEMPERATURE must be in [0.0, 1.0], got %v", cfg.AssistantTemperature)
	}
	if cfg.MaxSearchResults <= 0 {
		return nil, fmt.Errorf("MAX_SEARCH_RESULTS must be positive, got %d", cfg.MaxSearchResults)
	}
	if strings.TrimSpace(cfg.InstructionTemplate) == "" {
		cfg.InstructionTemplate = defaultInstructionTemplate
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	return cfg, nil
}

// Addr returns the HTTP server listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HTTPHost, c.HTTPPort)
}

// Instructions renders the instruction template with the named
// substitution points filled in.
func (c *Config) Instructions() string {
	return strings.ReplaceAll(c.InstructionTemplate, "{assistant_name}", c.AssistantName)
}
