package config

// Config is the top-level phoccy configuration, corresponding to .phoccy.yml.
type Config struct {
	Port       int    `yaml:"port" koanf:"port"`
	DataDir    string `yaml:"data_dir" koanf:"data_dir"`
	KBPath     string `yaml:"kb_path" koanf:"kb_path"`
	IntentsDir string `yaml:"intents_dir" koanf:"intents_dir"`
	AllowAll   bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`

	Ollama   OllamaConfig   `yaml:"ollama" koanf:"ollama"`
	OpenAI   OpenAIConfig   `yaml:"openai" koanf:"openai"`
	Fallback FallbackConfig `yaml:"fallback" koanf:"fallback"`
}

// OllamaConfig configures the local generative fallback.
type OllamaConfig struct {
	Enabled bool   `yaml:"enabled" koanf:"enabled"`
	Host    string `yaml:"host" koanf:"host"`
	Model   string `yaml:"model" koanf:"model"`
}

// OpenAIConfig configures the hosted completion fallback. The API key
// is never stored in the file; it comes from OPENAI_API_KEY, and the
// step is skipped entirely when the variable is unset.
type OpenAIConfig struct {
	Model     string `yaml:"model" koanf:"model"`
	MaxTokens int    `yaml:"max_tokens" koanf:"max_tokens"`
}

// FallbackConfig bounds the external fallback calls.
type FallbackConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds" koanf:"timeout_seconds"`
	RequestsPerMin int `yaml:"requests_per_min" koanf:"requests_per_min"`
}
