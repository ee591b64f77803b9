package config

// OpenAIKeyEnvVar is the environment variable holding the hosted
// completion API credential.
const OpenAIKeyEnvVar = "OPENAI_API_KEY"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:       3000,
		DataDir:    ".phoccy",
		KBPath:     "data/kb.json",
		IntentsDir: "data/intents",
		AllowAll:   false,
		Ollama: OllamaConfig{
			Enabled: true,
			Host:    "http://localhost:11434",
			Model:   "llama3",
		},
		OpenAI: OpenAIConfig{
			Model:     "gpt-4o-mini",
			MaxTokens: 256,
		},
		Fallback: FallbackConfig{
			TimeoutSeconds: 10,
			RequestsPerMin: 30,
		},
	}
}
