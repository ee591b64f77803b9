package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .phoccy.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to phoccy! Let's configure the chatbot service.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:   "Port to listen on",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 2. Knowledge base file.
	kbPrompt := promptui.Prompt{
		Label:   "Knowledge base JSON file",
		Default: cfg.KBPath,
	}
	if cfg.KBPath, err = kbPrompt.Run(); err != nil {
		return nil, fmt.Errorf("kb path: %w", err)
	}

	// 3. Custom intents directory.
	intentsPrompt := promptui.Prompt{
		Label:   "Custom intents directory (leave as-is if unused)",
		Default: cfg.IntentsDir,
	}
	if cfg.IntentsDir, err = intentsPrompt.Run(); err != nil {
		return nil, fmt.Errorf("intents dir: %w", err)
	}

	// 4. Local generative fallback.
	ollamaPrompt := promptui.Select{
		Label: "Use a local Ollama server as generative fallback?",
		Items: []string{"yes", "no"},
	}
	idx, _, err := ollamaPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("ollama selection: %w", err)
	}
	cfg.Ollama.Enabled = idx == 0

	if cfg.Ollama.Enabled {
		hostPrompt := promptui.Prompt{
			Label:   "Ollama host",
			Default: cfg.Ollama.Host,
		}
		if cfg.Ollama.Host, err = hostPrompt.Run(); err != nil {
			return nil, fmt.Errorf("ollama host: %w", err)
		}

		modelPrompt := promptui.Prompt{
			Label:   "Ollama model",
			Default: cfg.Ollama.Model,
		}
		if cfg.Ollama.Model, err = modelPrompt.Run(); err != nil {
			return nil, fmt.Errorf("ollama model: %w", err)
		}
	}

	// 5. Hosted completion model.
	openaiPrompt := promptui.Prompt{
		Label:   "Hosted completion model (used when OPENAI_API_KEY is set)",
		Default: cfg.OpenAI.Model,
	}
	if cfg.OpenAI.Model, err = openaiPrompt.Run(); err != nil {
		return nil, fmt.Errorf("openai model: %w", err)
	}

	if !HostedKeyConfigured() {
		fmt.Printf("\nNote: set %s in your environment to enable the hosted fallback.\n", OpenAIKeyEnvVar)
	}

	configPath := ".phoccy.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}
