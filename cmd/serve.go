package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pillaihoc/phoccy/internal/config"
	"github.com/pillaihoc/phoccy/internal/db"
	"github.com/pillaihoc/phoccy/internal/engine"
	"github.com/pillaihoc/phoccy/internal/fallback"
	"github.com/pillaihoc/phoccy/internal/followup"
	"github.com/pillaihoc/phoccy/internal/intent"
	"github.com/pillaihoc/phoccy/internal/kb"
	"github.com/pillaihoc/phoccy/internal/llm"
	"github.com/pillaihoc/phoccy/internal/misslog"
	"github.com/pillaihoc/phoccy/internal/resolver"
	"github.com/pillaihoc/phoccy/internal/server"
	"github.com/pillaihoc/phoccy/internal/session"
	"github.com/pillaihoc/phoccy/internal/webui"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the PHOCCy chatbot server",
	Long:  `Starts the chatbot HTTP server with the query API, websocket chat, the embedded web UI and the unanswered-query curation API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort > 0 {
			cfg.Port = servePort
		}

		logger, err := buildLogger()
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		defer logger.Sync()

		k, err := kb.Load(cfg.KBPath)
		if err != nil {
			return fmt.Errorf("loading knowledge base: %w", err)
		}

		catalog := intent.DefaultCatalog()
		extras, err := intent.LoadDir(cfg.IntentsDir)
		if err != nil {
			return fmt.Errorf("loading intents from %s: %w", cfg.IntentsDir, err)
		}
		catalog = intent.Merge(catalog, extras)

		dbPath := filepath.Join(cfg.DataDir, "phoccy.db")
		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		missStore := misslog.NewStore(database)
		sink := misslog.NewSink(
			misslog.NewFileLog(filepath.Join(cfg.DataDir, "unanswered.log")),
			missStore,
			logger,
		)

		chain := fallback.NewChain(buildFallbackSteps(cfg), sink, logger)

		eng := engine.New(
			intent.NewMatcher(catalog),
			resolver.New(k),
			session.NewMemoryStore(),
			followup.NewTable(catalog),
			chain,
			logger,
		)

		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: cfg.AllowAll,
		}, eng, logger)

		misslog.RegisterRoutes(srv.Router(), missStore)
		webui.New(k).RegisterRoutes(srv.Router())

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		fmt.Fprintf(os.Stderr, "phoccy server v%s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Knowledge base: %s (%d intents)\n", cfg.KBPath, len(catalog))
		fmt.Fprintf(os.Stderr, "  Database: %s\n", dbPath)

		return srv.Start()
	},
}

// buildFallbackSteps assembles the generative fallback chain from config:
// local Ollama first when enabled, then the hosted model when its API key
// is present. Both are rate limited.
func buildFallbackSteps(cfg *config.Config) []fallback.Step {
	timeout := time.Duration(cfg.Fallback.TimeoutSeconds) * time.Second

	var steps []fallback.Step
	if cfg.Ollama.Enabled {
		p := llm.NewRateLimitedProvider(
			llm.NewOllamaProvider(cfg.Ollama.Host, cfg.Ollama.Model),
			cfg.Fallback.RequestsPerMin,
		)
		steps = append(steps, fallback.NewProviderStep("ollama", p, cfg.Ollama.Model, 0, timeout))
	}
	if config.HostedKeyConfigured() {
		p := llm.NewRateLimitedProvider(
			llm.NewOpenAIProvider(os.Getenv(config.OpenAIKeyEnvVar), cfg.OpenAI.Model),
			cfg.Fallback.RequestsPerMin,
		)
		steps = append(steps, fallback.NewProviderStep("openai", p, cfg.OpenAI.Model, cfg.OpenAI.MaxTokens, timeout))
	}
	return steps
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
