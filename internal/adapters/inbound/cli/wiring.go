package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/textgate/textgate/internal/adapters/outbound/config"
	"github.com/textgate/textgate/internal/adapters/outbound/history"
	"github.com/textgate/textgate/internal/adapters/outbound/scorer"
	"github.com/textgate/textgate/internal/application"
	"github.com/textgate/textgate/internal/domain"
	"github.com/textgate/textgate/internal/domain/quality"
	"github.com/textgate/textgate/internal/logger"
)

// runtime is the wired set of dependencies a command works with.
type runtime struct {
	dir       string
	cfg       domain.Config
	log       logger.Logger
	validator *quality.Validator
}

func loadRuntime(cmd *cobra.Command, g *globalFlags) (*runtime, error) {
	dir, err := filepath.Abs(g.dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.New().Load(dir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	level := cfg.Log.Level
	if g.logLevel != "" {
		level = g.logLevel
	}
	log := logger.New(logger.Config{
		Level:  level,
		Output: cmd.ErrOrStderr(),
		JSON:   cfg.Log.JSON || g.logJSON,
	})

	return &runtime{
		dir:       dir,
		cfg:       cfg,
		log:       log,
		validator: quality.New(cfg.Policy),
	}, nil
}

// scoreService wires the orchestrator. The scorer is left out when no
// endpoint is configured.
func (rt *runtime) scoreService() *application.ScoreService {
	var sc domain.Scorer
	if rt.cfg.Scorer.Endpoint != "" {
		sc = scorer.New(rt.cfg.Scorer)
	}
	return application.NewScoreService(rt.validator, sc, history.New(rt.dir), rt.log)
}

// readText resolves the text to work on: --text wins, then a file argument,
// then stdin ("-" or no argument).
func readText(cmd *cobra.Command, args []string, text string) (string, error) {
	if cmd.Flags().Changed("text") {
		return text, nil
	}

	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	if len(data) == 0 {
		return "", domain.ErrEmptyInput
	}
	return string(data), nil
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
