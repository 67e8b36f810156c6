package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/textgate/textgate/internal/domain"
)

const configFileName = ".textgate.yaml"

func newInitCmd(g *globalFlags) *cobra.Command {
	var (
		endpoint string
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .textgate.yaml configuration file",
		Long:  "Create a .textgate.yaml with the default policy, scorer, server and log settings.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(g.dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, configFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
				}
			}

			content, err := generateConfig(endpoint)
			if err != nil {
				return err
			}

			if err := os.WriteFile(dest, content, 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", "", "Scoring model endpoint to write into the config")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .textgate.yaml")

	return cmd
}

func generateConfig(endpoint string) ([]byte, error) {
	cfg := domain.DefaultConfig()
	cfg.Scorer.Endpoint = endpoint
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}

	header := "# textgate configuration\n# Texts scoring a penalty below 0.5 are rejected before reaching the model.\n\n"
	return append([]byte(header), data...), nil
}
