// Package cli wires the modelscout commands.
package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/modelscout/cli/internal/config"
	"github.com/modelscout/cli/internal/openai"
	"github.com/modelscout/cli/internal/registry"
)

// modelCacheTTL is how long a successful model-list fetch stays fresh.
const modelCacheTTL = 5 * time.Minute

// Execute builds and runs the root command.
func Execute(cfg *config.Config) error {
	fetcher := openai.NewFetcher(modelCacheTTL, cfg.Debug)
	reg := registry.New()

	rootCmd := &cobra.Command{
		Use:   "modelscout",
		Short: "Discover and normalize models from API-key providers",
		Long: `modelscout manages model provider sources and keeps a normalized
catalog of the models they expose.

Quick Start:
  • Add a source:     modelscout source add
  • List models:      modelscout model list
  • Model details:    modelscout model get <id>
  • Force a refetch:  modelscout model refresh`,
		Example: `  # Add a provider source interactively
  modelscout source add

  # List visible models from every source
  modelscout model list

  # Include hidden snapshot variants
  modelscout model list --all`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newSourceCommand(cfg),
		newModelCommand(cfg, fetcher, reg),
		newVersionCommand(),
	)

	return rootCmd.Execute()
}
