package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modelscout/cli/internal/catalog"
	"github.com/modelscout/cli/internal/config"
	apperrors "github.com/modelscout/cli/internal/errors"
	"github.com/modelscout/cli/internal/formatter"
	"github.com/modelscout/cli/internal/openai"
	"github.com/modelscout/cli/internal/output"
	"github.com/modelscout/cli/internal/registry"
)

func newModelCommand(cfg *config.Config, fetcher *openai.Fetcher, reg *registry.Registry) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "model",
		Aliases: []string{"models"},
		Short:   "Browse normalized models from configured sources",
		Long:    `Fetch model lists from every configured source and browse the normalized catalog.`,
	}

	cmd.AddCommand(
		newModelListCommand(cfg, fetcher, reg),
		newModelGetCommand(cfg, fetcher, reg),
		newModelRefreshCommand(cfg, fetcher, reg),
	)

	return cmd
}

// syncSources fetches each source's model list and merges the
// normalized records into the registry. Sources are limited to onlyID
// when it is non-empty.
func syncSources(ctx context.Context, cfg *config.Config, fetcher *openai.Fetcher, reg *registry.Registry, onlyID string) error {
	sources := cfg.Sources
	if onlyID != "" {
		src, ok := cfg.Source(onlyID)
		if !ok {
			return apperrors.ValidationError(
				fmt.Errorf("source %q not found", onlyID),
				"Run 'modelscout source list' to see configured sources.",
			)
		}
		sources = []config.Source{src}
	}
	if len(sources) == 0 {
		return apperrors.ConfigErrorWithContext(
			fmt.Errorf("no sources configured"),
			"Add one with 'modelscout source add' or set MODELSCOUT_API_KEY.",
		)
	}

	for _, src := range sources {
		spin := output.NewSpinner(fmt.Sprintf("Fetching models from %s", src.DisplayName()), output.DetectMode())
		spin.Start()

		descriptors, err := fetcher.Models(ctx, src)
		if err != nil {
			spin.Fail(fmt.Sprintf("Fetch from %s failed", src.DisplayName()))
			return err
		}

		records := make([]catalog.Model, 0, len(descriptors))
		for _, d := range descriptors {
			records = append(records, catalog.Normalize(d.ID, d.Created, src.ID))
		}
		reg.Add(records...)

		spin.Success(fmt.Sprintf("%d models from %s", len(records), src.DisplayName()))
	}

	return nil
}

func newModelListCommand(cfg *config.Config, fetcher *openai.Fetcher, reg *registry.Registry) *cobra.Command {
	var (
		outputFormat string
		sourceID     string
		includeAll   bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List models from all sources",
		Example: `  # List visible models
  modelscout model list

  # Include hidden snapshot variants
  modelscout model list --all

  # Only one source, as JSON
  modelscout model list --source work -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := syncSources(cmd.Context(), cfg, fetcher, reg, sourceID); err != nil {
				return err
			}

			models := reg.List(includeAll)
			if len(models) == 0 {
				formatter.EmptyListMessage("models")
				return nil
			}

			switch outputFormat {
			case "json":
				return printJSON(models)
			case "yaml":
				return printYAML(models)
			default:
				formatter.ListOutput("Models", len(models), func() {
					table := formatter.NewTable("ID", "LABEL", "CONTEXT", "HIDDEN", "CREATED")
					for _, m := range models {
						table.AddRow(
							formatter.StyledValue(m.ID),
							formatter.StyledName(formatter.TruncateString(m.Label, 40)),
							formatter.StyledDim(fmt.Sprintf("%d", m.ContextWindow)),
							formatter.FormatBoolean(m.Hidden),
							formatter.FormatUnixTime(m.CreatedAt),
						)
					}
					table.Render()
				})
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Output format (json, yaml)")
	cmd.Flags().StringVar(&sourceID, "source", "", "Limit to one source ID")
	cmd.Flags().BoolVar(&includeAll, "all", false, "Include hidden snapshot variants")

	return cmd
}

func newModelGetCommand(cfg *config.Config, fetcher *openai.Fetcher, reg *registry.Registry) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:     "get MODEL_ID",
		Aliases: []string{"describe", "show"},
		Short:   "Get model details by composite ID",
		Args:    cobra.ExactArgs(1),
		Example: `  # Composite IDs are <source-id>-<raw-model-id>
  modelscout model get work-gpt-4

  # As JSON
  modelscout model get work-gpt-4 -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := syncSources(cmd.Context(), cfg, fetcher, reg, ""); err != nil {
				return err
			}

			model, ok := reg.Get(args[0])
			if !ok {
				return apperrors.ValidationError(
					fmt.Errorf("model %q not found", args[0]),
					"Run 'modelscout model list --all' to see every known ID.",
				)
			}

			switch outputFormat {
			case "json":
				return printJSON(model)
			case "yaml":
				return printYAML(model)
			default:
				keys := []string{"ID", "Label", "Description", "Context Window", "Max Tokens", "Temperature", "Tags", "Hidden", "Source", "Remote Model"}
				fields := map[string]string{
					"ID":             model.ID,
					"Label":          model.Label,
					"Description":    model.Description,
					"Context Window": fmt.Sprintf("%d", model.ContextWindow),
					"Max Tokens":     fmt.Sprintf("%d", model.Options.MaxTokens),
					"Temperature":    fmt.Sprintf("%.1f", model.Options.Temperature),
					"Tags":           fmt.Sprintf("%v", model.Tags),
					"Hidden":         fmt.Sprintf("%t", model.Hidden),
					"Source":         model.SourceID,
					"Remote Model":   model.Options.Model,
				}
				formatter.DetailOutput("Model Details", keys, fields)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Output format (json, yaml)")

	return cmd
}

func newModelRefreshCommand(cfg *config.Config, fetcher *openai.Fetcher, reg *registry.Registry) *cobra.Command {
	var sourceID string

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Drop cached model lists and refetch",
		Example: `  # Refetch everything
  modelscout model refresh

  # One source only
  modelscout model refresh --source work`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sources := cfg.Sources
			if sourceID != "" {
				src, ok := cfg.Source(sourceID)
				if !ok {
					return apperrors.ValidationError(
						fmt.Errorf("source %q not found", sourceID),
						"Run 'modelscout source list' to see configured sources.",
					)
				}
				sources = []config.Source{src}
			}

			for _, src := range sources {
				fetcher.Refresh(src.ID)
				reg.RemoveSource(src.ID)
			}

			return syncSources(cmd.Context(), cfg, fetcher, reg, sourceID)
		},
	}

	cmd.Flags().StringVar(&sourceID, "source", "", "Limit to one source ID")

	return cmd
}
