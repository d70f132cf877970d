package cli

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/modelscout/cli/internal/config"
	apperrors "github.com/modelscout/cli/internal/errors"
	"github.com/modelscout/cli/internal/formatter"
	"github.com/modelscout/cli/internal/output"
)

func newSourceCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "source",
		Aliases: []string{"sources", "src"},
		Short:   "Manage model provider sources",
		Long:    `Add, inspect, and remove the provider sources models are fetched from.`,
	}

	cmd.AddCommand(
		newSourceAddCommand(cfg),
		newSourceListCommand(cfg),
		newSourceShowCommand(cfg),
		newSourceRemoveCommand(cfg),
	)

	return cmd
}

func newSourceAddCommand(cfg *config.Config) *cobra.Command {
	var (
		id         string
		name       string
		apiKey     string
		orgID      string
		host       string
		loggingKey string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add or update a provider source",
		Example: `  # Fully specified
  modelscout source add --name Work --api-key sk-... --org-id org-...

  # Prompt for the missing pieces
  modelscout source add`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error

			if name == "" {
				prompt := promptui.Prompt{
					Label:   "Source name",
					Default: "OpenAI",
				}
				if name, err = prompt.Run(); err != nil {
					return apperrors.ValidationError(err, "Pass --name to skip the prompt.")
				}
			}

			if apiKey == "" {
				prompt := promptui.Prompt{
					Label: "API key",
					Mask:  '*',
					Validate: func(s string) error {
						if !(config.Source{APIKey: s}).HasPlausibleKey() {
							return fmt.Errorf("key must be non-empty without spaces")
						}
						return nil
					},
				}
				if apiKey, err = prompt.Run(); err != nil {
					return apperrors.ValidationError(err, "Pass --api-key to skip the prompt.")
				}
			}

			src := config.Source{
				ID:         id,
				Name:       name,
				APIKey:     apiKey,
				OrgID:      orgID,
				Host:       host,
				LoggingKey: loggingKey,
			}
			if src.ID == "" {
				src.ID = uuid.New().String()
			}
			if !src.HasPlausibleKey() {
				return apperrors.ValidationError(
					fmt.Errorf("API key %q does not look usable", apiKey),
					"Keys must be non-empty and contain no whitespace.",
				)
			}

			cfg.AddSource(src)
			if err := config.Save(cfg); err != nil {
				return apperrors.ConfigError(err)
			}

			output.Successf(cmd.OutOrStdout(), "Source %s saved (id: %s)", src.DisplayName(), src.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Source ID (generated when omitted)")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "Provider API key")
	cmd.Flags().StringVar(&orgID, "org-id", "", "Organization ID header value")
	cmd.Flags().StringVar(&host, "host", "", "Proxy host overriding the API base URL")
	cmd.Flags().StringVar(&loggingKey, "logging-key", "", "Third-party request-logging key")

	return cmd
}

func newSourceListCommand(cfg *config.Config) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List configured sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(cfg.Sources) == 0 {
				formatter.EmptyListMessage("sources")
				return nil
			}

			switch outputFormat {
			case "json":
				return printJSON(redactSources(cfg.Sources))
			case "yaml":
				return printYAML(redactSources(cfg.Sources))
			default:
				formatter.ListOutput("Sources", len(cfg.Sources), func() {
					table := formatter.NewTable("ID", "NAME", "HOST", "ORG", "KEY")
					for _, src := range cfg.Sources {
						host := src.Host
						if host == "" {
							host = "api.openai.com"
						}
						table.AddRow(
							formatter.StyledValue(src.ID),
							formatter.StyledName(src.DisplayName()),
							formatter.StyledDim(host),
							formatter.StyledDim(src.OrgID),
							formatter.StyledDim(maskKey(src.APIKey)),
						)
					}
					table.Render()
				})
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Output format (json, yaml)")

	return cmd
}

func newSourceShowCommand(cfg *config.Config) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:     "show SOURCE_ID",
		Aliases: []string{"get", "describe"},
		Short:   "Show source details",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, ok := cfg.Source(args[0])
			if !ok {
				return apperrors.ValidationError(
					fmt.Errorf("source %q not found", args[0]),
					"Run 'modelscout source list' to see configured sources.",
				)
			}

			switch outputFormat {
			case "json":
				return printJSON(redactSource(src))
			case "yaml":
				return printYAML(redactSource(src))
			default:
				keys := []string{"ID", "Name", "API Key", "Org ID", "Host", "Logging Key"}
				fields := map[string]string{
					"ID":      src.ID,
					"Name":    src.DisplayName(),
					"API Key": maskKey(src.APIKey),
				}
				if src.OrgID != "" {
					fields["Org ID"] = src.OrgID
				}
				if src.Host != "" {
					fields["Host"] = src.Host
				}
				if src.LoggingKey != "" {
					fields["Logging Key"] = maskKey(src.LoggingKey)
				}
				formatter.DetailOutput("Source Details", keys, fields)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Output format (json, yaml)")

	return cmd
}

func newSourceRemoveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove SOURCE_ID",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove a source",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cfg.RemoveSource(args[0]) {
				return apperrors.ValidationError(
					fmt.Errorf("source %q not found", args[0]),
					"Run 'modelscout source list' to see configured sources.",
				)
			}
			if err := config.Save(cfg); err != nil {
				return apperrors.ConfigError(err)
			}
			output.Successf(cmd.OutOrStdout(), "Source %s removed", args[0])
			return nil
		},
	}

	return cmd
}

// maskKey hides all but the tail of a credential for display.
func maskKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}

// redactSource replaces credentials with masked values for structured
// output.
func redactSource(src config.Source) config.Source {
	src.APIKey = maskKey(src.APIKey)
	src.LoggingKey = maskKey(src.LoggingKey)
	return src
}

func redactSources(sources []config.Source) []config.Source {
	out := make([]config.Source, len(sources))
	for i, src := range sources {
		out[i] = redactSource(src)
	}
	return out
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func printYAML(v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
