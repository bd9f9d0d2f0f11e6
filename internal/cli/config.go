package cli

import (
	"fmt"
	"strings"

	"github.com/roboco-io/layout2md/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage the layout2md configuration.

Config file location: ~/.layout2md/config.yaml

Subcommands:
  show    display the effective configuration
  init    create a default config file
  set     change a configuration value
  path    print the config file path`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the current configuration",
	Long: `Display the configuration as stored on disk.

API keys written as ${VAR} references are shown unexpanded. If no config
file exists, the defaults are shown.`,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long: `Create a default config file at ~/.layout2md/config.yaml.

Fails if a config file already exists; use --force to overwrite.`,
	RunE: runConfigInit,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a configuration value",
	Long: `Change a configuration value.

Supported keys:
  default_provider        default LLM provider (anthropic, openai, gemini, ollama)
  format.temperature      LLM temperature (0.0-1.0)
  format.language         page label / LLM output language (en, zh, ko)
  render.max_image_width  embedded image width cap in percent (1-100)
  render.attribution      trailing attribution line

Examples:
  layout2md config set default_provider openai
  layout2md config set format.language zh`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Run: func(cmd *cobra.Command, args []string) {
		loader, err := config.NewLoader()
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), loader.ConfigPath())
	},
}

var configForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)

	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	loader, err := config.NewLoader()
	if err != nil {
		return fmt.Errorf("failed to init config loader: %w", err)
	}

	cfg, err := loader.LoadRaw()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if loader.Exists() {
		fmt.Fprintf(cmd.OutOrStdout(), "Config file: %s\n\n", loader.ConfigPath())
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Config file: (using defaults)\n\n")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	loader, err := config.NewLoader()
	if err != nil {
		return fmt.Errorf("failed to init config loader: %w", err)
	}

	if loader.Exists() && !configForce {
		return fmt.Errorf("config file already exists: %s\nuse --force to overwrite", loader.ConfigPath())
	}

	if err := loader.Save(config.DefaultConfig()); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config file created: %s\n", loader.ConfigPath())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	loader, err := config.NewLoader()
	if err != nil {
		return fmt.Errorf("failed to init config loader: %w", err)
	}

	cfg, err := loader.LoadRaw()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	switch key {
	case "default_provider":
		validProviders := []string{"anthropic", "openai", "gemini", "ollama"}
		if !contains(validProviders, value) {
			return fmt.Errorf("invalid provider: %s (supported: %s)", value, strings.Join(validProviders, ", "))
		}
		cfg.DefaultProvider = value

	case "format.temperature":
		var temp float64
		if _, err := fmt.Sscanf(value, "%f", &temp); err != nil {
			return fmt.Errorf("invalid temperature value: %s", value)
		}
		if temp < 0 || temp > 1 {
			return fmt.Errorf("temperature must be within 0.0-1.0: %f", temp)
		}
		cfg.Format.Temperature = temp

	case "format.language":
		validLanguages := []string{"en", "zh", "ko"}
		if !contains(validLanguages, value) {
			return fmt.Errorf("invalid language: %s (supported: %s)", value, strings.Join(validLanguages, ", "))
		}
		cfg.Format.Language = value

	case "render.max_image_width":
		var width int
		if _, err := fmt.Sscanf(value, "%d", &width); err != nil {
			return fmt.Errorf("invalid width value: %s", value)
		}
		if width < 1 || width > 100 {
			return fmt.Errorf("width must be within 1-100: %d", width)
		}
		cfg.Render.MaxImageWidth = width

	case "render.attribution":
		cfg.Render.Attribution = value

	default:
		return fmt.Errorf("unknown config key: %s\nsupported keys: default_provider, format.temperature, format.language, render.max_image_width, render.attribution", key)
	}

	if err := loader.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config updated: %s = %s\n", key, value)
	return nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
