package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/roboco-io/layout2md/internal/config"
	"github.com/roboco-io/layout2md/internal/layout"
	"github.com/roboco-io/layout2md/internal/llm"
	"github.com/roboco-io/layout2md/internal/preview"
	"github.com/roboco-io/layout2md/internal/render"
	"github.com/spf13/cobra"
)

var (
	convertOutput   string
	convertHTML     bool
	convertUseLLM   bool
	convertProvider string
	convertModel    string
	convertVerbose  bool
	convertQuiet    bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <layout.json>",
	Short: "Convert a layout description to Markdown",
	Long: `Convert a layout description JSON file to a single Markdown document.

All referenced images and table pictures are inlined as base64 data URIs,
so the output needs no files next to it. By default only Stage 1
(deterministic rendering) runs; --llm enables Stage 2 formatting.

Environment variables:
  LAYOUT2MD_LLM=true       enable Stage 2
  LAYOUT2MD_PROVIDER=xxx   LLM provider (openai, anthropic, gemini, ollama)
  LAYOUT2MD_MODEL=xxx      model name

Examples:
  layout2md convert layout.json
  layout2md convert layout.json -o article.md
  layout2md convert layout.json --html
  layout2md convert layout.json --llm --provider anthropic`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output file path (default: input with extension replaced)")
	convertCmd.Flags().BoolVar(&convertHTML, "html", false, "emit an HTML preview instead of Markdown")
	convertCmd.Flags().BoolVar(&convertUseLLM, "llm", false, "enable LLM formatting (Stage 2)")
	convertCmd.Flags().StringVar(&convertProvider, "provider", "", "LLM provider (openai, anthropic, gemini, ollama)")
	convertCmd.Flags().StringVar(&convertModel, "model", "", "LLM model name")
	convertCmd.Flags().BoolVarP(&convertVerbose, "verbose", "v", false, "verbose output")
	convertCmd.Flags().BoolVarP(&convertQuiet, "quiet", "q", false, "quiet mode")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if !convertQuiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "Reading: %s\n", inputPath)
	}

	doc, err := layout.Load(inputPath)
	if err != nil {
		return err
	}

	if !convertQuiet && convertVerbose {
		if doc.Backend != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Backend: %s\n", doc.Backend)
		}
		if doc.VersionName != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Producer version: %s\n", doc.VersionName)
		}
	}

	if !convertQuiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "Processing %d pages...\n", len(doc.Pages))
	}

	markdown, entries := newConverter(cfg, inputPath).Convert(doc)

	if !convertQuiet && convertVerbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "Collected %d heading anchors\n", len(entries))
	}

	useLLM := convertUseLLM || config.GetEnvBool("LAYOUT2MD_LLM")
	if useLLM {
		if !convertQuiet {
			fmt.Fprintln(cmd.ErrOrStderr(), "LLM formatting...")
		}
		markdown, err = formatWithLLM(cmd.Context(), cfg, markdown)
		if err != nil {
			return fmt.Errorf("LLM formatting failed: %w", err)
		}
	}

	output := []byte(markdown)
	ext := ".md"
	if convertHTML {
		ext = ".html"
		output, err = preview.HTML(filepath.Base(inputPath), output)
		if err != nil {
			return err
		}
	}

	outputPath := convertOutput
	if outputPath == "" {
		outputPath = replaceExt(inputPath, ext)
	}

	if err := os.WriteFile(outputPath, output, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if !convertQuiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "Output written to: %s\n", outputPath)
		fmt.Fprintln(cmd.ErrOrStderr(), "Done!")
	}
	return nil
}

// newConverter builds the Stage 1 converter with assets resolved relative
// to the layout file's directory.
func newConverter(cfg *config.Config, inputPath string) *render.Converter {
	return render.New(render.NewDirEmbedder(filepath.Dir(inputPath)), render.Options{
		Language:      cfg.Format.Language,
		Attribution:   cfg.Render.Attribution,
		MaxImageWidth: cfg.Render.MaxImageWidth,
	})
}

func formatWithLLM(ctx context.Context, cfg *config.Config, markdown string) (string, error) {
	name := convertProvider
	if name == "" {
		name = config.GetEnvOrDefault("LAYOUT2MD_PROVIDER", cfg.DefaultProvider)
	}

	model := convertModel
	if model == "" {
		model = os.Getenv("LAYOUT2MD_MODEL")
	}
	if model != "" {
		if pc, ok := cfg.Providers[name]; ok {
			pc.Model = model
			cfg.Providers[name] = pc
		}
	}

	provider, err := llm.NewRegistryFromConfig(cfg).Get(name)
	if err != nil {
		return "", err
	}

	opts := llm.DefaultFormatOptions()
	opts.Language = cfg.Format.Language
	opts.Temperature = cfg.Format.Temperature
	if pc, ok := cfg.GetProvider(name); ok && pc.MaxTokens > 0 {
		opts.MaxTokens = pc.MaxTokens
	}

	result, err := provider.Format(ctx, markdown, opts)
	if err != nil {
		return "", err
	}
	return result.Markdown, nil
}

// replaceExt swaps the file extension, keeping the rest of the path.
func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewLoader()
	if err != nil {
		return nil, fmt.Errorf("failed to init config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
