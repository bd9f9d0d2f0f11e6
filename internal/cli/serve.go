package cli

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/roboco-io/layout2md/internal/layout"
	"github.com/roboco-io/layout2md/internal/preview"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve <layout.json>",
	Short: "Serve an HTML preview of a converted document",
	Long: `Convert the layout description once and serve the result locally.

Routes:
  /          HTML preview
  /markdown  raw Markdown output
  /healthz   liveness check`,
	Args: cobra.ExactArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8455", "listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	doc, err := layout.Load(inputPath)
	if err != nil {
		return err
	}

	markdown, _ := newConverter(cfg, inputPath).Convert(doc)
	page, err := preview.HTML(filepath.Base(inputPath), []byte(markdown))
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Serving %s on %s\n", inputPath, serveAddr)
	return http.ListenAndServe(serveAddr, newPreviewRouter([]byte(markdown), page))
}

func newPreviewRouter(markdown, page []byte) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	})
	r.Get("/markdown", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Write(markdown)
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}
