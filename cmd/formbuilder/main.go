package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/internal/config"
	"github.com/goliatone/go-formbuilder/pkg/formfile"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/orchestrator"
	"github.com/goliatone/go-formbuilder/pkg/renderers/tui"
	"github.com/goliatone/go-formbuilder/pkg/store"
)

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "formbuilder: %s\n", err)
		os.Exit(1)
	}
}

// app carries state shared by subcommands. driver is nil in production so
// the interactive commands use survey on the terminal.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	formPath   string
	layout     string

	driver tui.PromptDriver
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "formbuilder",
		Short: "Build forms and generate React Hook Form + Zod components",
		Long: `formbuilder edits form definitions and turns them into a React
component wired with react-hook-form and a zod schema.

Commands:
  generate   Render a form definition as source, schema or HTML preview
  fill       Fill a form in the terminal with preview validation
  edit       Build a form interactively
  serve      Expose a builder session over HTTP`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", "", "log format (text, json)")
	flags.StringVarP(&a.formPath, "form", "f", "", "form definition file (JSON or YAML); the default form when empty")
	flags.StringVar(&a.layout, "layout", "", "layout override (1, 2, 3, 4, responsive)")

	root.AddCommand(
		generateCmd(a),
		fillCmd(a),
		editCmd(a),
		serveCmd(a),
	)
	return root
}

func (a *app) setup(errOut io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if a.formPath != "" {
		cfg.FormFile = a.formPath
	}
	if a.layout != "" {
		cfg.Layout = model.Layout(a.layout)
		if !cfg.Layout.Valid() {
			return fmt.Errorf("%w: %q", store.ErrUnknownLayout, a.layout)
		}
	}
	a.cfg = cfg
	a.logger = newLogger(errOut, cfg.Log)
	slog.SetDefault(a.logger)
	return nil
}

// loadForm returns the configured form file or the default form, with the
// layout override applied.
func (a *app) loadForm() (model.Form, error) {
	form := model.Form{Fields: store.DefaultSeed(), Layout: model.DefaultLayout}
	if a.cfg.FormFile != "" {
		loaded, err := formfile.Load(a.cfg.FormFile)
		if err != nil {
			return model.Form{}, err
		}
		form = loaded
		a.logger.Debug("loaded form", slog.String("path", a.cfg.FormFile), slog.Int("fields", len(form.Fields)))
	}
	if a.layout != "" || a.cfg.FormFile == "" {
		form.Layout = a.cfg.Layout
	}
	return form, nil
}

func (a *app) newStore(form model.Form) (*store.Store, error) {
	opts := []store.Option{store.WithLogger(a.logger)}
	if a.cfg.IDStrategy == config.IDStrategyUUID {
		opts = append(opts, store.WithIDGenerator(store.UUIDIDs()))
	}
	return store.NewFromForm(form, opts...)
}

func (a *app) newOrchestrator(s *store.Store) (*orchestrator.Orchestrator, error) {
	opts := []orchestrator.Option{
		orchestrator.WithStore(s),
		orchestrator.WithLogger(a.logger),
	}
	if len(a.cfg.Theme.Manifests) > 0 {
		opts = append(opts, orchestrator.WithThemeSelector(orchestrator.NewManifestSelector(
			a.cfg.Theme.Default, a.cfg.Theme.Variant, a.cfg.ThemeManifests()...,
		)))
	}
	return orchestrator.New(opts...)
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
