package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/orchestrator"
)

func generateCmd(a *app) *cobra.Command {
	var (
		renderer string
		output   string
		theme    string
		variant  string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the form with a registered renderer",
		Long: `Render the form definition with one of the registered renderers.

Renderers:
  source    React component using react-hook-form and zod (default)
  schema    OpenAPI document holding the submission schema
  preview   Static HTML preview

Examples:
  formbuilder generate -f contact.yaml
  formbuilder generate -f contact.yaml --renderer schema -o schema.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form, err := a.loadForm()
			if err != nil {
				return err
			}
			s, err := a.newStore(form)
			if err != nil {
				return err
			}
			orch, err := a.newOrchestrator(s)
			if err != nil {
				return err
			}

			out, _, err := orch.Generate(cmd.Context(), orchestrator.Request{
				Renderer:     renderer,
				ThemeName:    theme,
				ThemeVariant: variant,
			})
			if err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Form written to %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&renderer, "renderer", "r", orchestrator.DefaultRenderer, "renderer to use")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&theme, "theme", "", "theme name for the preview renderer")
	cmd.Flags().StringVar(&variant, "variant", "", "theme variant")
	return cmd
}
