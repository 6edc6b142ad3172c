package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/tui"
)

func fillCmd(a *app) *cobra.Command {
	var (
		format string
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Fill the form in the terminal",
		Long: `Prompt for every field with the same checks the preview applies,
then print the collected values. --strict also applies the format checks of
the generated schema (email, phone, at least one checkbox).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form, err := a.loadForm()
			if err != nil {
				return err
			}
			opts := []tui.Option{
				tui.WithOutputFormat(tui.OutputFormat(format)),
				tui.WithStrict(strict || a.cfg.Strict),
				tui.WithLogger(a.logger),
			}
			driver := a.driver
			if driver == nil {
				driver = tui.NewSurveyDriver(cmd.ErrOrStderr())
			}
			opts = append(opts, tui.WithPromptDriver(driver))

			out, err := tui.New(opts...).Render(cmd.Context(), form, render.RenderOptions{})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", string(tui.OutputFormatJSON), "output format (json, pretty)")
	cmd.Flags().BoolVar(&strict, "strict", false, "apply schema format checks")
	return cmd
}
