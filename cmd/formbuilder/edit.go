package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/formfile"
	"github.com/goliatone/go-formbuilder/pkg/renderers/tui"
)

func editCmd(a *app) *cobra.Command {
	var save string
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Build a form interactively",
		Long: `Open an interactive builder on the form: add, edit, remove and move
fields, change the layout and preview the generated component. The result is
written to --save, or printed as YAML when --save is empty.`,
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
			driver := a.driver
			if driver == nil {
				driver = tui.NewSurveyDriver(cmd.ErrOrStderr())
			}
			result, err := tui.NewEditor(s,
				tui.WithEditorDriver(driver),
				tui.WithEditorLogger(a.logger),
			).Run(cmd.Context())
			if err != nil {
				return err
			}

			if save == "" {
				data, err := formfile.Encode(result, formfile.FormatYAML)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := formfile.Save(save, result); err != nil {
				return err
			}
			a.logger.Info("form saved", slog.String("path", save), slog.Int("fields", len(result.Fields)))
			fmt.Fprintf(cmd.ErrOrStderr(), "Form written to %s\n", save)
			return nil
		},
	}
	cmd.Flags().StringVarP(&save, "save", "s", "", "write the edited form to this file (.json, .yaml)")
	return cmd
}
