package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LISSConsulting/LISSTech.Widgets/internal/config"
	"github.com/LISSConsulting/LISSTech.Widgets/internal/widgets"
)

// errInvalidForm makes `widgets validate` exit non-zero after printing the
// validation messages.
var errInvalidForm = errors.New("form input is invalid")

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create widgets.toml in the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			path, err := config.InitFile(dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
}

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check form input against the form rules without starting the TUI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, ok := formatValidation(formFromFlags(cmd))
			fmt.Fprint(cmd.OutOrStdout(), out)
			if !ok {
				return errInvalidForm
			}
			return nil
		},
	}
	cmd.Flags().String("name", "", "value of the name field")
	cmd.Flags().String("email", "", "value of the email field")
	cmd.Flags().String("age", "", "value of the age field")
	return cmd
}

// formFromFlags builds form data from the flags that were set. Unset flags
// are absent fields, not empty ones.
func formFromFlags(cmd *cobra.Command) widgets.FormData {
	var d widgets.FormData
	for _, f := range []struct{ flag, field string }{
		{"name", widgets.FieldName},
		{"email", widgets.FieldEmail},
		{"age", widgets.FieldAge},
	} {
		if !cmd.Flags().Changed(f.flag) {
			continue
		}
		v, _ := cmd.Flags().GetString(f.flag)
		d = append(d, widgets.Field{Name: f.field, Value: v})
	}
	return d
}

// formatValidation renders the outcome of validating d: every violated rule,
// or the submitted data as indented JSON.
func formatValidation(d widgets.FormData) (string, bool) {
	errs := widgets.Validate(d)
	if len(errs) == 0 {
		return "Form submitted successfully!\n" + d.Pretty() + "\n", true
	}
	var b strings.Builder
	b.WriteString("Validation failed\n")
	b.WriteString("─────────────────\n")
	for _, e := range errs {
		fmt.Fprintf(&b, "  ✗ %s\n", e)
	}
	return b.String(), false
}
