package main

import (
	"fmt"
	"qrgen/internal/config"
	"qrgen/internal/generator"

	"github.com/spf13/cobra"
)

func validateCommand(_ *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <url>",
		Short: "Checks whether a URL would be accepted for encoding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := generator.Validate(args[0])
			if !res.Valid() {
				return fmt.Errorf("%s is not valid: %w", res.URL, res.Err())
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", res.URL)

			return nil
		},
	}
}
