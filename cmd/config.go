package main

import (
	"qrgen/internal/config"

	"github.com/spf13/cobra"
)

func configCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Prints the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := config.Dump(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)

			return err
		},
	}
}
