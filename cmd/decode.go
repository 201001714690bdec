package main

import (
	"fmt"
	"qrgen/pkg/qrdecoder"

	"github.com/spf13/cobra"
)

func decodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <image>",
		Short: "Reads the payload of a QR code image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := qrdecoder.DecodeFile(args[0])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), text)

			return nil
		},
	}
}
