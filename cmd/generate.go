package main

import (
	"context"
	"fmt"
	"qrgen/internal/config"
	"qrgen/pkg/imagefile"
	"qrgen/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func generateCommand(cfg *config.Config) *cobra.Command {
	var (
		output string
		scale  int
	)

	cmd := &cobra.Command{
		Use:   "generate <url>",
		Short: "Renders a URL as a QR code image file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logger.WithFields(context.Background(), zap.String("url", args[0]))
			gen := getGenerator(ctx, cfg, nil)

			if scale == 0 {
				scale = cfg.QR.ModuleScale
			}
			img, err := gen.GenerateScaled(ctx, args[0], scale)
			if err != nil {
				return err
			}

			path, err := imagefile.Save(output, img.Image)
			if err != nil {
				return err
			}
			logger.Info(ctx, "QR code written",
				zap.String("path", path), zap.Int("version", img.Version), zap.Int("width", img.Width()))
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "qrcode.png", "Output file (.png, .jpg or .jpeg)")
	cmd.Flags().IntVarP(&scale, "scale", "s", 0, "Pixels per module, defaults to the configured module scale")

	return cmd
}
