package xformcheck

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/twinview/internal/config"
	"github.com/Faultbox/twinview/internal/engine/mesh"
	"github.com/Faultbox/twinview/internal/logger"
	"github.com/Faultbox/twinview/internal/snapshot"
	"github.com/Faultbox/twinview/internal/world"
)

func snapshotCommand() *cobra.Command {
	var (
		output     string
		configPath string
		opts       = snapshot.DefaultOptions()
	)

	cmd := &cobra.Command{
		Use:   "snapshot <script> <mesh>",
		Short: "Render the mesh with both methods side by side into a PNG or WebP",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Width < 1 || opts.Height < 1 {
				return fmt.Errorf("size %dx%d must be positive", opts.Width, opts.Height)
			}
			if _, err := snapshot.FormatFromPath(output); err != nil {
				return err
			}

			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.LoadFile(configPath); err != nil {
					return err
				}
			}
			cfg.Worlds.Left.Script = args[0]
			cfg.Worlds.Right.Script = args[0]
			cfg.Worlds.Left.Transformed = true
			cfg.Worlds.Right.Transformed = true

			return takeSnapshot(cmd, cfg, args[1], output, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "snapshot.png", "output image (.png or .webp)")
	cmd.Flags().StringVar(&configPath, "config", "", "viewer config for camera, light and colors")
	cmd.Flags().IntVar(&opts.Width, "width", opts.Width, "width of each half in pixels")
	cmd.Flags().IntVar(&opts.Height, "height", opts.Height, "height in pixels")
	cmd.Flags().IntVar(&opts.Supersample, "supersample", opts.Supersample, "render scale before downsampling")
	return cmd
}

func takeSnapshot(cmd *cobra.Command, cfg *config.Config, meshPath, output string, opts snapshot.Options) error {
	out := cmd.OutOrStdout()

	m, err := mesh.Load(meshPath)
	if err != nil {
		return err
	}

	p := world.NewPair(cfg)
	if err := world.BuildPair(cmd.Context(), p); err != nil {
		return err
	}
	for _, w := range p {
		if err := w.Err(); err != nil {
			return fmt.Errorf("%s world: %w", w.Side, err)
		}
	}

	img := snapshot.Render(m, p, opts)
	if err := snapshot.Save(output, img); err != nil {
		return err
	}

	logger.Debug("snapshot written",
		zap.String("path", output),
		zap.Int("triangles", len(m.Faces)),
	)
	printSuccess(out, "wrote %s (%dx%d)", output, img.Bounds().Dx(), img.Bounds().Dy())
	for _, w := range p {
		printDetail(out, "%s: %s, built in %s", w.Side, w.Method, w.BuildTime())
	}
	return nil
}
