package cli

import (
	"github.com/spf13/cobra"

	"impractical.co/learnphoto"
)

func newBuildCommand(a *app) *cobra.Command {
	var outDir, hostDir string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Writes the site to the output directory",
		Long: `The build command removes the output directory, then writes one HTML file
per page plus the stylesheet into it. With --host, the .html files in that
directory have their mount points filled instead, and every other file there
is copied. The images directory is copied to images/ if it exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			site, err := a.site()
			if err != nil {
				return err
			}
			opts := learnphoto.BuildOptions{
				OutputDir: a.cfg.OutputDir,
				HostDir:   a.cfg.HostDir,
				ImagesDir: a.cfg.ImagesDir,
			}
			if outDir != "" {
				opts.OutputDir = outDir
			}
			if hostDir != "" {
				opts.HostDir = hostDir
			}
			if err := learnphoto.Build(cmd.Context(), site, opts); err != nil {
				return err
			}
			a.logger.InfoContext(cmd.Context(), "site built", "dir", opts.OutputDir)
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (overrides outputDir)")
	cmd.Flags().StringVar(&hostDir, "host", "", "directory of host documents (overrides hostDir)")
	return cmd
}
