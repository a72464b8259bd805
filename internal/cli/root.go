// Package cli holds the learnphoto command line interface.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"impractical.co/learnphoto"
	"impractical.co/learnphoto/content"
	"impractical.co/learnphoto/internal/config"
)

type app struct {
	cfgFile string
	cfg     config.Config
	logger  *slog.Logger

	// now overrides the sites' clock when set.
	now func() time.Time
}

// NewRootCommand returns the learnphoto command and its subcommands.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{})
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "learnphoto",
		Short: "Build and preview the Learn Photography site",
		Long: `learnphoto renders the Learn Photography website from its content,
either into a directory of static files or through a local preview server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./config.yaml)")
	root.AddCommand(
		newBuildCommand(a),
		newServeCommand(a),
		newExportCommand(a),
	)
	return root
}

// Execute runs the root command, exiting non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) initialize(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(learnphoto.LoggingContext(ctx, a.logger))

	if cfg.Source != "" {
		a.logger.Debug("using config file", "path", cfg.Source)
	}
	return nil
}

// store returns the configured content: the content file if one is set,
// the built-in content otherwise.
func (a *app) store() (content.Store, error) {
	if a.cfg.ContentFile == "" {
		return content.Default(), nil
	}
	return content.Load(a.cfg.ContentFile)
}

func (a *app) site() (*learnphoto.PhotoSite, error) {
	store, err := a.store()
	if err != nil {
		return nil, err
	}
	site := learnphoto.NewPhotoSite(store)
	if a.cfg.SiteTitle != "" {
		site.Title = a.cfg.SiteTitle
	}
	if a.cfg.Notice != "" {
		site.NoticeFormat = a.cfg.Notice
	}
	if a.now != nil {
		site.Clock = a.now
	}
	return site, nil
}
