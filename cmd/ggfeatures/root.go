package main

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/features"
	"github.com/gogpu/features/cmd/ggfeatures/ui"
	"github.com/gogpu/features/config"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags and the configuration they
// resolve to.
type rootOptions struct {
	debug      bool
	noColor    bool
	configPath string
	platform   string
	xcb        bool
	strict     bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}

	root := &cobra.Command{
		Use:           "ggfeatures",
		Short:         "Platform capability selection for the rendering library",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelWarn
			if o.debug {
				level = slog.LevelDebug
			}
			h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			features.SetLogger(slog.New(h))
			ui.ConfigureColor(o.noColor)

			return o.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVar(&o.debug, "debug", false, "Enable debug logging")
	pf.BoolVar(&o.noColor, "no-color", false, "Disable colored output")
	pf.StringVar(&o.configPath, "config", "", "Build configuration file (.yaml, .yml or .hcl)")
	pf.StringVar(&o.platform, "platform", "", "Target platform (windows, apple, linux, other or a GOOS value)")
	pf.BoolVar(&o.xcb, "xcb", false, "Opt in to the XCB surface on Linux")
	pf.BoolVar(&o.strict, "strict", false, "Reject platforms other than Windows, Apple and Linux")

	root.AddCommand(listCmd(o))
	root.AddCommand(matrixCmd(o))
	root.AddCommand(headerCmd(o))
	root.AddCommand(checkCmd(o))
	root.AddCommand(backendsCmd(o))
	root.AddCommand(renderCmd(o))
	return root
}

// load builds the effective configuration. Precedence, lowest first: the
// file (given or found in the working directory), the environment, flags.
func (o *rootOptions) load(cmd *cobra.Command) error {
	path := o.configPath
	if path == "" {
		if found, ok := config.Find("."); ok {
			path = found
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg.ApplyEnv()

	flags := cmd.Flags()
	if flags.Changed("platform") {
		cfg.Platform = o.platform
	}
	if flags.Changed("xcb") {
		cfg.IncludeXCB = o.xcb
	}
	if flags.Changed("strict") {
		cfg.Strict = o.strict
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	features.Logger().Debug("ggfeatures: configuration",
		"source", cfg.Source, "platform", cfg.Platform, "include_xcb", cfg.IncludeXCB, "strict", cfg.Strict)
	o.cfg = cfg
	return nil
}

// resolve returns the configured target and its capability set.
func (o *rootOptions) resolve() (features.Target, features.Set, error) {
	target, set, err := o.cfg.Resolve()
	if err != nil {
		return target, set, fmt.Errorf("resolve %s: %w", target, err)
	}
	return target, set, nil
}
