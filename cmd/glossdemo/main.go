// Command glossdemo renders a sample document showing off gloss layouts
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
	"golang.org/x/term"

	"git.sr.ht/~rockorager/gloss"
)

type rootFlags struct {
	width    int
	light    bool
	dark     bool
	logLevel string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "glossdemo",
		Short:         "glossdemo renders a sample document with gloss",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.width, "width", "w", 96, "Width of the document")
	cmd.Flags().BoolVar(&flags.light, "light", false, "Render for a light background")
	cmd.Flags().BoolVar(&flags.dark, "dark", false, "Render for a dark background")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.MarkFlagsMutuallyExclusive("light", "dark")

	cmd.AddCommand(newWidthCmd())

	return cmd
}

func newLogger(level string) (*slog.Logger, error) {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      l,
		TimeFormat: "15:04:05.000",
	})), nil
}

func run(cmd *cobra.Command, flags *rootFlags) error {
	log, err := newLogger(flags.logLevel)
	if err != nil {
		return err
	}

	light := !termenv.HasDarkBackground()
	switch {
	case flags.light:
		light = true
	case flags.dark:
		light = false
	}

	// In real life situations we'd adjust the document to fit the width
	// we've detected. Here the physical width is only used to truncate,
	// which avoids jaggy wrapping
	physicalWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		log.Debug("not a terminal, not truncating", "error", err)
		physicalWidth = 0
	}

	r := gloss.NewRenderer(gloss.Options{
		Logger:          log,
		LightBackground: light,
	})
	log.Info("rendering", "width", flags.width, "physicalWidth", physicalWidth, "light", light)
	fmt.Fprintln(cmd.OutOrStdout(), document(r, flags.width, physicalWidth))
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
