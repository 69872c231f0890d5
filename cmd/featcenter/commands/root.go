package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags and the logger built from them.
// Each root command owns its own copy, shared with its sub-commands.
type rootOptions struct {
	logLevel  string
	logFormat string
	logger    *slog.Logger
}

// Execute runs the featcenter CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	ro := &rootOptions{logger: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:           "featcenter",
		Short:         "Center lat/lon fields on feature points",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(cmd.ErrOrStderr(), ro.logLevel, ro.logFormat)
			if err != nil {
				return err
			}
			ro.logger = l
			return nil
		},
	}

	root.PersistentFlags().StringVar(&ro.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&ro.logFormat, "log-format", "text", "log format (text, json)")

	root.AddCommand(gridCmd(ro), demoCmd(ro))
	return root
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q: want text or json", format)
	}
}
