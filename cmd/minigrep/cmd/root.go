// Package cmd provides the CLI command for minigrep.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Aman-CERP/minigrep/internal/config"
	"github.com/Aman-CERP/minigrep/internal/document"
	"github.com/Aman-CERP/minigrep/internal/errors"
	"github.com/Aman-CERP/minigrep/internal/logging"
	"github.com/Aman-CERP/minigrep/internal/output"
	"github.com/Aman-CERP/minigrep/internal/profiling"
	"github.com/Aman-CERP/minigrep/internal/search"
	"github.com/Aman-CERP/minigrep/internal/ui"
	"github.com/Aman-CERP/minigrep/pkg/version"
)

// rootOptions holds CLI flags. Output flags override user preferences only
// when given explicitly. After preferences are loaded, format holds the
// effective output format so failures are reported in the same format.
type rootOptions struct {
	ignoreCase  bool
	lineNumbers bool
	color       string
	format      string
	debug       bool
	logFile     string
	version     bool
	profile     profiling.Options
}

// NewRootCmd creates the root command for the minigrep CLI.
func NewRootCmd() *cobra.Command {
	cmd, _ := newRootCmd()
	return cmd
}

func newRootCmd() (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "minigrep [flags] <query> <filename> [ignored...]",
		Short: "Print the lines of a file that contain a query",
		Long: `minigrep prints every line of <filename> that contains <query> as a substring.

Matching is case-sensitive unless the CASE_INSENSITIVE environment variable
is set (to any value, even empty or "0") or -i is given.

Flags must come before <query>. Everything from <query> on is positional,
so arguments after <filename> are ignored even when they start with "-".
A query that itself starts with "-" needs "--" in front of it.

Examples:
  minigrep Pick poem.txt
  CASE_INSENSITIVE=1 minigrep pick poem.txt
  minigrep -n --color=always to poem.txt
  minigrep -- -v notes.txt`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.version {
				return printVersion(cmd.OutOrStdout(), opts.format)
			}
			return runSearch(cmd, args, opts)
		},
	}

	cmd.Flags().SetInterspersed(false)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.FlagError(err)
	})

	cmd.Flags().BoolVarP(&opts.ignoreCase, "ignore-case", "i", false, "Match case-insensitively (same as setting CASE_INSENSITIVE)")
	cmd.Flags().BoolVarP(&opts.lineNumbers, "line-number", "n", false, "Prefix each line with its line number")
	cmd.Flags().StringVar(&opts.color, "color", ui.ColorAuto, "Highlight matches: auto, always, never")
	cmd.Flags().StringVarP(&opts.format, "format", "f", config.FormatText, "Output format: text, json")

	cmd.Flags().BoolVar(&opts.version, "version", false, "Print version information (JSON with --format json)")

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging to ~/.minigrep/logs/")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "Debug log path (default ~/.minigrep/logs/minigrep.log)")
	cmd.PersistentFlags().StringVar(&opts.profile.CPU, "profile-cpu", "", "Write CPU profile to file")
	cmd.PersistentFlags().StringVar(&opts.profile.Mem, "profile-mem", "", "Write memory profile to file")
	cmd.PersistentFlags().StringVar(&opts.profile.Trace, "profile-trace", "", "Write execution trace to file")

	return cmd, opts
}

// Execute runs the root command and prints a diagnostic to stderr on failure.
func Execute() error {
	return execute(newRootCmd())
}

func execute(root *cobra.Command, opts *rootOptions) error {
	err := root.Execute()
	if err != nil {
		writeDiagnostic(root.ErrOrStderr(), err, opts)
	}
	return err
}

// writeDiagnostic prints err as "<label>: <message>", or as a JSON object
// when the effective output format is json.
func writeDiagnostic(w io.Writer, err error, opts *rootOptions) {
	if opts.format == config.FormatJSON {
		if data, jerr := errors.FormatJSON(err); jerr == nil {
			_, _ = fmt.Fprintln(w, string(data))
			return
		}
	}
	_, _ = fmt.Fprintln(w, errors.FormatForCLI(err, opts.debug))
}

func printVersion(w io.Writer, format string) error {
	if format != config.FormatJSON {
		_, err := fmt.Fprintln(w, version.String())
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(version.GetInfo())
}

// applyFlags overrides preferences with output flags set on the command line.
func (o *rootOptions) applyFlags(flags *pflag.FlagSet, prefs config.Preferences) config.Preferences {
	if flags.Changed("color") {
		prefs.Color = o.color
	}
	if flags.Changed("format") {
		prefs.Format = o.format
	}
	if flags.Changed("line-number") {
		prefs.LineNumbers = o.lineNumbers
	}
	return prefs
}

func runSearch(cmd *cobra.Command, args []string, opts *rootOptions) (err error) {
	cfg, err := config.FromEnvironment(args)
	if err != nil {
		return err
	}

	prefs, err := config.LoadPreferences()
	if err != nil {
		return err
	}
	prefs = opts.applyFlags(cmd.Flags(), prefs)
	if err := prefs.Validate(); err != nil {
		return errors.FlagError(err)
	}
	opts.format = prefs.Format

	logger, cleanup, err := newLogger(opts, prefs)
	if err != nil {
		return err
	}
	defer cleanup()
	defer func() {
		if err != nil {
			logger.Error("search_failed", errors.FormatForLog(err)...)
		}
	}()

	var session *profiling.Session
	if opts.profile.Enabled() {
		session, err = profiling.Start(opts.profile)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err)
		}
	}
	defer func() {
		if stopErr := session.Stop(); stopErr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeInternal, stopErr)
		}
	}()

	policy := search.PolicyFor(cfg.CaseInsensitive || opts.ignoreCase)
	logger.Info("search_started",
		slog.String("query", cfg.Query),
		slog.String("file", cfg.Filename),
		slog.String("policy", policy.String()),
		slog.Bool("case_insensitive_env", cfg.CaseInsensitive))

	contents, err := document.Load(cfg.Filename)
	if err != nil {
		return err
	}
	logger.Debug("document_loaded", slog.Int("bytes", len(contents)))

	stdout := cmd.OutOrStdout()
	highlighter := ui.NewHighlighter(ui.NewConfig(stdout, ui.WithColorMode(prefs.Color)), policy)
	logger.Debug("output_configured",
		slog.String("format", prefs.Format),
		slog.Bool("line_numbers", prefs.LineNumbers),
		slog.Bool("color", highlighter.Enabled()))
	out := output.New(stdout,
		output.WithDecorator(highlighter),
		output.WithLineNumbers(prefs.LineNumbers))

	switch {
	case prefs.Format == config.FormatJSON:
		matches := policy.Matches(cfg.Query, contents)
		logger.Info("search_complete", slog.Int("matches", len(matches)))
		return out.JSON(matches)
	case prefs.LineNumbers:
		matches := policy.Matches(cfg.Query, contents)
		logger.Info("search_complete", slog.Int("matches", len(matches)))
		return out.Text(cfg.Query, matches)
	default:
		lines := policy.Search(cfg.Query, contents)
		logger.Info("search_complete", slog.Int("matches", len(lines)))
		return out.Lines(cfg.Query, lines)
	}
}

// newLogger returns a file logger when --debug is set and a discarding
// logger otherwise.
func newLogger(opts *rootOptions, prefs config.Preferences) (*slog.Logger, func(), error) {
	if !opts.debug {
		return logging.Discard(), func() {}, nil
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = prefs.LogLevel
	if opts.logFile != "" {
		logCfg.FilePath = opts.logFile
	}

	logger, cleanup, err := logging.Setup(logCfg)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInternal, fmt.Errorf("failed to setup debug logging: %w", err))
	}
	logger = logger.With(slog.String("version", version.Version))
	return logger, cleanup, nil
}
