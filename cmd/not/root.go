package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Geun-Oh/not/internal/compare"
	"github.com/Geun-Oh/not/internal/config"
	"github.com/Geun-Oh/not/internal/fault"
	"github.com/Geun-Oh/not/internal/filter"
	"github.com/Geun-Oh/not/internal/log"
	"github.com/Geun-Oh/not/internal/monitor"
	"github.com/Geun-Oh/not/internal/pipeline"
	"github.com/Geun-Oh/not/internal/sink"
	"github.com/Geun-Oh/not/internal/source"
)

type rootOptions struct {
	pattern    string
	mode       string
	input      string
	output     string
	configFile string
	copyright  bool
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var opts rootOptions
	v := config.New()

	cmd := &cobra.Command{
		Use:   "not -s STRING -m MODE [flags]",
		Short: "Suppress lines of input that start with, end with, or contain a string",
		Long: `not suppresses lines of input that start with, end with, or contain the specified string.

MODE is one of StartsWith, Contains, EndsWith (case-insensitive).
The comparison policy is one of CurrentCulture, CurrentCultureIgnoreCase,
InvariantCulture, InvariantCultureIgnoreCase, Ordinal, OrdinalIgnoreCase.
The default policy is CurrentCulture.

Lines are trimmed; blank lines are dropped. If --input is omitted input is
read from stdin; if --output is omitted output is written to stdout. An
existing output file is overwritten and truncated to the new content.

Every setting except the string and mode may also come from the
environment (NOT_COMPARE, NOT_LOCALE, NOT_LOG_LEVEL, NOT_MAX_LINE_BYTES,
NOT_STATS) or from a --config file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.copyright {
				return printCopyright(stdout)
			}
			return runFilter(cmd, v, &opts, stdin, stdout, stderr)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&opts.pattern, "string", "s", "", "the string to match (required)")
	flags.StringVarP(&opts.mode, "mode", "m", "", "StartsWith, Contains or EndsWith (required)")
	flags.StringVarP(&opts.input, "input", "i", "", "input file path (default: stdin)")
	flags.StringVarP(&opts.output, "output", "o", "", "output file path (default: stdout)")
	flags.BoolVarP(&opts.copyright, "copyright", "c", false, "print the copyright notice and exit")
	flags.StringVar(&opts.configFile, "config", "", "config file (yaml, toml or json)")
	flags.String("compare", compare.Default.String(), "comparison policy")
	flags.String("locale", "", "locale for culture-aware policies (default: from LC_ALL, LC_MESSAGES, LANG)")
	flags.String("log-level", "error", "diagnostic log level: debug, info, warn, error, fatal")
	flags.Int("max-line-bytes", source.DefaultMaxLine, "longest input line accepted, in bytes")
	flags.Bool("stats", false, "print a summary to stderr when done")

	for key, name := range map[string]string{
		"compare":        "compare",
		"locale":         "locale",
		"log_level":      "log-level",
		"max_line_bytes": "max-line-bytes",
		"stats":          "stats",
	} {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}

	return cmd
}

func runFilter(cmd *cobra.Command, v *viper.Viper, opts *rootOptions, stdin io.Reader, stdout, stderr io.Writer) error {
	if opts.configFile != "" {
		if err := config.ReadFile(v, opts.configFile); err != nil {
			return err
		}
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	log.Init(cfg.LogLevel, stderr)

	f, err := buildFilter(opts, cfg)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("input") && opts.input == "" {
		return fmt.Errorf("%w: --input requires a file path", fault.ErrConfig)
	}
	if flags.Changed("output") && opts.output == "" {
		return fmt.Errorf("%w: --output requires a file path", fault.ErrConfig)
	}

	var src source.Source = source.NewStdinSource(stdin, cfg.MaxLineBytes)
	if opts.input != "" {
		src = source.NewFileSource(opts.input, cfg.MaxLineBytes)
	}
	out := sink.Stdout(stdout)
	if opts.output != "" {
		out = sink.File(opts.output)
	}

	stats := monitor.NewStats()
	err = pipeline.Run(cmd.Context(), &pipeline.Config{
		Source: src,
		Filter: filter.NewExcludeFilter(f),
		Sink:   out,
		Stats:  stats,
	})
	if err != nil {
		return err
	}

	log.Debugf("done: read=%d suppressed=%d written=%d", stats.Read(), stats.Suppressed(), stats.Written())
	if cfg.Stats {
		fmt.Fprintln(stderr, stats.Summary())
	}
	return nil
}

// buildFilter validates the pattern, mode and policy and returns the
// predicate matching the lines to suppress.
func buildFilter(opts *rootOptions, cfg *config.Config) (filter.Filter, error) {
	if opts.pattern == "" {
		return nil, fmt.Errorf("%w: --string is required and must not be empty", fault.ErrConfig)
	}
	mode, err := filter.ParseMode(opts.mode)
	if err != nil {
		return nil, err
	}
	policy := cfg.Policy()
	locale := compare.CurrentLocale(cfg.Locale)
	cmp, err := policy.Comparer(locale)
	if err != nil {
		return nil, err
	}
	log.WithField("mode", mode).WithField("policy", policy).WithField("locale", locale).Debug("filter configured")
	return filter.Build(mode, opts.pattern, cmp)
}
