// Package cli implements the dugout command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mattgren/dugout/internal/adapters/repository"
	"github.com/mattgren/dugout/internal/app"
	"github.com/mattgren/dugout/internal/config"
	"github.com/mattgren/dugout/internal/domain/match"
	"github.com/mattgren/dugout/internal/domain/stats"
	"github.com/mattgren/dugout/pkg/logger"
)

// Version is set at build time.
var Version = "dev"

// rootOptions carries flag values and the loaded configuration shared
// by every subcommand.
type rootOptions struct {
	dbPath    string
	logLevel  string
	colorMode string

	cfg   *config.Config
	vocab *stats.Vocabulary
}

// setup loads configuration, applies flag overrides and initializes
// logging and color output. PersistentPreRunE runs it before every
// subcommand.
func (o *rootOptions) setup(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if o.dbPath != "" {
		cfg.DBPath = o.dbPath
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.colorMode != "" {
		cfg.Color = o.colorMode
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		return err
	}

	switch cfg.Color {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto":
		// fatih/color already detected the terminal
	default:
		return fmt.Errorf("invalid --color %q (use auto, always or never)", cfg.Color)
	}

	vocab, err := cfg.Vocabulary()
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.vocab = vocab
	return nil
}

// service opens the stats store and builds the application service
// writing to out. The returned closer releases the store handle.
func (o *rootOptions) service(ctx context.Context, out io.Writer) (*app.Service, func(), error) {
	src, err := repository.NewSQLite(ctx, o.cfg.DBPath, o.vocab,
		repository.WithLogger(logger.Named("store")))
	if err != nil {
		return nil, nil, err
	}

	svc := app.New(src,
		app.WithLogger(logger.Named("app")),
		app.WithVocabulary(o.vocab),
		app.WithOutput(out),
		app.WithDefaultSeason(o.cfg.DefaultSeason),
		app.WithQualification(o.cfg.QualPA, o.cfg.QualIP))
	return svc, func() { _ = src.Close() }, nil
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "dugout",
		Short: "Look up and compare baseball player stats",
		Long: `Dugout answers quick stat questions from a local baseball database.

Player names match loosely: "judge" finds Aaron Judge, "l.webb" narrows
two Webbs down to Logan. Seasons, careers, head-to-head matchups and
team or league average comparisons are all one command away.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd.Context())
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.dbPath, "db", "", "path to the stats database")
	pf.StringVar(&opts.logLevel, "log-level", "", "log verbosity: debug, info, warn, error")
	pf.StringVar(&opts.colorMode, "color", "", "terminal styling: auto, always, never")

	rootCmd.AddCommand(NewLookupCmd(opts))
	rootCmd.AddCommand(NewCompareCmd(opts))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dugout %s\n", Version)
		},
	}
}

// Execute runs the CLI and maps the outcome to a process exit code.
func Execute(ctx context.Context) int {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		report(os.Stderr, err)
		return ExitCode(err)
	}
	return ExitOK
}

// report prints the single-line diagnostic, plus the candidate listing
// when a name was ambiguous.
func report(w io.Writer, err error) {
	fmt.Fprintf(w, "dugout: %v\n", err)

	var amb *match.AmbiguousError
	if errors.As(err, &amb) {
		for _, c := range amb.Candidates {
			fmt.Fprintf(w, "  - %s (%s) [%s]\n", c.FullName(), c.Team, c.Type)
		}
	}
}
