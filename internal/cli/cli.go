// Package cli implements the moneyfmt command tree.
package cli

import (
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	money "github.com/govalues/fxmoney"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

// Defaults of the persistent flags.
const (
	DefaultLocale  = "en-US"
	DefaultPattern = "¤#,##0.###"
)

type app struct {
	base    log.Logger
	logger  log.Logger
	clock   money.Clock
	locale  string
	pattern string
	verbose bool
}

// NewRootCmd returns the moneyfmt command with all subcommands attached.
// Diagnostics go to logger, results to the output of the command.
// Exchange rates built by the convert subcommand are stamped with clock.
func NewRootCmd(logger log.Logger, clock money.Clock) *cobra.Command {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if clock == nil {
		clock = money.SystemClock
	}
	a := &app{base: logger, logger: logger, clock: clock}

	root := &cobra.Command{
		Use:   "moneyfmt",
		Short: "Parse, format and convert monetary amounts",
		Long: `moneyfmt parses amounts written with currency symbols or codes,
formats amounts for a locale and converts them with exchange rates.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			allow := level.AllowInfo()
			if a.verbose {
				allow = level.AllowDebug()
			}
			a.logger = level.NewFilter(a.base, allow)
		},
	}
	root.PersistentFlags().StringVar(&a.locale, "locale", DefaultLocale, "BCP 47 language tag")
	root.PersistentFlags().StringVar(&a.pattern, "pattern", DefaultPattern, "number pattern")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug messages")

	root.AddCommand(a.parseCmd(), a.formatCmd(), a.convertCmd())
	return root
}

// formatter builds a formatter from the persistent flags.
func (a *app) formatter() (*money.Formatter, error) {
	tag, err := language.Parse(a.locale)
	if err != nil {
		return nil, fmt.Errorf("locale %q: %w", a.locale, err)
	}
	f, err := money.NewFormatter(tag, a.pattern, money.ISO4217)
	if err != nil {
		return nil, err
	}
	level.Debug(a.logger).Log("msg", "formatter ready", "locale", tag, "pattern", f.Pattern()) //nolint:errcheck
	return f, nil
}
