package cli

import (
	"fmt"

	"github.com/go-kit/log/level"
	money "github.com/govalues/fxmoney"
	"github.com/spf13/cobra"
)

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse TEXT...",
		Short: "Parse amounts such as €1.23, 1.23EUR or GBP1,234.56",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.formatter()
			if err != nil {
				return err
			}
			for _, s := range args {
				m, err := f.ParseMoney(s)
				if err != nil {
					return err
				}
				level.Debug(a.logger).Log("msg", "parsed", "text", s, "amount", m) //nolint:errcheck
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}
			return nil
		},
	}
}

func (a *app) formatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format CODE AMOUNT",
		Short: "Format an amount for the locale",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.formatter()
			if err != nil {
				return err
			}
			m, err := money.ParseMoney(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), f.FormatMoney(m))
			return nil
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	var pair, rate string
	cmd := &cobra.Command{
		Use:   "convert TEXT",
		Short: "Convert an amount with an exchange rate",
		Long: `Convert an amount to the other currency of the pair.
An amount in the base currency is multiplied by the rate and truncated,
an amount in the quote currency is divided by the rate and rounded half up.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.formatter()
			if err != nil {
				return err
			}
			m, err := f.ParseMoney(args[0])
			if err != nil {
				return err
			}
			r, err := money.ParseExchRate(pair, rate, a.clock.Now())
			if err != nil {
				return err
			}
			level.Debug(a.logger).Log("msg", "converting", "amount", m, "rate", r) //nolint:errcheck
			c, err := r.Conv(m)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c)
			return nil
		},
	}
	cmd.Flags().StringVar(&pair, "pair", "", "currency pair, such as EUR/USD")
	cmd.Flags().StringVar(&rate, "rate", "", "units of quote currency per unit of base currency")
	_ = cmd.MarkFlagRequired("pair")
	_ = cmd.MarkFlagRequired("rate")
	return cmd
}
