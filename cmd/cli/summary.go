package main

import (
	"fmt"
	"text/tabwriter"

	dashboardService "FinanceTracker/internal/api/dashboard/service"
	"FinanceTracker/internal/entity"

	"github.com/spf13/cobra"
)

func summaryCmd() *cobra.Command {
	var userID, locale, view string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print totals and the expense distribution for a user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			repos, closeFn, err := openRepositories()
			if err != nil {
				return err
			}
			defer closeFn()

			svc := dashboardService.New(logger, repos.Transactions, repos.Categories)
			overview, err := svc.Overview(cmd.Context(), userID, view, entity.ParseLocale(locale))
			if err != nil {
				return err
			}

			t := overview.Totals
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Income\t%.2f\n", t.TotalIncome)
			fmt.Fprintf(w, "Expenses\t%.2f\n", t.TotalExpenses)
			fmt.Fprintf(w, "Balance\t%.2f\n", t.Balance)
			fmt.Fprintln(w)

			d := overview.Distribution
			if d.Empty {
				fmt.Fprintf(w, "No expenses this %s.\n", d.View)
				return w.Flush()
			}

			fmt.Fprintf(w, "CATEGORY\tAMOUNT\tSHARE\n")
			for _, s := range d.Shares {
				fmt.Fprintf(w, "%s\t%.2f\t%.1f%%\n", s.Name, s.Total, s.Percentage)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&userID, "user", "u", "", "user id")
	cmd.Flags().StringVarP(&locale, "locale", "l", "", "display locale")
	cmd.Flags().StringVar(&view, "view", "month", "distribution window: week or month")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
