package main

import (
	"fmt"
	"text/tabwriter"

	dashboardService "FinanceTracker/internal/api/dashboard/service"
	"FinanceTracker/internal/entity"

	"github.com/spf13/cobra"
)

func billsCmd() *cobra.Command {
	var userID, locale string

	cmd := &cobra.Command{
		Use:   "bills",
		Short: "List a user's recurring bills and their due status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			repos, closeFn, err := openRepositories()
			if err != nil {
				return err
			}
			defer closeFn()

			svc := dashboardService.New(logger, repos.Transactions, repos.Categories)
			res, err := svc.Bills(cmd.Context(), userID, entity.ParseLocale(locale))
			if err != nil {
				return err
			}

			if len(res.Bills) == 0 {
				cmd.Println("No recurring bills.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DUE\tDESCRIPTION\tCATEGORY\tAMOUNT\tSTATUS")
			for _, b := range res.Bills {
				fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\n", b.DueDate, b.Description, b.Name, b.Amount, b.StatusText)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&userID, "user", "u", "", "user id")
	cmd.Flags().StringVarP(&locale, "locale", "l", "", "display locale (pt-BR, en-US, zh-CN, ru-RU)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
