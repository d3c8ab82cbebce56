package main

import (
	"fmt"
	"os"

	transactionService "FinanceTracker/internal/api/transaction/service"
	"FinanceTracker/internal/entity"
	"FinanceTracker/pkg/s3"
	"FinanceTracker/pkg/utils"

	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var userID, locale, out string
	var archive bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a user's transactions as CSV",
		Long: `Writes the CSV to --out (stdout when empty). With --archive the file is
uploaded to the configured S3 bucket instead and the object URL is printed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repos, closeFn, err := openRepositories()
			if err != nil {
				return err
			}
			defer closeFn()

			var s3Client s3.ItfS3
			if archive {
				if s3Client, err = s3.New(); err != nil {
					return fmt.Errorf("archive needs S3: %w", err)
				}
			}

			svc := transactionService.New(logger, repos.Transactions, repos.Categories, s3Client, utils.New())
			loc := entity.ParseLocale(locale)

			if archive {
				res, err := svc.ArchiveCSV(cmd.Context(), userID, loc)
				if err != nil {
					return err
				}
				cmd.Printf("archived to %s\n", res.URL)
				return nil
			}

			data, err := svc.ExportCSV(cmd.Context(), userID, loc)
			if err != nil {
				return err
			}

			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			cmd.Printf("wrote %d bytes to %s\n", len(data), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&userID, "user", "u", "", "user id")
	cmd.Flags().StringVarP(&locale, "locale", "l", "", "locale used for category names")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file")
	cmd.Flags().BoolVar(&archive, "archive", false, "upload to S3 instead of writing locally")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
