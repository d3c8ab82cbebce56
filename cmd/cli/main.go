package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"FinanceTracker/pkg/log"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logrus.Logger

	rootCmd = &cobra.Command{
		Use:               "fintrack",
		Short:             "Operator tools for the finance tracker backend",
		SilenceUsage:      true,
		PersistentPreRunE: initEnv,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(billsCmd())
	rootCmd.AddCommand(summaryCmd())
	rootCmd.AddCommand(exportCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initEnv(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	if verbose {
		logger = log.NewLogger()
	} else {
		logger = log.NewDiscardLogger()
	}
	return nil
}
