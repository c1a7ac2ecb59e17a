package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBalanceCommand() *cobra.Command {
	var bookDir string

	cmd := &cobra.Command{
		Use:   "balance <account>",
		Short: "Show the current balance of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBook(bookDir)
			if err != nil {
				return err
			}

			balance, err := b.service.Balance(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Current balance: %s\n", balance.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&bookDir, "book", ".", "passbook directory")

	return cmd
}
