package commands

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/passbook-dev/passbook/internal/model"
)

func newTxCommand() *cobra.Command {
	txCmd := &cobra.Command{
		Use:   "tx",
		Short: "Transactions",
	}
	txCmd.AddCommand(newTxPostCommand())
	return txCmd
}

func newTxPostCommand() *cobra.Command {
	var bookDir string

	cmd := &cobra.Command{
		Use:   "post <account> <deposit|withdrawal> <amount>",
		Short: "Post a deposit or withdrawal to an account",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[2])
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", args[2], err)
			}

			b, err := openBook(bookDir)
			if err != nil {
				return err
			}

			kind := model.TransactionKind(strings.ToLower(args[1]))

			tx, err := b.service.PostTransaction(args[0], kind, amount)
			if err != nil {
				return err
			}

			b.commit(fmt.Sprintf("tx: %s %s on %s", tx.Kind, tx.Amount.StringFixed(2), tx.Account))
			fmt.Printf("Posted %s of %s to %s (transaction %s)\n", tx.Kind, tx.Amount.StringFixed(2), tx.Account, tx.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&bookDir, "book", ".", "passbook directory")

	return cmd
}
