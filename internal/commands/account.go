package commands

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/passbook-dev/passbook/internal/model"
)

func newAccountCommand() *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Account records",
	}
	accountCmd.AddCommand(newAccountOpenCommand())
	return accountCmd
}

func newAccountOpenCommand() *cobra.Command {
	var bookDir string
	var customer string
	var kindArg string
	var balanceArg string
	var overdrawArg string

	cmd := &cobra.Command{
		Use:   "open <number>",
		Short: "Open a savings or current account for a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opening, err := decimal.NewFromString(balanceArg)
			if err != nil {
				return fmt.Errorf("parsing --balance %q: %w", balanceArg, err)
			}
			overdraw, err := decimal.NewFromString(overdrawArg)
			if err != nil {
				return fmt.Errorf("parsing --overdraw-limit %q: %w", overdrawArg, err)
			}

			b, err := openBook(bookDir)
			if err != nil {
				return err
			}

			number := args[0]
			// Unknown kinds pass through so the service reports them.
			kind := model.AccountKind(strings.ToLower(kindArg))

			if err := b.service.OpenAccount(customer, kind, number, opening, overdraw); err != nil {
				return err
			}

			b.commit(fmt.Sprintf("account: open %s %s for %s", kind, number, customer))
			fmt.Printf("Opened %s account %s for %s with balance %s\n", kind, number, customer, opening.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&bookDir, "book", ".", "passbook directory")
	cmd.Flags().StringVar(&customer, "customer", "", "owning customer name (required)")
	_ = cmd.MarkFlagRequired("customer")
	cmd.Flags().StringVar(&kindArg, "type", "savings", "account type: savings or current")
	cmd.Flags().StringVar(&balanceArg, "balance", "0", "opening balance")
	cmd.Flags().StringVar(&overdrawArg, "overdraw-limit", "0", "overdraw limit (current accounts)")

	return cmd
}
