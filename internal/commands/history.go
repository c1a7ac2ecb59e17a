package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newHistoryCommand() *cobra.Command {
	var bookDir string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the full transaction log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBook(bookDir)
			if err != nil {
				return err
			}

			for _, tx := range b.service.Transactions() {
				fmt.Printf("Transaction ID: %s\n", tx.ID)
				fmt.Printf("Timestamp:      %s\n", tx.Timestamp.Format(time.RFC3339))
				fmt.Printf("Account:        %s\n", tx.Account)
				fmt.Printf("Type:           %s\n", tx.Kind)
				fmt.Printf("Amount:         %s\n", tx.Amount.StringFixed(2))
				fmt.Println("-----------------------")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&bookDir, "book", ".", "passbook directory")

	return cmd
}
