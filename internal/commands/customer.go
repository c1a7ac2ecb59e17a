package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCustomerCommand() *cobra.Command {
	customerCmd := &cobra.Command{
		Use:   "customer",
		Short: "Customer records",
	}
	customerCmd.AddCommand(newCustomerAddCommand())
	return customerCmd
}

func newCustomerAddCommand() *cobra.Command {
	var bookDir string
	var address string
	var contact string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Register a new customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBook(bookDir)
			if err != nil {
				return err
			}

			name := args[0]
			if err := b.service.RegisterCustomer(name, address, contact); err != nil {
				return err
			}

			b.commit("customer: register " + name)
			fmt.Printf("Registered customer %s\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&bookDir, "book", ".", "passbook directory")
	cmd.Flags().StringVar(&address, "address", "", "customer address")
	cmd.Flags().StringVar(&contact, "contact", "", "customer contact details")

	return cmd
}
