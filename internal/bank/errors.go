package bank

import "errors"

// Domain errors surfaced by the Service. All are recoverable: the caller
// reports them and the store is left unchanged.
var (
	ErrCustomerNotFound       = errors.New("customer not found")
	ErrAccountNotFound        = errors.New("account not found")
	ErrDuplicateCustomer      = errors.New("customer already registered")
	ErrDuplicateAccount       = errors.New("account number already in use")
	ErrInvalidAccountKind     = errors.New("account type must be savings or current")
	ErrInvalidAccountNumber   = errors.New(`account number must not contain ";"`)
	ErrInvalidTransactionKind = errors.New("transaction type must be deposit or withdrawal")
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrInsufficientFunds      = errors.New("insufficient balance")
)
