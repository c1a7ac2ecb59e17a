// Package bank implements the use-cases of the record keeper over a loaded
// store. Every mutating use-case validates against the store, applies its
// change to the in-memory collections, and rewrites the data directory.
package bank

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/passbook-dev/passbook/internal/id"
	"github.com/passbook-dev/passbook/internal/model"
	"github.com/passbook-dev/passbook/internal/store"
)

// Clock supplies transaction timestamps.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// Service orchestrates the banking use-cases.
type Service struct {
	store   *store.Store
	dataDir string
	clock   Clock
	newID   func() string
}

// NewService creates a Service over a loaded store. Mutating operations
// save back to dataDir.
func NewService(st *store.Store, dataDir string) *Service {
	return &Service{
		store:   st,
		dataDir: dataDir,
		clock:   systemClock{},
		newID:   id.NewTransactionID,
	}
}

// RegisterCustomer creates and persists a customer with no accounts.
func (s *Service) RegisterCustomer(name, address, contact string) error {
	if _, ok := s.store.FindCustomer(name); ok {
		return ErrDuplicateCustomer
	}

	s.store.Customers[name] = model.NewCustomer(name, address, contact)

	if err := s.store.Save(s.dataDir); err != nil {
		return fmt.Errorf("saving store: %w", err)
	}
	return nil
}

// OpenAccount creates an account for an existing customer and appends its
// number to the customer's ordered account list. overdrawLimit applies to
// current accounts only and is ignored for savings.
func (s *Service) OpenAccount(customerName string, kind model.AccountKind, number string, openingBalance, overdrawLimit decimal.Decimal) error {
	cust, ok := s.store.FindCustomer(customerName)
	if !ok {
		return ErrCustomerNotFound
	}
	if kind != model.KindSavings && kind != model.KindCurrent {
		return ErrInvalidAccountKind
	}
	// ";" delimits the customer's account list in customers.csv.
	if strings.Contains(number, ";") {
		return ErrInvalidAccountNumber
	}
	if _, ok := s.store.FindAccount(number); ok {
		return ErrDuplicateAccount
	}

	acct := model.Account{
		Number:       number,
		Kind:         kind,
		Balance:      openingBalance,
		CustomerName: customerName,
	}
	if kind == model.KindCurrent {
		acct.OverdrawLimit = overdrawLimit
	}

	s.store.PutAccount(acct)
	cust.AttachAccount(number)
	s.store.Customers[customerName] = cust

	if err := s.store.Save(s.dataDir); err != nil {
		return fmt.Errorf("saving store: %w", err)
	}
	return nil
}

// PostTransaction applies a deposit or withdrawal to the account's persisted
// balance and appends an immutable record to the transaction log. The
// balance is read fresh from the store; nothing else holds it.
func (s *Service) PostTransaction(number string, kind model.TransactionKind, amount decimal.Decimal) (model.Transaction, error) {
	acct, ok := s.store.FindAccount(number)
	if !ok {
		return model.Transaction{}, ErrAccountNotFound
	}

	switch kind {
	case model.KindDeposit:
		if amount.Sign() <= 0 {
			return model.Transaction{}, ErrInvalidAmount
		}
		acct.Deposit(amount)
	case model.KindWithdrawal:
		if amount.Sign() <= 0 {
			return model.Transaction{}, ErrInvalidAmount
		}
		if !acct.Withdraw(amount) {
			return model.Transaction{}, ErrInsufficientFunds
		}
	default:
		return model.Transaction{}, ErrInvalidTransactionKind
	}

	// The log persists timestamps at second precision; truncate up front so
	// the returned transaction matches what a reload produces.
	tx := model.Transaction{
		ID:        s.newID(),
		Timestamp: s.clock.Now().Truncate(time.Second),
		Account:   number,
		Kind:      kind,
		Amount:    amount,
	}

	s.store.PutAccount(acct)
	s.store.AppendTransaction(tx)

	if err := s.store.Save(s.dataDir); err != nil {
		return model.Transaction{}, fmt.Errorf("saving store: %w", err)
	}
	return tx, nil
}

// Balance returns the persisted balance of an account. Read-only; no
// transaction is recorded.
func (s *Service) Balance(number string) (decimal.Decimal, error) {
	acct, ok := s.store.FindAccount(number)
	if !ok {
		return decimal.Decimal{}, ErrAccountNotFound
	}
	return acct.Balance, nil
}

// Transactions returns the full ordered transaction log.
func (s *Service) Transactions() []model.Transaction {
	return s.store.Transactions
}
