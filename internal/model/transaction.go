package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies a money movement.
type TransactionKind string

const (
	KindDeposit    TransactionKind = "deposit"
	KindWithdrawal TransactionKind = "withdrawal"
)

// ParseTransactionKind normalizes user input to a TransactionKind. The
// boolean reports whether the input named a known kind.
func ParseTransactionKind(s string) (TransactionKind, bool) {
	switch TransactionKind(strings.ToLower(strings.TrimSpace(s))) {
	case KindDeposit:
		return KindDeposit, true
	case KindWithdrawal:
		return KindWithdrawal, true
	}
	return "", false
}

// Transaction is one immutable row in the append-only transactions.csv log.
type Transaction struct {
	ID        string // uuid v4
	Timestamp time.Time
	Account   string // account number
	Kind      TransactionKind
	Amount    decimal.Decimal
}
