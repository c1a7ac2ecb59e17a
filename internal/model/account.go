package model

import "github.com/shopspring/decimal"

// AccountKind distinguishes the two account variants.
type AccountKind string

const (
	KindSavings AccountKind = "savings"
	KindCurrent AccountKind = "current"
)

// Account is a transient view of one row in savings-accounts.csv or
// current-accounts.csv. The store is the source of truth; an Account is
// reconstructed per operation and written back explicitly.
type Account struct {
	Number        string
	Kind          AccountKind
	Balance       decimal.Decimal
	CustomerName  string          // empty when reconstructed without customer context
	OverdrawLimit decimal.Decimal // current accounts only; stored, never enforced
}

// Deposit adds amount to the balance. Never fails.
func (a *Account) Deposit(amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount)
}

// Withdraw subtracts amount from the balance. It reports false and leaves
// the balance unchanged when the balance does not cover the amount. The
// overdraw limit on current accounts is not consulted.
func (a *Account) Withdraw(amount decimal.Decimal) bool {
	if a.Balance.LessThan(amount) {
		return false
	}
	a.Balance = a.Balance.Sub(amount)
	return true
}

// AccrueMonthlyInterest adds balance * rate to a savings account balance.
// Current accounts do not earn interest; the call is a no-op for them.
// No workflow invokes this yet.
func (a *Account) AccrueMonthlyInterest(rate decimal.Decimal) {
	if a.Kind != KindSavings {
		return
	}
	a.Balance = a.Balance.Add(a.Balance.Mul(rate))
}
