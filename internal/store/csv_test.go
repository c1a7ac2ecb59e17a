package store

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passbook-dev/passbook/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestAccountsRoundTrip(t *testing.T) {
	savings := map[string]model.Account{
		"S1": {Number: "S1", Kind: model.KindSavings, Balance: dec("150.00"), CustomerName: "Alice"},
		"S2": {Number: "S2", Kind: model.KindSavings, Balance: dec("0.00"), CustomerName: "Bob"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSavings(&buf, savings))
	assert.True(t, strings.HasPrefix(buf.String(), "account_number,"))

	got, err := ReadSavings(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got["S1"].Balance.Equal(dec("150.00")))
	assert.Equal(t, "Alice", got["S1"].CustomerName)
	assert.Equal(t, model.KindSavings, got["S1"].Kind)
}

func TestCurrentAccountsRoundTrip(t *testing.T) {
	current := map[string]model.Account{
		"C1": {Number: "C1", Kind: model.KindCurrent, Balance: dec("75.25"), CustomerName: "Carol", OverdrawLimit: dec("500.00")},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCurrent(&buf, current))

	got, err := ReadCurrent(&buf)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got["C1"].Balance.Equal(dec("75.25")))
	assert.True(t, got["C1"].OverdrawLimit.Equal(dec("500.00")))
	assert.Equal(t, model.KindCurrent, got["C1"].Kind)
}

func TestCustomersRoundTrip(t *testing.T) {
	customers := map[string]model.Customer{
		"Alice": {Name: "Alice", Address: "1 Main St", Contact: "alice@example.com", Accounts: []string{"S1", "C1"}},
		"Bob":   {Name: "Bob", Address: "2 Side Rd, Apt \"B\"", Contact: "555-0102"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCustomers(&buf, customers))

	got, err := ReadCustomers(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"S1", "C1"}, got["Alice"].Accounts, "account order must survive")
	assert.Nil(t, got["Bob"].Accounts)
	assert.Equal(t, "2 Side Rd, Apt \"B\"", got["Bob"].Address)
}

func TestTransactionsRoundTrip(t *testing.T) {
	txs := []model.Transaction{
		{
			ID:        "6f1c2b34-0000-4000-8000-000000000001",
			Timestamp: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			Account:   "S1",
			Kind:      model.KindDeposit,
			Amount:    dec("50.00"),
		},
		{
			ID:        "6f1c2b34-0000-4000-8000-000000000002",
			Timestamp: time.Date(2026, 3, 1, 10, 5, 0, 0, time.UTC),
			Account:   "S1",
			Kind:      model.KindWithdrawal,
			Amount:    dec("150.00"),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTransactions(&buf, txs))

	got, err := ReadTransactions(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for i := range txs {
		assert.Equal(t, txs[i].ID, got[i].ID)
		assert.True(t, txs[i].Timestamp.Equal(got[i].Timestamp))
		assert.Equal(t, txs[i].Account, got[i].Account)
		assert.Equal(t, txs[i].Kind, got[i].Kind)
		assert.True(t, txs[i].Amount.Equal(got[i].Amount), "amount mismatch row %d", i)
	}
}

func TestReadTransactions_Empty(t *testing.T) {
	txs, err := ReadTransactions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, txs)
}

func TestReadTransactions_HeaderOnly(t *testing.T) {
	txs, err := ReadTransactions(strings.NewReader(TransactionsHeader + "\n"))
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestUnmarshalTransaction_BadKind(t *testing.T) {
	_, err := UnmarshalTransaction([]string{"id", "2026-03-01T10:00:00Z", "S1", "transfer", "10.00"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transaction_type")
}

func TestUnmarshalAccount_BadBalance(t *testing.T) {
	_, err := UnmarshalAccount([]string{"S1", "lots", "Alice"}, model.KindSavings)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "balance")
}
