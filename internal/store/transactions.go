package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/passbook-dev/passbook/internal/model"
)

// TransactionsHeader is the CSV header for transactions.csv.
const TransactionsHeader = "transaction_id,timestamp,account,transaction_type,amount"

const (
	txFields     = 5
	colTxID      = 0
	colTimestamp = 1
	colTxAccount = 2
	colTxKind    = 3
	colTxAmount  = 4
)

// ReadTransactions reads the ordered transaction log.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = txFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var txs []model.Transaction
	for i, rec := range records[1:] {
		tx, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// WriteTransactions writes the transaction log in order, including header.
func WriteTransactions(w io.Writer, txs []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(TransactionsHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, tx := range txs {
		if err := cw.Write(MarshalTransaction(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(tx model.Transaction) []string {
	row := make([]string, txFields)
	row[colTxID] = tx.ID
	row[colTimestamp] = tx.Timestamp.Format(time.RFC3339)
	row[colTxAccount] = tx.Account
	row[colTxKind] = string(tx.Kind)
	row[colTxAmount] = tx.Amount.StringFixed(2)
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != txFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", txFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	kind, ok := model.ParseTransactionKind(record[colTxKind])
	if !ok {
		return model.Transaction{}, fmt.Errorf("unknown transaction_type %q", record[colTxKind])
	}

	amount, err := decimal.NewFromString(record[colTxAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colTxAmount], err)
	}

	return model.Transaction{
		ID:        record[colTxID],
		Timestamp: ts,
		Account:   record[colTxAccount],
		Kind:      kind,
		Amount:    amount,
	}, nil
}
