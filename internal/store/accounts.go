package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/passbook-dev/passbook/internal/model"
)

// SavingsHeader is the CSV header for savings-accounts.csv.
const SavingsHeader = "account_number,balance,customer"

// CurrentHeader is the CSV header for current-accounts.csv.
const CurrentHeader = "account_number,balance,customer,overdraw_limit"

const (
	savingsFields = 3
	currentFields = 4
	colNumber     = 0
	colBalance    = 1
	colCustomer   = 2
	colOverdraw   = 3
)

// ReadSavings reads savings-accounts.csv into a map keyed by account number.
func ReadSavings(r io.Reader) (map[string]model.Account, error) {
	return readAccounts(r, savingsFields, model.KindSavings)
}

// ReadCurrent reads current-accounts.csv into a map keyed by account number.
func ReadCurrent(r io.Reader) (map[string]model.Account, error) {
	return readAccounts(r, currentFields, model.KindCurrent)
}

func readAccounts(r io.Reader, fields int, kind model.AccountKind) (map[string]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = fields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s accounts CSV: %w", kind, err)
	}

	accounts := make(map[string]model.Account)
	if len(records) == 0 {
		return accounts, nil
	}

	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec, kind)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts[acct.Number] = acct
	}
	return accounts, nil
}

// WriteSavings writes savings accounts, rows ordered by account number.
func WriteSavings(w io.Writer, accounts map[string]model.Account) error {
	return writeAccounts(w, accounts, strings.Split(SavingsHeader, ","))
}

// WriteCurrent writes current accounts, rows ordered by account number.
func WriteCurrent(w io.Writer, accounts map[string]model.Account) error {
	return writeAccounts(w, accounts, strings.Split(CurrentHeader, ","))
}

func writeAccounts(w io.Writer, accounts map[string]model.Account, header []string) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, number := range sortedKeys(accounts) {
		if err := cw.Write(MarshalAccount(accounts[number])); err != nil {
			return fmt.Errorf("writing account %s: %w", number, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row. Current accounts carry a
// fourth overdraw_limit column.
func MarshalAccount(acct model.Account) []string {
	fields := savingsFields
	if acct.Kind == model.KindCurrent {
		fields = currentFields
	}
	row := make([]string, fields)
	row[colNumber] = acct.Number
	row[colBalance] = acct.Balance.StringFixed(2)
	row[colCustomer] = acct.CustomerName
	if acct.Kind == model.KindCurrent {
		row[colOverdraw] = acct.OverdrawLimit.StringFixed(2)
	}
	return row
}

// UnmarshalAccount converts a CSV row to an Account of the given kind.
func UnmarshalAccount(record []string, kind model.AccountKind) (model.Account, error) {
	want := savingsFields
	if kind == model.KindCurrent {
		want = currentFields
	}
	if len(record) != want {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", want, len(record))
	}

	balance, err := decimal.NewFromString(record[colBalance])
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing balance %q: %w", record[colBalance], err)
	}

	acct := model.Account{
		Number:       record[colNumber],
		Kind:         kind,
		Balance:      balance,
		CustomerName: record[colCustomer],
	}

	if kind == model.KindCurrent {
		limit, err := decimal.NewFromString(record[colOverdraw])
		if err != nil {
			return model.Account{}, fmt.Errorf("parsing overdraw_limit %q: %w", record[colOverdraw], err)
		}
		acct.OverdrawLimit = limit
	}
	return acct, nil
}
