package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/passbook-dev/passbook/internal/model"
)

// CustomersHeader is the CSV header for customers.csv.
const CustomersHeader = "name,address,contact_details,accounts"

const (
	customerFields = 4
	colName        = 0
	colAddress     = 1
	colContact     = 2
	colAccounts    = 3
)

// ReadCustomers reads customers.csv into a map keyed by customer name.
func ReadCustomers(r io.Reader) (map[string]model.Customer, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = customerFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading customers CSV: %w", err)
	}

	customers := make(map[string]model.Customer)
	if len(records) == 0 {
		return customers, nil
	}

	for i, rec := range records[1:] {
		cust, err := UnmarshalCustomer(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		customers[cust.Name] = cust
	}
	return customers, nil
}

// WriteCustomers writes customers.csv, rows ordered by name.
func WriteCustomers(w io.Writer, customers map[string]model.Customer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(CustomersHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, name := range sortedKeys(customers) {
		if err := cw.Write(MarshalCustomer(customers[name])); err != nil {
			return fmt.Errorf("writing customer %s: %w", name, err)
		}
	}
	return cw.Error()
}

// MarshalCustomer converts a Customer to a CSV row. The ordered account
// numbers are joined with semicolons, so ";" is reserved and must not
// appear in an account number (OpenAccount rejects it).
func MarshalCustomer(cust model.Customer) []string {
	row := make([]string, customerFields)
	row[colName] = cust.Name
	row[colAddress] = cust.Address
	row[colContact] = cust.Contact
	row[colAccounts] = strings.Join(cust.Accounts, ";")
	return row
}

// UnmarshalCustomer converts a CSV row to a Customer.
func UnmarshalCustomer(record []string) (model.Customer, error) {
	if len(record) != customerFields {
		return model.Customer{}, fmt.Errorf("expected %d fields, got %d", customerFields, len(record))
	}

	cust := model.Customer{
		Name:    record[colName],
		Address: record[colAddress],
		Contact: record[colContact],
	}
	if record[colAccounts] != "" {
		cust.Accounts = strings.Split(record[colAccounts], ";")
	}
	return cust, nil
}
