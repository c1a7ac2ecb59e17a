// Package store owns the four persisted collections of the passbook data
// directory. It is the single durable source of truth: services reconstruct
// transient views from it per operation and write changes back explicitly.
//
// Each collection lives in its own CSV file. A save rewrites every file in
// full through a temp-file-then-rename, so an individual file never
// half-writes. The four renames are not atomic with respect to each other;
// a crash between them leaves collections from two generations on disk.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/passbook-dev/passbook/internal/model"
)

// Collection file names inside the data directory.
const (
	SavingsFile      = "savings-accounts.csv"
	CurrentFile      = "current-accounts.csv"
	CustomersFile    = "customers.csv"
	TransactionsFile = "transactions.csv"
)

// Store holds all four collections in memory between load and save.
type Store struct {
	Savings      map[string]model.Account
	Current      map[string]model.Account
	Customers    map[string]model.Customer
	Transactions []model.Transaction
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		Savings:   make(map[string]model.Account),
		Current:   make(map[string]model.Account),
		Customers: make(map[string]model.Customer),
	}
}

// Load reads all four collections from dataDir. A missing file yields its
// empty collection; any other I/O or parse failure is returned.
func Load(dataDir string) (*Store, error) {
	s := New()

	if err := loadFile(filepath.Join(dataDir, SavingsFile), func(f *os.File) error {
		accounts, err := ReadSavings(f)
		if err == nil {
			s.Savings = accounts
		}
		return err
	}); err != nil {
		return nil, err
	}

	if err := loadFile(filepath.Join(dataDir, CurrentFile), func(f *os.File) error {
		accounts, err := ReadCurrent(f)
		if err == nil {
			s.Current = accounts
		}
		return err
	}); err != nil {
		return nil, err
	}

	if err := loadFile(filepath.Join(dataDir, CustomersFile), func(f *os.File) error {
		customers, err := ReadCustomers(f)
		if err == nil {
			s.Customers = customers
		}
		return err
	}); err != nil {
		return nil, err
	}

	if err := loadFile(filepath.Join(dataDir, TransactionsFile), func(f *os.File) error {
		txs, err := ReadTransactions(f)
		if err == nil {
			s.Transactions = txs
		}
		return err
	}); err != nil {
		return nil, err
	}

	return s, nil
}

func loadFile(path string, read func(*os.File) error) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if err := read(f); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

// Save rewrites all four collections under dataDir.
func (s *Store) Save(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	if err := saveFile(filepath.Join(dataDir, SavingsFile), func(f *os.File) error {
		return WriteSavings(f, s.Savings)
	}); err != nil {
		return err
	}
	if err := saveFile(filepath.Join(dataDir, CurrentFile), func(f *os.File) error {
		return WriteCurrent(f, s.Current)
	}); err != nil {
		return err
	}
	if err := saveFile(filepath.Join(dataDir, CustomersFile), func(f *os.File) error {
		return WriteCustomers(f, s.Customers)
	}); err != nil {
		return err
	}
	return saveFile(filepath.Join(dataDir, TransactionsFile), func(f *os.File) error {
		return WriteTransactions(f, s.Transactions)
	})
}

// saveFile writes to path+".tmp" and renames over path, so a crash mid-write
// cannot truncate an existing collection.
func saveFile(path string, write func(*os.File) error) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating %s: %w", tmp, err)
	}

	if err := write(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// FindAccount looks an account number up across both account collections.
func (s *Store) FindAccount(number string) (model.Account, bool) {
	if acct, ok := s.Savings[number]; ok {
		return acct, true
	}
	if acct, ok := s.Current[number]; ok {
		return acct, true
	}
	return model.Account{}, false
}

// PutAccount writes an account into the collection matching its kind.
func (s *Store) PutAccount(acct model.Account) {
	switch acct.Kind {
	case model.KindCurrent:
		s.Current[acct.Number] = acct
	default:
		s.Savings[acct.Number] = acct
	}
}

// FindCustomer looks a customer up by name.
func (s *Store) FindCustomer(name string) (model.Customer, bool) {
	cust, ok := s.Customers[name]
	return cust, ok
}

// AppendTransaction appends to the in-memory transaction log.
func (s *Store) AppendTransaction(tx model.Transaction) {
	s.Transactions = append(s.Transactions, tx)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
