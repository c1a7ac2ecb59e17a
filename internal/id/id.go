package id

import "github.com/google/uuid"

// NewTransactionID returns a random 128-bit transaction id.
func NewTransactionID() string {
	return uuid.NewString()
}

// IsTransactionID reports whether s parses as a transaction id.
func IsTransactionID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
