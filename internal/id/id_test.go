package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTransactionID(t *testing.T) {
	a := NewTransactionID()
	b := NewTransactionID()

	assert.NotEqual(t, a, b)
	assert.True(t, IsTransactionID(a))
	assert.True(t, IsTransactionID(b))
}

func TestIsTransactionID(t *testing.T) {
	assert.True(t, IsTransactionID("6f1c2b34-0000-4000-8000-000000000001"))
	assert.False(t, IsTransactionID(""))
	assert.False(t, IsTransactionID("tx-001"))
}
