package model

// Customer represents a row in customers.csv. Name is the unique key.
type Customer struct {
	Name     string
	Address  string
	Contact  string
	Accounts []string // account numbers in the order opened
}

// NewCustomer creates a customer with no accounts.
func NewCustomer(name, address, contact string) Customer {
	return Customer{Name: name, Address: address, Contact: contact}
}

// AttachAccount appends an account number to the ordered list.
func (c *Customer) AttachAccount(number string) {
	c.Accounts = append(c.Accounts, number)
}
