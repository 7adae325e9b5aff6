package model

import (
	"encoding/json"
	"fmt"
)

// TransactionType discriminates income from expense records.
type TransactionType string

const (
	// TypeIncome marks records in the income collection.
	TypeIncome TransactionType = "income"
	// TypeExpense marks records in the expense collection.
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the two known transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// PaymentMethod is how a transaction was settled.
type PaymentMethod string

// Accepted payment methods.
const (
	MethodCreditCard   PaymentMethod = "Credit Card"
	MethodBankTransfer PaymentMethod = "Bank Transfer"
	MethodCash         PaymentMethod = "Cash"
	MethodCheck        PaymentMethod = "Check"
	MethodOther        PaymentMethod = "Other"
)

// TransactionStatus is a free-form settlement label with no enforced
// transition rules.
type TransactionStatus string

// Accepted transaction statuses.
const (
	StatusPaid    TransactionStatus = "Paid"
	StatusUnpaid  TransactionStatus = "Unpaid"
	StatusPending TransactionStatus = "Pending"
)

// Transaction is a single dated income or expense record. It is a tagged
// variant: Type selects the case and Counterparty holds the client (income)
// or vendor (expense) name. The tag itself is never serialized; on the wire
// an income record carries a "client" field and an expense record a "vendor"
// field, and the tag is recovered from which one is present.
type Transaction struct {
	ID            string
	Date          Date
	Description   string
	Amount        float64
	Category      string
	PaymentMethod PaymentMethod
	Status        TransactionStatus
	Type          TransactionType
	Counterparty  string
}

// transactionJSON is the wire shape. Exactly one of Client/Vendor is set.
type transactionJSON struct {
	ID            string            `json:"id"`
	Date          Date              `json:"date"`
	Description   string            `json:"description"`
	Amount        float64           `json:"amount"`
	Category      string            `json:"category"`
	PaymentMethod PaymentMethod     `json:"paymentMethod"`
	Status        TransactionStatus `json:"status"`
	Client        *string           `json:"client,omitempty"`
	Vendor        *string           `json:"vendor,omitempty"`
}

// MarshalJSON encodes the transaction with its counterparty under "client"
// or "vendor" depending on the type tag.
func (t Transaction) MarshalJSON() ([]byte, error) {
	wire := transactionJSON{
		ID:            t.ID,
		Date:          t.Date,
		Description:   t.Description,
		Amount:        t.Amount,
		Category:      t.Category,
		PaymentMethod: t.PaymentMethod,
		Status:        t.Status,
	}
	party := t.Counterparty
	switch t.Type {
	case TypeIncome:
		wire.Client = &party
	case TypeExpense:
		wire.Vendor = &party
	default:
		return nil, fmt.Errorf("transaction %q has invalid type %q", t.ID, t.Type)
	}
	return json.Marshal(wire)
}

// UnmarshalJSON decodes a transaction, recovering the type tag from whether
// the record carries a "client" or a "vendor" field. A record with a vendor
// is an expense; anything else is income.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var wire transactionJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	t.ID = wire.ID
	t.Date = wire.Date
	t.Description = wire.Description
	t.Amount = wire.Amount
	t.Category = wire.Category
	t.PaymentMethod = wire.PaymentMethod
	t.Status = wire.Status
	if wire.Vendor != nil {
		t.Type = TypeExpense
		t.Counterparty = *wire.Vendor
	} else {
		t.Type = TypeIncome
		t.Counterparty = ""
		if wire.Client != nil {
			t.Counterparty = *wire.Client
		}
	}
	return nil
}
