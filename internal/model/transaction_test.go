package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionMarshalFieldPresence(t *testing.T) {
	t.Run("income carries client, never vendor", func(t *testing.T) {
		txn := Transaction{
			ID:            "txn-1",
			Date:          NewDate(2024, time.January, 5),
			Amount:        500,
			Category:      "Sales",
			PaymentMethod: MethodBankTransfer,
			Status:        StatusPaid,
			Type:          TypeIncome,
			Counterparty:  "Acme",
		}

		data, err := json.Marshal(txn)
		require.NoError(t, err)

		var fields map[string]any
		require.NoError(t, json.Unmarshal(data, &fields))
		assert.Equal(t, "Acme", fields["client"])
		assert.NotContains(t, fields, "vendor")
	})

	t.Run("expense carries vendor, never client", func(t *testing.T) {
		txn := Transaction{
			ID:            "txn-2",
			Date:          NewDate(2024, time.January, 6),
			Amount:        120,
			Category:      "Software",
			PaymentMethod: MethodCreditCard,
			Status:        StatusPaid,
			Type:          TypeExpense,
			Counterparty:  "Cloud Co",
		}

		data, err := json.Marshal(txn)
		require.NoError(t, err)

		var fields map[string]any
		require.NoError(t, json.Unmarshal(data, &fields))
		assert.Equal(t, "Cloud Co", fields["vendor"])
		assert.NotContains(t, fields, "client")
	})

	t.Run("empty counterparty is still emitted", func(t *testing.T) {
		txn := Transaction{
			ID:   "txn-3",
			Date: NewDate(2024, time.January, 7),
			Type: TypeIncome,
		}

		data, err := json.Marshal(txn)
		require.NoError(t, err)

		var fields map[string]any
		require.NoError(t, json.Unmarshal(data, &fields))
		assert.Contains(t, fields, "client")
	})

	t.Run("untagged transaction fails to marshal", func(t *testing.T) {
		_, err := json.Marshal(Transaction{ID: "txn-4"})
		assert.Error(t, err)
	})
}

func TestTransactionUnmarshalRecoversTag(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantType  TransactionType
		wantParty string
	}{
		{
			name:      "vendor field means expense",
			input:     `{"id":"a","date":"2024-01-06","description":"","amount":120,"category":"Software","paymentMethod":"Credit Card","status":"Paid","vendor":"Cloud Co"}`,
			wantType:  TypeExpense,
			wantParty: "Cloud Co",
		},
		{
			name:      "client field means income",
			input:     `{"id":"b","date":"2024-01-05","description":"","amount":500,"category":"Sales","paymentMethod":"Bank Transfer","status":"Paid","client":"Acme"}`,
			wantType:  TypeIncome,
			wantParty: "Acme",
		},
		{
			name:      "neither field defaults to income",
			input:     `{"id":"c","date":"2024-01-07","description":"","amount":10,"category":"","paymentMethod":"Cash","status":"Pending"}`,
			wantType:  TypeIncome,
			wantParty: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var txn Transaction
			require.NoError(t, json.Unmarshal([]byte(tt.input), &txn))
			assert.Equal(t, tt.wantType, txn.Type)
			assert.Equal(t, tt.wantParty, txn.Counterparty)
		})
	}
}

func TestTransactionJSONRoundTrip(t *testing.T) {
	original := Transaction{
		ID:            "txn-9",
		Date:          NewDate(2024, time.March, 15),
		Description:   "monthly retainer",
		Amount:        1250.75,
		Category:      "Client Payment",
		PaymentMethod: MethodCheck,
		Status:        StatusPending,
		Type:          TypeIncome,
		Counterparty:  "Northwind",
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Transaction
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestDefaultCategories(t *testing.T) {
	income := DefaultCategories(TypeIncome)
	expense := DefaultCategories(TypeExpense)

	assert.Len(t, income, 3)
	assert.Len(t, expense, 4)

	// Returned slices are copies; mutating one must not leak into the next.
	income[0].Name = "mutated"
	assert.Equal(t, "Client Payment", DefaultCategories(TypeIncome)[0].Name)
}
