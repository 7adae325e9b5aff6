package ofx

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aclindsa/ofxgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keystone-financial/ledger/internal/model"
)

// Sample OFX data for testing.
const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240112120000[0:GMT]
<TRNAMT>1500.00
<FITID>2024011201
<NAME>ACME CONSULTING INVOICE 42
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-25.50
<FITID>2024011501
<NAME>POS PURCHASE OFFICE DEPOT
</STMTTRN>
<STMTTRN>
<TRNTYPE>CHECK
<DTPOSTED>20240125120000[0:GMT]
<TRNAMT>-500.00
<FITID>2024012501
<CHECKNUM>1234
<NAME>ACE PRINTING SERVICES
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

const sampleCreditCardOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<CREDITCARDMSGSRSV1>
<CCSTMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<CCSTMTRS>
<CURDEF>USD
<CCACCTFROM>
<ACCTID>4111111111111111
</CCACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240110120000[0:GMT]
<TRNAMT>-45.99
<FITID>CC2024011001
<NAME>ADOBE CREATIVE CLOUD
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-15.00
<FITID>CC2024011501
<NAME>MAILCHIMP
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>-500.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</CCSTMTRS>
</CCSTMTTRNRS>
</CREDITCARDMSGSRSV1>
</OFX>`

func TestParseFile(t *testing.T) {
	tests := []struct {
		name          string
		ofxData       string
		expectedCount int
		expectedError bool
	}{
		{
			name:          "valid bank statement",
			ofxData:       sampleBankOFX,
			expectedCount: 3,
			expectedError: false,
		},
		{
			name:          "valid credit card statement",
			ofxData:       sampleCreditCardOFX,
			expectedCount: 2,
			expectedError: false,
		},
		{
			name:          "invalid OFX data",
			ofxData:       "not valid OFX",
			expectedCount: 0,
			expectedError: true,
		},
		{
			name:          "empty OFX",
			ofxData:       "",
			expectedCount: 0,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			importer := NewImporter(ImportOptions{})
			reader := strings.NewReader(tt.ofxData)

			transactions, err := importer.ParseFile(context.Background(), reader)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Len(t, transactions, tt.expectedCount)
			}
		})
	}
}

func TestImportBankStatement(t *testing.T) {
	importer := NewImporter(ImportOptions{
		IncomeCategory:  "Client Payment",
		ExpenseCategory: "Office Supplies",
	})
	reader := strings.NewReader(sampleBankOFX)

	transactions, err := importer.ParseFile(context.Background(), reader)
	require.NoError(t, err)
	require.Len(t, transactions, 3)

	// Credited entry becomes income
	tx1 := transactions[0]
	assert.Empty(t, tx1.ID)
	assert.Equal(t, model.TypeIncome, tx1.Type)
	assert.Equal(t, "ACME CONSULTING INVOICE 42", tx1.Description)
	assert.Equal(t, "ACME CONSULTING INVOICE 42", tx1.Counterparty)
	assert.Equal(t, 1500.00, tx1.Amount)
	assert.Equal(t, "Client Payment", tx1.Category)
	assert.Equal(t, model.MethodBankTransfer, tx1.PaymentMethod)
	assert.Equal(t, model.StatusPaid, tx1.Status)
	assert.Equal(t, model.NewDate(2024, time.January, 12), tx1.Date)

	// Debited entry becomes an expense with its magnitude
	tx2 := transactions[1]
	assert.Equal(t, model.TypeExpense, tx2.Type)
	assert.Equal(t, "OFFICE DEPOT", tx2.Description)
	assert.Equal(t, 25.50, tx2.Amount)
	assert.Equal(t, "Office Supplies", tx2.Category)
	assert.Equal(t, model.MethodBankTransfer, tx2.PaymentMethod)

	// CHECK entries map onto the check payment method
	tx3 := transactions[2]
	assert.Equal(t, model.TypeExpense, tx3.Type)
	assert.Equal(t, 500.00, tx3.Amount)
	assert.Equal(t, model.MethodCheck, tx3.PaymentMethod)
}

func TestImportCreditCardStatement(t *testing.T) {
	importer := NewImporter(ImportOptions{ExpenseCategory: "Software"})
	reader := strings.NewReader(sampleCreditCardOFX)

	transactions, err := importer.ParseFile(context.Background(), reader)
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	tx1 := transactions[0]
	assert.Equal(t, model.TypeExpense, tx1.Type)
	assert.Equal(t, "ADOBE CREATIVE CLOUD", tx1.Description)
	assert.Equal(t, 45.99, tx1.Amount)
	assert.Equal(t, "Software", tx1.Category)
	assert.Equal(t, model.MethodCreditCard, tx1.PaymentMethod)

	tx2 := transactions[1]
	assert.Equal(t, "MAILCHIMP", tx2.Description)
	assert.Equal(t, 15.00, tx2.Amount)
}

func TestExtractDescription(t *testing.T) {
	importer := NewImporter(ImportOptions{})

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "remove POS prefix",
			input:    "POS PURCHASE OFFICE DEPOT",
			expected: "OFFICE DEPOT",
		},
		{
			name:     "remove DEBIT CARD prefix",
			input:    "DEBIT CARD PURCHASE STAPLES",
			expected: "STAPLES",
		},
		{
			name:     "keep clean name",
			input:    "MAILCHIMP",
			expected: "MAILCHIMP",
		},
		{
			name:     "trim whitespace",
			input:    "  ADOBE.COM  ",
			expected: "ADOBE.COM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := ofxgo.Transaction{
				Name: ofxgo.String(tt.input),
			}
			result := importer.extractDescription(tx)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDefaultImportCategories(t *testing.T) {
	importer := NewImporter(ImportOptions{})
	assert.Equal(t, "Client Payment", importer.opts.IncomeCategory)
	assert.Equal(t, "Office Supplies", importer.opts.ExpenseCategory)
}
