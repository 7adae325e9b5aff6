// Package ofx imports bank and credit card statements in OFX/QFX format.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/keystone-financial/ledger/internal/model"
)

// ImportOptions controls how statement entries map onto ledger transactions.
type ImportOptions struct {
	// IncomeCategory is assigned to every credited entry.
	IncomeCategory string
	// ExpenseCategory is assigned to every debited entry.
	ExpenseCategory string
}

// Importer parses OFX/QFX statements into ledger transactions.
type Importer struct {
	opts ImportOptions
}

// NewImporter creates an importer with the given options.
func NewImporter(opts ImportOptions) *Importer {
	if opts.IncomeCategory == "" {
		opts.IncomeCategory = "Client Payment"
	}
	if opts.ExpenseCategory == "" {
		opts.ExpenseCategory = "Office Supplies"
	}
	return &Importer{opts: opts}
}

// preprocess fixes common formatting issues in SGML-style OFX files.
func (i *Importer) preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	// Mixed-case SEVERITY values should be INFO, WARN, or ERROR
	severityRegex := regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	// Opening tags missing their closing angle bracket at end of line
	tagFixRegex := regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
	content = tagFixRegex.ReplaceAllString(content, "$1>")

	return content
}

// ParseFile parses an OFX/QFX statement and returns the ledger transactions it
// contains. Credits become income transactions and debits become expenses.
// Returned transactions carry no IDs; the ledger assigns them on save.
func (i *Importer) ParseFile(ctx context.Context, reader io.Reader) ([]model.Transaction, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(i.preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var transactions []model.Transaction
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			bankStmts++
			if stmt.BankTranList == nil {
				continue
			}
			for _, ofxTx := range stmt.BankTranList.Transactions {
				transactions = append(transactions, i.convert(ofxTx, false))
			}
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			ccStmts++
			if stmt.BankTranList == nil {
				continue
			}
			for _, ofxTx := range stmt.BankTranList.Transactions {
				transactions = append(transactions, i.convert(ofxTx, true))
			}
		}
	}

	slog.Info("Parsed OFX file",
		"total_transactions", len(transactions),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return transactions, nil
}

// convert maps a single OFX entry onto a ledger transaction. OFX uses signed
// amounts, negative for debits; the ledger stores magnitudes with the sign
// expressed as the transaction type.
func (i *Importer) convert(ofxTx ofxgo.Transaction, creditCard bool) model.Transaction {
	amount, _ := ofxTx.TrnAmt.Float64()

	txn := model.Transaction{
		Date:          model.DateOf(ofxTx.DtPosted.Time),
		Description:   i.extractDescription(ofxTx),
		Amount:        amount,
		Status:        model.StatusPaid,
		PaymentMethod: paymentMethod(ofxTx, creditCard),
	}

	if amount < 0 {
		txn.Amount = -amount
		txn.Type = model.TypeExpense
		txn.Category = i.opts.ExpenseCategory
	} else {
		txn.Type = model.TypeIncome
		txn.Category = i.opts.IncomeCategory
	}
	txn.Counterparty = counterparty(ofxTx, txn.Description)

	return txn
}

// paymentMethod infers the payment method from the statement type and the OFX
// transaction type.
func paymentMethod(ofxTx ofxgo.Transaction, creditCard bool) model.PaymentMethod {
	if creditCard {
		return model.MethodCreditCard
	}
	switch fmt.Sprintf("%v", ofxTx.TrnType) {
	case "CHECK":
		return model.MethodCheck
	case "ATM", "CASH":
		return model.MethodCash
	default:
		return model.MethodBankTransfer
	}
}

// counterparty prefers the structured PAYEE record over the free-form name.
func counterparty(ofxTx ofxgo.Transaction, fallback string) string {
	if ofxTx.Payee != nil && ofxTx.Payee.Name != "" {
		return string(ofxTx.Payee.Name)
	}
	return fallback
}

// extractDescription tries to get a clean description from OFX data.
func (i *Importer) extractDescription(tx ofxgo.Transaction) string {
	name := string(tx.Name)

	// Sometimes MEMO has better detail than a generic NAME
	if tx.Memo != "" && isGenericDescription(name) {
		name = string(tx.Memo)
	}

	name = strings.TrimSpace(name)

	// Remove common processor prefixes
	prefixes := []string{
		"POS PURCHASE ",
		"PURCHASE AUTHORIZED ON ",
		"DEBIT CARD PURCHASE ",
		"ACH DEBIT ",
		"CHECK CARD ",
		"VISA PURCHASE ",
		"MC PURCHASE ",
		"DEBIT PURCHASE ",
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(strings.ToUpper(name), prefix) {
			name = name[len(prefix):]
			break
		}
	}

	// Strip leading "MM/DD " date fragments left by some processors
	if len(name) > 5 && name[2] == '/' && name[5] == ' ' {
		name = strings.TrimSpace(name[6:])
	}

	return name
}

// isGenericDescription checks if a transaction name is too generic to keep.
func isGenericDescription(name string) bool {
	generic := []string{
		"DEBIT",
		"CREDIT",
		"PURCHASE",
		"PAYMENT",
		"POS TRANSACTION",
		"CARD PURCHASE",
	}

	upperName := strings.ToUpper(name)
	for _, g := range generic {
		if upperName == g {
			return true
		}
	}
	return false
}
