package commands

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/teller-dev/teller/internal/model"
)

const timeFormat = "2006-01-02 15:04"

// money renders an amount with the configured currency symbol.
func (s *session) money(d decimal.Decimal) string {
	return s.cfg.Bank.Currency + d.StringFixed(2)
}

func (s *session) printSummary(sum model.Summary) {
	fmt.Fprintf(s.out, "Account Number: %s\n", sum.Number)
	fmt.Fprintf(s.out, "Account Holder: %s\n", sum.Holder)
	fmt.Fprintf(s.out, "Balance: %s\n", s.money(sum.Balance))

	switch sum.Kind {
	case model.KindSavings:
		fmt.Fprintf(s.out, "Interest Rate: %s%%\n", sum.InterestRate.StringFixed(2))
		fmt.Fprintln(s.out, "Account Type: Savings")
	case model.KindChecking:
		fmt.Fprintf(s.out, "Overdraft Limit: %s\n", s.money(sum.OverdraftLimit))
		fmt.Fprintln(s.out, "Account Type: Checking")
		if sum.Overdrawn {
			fmt.Fprintf(s.out, "Overdrawn by: %s\n", s.money(sum.OverdrawnBy))
		}
	}
}

func (s *session) printTransaction(txn model.Transaction) {
	fmt.Fprintf(s.out, "Date: %s\n", txn.Time.Format(timeFormat))
	fmt.Fprintf(s.out, "Type: %s\n", txn.Kind)
	fmt.Fprintf(s.out, "Amount: %s\n", s.money(txn.Amount))
	fmt.Fprintf(s.out, "From: %s\n", txn.From)
	if txn.To != "" {
		fmt.Fprintf(s.out, "To: %s\n", txn.To)
	}
}
