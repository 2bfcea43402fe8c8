package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/teller-dev/teller/internal/bank"
	"github.com/teller-dev/teller/internal/config"
	"github.com/teller-dev/teller/internal/model"
)

// session is the interactive menu loop: it parses text input, calls into
// the ledger and renders the structured results. All business rules live in
// the core; the session only translates between text and core calls.
type session struct {
	ledger *bank.Ledger
	cfg    *config.Config
	in     *bufio.Scanner
	out    io.Writer
}

func newSession(ledger *bank.Ledger, cfg *config.Config, in io.Reader, out io.Writer) *session {
	return &session{
		ledger: ledger,
		cfg:    cfg,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// run loops over the menu until the user exits or input ends.
func (s *session) run() error {
	for {
		s.printMenu()
		choice, ok := s.readLine("Choose an option: ")
		if !ok {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			s.createAccount()
		case "2":
			s.deposit()
		case "3":
			s.withdraw()
		case "4":
			s.transfer()
		case "5":
			s.viewSummary()
		case "6":
			s.viewAllAccounts()
		case "7":
			s.viewHistory()
		case "8":
			s.applyInterest()
		case "9":
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid option.")
		}
	}
}

func (s *session) printMenu() {
	fmt.Fprintf(s.out, "\n--- %s Menu ---\n", s.cfg.Bank.Name)
	fmt.Fprintln(s.out, "1. Create Account")
	fmt.Fprintln(s.out, "2. Deposit")
	fmt.Fprintln(s.out, "3. Withdraw")
	fmt.Fprintln(s.out, "4. Transfer Money")
	fmt.Fprintln(s.out, "5. View Account Summary")
	fmt.Fprintln(s.out, "6. View All Accounts")
	fmt.Fprintln(s.out, "7. View Transaction History")
	fmt.Fprintln(s.out, "8. Apply Interest (Savings)")
	fmt.Fprintln(s.out, "9. Exit")
}

func (s *session) createAccount() {
	holder, ok := s.readLine("Enter account holder name: ")
	if !ok {
		return
	}

	fmt.Fprintln(s.out, "Select account type:")
	fmt.Fprintln(s.out, "1. Regular Account")
	fmt.Fprintln(s.out, "2. Savings Account")
	fmt.Fprintln(s.out, "3. Checking Account")
	choice, ok := s.readLine("Choose account type: ")
	if !ok {
		return
	}

	kind := model.KindPlain
	param := decimal.Zero

	switch strings.TrimSpace(choice) {
	case "1":
	case "2":
		rate, ok := s.readAmount("Enter interest rate (%): ", s.cfg.Defaults.SavingsRate)
		if !ok {
			fmt.Fprintln(s.out, "Invalid interest rate. Creating regular account.")
			break
		}
		kind = model.KindSavings
		param = rate
	case "3":
		limit, ok := s.readAmount("Enter overdraft limit: ", s.cfg.Defaults.OverdraftLimit)
		if !ok {
			fmt.Fprintln(s.out, "Invalid overdraft limit. Creating regular account.")
			break
		}
		kind = model.KindChecking
		param = limit
	default:
		fmt.Fprintln(s.out, "Invalid choice. Creating regular account.")
	}

	a, err := s.ledger.CreateAccount(holder, kind, param)
	if err != nil {
		fmt.Fprintln(s.out, reason(err))
		return
	}
	fmt.Fprintf(s.out, "Account %s created successfully!\n", a.Number)
}

func (s *session) deposit() {
	number, ok := s.readLine("Enter account number: ")
	if !ok {
		return
	}
	amount, ok := s.readAmount("Enter amount to deposit: ", 0)
	if !ok {
		fmt.Fprintln(s.out, "Invalid amount.")
		return
	}

	res, err := s.ledger.Deposit(strings.TrimSpace(number), amount)
	if err != nil {
		fmt.Fprintln(s.out, reason(err))
		return
	}
	fmt.Fprintf(s.out, "Deposited %s. New balance: %s\n", s.money(amount), s.money(res.Balance))
}

func (s *session) withdraw() {
	number, ok := s.readLine("Enter account number: ")
	if !ok {
		return
	}
	amount, ok := s.readAmount("Enter amount to withdraw: ", 0)
	if !ok {
		fmt.Fprintln(s.out, "Invalid amount.")
		return
	}

	res, err := s.ledger.Withdraw(strings.TrimSpace(number), amount)
	if err != nil {
		fmt.Fprintln(s.out, reason(err))
		return
	}
	fmt.Fprintf(s.out, "Withdrawn %s. New balance: %s\n", s.money(amount), s.money(res.Balance))
	if res.Overdrawn {
		fmt.Fprintf(s.out, "Warning: Account is overdrawn by %s\n", s.money(res.OverdrawnBy))
	}
}

func (s *session) transfer() {
	from, ok := s.readLine("Enter source account number: ")
	if !ok {
		return
	}
	to, ok := s.readLine("Enter destination account number: ")
	if !ok {
		return
	}
	amount, ok := s.readAmount("Enter amount to transfer: ", 0)
	if !ok {
		fmt.Fprintln(s.out, "Invalid amount.")
		return
	}

	res, err := s.ledger.Transfer(strings.TrimSpace(from), strings.TrimSpace(to), amount)
	if err != nil {
		fmt.Fprintln(s.out, reason(err))
		return
	}
	fmt.Fprintf(s.out, "Transferred %s to account %s\n", s.money(amount), res.Transaction.To)
	if res.Overdrawn {
		fmt.Fprintf(s.out, "Warning: Account is overdrawn by %s\n", s.money(res.OverdrawnBy))
	}
}

func (s *session) viewSummary() {
	number, ok := s.readLine("Enter account number: ")
	if !ok {
		return
	}
	a, found := s.ledger.FindAccount(strings.TrimSpace(number))
	if !found {
		fmt.Fprintln(s.out, "Account not found.")
		return
	}
	s.printSummary(a.Summarize())
}

func (s *session) viewAllAccounts() {
	sums := s.ledger.Accounts()
	if len(sums) == 0 {
		fmt.Fprintln(s.out, "No accounts found.")
		return
	}
	fmt.Fprintln(s.out, "\n--- All Accounts ---")
	for _, sum := range sums {
		s.printSummary(sum)
		fmt.Fprintln(s.out, "---")
	}
}

func (s *session) viewHistory() {
	txns := s.ledger.Transactions()
	if len(txns) == 0 {
		fmt.Fprintln(s.out, "No transactions found.")
		return
	}
	fmt.Fprintln(s.out, "\n--- Transaction History ---")
	for _, txn := range txns {
		s.printTransaction(txn)
		fmt.Fprintln(s.out, "---")
	}
}

func (s *session) applyInterest() {
	number, ok := s.readLine("Enter savings account number: ")
	if !ok {
		return
	}
	res, err := s.ledger.ApplyInterest(strings.TrimSpace(number))
	if err != nil {
		fmt.Fprintln(s.out, reason(err))
		return
	}
	fmt.Fprintf(s.out, "Interest applied: %s. New balance: %s\n", s.money(res.Interest), s.money(res.Balance))
}

// readLine prompts and reads one line. The bool is false when input ends.
func (s *session) readLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// readAmount prompts for a decimal value. A blank line falls back to the
// configured default when one is set; an unparsable value reports failure.
func (s *session) readAmount(prompt string, fallback float64) (decimal.Decimal, bool) {
	line, ok := s.readLine(prompt)
	if !ok {
		return decimal.Zero, false
	}
	line = strings.TrimSpace(line)
	if line == "" && fallback != 0 {
		return decimal.NewFromFloat(fallback), true
	}
	d, err := decimal.NewFromString(line)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// reason maps core errors to the messages shown at the prompt.
func reason(err error) string {
	switch {
	case errors.Is(err, bank.ErrAccountNotFound):
		return "Account not found."
	case errors.Is(err, bank.ErrAmountNotPositive):
		return "Amount must be positive."
	case errors.Is(err, bank.ErrInsufficientFunds):
		return "Insufficient funds."
	case errors.Is(err, bank.ErrNotSavings):
		return "Account not found or not a savings account."
	case errors.Is(err, model.ErrHolderRequired):
		return "Account name required."
	case errors.Is(err, model.ErrNegativeOverdraftLimit):
		return "Overdraft limit must not be negative."
	default:
		return err.Error()
	}
}
