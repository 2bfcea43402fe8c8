package model

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// AccountKind classifies accounts by behavior variant.
type AccountKind string

const (
	KindPlain    AccountKind = "plain"
	KindSavings  AccountKind = "savings"
	KindChecking AccountKind = "checking"
)

var (
	// ErrHolderRequired is returned when an account is constructed with an
	// empty or blank holder name.
	ErrHolderRequired = errors.New("account holder name required")

	// ErrNegativeOverdraftLimit is returned when a checking account is
	// constructed with a negative overdraft limit.
	ErrNegativeOverdraftLimit = errors.New("overdraft limit must not be negative")
)

// Account is a single bank account. Number is assigned at creation and never
// changes. Only withdrawable capacity and summaries vary by Kind; deposits
// and transfers behave the same for every variant.
type Account struct {
	Number  string // 5-digit zero-padded, unique per allocator
	Holder  string
	Balance decimal.Decimal
	Kind    AccountKind

	InterestRate   decimal.Decimal // savings only, percent
	OverdraftLimit decimal.Decimal // checking only, never negative
}

// NewAccount creates a plain account with a zero balance.
func NewAccount(number, holder string) (*Account, error) {
	if strings.TrimSpace(holder) == "" {
		return nil, ErrHolderRequired
	}
	return &Account{Number: number, Holder: holder, Kind: KindPlain}, nil
}

// NewSavingsAccount creates a savings account with the given interest rate
// in percent. The rate is not validated; a negative rate lowers the balance
// when interest is applied.
func NewSavingsAccount(number, holder string, rate decimal.Decimal) (*Account, error) {
	a, err := NewAccount(number, holder)
	if err != nil {
		return nil, err
	}
	a.Kind = KindSavings
	a.InterestRate = rate
	return a, nil
}

// NewCheckingAccount creates a checking account with the given overdraft
// limit.
func NewCheckingAccount(number, holder string, limit decimal.Decimal) (*Account, error) {
	if limit.IsNegative() {
		return nil, ErrNegativeOverdraftLimit
	}
	a, err := NewAccount(number, holder)
	if err != nil {
		return nil, err
	}
	a.Kind = KindChecking
	a.OverdraftLimit = limit
	return a, nil
}

// WithdrawableCapacity returns the largest amount a withdrawal or transfer
// may remove without breaching the balance invariant: the balance itself,
// or balance plus the overdraft limit for checking accounts.
func (a *Account) WithdrawableCapacity() decimal.Decimal {
	if a.Kind == KindChecking {
		return a.Balance.Add(a.OverdraftLimit)
	}
	return a.Balance
}

// Overdrawn reports whether the balance is negative. Only checking accounts
// can reach this state.
func (a *Account) Overdrawn() bool {
	return a.Balance.IsNegative()
}

// Summary is a read-only snapshot of an account for rendering by a
// presentation layer. The core never prints.
type Summary struct {
	Number         string
	Holder         string
	Balance        decimal.Decimal
	Kind           AccountKind
	InterestRate   decimal.Decimal
	OverdraftLimit decimal.Decimal
	Overdrawn      bool
	OverdrawnBy    decimal.Decimal
}

// Summarize returns a snapshot of the account's current state.
func (a *Account) Summarize() Summary {
	s := Summary{
		Number:         a.Number,
		Holder:         a.Holder,
		Balance:        a.Balance,
		Kind:           a.Kind,
		InterestRate:   a.InterestRate,
		OverdraftLimit: a.OverdraftLimit,
	}
	if a.Overdrawn() {
		s.Overdrawn = true
		s.OverdrawnBy = a.Balance.Neg()
	}
	return s
}
