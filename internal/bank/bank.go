// Package bank implements the ledger: the registry owning all accounts and
// the append-only transaction log. Every operation that moves money goes
// through the Ledger, which is the only component that records transactions.
//
// A single mutex serializes all operations. A transfer's debit, credit and
// record happen inside one critical section, so concurrent callers can
// never observe a partially applied transfer.
package bank

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/teller-dev/teller/internal/acctnum"
	"github.com/teller-dev/teller/internal/model"
)

// Ledger owns the account collection (creation order preserved) and the
// transaction log (recording order, effectively chronological).
type Ledger struct {
	mu    sync.Mutex
	alloc *acctnum.Allocator
	log   zerolog.Logger

	accounts []*model.Account
	byNumber map[string]*model.Account
	txns     []model.Transaction
}

// New creates an empty Ledger using the given account number allocator.
func New(alloc *acctnum.Allocator, log zerolog.Logger) *Ledger {
	return &Ledger{
		alloc:    alloc,
		log:      log,
		byNumber: make(map[string]*model.Account),
	}
}

// OpResult reports the outcome of a successful ledger operation. Operations
// never print; rendering is the caller's job.
type OpResult struct {
	Transaction model.Transaction

	// Balance is the affected (or source) account balance after the
	// operation.
	Balance decimal.Decimal

	// DestBalance is the destination balance after a transfer.
	DestBalance decimal.Decimal

	// Interest is the computed interest amount for ApplyInterest.
	Interest decimal.Decimal

	// Overdrawn is set when a checking withdrawal or transfer left the
	// source balance negative. Informational only; the operation succeeded.
	Overdrawn   bool
	OverdrawnBy decimal.Decimal
}

// CreateAccount allocates an account number, constructs an account of the
// given kind and registers it. The param is the interest rate for savings
// accounts or the overdraft limit for checking accounts, and is ignored for
// plain accounts. Returns a copy of the new account.
func (l *Ledger) CreateAccount(holder string, kind model.AccountKind, param decimal.Decimal) (*model.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// The number is allocated before holder validation and is never
	// released, so a failed construction still consumes it.
	number, err := l.alloc.Allocate()
	if err != nil {
		return nil, fmt.Errorf("allocating account number: %w", err)
	}

	var a *model.Account
	switch kind {
	case model.KindSavings:
		a, err = model.NewSavingsAccount(number, holder, param)
	case model.KindChecking:
		a, err = model.NewCheckingAccount(number, holder, param)
	default:
		a, err = model.NewAccount(number, holder)
	}
	if err != nil {
		return nil, err
	}

	l.accounts = append(l.accounts, a)
	l.byNumber[a.Number] = a
	l.log.Info().Str("account", a.Number).Str("kind", string(a.Kind)).Msg("account created")

	cp := *a
	return &cp, nil
}

// FindAccount returns a copy of the account with the given number. Absence
// is a normal outcome, reported by the bool.
func (l *Ledger) FindAccount(number string) (*model.Account, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := l.byNumber[number]
	if !ok {
		return nil, false
	}
	cp := *a
	return &cp, true
}

// Deposit adds amount to the account's balance and records a Deposit
// transaction. The amount must be positive.
func (l *Ledger) Deposit(number string, amount decimal.Decimal) (OpResult, error) {
	if !amount.IsPositive() {
		return OpResult{}, ErrAmountNotPositive
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.byNumber[number]
	if !ok {
		return OpResult{}, ErrAccountNotFound
	}

	a.Balance = a.Balance.Add(amount)
	txn := l.record(model.TxDeposit, amount, number, "")
	return OpResult{Transaction: txn, Balance: a.Balance}, nil
}

// Withdraw removes amount from the account's balance and records a Withdraw
// transaction. The capacity test varies by account kind: plain and savings
// accounts cannot go below zero, checking accounts may go down to the
// negated overdraft limit. A checking withdrawal that ends negative
// succeeds and flags the result as overdrawn.
func (l *Ledger) Withdraw(number string, amount decimal.Decimal) (OpResult, error) {
	if !amount.IsPositive() {
		return OpResult{}, ErrAmountNotPositive
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.byNumber[number]
	if !ok {
		return OpResult{}, ErrAccountNotFound
	}
	if amount.GreaterThan(a.WithdrawableCapacity()) {
		return OpResult{}, ErrInsufficientFunds
	}

	a.Balance = a.Balance.Sub(amount)
	txn := l.record(model.TxWithdraw, amount, number, "")

	res := OpResult{Transaction: txn, Balance: a.Balance}
	if a.Overdrawn() {
		res.Overdrawn = true
		res.OverdrawnBy = a.Balance.Neg()
	}
	return res, nil
}

// Transfer moves amount from one account to another atomically: either both
// balances change and exactly one Transfer transaction is recorded, or
// nothing changes. The source is validated with the same capacity test as
// Withdraw, so a checking source may transfer into overdraft.
func (l *Ledger) Transfer(from, to string, amount decimal.Decimal) (OpResult, error) {
	if !amount.IsPositive() {
		return OpResult{}, ErrAmountNotPositive
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	src, ok := l.byNumber[from]
	if !ok {
		return OpResult{}, ErrAccountNotFound
	}
	dst, ok := l.byNumber[to]
	if !ok {
		return OpResult{}, ErrAccountNotFound
	}
	if amount.GreaterThan(src.WithdrawableCapacity()) {
		return OpResult{}, ErrInsufficientFunds
	}

	src.Balance = src.Balance.Sub(amount)
	dst.Balance = dst.Balance.Add(amount)
	txn := l.record(model.TxTransfer, amount, from, to)

	res := OpResult{Transaction: txn, Balance: src.Balance, DestBalance: dst.Balance}
	if src.Overdrawn() {
		res.Overdrawn = true
		res.OverdrawnBy = src.Balance.Neg()
	}
	return res, nil
}

// ApplyInterest computes balance × rate / 100 for a savings account, adds
// it to the balance and records an Interest transaction of the computed
// amount. A negative rate lowers the balance; the formula is applied as-is.
func (l *Ledger) ApplyInterest(number string) (OpResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.byNumber[number]
	if !ok {
		return OpResult{}, ErrAccountNotFound
	}
	if a.Kind != model.KindSavings {
		return OpResult{}, ErrNotSavings
	}

	interest := a.Balance.Mul(a.InterestRate).Div(decimal.NewFromInt(100))
	a.Balance = a.Balance.Add(interest)
	txn := l.record(model.TxInterest, interest, number, "")

	return OpResult{Transaction: txn, Balance: a.Balance, Interest: interest}, nil
}

// Accounts returns account summaries in creation order.
func (l *Ledger) Accounts() []model.Summary {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.Summary, 0, len(l.accounts))
	for _, a := range l.accounts {
		out = append(out, a.Summarize())
	}
	return out
}

// Transactions returns a copy of the transaction log in recording order.
func (l *Ledger) Transactions() []model.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.Transaction, len(l.txns))
	copy(out, l.txns)
	return out
}

// record appends a transaction stamped with the current time. It is the
// single choke point through which every balance-affecting operation
// becomes auditable. Callers must hold l.mu.
func (l *Ledger) record(kind model.TransactionKind, amount decimal.Decimal, from, to string) model.Transaction {
	txn := model.Transaction{
		ID:     uuid.New(),
		Time:   time.Now(),
		Kind:   kind,
		Amount: amount,
		From:   from,
		To:     to,
	}
	l.txns = append(l.txns, txn)

	ev := l.log.Debug().
		Str("kind", string(kind)).
		Str("amount", amount.String()).
		Str("from", from)
	if to != "" {
		ev = ev.Str("to", to)
	}
	ev.Msg("transaction recorded")

	return txn
}
