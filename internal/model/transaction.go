package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind identifies the operation a transaction records.
type TransactionKind string

const (
	TxDeposit  TransactionKind = "Deposit"
	TxWithdraw TransactionKind = "Withdraw"
	TxTransfer TransactionKind = "Transfer"
	TxInterest TransactionKind = "Interest"
)

// Transaction is an immutable audit record of one completed money movement.
// Records are appended by the ledger and never modified or deleted.
type Transaction struct {
	ID     uuid.UUID
	Time   time.Time
	Kind   TransactionKind
	Amount decimal.Decimal
	From   string // account initiating/affected
	To     string // destination, set only for transfers
}
