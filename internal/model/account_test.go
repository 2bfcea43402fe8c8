package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestNewAccount(t *testing.T) {
	a, err := NewAccount("00042", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "00042", a.Number)
	assert.Equal(t, "Alice", a.Holder)
	assert.Equal(t, KindPlain, a.Kind)
	assert.True(t, a.Balance.IsZero())
}

func TestNewAccount_HolderRequired(t *testing.T) {
	for _, holder := range []string{"", "   ", "\t"} {
		_, err := NewAccount("00042", holder)
		assert.ErrorIs(t, err, ErrHolderRequired, "holder: %q", holder)
	}
}

func TestNewSavingsAccount(t *testing.T) {
	a, err := NewSavingsAccount("00001", "Cara", dec("10"))
	require.NoError(t, err)
	assert.Equal(t, KindSavings, a.Kind)
	assert.True(t, a.InterestRate.Equal(dec("10")))

	// A negative rate is accepted; the formula applies it as-is.
	a, err = NewSavingsAccount("00002", "Cara", dec("-5"))
	require.NoError(t, err)
	assert.True(t, a.InterestRate.IsNegative())

	_, err = NewSavingsAccount("00003", "", dec("10"))
	assert.ErrorIs(t, err, ErrHolderRequired)
}

func TestNewCheckingAccount(t *testing.T) {
	a, err := NewCheckingAccount("00001", "Bob", dec("50"))
	require.NoError(t, err)
	assert.Equal(t, KindChecking, a.Kind)
	assert.True(t, a.OverdraftLimit.Equal(dec("50")))

	_, err = NewCheckingAccount("00002", "Bob", dec("-1"))
	assert.ErrorIs(t, err, ErrNegativeOverdraftLimit)
}

func TestWithdrawableCapacity(t *testing.T) {
	tests := []struct {
		name    string
		account Account
		want    string
	}{
		{"plain", Account{Kind: KindPlain, Balance: dec("100")}, "100"},
		{"savings", Account{Kind: KindSavings, Balance: dec("100")}, "100"},
		{"checking", Account{Kind: KindChecking, Balance: dec("100"), OverdraftLimit: dec("50")}, "150"},
		{"checking overdrawn", Account{Kind: KindChecking, Balance: dec("-30"), OverdraftLimit: dec("50")}, "20"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.account.WithdrawableCapacity().Equal(dec(tt.want)),
				"got %s", tt.account.WithdrawableCapacity())
		})
	}
}

func TestSummarize(t *testing.T) {
	a, err := NewCheckingAccount("00007", "Bob", dec("50"))
	require.NoError(t, err)
	a.Balance = dec("-30")

	sum := a.Summarize()
	assert.Equal(t, "00007", sum.Number)
	assert.Equal(t, KindChecking, sum.Kind)
	assert.True(t, sum.Overdrawn)
	assert.True(t, sum.OverdrawnBy.Equal(dec("30")))

	a.Balance = dec("5")
	sum = a.Summarize()
	assert.False(t, sum.Overdrawn)
	assert.True(t, sum.OverdrawnBy.IsZero())
}
