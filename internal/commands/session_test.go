package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teller-dev/teller/internal/acctnum"
	"github.com/teller-dev/teller/internal/bank"
	"github.com/teller-dev/teller/internal/config"
	"github.com/teller-dev/teller/internal/model"
)

func runScript(t *testing.T, ledger *bank.Ledger, script string) string {
	t.Helper()
	var out bytes.Buffer
	sess := newSession(ledger, config.Default(), strings.NewReader(script), &out)
	require.NoError(t, sess.run())
	return out.String()
}

func newScriptLedger() *bank.Ledger {
	return bank.New(acctnum.New(1), zerolog.Nop())
}

func TestSession_CreateAndExit(t *testing.T) {
	script := "1\nAlice\n1\n9\n"
	out := runScript(t, newScriptLedger(), script)

	assert.Contains(t, out, "created successfully!")
	assert.Contains(t, out, "Goodbye!")
}

func TestSession_DepositAndSummary(t *testing.T) {
	ledger := newScriptLedger()
	alice, err := ledger.CreateAccount("Alice", model.KindPlain, decimal.Zero)
	require.NoError(t, err)

	script := "2\n" + alice.Number + "\n100\n5\n" + alice.Number + "\n9\n"
	out := runScript(t, ledger, script)

	assert.Contains(t, out, "Deposited $100.00. New balance: $100.00")
	assert.Contains(t, out, "Account Holder: Alice")
	assert.Contains(t, out, "Balance: $100.00")
}

func TestSession_CheckingOverdraftWarning(t *testing.T) {
	ledger := newScriptLedger()
	bob, err := ledger.CreateAccount("Bob", model.KindChecking, dec("50"))
	require.NoError(t, err)

	script := "3\n" + bob.Number + "\n30\n9\n"
	out := runScript(t, ledger, script)

	assert.Contains(t, out, "Withdrawn $30.00. New balance: $-30.00")
	assert.Contains(t, out, "Warning: Account is overdrawn by $30.00")
}

func TestSession_TransferAndHistory(t *testing.T) {
	ledger := newScriptLedger()
	alice, err := ledger.CreateAccount("Alice", model.KindPlain, decimal.Zero)
	require.NoError(t, err)
	bob, err := ledger.CreateAccount("Bob", model.KindPlain, decimal.Zero)
	require.NoError(t, err)
	_, err = ledger.Deposit(alice.Number, dec("100"))
	require.NoError(t, err)

	script := "4\n" + alice.Number + "\n" + bob.Number + "\n20\n7\n9\n"
	out := runScript(t, ledger, script)

	assert.Contains(t, out, "Transferred $20.00 to account "+bob.Number)
	assert.Contains(t, out, "--- Transaction History ---")
	assert.Contains(t, out, "Type: Transfer")
	assert.Contains(t, out, "From: "+alice.Number)
	assert.Contains(t, out, "To: "+bob.Number)
}

func TestSession_Rejections(t *testing.T) {
	ledger := newScriptLedger()
	alice, err := ledger.CreateAccount("Alice", model.KindPlain, decimal.Zero)
	require.NoError(t, err)

	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"unknown account", "2\n99999\n10\n9\n", "Account not found."},
		{"malformed amount", "2\n" + alice.Number + "\nabc\n9\n", "Invalid amount."},
		{"non-positive amount", "2\n" + alice.Number + "\n-5\n9\n", "Amount must be positive."},
		{"insufficient funds", "3\n" + alice.Number + "\n10\n9\n", "Insufficient funds."},
		{"interest on plain", "8\n" + alice.Number + "\n9\n", "Account not found or not a savings account."},
		{"empty holder", "1\n   \n1\n9\n", "Account name required."},
		{"invalid option", "0\n9\n", "Invalid option."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runScript(t, ledger, tt.script)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestSession_EmptyListings(t *testing.T) {
	out := runScript(t, newScriptLedger(), "6\n7\n9\n")
	assert.Contains(t, out, "No accounts found.")
	assert.Contains(t, out, "No transactions found.")
}

func TestSession_InvalidRateFallsBackToPlain(t *testing.T) {
	ledger := newScriptLedger()
	out := runScript(t, ledger, "1\nCara\n2\nnot-a-rate\n9\n")
	assert.Contains(t, out, "Invalid interest rate. Creating regular account.")

	sums := ledger.Accounts()
	require.Len(t, sums, 1)
	assert.Equal(t, model.KindPlain, sums[0].Kind)
}

func TestSession_BlankRateUsesConfiguredDefault(t *testing.T) {
	ledger := newScriptLedger()
	out := runScript(t, ledger, "1\nCara\n2\n\n9\n")
	assert.Contains(t, out, "created successfully!")

	sums := ledger.Accounts()
	require.Len(t, sums, 1)
	assert.Equal(t, model.KindSavings, sums[0].Kind)
	assert.True(t, sums[0].InterestRate.Equal(dec("2.5")))
}

func TestSession_ApplyInterest(t *testing.T) {
	ledger := newScriptLedger()
	cara, err := ledger.CreateAccount("Cara", model.KindSavings, dec("10"))
	require.NoError(t, err)
	_, err = ledger.Deposit(cara.Number, dec("200"))
	require.NoError(t, err)

	out := runScript(t, ledger, "8\n"+cara.Number+"\n9\n")
	assert.Contains(t, out, "Interest applied: $20.00. New balance: $220.00")
}

func TestSession_EOFEndsSession(t *testing.T) {
	out := runScript(t, newScriptLedger(), "")
	assert.Contains(t, out, "Choose an option: ")
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
