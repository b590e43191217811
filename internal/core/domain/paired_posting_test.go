package domain_test

import (
	"testing"
	"time"

	"github.com/bankcore/bankledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPairedPosting_Valid(t *testing.T) {
	p, err := domain.NewPairedPosting("owner-a", "owner-b", decimal.NewFromInt(100), "rent", "REF-1")
	require.NoError(t, err)
	assert.Equal(t, "owner-a", p.FromOwnerID)
	assert.Equal(t, "owner-b", p.ToOwnerID)
}

func TestNewPairedPosting_RejectsNonPositiveAmounts(t *testing.T) {
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10)} {
		_, err := domain.NewPairedPosting("owner-a", "owner-b", amount, "bad", "REF-2")
		assert.ErrorIs(t, err, domain.ErrNonPositiveAmount)
	}
}

func TestNewPairedPosting_RejectsSameOwner(t *testing.T) {
	_, err := domain.NewPairedPosting("owner-a", "owner-a", decimal.NewFromInt(10), "self", "REF-3")
	assert.ErrorIs(t, err, domain.ErrSameOwner)
}

func TestPairedPosting_Entries(t *testing.T) {
	amount := decimal.NewFromFloat(42.50)
	p, err := domain.NewPairedPosting("owner-a", "owner-b", amount, "lunch", "REF-4")
	require.NoError(t, err)

	now := time.Now().UTC()
	debit, credit := p.Entries("txn-1", now)

	assert.Equal(t, domain.Debit, debit.EntryType)
	assert.Equal(t, "owner-a", debit.OwnerID)
	assert.Equal(t, domain.Credit, credit.EntryType)
	assert.Equal(t, "owner-b", credit.OwnerID)

	// Both sides carry the same amount, transaction and economic direction.
	assert.True(t, debit.Amount.Equal(credit.Amount))
	assert.Equal(t, "txn-1", debit.TransactionID)
	assert.Equal(t, "txn-1", credit.TransactionID)
	assert.Equal(t, "owner-a", debit.SourceOwnerID)
	assert.Equal(t, "owner-b", debit.DestinationOwnerID)
	assert.Equal(t, debit.SourceOwnerID, credit.SourceOwnerID)
	assert.Equal(t, debit.DestinationOwnerID, credit.DestinationOwnerID)

	assert.Equal(t, "Debit: lunch", debit.Description)
	assert.Equal(t, "Credit: lunch", credit.Description)
	assert.Equal(t, domain.EntryPosted, debit.Status)
	assert.Equal(t, domain.EntryPosted, credit.Status)

	// The pair nets to zero from the owners' point of view.
	assert.True(t, debit.SignedAmount().Add(credit.SignedAmount()).IsZero())
}

func TestLedgerEntry_SignedAmount(t *testing.T) {
	amount := decimal.NewFromInt(10)
	debit := domain.LedgerEntry{EntryType: domain.Debit, Amount: amount}
	credit := domain.LedgerEntry{EntryType: domain.Credit, Amount: amount}

	assert.True(t, debit.SignedAmount().Equal(amount.Neg()))
	assert.True(t, credit.SignedAmount().Equal(amount))
}
