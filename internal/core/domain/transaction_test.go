package domain_test

import (
	"testing"

	"github.com/bankcore/bankledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_CanTransitionTo(t *testing.T) {
	cases := []struct {
		name    string
		from    domain.TransactionStatus
		to      domain.TransactionStatus
		allowed bool
	}{
		{"pending to completed", domain.TxnPending, domain.TxnCompleted, true},
		{"pending to blocked", domain.TxnPending, domain.TxnBlocked, true},
		{"pending to failed", domain.TxnPending, domain.TxnFailed, true},
		{"blocked to completed", domain.TxnBlocked, domain.TxnCompleted, true},
		{"blocked to failed", domain.TxnBlocked, domain.TxnFailed, true},
		{"blocked to pending", domain.TxnBlocked, domain.TxnPending, false},
		{"completed is terminal", domain.TxnCompleted, domain.TxnFailed, false},
		{"completed cannot reopen", domain.TxnCompleted, domain.TxnPending, false},
		{"failed is terminal", domain.TxnFailed, domain.TxnCompleted, false},
		{"failed cannot block", domain.TxnFailed, domain.TxnBlocked, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			txn := domain.Transaction{Status: tc.from}
			assert.Equal(t, tc.allowed, txn.CanTransitionTo(tc.to))
		})
	}
}

func TestTransaction_IsTerminal(t *testing.T) {
	assert.True(t, domain.Transaction{Status: domain.TxnCompleted}.IsTerminal())
	assert.True(t, domain.Transaction{Status: domain.TxnFailed}.IsTerminal())
	assert.False(t, domain.Transaction{Status: domain.TxnPending}.IsTerminal())
	assert.False(t, domain.Transaction{Status: domain.TxnBlocked}.IsTerminal())
}

func TestValidTransactionTypes_ClosedSet(t *testing.T) {
	for _, known := range []domain.TransactionType{
		domain.Deposit, domain.Withdrawal, domain.Transfer, domain.FundTransfer,
		domain.AdminFund, domain.BulkFund, domain.Interest, domain.Fee, domain.Reversal,
	} {
		_, ok := domain.ValidTransactionTypes[known]
		assert.True(t, ok, "type %s should be recognized", known)
	}

	_, ok := domain.ValidTransactionTypes["gift"]
	assert.False(t, ok)
}

func TestOwner_IsSystem(t *testing.T) {
	assert.True(t, domain.Owner{OwnerID: domain.SystemOwnerID}.IsSystem())
	assert.False(t, domain.Owner{OwnerID: "owner-a"}.IsSystem())
}
