package service

import (
	"testing"
	"time"

	"bank-ledger/internal/core/domain"
	"bank-ledger/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSystemClock_NowIsUTC(t *testing.T) {
	now := SystemClock{}.Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)
}

func TestLedger_StampsFromInjectedClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	opened := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	now := opened
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().DoAndReturn(func() time.Time { return now }).AnyTimes()

	l := NewLedgerService(testLedgerOptions(), clock, newTestLogger())
	openAccount(t, l, domain.AccountTypeChecking, checkingNo, "500")
	loan := originate(t, l, checkingNo, "1200", "0", 12)

	now = opened.Add(10 * 24 * time.Hour)
	_, err := l.ApplyLoanPayment(loan.ID, dec("100"))
	require.NoError(t, err)

	acct, err := l.FindAccount(checkingNo)
	require.NoError(t, err)
	assert.Equal(t, opened, acct.OpenedAt)
	assert.Equal(t, opened, loan.StartedAt)

	history, err := l.LoanPayments(loan.ID, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, now, history[0].PaidAt)
}
