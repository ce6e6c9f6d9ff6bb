package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionBorrow(t *testing.T) {
	allowed := map[[2]string]bool{
		{BorrowStatusPendingBorrow, BorrowStatusBorrowed}: true,
		{BorrowStatusPendingBorrow, BorrowStatusRejected}: true,
		{BorrowStatusBorrowed, BorrowStatusPendingReturn}: true,
		{BorrowStatusPendingReturn, BorrowStatusReturned}: true,
		{BorrowStatusPendingReturn, BorrowStatusRejected}: true,
	}

	statuses := []string{
		BorrowStatusPendingBorrow,
		BorrowStatusBorrowed,
		BorrowStatusPendingReturn,
		BorrowStatusReturned,
		BorrowStatusRejected,
	}

	// Every pair not in the whitelist must be refused, including
	// self-transitions and moves out of a terminal status.
	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[[2]string{from, to}]
			assert.Equalf(t, want, CanTransitionBorrow(from, to), "%s -> %s", from, to)
		}
	}
}

func TestCanTransitionBorrow_UnknownStatus(t *testing.T) {
	assert.False(t, CanTransitionBorrow("bogus", BorrowStatusBorrowed))
	assert.False(t, CanTransitionBorrow(BorrowStatusPendingBorrow, "bogus"))
	assert.False(t, CanTransitionBorrow("", ""))
}

func TestIsFinalBorrowStatus(t *testing.T) {
	assert.True(t, IsFinalBorrowStatus(BorrowStatusReturned))
	assert.True(t, IsFinalBorrowStatus(BorrowStatusRejected))
	assert.False(t, IsFinalBorrowStatus(BorrowStatusPendingBorrow))
	assert.False(t, IsFinalBorrowStatus(BorrowStatusBorrowed))
	assert.False(t, IsFinalBorrowStatus(BorrowStatusPendingReturn))
}
