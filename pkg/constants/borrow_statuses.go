package constants

// --- BORROW RECORD STATUSES ---
const (
	BorrowStatusPendingBorrow = "pending_borrow"
	BorrowStatusBorrowed      = "borrowed"
	BorrowStatusPendingReturn = "pending_return"
	BorrowStatusReturned      = "returned"
	BorrowStatusRejected      = "rejected"
)

// Terminal statuses
var FinalBorrowStatuses = []string{
	BorrowStatusReturned,
	BorrowStatusRejected,
}

func IsFinalBorrowStatus(code string) bool {
	for _, s := range FinalBorrowStatuses {
		if s == code {
			return true
		}
	}
	return false
}

// borrowTransitions is the whitelist of legal status moves. Anything
// not listed here is refused, including moves out of a terminal status.
var borrowTransitions = map[string][]string{
	BorrowStatusPendingBorrow: {BorrowStatusBorrowed, BorrowStatusRejected},
	BorrowStatusBorrowed:      {BorrowStatusPendingReturn},
	BorrowStatusPendingReturn: {BorrowStatusReturned, BorrowStatusRejected},
}

func CanTransitionBorrow(from, to string) bool {
	for _, s := range borrowTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// --- REPAIR REPORT STATUSES ---
const (
	RepairStatusPending  = "pending"
	RepairStatusRepaired = "repaired"
)
