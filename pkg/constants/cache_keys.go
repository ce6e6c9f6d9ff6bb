package constants

// Redis key layout.
const (
	// Serialized list of borrow records waiting for approval.
	CacheKeyPendingList = "history:pending_list"

	// Serialized dashboard summary.
	CacheKeyDashboardSummary = "dashboard:summary"
)
