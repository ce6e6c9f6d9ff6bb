package dto

// DashboardSummaryDTO is rendered as-is by the dashboard landing page,
// hence the camelCase keys.
type DashboardSummaryDTO struct {
	TotalEquipment   int             `json:"totalEquipment"`
	BrokenEquipment  int             `json:"brokenEquipment"`
	BorrowsThisMonth int             `json:"borrowsThisMonth"`
	CategoryCounts   []CategoryCount `json:"categoryCounts"`
}

type CategoryCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}
