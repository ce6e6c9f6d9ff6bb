package client

import "time"

// The field names and JSON keys here mirror the server responses exactly;
// optional columns come back as null and map onto pointers.

type Equipment struct {
	ID              uint64     `json:"ID"`
	Category        string     `json:"category"`
	SubCategory     *string    `json:"sub_category"`
	AssetCode       string     `json:"asset_code"`
	Name            string     `json:"name"`
	Unit            *string    `json:"unit"`
	Description     *string    `json:"description"`
	RefDocument     *string    `json:"ref_document"`
	Checklist       *string    `json:"checklist"`
	IsLeased        bool       `json:"is_leased"`
	Status          string     `json:"status"`
	AssignedTo      *string    `json:"assigned_to"`
	AssignedDate    *time.Time `json:"assigned_date"`
	CurrentLocation *string    `json:"current_location"`
	CreatedAt       *time.Time `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
}

type User struct {
	ID         uint64 `json:"ID"`
	Username   string `json:"username"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

type HistoryItem struct {
	ID                 uint64     `json:"id"`
	EquipmentID        uint64     `json:"equipment_id"`
	BorrowerName       string     `json:"borrower_name"`
	BorrowDate         time.Time  `json:"borrow_date"`
	ReturnDate         *time.Time `json:"return_date"`
	Remark             *string    `json:"remark"`
	ReceivedBy         *string    `json:"received_by"`
	Status             string     `json:"status"`
	EquipmentName      string     `json:"equipment_name"`
	EquipmentAssetCode string     `json:"equipment_asset_code"`
	EquipmentCategory  string     `json:"equipment_category"`
	EquipmentStatus    string     `json:"equipment_status"`
	EquipmentUnit      *string    `json:"equipment_unit"`
}

type RepairItem struct {
	ID                 uint64     `json:"id"`
	EquipmentID        uint64     `json:"equipment_id"`
	ReporterName       string     `json:"reporter_name"`
	ProblemDetail      string     `json:"problem_detail"`
	ReportDate         time.Time  `json:"report_date"`
	RepairStatus       string     `json:"repair_status"`
	ResolvedDate       *time.Time `json:"resolved_date"`
	EquipmentName      string     `json:"equipment_name"`
	EquipmentAssetCode string     `json:"equipment_asset_code"`
	EquipmentCategory  string     `json:"equipment_category"`
}

type VaultEntry struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	Username  *string   `json:"username"`
	Password  string    `json:"password"`
	Details   *string   `json:"details"`
	Remark    *string   `json:"remark"`
	UpdatedAt time.Time `json:"updated_at"`
}

type EquipmentPassword struct {
	ID          uint64    `json:"id"`
	EquipmentID uint64    `json:"equipment_id"`
	Password    string    `json:"password"`
	Note        *string   `json:"note"`
	CreatedAt   time.Time `json:"created_at"`
}

type DashboardSummary struct {
	TotalEquipment   int             `json:"totalEquipment"`
	BrokenEquipment  int             `json:"brokenEquipment"`
	BorrowsThisMonth int             `json:"borrowsThisMonth"`
	CategoryCounts   []CategoryCount `json:"categoryCounts"`
}

type CategoryCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateEquipmentRequest struct {
	Category    string `json:"category"`
	SubCategory string `json:"sub_category,omitempty"`
	AssetCode   string `json:"asset_code"`
	Name        string `json:"name"`
	Unit        string `json:"unit,omitempty"`
	Description string `json:"description,omitempty"`
	RefDocument string `json:"ref_document,omitempty"`
	Checklist   string `json:"checklist,omitempty"`
	IsLeased    bool   `json:"is_leased"`
}

type BorrowRequest struct {
	BorrowerName string     `json:"borrower_name"`
	ReturnDate   *time.Time `json:"return_date,omitempty"`
	Remark       string     `json:"remark"`
}

type VaultEntryRequest struct {
	Title    string `json:"title"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
	Details  string `json:"details,omitempty"`
	Remark   string `json:"remark,omitempty"`
}

type CreateUserRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Department string `json:"department"`
	Role       string `json:"role"`
}
