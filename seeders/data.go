package seeders

type userSeed struct {
	Username   string
	Password   string
	FirstName  string
	LastName   string
	Department string
	Role       string
}

type equipmentSeed struct {
	Category    string
	SubCategory string
	AssetCode   string
	Name        string
	Unit        string
	Description string
	IsLeased    bool
}

var usersData = []userSeed{
	{Username: "owner.bmu", Password: "owner.bmu", FirstName: "สมชาย", LastName: "ใจดี", Department: "BMU", Role: "OwnerBMU"},
	{Username: "it.suda", Password: "it.suda", FirstName: "สุดา", LastName: "เทคนิค", Department: "IT", Role: "IT"},
	{Username: "hr.malee", Password: "hr.malee", FirstName: "มาลี", LastName: "บุคคล", Department: "HR", Role: "HR"},
	{Username: "head.prasit", Password: "head.prasit", FirstName: "ประสิทธิ์", LastName: "หัวหน้า", Department: "Management", Role: "Head"},
	{Username: "somsak", Password: "somsak", FirstName: "สมศักดิ์", LastName: "ทำงาน", Department: "Operations", Role: "Normal"},
	{Username: "wipa", Password: "wipa", FirstName: "วิภา", LastName: "สำนักงาน", Department: "Accounting", Role: "Normal"},
}

var equipmentData = []equipmentSeed{
	{Category: "Notebook", SubCategory: "Lenovo", AssetCode: "NB-0001", Name: "Lenovo ThinkPad E14", Unit: "เครื่อง", Description: "โน้ตบุ๊กสำหรับงานทั่วไป"},
	{Category: "Notebook", SubCategory: "Dell", AssetCode: "NB-0002", Name: "Dell Latitude 5440", Unit: "เครื่อง", Description: "โน้ตบุ๊กสำหรับงานทั่วไป"},
	{Category: "Notebook", SubCategory: "Apple", AssetCode: "NB-0003", Name: "MacBook Air M2", Unit: "เครื่อง", Description: "สำหรับทีมออกแบบ", IsLeased: true},
	{Category: "Monitor", SubCategory: "Dell", AssetCode: "MN-0001", Name: "Dell P2422H 24\"", Unit: "จอ"},
	{Category: "Monitor", SubCategory: "LG", AssetCode: "MN-0002", Name: "LG 27UL500 27\"", Unit: "จอ"},
	{Category: "Printer", SubCategory: "HP", AssetCode: "PR-0001", Name: "HP LaserJet Pro M404dn", Unit: "เครื่อง", Description: "เครื่องพิมพ์ส่วนกลางชั้น 2"},
	{Category: "Projector", SubCategory: "Epson", AssetCode: "PJ-0001", Name: "Epson EB-X51", Unit: "เครื่อง", Description: "ห้องประชุมใหญ่"},
	{Category: "Accessory", SubCategory: "Logitech", AssetCode: "AC-0001", Name: "Logitech MX Keys", Unit: "ชุด"},
	{Category: "Accessory", SubCategory: "Logitech", AssetCode: "AC-0002", Name: "Logitech C920 Webcam", Unit: "ตัว"},
	{Category: "Network", SubCategory: "TP-Link", AssetCode: "NW-0001", Name: "TP-Link TL-SG108 Switch", Unit: "ตัว", Description: "สวิตช์สำรองสำหรับงานอีเวนต์"},
}
