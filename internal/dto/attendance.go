package dto

// ── 考勤模块 DTO ──

// ClockInRequest 上班打卡请求
type ClockInRequest struct {
	MemberID   string `json:"member_id"   binding:"required,uuid"`
	LocationID string `json:"location_id" binding:"omitempty,uuid"`
	Date       string `json:"date"        binding:"required"` // YYYY-MM-DD
	Time       string `json:"time"        binding:"required"` // HH:MM
}

// ClockOutRequest 下班打卡请求
type ClockOutRequest struct {
	Time string `json:"time" binding:"required"` // HH:MM
}

// AttendanceListRequest 考勤列表查询参数
type AttendanceListRequest struct {
	MemberID string `form:"member_id" binding:"omitempty,uuid"`
	Month    string `form:"month"     binding:"omitempty,len=7"` // YYYY-MM
}

// AttendanceResponse 考勤记录响应
type AttendanceResponse struct {
	ID           string   `json:"id"`
	MemberID     string   `json:"member_id"`
	MemberName   string   `json:"member_name,omitempty"`
	LocationID   string   `json:"location_id,omitempty"`
	LocationName string   `json:"location_name,omitempty"`
	WorkDate     string   `json:"work_date"`
	ClockIn      string   `json:"clock_in"`
	ClockOut     *string  `json:"clock_out,omitempty"`
	TotalHours   *float64 `json:"total_hours,omitempty"`
	CreatedAt    string   `json:"created_at"`
}

// ClockOutResponse 下班打卡响应
type ClockOutResponse struct {
	ID         string  `json:"id"`
	ClockOut   string  `json:"clock_out"`
	TotalHours float64 `json:"total_hours"`
}
