package dto

// ── 班次计划模块 DTO ──

// CreateShiftRequest 提交班次计划请求
type CreateShiftRequest struct {
	MemberID     string `json:"member_id"     binding:"required,uuid"`
	LocationID   string `json:"location_id"   binding:"required,uuid"`
	Date         string `json:"date"          binding:"required"` // YYYY-MM-DD
	StartTime    string `json:"start_time"    binding:"required"` // HH:MM
	EndTime      string `json:"end_time"      binding:"required"` // HH:MM
	TransportFee *int   `json:"transport_fee" binding:"omitempty,min=0"`
}

// UpdateShiftStatusRequest 班次审批请求
type UpdateShiftStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

// ShiftListRequest 班次列表查询参数
type ShiftListRequest struct {
	MemberID string `form:"member_id" binding:"omitempty,uuid"`
	Month    string `form:"month"     binding:"omitempty,len=7"` // YYYY-MM
	Status   string `form:"status"    binding:"omitempty,oneof=submitted approved rejected"`
}

// ShiftResponse 班次计划响应
type ShiftResponse struct {
	ID           string `json:"id"`
	MemberID     string `json:"member_id"`
	MemberName   string `json:"member_name,omitempty"`
	LocationID   string `json:"location_id"`
	LocationName string `json:"location_name,omitempty"`
	WorkDate     string `json:"work_date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Status       string `json:"status"`
	TransportFee *int   `json:"transport_fee,omitempty"`
	CreatedAt    string `json:"created_at"`
}
