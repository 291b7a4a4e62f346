package dto

// ── 勤務地模块 DTO ──

// CreateLocationRequest 创建勤務地请求
type CreateLocationRequest struct {
	Name         string         `json:"name"          binding:"required,min=1,max=100"`
	Category     string         `json:"category"      binding:"omitempty,oneof=office client"`
	HourlyWage   int            `json:"hourly_wage"   binding:"omitempty,min=0"`
	TransportFee int            `json:"transport_fee" binding:"omitempty,min=0"`
	MemberFees   map[string]int `json:"member_fees"   binding:"omitempty"`
	LogoURL      string         `json:"logo_url"      binding:"omitempty,max=500"`
}

// UpdateLocationRequest 更新勤務地请求
type UpdateLocationRequest struct {
	Name         *string        `json:"name"          binding:"omitempty,min=1,max=100"`
	Category     *string        `json:"category"      binding:"omitempty,oneof=office client"`
	HourlyWage   *int           `json:"hourly_wage"   binding:"omitempty,min=0"`
	TransportFee *int           `json:"transport_fee" binding:"omitempty,min=0"`
	MemberFees   map[string]int `json:"member_fees"   binding:"omitempty"`
	LogoURL      *string        `json:"logo_url"      binding:"omitempty,max=500"`
}

// LocationResponse 勤務地信息响应
type LocationResponse struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Category     string         `json:"category"`
	HourlyWage   int            `json:"hourly_wage"`
	TransportFee int            `json:"transport_fee"`
	MemberFees   map[string]int `json:"member_fees,omitempty"`
	LogoURL      string         `json:"logo_url,omitempty"`
	CreatedAt    string         `json:"created_at"`
	UpdatedAt    string         `json:"updated_at"`
}
