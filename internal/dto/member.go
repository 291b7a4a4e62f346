package dto

// ── 成员模块 DTO ──

// CreateMemberRequest 创建成员请求
type CreateMemberRequest struct {
	Name                string `json:"name"                  binding:"required,min=1,max=100"`
	Email               string `json:"email"                 binding:"omitempty,email,max=255"`
	DefaultTransportFee int    `json:"default_transport_fee" binding:"omitempty,min=0"`
}

// UpdateMemberRequest 更新成员请求
type UpdateMemberRequest struct {
	Name                *string `json:"name"                  binding:"omitempty,min=1,max=100"`
	Email               *string `json:"email"                 binding:"omitempty,email,max=255"`
	DefaultTransportFee *int    `json:"default_transport_fee" binding:"omitempty,min=0"`
}

// MemberResponse 成员信息响应
type MemberResponse struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Email               string `json:"email,omitempty"`
	DefaultTransportFee int    `json:"default_transport_fee"`
	CreatedAt           string `json:"created_at"`
	UpdatedAt           string `json:"updated_at"`
}
