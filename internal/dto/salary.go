package dto

// ── 工资模块 DTO ──

// SalarySummaryRequest 月度工资汇总查询参数
type SalarySummaryRequest struct {
	MemberID string `form:"member_id" binding:"required,uuid"`
	Month    string `form:"month"     binding:"required,len=7"` // YYYY-MM
}

// FinalizeSalaryRequest 工资快照锁定请求
type FinalizeSalaryRequest struct {
	MemberID string `json:"member_id" binding:"required,uuid"`
	Month    string `json:"month"     binding:"required,len=7"` // YYYY-MM
}

// SalaryBreakdownItem 按勤務地的工时与工资明细
type SalaryBreakdownItem struct {
	Location string  `json:"location"`
	Hours    float64 `json:"hours"`
	Wage     int     `json:"wage"`
	Salary   float64 `json:"salary"`
}

// SalarySummaryResponse 月度工资汇总响应
// breakdown 为空且 total_hours==0 表示该成员当月无数据，不是错误
type SalarySummaryResponse struct {
	MemberID    string                `json:"member_id"`
	MemberName  string                `json:"member_name,omitempty"`
	Month       string                `json:"month"`
	Breakdown   []SalaryBreakdownItem `json:"breakdown"`
	TotalHours  float64               `json:"total_hours"`
	TotalSalary float64               `json:"total_salary"`
}

// SalaryRecordResponse 已锁定工资快照响应
type SalaryRecordResponse struct {
	ID          string                `json:"id"`
	MemberID    string                `json:"member_id"`
	MemberName  string                `json:"member_name,omitempty"`
	Month       string                `json:"month"`
	TotalHours  float64               `json:"total_hours"`
	TotalSalary float64               `json:"total_salary"`
	Breakdown   []SalaryBreakdownItem `json:"breakdown"`
	LockedAt    string                `json:"locked_at"`
}
