package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/VEXUM-ai/shift-management-app-sub000/internal/dto"
	"github.com/VEXUM-ai/shift-management-app-sub000/internal/service"
	apperrors "github.com/VEXUM-ai/shift-management-app-sub000/pkg/errors"
	"github.com/VEXUM-ai/shift-management-app-sub000/pkg/response"
)

// SalaryHandler 工资模块 HTTP 处理器
type SalaryHandler struct {
	payrollSvc service.PayrollService
}

// NewSalaryHandler 创建 SalaryHandler
func NewSalaryHandler(payrollSvc service.PayrollService) *SalaryHandler {
	return &SalaryHandler{payrollSvc: payrollSvc}
}

// GetSalarySummary 获取月度工资汇总（即时计算）
// GET /api/v1/salaries/summary?member_id=&month=YYYY-MM
func (h *SalaryHandler) GetSalarySummary(c *gin.Context) {
	var req dto.SalarySummaryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	summary, err := h.payrollSvc.GetMonthlySummary(c.Request.Context(), req.MemberID, req.Month)
	if err != nil {
		h.handleSalaryError(c, err)
		return
	}

	response.OK(c, summary)
}

// FinalizeSalary 锁定工资快照
// POST /api/v1/salaries/finalize
func (h *SalaryHandler) FinalizeSalary(c *gin.Context) {
	var req dto.FinalizeSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	rec, err := h.payrollSvc.Finalize(c.Request.Context(), &req)
	if err != nil {
		h.handleSalaryError(c, err)
		return
	}

	response.Created(c, rec)
}

// ListSalaries 获取已锁定工资快照列表
// GET /api/v1/salaries?month=YYYY-MM
func (h *SalaryHandler) ListSalaries(c *gin.Context) {
	month := c.Query("month")

	records, err := h.payrollSvc.ListFinalized(c.Request.Context(), month)
	if err != nil {
		h.handleSalaryError(c, err)
		return
	}

	response.OK(c, gin.H{"list": records})
}

// handleSalaryError 统一处理工资模块业务错误
func (h *SalaryHandler) handleSalaryError(c *gin.Context, err error) {
	var vErr *apperrors.ValidationError
	var nErr *apperrors.NotFoundError

	switch {
	case errors.As(err, &vErr):
		response.ErrorWithDetails(c, 400, 10001, "参数校验失败", vErr.Error())
	case errors.As(err, &nErr):
		response.NotFound(c, 15001, nErr.Error())
	default:
		response.InternalError(c)
	}
}
