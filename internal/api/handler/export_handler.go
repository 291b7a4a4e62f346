package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/VEXUM-ai/shift-management-app-sub000/internal/service"
	apperrors "github.com/VEXUM-ai/shift-management-app-sub000/pkg/errors"
	"github.com/VEXUM-ai/shift-management-app-sub000/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportPayroll 导出月度工资表 (.xlsx)
// GET /api/v1/export/payroll?month=YYYY-MM
func (h *ExportHandler) ExportPayroll(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		response.BadRequest(c, 10001, "month 参数不能为空")
		return
	}

	buf, filename, err := h.exportSvc.ExportPayrollExcel(c.Request.Context(), month)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	h.writeDownload(c, buf.Bytes(), filename,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

// ExportAttendance 导出月度考勤明细 (.csv)
// GET /api/v1/export/attendance?month=YYYY-MM
func (h *ExportHandler) ExportAttendance(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		response.BadRequest(c, 10001, "month 参数不能为空")
		return
	}

	buf, filename, err := h.exportSvc.ExportAttendanceCSV(c.Request.Context(), month)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	h.writeDownload(c, buf.Bytes(), filename, "text/csv; charset=utf-8")
}

// writeDownload 设置下载响应头并写出文件内容
// 文件名经 RFC 5987 编码，兼容非 ASCII 名称
func (h *ExportHandler) writeDownload(c *gin.Context, data []byte, filename, contentType string) {
	encoded := url.PathEscape(filename)
	c.Header("Content-Disposition",
		fmt.Sprintf(`attachment; filename*=UTF-8''%s`, encoded))
	c.Data(http.StatusOK, contentType, data)
}

// handleExportError 统一处理导出模块业务错误
func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	var vErr *apperrors.ValidationError

	switch {
	case errors.As(err, &vErr):
		response.ErrorWithDetails(c, 400, 10001, "参数校验失败", vErr.Error())
	case errors.Is(err, service.ErrExportNoData):
		response.NotFound(c, 16001, service.ErrExportNoData.Error())
	default:
		response.InternalError(c)
	}
}
