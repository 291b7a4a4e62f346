package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/VEXUM-ai/shift-management-app-sub000/internal/repository"
	apperrors "github.com/VEXUM-ai/shift-management-app-sub000/pkg/errors"
)

func setupTestExportService() (ExportService, *repository.Repository) {
	repo := newTestRepository()
	svc := NewExportService(repo, zap.NewNop())
	return svc, repo
}

// ── ExportAttendanceCSV 测试 ──

func TestExportService_ExportAttendanceCSV_Success(t *testing.T) {
	svc, repo := setupTestExportService()
	seedMember(repo, "mem-001", "青木")
	seedLocation(repo, "loc-001", "クライアントA", 2000)
	seedClosedAttendance(repo, "mem-001", "2026-08-01", "loc-001", "09:00", "17:30", 8.5)

	buf, filename, err := svc.ExportAttendanceCSV(context.Background(), "2026-08")
	if err != nil {
		t.Fatalf("ExportAttendanceCSV 应成功: %v", err)
	}
	if filename != "attendance_2026-08.csv" {
		t.Errorf("期望文件名attendance_2026-08.csv，实际=%s", filename)
	}

	rows, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	if err != nil {
		t.Fatalf("输出应为合法CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("期望表头+1行数据，实际=%d行", len(rows))
	}
	if rows[0][0] != "id" || rows[0][6] != "total_hours" {
		t.Errorf("表头不符: %v", rows[0])
	}
	if rows[1][3] != "2026-08-01" || rows[1][6] != "8.50" {
		t.Errorf("数据行不符: %v", rows[1])
	}
}

func TestExportService_ExportAttendanceCSV_NoData(t *testing.T) {
	svc, _ := setupTestExportService()

	_, _, err := svc.ExportAttendanceCSV(context.Background(), "2026-08")
	if !errors.Is(err, ErrExportNoData) {
		t.Fatalf("期望 ErrExportNoData，实际: %v", err)
	}
}

func TestExportService_ExportAttendanceCSV_InvalidMonth(t *testing.T) {
	svc, _ := setupTestExportService()

	_, _, err := svc.ExportAttendanceCSV(context.Background(), "bad")
	var vErr *apperrors.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("期望 ValidationError，实际: %v", err)
	}
}

// ── ExportPayrollExcel 测试 ──

func TestExportService_ExportPayrollExcel_Success(t *testing.T) {
	svc, repo := setupTestExportService()
	seedMember(repo, "mem-001", "青木")
	seedLocation(repo, "loc-001", "クライアントA", 2000)
	seedClosedAttendance(repo, "mem-001", "2026-08-01", "loc-001", "09:00", "17:30", 8.5)

	buf, filename, err := svc.ExportPayrollExcel(context.Background(), "2026-08")
	if err != nil {
		t.Fatalf("ExportPayrollExcel 应成功: %v", err)
	}
	if filename != "給与明細_2026-08.xlsx" {
		t.Errorf("期望文件名給与明細_2026-08.xlsx，实际=%s", filename)
	}
	if buf.Len() == 0 {
		t.Error("Excel 输出不应为空")
	}
	// xlsx 是 zip 容器，以 PK 开头
	if !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Error("输出应为合法 xlsx 文件")
	}
}

func TestExportService_ExportPayrollExcel_NoData(t *testing.T) {
	svc, repo := setupTestExportService()
	seedMember(repo, "mem-001", "青木")

	_, _, err := svc.ExportPayrollExcel(context.Background(), "2026-08")
	if !errors.Is(err, ErrExportNoData) {
		t.Fatalf("期望 ErrExportNoData，实际: %v", err)
	}
}
