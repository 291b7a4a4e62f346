package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/VEXUM-ai/shift-management-app-sub000/internal/dto"
	"github.com/VEXUM-ai/shift-management-app-sub000/internal/model"
	"github.com/VEXUM-ai/shift-management-app-sub000/internal/repository"
	apperrors "github.com/VEXUM-ai/shift-management-app-sub000/pkg/errors"
)

// ── 测试辅助 ──

func setupTestShiftService() (ShiftService, *repository.Repository) {
	repo := newTestRepository()
	svc := NewShiftService(repo, newTestNotifier(), zap.NewNop())
	return svc, repo
}

func validShiftRequest() *dto.CreateShiftRequest {
	return &dto.CreateShiftRequest{
		MemberID:   "mem-001",
		LocationID: "loc-001",
		Date:       "2026-08-15",
		StartTime:  "10:00",
		EndTime:    "18:00",
	}
}

// ── Create 测试 ──

func TestShiftService_Create_Success(t *testing.T) {
	svc, repo := setupTestShiftService()
	seedMember(repo, "mem-001", "青木")
	seedLocation(repo, "loc-001", "クライアントA", 2000)

	result, err := svc.Create(context.Background(), validShiftRequest())
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.Status != model.ShiftStatusSubmitted {
		t.Errorf("新班次期望status=submitted，实际=%s", result.Status)
	}
	if result.MemberName != "青木" {
		t.Errorf("期望MemberName=青木，实际=%s", result.MemberName)
	}
}

func TestShiftService_Create_EndNotAfterStart(t *testing.T) {
	svc, repo := setupTestShiftService()
	seedMember(repo, "mem-001", "青木")
	seedLocation(repo, "loc-001", "クライアントA", 2000)

	req := validShiftRequest()
	req.StartTime = "18:00"
	req.EndTime = "18:00"

	_, err := svc.Create(context.Background(), req)
	var vErr *apperrors.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("期望 ValidationError，实际: %v", err)
	}
	if vErr.Field != "end_time" {
		t.Errorf("期望Field=end_time，实际=%s", vErr.Field)
	}
}

func TestShiftService_Create_LocationNotFound(t *testing.T) {
	svc, repo := setupTestShiftService()
	seedMember(repo, "mem-001", "青木")

	_, err := svc.Create(context.Background(), validShiftRequest())
	var nErr *apperrors.NotFoundError
	if !errors.As(err, &nErr) {
		t.Fatalf("期望 NotFoundError，实际: %v", err)
	}
}

// ── UpdateStatus 测试 ──

func TestShiftService_UpdateStatus_Approve(t *testing.T) {
	svc, repo := setupTestShiftService()
	seedMember(repo, "mem-001", "青木")
	seedLocation(repo, "loc-001", "クライアントA", 2000)

	created, err := svc.Create(context.Background(), validShiftRequest())
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	result, err := svc.UpdateStatus(context.Background(), created.ID, &dto.UpdateShiftStatusRequest{
		Status: model.ShiftStatusApproved,
	})
	if err != nil {
		t.Fatalf("UpdateStatus 应成功: %v", err)
	}
	if result.Status != model.ShiftStatusApproved {
		t.Errorf("期望status=approved，实际=%s", result.Status)
	}
}

func TestShiftService_UpdateStatus_AlreadyDecided(t *testing.T) {
	svc, repo := setupTestShiftService()
	seedMember(repo, "mem-001", "青木")
	seedLocation(repo, "loc-001", "クライアントA", 2000)

	created, _ := svc.Create(context.Background(), validShiftRequest())
	if _, err := svc.UpdateStatus(context.Background(), created.ID, &dto.UpdateShiftStatusRequest{
		Status: model.ShiftStatusRejected,
	}); err != nil {
		t.Fatalf("首次审批应成功: %v", err)
	}

	_, err := svc.UpdateStatus(context.Background(), created.ID, &dto.UpdateShiftStatusRequest{
		Status: model.ShiftStatusApproved,
	})
	var cErr *apperrors.ConflictError
	if !errors.As(err, &cErr) {
		t.Fatalf("重复审批期望 ConflictError，实际: %v", err)
	}
}

func TestShiftService_UpdateStatus_NotFound(t *testing.T) {
	svc, _ := setupTestShiftService()

	_, err := svc.UpdateStatus(context.Background(), "nonexistent", &dto.UpdateShiftStatusRequest{
		Status: model.ShiftStatusApproved,
	})
	var nErr *apperrors.NotFoundError
	if !errors.As(err, &nErr) {
		t.Fatalf("期望 NotFoundError，实际: %v", err)
	}
}

// ── List 测试 ──

func TestShiftService_List_FilterByStatus(t *testing.T) {
	svc, repo := setupTestShiftService()
	seedMember(repo, "mem-001", "青木")
	seedLocation(repo, "loc-001", "クライアントA", 2000)

	first, _ := svc.Create(context.Background(), validShiftRequest())
	req2 := validShiftRequest()
	req2.Date = "2026-08-16"
	svc.Create(context.Background(), req2)

	svc.UpdateStatus(context.Background(), first.ID, &dto.UpdateShiftStatusRequest{
		Status: model.ShiftStatusApproved,
	})

	result, err := svc.List(context.Background(), &dto.ShiftListRequest{
		Status: model.ShiftStatusApproved,
	})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("期望1条approved班次，实际=%d", len(result))
	}
	if result[0].ID != first.ID {
		t.Errorf("过滤结果不符: %+v", result[0])
	}
}

// ── Delete 测试 ──

func TestShiftService_Delete_NotFound(t *testing.T) {
	svc, _ := setupTestShiftService()

	err := svc.Delete(context.Background(), "nonexistent")
	var nErr *apperrors.NotFoundError
	if !errors.As(err, &nErr) {
		t.Fatalf("期望 NotFoundError，实际: %v", err)
	}
}

// ── ExportICS 测试 ──

func TestShiftService_ExportICS_OnlyApproved(t *testing.T) {
	svc, repo := setupTestShiftService()
	seedMember(repo, "mem-001", "青木")
	seedLocation(repo, "loc-001", "クライアントA", 2000)

	approved, _ := svc.Create(context.Background(), validShiftRequest())
	req2 := validShiftRequest()
	req2.Date = "2026-08-16"
	pending, _ := svc.Create(context.Background(), req2)

	svc.UpdateStatus(context.Background(), approved.ID, &dto.UpdateShiftStatusRequest{
		Status: model.ShiftStatusApproved,
	})

	content, filename, err := svc.ExportICS(context.Background(), "2026-08")
	if err != nil {
		t.Fatalf("ExportICS 应成功: %v", err)
	}
	if filename != "shifts_2026-08.ics" {
		t.Errorf("期望文件名shifts_2026-08.ics，实际=%s", filename)
	}
	if !strings.Contains(content, "BEGIN:VCALENDAR") {
		t.Error("输出应为合法 iCalendar 内容")
	}
	if !strings.Contains(content, approved.ID) {
		t.Error("已承認班次应出现在日历中")
	}
	if strings.Contains(content, pending.ID) {
		t.Error("未承認班次不应出现在日历中")
	}
}

func TestShiftService_ExportICS_InvalidMonth(t *testing.T) {
	svc, _ := setupTestShiftService()

	_, _, err := svc.ExportICS(context.Background(), "not-a-month")
	var vErr *apperrors.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("期望 ValidationError，实际: %v", err)
	}
}
