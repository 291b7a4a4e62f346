package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/VEXUM-ai/shift-management-app-sub000/config"
	"github.com/VEXUM-ai/shift-management-app-sub000/internal/dto"
	"github.com/VEXUM-ai/shift-management-app-sub000/internal/model"
	"github.com/VEXUM-ai/shift-management-app-sub000/internal/repository"
	apperrors "github.com/VEXUM-ai/shift-management-app-sub000/pkg/errors"
	"github.com/VEXUM-ai/shift-management-app-sub000/pkg/notify"
)

// ── 测试辅助 ──

func newTestRepository() *repository.Repository {
	members := newMockMemberRepo()
	locations := newMockLocationRepo()
	return &repository.Repository{
		Member:     members,
		Location:   locations,
		Attendance: newMockAttendanceRepo(members, locations),
		Shift:      newMockShiftRepo(),
		Salary:     newMockSalaryRepo(),
	}
}

func newTestNotifier() notify.Notifier {
	// webhook 未配置 → 空实现
	return notify.NewSlack(&config.SlackConfig{}, zap.NewNop())
}

func setupTestAttendanceService() (AttendanceService, *repository.Repository) {
	repo := newTestRepository()
	svc := NewAttendanceService(repo, nil, newTestNotifier(), zap.NewNop())
	return svc, repo
}

func seedMember(repo *repository.Repository, id, name string) {
	repo.Member.(*mockMemberRepo).members[id] = &model.Member{MemberID: id, Name: name}
}

func seedLocation(repo *repository.Repository, id, name string, wage int) {
	repo.Location.(*mockLocationRepo).locations[id] = &model.Location{
		LocationID: id,
		Name:       name,
		Category:   model.LocationCategoryClient,
		HourlyWage: wage,
	}
}

// ── ClockIn 测试 ──

func TestAttendanceService_ClockIn_Success(t *testing.T) {
	svc, repo := setupTestAttendanceService()
	seedMember(repo, "mem-001", "青木")
	seedLocation(repo, "loc-001", "クライアントA", 2000)

	req := &dto.ClockInRequest{
		MemberID:   "mem-001",
		LocationID: "loc-001",
		Date:       "2026-08-01",
		Time:       "09:00",
	}

	result, err := svc.ClockIn(context.Background(), req)
	if err != nil {
		t.Fatalf("ClockIn 应成功: %v", err)
	}
	if result.ID == "" {
		t.Error("期望生成记录ID")
	}
	if result.ClockIn != "09:00" {
		t.Errorf("期望ClockIn=09:00，实际=%s", result.ClockIn)
	}
	if result.ClockOut != nil {
		t.Error("新记录不应有下班时间")
	}
	if result.TotalHours != nil {
		t.Error("新记录不应有工时")
	}
}

func TestAttendanceService_ClockIn_WithoutLocation(t *testing.T) {
	svc, repo := setupTestAttendanceService()
	seedMember(repo, "mem-001", "青木")

	req := &dto.ClockInRequest{
		MemberID: "mem-001",
		Date:     "2026-08-01",
		Time:     "09:00",
	}

	result, err := svc.ClockIn(context.Background(), req)
	if err != nil {
		t.Fatalf("不带勤務地的打卡应成功: %v", err)
	}
	if result.LocationID != "" {
		t.Errorf("期望LocationID为空，实际=%s", result.LocationID)
	}
}

func TestAttendanceService_ClockIn_InvalidDate(t *testing.T) {
	svc, repo := setupTestAttendanceService()
	seedMember(repo, "mem-001", "青木")

	req := &dto.ClockInRequest{MemberID: "mem-001", Date: "08/01/2026", Time: "09:00"}

	_, err := svc.ClockIn(context.Background(), req)
	var vErr *apperrors.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("期望 ValidationError，实际: %v", err)
	}
	if vErr.Field != "date" {
		t.Errorf("期望Field=date，实际=%s", vErr.Field)
	}
}

func TestAttendanceService_ClockIn_InvalidTime(t *testing.T) {
	svc, repo := setupTestAttendanceService()
	seedMember(repo, "mem-001", "青木")

	req := &dto.ClockInRequest{MemberID: "mem-001", Date: "2026-08-01", Time: "25:99"}

	_, err := svc.ClockIn(context.Background(), req)
	var vErr *apperrors.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("期望 ValidationError，实际: %v", err)
	}
}

func TestAttendanceService_ClockIn_MemberNotFound(t *testing.T) {
	svc, _ := setupTestAttendanceService()

	req := &dto.ClockInRequest{MemberID: "nonexistent", Date: "2026-08-01", Time: "09:00"}

	_, err := svc.ClockIn(context.Background(), req)
	var nErr *apperrors.NotFoundError
	if !errors.As(err, &nErr) {
		t.Fatalf("期望 NotFoundError，实际: %v", err)
	}
}

func TestAttendanceService_ClockIn_DuplicateOpenConflict(t *testing.T) {
	svc, repo := setupTestAttendanceService()
	seedMember(repo, "mem-001", "青木")

	req := &dto.ClockInRequest{MemberID: "mem-001", Date: "2026-08-01", Time: "09:00"}
	if _, err := svc.ClockIn(context.Background(), req); err != nil {
		t.Fatalf("首次打卡应成功: %v", err)
	}

	// 同一天再次上班打卡（未下班）→ 冲突
	req2 := &dto.ClockInRequest{MemberID: "mem-001", Date: "2026-08-01", Time: "10:00"}
	_, err := svc.ClockIn(context.Background(), req2)
	var cErr *apperrors.ConflictError
	if !errors.As(err, &cErr) {
		t.Fatalf("期望 ConflictError，实际: %v", err)
	}
}

func TestAttendanceService_ClockIn_AfterClockOutAllowed(t *testing.T) {
	svc, repo := setupTestAttendanceService()
	seedMember(repo, "mem-001", "青木")

	req := &dto.ClockInRequest{MemberID: "mem-001", Date: "2026-08-01", Time: "09:00"}
	rec, err := svc.ClockIn(context.Background(), req)
	if err != nil {
		t.Fatalf("首次打卡应成功: %v", err)
	}
	if _, err := svc.ClockOut(context.Background(), rec.ID, &dto.ClockOutRequest{Time: "12:00"}); err != nil {
		t.Fatalf("下班打卡应成功: %v", err)
	}

	// 前一段已关闭，同一天可再次上班打卡
	req2 := &dto.ClockInRequest{MemberID: "mem-001", Date: "2026-08-01", Time: "13:00"}
	if _, err := svc.ClockIn(context.Background(), req2); err != nil {
		t.Fatalf("已下班后再次打卡应成功: %v", err)
	}
}

// ── ClockOut 测试 ──

func TestAttendanceService_ClockOut_Success(t *testing.T) {
	svc, repo := setupTestAttendanceService()
	seedMember(repo, "mem-001", "青木")
	seedLocation(repo, "loc-001", "クライアントA", 2000)

	rec, err := svc.ClockIn(context.Background(), &dto.ClockInRequest{
		MemberID: "mem-001", LocationID: "loc-001", Date: "2026-08-01", Time: "09:00",
	})
	if err != nil {
		t.Fatalf("打卡应成功: %v", err)
	}

	result, err := svc.ClockOut(context.Background(), rec.ID, &dto.ClockOutRequest{Time: "17:30"})
	if err != nil {
		t.Fatalf("ClockOut 应成功: %v", err)
	}
	if result.TotalHours != 8.5 {
		t.Errorf("期望TotalHours=8.5，实际=%v", result.TotalHours)
	}
	if result.ClockOut != "17:30" {
		t.Errorf("期望ClockOut=17:30，实际=%s", result.ClockOut)
	}
}

func TestAttendanceService_ClockOut_RoundsToTwoDecimals(t *testing.T) {
	svc, repo := setupTestAttendanceService()
	seedMember(repo, "mem-001", "青木")

	rec, _ := svc.ClockIn(context.Background(), &dto.ClockInRequest{
		MemberID: "mem-001", Date: "2026-08-01", Time: "09:00",
	})

	// 09:00 → 09:50 = 50分钟 = 0.8333... → 0.83
	result, err := svc.ClockOut(context.Background(), rec.ID, &dto.ClockOutRequest{Time: "09:50"})
	if err != nil {
		t.Fatalf("ClockOut 应成功: %v", err)
	}
	if result.TotalHours != 0.83 {
		t.Errorf("期望TotalHours=0.83，实际=%v", result.TotalHours)
	}
}

func TestAttendanceService_ClockOut_NotAfterClockIn(t *testing.T) {
	svc, repo := setupTestAttendanceService()
	seedMember(repo, "mem-001", "青木")

	rec, _ := svc.ClockIn(context.Background(), &dto.ClockInRequest{
		MemberID: "mem-001", Date: "2026-08-01", Time: "09:00",
	})

	for _, at := range []string{"09:00", "08:30"} {
		_, err := svc.ClockOut(context.Background(), rec.ID, &dto.ClockOutRequest{Time: at})
		var vErr *apperrors.ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("下班时间 %s 期望 ValidationError，实际: %v", at, err)
		}
	}
}

func TestAttendanceService_ClockOut_AlreadyClosed(t *testing.T) {
	svc, repo := setupTestAttendanceService()
	seedMember(repo, "mem-001", "青木")

	rec, _ := svc.ClockIn(context.Background(), &dto.ClockInRequest{
		MemberID: "mem-001", Date: "2026-08-01", Time: "09:00",
	})
	if _, err := svc.ClockOut(context.Background(), rec.ID, &dto.ClockOutRequest{Time: "17:30"}); err != nil {
		t.Fatalf("首次下班应成功: %v", err)
	}

	_, err := svc.ClockOut(context.Background(), rec.ID, &dto.ClockOutRequest{Time: "18:00"})
	var cErr *apperrors.ConflictError
	if !errors.As(err, &cErr) {
		t.Fatalf("重复下班期望 ConflictError，实际: %v", err)
	}
}

func TestAttendanceService_ClockOut_RecordNotFound(t *testing.T) {
	svc, _ := setupTestAttendanceService()

	_, err := svc.ClockOut(context.Background(), "nonexistent", &dto.ClockOutRequest{Time: "17:30"})
	var nErr *apperrors.NotFoundError
	if !errors.As(err, &nErr) {
		t.Fatalf("期望 NotFoundError，实际: %v", err)
	}
}

// ── Delete 测试 ──

func TestAttendanceService_Delete_OpenRecord(t *testing.T) {
	svc, repo := setupTestAttendanceService()
	seedMember(repo, "mem-001", "青木")

	rec, _ := svc.ClockIn(context.Background(), &dto.ClockInRequest{
		MemberID: "mem-001", Date: "2026-08-01", Time: "09:00",
	})

	if err := svc.Delete(context.Background(), rec.ID); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}

	// 删除后同一天可重新打卡
	if _, err := svc.ClockIn(context.Background(), &dto.ClockInRequest{
		MemberID: "mem-001", Date: "2026-08-01", Time: "10:00",
	}); err != nil {
		t.Fatalf("删除后重新打卡应成功: %v", err)
	}
}

func TestAttendanceService_Delete_NotFound(t *testing.T) {
	svc, _ := setupTestAttendanceService()

	err := svc.Delete(context.Background(), "nonexistent")
	var nErr *apperrors.NotFoundError
	if !errors.As(err, &nErr) {
		t.Fatalf("期望 NotFoundError，实际: %v", err)
	}
}

// ── List 测试 ──

func TestAttendanceService_List_FilterByMemberAndMonth(t *testing.T) {
	svc, repo := setupTestAttendanceService()
	seedMember(repo, "mem-001", "青木")
	seedMember(repo, "mem-002", "田中")

	seed := []struct {
		member, date, in string
	}{
		{"mem-001", "2026-08-01", "09:00"},
		{"mem-001", "2026-07-31", "09:00"},
		{"mem-002", "2026-08-01", "10:00"},
	}
	for _, s := range seed {
		if _, err := svc.ClockIn(context.Background(), &dto.ClockInRequest{
			MemberID: s.member, Date: s.date, Time: s.in,
		}); err != nil {
			t.Fatalf("造数失败: %v", err)
		}
	}

	result, err := svc.List(context.Background(), &dto.AttendanceListRequest{
		MemberID: "mem-001", Month: "2026-08",
	})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("期望1条记录，实际=%d", len(result))
	}
	if result[0].MemberID != "mem-001" || result[0].WorkDate != "2026-08-01" {
		t.Errorf("过滤结果不符: %+v", result[0])
	}
}
