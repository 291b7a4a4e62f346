package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/VEXUM-ai/shift-management-app-sub000/internal/dto"
	"github.com/VEXUM-ai/shift-management-app-sub000/internal/model"
	"github.com/VEXUM-ai/shift-management-app-sub000/internal/repository"
	apperrors "github.com/VEXUM-ai/shift-management-app-sub000/pkg/errors"
)

// MemberService 成员业务接口
type MemberService interface {
	Create(ctx context.Context, req *dto.CreateMemberRequest) (*dto.MemberResponse, error)
	GetByID(ctx context.Context, id string) (*dto.MemberResponse, error)
	List(ctx context.Context) ([]dto.MemberResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateMemberRequest) (*dto.MemberResponse, error)
	Delete(ctx context.Context, id string) error
}

type memberService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMemberService 创建 MemberService 实例
func NewMemberService(repo *repository.Repository, logger *zap.Logger) MemberService {
	return &memberService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *memberService) Create(ctx context.Context, req *dto.CreateMemberRequest) (*dto.MemberResponse, error) {
	m := &model.Member{
		Name:                req.Name,
		Email:               req.Email,
		DefaultTransportFee: req.DefaultTransportFee,
	}

	if err := s.repo.Member.Create(ctx, m); err != nil {
		s.logger.Error("创建成员失败", zap.Error(err))
		return nil, err
	}

	return s.toMemberResponse(m), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *memberService) GetByID(ctx context.Context, id string) (*dto.MemberResponse, error) {
	m, err := s.repo.Member.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("成员")
		}
		s.logger.Error("查询成员失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toMemberResponse(m), nil
}

// ────────────────────── List ──────────────────────

func (s *memberService) List(ctx context.Context) ([]dto.MemberResponse, error) {
	members, err := s.repo.Member.List(ctx)
	if err != nil {
		s.logger.Error("列出成员失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.MemberResponse, 0, len(members))
	for i := range members {
		result = append(result, *s.toMemberResponse(&members[i]))
	}

	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *memberService) Update(ctx context.Context, id string, req *dto.UpdateMemberRequest) (*dto.MemberResponse, error) {
	m, err := s.repo.Member.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("成员")
		}
		s.logger.Error("查询成员失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Email != nil {
		m.Email = *req.Email
	}
	if req.DefaultTransportFee != nil {
		m.DefaultTransportFee = *req.DefaultTransportFee
	}

	if err := s.repo.Member.Update(ctx, m); err != nil {
		s.logger.Error("更新成员失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toMemberResponse(m), nil
}

// ────────────────────── Delete ──────────────────────

// Delete 删除成员。历史考勤/班次记录保留原 member_id，不做级联清理
func (s *memberService) Delete(ctx context.Context, id string) error {
	_, err := s.repo.Member.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("成员")
		}
		s.logger.Error("查询成员失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Member.Delete(ctx, id); err != nil {
		s.logger.Error("删除成员失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── 内部辅助方法 ──

func (s *memberService) toMemberResponse(m *model.Member) *dto.MemberResponse {
	return &dto.MemberResponse{
		ID:                  m.MemberID,
		Name:                m.Name,
		Email:               m.Email,
		DefaultTransportFee: m.DefaultTransportFee,
		CreatedAt:           m.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:           m.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
