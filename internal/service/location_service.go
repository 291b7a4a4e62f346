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

// LocationService 勤務地业务接口
type LocationService interface {
	Create(ctx context.Context, req *dto.CreateLocationRequest) (*dto.LocationResponse, error)
	GetByID(ctx context.Context, id string) (*dto.LocationResponse, error)
	List(ctx context.Context) ([]dto.LocationResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateLocationRequest) (*dto.LocationResponse, error)
	Delete(ctx context.Context, id string) error
}

type locationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLocationService 创建 LocationService 实例
func NewLocationService(repo *repository.Repository, logger *zap.Logger) LocationService {
	return &locationService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *locationService) Create(ctx context.Context, req *dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	category := req.Category
	if category == "" {
		category = model.LocationCategoryClient
	}

	loc := &model.Location{
		Name:         req.Name,
		Category:     category,
		HourlyWage:   req.HourlyWage,
		TransportFee: req.TransportFee,
		MemberFees:   model.FeeMap(req.MemberFees),
		LogoURL:      req.LogoURL,
	}

	if err := s.repo.Location.Create(ctx, loc); err != nil {
		s.logger.Error("创建勤務地失败", zap.Error(err))
		return nil, err
	}

	return s.toLocationResponse(loc), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *locationService) GetByID(ctx context.Context, id string) (*dto.LocationResponse, error) {
	loc, err := s.repo.Location.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("勤務地")
		}
		s.logger.Error("查询勤務地失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toLocationResponse(loc), nil
}

// ────────────────────── List ──────────────────────

func (s *locationService) List(ctx context.Context) ([]dto.LocationResponse, error) {
	locations, err := s.repo.Location.List(ctx)
	if err != nil {
		s.logger.Error("列出勤務地失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.LocationResponse, 0, len(locations))
	for i := range locations {
		result = append(result, *s.toLocationResponse(&locations[i]))
	}

	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *locationService) Update(ctx context.Context, id string, req *dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	loc, err := s.repo.Location.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("勤務地")
		}
		s.logger.Error("查询勤務地失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		loc.Name = *req.Name
	}
	if req.Category != nil {
		loc.Category = *req.Category
	}
	if req.HourlyWage != nil {
		loc.HourlyWage = *req.HourlyWage
	}
	if req.TransportFee != nil {
		loc.TransportFee = *req.TransportFee
	}
	if req.MemberFees != nil {
		loc.MemberFees = model.FeeMap(req.MemberFees)
	}
	if req.LogoURL != nil {
		loc.LogoURL = *req.LogoURL
	}

	if err := s.repo.Location.Update(ctx, loc); err != nil {
		s.logger.Error("更新勤務地失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toLocationResponse(loc), nil
}

// ────────────────────── Delete ──────────────────────

func (s *locationService) Delete(ctx context.Context, id string) error {
	_, err := s.repo.Location.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("勤務地")
		}
		s.logger.Error("查询勤務地失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Location.Delete(ctx, id); err != nil {
		s.logger.Error("删除勤務地失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── 内部辅助方法 ──

func (s *locationService) toLocationResponse(loc *model.Location) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:           loc.LocationID,
		Name:         loc.Name,
		Category:     loc.Category,
		HourlyWage:   loc.HourlyWage,
		TransportFee: loc.TransportFee,
		MemberFees:   map[string]int(loc.MemberFees),
		LogoURL:      loc.LogoURL,
		CreatedAt:    loc.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    loc.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
