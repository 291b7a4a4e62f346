package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/VEXUM-ai/shift-management-app-sub000/internal/model"
)

// ShiftRepository 班次计划数据访问接口
type ShiftRepository interface {
	Create(ctx context.Context, s *model.ShiftRecord) error
	GetByID(ctx context.Context, id string) (*model.ShiftRecord, error)
	List(ctx context.Context, memberID, month, status string) ([]model.ShiftRecord, error)
	Update(ctx context.Context, s *model.ShiftRecord) error
	Delete(ctx context.Context, id string) error
}

type shiftRepo struct {
	db *gorm.DB
}

// NewShiftRepo 创建 ShiftRepository 实例
func NewShiftRepo(db *gorm.DB) ShiftRepository {
	return &shiftRepo{db: db}
}

func (r *shiftRepo) Create(ctx context.Context, s *model.ShiftRecord) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *shiftRepo) GetByID(ctx context.Context, id string) (*model.ShiftRecord, error) {
	var s model.ShiftRecord
	err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Location").
		Where("shift_id = ?", id).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *shiftRepo) List(ctx context.Context, memberID, month, status string) ([]model.ShiftRecord, error) {
	var shifts []model.ShiftRecord
	db := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Location")

	if memberID != "" {
		db = db.Where("member_id = ?", memberID)
	}
	if month != "" {
		db = db.Where("work_date LIKE ?", month+"%")
	}
	if status != "" {
		db = db.Where("status = ?", status)
	}

	err := db.Order("work_date ASC, start_time ASC").Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepo) Update(ctx context.Context, s *model.ShiftRecord) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *shiftRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("shift_id = ?", id).
		Delete(&model.ShiftRecord{}).Error
}
