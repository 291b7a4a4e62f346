package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/VEXUM-ai/shift-management-app-sub000/internal/model"
)

// SalaryRepository 工资快照数据访问接口
type SalaryRepository interface {
	Upsert(ctx context.Context, rec *model.SalaryRecord) error
	GetByMemberAndMonth(ctx context.Context, memberID, month string) (*model.SalaryRecord, error)
	List(ctx context.Context, month string) ([]model.SalaryRecord, error)
}

type salaryRepo struct {
	db *gorm.DB
}

// NewSalaryRepo 创建 SalaryRepository 实例
func NewSalaryRepo(db *gorm.DB) SalaryRepository {
	return &salaryRepo{db: db}
}

// Upsert 按 (member_id, month) 唯一键写入或覆盖快照
func (r *salaryRepo) Upsert(ctx context.Context, rec *model.SalaryRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "member_id"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"total_hours", "total_salary", "breakdown", "locked_at", "updated_at",
			}),
		}).
		Create(rec).Error
}

func (r *salaryRepo) GetByMemberAndMonth(ctx context.Context, memberID, month string) (*model.SalaryRecord, error) {
	var rec model.SalaryRecord
	err := r.db.WithContext(ctx).
		Preload("Member").
		Where("member_id = ? AND month = ?", memberID, month).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *salaryRepo) List(ctx context.Context, month string) ([]model.SalaryRecord, error) {
	var records []model.SalaryRecord
	db := r.db.WithContext(ctx).Preload("Member")
	if month != "" {
		db = db.Where("month = ?", month)
	}
	err := db.Order("month DESC, created_at DESC").Find(&records).Error
	return records, err
}
