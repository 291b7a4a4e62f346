package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/VEXUM-ai/shift-management-app-sub000/internal/model"
)

// MemberRepository 成员数据访问接口
type MemberRepository interface {
	Create(ctx context.Context, m *model.Member) error
	GetByID(ctx context.Context, id string) (*model.Member, error)
	List(ctx context.Context) ([]model.Member, error)
	Update(ctx context.Context, m *model.Member) error
	Delete(ctx context.Context, id string) error
}

type memberRepo struct {
	db *gorm.DB
}

// NewMemberRepo 创建 MemberRepository 实例
func NewMemberRepo(db *gorm.DB) MemberRepository {
	return &memberRepo{db: db}
}

func (r *memberRepo) Create(ctx context.Context, m *model.Member) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *memberRepo) GetByID(ctx context.Context, id string) (*model.Member, error) {
	var m model.Member
	err := r.db.WithContext(ctx).
		Where("member_id = ?", id).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *memberRepo) List(ctx context.Context) ([]model.Member, error) {
	var members []model.Member
	err := r.db.WithContext(ctx).Order("name ASC").Find(&members).Error
	return members, err
}

func (r *memberRepo) Update(ctx context.Context, m *model.Member) error {
	return r.db.WithContext(ctx).Save(m).Error
}

// Delete 物理删除成员；引用该成员的考勤/班次记录保留（历史行为）
func (r *memberRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("member_id = ?", id).
		Delete(&model.Member{}).Error
}
