package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/VEXUM-ai/shift-management-app-sub000/internal/model"
)

// AttendanceRepository 考勤数据访问接口
type AttendanceRepository interface {
	Create(ctx context.Context, rec *model.AttendanceRecord) error
	GetByID(ctx context.Context, id string) (*model.AttendanceRecord, error)
	GetOpenByMemberAndDate(ctx context.Context, memberID, workDate string) (*model.AttendanceRecord, error)
	List(ctx context.Context, memberID, month string) ([]model.AttendanceRecord, error)
	ListClosedByMemberAndMonth(ctx context.Context, memberID, month string) ([]model.AttendanceRecord, error)
	Update(ctx context.Context, rec *model.AttendanceRecord) error
	Delete(ctx context.Context, id string) error
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo 创建 AttendanceRepository 实例
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Create(ctx context.Context, rec *model.AttendanceRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *attendanceRepo) GetByID(ctx context.Context, id string) (*model.AttendanceRecord, error) {
	var rec model.AttendanceRecord
	err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Location").
		Where("attendance_id = ?", id).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetOpenByMemberAndDate 查询某成员某天的未下班记录
func (r *attendanceRepo) GetOpenByMemberAndDate(ctx context.Context, memberID, workDate string) (*model.AttendanceRecord, error) {
	var rec model.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("member_id = ? AND work_date = ? AND clock_out IS NULL", memberID, workDate).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// List 按日期倒序、打卡时间倒序返回记录；member/month 为空时不过滤
func (r *attendanceRepo) List(ctx context.Context, memberID, month string) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	db := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Location")

	if memberID != "" {
		db = db.Where("member_id = ?", memberID)
	}
	if month != "" {
		db = db.Where("work_date LIKE ?", month+"%")
	}

	err := db.Order("work_date DESC, clock_in DESC").Find(&records).Error
	return records, err
}

// ListClosedByMemberAndMonth 返回工资计算的输入集：已下班且工时已派生的记录
func (r *attendanceRepo) ListClosedByMemberAndMonth(ctx context.Context, memberID, month string) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.db.WithContext(ctx).
		Preload("Location").
		Where("member_id = ? AND work_date LIKE ? AND total_hours IS NOT NULL", memberID, month+"%").
		Order("work_date ASC, clock_in ASC").
		Find(&records).Error
	return records, err
}

func (r *attendanceRepo) Update(ctx context.Context, rec *model.AttendanceRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *attendanceRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("attendance_id = ?", id).
		Delete(&model.AttendanceRecord{}).Error
}
