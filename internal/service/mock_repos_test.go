package service

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/VEXUM-ai/shift-management-app-sub000/internal/model"
)

// ── Mock MemberRepository ──

type mockMemberRepo struct {
	members map[string]*model.Member
}

func newMockMemberRepo() *mockMemberRepo {
	return &mockMemberRepo{members: make(map[string]*model.Member)}
}

func (m *mockMemberRepo) Create(_ context.Context, member *model.Member) error {
	if member.MemberID == "" {
		member.MemberID = "mem-" + member.Name
	}
	m.members[member.MemberID] = member
	return nil
}

func (m *mockMemberRepo) GetByID(_ context.Context, id string) (*model.Member, error) {
	if member, ok := m.members[id]; ok {
		return member, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMemberRepo) List(_ context.Context) ([]model.Member, error) {
	var result []model.Member
	for _, member := range m.members {
		result = append(result, *member)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockMemberRepo) Update(_ context.Context, member *model.Member) error {
	m.members[member.MemberID] = member
	return nil
}

func (m *mockMemberRepo) Delete(_ context.Context, id string) error {
	delete(m.members, id)
	return nil
}

// ── Mock LocationRepository ──

type mockLocationRepo struct {
	locations map[string]*model.Location
}

func newMockLocationRepo() *mockLocationRepo {
	return &mockLocationRepo{locations: make(map[string]*model.Location)}
}

func (m *mockLocationRepo) Create(_ context.Context, loc *model.Location) error {
	if loc.LocationID == "" {
		loc.LocationID = "loc-" + loc.Name
	}
	m.locations[loc.LocationID] = loc
	return nil
}

func (m *mockLocationRepo) GetByID(_ context.Context, id string) (*model.Location, error) {
	if loc, ok := m.locations[id]; ok {
		return loc, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLocationRepo) List(_ context.Context) ([]model.Location, error) {
	var result []model.Location
	for _, loc := range m.locations {
		result = append(result, *loc)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockLocationRepo) Update(_ context.Context, loc *model.Location) error {
	m.locations[loc.LocationID] = loc
	return nil
}

func (m *mockLocationRepo) Delete(_ context.Context, id string) error {
	delete(m.locations, id)
	return nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	records   map[string]*model.AttendanceRecord
	members   *mockMemberRepo
	locations *mockLocationRepo
}

func newMockAttendanceRepo(members *mockMemberRepo, locations *mockLocationRepo) *mockAttendanceRepo {
	return &mockAttendanceRepo{
		records:   make(map[string]*model.AttendanceRecord),
		members:   members,
		locations: locations,
	}
}

// attach 仿真 gorm Preload：按外键补齐关联对象
func (m *mockAttendanceRepo) attach(rec model.AttendanceRecord) model.AttendanceRecord {
	if m.members != nil {
		if member, ok := m.members.members[rec.MemberID]; ok {
			rec.Member = member
		}
	}
	if m.locations != nil && rec.LocationID != nil {
		if loc, ok := m.locations.locations[*rec.LocationID]; ok {
			rec.Location = loc
		}
	}
	return rec
}

func (m *mockAttendanceRepo) Create(_ context.Context, rec *model.AttendanceRecord) error {
	if rec.AttendanceID == "" {
		rec.AttendanceID = "att-" + rec.MemberID + "-" + rec.WorkDate
	}
	m.records[rec.AttendanceID] = rec
	return nil
}

func (m *mockAttendanceRepo) GetByID(_ context.Context, id string) (*model.AttendanceRecord, error) {
	if rec, ok := m.records[id]; ok {
		out := m.attach(*rec)
		return &out, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendanceRepo) GetOpenByMemberAndDate(_ context.Context, memberID, workDate string) (*model.AttendanceRecord, error) {
	for _, rec := range m.records {
		if rec.MemberID == memberID && rec.WorkDate == workDate && rec.ClockOut == nil {
			return rec, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendanceRepo) List(_ context.Context, memberID, month string) ([]model.AttendanceRecord, error) {
	var result []model.AttendanceRecord
	for _, rec := range m.records {
		if memberID != "" && rec.MemberID != memberID {
			continue
		}
		if month != "" && !strings.HasPrefix(rec.WorkDate, month) {
			continue
		}
		result = append(result, m.attach(*rec))
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].WorkDate != result[j].WorkDate {
			return result[i].WorkDate > result[j].WorkDate
		}
		return result[i].ClockIn > result[j].ClockIn
	})
	return result, nil
}

func (m *mockAttendanceRepo) ListClosedByMemberAndMonth(_ context.Context, memberID, month string) ([]model.AttendanceRecord, error) {
	var result []model.AttendanceRecord
	for _, rec := range m.records {
		if rec.MemberID != memberID {
			continue
		}
		if !strings.HasPrefix(rec.WorkDate, month) {
			continue
		}
		if rec.TotalHours == nil {
			continue
		}
		result = append(result, m.attach(*rec))
	}
	return result, nil
}

func (m *mockAttendanceRepo) Update(_ context.Context, rec *model.AttendanceRecord) error {
	m.records[rec.AttendanceID] = rec
	return nil
}

func (m *mockAttendanceRepo) Delete(_ context.Context, id string) error {
	delete(m.records, id)
	return nil
}

// ── Mock ShiftRepository ──

type mockShiftRepo struct {
	shifts map[string]*model.ShiftRecord
}

func newMockShiftRepo() *mockShiftRepo {
	return &mockShiftRepo{shifts: make(map[string]*model.ShiftRecord)}
}

func (m *mockShiftRepo) Create(_ context.Context, s *model.ShiftRecord) error {
	if s.ShiftID == "" {
		s.ShiftID = "shift-" + s.MemberID + "-" + s.WorkDate
	}
	m.shifts[s.ShiftID] = s
	return nil
}

func (m *mockShiftRepo) GetByID(_ context.Context, id string) (*model.ShiftRecord, error) {
	if s, ok := m.shifts[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShiftRepo) List(_ context.Context, memberID, month, status string) ([]model.ShiftRecord, error) {
	var result []model.ShiftRecord
	for _, s := range m.shifts {
		if memberID != "" && s.MemberID != memberID {
			continue
		}
		if month != "" && !strings.HasPrefix(s.WorkDate, month) {
			continue
		}
		if status != "" && s.Status != status {
			continue
		}
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].WorkDate != result[j].WorkDate {
			return result[i].WorkDate < result[j].WorkDate
		}
		return result[i].StartTime < result[j].StartTime
	})
	return result, nil
}

func (m *mockShiftRepo) Update(_ context.Context, s *model.ShiftRecord) error {
	m.shifts[s.ShiftID] = s
	return nil
}

func (m *mockShiftRepo) Delete(_ context.Context, id string) error {
	delete(m.shifts, id)
	return nil
}

// ── Mock SalaryRepository ──

type mockSalaryRepo struct {
	records map[string]*model.SalaryRecord // member_id+month → record
}

func newMockSalaryRepo() *mockSalaryRepo {
	return &mockSalaryRepo{records: make(map[string]*model.SalaryRecord)}
}

func salaryKey(memberID, month string) string { return memberID + "|" + month }

func (m *mockSalaryRepo) Upsert(_ context.Context, rec *model.SalaryRecord) error {
	key := salaryKey(rec.MemberID, rec.Month)
	if existing, ok := m.records[key]; ok {
		rec.SalaryID = existing.SalaryID
	} else if rec.SalaryID == "" {
		rec.SalaryID = "sal-" + rec.MemberID + "-" + rec.Month
	}
	m.records[key] = rec
	return nil
}

func (m *mockSalaryRepo) GetByMemberAndMonth(_ context.Context, memberID, month string) (*model.SalaryRecord, error) {
	if rec, ok := m.records[salaryKey(memberID, month)]; ok {
		return rec, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSalaryRepo) List(_ context.Context, month string) ([]model.SalaryRecord, error) {
	var result []model.SalaryRecord
	for _, rec := range m.records {
		if month != "" && rec.Month != month {
			continue
		}
		result = append(result, *rec)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].MemberID < result[j].MemberID })
	return result, nil
}
