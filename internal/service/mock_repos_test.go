package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"uniadmin/internal/model"
	"uniadmin/internal/repository"
	pkgerrors "uniadmin/pkg/errors"
)

// ── 模拟触发器写入的审计日志 ──

type mockAuditRepo struct {
	logs   []model.AuditLog
	nextID int64
	err    error
}

func newMockAuditRepo() *mockAuditRepo {
	return &mockAuditRepo{nextID: 1}
}

func (m *mockAuditRepo) record(op, table string) {
	desc := table + ": {}"
	m.logs = append(m.logs, model.AuditLog{
		AuditID:     m.nextID,
		Operation:   op,
		Timestamp:   time.Now(),
		User:        "uniadmin",
		Description: &desc,
	})
	m.nextID++
}

func (m *mockAuditRepo) List(_ context.Context, limit int) ([]model.AuditLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]model.AuditLog, 0, len(m.logs))
	for i := len(m.logs) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, m.logs[i])
	}
	return result, nil
}

// pgError 构造与驱动一致的已分类错误
func pgError(code, msg string) error {
	return pkgerrors.Classify(&pgconn.PgError{Code: code, Message: msg})
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students map[int64]*model.Student
	audit    *mockAuditRepo
}

func newMockStudentRepo(audit *mockAuditRepo) *mockStudentRepo {
	return &mockStudentRepo{students: make(map[int64]*model.Student), audit: audit}
}

func (m *mockStudentRepo) Create(_ context.Context, s *model.Student) error {
	if _, ok := m.students[s.StudentID]; ok {
		return pgError("23505", `duplicate key value violates unique constraint "student_pkey"`)
	}
	cp := *s
	m.students[s.StudentID] = &cp
	m.audit.record("INSERT", "student")
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id int64) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) List(_ context.Context) ([]model.Student, error) {
	result := make([]model.Student, 0, len(m.students))
	for _, s := range m.students {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StudentID < result[j].StudentID })
	return result, nil
}

func (m *mockStudentRepo) Update(_ context.Context, s *model.Student) error {
	if _, ok := m.students[s.StudentID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *s
	m.students[s.StudentID] = &cp
	m.audit.record("UPDATE", "student")
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.students[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.students, id)
	m.audit.record("DELETE", "student")
	return nil
}

// ── Mock DepartmentRepository ──

type mockDeptRepo struct {
	depts map[int64]*model.Department
	// referenced 模拟仍被教师/课程引用的院系
	referenced map[int64]bool
	audit      *mockAuditRepo
}

func newMockDeptRepo(audit *mockAuditRepo) *mockDeptRepo {
	return &mockDeptRepo{
		depts: map[int64]*model.Department{
			1: {DepartmentID: 1, Name: "Informatics"},
		},
		referenced: make(map[int64]bool),
		audit:      audit,
	}
}

func (m *mockDeptRepo) Create(_ context.Context, d *model.Department) error {
	if _, ok := m.depts[d.DepartmentID]; ok {
		return pgError("23505", `duplicate key value violates unique constraint "department_pkey"`)
	}
	cp := *d
	m.depts[d.DepartmentID] = &cp
	m.audit.record("INSERT", "department")
	return nil
}

func (m *mockDeptRepo) GetByID(_ context.Context, id int64) (*model.Department, error) {
	if d, ok := m.depts[id]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDeptRepo) List(_ context.Context) ([]model.Department, error) {
	result := make([]model.Department, 0, len(m.depts))
	for _, d := range m.depts {
		result = append(result, *d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DepartmentID < result[j].DepartmentID })
	return result, nil
}

func (m *mockDeptRepo) Update(_ context.Context, d *model.Department) error {
	existing, ok := m.depts[d.DepartmentID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	existing.Name = d.Name
	m.audit.record("UPDATE", "department")
	return nil
}

func (m *mockDeptRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.depts[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	if m.referenced[id] {
		return pgError("23503", `update or delete on table "department" violates foreign key constraint "instructor_department_id_fkey" on table "instructor"`)
	}
	delete(m.depts, id)
	m.audit.record("DELETE", "department")
	return nil
}

// ── Mock ReservationRepository ──

type mockReservationRepo struct {
	reservations map[int64]*model.Reservation
	instructors  map[int64]bool
	nextID       int64
	audit        *mockAuditRepo
}

func newMockReservationRepo(audit *mockAuditRepo) *mockReservationRepo {
	return &mockReservationRepo{
		reservations: make(map[int64]*model.Reservation),
		instructors:  map[int64]bool{1: true},
		nextID:       1,
		audit:        audit,
	}
}

func (m *mockReservationRepo) Create(_ context.Context, r *model.Reservation) error {
	if !m.instructors[r.InstructorID] {
		return pgError("23503", fmt.Sprintf(
			`insert or update on table "reservation" violates foreign key constraint "reservation_instructor_id_fkey" (instructor_id=%d)`, r.InstructorID))
	}
	r.ReservationID = m.nextID
	m.nextID++
	cp := *r
	m.reservations[r.ReservationID] = &cp
	m.audit.record("INSERT", "reservation")
	return nil
}

func (m *mockReservationRepo) GetByID(_ context.Context, id int64) (*model.Reservation, error) {
	if r, ok := m.reservations[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockReservationRepo) List(_ context.Context) ([]model.Reservation, error) {
	result := make([]model.Reservation, 0, len(m.reservations))
	for _, r := range m.reservations {
		result = append(result, *r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ReservDate.After(result[j].ReservDate) })
	return result, nil
}

func (m *mockReservationRepo) Update(_ context.Context, r *model.Reservation) error {
	if _, ok := m.reservations[r.ReservationID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *r
	m.reservations[r.ReservationID] = &cp
	m.audit.record("UPDATE", "reservation")
	return nil
}

func (m *mockReservationRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.reservations[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.reservations, id)
	m.audit.record("DELETE", "reservation")
	return nil
}

// ── Mock MarkRepository ──

type mockMarkRepo struct {
	marks  []model.Mark
	nextID int64
	err    error
	audit  *mockAuditRepo
}

func newMockMarkRepo(audit *mockAuditRepo) *mockMarkRepo {
	return &mockMarkRepo{nextID: 1, audit: audit}
}

func (m *mockMarkRepo) Create(_ context.Context, mk *model.Mark) error {
	mk.MarkID = m.nextID
	m.nextID++
	m.marks = append(m.marks, *mk)
	m.audit.record("INSERT", "marks")
	return nil
}

func (m *mockMarkRepo) GetByID(_ context.Context, id int64) (*model.Mark, error) {
	for i := range m.marks {
		if m.marks[i].MarkID == id {
			cp := m.marks[i]
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMarkRepo) List(_ context.Context) ([]model.Mark, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]model.Mark(nil), m.marks...), nil
}

func (m *mockMarkRepo) Update(_ context.Context, mk *model.Mark) error {
	for i := range m.marks {
		if m.marks[i].MarkID == mk.MarkID {
			m.marks[i].MarkValue = mk.MarkValue
			m.audit.record("UPDATE", "marks")
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockMarkRepo) Delete(_ context.Context, id int64) error {
	for i := range m.marks {
		if m.marks[i].MarkID == id {
			m.marks = append(m.marks[:i], m.marks[i+1:]...)
			m.audit.record("DELETE", "marks")
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ── Mock InstructorRepository ──

type mockInstructorRepo struct {
	instructors map[int64]*model.Instructor
	departments map[int64]bool
	audit       *mockAuditRepo
}

func newMockInstructorRepo(audit *mockAuditRepo) *mockInstructorRepo {
	return &mockInstructorRepo{
		instructors: make(map[int64]*model.Instructor),
		departments: map[int64]bool{1: true},
		audit:       audit,
	}
}

func (m *mockInstructorRepo) Create(_ context.Context, ins *model.Instructor) error {
	if _, ok := m.instructors[ins.InstructorID]; ok {
		return pgError("23505", `duplicate key value violates unique constraint "instructor_pkey"`)
	}
	if !m.departments[ins.DepartmentID] {
		return pgError("23503", `insert or update on table "instructor" violates foreign key constraint "instructor_department_id_fkey"`)
	}
	cp := *ins
	m.instructors[ins.InstructorID] = &cp
	m.audit.record("INSERT", "instructor")
	return nil
}

func (m *mockInstructorRepo) GetByID(_ context.Context, id int64) (*model.Instructor, error) {
	if ins, ok := m.instructors[id]; ok {
		cp := *ins
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInstructorRepo) List(_ context.Context) ([]model.Instructor, error) {
	result := make([]model.Instructor, 0, len(m.instructors))
	for _, ins := range m.instructors {
		result = append(result, *ins)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].InstructorID < result[j].InstructorID })
	return result, nil
}

func (m *mockInstructorRepo) Update(_ context.Context, ins *model.Instructor) error {
	if _, ok := m.instructors[ins.InstructorID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *ins
	m.instructors[ins.InstructorID] = &cp
	m.audit.record("UPDATE", "instructor")
	return nil
}

func (m *mockInstructorRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.instructors[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.instructors, id)
	m.audit.record("DELETE", "instructor")
	return nil
}

// ── Mock CourseRepository ──

type courseKey struct{ courseID, departmentID int64 }

type mockCourseRepo struct {
	courses map[courseKey]*model.Course
	audit   *mockAuditRepo
}

func newMockCourseRepo(audit *mockAuditRepo) *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[courseKey]*model.Course), audit: audit}
}

func (m *mockCourseRepo) Create(_ context.Context, c *model.Course) error {
	for k := range m.courses {
		if k.courseID == c.CourseID {
			return pgError("23505", `duplicate key value violates unique constraint "course_course_id_key"`)
		}
	}
	cp := *c
	m.courses[courseKey{c.CourseID, c.DepartmentID}] = &cp
	m.audit.record("INSERT", "course")
	return nil
}

func (m *mockCourseRepo) Get(_ context.Context, courseID, departmentID int64) (*model.Course, error) {
	if c, ok := m.courses[courseKey{courseID, departmentID}]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) List(_ context.Context) ([]model.Course, error) {
	result := make([]model.Course, 0, len(m.courses))
	for _, c := range m.courses {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].DepartmentID != result[j].DepartmentID {
			return result[i].DepartmentID < result[j].DepartmentID
		}
		return result[i].CourseID < result[j].CourseID
	})
	return result, nil
}

func (m *mockCourseRepo) Update(_ context.Context, c *model.Course) error {
	existing, ok := m.courses[courseKey{c.CourseID, c.DepartmentID}]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	existing.Name = c.Name
	m.audit.record("UPDATE", "course")
	return nil
}

func (m *mockCourseRepo) Delete(_ context.Context, courseID, departmentID int64) error {
	key := courseKey{courseID, departmentID}
	if _, ok := m.courses[key]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.courses, key)
	m.audit.record("DELETE", "course")
	return nil
}

// ── Mock RoomRepository ──

type mockRoomRepo struct {
	rooms map[string]*model.Room
	audit *mockAuditRepo
	// updates 记录每次 UPDATE 写入的容量
	updates []int
}

func newMockRoomRepo(audit *mockAuditRepo) *mockRoomRepo {
	return &mockRoomRepo{rooms: make(map[string]*model.Room), audit: audit}
}

func roomKey(building, roomNo string) string {
	return building + "/" + roomNo
}

func (m *mockRoomRepo) Create(_ context.Context, room *model.Room) error {
	key := roomKey(room.Building, room.RoomNo)
	if _, ok := m.rooms[key]; ok {
		return pgError("23505", `duplicate key value violates unique constraint "room_pkey"`)
	}
	if room.Capacity < 0 {
		return pgError("23514", `new row for relation "room" violates check constraint "room_capacity_check"`)
	}
	cp := *room
	m.rooms[key] = &cp
	m.audit.record("INSERT", "room")
	return nil
}

func (m *mockRoomRepo) Get(_ context.Context, building, roomNo string) (*model.Room, error) {
	if r, ok := m.rooms[roomKey(building, roomNo)]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoomRepo) List(_ context.Context) ([]model.Room, error) {
	result := make([]model.Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		result = append(result, *r)
	}
	sort.Slice(result, func(i, j int) bool {
		return roomKey(result[i].Building, result[i].RoomNo) < roomKey(result[j].Building, result[j].RoomNo)
	})
	return result, nil
}

func (m *mockRoomRepo) Update(_ context.Context, room *model.Room) error {
	existing, ok := m.rooms[roomKey(room.Building, room.RoomNo)]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	m.updates = append(m.updates, room.Capacity)
	existing.Capacity = room.Capacity
	m.audit.record("UPDATE", "room")
	return nil
}

func (m *mockRoomRepo) Delete(_ context.Context, building, roomNo string) error {
	key := roomKey(building, roomNo)
	if _, ok := m.rooms[key]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.rooms, key)
	m.audit.record("DELETE", "room")
	return nil
}

// ── 模拟数据库当天日期 ──

var mockToday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

// ── Mock EnrollmentRepository ──
// 零值日期：新增取 mockToday，更新保留原值，与 COALESCE 语句一致

type enrollmentKey struct{ studentID, courseID int64 }

type mockEnrollmentRepo struct {
	enrollments map[enrollmentKey]*model.Enrollment
	audit       *mockAuditRepo
}

func newMockEnrollmentRepo(audit *mockAuditRepo) *mockEnrollmentRepo {
	return &mockEnrollmentRepo{enrollments: make(map[enrollmentKey]*model.Enrollment), audit: audit}
}

func (m *mockEnrollmentRepo) Create(_ context.Context, e *model.Enrollment) error {
	key := enrollmentKey{e.StudentID, e.CourseID}
	if _, ok := m.enrollments[key]; ok {
		return pgError("23505", `duplicate key value violates unique constraint "enrollment_pkey"`)
	}
	cp := *e
	if cp.EnrollmentDate.IsZero() {
		cp.EnrollmentDate = mockToday
	}
	m.enrollments[key] = &cp
	m.audit.record("INSERT", "enrollment")
	return nil
}

func (m *mockEnrollmentRepo) Get(_ context.Context, studentID, courseID int64) (*model.Enrollment, error) {
	if e, ok := m.enrollments[enrollmentKey{studentID, courseID}]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEnrollmentRepo) List(_ context.Context) ([]model.Enrollment, error) {
	result := make([]model.Enrollment, 0, len(m.enrollments))
	for _, e := range m.enrollments {
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].StudentID != result[j].StudentID {
			return result[i].StudentID < result[j].StudentID
		}
		return result[i].CourseID < result[j].CourseID
	})
	return result, nil
}

func (m *mockEnrollmentRepo) Update(_ context.Context, e *model.Enrollment) error {
	existing, ok := m.enrollments[enrollmentKey{e.StudentID, e.CourseID}]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	existing.DepartmentID = e.DepartmentID
	if !e.EnrollmentDate.IsZero() {
		existing.EnrollmentDate = e.EnrollmentDate
	}
	m.audit.record("UPDATE", "enrollment")
	return nil
}

func (m *mockEnrollmentRepo) Delete(_ context.Context, studentID, courseID int64) error {
	key := enrollmentKey{studentID, courseID}
	if _, ok := m.enrollments[key]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.enrollments, key)
	m.audit.record("DELETE", "enrollment")
	return nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	records map[int64]*model.Attendance
	nextID  int64
	audit   *mockAuditRepo
}

func newMockAttendanceRepo(audit *mockAuditRepo) *mockAttendanceRepo {
	return &mockAttendanceRepo{records: make(map[int64]*model.Attendance), nextID: 1, audit: audit}
}

func (m *mockAttendanceRepo) Create(_ context.Context, a *model.Attendance) error {
	switch a.Status {
	case "Present", "Absent", "Late":
	default:
		return pgError("23514", `new row for relation "attendance" violates check constraint "attendance_status_check"`)
	}
	a.AttendanceID = m.nextID
	m.nextID++
	cp := *a
	if cp.AttendanceDate.IsZero() {
		cp.AttendanceDate = mockToday
	}
	m.records[a.AttendanceID] = &cp
	m.audit.record("INSERT", "attendance")
	return nil
}

func (m *mockAttendanceRepo) GetByID(_ context.Context, id int64) (*model.Attendance, error) {
	if a, ok := m.records[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendanceRepo) List(_ context.Context) ([]model.Attendance, error) {
	result := make([]model.Attendance, 0, len(m.records))
	for _, a := range m.records {
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].AttendanceID > result[j].AttendanceID })
	return result, nil
}

func (m *mockAttendanceRepo) Update(_ context.Context, a *model.Attendance) error {
	existing, ok := m.records[a.AttendanceID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	existing.Status = a.Status
	if !a.AttendanceDate.IsZero() {
		existing.AttendanceDate = a.AttendanceDate
	}
	m.audit.record("UPDATE", "attendance")
	return nil
}

func (m *mockAttendanceRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.records[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.records, id)
	m.audit.record("DELETE", "attendance")
	return nil
}

// ── Mock ReportRepository ──

type mockReportRepo struct {
	calls     int
	lastQuery string
	lastArgs  []interface{}
	result    *repository.ResultSet
	err       error
}

func (m *mockReportRepo) Run(_ context.Context, stmt string, args ...interface{}) (*repository.ResultSet, error) {
	m.calls++
	m.lastQuery = stmt
	m.lastArgs = args
	if m.err != nil {
		return nil, m.err
	}
	if m.result == nil {
		return &repository.ResultSet{Columns: []string{}, Rows: [][]interface{}{}}, nil
	}
	return m.result, nil
}

// ── 测试聚合 ──

type mockRepos struct {
	audit       *mockAuditRepo
	student     *mockStudentRepo
	instructor  *mockInstructorRepo
	department  *mockDeptRepo
	course      *mockCourseRepo
	room        *mockRoomRepo
	reservation *mockReservationRepo
	enrollment  *mockEnrollmentRepo
	mark        *mockMarkRepo
	attendance  *mockAttendanceRepo
	report      *mockReportRepo
}

func newMockRepository() (*repository.Repository, *mockRepos) {
	audit := newMockAuditRepo()
	m := &mockRepos{
		audit:       audit,
		student:     newMockStudentRepo(audit),
		instructor:  newMockInstructorRepo(audit),
		department:  newMockDeptRepo(audit),
		course:      newMockCourseRepo(audit),
		room:        newMockRoomRepo(audit),
		reservation: newMockReservationRepo(audit),
		enrollment:  newMockEnrollmentRepo(audit),
		mark:        newMockMarkRepo(audit),
		attendance:  newMockAttendanceRepo(audit),
		report:      &mockReportRepo{},
	}
	repo := &repository.Repository{
		Student:     m.student,
		Instructor:  m.instructor,
		Department:  m.department,
		Course:      m.course,
		Room:        m.room,
		Reservation: m.reservation,
		Enrollment:  m.enrollment,
		Mark:        m.mark,
		Attendance:  m.attendance,
		Audit:       audit,
		Report:      m.report,
	}
	return repo, m
}
