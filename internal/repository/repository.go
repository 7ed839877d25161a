package repository

import (
	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Student     StudentRepository
	Instructor  InstructorRepository
	Department  DepartmentRepository
	Course      CourseRepository
	Room        RoomRepository
	Reservation ReservationRepository
	Enrollment  EnrollmentRepository
	Mark        MarkRepository
	Attendance  AttendanceRepository
	Audit       AuditRepository
	Report      ReportRepository

	observer StatementObserver
}

// Option Repository 构造选项
type Option func(*Repository)

// WithStatementObserver 为写操作执行器挂载观测器
func WithStatementObserver(obs StatementObserver) Option {
	return func(r *Repository) {
		r.observer = obs
	}
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB, opts ...Option) *Repository {
	r := &Repository{}
	for _, opt := range opts {
		opt(r)
	}

	exec := NewExecutor(db, r.observer)
	r.Student = NewStudentRepo(db, exec)
	r.Instructor = NewInstructorRepo(db, exec)
	r.Department = NewDepartmentRepo(db, exec)
	r.Course = NewCourseRepo(db, exec)
	r.Room = NewRoomRepo(db, exec)
	r.Reservation = NewReservationRepo(db, exec)
	r.Enrollment = NewEnrollmentRepo(db, exec)
	r.Mark = NewMarkRepo(db, exec)
	r.Attendance = NewAttendanceRepo(db, exec)
	r.Audit = NewAuditRepo(db)
	r.Report = NewReportRepo(db)
	return r
}
