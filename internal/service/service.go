package service

import (
	"go.uber.org/zap"

	"uniadmin/config"
	"uniadmin/internal/repository"
	"uniadmin/pkg/jwt"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth        AuthService
	Student     StudentService
	Instructor  InstructorService
	Department  DepartmentService
	Course      CourseService
	Room        RoomService
	Reservation ReservationService
	Enrollment  EnrollmentService
	Mark        MarkService
	Attendance  AttendanceService
	Audit       AuditService
	Report      ReportService
	Grading     GradingService
	Export      ExportService
}

// NewService 创建 Service 聚合，blacklist 可为 nil（Redis 不可用时降级）
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	blacklist TokenBlacklist,
	logger *zap.Logger,
) *Service {
	auditLimit := cfg.Audit.DefaultLimit

	report := NewReportService(repo, cfg.Grading.PassThreshold, logger)
	grading := NewGradingService(repo, cfg.Grading.PassThreshold, logger)

	return &Service{
		Auth:        NewAuthService(&cfg.Auth, jwtMgr, blacklist, logger),
		Student:     NewStudentService(repo, auditLimit, logger),
		Instructor:  NewInstructorService(repo, auditLimit, logger),
		Department:  NewDepartmentService(repo, auditLimit, logger),
		Course:      NewCourseService(repo, auditLimit, logger),
		Room:        NewRoomService(repo, auditLimit, logger),
		Reservation: NewReservationService(repo, auditLimit, logger),
		Enrollment:  NewEnrollmentService(repo, auditLimit, logger),
		Mark:        NewMarkService(repo, auditLimit, logger),
		Attendance:  NewAttendanceService(repo, auditLimit, logger),
		Audit:       NewAuditService(repo, cfg.Audit, logger),
		Report:      report,
		Grading:     grading,
		Export:      NewExportService(repo, report, grading, logger),
	}
}
