package handler

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"uniadmin/internal/service"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth        *AuthHandler
	Student     *StudentHandler
	Instructor  *InstructorHandler
	Department  *DepartmentHandler
	Course      *CourseHandler
	Room        *RoomHandler
	Reservation *ReservationHandler
	Enrollment  *EnrollmentHandler
	Mark        *MarkHandler
	Attendance  *AttendanceHandler
	Audit       *AuditHandler
	Report      *ReportHandler
	Grading     *GradingHandler
	Export      *ExportHandler
	Health      *HealthHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service, db *gorm.DB, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth),
		Student:     NewStudentHandler(svc.Student),
		Instructor:  NewInstructorHandler(svc.Instructor),
		Department:  NewDepartmentHandler(svc.Department),
		Course:      NewCourseHandler(svc.Course),
		Room:        NewRoomHandler(svc.Room),
		Reservation: NewReservationHandler(svc.Reservation),
		Enrollment:  NewEnrollmentHandler(svc.Enrollment),
		Mark:        NewMarkHandler(svc.Mark),
		Attendance:  NewAttendanceHandler(svc.Attendance),
		Audit:       NewAuditHandler(svc.Audit),
		Report:      NewReportHandler(svc.Report),
		Grading:     NewGradingHandler(svc.Grading),
		Export:      NewExportHandler(svc.Export),
		Health:      NewHealthHandler(db, logger),
	}
}
