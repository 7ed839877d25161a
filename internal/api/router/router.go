package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"uniadmin/config"
	"uniadmin/internal/api/handler"
	"uniadmin/internal/api/middleware"
	"uniadmin/pkg/jwt"
	"uniadmin/pkg/metrics"
)

// Deps 路由依赖；Blacklist / Limiter 为 nil 时对应功能降级跳过
type Deps struct {
	JWT       *jwt.Manager
	Blacklist middleware.TokenBlacklist
	Limiter   middleware.RateLimiter
	Metrics   *metrics.Metrics
}

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, deps Deps, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	// ── 健康检查 ──
	r.GET("/health", h.Health.Health)
	r.GET("/health/db", h.Health.DB)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	v1.Use(middleware.BodyLimit(cfg.Server.BodyLimitBytes))
	v1.Use(middleware.RateLimit(deps.Limiter, cfg.Server.RateLimit, time.Minute, logger))
	{
		// 认证模块（无需认证）
		v1.POST("/auth/login", h.Auth.Login)

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(deps.JWT, deps.Blacklist, logger))
		authorized.Use(middleware.RoleAuth(jwt.RoleAdmin))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)

			// 学生
			students := authorized.Group("/students")
			{
				students.GET("", h.Student.ListStudents)
				students.POST("", h.Student.CreateStudent)
				students.POST("/import", h.Student.ImportStudents)
				students.GET("/:id", h.Student.GetStudent)
				students.PUT("/:id", h.Student.UpdateStudent)
				students.DELETE("/:id", h.Student.DeleteStudent)
			}

			// 教师
			instructors := authorized.Group("/instructors")
			{
				instructors.GET("", h.Instructor.ListInstructors)
				instructors.POST("", h.Instructor.CreateInstructor)
				instructors.GET("/:id", h.Instructor.GetInstructor)
				instructors.PUT("/:id", h.Instructor.UpdateInstructor)
				instructors.DELETE("/:id", h.Instructor.DeleteInstructor)
			}

			// 院系
			departments := authorized.Group("/departments")
			{
				departments.GET("", h.Department.ListDepartments)
				departments.POST("", h.Department.CreateDepartment)
				departments.GET("/:id", h.Department.GetDepartment)
				departments.PUT("/:id", h.Department.UpdateDepartment)
				departments.DELETE("/:id", h.Department.DeleteDepartment)
			}

			// 课程
			courses := authorized.Group("/courses")
			{
				courses.GET("", h.Course.ListCourses)
				courses.POST("", h.Course.CreateCourse)
				courses.GET("/:department_id/:course_id", h.Course.GetCourse)
				courses.PUT("/:department_id/:course_id", h.Course.UpdateCourse)
				courses.DELETE("/:department_id/:course_id", h.Course.DeleteCourse)
			}

			// 教室
			rooms := authorized.Group("/rooms")
			{
				rooms.GET("", h.Room.ListRooms)
				rooms.POST("", h.Room.CreateRoom)
				rooms.GET("/:building/:roomno", h.Room.GetRoom)
				rooms.PUT("/:building/:roomno", h.Room.UpdateRoom)
				rooms.DELETE("/:building/:roomno", h.Room.DeleteRoom)
			}

			// 教室预约
			reservations := authorized.Group("/reservations")
			{
				reservations.GET("", h.Reservation.ListReservations)
				reservations.POST("", h.Reservation.CreateReservation)
				reservations.GET("/:id", h.Reservation.GetReservation)
				reservations.PUT("/:id", h.Reservation.UpdateReservation)
				reservations.DELETE("/:id", h.Reservation.DeleteReservation)
			}

			// 选课
			enrollments := authorized.Group("/enrollments")
			{
				enrollments.GET("", h.Enrollment.ListEnrollments)
				enrollments.POST("", h.Enrollment.CreateEnrollment)
				enrollments.GET("/:student_id/:course_id", h.Enrollment.GetEnrollment)
				enrollments.PUT("/:student_id/:course_id", h.Enrollment.UpdateEnrollment)
				enrollments.DELETE("/:student_id/:course_id", h.Enrollment.DeleteEnrollment)
			}

			// 成绩
			marks := authorized.Group("/marks")
			{
				marks.GET("", h.Mark.ListMarks)
				marks.POST("", h.Mark.CreateMark)
				marks.GET("/:id", h.Mark.GetMark)
				marks.PUT("/:id", h.Mark.UpdateMark)
				marks.DELETE("/:id", h.Mark.DeleteMark)
			}

			// 考勤
			attendance := authorized.Group("/attendance")
			{
				attendance.GET("", h.Attendance.ListAttendance)
				attendance.POST("", h.Attendance.CreateAttendance)
				attendance.GET("/:id", h.Attendance.GetAttendance)
				attendance.PUT("/:id", h.Attendance.UpdateAttendance)
				attendance.DELETE("/:id", h.Attendance.DeleteAttendance)
			}

			// 审计、报表、成绩判定
			authorized.GET("/audit", h.Audit.ListAuditLogs)
			authorized.GET("/reports", h.Report.ListReports)
			authorized.GET("/reports/:name", h.Report.RunReport)
			authorized.GET("/grading", h.Grading.Grade)

			// 导出
			export := authorized.Group("/export")
			{
				export.GET("/reports/:name", h.Export.ExportReport)
				export.GET("/grading", h.Export.ExportGrading)
				export.GET("/reservations", h.Export.ExportReservations)
			}
		}
	}

	return r
}
