package repository

import (
	"context"

	"gorm.io/gorm"

	"uniadmin/internal/model"
)

const (
	attendanceColumns = `attendance_id, student_id, course_id, attendance_date, status`

	sqlInsertAttendance = `INSERT INTO attendance (student_id, course_id, attendance_date, status)
		VALUES (?, ?, COALESCE(?::date, CURRENT_DATE), ?)
		RETURNING attendance_id`
	sqlUpdateAttendance = `UPDATE attendance
		SET attendance_date = COALESCE(?::date, attendance_date), status = ? WHERE attendance_id = ?`
	sqlDeleteAttendance = `DELETE FROM attendance WHERE attendance_id = ?`
	sqlSelectAttendance = `SELECT ` + attendanceColumns + ` FROM attendance WHERE attendance_id = ?`
	sqlListAttendance   = `SELECT ` + attendanceColumns + ` FROM attendance ORDER BY attendance_date DESC, attendance_id DESC`
)

// AttendanceRepository 考勤数据访问接口
// attendance_date 为零值时：新增取 CURRENT_DATE，更新保留原值
type AttendanceRepository interface {
	// Create 写入后回填数据库生成的 attendance_id
	Create(ctx context.Context, a *model.Attendance) error
	GetByID(ctx context.Context, id int64) (*model.Attendance, error)
	List(ctx context.Context) ([]model.Attendance, error)
	Update(ctx context.Context, a *model.Attendance) error
	Delete(ctx context.Context, id int64) error
}

type attendanceRepo struct {
	db   *gorm.DB
	exec *Executor
}

// NewAttendanceRepo 创建 AttendanceRepository 实例
func NewAttendanceRepo(db *gorm.DB, exec *Executor) AttendanceRepository {
	return &attendanceRepo{db: db, exec: exec}
}

func (r *attendanceRepo) Create(ctx context.Context, a *model.Attendance) error {
	return r.exec.ExecReturning(ctx, &a.AttendanceID, sqlInsertAttendance,
		a.StudentID, a.CourseID, dateArg(a.AttendanceDate), a.Status)
}

func (r *attendanceRepo) GetByID(ctx context.Context, id int64) (*model.Attendance, error) {
	var a model.Attendance
	if err := queryOne(ctx, r.db, &a, sqlSelectAttendance, id); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *attendanceRepo) List(ctx context.Context) ([]model.Attendance, error) {
	var list []model.Attendance
	err := queryAll(ctx, r.db, &list, sqlListAttendance)
	return list, err
}

func (r *attendanceRepo) Update(ctx context.Context, a *model.Attendance) error {
	return mustAffect(r.exec.Exec(ctx, sqlUpdateAttendance, dateArg(a.AttendanceDate), a.Status, a.AttendanceID))
}

func (r *attendanceRepo) Delete(ctx context.Context, id int64) error {
	return mustAffect(r.exec.Exec(ctx, sqlDeleteAttendance, id))
}
