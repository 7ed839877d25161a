package repository

import (
	"context"

	"gorm.io/gorm"

	"uniadmin/internal/model"
)

const (
	enrollmentColumns = `student_id, course_id, department_id, enrollment_date`

	sqlInsertEnrollment = `INSERT INTO enrollment (` + enrollmentColumns + `)
		VALUES (?, ?, ?, COALESCE(?::date, CURRENT_DATE))`
	sqlUpdateEnrollment = `UPDATE enrollment
		SET department_id = ?, enrollment_date = COALESCE(?::date, enrollment_date)
		WHERE student_id = ? AND course_id = ?`
	sqlDeleteEnrollment  = `DELETE FROM enrollment WHERE student_id = ? AND course_id = ?`
	sqlSelectEnrollment  = `SELECT ` + enrollmentColumns + ` FROM enrollment WHERE student_id = ? AND course_id = ?`
	sqlSelectEnrollments = `SELECT ` + enrollmentColumns + ` FROM enrollment ORDER BY student_id, course_id`
)

// EnrollmentRepository 选课数据访问接口，以 (student_id, course_id) 定位
// enrollment_date 为零值时：新增取 CURRENT_DATE，更新保留原值
type EnrollmentRepository interface {
	Create(ctx context.Context, e *model.Enrollment) error
	Get(ctx context.Context, studentID, courseID int64) (*model.Enrollment, error)
	List(ctx context.Context) ([]model.Enrollment, error)
	Update(ctx context.Context, e *model.Enrollment) error
	Delete(ctx context.Context, studentID, courseID int64) error
}

type enrollmentRepo struct {
	db   *gorm.DB
	exec *Executor
}

// NewEnrollmentRepo 创建 EnrollmentRepository 实例
func NewEnrollmentRepo(db *gorm.DB, exec *Executor) EnrollmentRepository {
	return &enrollmentRepo{db: db, exec: exec}
}

func (r *enrollmentRepo) Create(ctx context.Context, e *model.Enrollment) error {
	_, err := r.exec.Exec(ctx, sqlInsertEnrollment, e.StudentID, e.CourseID, e.DepartmentID, dateArg(e.EnrollmentDate))
	return err
}

func (r *enrollmentRepo) Get(ctx context.Context, studentID, courseID int64) (*model.Enrollment, error) {
	var e model.Enrollment
	if err := queryOne(ctx, r.db, &e, sqlSelectEnrollment, studentID, courseID); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *enrollmentRepo) List(ctx context.Context) ([]model.Enrollment, error) {
	var list []model.Enrollment
	err := queryAll(ctx, r.db, &list, sqlSelectEnrollments)
	return list, err
}

func (r *enrollmentRepo) Update(ctx context.Context, e *model.Enrollment) error {
	return mustAffect(r.exec.Exec(ctx, sqlUpdateEnrollment, e.DepartmentID, dateArg(e.EnrollmentDate), e.StudentID, e.CourseID))
}

func (r *enrollmentRepo) Delete(ctx context.Context, studentID, courseID int64) error {
	return mustAffect(r.exec.Exec(ctx, sqlDeleteEnrollment, studentID, courseID))
}
