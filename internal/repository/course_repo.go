package repository

import (
	"context"

	"gorm.io/gorm"

	"uniadmin/internal/model"
)

const (
	sqlInsertCourse  = `INSERT INTO course (course_id, department_id, name) VALUES (?, ?, ?)`
	sqlUpdateCourse  = `UPDATE course SET name = ? WHERE course_id = ? AND department_id = ?`
	sqlDeleteCourse  = `DELETE FROM course WHERE course_id = ? AND department_id = ?`
	sqlSelectCourse  = `SELECT course_id, department_id, name FROM course WHERE course_id = ? AND department_id = ?`
	sqlSelectCourses = `SELECT course_id, department_id, name FROM course ORDER BY department_id, course_id`
)

// CourseRepository 课程数据访问接口，课程以 (course_id, department_id) 定位
type CourseRepository interface {
	Create(ctx context.Context, c *model.Course) error
	Get(ctx context.Context, courseID, departmentID int64) (*model.Course, error)
	List(ctx context.Context) ([]model.Course, error)
	Update(ctx context.Context, c *model.Course) error
	Delete(ctx context.Context, courseID, departmentID int64) error
}

type courseRepo struct {
	db   *gorm.DB
	exec *Executor
}

// NewCourseRepo 创建 CourseRepository 实例
func NewCourseRepo(db *gorm.DB, exec *Executor) CourseRepository {
	return &courseRepo{db: db, exec: exec}
}

func (r *courseRepo) Create(ctx context.Context, c *model.Course) error {
	_, err := r.exec.Exec(ctx, sqlInsertCourse, c.CourseID, c.DepartmentID, c.Name)
	return err
}

func (r *courseRepo) Get(ctx context.Context, courseID, departmentID int64) (*model.Course, error) {
	var c model.Course
	if err := queryOne(ctx, r.db, &c, sqlSelectCourse, courseID, departmentID); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *courseRepo) List(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	err := queryAll(ctx, r.db, &courses, sqlSelectCourses)
	return courses, err
}

func (r *courseRepo) Update(ctx context.Context, c *model.Course) error {
	return mustAffect(r.exec.Exec(ctx, sqlUpdateCourse, c.Name, c.CourseID, c.DepartmentID))
}

func (r *courseRepo) Delete(ctx context.Context, courseID, departmentID int64) error {
	return mustAffect(r.exec.Exec(ctx, sqlDeleteCourse, courseID, departmentID))
}
