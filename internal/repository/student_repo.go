package repository

import (
	"context"

	"gorm.io/gorm"

	"uniadmin/internal/model"
)

const (
	studentColumns = `student_id, first_name, last_name, dob, city, academic_group, section`

	sqlInsertStudent = `INSERT INTO student (` + studentColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	sqlUpdateStudent = `UPDATE student
		SET first_name = ?, last_name = ?, dob = ?, city = ?, academic_group = ?, section = ?
		WHERE student_id = ?`
	sqlDeleteStudent  = `DELETE FROM student WHERE student_id = ?`
	sqlSelectStudent  = `SELECT ` + studentColumns + ` FROM student WHERE student_id = ?`
	sqlSelectStudents = `SELECT ` + studentColumns + ` FROM student ORDER BY student_id`
)

// StudentRepository 学生数据访问接口
type StudentRepository interface {
	Create(ctx context.Context, s *model.Student) error
	GetByID(ctx context.Context, id int64) (*model.Student, error)
	List(ctx context.Context) ([]model.Student, error)
	Update(ctx context.Context, s *model.Student) error
	Delete(ctx context.Context, id int64) error
}

type studentRepo struct {
	db   *gorm.DB
	exec *Executor
}

// NewStudentRepo 创建 StudentRepository 实例
func NewStudentRepo(db *gorm.DB, exec *Executor) StudentRepository {
	return &studentRepo{db: db, exec: exec}
}

func (r *studentRepo) Create(ctx context.Context, s *model.Student) error {
	_, err := r.exec.Exec(ctx, sqlInsertStudent,
		s.StudentID, s.FirstName, s.LastName, s.DOB, s.City, s.AcademicGroup, s.Section)
	return err
}

func (r *studentRepo) GetByID(ctx context.Context, id int64) (*model.Student, error) {
	var s model.Student
	if err := queryOne(ctx, r.db, &s, sqlSelectStudent, id); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *studentRepo) List(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	err := queryAll(ctx, r.db, &students, sqlSelectStudents)
	return students, err
}

func (r *studentRepo) Update(ctx context.Context, s *model.Student) error {
	return mustAffect(r.exec.Exec(ctx, sqlUpdateStudent,
		s.FirstName, s.LastName, s.DOB, s.City, s.AcademicGroup, s.Section, s.StudentID))
}

func (r *studentRepo) Delete(ctx context.Context, id int64) error {
	return mustAffect(r.exec.Exec(ctx, sqlDeleteStudent, id))
}
