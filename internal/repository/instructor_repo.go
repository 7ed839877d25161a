package repository

import (
	"context"

	"gorm.io/gorm"

	"uniadmin/internal/model"
)

const (
	instructorColumns = `instructor_id, first_name, last_name, rank, department_id`

	sqlInsertInstructor = `INSERT INTO instructor (` + instructorColumns + `) VALUES (?, ?, ?, ?, ?)`
	sqlUpdateInstructor = `UPDATE instructor
		SET first_name = ?, last_name = ?, rank = ?, department_id = ?
		WHERE instructor_id = ?`
	sqlDeleteInstructor  = `DELETE FROM instructor WHERE instructor_id = ?`
	sqlSelectInstructor  = `SELECT ` + instructorColumns + ` FROM instructor WHERE instructor_id = ?`
	sqlSelectInstructors = `SELECT ` + instructorColumns + ` FROM instructor ORDER BY instructor_id`
)

// InstructorRepository 教师数据访问接口
type InstructorRepository interface {
	Create(ctx context.Context, ins *model.Instructor) error
	GetByID(ctx context.Context, id int64) (*model.Instructor, error)
	List(ctx context.Context) ([]model.Instructor, error)
	Update(ctx context.Context, ins *model.Instructor) error
	Delete(ctx context.Context, id int64) error
}

type instructorRepo struct {
	db   *gorm.DB
	exec *Executor
}

// NewInstructorRepo 创建 InstructorRepository 实例
func NewInstructorRepo(db *gorm.DB, exec *Executor) InstructorRepository {
	return &instructorRepo{db: db, exec: exec}
}

func (r *instructorRepo) Create(ctx context.Context, ins *model.Instructor) error {
	_, err := r.exec.Exec(ctx, sqlInsertInstructor,
		ins.InstructorID, ins.FirstName, ins.LastName, ins.Rank, ins.DepartmentID)
	return err
}

func (r *instructorRepo) GetByID(ctx context.Context, id int64) (*model.Instructor, error) {
	var ins model.Instructor
	if err := queryOne(ctx, r.db, &ins, sqlSelectInstructor, id); err != nil {
		return nil, err
	}
	return &ins, nil
}

func (r *instructorRepo) List(ctx context.Context) ([]model.Instructor, error) {
	var list []model.Instructor
	err := queryAll(ctx, r.db, &list, sqlSelectInstructors)
	return list, err
}

func (r *instructorRepo) Update(ctx context.Context, ins *model.Instructor) error {
	return mustAffect(r.exec.Exec(ctx, sqlUpdateInstructor,
		ins.FirstName, ins.LastName, ins.Rank, ins.DepartmentID, ins.InstructorID))
}

func (r *instructorRepo) Delete(ctx context.Context, id int64) error {
	return mustAffect(r.exec.Exec(ctx, sqlDeleteInstructor, id))
}
