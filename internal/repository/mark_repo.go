package repository

import (
	"context"

	"gorm.io/gorm"

	"uniadmin/internal/model"
)

const (
	markColumns = `mark_id, student_id, course_id, department_id, mark_value`

	sqlInsertMark = `INSERT INTO marks (student_id, course_id, department_id, mark_value)
		VALUES (?, ?, ?, ?)
		RETURNING mark_id`
	sqlUpdateMark  = `UPDATE marks SET mark_value = ? WHERE mark_id = ?`
	sqlDeleteMark  = `DELETE FROM marks WHERE mark_id = ?`
	sqlSelectMark  = `SELECT ` + markColumns + ` FROM marks WHERE mark_id = ?`
	sqlSelectMarks = `SELECT ` + markColumns + ` FROM marks ORDER BY student_id, course_id, mark_id`
)

// MarkRepository 成绩数据访问接口
type MarkRepository interface {
	// Create 写入后回填数据库生成的 mark_id
	Create(ctx context.Context, m *model.Mark) error
	GetByID(ctx context.Context, id int64) (*model.Mark, error)
	List(ctx context.Context) ([]model.Mark, error)
	// Update 只修改分数
	Update(ctx context.Context, m *model.Mark) error
	Delete(ctx context.Context, id int64) error
}

type markRepo struct {
	db   *gorm.DB
	exec *Executor
}

// NewMarkRepo 创建 MarkRepository 实例
func NewMarkRepo(db *gorm.DB, exec *Executor) MarkRepository {
	return &markRepo{db: db, exec: exec}
}

func (r *markRepo) Create(ctx context.Context, m *model.Mark) error {
	return r.exec.ExecReturning(ctx, &m.MarkID, sqlInsertMark, m.StudentID, m.CourseID, m.DepartmentID, m.MarkValue)
}

func (r *markRepo) GetByID(ctx context.Context, id int64) (*model.Mark, error) {
	var m model.Mark
	if err := queryOne(ctx, r.db, &m, sqlSelectMark, id); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *markRepo) List(ctx context.Context) ([]model.Mark, error) {
	var marks []model.Mark
	err := queryAll(ctx, r.db, &marks, sqlSelectMarks)
	return marks, err
}

func (r *markRepo) Update(ctx context.Context, m *model.Mark) error {
	return mustAffect(r.exec.Exec(ctx, sqlUpdateMark, m.MarkValue, m.MarkID))
}

func (r *markRepo) Delete(ctx context.Context, id int64) error {
	return mustAffect(r.exec.Exec(ctx, sqlDeleteMark, id))
}
