package repository

import (
	"context"

	"gorm.io/gorm"

	"uniadmin/internal/model"
)

const (
	sqlInsertDepartment  = `INSERT INTO department (department_id, name) VALUES (?, ?)`
	sqlUpdateDepartment  = `UPDATE department SET name = ? WHERE department_id = ?`
	sqlDeleteDepartment  = `DELETE FROM department WHERE department_id = ?`
	sqlSelectDepartment  = `SELECT department_id, name FROM department WHERE department_id = ?`
	sqlSelectDepartments = `SELECT department_id, name FROM department ORDER BY department_id`
)

// DepartmentRepository 院系数据访问接口
type DepartmentRepository interface {
	Create(ctx context.Context, dept *model.Department) error
	GetByID(ctx context.Context, id int64) (*model.Department, error)
	List(ctx context.Context) ([]model.Department, error)
	// Update 只修改名称，department_id 不变
	Update(ctx context.Context, dept *model.Department) error
	Delete(ctx context.Context, id int64) error
}

// departmentRepo DepartmentRepository 的 GORM 实现
type departmentRepo struct {
	db   *gorm.DB
	exec *Executor
}

// NewDepartmentRepo 创建 DepartmentRepository 实例
func NewDepartmentRepo(db *gorm.DB, exec *Executor) DepartmentRepository {
	return &departmentRepo{db: db, exec: exec}
}

func (r *departmentRepo) Create(ctx context.Context, dept *model.Department) error {
	_, err := r.exec.Exec(ctx, sqlInsertDepartment, dept.DepartmentID, dept.Name)
	return err
}

func (r *departmentRepo) GetByID(ctx context.Context, id int64) (*model.Department, error) {
	var dept model.Department
	if err := queryOne(ctx, r.db, &dept, sqlSelectDepartment, id); err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepo) List(ctx context.Context) ([]model.Department, error) {
	var depts []model.Department
	err := queryAll(ctx, r.db, &depts, sqlSelectDepartments)
	return depts, err
}

func (r *departmentRepo) Update(ctx context.Context, dept *model.Department) error {
	return mustAffect(r.exec.Exec(ctx, sqlUpdateDepartment, dept.Name, dept.DepartmentID))
}

func (r *departmentRepo) Delete(ctx context.Context, id int64) error {
	return mustAffect(r.exec.Exec(ctx, sqlDeleteDepartment, id))
}
