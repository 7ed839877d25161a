package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	pkgerrors "uniadmin/pkg/errors"
)

// Executor 写操作执行器
//
// 每次调用只执行一条参数化语句，并独占一个事务：
//   - 成功提交，任何错误回滚
//   - 连接在事务结束后归还连接池（max_idle_conns=0 时直接关闭）
//   - 错误经 pkgerrors.Classify 归类，驱动原文保留
type Executor struct {
	db       *gorm.DB
	observer StatementObserver
}

// StatementObserver 写语句执行结果观测（指标采集）
type StatementObserver interface {
	ObserveStatement(op string, elapsed time.Duration, err error)
}

// NewExecutor 创建执行器，observer 可为 nil
func NewExecutor(db *gorm.DB, observer StatementObserver) *Executor {
	return &Executor{db: db, observer: observer}
}

// Exec 执行 INSERT/UPDATE/DELETE，返回受影响行数
func (e *Executor) Exec(ctx context.Context, stmt string, args ...interface{}) (int64, error) {
	start := time.Now()
	var affected int64
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(stmt, args...)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	err = pkgerrors.Classify(err)
	e.observe("exec", start, err)
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// ExecReturning 执行带 RETURNING 的写语句，并将返回值扫描进 dest
func (e *Executor) ExecReturning(ctx context.Context, dest interface{}, stmt string, args ...interface{}) error {
	start := time.Now()
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Raw(stmt, args...).Scan(dest).Error
	})
	err = pkgerrors.Classify(err)
	e.observe("exec_returning", start, err)
	return err
}

func (e *Executor) observe(op string, start time.Time, err error) {
	if e.observer != nil {
		e.observer.ObserveStatement(op, time.Since(start), err)
	}
}

// ── 读取辅助 ──

// queryOne 执行单行 SELECT，无结果时返回 gorm.ErrRecordNotFound
func queryOne(ctx context.Context, db *gorm.DB, dest interface{}, stmt string, args ...interface{}) error {
	res := db.WithContext(ctx).Raw(stmt, args...).Scan(dest)
	if res.Error != nil {
		return pkgerrors.Classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// queryAll 执行多行 SELECT
func queryAll(ctx context.Context, db *gorm.DB, dest interface{}, stmt string, args ...interface{}) error {
	return pkgerrors.Classify(db.WithContext(ctx).Raw(stmt, args...).Scan(dest).Error)
}

// mustAffect UPDATE/DELETE 未命中任何行时视为记录不存在
func mustAffect(affected int64, err error) error {
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// dateArg 零值日期按 NULL 传入，由语句中的 COALESCE 取默认值或保留原值
func dateArg(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}
