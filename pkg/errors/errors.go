package errors

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ── 数据库语句执行错误分类 ──
//
// 约束全部由数据库保证，这里只负责把 SQLSTATE 归类，
// 驱动原始信息保存在 DBError.Detail 中原样返回给调用方。

var (
	ErrUniqueViolation     = errors.New("记录已存在")
	ErrForeignKeyViolation = errors.New("引用的记录不存在或仍被引用")
	ErrCheckViolation      = errors.New("字段取值不符合约束")
	ErrNotNullViolation    = errors.New("必填字段为空")
	ErrInvalidInput        = errors.New("字段格式或取值无效")
	ErrStatementFailed     = errors.New("数据库语句执行失败")
)

// DBError 语句执行失败：Kind 为分类哨兵错误，Detail 为驱动原文
type DBError struct {
	Kind   error
	Code   string
	Detail string
	Err    error
}

func (e *DBError) Error() string {
	return e.Detail
}

// Is 使 errors.Is(err, ErrUniqueViolation) 等判断可用
func (e *DBError) Is(target error) bool {
	return e.Kind == target
}

func (e *DBError) Unwrap() error {
	return e.Err
}

// Classify 将驱动错误归类为 *DBError；非 PostgreSQL 错误原样返回
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var dbErr *DBError
	if errors.As(err, &dbErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	return &DBError{
		Kind:   kindOf(pgErr.Code),
		Code:   pgErr.Code,
		Detail: detailOf(pgErr),
		Err:    err,
	}
}

// Detail 提取可直接展示给用户的驱动信息
func Detail(err error) string {
	var dbErr *DBError
	if errors.As(err, &dbErr) {
		return dbErr.Detail
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

func kindOf(code string) error {
	switch code {
	case "23505":
		return ErrUniqueViolation
	case "23503":
		return ErrForeignKeyViolation
	case "23514":
		return ErrCheckViolation
	case "23502":
		return ErrNotNullViolation
	}
	// 22xxx: data_exception（类型转换、日期格式、数值越界等）
	if strings.HasPrefix(code, "22") {
		return ErrInvalidInput
	}
	return ErrStatementFailed
}

func detailOf(pgErr *pgconn.PgError) string {
	msg := pgErr.Message
	if pgErr.Detail != "" {
		msg += ": " + pgErr.Detail
	}
	return msg
}
