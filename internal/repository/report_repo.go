package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"uniadmin/internal/model"
	pkgerrors "uniadmin/pkg/errors"
)

// ResultSet 动态列查询结果，列名取自结果集描述符
type ResultSet struct {
	Columns []string
	Rows    [][]interface{}
}

// ReportRepository 报表查询接口
type ReportRepository interface {
	// Run 执行只读 SELECT（可带参数），列结构由结果集决定
	Run(ctx context.Context, stmt string, args ...interface{}) (*ResultSet, error)
}

type reportRepo struct {
	db *gorm.DB
}

// NewReportRepo 创建 ReportRepository 实例
func NewReportRepo(db *gorm.DB) ReportRepository {
	return &reportRepo{db: db}
}

func (r *reportRepo) Run(ctx context.Context, stmt string, args ...interface{}) (*ResultSet, error) {
	rows, err := r.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, pkgerrors.Classify(err)
	}
	defer rows.Close()

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("读取结果集列信息失败: %w", err)
	}

	set := &ResultSet{
		Columns: make([]string, len(types)),
		Rows:    make([][]interface{}, 0),
	}
	dbTypes := make([]string, len(types))
	for i, ct := range types {
		set.Columns[i] = ct.Name()
		dbTypes[i] = ct.DatabaseTypeName()
	}

	for rows.Next() {
		values := make([]interface{}, len(types))
		ptrs := make([]interface{}, len(types))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, pkgerrors.Classify(err)
		}
		for i := range values {
			values[i] = NormalizeValue(dbTypes[i], values[i])
		}
		set.Rows = append(set.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, pkgerrors.Classify(err)
	}

	return set, nil
}

// NormalizeValue 将驱动返回值转换为可直接 JSON 序列化的展示值
//   - []byte → string
//   - NUMERIC 文本 → float64
//   - DATE → YYYY-MM-DD，其余时间类型 → RFC3339（零点也保留时间部分）
func NormalizeValue(dbType string, v interface{}) interface{} {
	switch t := v.(type) {
	case []byte:
		return NormalizeValue(dbType, string(t))
	case string:
		if dbType == "NUMERIC" {
			if f, err := strconv.ParseFloat(t, 64); err == nil {
				return f
			}
		}
		return t
	case time.Time:
		if dbType == "DATE" {
			return t.Format(model.DateLayout)
		}
		return t.Format(time.RFC3339)
	}
	return v
}
