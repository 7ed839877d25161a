package service

import (
	"errors"
	"testing"
)

func TestParseDate(t *testing.T) {
	d, err := parseDate("2025-02-28")
	if err != nil || d == nil || d.Format("2006-01-02") != "2025-02-28" {
		t.Errorf("解析失败: %v %v", d, err)
	}

	if d, err := parseDate("  "); err != nil || d != nil {
		t.Errorf("空串应返回 nil，实际 %v %v", d, err)
	}

	if _, err := parseDate("2025-02-30"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("非法日期应返回 ErrInvalidDate，实际: %v", err)
	}
}

func TestOptionalString(t *testing.T) {
	if optionalString("") != nil {
		t.Error("空串应映射为 NULL")
	}
	if v := optionalString(" Cluj "); v == nil || *v != "Cluj" {
		t.Errorf("应去除首尾空白，实际 %v", v)
	}
}
