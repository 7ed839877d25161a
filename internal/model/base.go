package model

import "time"

// DateLayout 日期字段（DATE 列）的 API 文本格式
const DateLayout = "2006-01-02"

// FormatDate 将 DATE 列格式化为 YYYY-MM-DD，nil 返回空串
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
