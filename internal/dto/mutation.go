package dto

// MutationResponse 写操作响应
//
// 写操作成功后重新查询受影响的列表与审计日志尾部一并返回；
// 自增主键（预约、成绩、考勤）通过 ID 回传
type MutationResponse struct {
	ID    *int64             `json:"id,omitempty"`
	List  interface{}        `json:"list"`
	Audit []AuditLogResponse `json:"audit"`
}
