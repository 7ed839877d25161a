package dto

// ── 报表模块 DTO ──

// ReportRunRequest 报表参数，仅带参报表需要
type ReportRunRequest struct {
	Param string `form:"param"`
}

// ReportDefinitionResponse 报表目录项
type ReportDefinitionResponse struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	ParamName string `json:"param_name,omitempty"`
}

// ReportResultResponse 动态列报表结果
type ReportResultResponse struct {
	Name    string          `json:"name"`
	Title   string          `json:"title"`
	Columns []string        `json:"columns"`
	Rows    [][]interface{} `json:"rows"`
}
