package model

// TableInfo describes one table exposed by the query service.
type TableInfo struct {
	Count        int      `json:"count"`
	Columns      []string `json:"columns"`
	GeometryType string   `json:"geometry_type"`
	Description  string   `json:"description,omitempty"`
}

// SchemaResponse is the service's database schema description.
type SchemaResponse struct {
	Tables       map[string]TableInfo `json:"tables"`
	TotalRecords int                  `json:"total_records"`
	Timestamp    string               `json:"timestamp"`
}

// HealthResponse is the service's health report.
type HealthResponse struct {
	Status      string `json:"status"`
	Database    string `json:"database"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
	Timestamp   string `json:"timestamp"`
}
