package models

// ReadyResponse reports readiness of the service and its database.
type ReadyResponse struct {
	Ready    bool   `json:"ready"`
	Database string `json:"database"`
}

// RunListResponse wraps a page of run summaries.
type RunListResponse struct {
	Runs  []RunSummary `json:"runs"`
	Count int          `json:"count"`
}
