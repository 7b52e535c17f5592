package dto

// RunDepreciationPeriodRequest names the single period to depreciate.
type RunDepreciationPeriodRequest struct {
	Period string `json:"period" binding:"required,len=7"` // "YYYY-MM"
}

// PendingPeriodsResponse lists the calendar months awaiting depreciation,
// oldest first.
type PendingPeriodsResponse struct {
	PendingPeriods []string `json:"pendingPeriods"`
}
