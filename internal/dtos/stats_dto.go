package dtos

// StatusSlice is one non-zero slice of the status pie chart.
type StatusSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// TimelineBucket is one month of the submissions bar chart.
type TimelineBucket struct {
	Month        string `json:"month"`
	Applications int    `json:"applications"`
}

// Statistics is everything the dashboard needs in one payload.
// Rates are whole percents, rounded for display.
type Statistics struct {
	Total     int `json:"total"`
	Applied   int `json:"applied"`
	Interview int `json:"interview"`
	Offer     int `json:"offer"`
	Rejected  int `json:"rejected"`
	Ignored   int `json:"ignored"`

	ResponseRate int `json:"response_rate"`
	SuccessRate  int `json:"success_rate"`

	StatusDistribution []StatusSlice    `json:"status_distribution"`
	Timeline           []TimelineBucket `json:"timeline"`
}
