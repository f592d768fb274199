package model

// PatientAnalytics is one merged analytics row per patient of a simulation
// group, restricted to interactions from users holding the student role.
type PatientAnalytics struct {
	PatientID              string  `json:"patient_id"`
	PatientName            string  `json:"patient_name"`
	PatientNumber          int     `json:"patient_number"`
	MessageCount           int64   `json:"message_count"`
	AccessCount            int64   `json:"access_count"`
	AverageScore           float64 `json:"average_score"`
	PerfectScorePercentage float64 `json:"perfect_score_percentage"`
}
