package model

// Course is a simulation group as seen by the course-management routes.
type Course struct {
	CourseID         string `json:"course_id"`
	CourseName       string `json:"course_name"`
	SystemPrompt     string `json:"system_prompt"`
	CourseAccessCode string `json:"course_access_code"`
}

// SimulationGroup is the same entity under the patient-management routes.
type SimulationGroup struct {
	SimulationGroupID string `json:"simulation_group_id"`
	GroupName         string `json:"group_name"`
	GroupDescription  string `json:"group_description"`
}
