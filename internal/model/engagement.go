package model

import "time"

// Engagement types recorded by instructor-initiated mutations. Patient edits
// reuse the module tag; that is long-standing recorded behavior and the
// analytics queries depend on the stored values staying as they are.
const (
	EngagementCreatedModule  = "instructor_created_module"
	EngagementEditedModule   = "instructor_edited_module"
	EngagementUpdatedPrompt  = "instructor_updated_prompt"
	EngagementDeletedStudent = "instructor_deleted_student"
	EngagementPatientAccess  = "patient access"
)

// EngagementLogEntry is an append-only audit row. Entries are never updated
// or deleted.
type EngagementLogEntry struct {
	LogID             string    `json:"log_id"`
	UserID            string    `json:"user_id"`
	CourseID          *string   `json:"course_id"`
	ModuleID          *string   `json:"module_id"`
	PatientID         *string   `json:"patient_id"`
	EnrolmentID       *string   `json:"enrolment_id"`
	Timestamp         time.Time `json:"timestamp"`
	EngagementType    string    `json:"engagement_type"`
	EngagementDetails *string   `json:"engagement_details"`
}

// PromptVersion is one superseded system prompt, reconstructed from the
// engagement log.
type PromptVersion struct {
	Timestamp      time.Time `json:"timestamp"`
	PreviousPrompt string    `json:"previous_prompt"`
}
