package model

// User is an identity record synced from the user pool. This service never
// mutates users; it only resolves emails to IDs.
type User struct {
	UserID    string   `json:"user_id"`
	UserEmail string   `json:"user_email"`
	Roles     []string `json:"roles"`
}

// CourseStudent is the student listing shape for a course roster.
type CourseStudent struct {
	UserEmail string `json:"user_email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Enrolment links a user to a course with a role.
type Enrolment struct {
	EnrolmentID   string `json:"enrolment_id"`
	CourseID      string `json:"course_id"`
	UserID        string `json:"user_id"`
	EnrolmentType string `json:"enrolment_type"`
}
