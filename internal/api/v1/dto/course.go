package dto

// PromptUpdateDTO is the body of the system-prompt update.
type PromptUpdateDTO struct {
	Prompt string `json:"prompt" validate:"required"`
}

// AccessCodeResponseDTO is returned after rotating a course access code. The
// code is a shareable join token, returned in plaintext.
type AccessCodeResponseDTO struct {
	Message    string `json:"message"`
	AccessCode string `json:"access_code"`
}

// PromptResponseDTO wraps the current system prompt of a course.
type PromptResponseDTO struct {
	SystemPrompt string `json:"system_prompt"`
}

// CourseAccessCodeDTO wraps the stored access code of a course.
type CourseAccessCodeDTO struct {
	CourseAccessCode string `json:"course_access_code"`
}
