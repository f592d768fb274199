package model

type CourseModule struct {
	ModuleID     string `json:"module_id"`
	ConceptID    string `json:"concept_id"`
	ModuleName   string `json:"module_name"`
	ModuleNumber int    `json:"module_number"`
}

// ModuleFile is keyed by (module_id, filename, filetype).
type ModuleFile struct {
	ModuleID string `json:"module_id"`
	Filename string `json:"filename"`
	Filetype string `json:"filetype"`
	Metadata string `json:"metadata"`
}

// StudentModule tracks one student's progress through a module.
type StudentModule struct {
	StudentModuleID string  `json:"student_module_id"`
	CourseModuleID  string  `json:"course_module_id"`
	EnrolmentID     string  `json:"enrolment_id"`
	ModuleScore     float64 `json:"module_score"`
}
