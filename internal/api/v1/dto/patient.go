package dto

// PatientEditDTO is the body of the reorder-patient request.
type PatientEditDTO struct {
	PatientName string `json:"patient_name" validate:"required"`
}
