package model

import "time"

// Patient is a simulated persona scoped to a simulation group.
type Patient struct {
	PatientID         string `json:"patient_id"`
	SimulationGroupID string `json:"simulation_group_id"`
	PatientName       string `json:"patient_name"`
	PatientNumber     int    `json:"patient_number"`
	PatientAge        int    `json:"patient_age"`
	PatientGender     string `json:"patient_gender"`
}

// PatientSummary is the listing shape for the view-patients route.
type PatientSummary struct {
	PatientID     string `json:"patient_id"`
	PatientName   string `json:"patient_name"`
	PatientAge    int    `json:"patient_age"`
	PatientGender string `json:"patient_gender"`
}

// Message is one turn of a student's session with a patient.
type Message struct {
	MessageContent string    `json:"message_content"`
	TimeSent       time.Time `json:"time_sent"`
	StudentSent    bool      `json:"student_sent"`
}
