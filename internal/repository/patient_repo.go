package repository

import (
	"context"
	"database/sql"
	"fmt"

	"app/internal/model"
)

type PatientRepository interface {
	// GetPatientsByGroup lists the group's patients ordered by patient_name.
	GetPatientsByGroup(ctx context.Context, simulationGroupID string) ([]model.PatientSummary, error)
	// UpdatePatient overwrites the patient's name and ordering number.
	UpdatePatient(ctx context.Context, patientID, patientName string, patientNumber int) error
	// DeletePatientFile removes the stored file record for a patient.
	DeletePatientFile(ctx context.Context, patientID, filename, filetype string) error
}

type patientRepo struct {
	db *sql.DB
}

func NewPatientRepo(db *sql.DB) PatientRepository {
	return &patientRepo{db: db}
}

func (r *patientRepo) GetPatientsByGroup(ctx context.Context, simulationGroupID string) ([]model.PatientSummary, error) {
	query := `
		SELECT p.patient_id, p.patient_name, p.patient_age, p.patient_gender
		FROM patients p
		WHERE p.simulation_group_id = $1
		ORDER BY p.patient_name ASC
	`

	rows, err := r.db.QueryContext(ctx, query, simulationGroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to query group patients: %w", err)
	}
	defer rows.Close()

	patients := []model.PatientSummary{}
	for rows.Next() {
		var p model.PatientSummary
		if err := rows.Scan(&p.PatientID, &p.PatientName, &p.PatientAge, &p.PatientGender); err != nil {
			return nil, fmt.Errorf("failed to scan patient row: %w", err)
		}
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepo) UpdatePatient(ctx context.Context, patientID, patientName string, patientNumber int) error {
	query := `
		UPDATE patients
		SET patient_name = $1, patient_number = $2
		WHERE patient_id = $3
	`
	if _, err := r.db.ExecContext(ctx, query, patientName, patientNumber, patientID); err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}
	return nil
}

func (r *patientRepo) DeletePatientFile(ctx context.Context, patientID, filename, filetype string) error {
	query := `
		DELETE FROM patient_data
		WHERE patient_id = $1 AND filename = $2 AND filetype = $3
	`
	if _, err := r.db.ExecContext(ctx, query, patientID, filename, filetype); err != nil {
		return fmt.Errorf("failed to delete patient file record: %w", err)
	}
	return nil
}
