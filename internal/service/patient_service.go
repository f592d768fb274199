package service

import (
	"context"

	"app/internal/model"
	"app/internal/repository"

	"github.com/rs/zerolog"
)

type PatientService interface {
	GetPatientsByGroup(ctx context.Context, simulationGroupID string) ([]model.PatientSummary, error)
	// EditPatient renames and reorders a patient. The engagement entry
	// reuses the module-edit tag; stored history depends on it, so the tag
	// stays until product says otherwise.
	EditPatient(ctx context.Context, patientID, patientName string, patientNumber int, instructorEmail string) error
}

type patientService struct {
	patients    repository.PatientRepository
	engagements repository.EngagementRepository
	logger      zerolog.Logger
}

func NewPatientService(
	patients repository.PatientRepository,
	engagements repository.EngagementRepository,
	logger zerolog.Logger,
) PatientService {
	return &patientService{
		patients:    patients,
		engagements: engagements,
		logger:      logger.With().Str("service", "PatientService").Logger(),
	}
}

func (s *patientService) GetPatientsByGroup(ctx context.Context, simulationGroupID string) ([]model.PatientSummary, error) {
	return s.patients.GetPatientsByGroup(ctx, simulationGroupID)
}

func (s *patientService) EditPatient(ctx context.Context, patientID, patientName string, patientNumber int, instructorEmail string) error {
	if err := s.patients.UpdatePatient(ctx, patientID, patientName, patientNumber); err != nil {
		return err
	}

	return s.engagements.AppendForEmail(ctx, instructorEmail, model.EngagementLogEntry{
		PatientID:      &patientID,
		EngagementType: model.EngagementEditedModule,
	})
}
