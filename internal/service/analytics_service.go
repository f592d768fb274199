package service

import (
	"context"

	"app/internal/model"
	"app/internal/repository"

	"github.com/rs/zerolog"
)

type AnalyticsService interface {
	// GetGroupAnalytics merges the four per-patient aggregates into one
	// row per patient, ordered by (patient_number, patient_name).
	GetGroupAnalytics(ctx context.Context, simulationGroupID string) ([]model.PatientAnalytics, error)
}

type analyticsService struct {
	analytics repository.AnalyticsRepository
	logger    zerolog.Logger
}

func NewAnalyticsService(analytics repository.AnalyticsRepository, logger zerolog.Logger) AnalyticsService {
	return &analyticsService{
		analytics: analytics,
		logger:    logger.With().Str("service", "AnalyticsService").Logger(),
	}
}

func (s *analyticsService) GetGroupAnalytics(ctx context.Context, simulationGroupID string) ([]model.PatientAnalytics, error) {
	messageCounts, err := s.analytics.GetMessageCounts(ctx, simulationGroupID)
	if err != nil {
		return nil, err
	}
	accessCounts, err := s.analytics.GetAccessCounts(ctx, simulationGroupID)
	if err != nil {
		return nil, err
	}
	averageScores, err := s.analytics.GetAverageScores(ctx, simulationGroupID)
	if err != nil {
		return nil, err
	}
	perfectScores, err := s.analytics.GetPerfectScorePercentages(ctx, simulationGroupID)
	if err != nil {
		return nil, err
	}

	accessByPatient := make(map[string]int64, len(accessCounts))
	for _, a := range accessCounts {
		accessByPatient[a.PatientID] = a.AccessCount
	}
	averageByPatient := make(map[string]float64, len(averageScores))
	for _, a := range averageScores {
		if a.AverageScore.Valid {
			averageByPatient[a.PatientID] = a.AverageScore.Float64
		}
	}
	perfectByPatient := make(map[string]float64, len(perfectScores))
	for _, p := range perfectScores {
		perfectByPatient[p.PatientID] = p.PerfectScorePercentage
	}

	// The message-count rows include every patient of the group, so they
	// drive the merge; the other aggregates default to 0 where absent.
	merged := make([]model.PatientAnalytics, 0, len(messageCounts))
	for _, m := range messageCounts {
		merged = append(merged, model.PatientAnalytics{
			PatientID:              m.PatientID,
			PatientName:            m.PatientName,
			PatientNumber:          m.PatientNumber,
			MessageCount:           m.MessageCount,
			AccessCount:            accessByPatient[m.PatientID],
			AverageScore:           averageByPatient[m.PatientID],
			PerfectScorePercentage: perfectByPatient[m.PatientID],
		})
	}
	return merged, nil
}
