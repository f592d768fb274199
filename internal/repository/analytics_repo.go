package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// PatientMessageCount drives the merged analytics row set: its query left
// joins from patients, so every patient of the group appears exactly once.
type PatientMessageCount struct {
	PatientID     string
	PatientName   string
	PatientNumber int
	MessageCount  int64
}

type PatientAccessCount struct {
	PatientID   string
	AccessCount int64
}

type PatientAverageScore struct {
	PatientID    string
	AverageScore sql.NullFloat64
}

type PatientPerfectScore struct {
	PatientID              string
	PerfectScorePercentage float64
}

// AnalyticsRepository computes the per-patient aggregates for a simulation
// group. All four queries restrict interactions to users holding the student
// role; the restriction lives inside the join so patients without any student
// interaction still appear with empty aggregates.
type AnalyticsRepository interface {
	GetMessageCounts(ctx context.Context, simulationGroupID string) ([]PatientMessageCount, error)
	GetAccessCounts(ctx context.Context, simulationGroupID string) ([]PatientAccessCount, error)
	GetAverageScores(ctx context.Context, simulationGroupID string) ([]PatientAverageScore, error)
	GetPerfectScorePercentages(ctx context.Context, simulationGroupID string) ([]PatientPerfectScore, error)
}

type analyticsRepo struct {
	db *sql.DB
}

func NewAnalyticsRepo(db *sql.DB) AnalyticsRepository {
	return &analyticsRepo{db: db}
}

// studentEnrolmentFilter keeps a joined student_patients row only when it
// belongs to a user with the student role.
const studentEnrolmentFilter = `
	EXISTS (
		SELECT 1
		FROM enrolments e
		JOIN users u ON u.user_id = e.user_id
		WHERE e.enrolment_id = sp.enrolment_id
		AND 'student' = ANY(u.roles)
	)`

func (r *analyticsRepo) GetMessageCounts(ctx context.Context, simulationGroupID string) ([]PatientMessageCount, error) {
	query := `
		SELECT p.patient_id, p.patient_name, p.patient_number, COUNT(m.message_id) AS message_count
		FROM patients p
		LEFT JOIN student_patients sp ON p.patient_id = sp.patient_id AND ` + studentEnrolmentFilter + `
		LEFT JOIN sessions s ON sp.student_patient_id = s.student_patient_id
		LEFT JOIN messages m ON s.session_id = m.session_id
		WHERE p.simulation_group_id = $1
		GROUP BY p.patient_id, p.patient_name, p.patient_number
		ORDER BY p.patient_number ASC, p.patient_name ASC
	`

	rows, err := r.db.QueryContext(ctx, query, simulationGroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to query message counts: %w", err)
	}
	defer rows.Close()

	counts := []PatientMessageCount{}
	for rows.Next() {
		var c PatientMessageCount
		if err := rows.Scan(&c.PatientID, &c.PatientName, &c.PatientNumber, &c.MessageCount); err != nil {
			return nil, fmt.Errorf("failed to scan message count row: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *analyticsRepo) GetAccessCounts(ctx context.Context, simulationGroupID string) ([]PatientAccessCount, error) {
	query := `
		SELECT p.patient_id, COUNT(uel.log_id) AS access_count
		FROM patients p
		LEFT JOIN user_engagement_log uel ON p.patient_id = uel.patient_id
			AND uel.engagement_type = 'patient access'
			AND EXISTS (
				SELECT 1
				FROM enrolments e
				JOIN users u ON u.user_id = e.user_id
				WHERE e.enrolment_id = uel.enrolment_id
				AND 'student' = ANY(u.roles)
			)
		WHERE p.simulation_group_id = $1
		GROUP BY p.patient_id
	`

	rows, err := r.db.QueryContext(ctx, query, simulationGroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to query access counts: %w", err)
	}
	defer rows.Close()

	counts := []PatientAccessCount{}
	for rows.Next() {
		var c PatientAccessCount
		if err := rows.Scan(&c.PatientID, &c.AccessCount); err != nil {
			return nil, fmt.Errorf("failed to scan access count row: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *analyticsRepo) GetAverageScores(ctx context.Context, simulationGroupID string) ([]PatientAverageScore, error) {
	query := `
		SELECT p.patient_id, AVG(sp.patient_score) AS average_score
		FROM patients p
		LEFT JOIN student_patients sp ON p.patient_id = sp.patient_id AND ` + studentEnrolmentFilter + `
		WHERE p.simulation_group_id = $1
		GROUP BY p.patient_id
	`

	rows, err := r.db.QueryContext(ctx, query, simulationGroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to query average scores: %w", err)
	}
	defer rows.Close()

	scores := []PatientAverageScore{}
	for rows.Next() {
		var s PatientAverageScore
		if err := rows.Scan(&s.PatientID, &s.AverageScore); err != nil {
			return nil, fmt.Errorf("failed to scan average score row: %w", err)
		}
		scores = append(scores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return scores, nil
}

func (r *analyticsRepo) GetPerfectScorePercentages(ctx context.Context, simulationGroupID string) ([]PatientPerfectScore, error) {
	query := `
		SELECT p.patient_id,
			CASE
				WHEN COUNT(sp.student_patient_id) = 0 THEN 0
				ELSE COUNT(CASE WHEN sp.patient_score = 100 THEN 1 END) * 100.0 / COUNT(sp.student_patient_id)
			END AS perfect_score_percentage
		FROM patients p
		LEFT JOIN student_patients sp ON p.patient_id = sp.patient_id AND ` + studentEnrolmentFilter + `
		WHERE p.simulation_group_id = $1
		GROUP BY p.patient_id
	`

	rows, err := r.db.QueryContext(ctx, query, simulationGroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to query perfect score percentages: %w", err)
	}
	defer rows.Close()

	scores := []PatientPerfectScore{}
	for rows.Next() {
		var s PatientPerfectScore
		if err := rows.Scan(&s.PatientID, &s.PerfectScorePercentage); err != nil {
			return nil, fmt.Errorf("failed to scan perfect score row: %w", err)
		}
		scores = append(scores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return scores, nil
}
