package repository

import (
	"context"
	"database/sql"
	"fmt"

	"app/internal/model"

	"github.com/google/uuid"
)

// EngagementRepository is the write-only audit collaborator. Rows are
// append-only; nothing here updates or deletes.
type EngagementRepository interface {
	Append(ctx context.Context, e model.EngagementLogEntry) error
	// AppendForEmail resolves the acting user inside the insert itself, the
	// way every instructor mutation records its actor.
	AppendForEmail(ctx context.Context, userEmail string, e model.EngagementLogEntry) error
	// GetPromptVersions reconstructs the prompt history of a course from
	// entries tagged instructor_updated_prompt, newest first.
	GetPromptVersions(ctx context.Context, courseID string) ([]model.PromptVersion, error)
}

type engagementRepo struct {
	db *sql.DB
}

func NewEngagementRepo(db *sql.DB) EngagementRepository {
	return &engagementRepo{db: db}
}

func (r *engagementRepo) Append(ctx context.Context, e model.EngagementLogEntry) error {
	query := `
		INSERT INTO user_engagement_log
			(log_id, user_id, course_id, module_id, patient_id, enrolment_id, timestamp, engagement_type, engagement_details)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		uuid.NewString(), e.UserID, e.CourseID, e.ModuleID, e.PatientID, e.EnrolmentID,
		e.EngagementType, e.EngagementDetails)
	if err != nil {
		return fmt.Errorf("failed to append engagement log entry: %w", err)
	}
	return nil
}

func (r *engagementRepo) AppendForEmail(ctx context.Context, userEmail string, e model.EngagementLogEntry) error {
	query := `
		INSERT INTO user_engagement_log
			(log_id, user_id, course_id, module_id, patient_id, enrolment_id, timestamp, engagement_type, engagement_details)
		VALUES ($1, (SELECT user_id FROM users WHERE user_email = $2), $3, $4, $5, $6, CURRENT_TIMESTAMP, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		uuid.NewString(), userEmail, e.CourseID, e.ModuleID, e.PatientID, e.EnrolmentID,
		e.EngagementType, e.EngagementDetails)
	if err != nil {
		return fmt.Errorf("failed to append engagement log entry: %w", err)
	}
	return nil
}

func (r *engagementRepo) GetPromptVersions(ctx context.Context, courseID string) ([]model.PromptVersion, error) {
	query := `
		SELECT timestamp, engagement_details AS previous_prompt
		FROM user_engagement_log
		WHERE course_id = $1
		AND engagement_type = 'instructor_updated_prompt'
		ORDER BY timestamp DESC
	`

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query prompt versions: %w", err)
	}
	defer rows.Close()

	versions := []model.PromptVersion{}
	for rows.Next() {
		var v model.PromptVersion
		if err := rows.Scan(&v.Timestamp, &v.PreviousPrompt); err != nil {
			return nil, fmt.Errorf("failed to scan prompt version row: %w", err)
		}
		versions = append(versions, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return versions, nil
}
