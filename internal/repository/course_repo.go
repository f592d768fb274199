package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"app/internal/model"
)

type CourseRepository interface {
	// GetCoursesByUserID lists every course the user is enrolled in,
	// ordered by (course_name, course_id).
	GetCoursesByUserID(ctx context.Context, userID string) ([]model.Course, error)
	// GetSystemPrompt returns the current prompt, or sql.ErrNoRows wrapped
	// as a nil pointer when the course does not exist.
	GetSystemPrompt(ctx context.Context, courseID string) (*string, error)
	// UpdateSystemPrompt overwrites the prompt and returns the updated row.
	UpdateSystemPrompt(ctx context.Context, courseID, prompt string) (*model.Course, error)
	GetAccessCode(ctx context.Context, courseID string) (*string, error)
	UpdateAccessCode(ctx context.Context, courseID, code string) (*model.Course, error)
}

type courseRepo struct {
	db *sql.DB
}

func NewCourseRepo(db *sql.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) GetCoursesByUserID(ctx context.Context, userID string) ([]model.Course, error) {
	query := `
		SELECT c.course_id, c.course_name, c.system_prompt, c.course_access_code
		FROM enrolments e
		JOIN courses c ON e.course_id = c.course_id
		WHERE e.user_id = $1
		ORDER BY c.course_name, c.course_id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user courses: %w", err)
	}
	defer rows.Close()

	courses := []model.Course{}
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.CourseID, &c.CourseName, &c.SystemPrompt, &c.CourseAccessCode); err != nil {
			return nil, fmt.Errorf("failed to scan course row: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepo) GetSystemPrompt(ctx context.Context, courseID string) (*string, error) {
	var prompt string
	query := `SELECT system_prompt FROM courses WHERE course_id = $1`
	if err := r.db.QueryRowContext(ctx, query, courseID).Scan(&prompt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query system prompt: %w", err)
	}
	return &prompt, nil
}

func (r *courseRepo) UpdateSystemPrompt(ctx context.Context, courseID, prompt string) (*model.Course, error) {
	query := `
		UPDATE courses
		SET system_prompt = $1
		WHERE course_id = $2
		RETURNING course_id, course_name, system_prompt, course_access_code
	`
	var c model.Course
	err := r.db.QueryRowContext(ctx, query, prompt, courseID).
		Scan(&c.CourseID, &c.CourseName, &c.SystemPrompt, &c.CourseAccessCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update system prompt: %w", err)
	}
	return &c, nil
}

func (r *courseRepo) GetAccessCode(ctx context.Context, courseID string) (*string, error) {
	var code string
	query := `SELECT course_access_code FROM courses WHERE course_id = $1`
	if err := r.db.QueryRowContext(ctx, query, courseID).Scan(&code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query access code: %w", err)
	}
	return &code, nil
}

func (r *courseRepo) UpdateAccessCode(ctx context.Context, courseID, code string) (*model.Course, error) {
	query := `
		UPDATE courses
		SET course_access_code = $1
		WHERE course_id = $2
		RETURNING course_id, course_name, system_prompt, course_access_code
	`
	var c model.Course
	err := r.db.QueryRowContext(ctx, query, code, courseID).
		Scan(&c.CourseID, &c.CourseName, &c.SystemPrompt, &c.CourseAccessCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update access code: %w", err)
	}
	return &c, nil
}
