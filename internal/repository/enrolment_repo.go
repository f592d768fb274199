package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"app/internal/model"
)

type EnrolmentRepository interface {
	// GetEnrolmentIDsByCourse lists every enrolment of the course,
	// students and instructors alike.
	GetEnrolmentIDsByCourse(ctx context.Context, courseID string) ([]string, error)
	// GetStudentsByCourse lists the student roster of the course.
	GetStudentsByCourse(ctx context.Context, courseID string) ([]model.CourseStudent, error)
	// DeleteStudent removes the student enrolment and returns the deleted
	// row, or nil when the user is not enrolled as a student.
	DeleteStudent(ctx context.Context, courseID, userID string) (*model.Enrolment, error)
}

type enrolmentRepo struct {
	db *sql.DB
}

func NewEnrolmentRepo(db *sql.DB) EnrolmentRepository {
	return &enrolmentRepo{db: db}
}

func (r *enrolmentRepo) GetEnrolmentIDsByCourse(ctx context.Context, courseID string) ([]string, error) {
	query := `SELECT enrolment_id FROM enrolments WHERE course_id = $1`

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query course enrolments: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan enrolment row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *enrolmentRepo) GetStudentsByCourse(ctx context.Context, courseID string) ([]model.CourseStudent, error) {
	query := `
		SELECT u.user_email, u.username, u.first_name, u.last_name
		FROM enrolments e
		JOIN users u ON e.user_id = u.user_id
		WHERE e.course_id = $1 AND e.enrolment_type = 'student'
	`

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query course students: %w", err)
	}
	defer rows.Close()

	students := []model.CourseStudent{}
	for rows.Next() {
		var s model.CourseStudent
		if err := rows.Scan(&s.UserEmail, &s.Username, &s.FirstName, &s.LastName); err != nil {
			return nil, fmt.Errorf("failed to scan student row: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return students, nil
}

func (r *enrolmentRepo) DeleteStudent(ctx context.Context, courseID, userID string) (*model.Enrolment, error) {
	query := `
		DELETE FROM enrolments
		WHERE course_id = $1
		AND user_id = $2
		AND enrolment_type = 'student'
		RETURNING enrolment_id, course_id, user_id, enrolment_type
	`
	var e model.Enrolment
	err := r.db.QueryRowContext(ctx, query, courseID, userID).
		Scan(&e.EnrolmentID, &e.CourseID, &e.UserID, &e.EnrolmentType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to delete enrolment: %w", err)
	}
	return &e, nil
}
