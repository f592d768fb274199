package repository

import (
	"context"
	"database/sql"
	"fmt"

	"app/internal/model"
)

type MessageRepository interface {
	// GetStudentMessages lists a student's messages within a course,
	// ordered by time_sent.
	GetStudentMessages(ctx context.Context, userID, courseID string) ([]model.Message, error)
}

type messageRepo struct {
	db *sql.DB
}

func NewMessageRepo(db *sql.DB) MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) GetStudentMessages(ctx context.Context, userID, courseID string) ([]model.Message, error) {
	query := `
		SELECT m.message_content, m.time_sent, m.student_sent
		FROM messages m
		JOIN sessions s ON m.session_id = s.session_id
		JOIN student_modules sm ON s.student_module_id = sm.student_module_id
		JOIN enrolments e ON sm.enrolment_id = e.enrolment_id
		WHERE e.user_id = $1
		AND e.course_id = $2
		ORDER BY m.time_sent
	`

	rows, err := r.db.QueryContext(ctx, query, userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query student messages: %w", err)
	}
	defer rows.Close()

	messages := []model.Message{}
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.MessageContent, &m.TimeSent, &m.StudentSent); err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}
