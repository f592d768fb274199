package service

import (
	"context"

	"app/internal/model"
	"app/internal/repository"

	"github.com/rs/zerolog"
)

type StudentService interface {
	GetStudentsByCourse(ctx context.Context, courseID string) ([]model.CourseStudent, error)
	// RemoveStudent unenrols a student from a course and records the
	// deletion. The deleted enrolment row is returned to the caller.
	RemoveStudent(ctx context.Context, courseID, userEmail string) (*model.Enrolment, error)
	GetStudentMessages(ctx context.Context, studentEmail, courseID string) ([]model.Message, error)
}

type studentService struct {
	enrolments  repository.EnrolmentRepository
	users       repository.UserRepository
	messages    repository.MessageRepository
	engagements repository.EngagementRepository
	logger      zerolog.Logger
}

func NewStudentService(
	enrolments repository.EnrolmentRepository,
	users repository.UserRepository,
	messages repository.MessageRepository,
	engagements repository.EngagementRepository,
	logger zerolog.Logger,
) StudentService {
	return &studentService{
		enrolments:  enrolments,
		users:       users,
		messages:    messages,
		engagements: engagements,
		logger:      logger.With().Str("service", "StudentService").Logger(),
	}
}

func (s *studentService) GetStudentsByCourse(ctx context.Context, courseID string) ([]model.CourseStudent, error) {
	return s.enrolments.GetStudentsByCourse(ctx, courseID)
}

func (s *studentService) RemoveStudent(ctx context.Context, courseID, userEmail string) (*model.Enrolment, error) {
	userID, err := s.users.GetIDByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, ErrUserNotFound
	}

	deleted, err := s.enrolments.DeleteStudent(ctx, courseID, userID)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, ErrStudentNotEnrolled
	}

	err = s.engagements.Append(ctx, model.EngagementLogEntry{
		UserID:         userID,
		CourseID:       &courseID,
		EngagementType: model.EngagementDeletedStudent,
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (s *studentService) GetStudentMessages(ctx context.Context, studentEmail, courseID string) ([]model.Message, error) {
	userID, err := s.users.GetIDByEmail(ctx, studentEmail)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, ErrUserNotFound
	}
	return s.messages.GetStudentMessages(ctx, userID, courseID)
}
