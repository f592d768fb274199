package service

import (
	"context"

	"app/internal/model"
	"app/internal/repository"
	"app/internal/util"

	"github.com/rs/zerolog"
)

// CourseService covers the course-scoped instructor operations: course and
// group lookups, the system prompt chain and the shareable access code.
type CourseService interface {
	GetCoursesForUser(ctx context.Context, email string) ([]model.Course, error)
	GetGroupsForInstructor(ctx context.Context, email string) ([]model.SimulationGroup, error)

	GetSystemPrompt(ctx context.Context, courseID string) (string, error)
	// UpdateSystemPrompt overwrites the course prompt and archives the
	// superseded value in the engagement log.
	UpdateSystemPrompt(ctx context.Context, courseID, instructorEmail, prompt string) (*model.Course, error)
	GetPromptVersions(ctx context.Context, courseID string) ([]model.PromptVersion, error)

	GenerateAccessCode(ctx context.Context, courseID string) (string, error)
	GetAccessCode(ctx context.Context, courseID string) (string, error)
}

type courseService struct {
	courses     repository.CourseRepository
	groups      repository.GroupRepository
	users       repository.UserRepository
	engagements repository.EngagementRepository
	logger      zerolog.Logger
}

func NewCourseService(
	courses repository.CourseRepository,
	groups repository.GroupRepository,
	users repository.UserRepository,
	engagements repository.EngagementRepository,
	logger zerolog.Logger,
) CourseService {
	return &courseService{
		courses:     courses,
		groups:      groups,
		users:       users,
		engagements: engagements,
		logger:      logger.With().Str("service", "CourseService").Logger(),
	}
}

func (s *courseService) GetCoursesForUser(ctx context.Context, email string) ([]model.Course, error) {
	userID, err := s.users.GetIDByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, ErrUserNotFound
	}
	return s.courses.GetCoursesByUserID(ctx, userID)
}

func (s *courseService) GetGroupsForInstructor(ctx context.Context, email string) ([]model.SimulationGroup, error) {
	userID, err := s.users.GetIDByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, ErrUserNotFound
	}
	return s.groups.GetGroupsByInstructorID(ctx, userID)
}

func (s *courseService) GetSystemPrompt(ctx context.Context, courseID string) (string, error) {
	prompt, err := s.courses.GetSystemPrompt(ctx, courseID)
	if err != nil {
		return "", err
	}
	if prompt == nil {
		return "", ErrCourseNotFound
	}
	return *prompt, nil
}

func (s *courseService) UpdateSystemPrompt(ctx context.Context, courseID, instructorEmail, prompt string) (*model.Course, error) {
	oldPrompt, err := s.courses.GetSystemPrompt(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if oldPrompt == nil {
		return nil, ErrCourseNotFound
	}

	updated, err := s.courses.UpdateSystemPrompt(ctx, courseID, prompt)
	if err != nil {
		return nil, err
	}

	err = s.engagements.AppendForEmail(ctx, instructorEmail, model.EngagementLogEntry{
		CourseID:          &courseID,
		EngagementType:    model.EngagementUpdatedPrompt,
		EngagementDetails: oldPrompt,
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *courseService) GetPromptVersions(ctx context.Context, courseID string) ([]model.PromptVersion, error) {
	return s.engagements.GetPromptVersions(ctx, courseID)
}

func (s *courseService) GenerateAccessCode(ctx context.Context, courseID string) (string, error) {
	code := util.GenerateAccessCode()
	updated, err := s.courses.UpdateAccessCode(ctx, courseID, code)
	if err != nil {
		return "", err
	}
	if updated == nil {
		return "", ErrCourseNotFound
	}
	s.logger.Debug().Str("course_id", courseID).Msg("Access code rotated")
	return code, nil
}

func (s *courseService) GetAccessCode(ctx context.Context, courseID string) (string, error) {
	code, err := s.courses.GetAccessCode(ctx, courseID)
	if err != nil {
		return "", err
	}
	if code == nil {
		return "", ErrCourseNotFound
	}
	return *code, nil
}
