package service

import (
	"context"

	"app/internal/model"
	"app/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ModuleService covers module lifecycle and module file metadata.
type ModuleService interface {
	// CreateModule inserts the module, records the engagement entry and
	// fans out one student_modules row per existing course enrolment. The
	// fan-out inserts run concurrently and are all joined before return;
	// a fan-out failure surfaces after the module row is already
	// persisted (no compensating rollback).
	CreateModule(ctx context.Context, courseID, conceptID, moduleName string, moduleNumber int, instructorEmail string) (*model.CourseModule, error)
	EditModule(ctx context.Context, moduleID, conceptID, moduleName, instructorEmail string) error
	DeleteModule(ctx context.Context, moduleID string) error
	// UpsertFileMetadata inserts the row when the key is new, then
	// unconditionally overwrites the metadata column and returns the
	// post-update row (nil when the update matched nothing).
	UpsertFileMetadata(ctx context.Context, moduleID, filename, filetype, metadata string) (*model.ModuleFile, error)
}

type moduleService struct {
	modules     repository.ModuleRepository
	enrolments  repository.EnrolmentRepository
	engagements repository.EngagementRepository
	logger      zerolog.Logger
}

func NewModuleService(
	modules repository.ModuleRepository,
	enrolments repository.EnrolmentRepository,
	engagements repository.EngagementRepository,
	logger zerolog.Logger,
) ModuleService {
	return &moduleService{
		modules:     modules,
		enrolments:  enrolments,
		engagements: engagements,
		logger:      logger.With().Str("service", "ModuleService").Logger(),
	}
}

func (s *moduleService) CreateModule(ctx context.Context, courseID, conceptID, moduleName string, moduleNumber int, instructorEmail string) (*model.CourseModule, error) {
	exists, err := s.modules.ModuleNameExists(ctx, conceptID, moduleName, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateModuleName
	}

	created, err := s.modules.CreateModule(ctx, conceptID, moduleName, moduleNumber)
	if err != nil {
		return nil, err
	}

	err = s.engagements.AppendForEmail(ctx, instructorEmail, model.EngagementLogEntry{
		CourseID:       &courseID,
		ModuleID:       &created.ModuleID,
		EngagementType: model.EngagementCreatedModule,
	})
	if err != nil {
		return nil, err
	}

	enrolmentIDs, err := s.enrolments.GetEnrolmentIDsByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, enrolmentID := range enrolmentIDs {
		g.Go(func() error {
			return s.modules.CreateStudentModule(gctx, created.ModuleID, enrolmentID, 0)
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Str("module_id", created.ModuleID).Msg("Student module fan-out failed")
		return nil, err
	}

	return created, nil
}

func (s *moduleService) EditModule(ctx context.Context, moduleID, conceptID, moduleName, instructorEmail string) error {
	exists, err := s.modules.ModuleNameExists(ctx, conceptID, moduleName, moduleID)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateModuleName
	}

	if err := s.modules.UpdateModule(ctx, moduleID, moduleName, conceptID); err != nil {
		return err
	}

	return s.engagements.AppendForEmail(ctx, instructorEmail, model.EngagementLogEntry{
		ModuleID:       &moduleID,
		EngagementType: model.EngagementEditedModule,
	})
}

func (s *moduleService) DeleteModule(ctx context.Context, moduleID string) error {
	return s.modules.DeleteModule(ctx, moduleID)
}

func (s *moduleService) UpsertFileMetadata(ctx context.Context, moduleID, filename, filetype, metadata string) (*model.ModuleFile, error) {
	existing, err := s.modules.GetModuleFile(ctx, moduleID, filename, filetype)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		err := s.modules.InsertModuleFile(ctx, &model.ModuleFile{
			ModuleID: moduleID,
			Filename: filename,
			Filetype: filetype,
			Metadata: metadata,
		})
		if err != nil {
			return nil, err
		}
	}

	// The update runs even right after the insert; first uploads write the
	// same metadata twice. Established behavior, kept as-is.
	return s.modules.UpdateModuleFileMetadata(ctx, moduleID, filename, filetype, metadata)
}
