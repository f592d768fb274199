package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"app/internal/model"

	"github.com/google/uuid"
)

type ModuleRepository interface {
	// ModuleNameExists reports whether a module with the name exists under
	// the concept. excludeModuleID, when non-empty, is left out of the
	// check (rename collision test).
	ModuleNameExists(ctx context.Context, conceptID, moduleName, excludeModuleID string) (bool, error)
	CreateModule(ctx context.Context, conceptID, moduleName string, moduleNumber int) (*model.CourseModule, error)
	UpdateModule(ctx context.Context, moduleID, moduleName, conceptID string) error
	DeleteModule(ctx context.Context, moduleID string) error

	GetModuleFile(ctx context.Context, moduleID, filename, filetype string) (*model.ModuleFile, error)
	InsertModuleFile(ctx context.Context, f *model.ModuleFile) error
	// UpdateModuleFileMetadata overwrites the metadata column for the key
	// and returns the post-update row, or nil when no row matched.
	UpdateModuleFileMetadata(ctx context.Context, moduleID, filename, filetype, metadata string) (*model.ModuleFile, error)

	CreateStudentModule(ctx context.Context, courseModuleID, enrolmentID string, moduleScore float64) error
}

type moduleRepo struct {
	db *sql.DB
}

func NewModuleRepo(db *sql.DB) ModuleRepository {
	return &moduleRepo{db: db}
}

func (r *moduleRepo) ModuleNameExists(ctx context.Context, conceptID, moduleName, excludeModuleID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM course_modules
			WHERE concept_id = $1
			AND module_name = $2
			AND ($3 = '' OR module_id != $3)
		)
	`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, conceptID, moduleName, excludeModuleID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check module name: %w", err)
	}
	return exists, nil
}

func (r *moduleRepo) CreateModule(ctx context.Context, conceptID, moduleName string, moduleNumber int) (*model.CourseModule, error) {
	query := `
		INSERT INTO course_modules (module_id, concept_id, module_name, module_number)
		VALUES ($1, $2, $3, $4)
		RETURNING module_id, concept_id, module_name, module_number
	`
	var m model.CourseModule
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), conceptID, moduleName, moduleNumber).
		Scan(&m.ModuleID, &m.ConceptID, &m.ModuleName, &m.ModuleNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to insert module: %w", err)
	}
	return &m, nil
}

func (r *moduleRepo) UpdateModule(ctx context.Context, moduleID, moduleName, conceptID string) error {
	query := `
		UPDATE course_modules
		SET module_name = $1, concept_id = $2
		WHERE module_id = $3
	`
	if _, err := r.db.ExecContext(ctx, query, moduleName, conceptID, moduleID); err != nil {
		return fmt.Errorf("failed to update module: %w", err)
	}
	return nil
}

func (r *moduleRepo) DeleteModule(ctx context.Context, moduleID string) error {
	query := `DELETE FROM course_modules WHERE module_id = $1`
	if _, err := r.db.ExecContext(ctx, query, moduleID); err != nil {
		return fmt.Errorf("failed to delete module: %w", err)
	}
	return nil
}

func (r *moduleRepo) GetModuleFile(ctx context.Context, moduleID, filename, filetype string) (*model.ModuleFile, error) {
	query := `
		SELECT module_id, filename, filetype, metadata
		FROM module_files
		WHERE module_id = $1
		AND filename = $2
		AND filetype = $3
	`
	var f model.ModuleFile
	err := r.db.QueryRowContext(ctx, query, moduleID, filename, filetype).
		Scan(&f.ModuleID, &f.Filename, &f.Filetype, &f.Metadata)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query module file: %w", err)
	}
	return &f, nil
}

func (r *moduleRepo) InsertModuleFile(ctx context.Context, f *model.ModuleFile) error {
	query := `
		INSERT INTO module_files (module_id, filename, filetype, metadata)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.ExecContext(ctx, query, f.ModuleID, f.Filename, f.Filetype, f.Metadata); err != nil {
		return fmt.Errorf("failed to insert module file: %w", err)
	}
	return nil
}

func (r *moduleRepo) UpdateModuleFileMetadata(ctx context.Context, moduleID, filename, filetype, metadata string) (*model.ModuleFile, error) {
	query := `
		UPDATE module_files
		SET metadata = $1
		WHERE module_id = $2
		AND filename = $3
		AND filetype = $4
		RETURNING module_id, filename, filetype, metadata
	`
	var f model.ModuleFile
	err := r.db.QueryRowContext(ctx, query, metadata, moduleID, filename, filetype).
		Scan(&f.ModuleID, &f.Filename, &f.Filetype, &f.Metadata)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update module file metadata: %w", err)
	}
	return &f, nil
}

func (r *moduleRepo) CreateStudentModule(ctx context.Context, courseModuleID, enrolmentID string, moduleScore float64) error {
	query := `
		INSERT INTO student_modules (student_module_id, course_module_id, enrolment_id, module_score)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.ExecContext(ctx, query, uuid.NewString(), courseModuleID, enrolmentID, moduleScore); err != nil {
		return fmt.Errorf("failed to insert student module: %w", err)
	}
	return nil
}
