package handler

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"app/internal/api/v1/dispatch"
	"app/internal/api/v1/dto"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type ModuleHandler struct {
	moduleService service.ModuleService
	validate      *validator.Validate
	logger        zerolog.Logger
}

func NewModuleHandler(moduleService service.ModuleService, v *validator.Validate, logger zerolog.Logger) *ModuleHandler {
	return &ModuleHandler{
		moduleService: moduleService,
		validate:      v,
		logger:        logger.With().Str("handler", "ModuleHandler").Logger(),
	}
}

func (h *ModuleHandler) Register(d *dispatch.Dispatcher) {
	d.Register(dispatch.RouteCreateModule, h.CreateModule)
	d.Register(dispatch.RouteEditModule, h.EditModule)
	d.Register(dispatch.RouteDeleteModule, h.DeleteModule)
	d.Register(dispatch.RouteUpdateMetadata, h.UpdateMetadata)
}

// CreateModule inserts a module and fans out student records for every
// enrolment of the course. A fan-out failure reports 500 with the module row
// already persisted.
func (h *ModuleHandler) CreateModule(ctx context.Context, req dispatch.Request) (dispatch.Response, error) {
	courseID := req.Query["course_id"]
	conceptID := req.Query["concept_id"]
	moduleName := req.Query["module_name"]
	moduleNumber := req.Query["module_number"]
	instructorEmail := req.Query["instructor_email"]
	if courseID == "" || conceptID == "" || moduleName == "" || moduleNumber == "" || instructorEmail == "" {
		return dispatch.Error(400, "course_id, concept_id, module_name, module_number, or instructor_email is missing"), nil
	}

	number, err := strconv.Atoi(moduleNumber)
	if err != nil {
		return dispatch.Error(400, "module_number must be an integer"), nil
	}

	created, err := h.moduleService.CreateModule(ctx, courseID, conceptID, moduleName, number, instructorEmail)
	if errors.Is(err, service.ErrDuplicateModuleName) {
		return dispatch.Error(400, "A module with this name already exists in the given concept."), nil
	}
	if err != nil {
		return internalError(h.logger, err), nil
	}
	return dispatch.JSON(201, created), nil
}

func (h *ModuleHandler) EditModule(ctx context.Context, req dispatch.Request) (dispatch.Response, error) {
	moduleID := req.Query["module_id"]
	instructorEmail := req.Query["instructor_email"]
	conceptID := req.Query["concept_id"]
	if moduleID == "" || instructorEmail == "" || conceptID == "" {
		return dispatch.Error(400, "module_id, instructor_email, or concept_id is missing in query string parameters"), nil
	}

	var body dto.ModuleEditDTO
	if err := json.Unmarshal(req.Body, &body); err != nil {
		return dispatch.Error(400, "Invalid JSON payload: "+err.Error()), nil
	}
	if err := h.validate.Struct(&body); err != nil {
		return dispatch.Error(400, "module_name is required in the body"), nil
	}

	err := h.moduleService.EditModule(ctx, moduleID, conceptID, body.ModuleName, instructorEmail)
	if errors.Is(err, service.ErrDuplicateModuleName) {
		return dispatch.Error(400, "A module with this name already exists under the same concept."), nil
	}
	if err != nil {
		return internalError(h.logger, err), nil
	}
	return dispatch.JSON(200, map[string]string{"message": "Module updated successfully"}), nil
}

func (h *ModuleHandler) DeleteModule(ctx context.Context, req dispatch.Request) (dispatch.Response, error) {
	moduleID := req.Query["module_id"]
	if moduleID == "" {
		return dispatch.Error(400, "module_id is required"), nil
	}

	if err := h.moduleService.DeleteModule(ctx, moduleID); err != nil {
		return internalError(h.logger, err), nil
	}
	return dispatch.JSON(200, map[string]string{"message": "Module deleted successfully"}), nil
}

// UpdateMetadata upserts a file metadata row: insert when the key is new,
// then an unconditional metadata update either way.
func (h *ModuleHandler) UpdateMetadata(ctx context.Context, req dispatch.Request) (dispatch.Response, error) {
	moduleID := req.Query["module_id"]
	filename := req.Query["filename"]
	filetype := req.Query["filetype"]
	if moduleID == "" || filename == "" || filetype == "" {
		return dispatch.Error(400, "module_id and filename are required"), nil
	}

	var body dto.MetadataUpdateDTO
	if err := json.Unmarshal(req.Body, &body); err != nil {
		return dispatch.Error(400, "Invalid JSON payload: "+err.Error()), nil
	}
	if err := h.validate.Struct(&body); err != nil {
		return dispatch.Error(400, "metadata is required in the body"), nil
	}

	file, err := h.moduleService.UpsertFileMetadata(ctx, moduleID, filename, filetype, body.Metadata)
	if err != nil {
		return internalError(h.logger, err), nil
	}
	if file == nil {
		return dispatch.Error(500, "Failed to update metadata."), nil
	}
	return dispatch.JSON(200, file), nil
}
