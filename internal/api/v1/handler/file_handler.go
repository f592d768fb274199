package handler

import (
	"context"
	"errors"

	"app/internal/api/v1/dispatch"
	"app/internal/api/v1/dto"
	"app/internal/service"

	"github.com/rs/zerolog"
)

// FileHandler fronts patient file storage. Error bodies on these routes are
// JSON-encoded strings, matching what the frontend has always parsed.
type FileHandler struct {
	storageService service.StorageService
	logger         zerolog.Logger
}

func NewFileHandler(storageService service.StorageService, logger zerolog.Logger) *FileHandler {
	return &FileHandler{
		storageService: storageService,
		logger:         logger.With().Str("handler", "FileHandler").Logger(),
	}
}

func (h *FileHandler) Register(d *dispatch.Dispatcher) {
	d.Register(dispatch.RouteGeneratePresignedURL, h.GeneratePresignedURL)
	d.Register(dispatch.RouteDeleteFile, h.DeleteFile)
}

func (h *FileHandler) GeneratePresignedURL(ctx context.Context, req dispatch.Request) (dispatch.Response, error) {
	groupID := req.Query["simulation_group_id"]
	patientID := req.Query["patient_id"]
	fileName := req.Query["file_name"]
	fileType := req.Query["file_type"]
	if groupID == "" {
		return dispatch.JSON(400, "Missing required parameter: simulation_group_id"), nil
	}
	if patientID == "" {
		return dispatch.JSON(400, "Missing required parameter: patient_id"), nil
	}
	if fileName == "" {
		return dispatch.JSON(400, "Missing required parameter: file_name"), nil
	}

	url, err := h.storageService.PresignedUploadURL(ctx, groupID, patientID, fileName, fileType)
	if errors.Is(err, service.ErrUnsupportedFileType) {
		return dispatch.JSON(400, "Unsupported file type"), nil
	}
	if err != nil {
		h.logger.Error().Err(err).Msg("Internal server error")
		return dispatch.JSON(500, "Internal server error"), nil
	}
	return dispatch.JSON(200, dto.PresignedURLResponseDTO{PresignedURL: url}), nil
}

func (h *FileHandler) DeleteFile(ctx context.Context, req dispatch.Request) (dispatch.Response, error) {
	groupID := req.Query["simulation_group_id"]
	patientID := req.Query["patient_id"]
	fileName := req.Query["file_name"]
	fileType := req.Query["file_type"]
	folderType := req.Query["folder_type"]
	if groupID == "" || patientID == "" || fileName == "" || fileType == "" || folderType == "" {
		return dispatch.JSON(400, "Missing required parameters: simulation_group_id, patient_id, file_name, file_type, or folder_type"), nil
	}

	err := h.storageService.DeletePatientFile(ctx, groupID, patientID, fileName, fileType, folderType)
	if errors.Is(err, service.ErrUnsupportedFileType) {
		return dispatch.JSON(400, "Unsupported file type"), nil
	}
	if err != nil {
		h.logger.Error().Err(err).Msg("Internal server error")
		return dispatch.JSON(500, "Internal server error"), nil
	}
	return dispatch.JSON(200, "File deleted successfully"), nil
}
