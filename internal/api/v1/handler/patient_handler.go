package handler

import (
	"context"
	"encoding/json"
	"strconv"

	"app/internal/api/v1/dispatch"
	"app/internal/api/v1/dto"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type PatientHandler struct {
	patientService service.PatientService
	validate       *validator.Validate
	logger         zerolog.Logger
}

func NewPatientHandler(patientService service.PatientService, v *validator.Validate, logger zerolog.Logger) *PatientHandler {
	return &PatientHandler{
		patientService: patientService,
		validate:       v,
		logger:         logger.With().Str("handler", "PatientHandler").Logger(),
	}
}

func (h *PatientHandler) Register(d *dispatch.Dispatcher) {
	d.Register(dispatch.RouteViewPatients, h.ViewPatients)
	d.Register(dispatch.RouteReorderPatient, h.ReorderPatient)
}

func (h *PatientHandler) ViewPatients(ctx context.Context, req dispatch.Request) (dispatch.Response, error) {
	groupID := req.Query["simulation_group_id"]
	if groupID == "" {
		return dispatch.Error(400, "simulation_group_id is required"), nil
	}

	patients, err := h.patientService.GetPatientsByGroup(ctx, groupID)
	if err != nil {
		return internalError(h.logger, err), nil
	}
	return dispatch.JSON(200, patients), nil
}

func (h *PatientHandler) ReorderPatient(ctx context.Context, req dispatch.Request) (dispatch.Response, error) {
	patientID := req.Query["patient_id"]
	patientNumber := req.Query["patient_number"]
	instructorEmail := req.Query["instructor_email"]
	if patientID == "" || patientNumber == "" || instructorEmail == "" {
		return dispatch.Error(400, "patient_id, patient_number, or instructor_email is missing in query string parameters"), nil
	}

	var body dto.PatientEditDTO
	if err := json.Unmarshal(req.Body, &body); err != nil {
		return dispatch.Error(400, "Invalid JSON payload: "+err.Error()), nil
	}
	if err := h.validate.Struct(&body); err != nil {
		return dispatch.Error(400, "patient_name is required in the body"), nil
	}

	number, err := strconv.Atoi(patientNumber)
	if err != nil {
		return dispatch.Error(400, "patient_number must be an integer"), nil
	}

	if err := h.patientService.EditPatient(ctx, patientID, body.PatientName, number, instructorEmail); err != nil {
		return internalError(h.logger, err), nil
	}
	return dispatch.JSON(200, map[string]string{"message": "Patient updated successfully"}), nil
}
