package handler

import (
	"context"
	"encoding/json"
	"errors"

	"app/internal/api/v1/dispatch"
	"app/internal/api/v1/dto"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// CourseHandler covers course lookups, the system prompt chain and the
// course access code.
type CourseHandler struct {
	courseService service.CourseService
	validate      *validator.Validate
	logger        zerolog.Logger
}

func NewCourseHandler(courseService service.CourseService, v *validator.Validate, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
		validate:      v,
		logger:        logger.With().Str("handler", "CourseHandler").Logger(),
	}
}

func (h *CourseHandler) Register(d *dispatch.Dispatcher) {
	d.Register(dispatch.RouteStudentCourses, h.StudentCourses)
	d.Register(dispatch.RouteInstructorGroups, h.InstructorGroups)
	d.Register(dispatch.RouteGetPrompt, h.GetPrompt)
	d.Register(dispatch.RouteUpdatePrompt, h.UpdatePrompt)
	d.Register(dispatch.RoutePreviousPrompts, h.PreviousPrompts)
	d.Register(dispatch.RouteGenerateAccessCode, h.GenerateAccessCode)
	d.Register(dispatch.RouteGetAccessCode, h.GetAccessCode)
}

// StudentCourses lists every course the given user is enrolled in. The
// plain-string error bodies are legacy behavior the frontend matches on.
func (h *CourseHandler) StudentCourses(ctx context.Context, req dispatch.Request) (dispatch.Response, error) {
	email := req.Query["email"]
	if email == "" {
		return dispatch.Text(400, "Invalid value"), nil
	}

	courses, err := h.courseService.GetCoursesForUser(ctx, email)
	if errors.Is(err, service.ErrUserNotFound) {
		return dispatch.Text(404, "User not found"), nil
	}
	if err != nil {
		// No classified recovery on this route; the dispatcher catch-all
		// reports the failure.
		return dispatch.Response{}, err
	}
	return dispatch.JSON(200, courses), nil
}

// InstructorGroups lists the simulation groups the caller instructs.
func (h *CourseHandler) InstructorGroups(ctx context.Context, req dispatch.Request) (dispatch.Response, error) {
	email := req.Query["email"]
	if email == "" {
		return dispatch.Error(400, "email is required"), nil
	}

	groups, err := h.courseService.GetGroupsForInstructor(ctx, email)
	if errors.Is(err, service.ErrUserNotFound) {
		return dispatch.Error(404, "Instructor not found"), nil
	}
	if err != nil {
		return internalError(h.logger, err), nil
	}
	return dispatch.JSON(200, groups), nil
}

func (h *CourseHandler) GetPrompt(ctx context.Context, req dispatch.Request) (dispatch.Response, error) {
	courseID := req.Query["course_id"]
	if courseID == "" {
		return dispatch.Text(400, "course_id is missing"), nil
	}

	prompt, err := h.courseService.GetSystemPrompt(ctx, courseID)
	if errors.Is(err, service.ErrCourseNotFound) {
		return dispatch.Error(404, "Course not found"), nil
	}
	if err != nil {
		return internalError(h.logger, err), nil
	}
	return dispatch.JSON(200, dto.PromptResponseDTO{SystemPrompt: prompt}), nil
}

// UpdatePrompt overwrites the course prompt; the superseded value is archived
// in the engagement log so previous prompts can be read back.
func (h *CourseHandler) UpdatePrompt(ctx context.Context, req dispatch.Request) (dispatch.Response, error) {
	courseID := req.Query["course_id"]
	instructorEmail := req.Query["instructor_email"]
	if courseID == "" || instructorEmail == "" || len(req.Body) == 0 {
		return dispatch.Text(400, "course_id, instructor_email, or request body is missing"), nil
	}

	var body dto.PromptUpdateDTO
	if err := json.Unmarshal(req.Body, &body); err != nil {
		return dispatch.Error(400, "Invalid JSON payload: "+err.Error()), nil
	}
	if err := h.validate.Struct(&body); err != nil {
		return dispatch.Error(400, "prompt is required in the body"), nil
	}

	updated, err := h.courseService.UpdateSystemPrompt(ctx, courseID, instructorEmail, body.Prompt)
	if errors.Is(err, service.ErrCourseNotFound) {
		return dispatch.Error(404, "Course not found"), nil
	}
	if err != nil {
		return internalError(h.logger, err), nil
	}
	return dispatch.JSON(200, updated), nil
}

func (h *CourseHandler) PreviousPrompts(ctx context.Context, req dispatch.Request) (dispatch.Response, error) {
	courseID := req.Query["course_id"]
	instructorEmail := req.Query["instructor_email"]
	if courseID == "" || instructorEmail == "" {
		return dispatch.Text(400, "course_id or instructor_email query parameter is required"), nil
	}

	versions, err := h.courseService.GetPromptVersions(ctx, courseID)
	if err != nil {
		return internalError(h.logger, err), nil
	}
	return dispatch.JSON(200, versions), nil
}

func (h *CourseHandler) GenerateAccessCode(ctx context.Context, req dispatch.Request) (dispatch.Response, error) {
	courseID := req.Query["course_id"]
	if courseID == "" {
		return dispatch.Error(400, "course_id is required"), nil
	}

	code, err := h.courseService.GenerateAccessCode(ctx, courseID)
	if errors.Is(err, service.ErrCourseNotFound) {
		return dispatch.Error(404, "Course not found"), nil
	}
	if err != nil {
		return internalError(h.logger, err), nil
	}
	return dispatch.JSON(200, dto.AccessCodeResponseDTO{
		Message:    "Access code generated successfully",
		AccessCode: code,
	}), nil
}

func (h *CourseHandler) GetAccessCode(ctx context.Context, req dispatch.Request) (dispatch.Response, error) {
	courseID := req.Query["course_id"]
	if courseID == "" {
		return dispatch.Error(400, "course_id is required"), nil
	}

	code, err := h.courseService.GetAccessCode(ctx, courseID)
	if errors.Is(err, service.ErrCourseNotFound) {
		return dispatch.Error(404, "Course not found"), nil
	}
	if err != nil {
		return internalError(h.logger, err), nil
	}
	return dispatch.JSON(200, dto.CourseAccessCodeDTO{CourseAccessCode: code}), nil
}
