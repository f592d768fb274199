package handler

import (
	"context"
	"errors"

	"app/internal/api/v1/dispatch"
	"app/internal/service"

	"github.com/rs/zerolog"
)

type StudentHandler struct {
	studentService service.StudentService
	logger         zerolog.Logger
}

func NewStudentHandler(studentService service.StudentService, logger zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		studentService: studentService,
		logger:         logger.With().Str("handler", "StudentHandler").Logger(),
	}
}

func (h *StudentHandler) Register(d *dispatch.Dispatcher) {
	d.Register(dispatch.RouteViewStudents, h.ViewStudents)
	d.Register(dispatch.RouteDeleteStudent, h.DeleteStudent)
	d.Register(dispatch.RouteStudentMessages, h.ViewStudentMessages)
}

func (h *StudentHandler) ViewStudents(ctx context.Context, req dispatch.Request) (dispatch.Response, error) {
	courseID := req.Query["course_id"]
	if courseID == "" {
		return dispatch.Error(400, "course_id is required"), nil
	}

	students, err := h.studentService.GetStudentsByCourse(ctx, courseID)
	if err != nil {
		return internalError(h.logger, err), nil
	}
	return dispatch.JSON(200, students), nil
}

// DeleteStudent unenrols a student and returns the deleted enrolment row.
func (h *StudentHandler) DeleteStudent(ctx context.Context, req dispatch.Request) (dispatch.Response, error) {
	courseID := req.Query["course_id"]
	instructorEmail := req.Query["instructor_email"]
	userEmail := req.Query["user_email"]
	if courseID == "" || instructorEmail == "" || userEmail == "" {
		return dispatch.Error(400, "course_id, user_email, and instructor_email are required"), nil
	}

	deleted, err := h.studentService.RemoveStudent(ctx, courseID, userEmail)
	if errors.Is(err, service.ErrUserNotFound) {
		return dispatch.Error(404, "User not found"), nil
	}
	if errors.Is(err, service.ErrStudentNotEnrolled) {
		return dispatch.Error(404, "Student not found in the course"), nil
	}
	if err != nil {
		return internalError(h.logger, err), nil
	}
	return dispatch.JSON(200, deleted), nil
}

func (h *StudentHandler) ViewStudentMessages(ctx context.Context, req dispatch.Request) (dispatch.Response, error) {
	studentEmail := req.Query["student_email"]
	courseID := req.Query["course_id"]
	if studentEmail == "" || courseID == "" {
		return dispatch.Error(400, "student_email and course_id are required"), nil
	}

	messages, err := h.studentService.GetStudentMessages(ctx, studentEmail, courseID)
	if errors.Is(err, service.ErrUserNotFound) {
		return dispatch.Error(404, "User not found"), nil
	}
	if err != nil {
		return internalError(h.logger, err), nil
	}
	return dispatch.JSON(200, messages), nil
}
