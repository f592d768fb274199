package handler

import (
	"context"

	"app/internal/model"
)

// Stub services record how often they were reached so tests can assert that
// rejected requests never touch the service layer.

type stubCourseService struct {
	calls    int
	courses  []model.Course
	groups   []model.SimulationGroup
	prompt   string
	updated  *model.Course
	versions []model.PromptVersion
	code     string
	err      error
}

func (s *stubCourseService) GetCoursesForUser(_ context.Context, _ string) ([]model.Course, error) {
	s.calls++
	return s.courses, s.err
}

func (s *stubCourseService) GetGroupsForInstructor(_ context.Context, _ string) ([]model.SimulationGroup, error) {
	s.calls++
	return s.groups, s.err
}

func (s *stubCourseService) GetSystemPrompt(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.prompt, s.err
}

func (s *stubCourseService) UpdateSystemPrompt(_ context.Context, _, _, _ string) (*model.Course, error) {
	s.calls++
	return s.updated, s.err
}

func (s *stubCourseService) GetPromptVersions(_ context.Context, _ string) ([]model.PromptVersion, error) {
	s.calls++
	return s.versions, s.err
}

func (s *stubCourseService) GenerateAccessCode(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.code, s.err
}

func (s *stubCourseService) GetAccessCode(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.code, s.err
}

type stubModuleService struct {
	calls   int
	created *model.CourseModule
	file    *model.ModuleFile
	err     error
}

func (s *stubModuleService) CreateModule(_ context.Context, _, _, _ string, _ int, _ string) (*model.CourseModule, error) {
	s.calls++
	return s.created, s.err
}

func (s *stubModuleService) EditModule(_ context.Context, _, _, _, _ string) error {
	s.calls++
	return s.err
}

func (s *stubModuleService) DeleteModule(_ context.Context, _ string) error {
	s.calls++
	return s.err
}

func (s *stubModuleService) UpsertFileMetadata(_ context.Context, _, _, _, _ string) (*model.ModuleFile, error) {
	s.calls++
	return s.file, s.err
}

type stubPatientService struct {
	calls    int
	patients []model.PatientSummary
	err      error
}

func (s *stubPatientService) GetPatientsByGroup(_ context.Context, _ string) ([]model.PatientSummary, error) {
	s.calls++
	return s.patients, s.err
}

func (s *stubPatientService) EditPatient(_ context.Context, _, _ string, _ int, _ string) error {
	s.calls++
	return s.err
}

type stubStudentService struct {
	calls    int
	students []model.CourseStudent
	deleted  *model.Enrolment
	messages []model.Message
	err      error
}

func (s *stubStudentService) GetStudentsByCourse(_ context.Context, _ string) ([]model.CourseStudent, error) {
	s.calls++
	return s.students, s.err
}

func (s *stubStudentService) RemoveStudent(_ context.Context, _, _ string) (*model.Enrolment, error) {
	s.calls++
	return s.deleted, s.err
}

func (s *stubStudentService) GetStudentMessages(_ context.Context, _, _ string) ([]model.Message, error) {
	s.calls++
	return s.messages, s.err
}

type stubStorageService struct {
	calls int
	url   string
	err   error
}

func (s *stubStorageService) PresignedUploadURL(_ context.Context, _, _, _, _ string) (string, error) {
	s.calls++
	return s.url, s.err
}

func (s *stubStorageService) DeletePatientFile(_ context.Context, _, _, _, _, _ string) error {
	s.calls++
	return s.err
}

type stubAnalyticsService struct {
	calls int
	rows  []model.PatientAnalytics
	err   error
}

func (s *stubAnalyticsService) GetGroupAnalytics(_ context.Context, _ string) ([]model.PatientAnalytics, error) {
	s.calls++
	return s.rows, s.err
}
