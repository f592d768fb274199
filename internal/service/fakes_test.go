package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"app/internal/model"
	"app/internal/repository"
)

// In-memory repository fakes shared by the service tests. Each fake keeps
// just enough state to observe the writes a service performs.

type fakeUserRepo struct {
	idsByEmail map[string]string
}

func (f *fakeUserRepo) GetIDByEmail(_ context.Context, email string) (string, error) {
	return f.idsByEmail[email], nil
}

type fakeCourseRepo struct {
	coursesByUser map[string][]model.Course
	courses       map[string]*model.Course
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{
		coursesByUser: make(map[string][]model.Course),
		courses:       make(map[string]*model.Course),
	}
}

func (f *fakeCourseRepo) GetCoursesByUserID(_ context.Context, userID string) ([]model.Course, error) {
	courses := f.coursesByUser[userID]
	if courses == nil {
		courses = []model.Course{}
	}
	return courses, nil
}

func (f *fakeCourseRepo) GetSystemPrompt(_ context.Context, courseID string) (*string, error) {
	c, ok := f.courses[courseID]
	if !ok {
		return nil, nil
	}
	prompt := c.SystemPrompt
	return &prompt, nil
}

func (f *fakeCourseRepo) UpdateSystemPrompt(_ context.Context, courseID, prompt string) (*model.Course, error) {
	c, ok := f.courses[courseID]
	if !ok {
		return nil, nil
	}
	c.SystemPrompt = prompt
	updated := *c
	return &updated, nil
}

func (f *fakeCourseRepo) GetAccessCode(_ context.Context, courseID string) (*string, error) {
	c, ok := f.courses[courseID]
	if !ok {
		return nil, nil
	}
	code := c.CourseAccessCode
	return &code, nil
}

func (f *fakeCourseRepo) UpdateAccessCode(_ context.Context, courseID, code string) (*model.Course, error) {
	c, ok := f.courses[courseID]
	if !ok {
		return nil, nil
	}
	c.CourseAccessCode = code
	updated := *c
	return &updated, nil
}

type fakeGroupRepo struct {
	groupsByUser map[string][]model.SimulationGroup
}

func (f *fakeGroupRepo) GetGroupsByInstructorID(_ context.Context, userID string) ([]model.SimulationGroup, error) {
	groups := f.groupsByUser[userID]
	if groups == nil {
		groups = []model.SimulationGroup{}
	}
	return groups, nil
}

type appendedEntry struct {
	userEmail string
	entry     model.EngagementLogEntry
}

type fakeEngagementRepo struct {
	entries []appendedEntry
}

func (f *fakeEngagementRepo) Append(_ context.Context, e model.EngagementLogEntry) error {
	e.Timestamp = time.Now()
	f.entries = append(f.entries, appendedEntry{entry: e})
	return nil
}

func (f *fakeEngagementRepo) AppendForEmail(_ context.Context, userEmail string, e model.EngagementLogEntry) error {
	e.Timestamp = time.Now()
	f.entries = append(f.entries, appendedEntry{userEmail: userEmail, entry: e})
	return nil
}

func (f *fakeEngagementRepo) GetPromptVersions(_ context.Context, courseID string) ([]model.PromptVersion, error) {
	versions := []model.PromptVersion{}
	for i := len(f.entries) - 1; i >= 0; i-- {
		e := f.entries[i].entry
		if e.EngagementType != model.EngagementUpdatedPrompt {
			continue
		}
		if e.CourseID == nil || *e.CourseID != courseID || e.EngagementDetails == nil {
			continue
		}
		versions = append(versions, model.PromptVersion{
			Timestamp:      e.Timestamp,
			PreviousPrompt: *e.EngagementDetails,
		})
	}
	return versions, nil
}

type fakeEnrolmentRepo struct {
	enrolments []model.Enrolment
	students   map[string][]model.CourseStudent
}

func (f *fakeEnrolmentRepo) GetEnrolmentIDsByCourse(_ context.Context, courseID string) ([]string, error) {
	ids := []string{}
	for _, e := range f.enrolments {
		if e.CourseID == courseID {
			ids = append(ids, e.EnrolmentID)
		}
	}
	return ids, nil
}

func (f *fakeEnrolmentRepo) GetStudentsByCourse(_ context.Context, courseID string) ([]model.CourseStudent, error) {
	students := f.students[courseID]
	if students == nil {
		students = []model.CourseStudent{}
	}
	return students, nil
}

func (f *fakeEnrolmentRepo) DeleteStudent(_ context.Context, courseID, userID string) (*model.Enrolment, error) {
	for i, e := range f.enrolments {
		if e.CourseID == courseID && e.UserID == userID && e.EnrolmentType == "student" {
			deleted := e
			f.enrolments = append(f.enrolments[:i], f.enrolments[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, nil
}

type fakeModuleRepo struct {
	mu sync.Mutex

	modules        []model.CourseModule
	files          map[string]*model.ModuleFile
	metadataWrites int
	studentModules []model.StudentModule
	fanOutErr      error
}

func newFakeModuleRepo() *fakeModuleRepo {
	return &fakeModuleRepo{files: make(map[string]*model.ModuleFile)}
}

func fileKey(moduleID, filename, filetype string) string {
	return moduleID + "|" + filename + "|" + filetype
}

func (f *fakeModuleRepo) ModuleNameExists(_ context.Context, conceptID, moduleName, excludeModuleID string) (bool, error) {
	for _, m := range f.modules {
		if m.ConceptID == conceptID && m.ModuleName == moduleName && m.ModuleID != excludeModuleID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeModuleRepo) CreateModule(_ context.Context, conceptID, moduleName string, moduleNumber int) (*model.CourseModule, error) {
	m := model.CourseModule{
		ModuleID:     fmt.Sprintf("module-%d", len(f.modules)+1),
		ConceptID:    conceptID,
		ModuleName:   moduleName,
		ModuleNumber: moduleNumber,
	}
	f.modules = append(f.modules, m)
	return &m, nil
}

func (f *fakeModuleRepo) UpdateModule(_ context.Context, moduleID, moduleName, conceptID string) error {
	for i := range f.modules {
		if f.modules[i].ModuleID == moduleID {
			f.modules[i].ModuleName = moduleName
			f.modules[i].ConceptID = conceptID
			return nil
		}
	}
	return nil
}

func (f *fakeModuleRepo) DeleteModule(_ context.Context, moduleID string) error {
	for i := range f.modules {
		if f.modules[i].ModuleID == moduleID {
			f.modules = append(f.modules[:i], f.modules[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeModuleRepo) GetModuleFile(_ context.Context, moduleID, filename, filetype string) (*model.ModuleFile, error) {
	file, ok := f.files[fileKey(moduleID, filename, filetype)]
	if !ok {
		return nil, nil
	}
	cp := *file
	return &cp, nil
}

func (f *fakeModuleRepo) InsertModuleFile(_ context.Context, file *model.ModuleFile) error {
	cp := *file
	f.files[fileKey(file.ModuleID, file.Filename, file.Filetype)] = &cp
	return nil
}

func (f *fakeModuleRepo) UpdateModuleFileMetadata(_ context.Context, moduleID, filename, filetype, metadata string) (*model.ModuleFile, error) {
	file, ok := f.files[fileKey(moduleID, filename, filetype)]
	if !ok {
		return nil, nil
	}
	f.metadataWrites++
	file.Metadata = metadata
	cp := *file
	return &cp, nil
}

func (f *fakeModuleRepo) CreateStudentModule(_ context.Context, courseModuleID, enrolmentID string, moduleScore float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fanOutErr != nil {
		return f.fanOutErr
	}
	f.studentModules = append(f.studentModules, model.StudentModule{
		StudentModuleID: fmt.Sprintf("sm-%d", len(f.studentModules)+1),
		CourseModuleID:  courseModuleID,
		EnrolmentID:     enrolmentID,
		ModuleScore:     moduleScore,
	})
	return nil
}

type fakeMessageRepo struct {
	messagesByUser map[string][]model.Message
}

func (f *fakeMessageRepo) GetStudentMessages(_ context.Context, userID, courseID string) ([]model.Message, error) {
	messages := f.messagesByUser[userID]
	if messages == nil {
		messages = []model.Message{}
	}
	return messages, nil
}

type fakeAnalyticsRepo struct {
	messageCounts []repository.PatientMessageCount
	accessCounts  []repository.PatientAccessCount
	averages      []repository.PatientAverageScore
	perfects      []repository.PatientPerfectScore
}

func (f *fakeAnalyticsRepo) GetMessageCounts(_ context.Context, _ string) ([]repository.PatientMessageCount, error) {
	return f.messageCounts, nil
}

func (f *fakeAnalyticsRepo) GetAccessCounts(_ context.Context, _ string) ([]repository.PatientAccessCount, error) {
	return f.accessCounts, nil
}

func (f *fakeAnalyticsRepo) GetAverageScores(_ context.Context, _ string) ([]repository.PatientAverageScore, error) {
	return f.averages, nil
}

func (f *fakeAnalyticsRepo) GetPerfectScorePercentages(_ context.Context, _ string) ([]repository.PatientPerfectScore, error) {
	return f.perfects, nil
}

type fakePatientRepo struct {
	patientsByGroup map[string][]model.PatientSummary
	updates         []model.Patient
	deletedFiles    []string
}

func (f *fakePatientRepo) GetPatientsByGroup(_ context.Context, simulationGroupID string) ([]model.PatientSummary, error) {
	patients := f.patientsByGroup[simulationGroupID]
	if patients == nil {
		patients = []model.PatientSummary{}
	}
	return patients, nil
}

func (f *fakePatientRepo) UpdatePatient(_ context.Context, patientID, patientName string, patientNumber int) error {
	f.updates = append(f.updates, model.Patient{
		PatientID:     patientID,
		PatientName:   patientName,
		PatientNumber: patientNumber,
	})
	return nil
}

func (f *fakePatientRepo) DeletePatientFile(_ context.Context, patientID, filename, filetype string) error {
	f.deletedFiles = append(f.deletedFiles, fileKey(patientID, filename, filetype))
	return nil
}
