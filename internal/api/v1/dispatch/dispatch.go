// Package dispatch routes instructor request descriptors to operation
// handlers and wraps every outcome in a uniform response envelope. It is the
// only place that enforces the caller-email authorization rule, and it never
// lets a handler failure escape: anything unclassified degrades to a 400
// envelope carrying the error message.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"

	"app/internal/identity"

	"github.com/rs/zerolog"
)

// Request is the transport-agnostic request descriptor.
type Request struct {
	Method   string
	Path     string
	Query    map[string]string
	Body     []byte
	CallerID string
}

// RouteID tags each supported (method, path) pair.
type RouteID int

const (
	RouteStudentCourses RouteID = iota
	RouteInstructorGroups
	RouteGroupAnalytics
	RouteUpdateMetadata
	RouteCreateModule
	RouteReorderPatient
	RouteEditModule
	RouteUpdatePrompt
	RouteViewStudents
	RouteDeleteStudent
	RouteViewPatients
	RouteDeleteModule
	RouteGetPrompt
	RouteStudentMessages
	RouteGenerateAccessCode
	RouteGetAccessCode
	RoutePreviousPrompts
	RouteGeneratePresignedURL
	RouteDeleteFile
)

type routeKey struct {
	method string
	path   string
}

var routes = map[routeKey]RouteID{
	{"GET", "/instructor/student_course"}:         RouteStudentCourses,
	{"GET", "/instructor/groups"}:                 RouteInstructorGroups,
	{"GET", "/instructor/analytics"}:              RouteGroupAnalytics,
	{"PUT", "/instructor/update_metadata"}:        RouteUpdateMetadata,
	{"POST", "/instructor/create_module"}:         RouteCreateModule,
	{"PUT", "/instructor/reorder_patient"}:        RouteReorderPatient,
	{"PUT", "/instructor/edit_module"}:            RouteEditModule,
	{"PUT", "/instructor/prompt"}:                 RouteUpdatePrompt,
	{"GET", "/instructor/view_students"}:          RouteViewStudents,
	{"DELETE", "/instructor/delete_student"}:      RouteDeleteStudent,
	{"GET", "/instructor/view_patients"}:          RouteViewPatients,
	{"DELETE", "/instructor/delete_module"}:       RouteDeleteModule,
	{"GET", "/instructor/get_prompt"}:             RouteGetPrompt,
	{"GET", "/instructor/view_student_messages"}:  RouteStudentMessages,
	{"PUT", "/instructor/generate_access_code"}:   RouteGenerateAccessCode,
	{"GET", "/instructor/get_access_code"}:        RouteGetAccessCode,
	{"GET", "/instructor/previous_prompts"}:       RoutePreviousPrompts,
	{"GET", "/instructor/generate_presigned_url"}: RouteGeneratePresignedURL,
	{"DELETE", "/instructor/delete_file"}:         RouteDeleteFile,
}

// HandlerFunc is one operation handler. Classified outcomes are encoded into
// the returned Response; an unclassified failure is returned as an error and
// handled by the dispatcher catch-all.
type HandlerFunc func(ctx context.Context, req Request) (Response, error)

type Dispatcher struct {
	resolver identity.Resolver
	handlers map[RouteID]HandlerFunc
	logger   zerolog.Logger
}

func New(resolver identity.Resolver, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		resolver: resolver,
		handlers: make(map[RouteID]HandlerFunc),
		logger:   logger.With().Str("component", "dispatcher").Logger(),
	}
}

// Register binds a handler to a route. Registering the same route twice is a
// wiring bug and panics at startup.
func (d *Dispatcher) Register(id RouteID, h HandlerFunc) {
	if _, dup := d.handlers[id]; dup {
		panic(fmt.Sprintf("dispatch: route %d registered twice", id))
	}
	d.handlers[id] = h
}

// Dispatch resolves the caller, enforces the email authorization rule, runs
// the matched handler and wraps the outcome. It never returns an error: the
// caller always gets a well-formed envelope.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) Response {
	callerEmail, err := d.resolver.ResolveEmail(ctx, req.CallerID)
	if err != nil {
		d.logger.Error().Err(err).Msg("Failed to resolve caller identity")
		return Error(401, "Unauthorized")
	}

	// Requests acting on behalf of an email must come from that email.
	queryEmail := req.Query["email"]
	instructorEmail := req.Query["instructor_email"]
	if (queryEmail != "" && queryEmail != callerEmail) ||
		(instructorEmail != "" && instructorEmail != callerEmail) {
		return Error(401, "Unauthorized")
	}

	resp, err := d.invoke(ctx, req)
	if err != nil {
		// Catch-all: surface only the message, never a trace.
		d.logger.Error().Err(err).Str("method", req.Method).Str("path", req.Path).Msg("Unhandled operation error")
		body, _ := json.Marshal(err.Error())
		return Response{StatusCode: 400, Headers: corsHeaders(), Body: string(body)}
	}
	return resp
}

func (d *Dispatcher) invoke(ctx context.Context, req Request) (resp Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	id, ok := routes[routeKey{req.Method, req.Path}]
	if !ok {
		return Response{}, fmt.Errorf("unsupported route: %q", req.Method+" "+req.Path)
	}
	h, ok := d.handlers[id]
	if !ok {
		return Response{}, fmt.Errorf("unsupported route: %q", req.Method+" "+req.Path)
	}
	return h(ctx, req)
}
