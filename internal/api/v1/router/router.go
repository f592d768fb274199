package router

import (
	"context"
	"database/sql"
	"io"
	"net/http"

	"app/internal/api/v1/dispatch"
	"app/internal/api/v1/handler"
	"app/internal/config"
	"app/internal/db"
	"app/internal/identity"
	"app/internal/middleware"
	"app/internal/repository"
	"app/internal/service"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-playground/validator/v10"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// New wires the whole instructor API: AWS clients, database handle,
// repositories, services, handlers and the dispatcher, then mounts the
// dispatcher behind the auth middleware.
func New(cfg *config.Config, logger zerolog.Logger) (http.Handler, *sql.DB, error) {
	ctx := context.Background()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load AWS config")
		return nil, nil, err
	}

	database, err := db.Open(ctx, cfg, awsCfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to open database")
		return nil, nil, err
	}

	s3Client := s3.NewFromConfig(awsCfg)
	resolver := identity.NewCognitoResolver(awsCfg, cfg.UserPool)
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Repositories & services & handlers
	userRepo := repository.NewUserRepo(database)
	courseRepo := repository.NewCourseRepo(database)
	groupRepo := repository.NewGroupRepo(database)
	moduleRepo := repository.NewModuleRepo(database)
	enrolmentRepo := repository.NewEnrolmentRepo(database)
	patientRepo := repository.NewPatientRepo(database)
	messageRepo := repository.NewMessageRepo(database)
	engagementRepo := repository.NewEngagementRepo(database)
	analyticsRepo := repository.NewAnalyticsRepo(database)

	courseSvc := service.NewCourseService(courseRepo, groupRepo, userRepo, engagementRepo, logger)
	moduleSvc := service.NewModuleService(moduleRepo, enrolmentRepo, engagementRepo, logger)
	patientSvc := service.NewPatientService(patientRepo, engagementRepo, logger)
	studentSvc := service.NewStudentService(enrolmentRepo, userRepo, messageRepo, engagementRepo, logger)
	analyticsSvc := service.NewAnalyticsService(analyticsRepo, logger)
	storageSvc := service.NewStorageService(s3Client, cfg.S3Bucket, patientRepo, logger)

	d := dispatch.New(resolver, logger)
	handler.NewCourseHandler(courseSvc, validate, logger).Register(d)
	handler.NewModuleHandler(moduleSvc, validate, logger).Register(d)
	handler.NewPatientHandler(patientSvc, validate, logger).Register(d)
	handler.NewStudentHandler(studentSvc, logger).Register(d)
	handler.NewAnalyticsHandler(analyticsSvc, logger).Register(d)
	handler.NewFileHandler(storageSvc, logger).Register(d)

	authMiddleware := middleware.AuthMiddleware(cfg.JWTSecret)

	mux := http.NewServeMux()
	mux.Handle("/instructor/", authMiddleware(dispatchAdapter(d)))

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return middleware.LoggerMiddleware(c.Handler(mux)), database, nil
}

// dispatchAdapter translates an HTTP request into the dispatcher's request
// descriptor and writes the envelope back out.
func dispatchAdapter(d *dispatch.Dispatcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callerID, _ := r.Context().Value(middleware.UserContextKey).(string)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}

		query := make(map[string]string)
		for key, values := range r.URL.Query() {
			if len(values) > 0 {
				query[key] = values[0]
			}
		}

		resp := d.Dispatch(r.Context(), dispatch.Request{
			Method:   r.Method,
			Path:     r.URL.Path,
			Query:    query,
			Body:     body,
			CallerID: callerID,
		})

		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}
		w.WriteHeader(resp.StatusCode)
		io.WriteString(w, resp.Body)
	})
}
