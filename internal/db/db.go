package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"app/internal/config"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
)

// credentials is the JSON shape stored in Secrets Manager for the database
// user.
type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	DBName   string `json:"dbname"`
	Port     int    `json:"port"`
}

// Open builds the shared database handle. Deployed environments resolve the
// user credentials from Secrets Manager and connect through the RDS proxy
// endpoint; DB_CONNECTION_STRING short-circuits both for local development.
func Open(ctx context.Context, cfg *config.Config, awsCfg awssdk.Config, logger zerolog.Logger) (*sql.DB, error) {
	dsn := cfg.DBConnectionString
	if dsn == "" {
		creds, err := fetchCredentials(ctx, cfg, awsCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch database credentials: %w", err)
		}
		dsn = fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
			creds.Username, creds.Password, cfg.RDSProxyEndpoint, creds.Port, creds.DBName)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}
	logger.Info().Msg("Database connection successful")

	// Set reasonable connection pool limits
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return db, nil
}

func fetchCredentials(ctx context.Context, cfg *config.Config, awsCfg awssdk.Config) (*credentials, error) {
	client := secretsmanager.NewFromConfig(awsCfg)
	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: awssdk.String(cfg.DBSecretName),
	})
	if err != nil {
		return nil, err
	}
	var creds credentials
	if err := json.Unmarshal([]byte(awssdk.ToString(out.SecretString)), &creds); err != nil {
		return nil, fmt.Errorf("failed to decode secret payload: %w", err)
	}
	return &creds, nil
}
