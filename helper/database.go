package helper

import (
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// DatabaseConfiguration holds the PostgreSQL connection parameters.
type DatabaseConfiguration struct {
	Host     string
	Port     string
	Database string
	Username string
	Password string
	Schema   string
	SSLMode  string
}

// NewDatabaseConfiguration builds a DatabaseConfiguration from environment
// variables (DB_HOST, DB_PORT, DB_DATABASE, DB_USERNAME, DB_PASSWORD and
// optionally DB_SCHEMA, DB_SSLMODE). A .env file is loaded first if
// present, so local development does not need exported variables.
func NewDatabaseConfiguration() (*DatabaseConfiguration, error) {
	// Missing .env is fine, the variables may already be exported.
	_ = godotenv.Load()

	config := &DatabaseConfiguration{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		Database: os.Getenv("DB_DATABASE"),
		Username: os.Getenv("DB_USERNAME"),
		Password: os.Getenv("DB_PASSWORD"),
		Schema:   os.Getenv("DB_SCHEMA"),
		SSLMode:  os.Getenv("DB_SSLMODE"),
	}

	if config.Host == "" || config.Port == "" || config.Database == "" || config.Username == "" {
		return nil, NewError("database configuration", fmt.Errorf("missing required environment variables DB_HOST, DB_PORT, DB_DATABASE or DB_USERNAME"))
	}

	if config.Schema == "" {
		config.Schema = "public"
	}
	if config.SSLMode == "" {
		config.SSLMode = "disable"
	}

	return config, nil
}

// ConnectionString renders the lib/pq connection string.
func (c *DatabaseConfiguration) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s dbname=%s user=%s password=%s search_path=%s sslmode=%s",
		c.Host, c.Port, c.Database, c.Username, c.Password, c.Schema, c.SSLMode,
	)
}

// Database wraps the sql.DB connection together with the logger shared by
// all database handlers.
type Database struct {
	Name     string
	Instance *sql.DB
	Logger   *slog.Logger
}

// NewDatabase opens a PostgreSQL connection for the given configuration.
// It panics if the database is unreachable, since nothing in the library
// can proceed without a connection.
func NewDatabase(name string, config *DatabaseConfiguration, logger *slog.Logger) *Database {
	instance, err := sql.Open("postgres", config.ConnectionString())
	if err != nil {
		log.Panicf("error opening database connection: %v", err)
	}

	instance.SetMaxOpenConns(25)
	instance.SetMaxIdleConns(25)
	instance.SetConnMaxLifetime(5 * time.Minute)

	if err := instance.Ping(); err != nil {
		log.Panicf("error pinging database: %v", err)
	}

	logger.Info("Connected to database", slog.String("name", name), slog.String("host", config.Host))

	return &Database{
		Name:     name,
		Instance: instance,
		Logger:   logger,
	}
}

// NewTestDatabase opens a connection for tests, logging to stdout.
func NewTestDatabase(config *DatabaseConfiguration) *Database {
	logger := slog.New(NewPrettyHandler(os.Stdout, PrettyHandlerOptions{}))
	return NewDatabase("test", config, logger)
}

// Close closes the underlying connection.
func (d *Database) Close() error {
	if d.Instance != nil {
		return d.Instance.Close()
	}
	return nil
}
