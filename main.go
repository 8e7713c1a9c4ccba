package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	api "github.com/jjmunozz/StrategicTeam-SGC/api"
	"github.com/jjmunozz/StrategicTeam-SGC/config"
	"github.com/jjmunozz/StrategicTeam-SGC/database"
	"github.com/jjmunozz/StrategicTeam-SGC/errs"
	"github.com/jjmunozz/StrategicTeam-SGC/models"
)

func main() {
	envFile := pflag.String("env-file", ".env", "environment file loaded before reading configuration")
	seedOnly := pflag.Bool("seed-only", false, "migrate and seed the requirement catalog, then exit")
	generateModels := pflag.Bool("generate-models", false, "generate typed query helpers, then exit")
	generateOut := pflag.String("generate-out", "./query", "output directory for --generate-models")
	columnReport := pflag.Bool("column-report", false, "print columns not mapped by the models, then exit")
	pflag.Parse()

	// Load environment variables from .env file
	if err := godotenv.Load(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading %s file: %v\n", *envFile, err)
	}

	c := config.New()
	setupLogger(c)
	log.Info().Msg("Initializing app...")

	db, err := openDatabase(c)
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}

	currentDB := database.New(db)

	pingCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = currentDB.Ping(pingCtx)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Error testing database connection")
	}

	// If generating models, run generation and exit
	if *generateModels {
		log.Info().Str("out", *generateOut).Msg("Generating models and query helpers...")
		if err := models.GenerateModels(db, *generateOut, os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("Error generating models")
		}
		return
	}

	// If generating column mismatch report, run report and exit
	if *columnReport {
		mismatches, err := models.GenerateColumnMismatchReport(db, os.Stdout)
		if err != nil {
			log.Fatal().Err(err).Msg("Error generating column mismatch report")
		}
		if mismatches > 0 {
			os.Exit(1)
		}
		return
	}

	if err := currentDB.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("Error migrating database")
	}

	seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	inserted, err := currentDB.SeedRequirements(seedCtx)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Error seeding requirement catalog")
	}
	log.Info().Int("inserted", inserted).Msg("Requirement catalog ready")

	if *seedOnly {
		return
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Err(fatalErr).Msg("Closing server")

	server.ShutdownGracefully(30 * time.Second)
}

// setupLogger configures the global zerolog logger from LOG_LEVEL and LOG_FORMAT.
func setupLogger(c map[string]string) {
	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(strings.ToLower(config.GetString(c, "LOG_LEVEL", "info")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if config.GetString(c, "LOG_FORMAT", "json") == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

// openDatabase connects according to DB_TYPE and, when DB_REPLICA_DSN is set,
// sends reads outside transactions to the listed replicas.
func openDatabase(c map[string]string) (*gorm.DB, error) {
	dialector, err := dialectorFor(c)
	if err != nil {
		return nil, err
	}

	gormLogger := logger.New(
		stdlog.New(log.Logger, "", 0),
		logger.Config{
			SlowThreshold:             time.Duration(config.GetInt(c, "DB_SLOW_QUERY_MS", 2000)) * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt: false,
		Logger:      gormLogger,
	})
	if err != nil {
		return nil, err
	}

	replicas := config.GetStrings(c, "DB_REPLICA_DSN", nil)
	if len(replicas) > 0 {
		dialectors := make([]gorm.Dialector, len(replicas))
		for i, dsn := range replicas {
			dialectors[i] = postgres.Open(dsn)
		}
		if err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: dialectors,
			Policy:   dbresolver.RandomPolicy{},
		})); err != nil {
			return nil, fmt.Errorf("register read replicas: %w", err)
		}
		log.Info().Int("replicas", len(replicas)).Msg("Read replicas registered")
	}

	return db, nil
}

func dialectorFor(c map[string]string) (gorm.Dialector, error) {
	dbType := config.GetString(c, "DB_TYPE", "postgres")
	log.Info().Str("dbType", dbType).Msg("Connecting to database...")

	switch dbType {
	case "postgres":
		dsn := config.GetString(c, "DATABASE_URL", "")
		if dsn == "" {
			return nil, errs.NewEnvironmentVariableError("DATABASE_URL")
		}
		return postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), nil
	case "supa":
		dsn, err := supabaseDSN(c)
		if err != nil {
			return nil, err
		}
		return postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), nil
	case "sqlite":
		return sqlite.Open(sqliteDSN(config.GetString(c, "SQLITE_PATH", "sgc.db"))), nil
	default:
		return nil, errs.NewConfigError("DB_TYPE", fmt.Errorf("unsupported value %q", dbType))
	}
}

func supabaseDSN(c map[string]string) (string, error) {
	for _, key := range []string{"SUPABASE_DB_HOST", "SUPABASE_DB_USER", "SUPABASE_DB_PASSWORD", "SUPABASE_DB_NAME"} {
		if config.GetString(c, key, "") == "" {
			return "", errs.NewEnvironmentVariableError(key)
		}
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
		config.GetString(c, "SUPABASE_DB_HOST", ""),
		config.GetString(c, "SUPABASE_DB_USER", ""),
		config.GetString(c, "SUPABASE_DB_PASSWORD", ""),
		config.GetString(c, "SUPABASE_DB_NAME", ""),
		config.GetString(c, "SUPABASE_DB_PORT", "5432"),
	), nil
}

// sqliteDSN turns on foreign key enforcement so answer rows cascade with their project.
func sqliteDSN(path string) string {
	if strings.Contains(path, "_foreign_keys=") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
