package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"gotrial/adapters/excel"
	"gotrial/adapters/postgres"
	"gotrial/app"
	"gotrial/domain/condition"
	"gotrial/domain/sequence"
	"gotrial/internal/config"
	"gotrial/internal/errors"
	"gotrial/internal/migration"
	"gotrial/ui"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"
)

// initDatabase initializes the PostgreSQL database connection
func initDatabase(appConfig *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	migrator := migration.NewRunner()
	if err := migrator.Run(context.Background(), db); err != nil {
		return nil, errors.Wrap(err, "database migration failed")
	}

	return db, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := initDatabase(appConfig)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	engine, err := condition.NewEngine(condition.Config{
		Partition: condition.DefaultPartition(),
		Orders:    condition.DefaultOrderTable(),
		Practice:  condition.SlugPractice,
		Rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
	})
	if err != nil {
		log.Fatalf("Failed to build condition engine: %v", err)
	}

	// Repositories
	participantRepo := postgres.NewParticipantRepository(db)
	questionnaireRepo := postgres.NewQuestionnaireResponseRepository(db)
	testResponseRepo := postgres.NewTestResponseRepository(db)

	// The participant pipeline: practice round first, then the six tests in
	// their fixed display order.
	tests := append([]condition.TestSlug{condition.SlugPractice}, condition.TestSlugs()...)
	resolver := sequence.NewResolver(tests)

	// Services
	participantService := app.NewParticipantService(participantRepo, engine, appConfig.Experiment.ControlledCode, appConfig.Experiment.PilotCode)
	contentService := app.NewContentService(engine)
	responseService := app.NewResponseService(questionnaireRepo, testResponseRepo, engine)
	analysisService := app.NewAnalysisService(participantRepo, testResponseRepo, condition.TestSlugs())
	exporter := excel.NewExporter(participantRepo, questionnaireRepo, testResponseRepo)

	server, err := ui.NewServer(ui.Config{
		GinMode:    appConfig.Server.GinMode,
		CookieName: appConfig.Experiment.CookieName,
	}, participantService, contentService, responseService, resolver)
	if err != nil {
		log.Fatalf("Failed to build participant server: %v", err)
	}

	var g errgroup.Group
	g.Go(func() error {
		log.Printf("Participant server listening on :%s", appConfig.Server.Port)
		return server.Run(":" + appConfig.Server.Port)
	})

	if appConfig.Results.Enabled {
		results, err := ui.NewResultsApp(participantRepo, analysisService, exporter)
		if err != nil {
			log.Fatalf("Failed to build results app: %v", err)
		}
		g.Go(func() error {
			log.Printf("Results app listening on :%s", appConfig.Results.Port)
			return results.ListenAndServe(":" + appConfig.Results.Port)
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
