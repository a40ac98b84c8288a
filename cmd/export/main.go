package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"gotrial/adapters/excel"
	"gotrial/adapters/postgres"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	path := fmt.Sprintf("experiment-data-%s.xlsx", time.Now().Format("2006-01-02"))
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	exporter := excel.NewExporter(
		postgres.NewParticipantRepository(db),
		postgres.NewQuestionnaireResponseRepository(db),
		postgres.NewTestResponseRepository(db),
	)

	if err := exporter.SaveAs(context.Background(), path); err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	log.Printf("Wrote %s", path)
}
