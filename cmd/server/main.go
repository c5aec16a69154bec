package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tradepost/internal/config"
	"tradepost/internal/delivery/http/route"
	entity "tradepost/internal/domain"
	repo "tradepost/internal/repository/postgresql"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open postgres connection: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping postgres: %v", err)
	}

	mongoCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	mongoClient, err := mongo.Connect(mongoCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("failed to connect to mongo: %v", err)
	}
	defer mongoClient.Disconnect(context.Background())

	if err := seedStates(db, cfg.States); err != nil {
		log.Fatalf("failed to seed availability states: %v", err)
	}

	app := gin.Default()
	route.SetupRoute(app, db, mongoClient, cfg)

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      app,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("tradepost listening on %s", cfg.ServerAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}
	log.Println("server stopped")
}

// seedStates makes sure every availability state the workflow engine
// references exists in the catalog.
func seedStates(db *sql.DB, states entity.StateIDs) error {
	stateRepo := repo.NewStateRepository(db)
	return stateRepo.SeedStates([]entity.State{
		{ID: states.Published, Name: "Published"},
		{ID: states.InProcess, Name: "InProcess"},
		{ID: states.Approved, Name: "Approved"},
	})
}
