package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"aeromart/internal/db"
	"aeromart/internal/logging"
	"aeromart/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "development"
	}

	if err := logging.Init(appEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Aeromart starting up",
		"environment", appEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	if err := db.InitMongo(); err != nil {
		logging.Error("Failed to connect to MongoDB", "error", err.Error())
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	logging.Info("Connected to MongoDB")
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.CloseMongo(ctx); err != nil {
			logging.Error("Failed to disconnect from MongoDB", "error", err.Error())
		}
	}()

	upSince := time.Now()

	// metricsReg is created in RegisterRoutes and applied as global middleware
	router := routes.RegisterRoutes(upSince)

	// Metrics endpoint lives outside the Chi router so it skips the
	// rate limiter and access log.
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logging.Info("Server starting",
		"port", port,
		"environment", appEnv,
	)

	log.Println("Starting server on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, mux))
}
