package api

import (
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"aeromart/internal/common"
)

type healthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Uptime   string `json:"uptime"`
}

// HealthCheckHandler handles GET /healthCheck, pinging the document
// store and reporting process uptime.
func HealthCheckHandler(client *mongo.Client, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := healthStatus{
			Status:   "ok",
			Database: "up",
			Uptime:   time.Since(upSince).Round(time.Second).String(),
		}

		code := http.StatusOK
		if client == nil {
			status.Status = "degraded"
			status.Database = "down"
			code = http.StatusServiceUnavailable
		} else if err := client.Ping(r.Context(), readpref.Primary()); err != nil {
			status.Status = "degraded"
			status.Database = "down"
			code = http.StatusServiceUnavailable
		}

		common.WriteJSON(w, code, status)
	}
}
