package api

import (
	"net/http"

	"aeromart/internal/common"
)

// GetAnalysisHandler handles GET /api/analysis/lists, the dashboard
// entity counts.
func GetAnalysisHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := deps.Services.Analysis.Counts(r.Context())
		if err != nil {
			respondServiceError(w, err, "Failed to compute analysis")
			return
		}
		common.RespondSuccess(w, "Analysis found", counts)
	}
}
