package http

import (
	"net/http"

	"github.com/ametova/valentine-api/internal/common/logger"
)

type healthResponse struct {
	OK bool `json:"ok"`
}

// HealthHandler reports liveness only. It stays green regardless of
// store or auth state.
func HealthHandler(log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			WriteErrorEnvelope(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "method not allowed", nil)
			return
		}
		log.Debugf("health check request")
		WriteJSON(w, http.StatusOK, healthResponse{OK: true})
	}
}
