package http

import (
	"net/http"

	"github.com/ametova/valentine-api/internal/common/constants"
	"github.com/ametova/valentine-api/internal/common/httpmetrics"
	"github.com/ametova/valentine-api/internal/common/logger"
)

func BuildBaseHandler(appName string, corsOrigins []string, log *logger.Logger, handler http.Handler) http.Handler {
	metrics := httpmetrics.New(appName)
	recovery := RecoveryMiddleware(log)
	traceID := TraceIDMiddleware
	maxRequestSize := MaxRequestSizeMiddleware(constants.DefaultMaxRequestSize)
	securityHeaders := SecurityHeadersMiddleware
	cors := CORSMiddleware(corsOrigins)

	return securityHeaders(cors(recovery(traceID(maxRequestSize(metrics.Wrap(handler))))))
}
