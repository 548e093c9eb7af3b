package httpapi

import (
	"net/http"
	"time"

	"github.com/riskibarqy/hockey-league/internal/platform/httpmw"
	"github.com/riskibarqy/hockey-league/internal/platform/logging"
)

func NewRouter(handler *Handler, corsAllowedOrigins []string, logger *logging.Logger) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.Handle("/", handler)

	cors := httpmw.CORSOptions{
		AllowedOrigins:  corsAllowedOrigins,
		AllowedMethods:  "GET, POST, PUT, OPTIONS",
		AllowedHeaders:  "Content-Type",
		MaxAge:          24 * time.Hour,
		PreflightStatus: http.StatusOK,
	}

	return httpmw.RequestID(
		httpmw.RequestTracing("shl-api-http",
			httpmw.RequestLogging(logger,
				httpmw.CORS(cors,
					httpmw.Recover(logger, writeInternalError, mux)))))
}
