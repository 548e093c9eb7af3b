package web

import (
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/riskibarqy/hockey-league/internal/platform/httpmw"
	"github.com/riskibarqy/hockey-league/internal/platform/logging"
)

const csrfFieldName = "csrf_token"

type RouterConfig struct {
	CORSAllowedOrigins []string
	// CSRFKey enables form protection on the admin panel when set.
	CSRFKey       []byte
	SecureCookies bool
	Logger        *logging.Logger
}

func NewRouter(handler *Handler, cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /readyz", handler.Readyz)
	mux.Handle("GET /static/", staticHandler())

	mux.HandleFunc("GET /{$}", handler.Index)
	mux.HandleFunc("GET /views/{name}", handler.View)

	mux.HandleFunc("GET /admin", handler.AdminIndex)
	mux.HandleFunc("GET /admin/{$}", handler.AdminIndex)
	mux.HandleFunc("GET /admin/{panel}", handler.AdminPanel)
	mux.HandleFunc("POST /admin/{panel}", handler.AdminSubmit)
	mux.HandleFunc("GET /admin/{panel}/list", handler.AdminList)

	var app http.Handler = mux
	if len(cfg.CSRFKey) > 0 {
		app = protectForms(cfg.CSRFKey, cfg.SecureCookies, logger, app)
	}

	return httpmw.RequestID(
		httpmw.RequestTracing("shl-web-http",
			httpmw.RequestLogging(logger,
				httpmw.CORS(httpmw.CORSOptions{AllowedOrigins: cfg.CORSAllowedOrigins},
					httpmw.Recover(logger, nil, app)))))
}

// protectForms wraps the site in gorilla/csrf. Over plain HTTP the request
// is marked so the origin check does not demand TLS.
func protectForms(key []byte, secure bool, logger *logging.Logger, next http.Handler) http.Handler {
	protect := csrf.Protect(key,
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.HttpOnly(true),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.FieldName(csrfFieldName),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.WarnContext(r.Context(), "csrf check failed", "path", r.URL.Path, "reason", csrf.FailureReason(r))
			http.Error(w, "Сессия устарела, обновите страницу", http.StatusForbidden)
		})),
	)(next)

	if secure {
		return protect
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		protect.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
	})
}
