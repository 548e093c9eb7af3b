package web

import (
	"context"
	"html/template"
	"net/http"
	"time"

	"github.com/a-h/templ"
	sonic "github.com/bytedance/sonic"
	"github.com/gorilla/csrf"
	"github.com/riskibarqy/hockey-league/internal/admin"
	"github.com/riskibarqy/hockey-league/internal/display"
	"github.com/riskibarqy/hockey-league/internal/domain/conference"
	"github.com/riskibarqy/hockey-league/internal/domain/regulation"
	"github.com/riskibarqy/hockey-league/internal/domain/team"
	"github.com/riskibarqy/hockey-league/internal/platform/logging"
)

type HandlerConfig struct {
	Display      *display.Service
	Admin        admin.API
	ProbeWorkers int
	ProbeTimeout time.Duration
	Logger       *logging.Logger
}

type Handler struct {
	display     *display.Service
	teams       *admin.Panel[team.Team]
	schedule    *admin.SchedulePanel
	regulations *admin.Panel[regulation.Regulation]
	conferences *admin.Panel[conference.Conference]
	sections    map[string]adminSection

	renderer     *Renderer
	probeWorkers int
	probeTimeout time.Duration
	logger       *logging.Logger
}

func NewHandler(cfg HandlerConfig) (*Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = 5 * time.Second
	}

	h := &Handler{
		display:      cfg.Display,
		teams:        admin.NewTeamsPanel(cfg.Admin, logger),
		schedule:     admin.NewSchedulePanel(cfg.Admin, logger),
		regulations:  admin.NewRegulationsPanel(cfg.Admin, logger),
		conferences:  admin.NewConferencesPanel(cfg.Admin, logger),
		renderer:     renderer,
		probeWorkers: cfg.ProbeWorkers,
		probeTimeout: cfg.ProbeTimeout,
		logger:       logger.Named("web"),
	}
	h.sections = h.adminSections()
	return h, nil
}

// render serves fragment to htmx partial requests and full otherwise.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, fragment, full templ.Component) {
	target := full
	if IsFragmentRequest(r) && fragment != nil {
		target = fragment
	}
	w.Header().Add("Vary", "HX-Request")

	templ.Handler(target,
		templ.WithStatus(status),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			h.logger.ErrorContext(r.Context(), "render page failed", "path", r.URL.Path, "error", err)
			return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "Не удалось отобразить страницу", http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, r)
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz probes the league API through the public read resources.
func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.probeTimeout)
	defer cancel()

	report, err := h.display.Probe(ctx, h.probeWorkers)
	if err != nil {
		h.logger.ErrorContext(ctx, "readiness probe failed", "error", err)
		writeJSON(ctx, w, http.StatusServiceUnavailable, map[string]string{"status": "error"})
		return
	}

	status := http.StatusOK
	if !report.Ready {
		status = http.StatusServiceUnavailable
	}
	writeJSON(ctx, w, status, report)
}

func writeJSON(_ context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func csrfField(r *http.Request) template.HTML {
	return csrf.TemplateField(r)
}
