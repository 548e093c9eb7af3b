package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/hockey-league/internal/domain/conference"
	"github.com/riskibarqy/hockey-league/internal/domain/match"
	"github.com/riskibarqy/hockey-league/internal/domain/regulation"
	"github.com/riskibarqy/hockey-league/internal/domain/team"
	"github.com/riskibarqy/hockey-league/internal/platform/logging"
	"github.com/riskibarqy/hockey-league/internal/usecase"
)

const (
	defaultEndpoint = "standings"
	maxBodyBytes    = 1 << 20
)

type Services struct {
	Standings   *usecase.StandingsService
	Teams       *usecase.TeamService
	Schedule    *usecase.ScheduleService
	Regulations *usecase.RegulationService
	Conferences *usecase.ConferenceService
}

type routeKey struct {
	endpoint string
	method   string
}

// Handler serves every resource from one URL. The endpoint query parameter
// picks the resource and the method picks the operation.
type Handler struct {
	services Services
	routes   map[routeKey]http.HandlerFunc
	logger   *logging.Logger
}

func NewHandler(services Services, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	h := &Handler{services: services, logger: logger.Named("httpapi")}
	h.routes = map[routeKey]http.HandlerFunc{
		{"standings", http.MethodGet}:          h.Standings,
		{"schedule", http.MethodGet}:           h.ListMatches,
		{"regulations", http.MethodGet}:        h.ListRegulations,
		{"admin/teams", http.MethodGet}:        h.ListTeams,
		{"admin/teams", http.MethodPost}:       h.UpdateTeam,
		{"admin/matches", http.MethodGet}:      h.ListMatches,
		{"admin/matches", http.MethodPost}:     h.CreateMatch,
		{"admin/regulations", http.MethodGet}:  h.ListRegulations,
		{"admin/regulations", http.MethodPost}: h.CreateRegulation,
		{"admin/regulations", http.MethodPut}:  h.UpdateRegulation,
		{"admin/conferences", http.MethodGet}:  h.ListConferences,
		{"admin/conferences", http.MethodPost}: h.RenameConference,
	}

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "ServeHTTP")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	query := r.URL.Query()
	endpoint := defaultEndpoint
	if query.Has("endpoint") {
		endpoint = strings.TrimSpace(query.Get("endpoint"))
	}

	handle, ok := h.routes[routeKey{endpoint: endpoint, method: r.Method}]
	if !ok {
		h.logger.DebugContext(ctx, "unknown endpoint", "endpoint", endpoint, "method", r.Method)
		writeNotFound(ctx, w)
		return
	}

	handle(w, r.WithContext(ctx))
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "Standings")
	defer span.End()

	items, err := h.services.Standings.Standings(ctx)
	if err != nil {
		h.fail(ctx, w, "load standings failed", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, conferencesResponse{Conferences: nonNil(items)})
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "ListMatches")
	defer span.End()

	items, err := h.services.Schedule.ListMatches(ctx)
	if err != nil {
		h.fail(ctx, w, "list matches failed", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, matchesResponse{Matches: nonNil(items)})
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "CreateMatch")
	defer span.End()

	var item match.Match
	if err := decodeBody(w, r, &item); err != nil {
		h.fail(ctx, w, "decode match failed", err)
		return
	}

	created, err := h.services.Schedule.CreateMatch(ctx, item)
	if err != nil {
		h.fail(ctx, w, "create match failed", err)
		return
	}

	h.logger.InfoContext(ctx, "match created", "match_id", created.ID, "home_team_id", created.HomeTeamID, "away_team_id", created.AwayTeamID)
	writeSuccess(ctx, w)
}

func (h *Handler) ListRegulations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "ListRegulations")
	defer span.End()

	items, err := h.services.Regulations.ListRegulations(ctx)
	if err != nil {
		h.fail(ctx, w, "list regulations failed", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, regulationsResponse{Regulations: nonNil(items)})
}

func (h *Handler) CreateRegulation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "CreateRegulation")
	defer span.End()

	var item regulation.Regulation
	if err := decodeBody(w, r, &item); err != nil {
		h.fail(ctx, w, "decode regulation failed", err)
		return
	}

	created, err := h.services.Regulations.CreateRegulation(ctx, item)
	if err != nil {
		h.fail(ctx, w, "create regulation failed", err)
		return
	}

	h.logger.InfoContext(ctx, "regulation created", "regulation_id", created.ID)
	writeSuccess(ctx, w)
}

func (h *Handler) UpdateRegulation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "UpdateRegulation")
	defer span.End()

	var item regulation.Regulation
	if err := decodeBody(w, r, &item); err != nil {
		h.fail(ctx, w, "decode regulation failed", err)
		return
	}

	if err := h.services.Regulations.UpdateRegulation(ctx, item); err != nil {
		h.fail(ctx, w, "update regulation failed", err)
		return
	}

	writeSuccess(ctx, w)
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "ListTeams")
	defer span.End()

	items, err := h.services.Teams.ListTeams(ctx)
	if err != nil {
		h.fail(ctx, w, "list teams failed", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, teamsResponse{Teams: nonNil(items)})
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "UpdateTeam")
	defer span.End()

	var item team.Team
	if err := decodeBody(w, r, &item); err != nil {
		h.fail(ctx, w, "decode team failed", err)
		return
	}

	if err := h.services.Teams.UpdateTeam(ctx, item); err != nil {
		h.fail(ctx, w, "update team failed", err)
		return
	}

	writeSuccess(ctx, w)
}

func (h *Handler) ListConferences(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "ListConferences")
	defer span.End()

	items, err := h.services.Conferences.ListConferences(ctx)
	if err != nil {
		h.fail(ctx, w, "list conferences failed", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, conferencesResponse{Conferences: nonNil(items)})
}

func (h *Handler) RenameConference(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r, "RenameConference")
	defer span.End()

	var item conference.Conference
	if err := decodeBody(w, r, &item); err != nil {
		h.fail(ctx, w, "decode conference failed", err)
		return
	}

	if err := h.services.Conferences.RenameConference(ctx, item); err != nil {
		h.fail(ctx, w, "rename conference failed", err)
		return
	}

	writeSuccess(ctx, w)
}

// fail logs client errors at warn and everything else at error.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	if mapError(err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, "error", err)
	} else {
		h.logger.WarnContext(ctx, msg, "error", err)
	}
	writeError(ctx, w, err)
}

func decodeBody(w http.ResponseWriter, r *http.Request, target any) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return fmt.Errorf("%w: empty body", errInvalidBody)
	}
	if err := sonic.Unmarshal(body, target); err != nil {
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return nil
}
