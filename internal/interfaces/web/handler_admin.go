package web

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/riskibarqy/hockey-league/internal/admin"
	"github.com/riskibarqy/hockey-league/internal/display"
	"github.com/riskibarqy/hockey-league/internal/domain/match"
	"github.com/riskibarqy/hockey-league/internal/domain/team"
)

const defaultAdminSection = "teams"

var adminTabs = []tabLink{
	{Name: "teams", Label: "Команды"},
	{Name: "schedule", Label: "Расписание"},
	{Name: "regulations", Label: "Регламент"},
	{Name: "conferences", Label: "Конференции"},
}

// adminSection binds one admin tab to its panel. Every func returns the
// template data for "admin_<name>" or "admin_<name>_list".
type adminSection struct {
	show   func(r *http.Request) any
	submit func(r *http.Request) any
	list   func(r *http.Request) any
}

type panelView[T any] struct {
	Notice  *admin.Notice
	Editing bool
	Draft   T
	Loaded  bool
	Items   []T
	CSRF    template.HTML
}

func newPanelView[T any](r *http.Request, state admin.State[T]) panelView[T] {
	return panelView[T]{
		Notice:  state.Notice,
		Editing: state.Draft.IsEditing(),
		Draft:   state.Draft.Entity,
		Loaded:  state.Loaded,
		Items:   state.Items,
		CSRF:    csrfField(r),
	}
}

type scheduleForm struct {
	HomeTeamID int64
	AwayTeamID int64
	MatchDate  string
	Finished   bool
	HomeScore  string
	AwayScore  string
}

type scheduleRow struct {
	ID          int64
	HomeTeam    string
	AwayTeam    string
	Date        string
	StatusLabel string
	Score       string
}

type scheduleView struct {
	Notice *admin.Notice
	Form   scheduleForm
	Teams  []team.Team
	Loaded bool
	Rows   []scheduleRow
	CSRF   template.HTML
}

func (h *Handler) newScheduleView(r *http.Request, state admin.State[match.Match], teams []team.Team) scheduleView {
	loc := h.display.Location()
	draft := state.Draft.Entity

	form := scheduleForm{
		HomeTeamID: draft.HomeTeamID,
		AwayTeamID: draft.AwayTeamID,
		MatchDate:  draft.MatchDate.FormValue(loc),
		Finished:   draft.Status.IsFinished(),
	}
	if draft.HomeScore != nil {
		form.HomeScore = strconv.Itoa(*draft.HomeScore)
	}
	if draft.AwayScore != nil {
		form.AwayScore = strconv.Itoa(*draft.AwayScore)
	}

	return scheduleView{
		Notice: state.Notice,
		Form:   form,
		Teams:  teams,
		Loaded: state.Loaded,
		Rows:   h.scheduleRows(state.Items),
		CSRF:   csrfField(r),
	}
}

func (h *Handler) scheduleRows(items []match.Match) []scheduleRow {
	loc := h.display.Location()
	rows := make([]scheduleRow, 0, len(items))
	for _, item := range items {
		row := scheduleRow{
			ID:          item.ID,
			HomeTeam:    item.HomeTeam,
			AwayTeam:    item.AwayTeam,
			Date:        display.FormatShortDate(item.MatchDate, loc),
			StatusLabel: display.StatusLabel(item.Status),
		}
		if item.Status.IsFinished() {
			row.Score = display.FormatScore(item.HomeScore) + " : " + display.FormatScore(item.AwayScore)
		}
		rows = append(rows, row)
	}
	return rows
}

func editID(r *http.Request) int64 {
	id, err := strconv.ParseInt(r.URL.Query().Get("edit"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func (h *Handler) adminSections() map[string]adminSection {
	return map[string]adminSection{
		"teams": {
			show: func(r *http.Request) any {
				state := h.teams.Load(r.Context())
				state.Draft = h.teams.Edit(state.Items, editID(r))
				return newPanelView(r, state)
			},
			submit: func(r *http.Request) any {
				return newPanelView(r, h.teams.Submit(r.Context(), teamDraft(r.PostForm)))
			},
			list: func(r *http.Request) any {
				return newPanelView(r, h.teams.Load(r.Context()))
			},
		},
		"schedule": {
			show: func(r *http.Request) any {
				state := h.schedule.Load(r.Context())
				return h.newScheduleView(r, state.State, state.Teams)
			},
			submit: func(r *http.Request) any {
				state := h.schedule.Submit(r.Context(), matchDraft(r.PostForm))
				return h.newScheduleView(r, state, h.schedule.TeamOptions(r.Context()))
			},
			list: func(r *http.Request) any {
				return h.newScheduleView(r, h.schedule.Panel.Load(r.Context()), nil)
			},
		},
		"regulations": {
			show: func(r *http.Request) any {
				state := h.regulations.Load(r.Context())
				state.Draft = h.regulations.Edit(state.Items, editID(r))
				return newPanelView(r, state)
			},
			submit: func(r *http.Request) any {
				return newPanelView(r, h.regulations.Submit(r.Context(), regulationDraft(r.PostForm)))
			},
			list: func(r *http.Request) any {
				return newPanelView(r, h.regulations.Load(r.Context()))
			},
		},
		"conferences": {
			show: func(r *http.Request) any {
				state := h.conferences.Load(r.Context())
				state.Draft = h.conferences.Edit(state.Items, editID(r))
				return newPanelView(r, state)
			},
			submit: func(r *http.Request) any {
				return newPanelView(r, h.conferences.Submit(r.Context(), conferenceDraft(r.PostForm)))
			},
			list: func(r *http.Request) any {
				return newPanelView(r, h.conferences.Load(r.Context()))
			},
		},
	}
}

type adminPage struct {
	Tabs    []tabLink
	Content template.HTML
}

func (h *Handler) adminPage(active string, content templ.Component) templ.Component {
	shell := h.renderer.Wrap("admin", content, func(content template.HTML) any {
		return adminPage{Tabs: activeTabs(adminTabs, active), Content: content}
	})
	return h.renderer.Page("Админ-панель | СХЛ", "admin", shell)
}

func (h *Handler) AdminIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/admin/"+defaultAdminSection, http.StatusFound)
}

// AdminPanel opens a tab with a fresh list read. Any draft from an earlier
// visit is gone; ?edit=<id> starts editing that row.
func (h *Handler) AdminPanel(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("panel")
	section, ok := h.sections[name]
	if !ok {
		http.NotFound(w, r)
		return
	}

	content := h.renderer.Component("admin_"+name, section.show(r))
	h.render(w, r, http.StatusOK, content, h.adminPage(name, content))
}

// AdminSubmit sends the posted draft through the tab's panel.
func (h *Handler) AdminSubmit(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("panel")
	section, ok := h.sections[name]
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.logger.WarnContext(r.Context(), "parse admin form failed", "panel", name, "error", err)
		http.Error(w, "Некорректная форма", http.StatusBadRequest)
		return
	}

	content := h.renderer.Component("admin_"+name, section.submit(r))
	h.render(w, r, http.StatusOK, content, h.adminPage(name, content))
}

// AdminList is the lazily loaded list fragment shown after a failed write.
func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("panel")
	section, ok := h.sections[name]
	if !ok {
		http.NotFound(w, r)
		return
	}
	if !IsFragmentRequest(r) {
		http.Redirect(w, r, "/admin/"+name, http.StatusFound)
		return
	}

	h.render(w, r, http.StatusOK, h.renderer.Component("admin_"+name+"_list", section.list(r)), nil)
}
