package web

import (
	"html/template"
	"net/http"

	"github.com/a-h/templ"
)

const (
	tabStandings   = "standings"
	tabSchedule    = "schedule"
	tabRegulations = "regulations"
)

type tabLink struct {
	Name   string
	Label  string
	Active bool
}

var publicTabs = []tabLink{
	{Name: tabStandings, Label: "Таблица"},
	{Name: tabSchedule, Label: "Расписание"},
	{Name: tabRegulations, Label: "Регламент"},
}

type publicPage struct {
	Tabs    []tabLink
	Content template.HTML
}

func activeTabs(tabs []tabLink, active string) []tabLink {
	out := make([]tabLink, len(tabs))
	copy(out, tabs)
	for i := range out {
		out[i].Active = out[i].Name == active
	}
	return out
}

func isPublicTab(name string) bool {
	for _, tab := range publicTabs {
		if tab.Name == name {
			return true
		}
	}
	return false
}

func (h *Handler) publicPage(active string, content templ.Component) templ.Component {
	shell := h.renderer.Wrap("public", content, func(content template.HTML) any {
		return publicPage{Tabs: activeTabs(publicTabs, active), Content: content}
	})
	return h.renderer.Page(siteTitle, "public", shell)
}

// Index serves the public shell. The active tab starts in its loading state
// and htmx fetches the view fragment right after the page mounts.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	tab := r.URL.Query().Get("tab")
	if !isPublicTab(tab) {
		tab = tabStandings
	}

	loading := h.renderer.Component("view_loading", tab)
	h.render(w, r, http.StatusOK, loading, h.publicPage(tab, loading))
}

// View loads one public view with a single read. Without htmx the view is
// served inside the full page.
func (h *Handler) View(w http.ResponseWriter, r *http.Request) {
	tab := r.PathValue("name")

	var view templ.Component
	switch tab {
	case tabStandings:
		view = h.renderer.Component("view_standings", h.display.Standings(r.Context()))
	case tabSchedule:
		view = h.renderer.Component("view_schedule", h.display.Schedule(r.Context()))
	case tabRegulations:
		view = h.renderer.Component("view_regulations", h.display.Regulations(r.Context()))
	default:
		http.NotFound(w, r)
		return
	}

	h.render(w, r, http.StatusOK, view, h.publicPage(tab, view))
}
