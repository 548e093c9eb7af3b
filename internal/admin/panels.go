package admin

import (
	"context"

	"github.com/riskibarqy/hockey-league/internal/domain/conference"
	"github.com/riskibarqy/hockey-league/internal/domain/match"
	"github.com/riskibarqy/hockey-league/internal/domain/regulation"
	"github.com/riskibarqy/hockey-league/internal/domain/team"
	"github.com/riskibarqy/hockey-league/internal/platform/logging"
	"github.com/sourcegraph/conc"
)

type TeamsAPI interface {
	GetTeams(ctx context.Context) ([]team.Team, error)
	UpdateTeam(ctx context.Context, item team.Team) error
}

type MatchesAPI interface {
	GetTeams(ctx context.Context) ([]team.Team, error)
	GetMatches(ctx context.Context) ([]match.Match, error)
	AddMatch(ctx context.Context, item match.Match) error
}

type RegulationsAPI interface {
	GetAdminRegulations(ctx context.Context) ([]regulation.Regulation, error)
	AddRegulation(ctx context.Context, item regulation.Regulation) error
	UpdateRegulation(ctx context.Context, item regulation.Regulation) error
}

type ConferencesAPI interface {
	GetConferences(ctx context.Context) ([]conference.Conference, error)
	UpdateConference(ctx context.Context, item conference.Conference) error
}

// API is everything the admin shell needs from the league API client.
type API interface {
	TeamsAPI
	MatchesAPI
	RegulationsAPI
	ConferencesAPI
}

const missingFields = "Заполните все обязательные поля"

func NewTeamsPanel(api TeamsAPI, logger *logging.Logger) *Panel[team.Team] {
	return &Panel[team.Team]{
		name:   "teams",
		list:   api.GetTeams,
		update: api.UpdateTeam,
		id:     func(item team.Team) int64 { return item.ID },
		idle:   None[team.Team],
		text: panelText{
			invalid:      missingFields,
			updated:      "Команда обновлена",
			updateFailed: "Не удалось обновить команду",
		},
		logger: panelLogger(logger, "teams"),
	}
}

func NewRegulationsPanel(api RegulationsAPI, logger *logging.Logger) *Panel[regulation.Regulation] {
	return &Panel[regulation.Regulation]{
		name:   "regulations",
		list:   api.GetAdminRegulations,
		create: api.AddRegulation,
		update: api.UpdateRegulation,
		id:     func(item regulation.Regulation) int64 { return item.ID },
		idle: func() Draft[regulation.Regulation] {
			return Create(regulation.Regulation{})
		},
		text: panelText{
			invalid:      "Заполните все поля",
			created:      "Пункт регламента добавлен",
			createFailed: "Не удалось добавить пункт",
			updated:      "Регламент обновлен",
			updateFailed: "Не удалось обновить регламент",
		},
		logger: panelLogger(logger, "regulations"),
	}
}

func NewConferencesPanel(api ConferencesAPI, logger *logging.Logger) *Panel[conference.Conference] {
	return &Panel[conference.Conference]{
		name:   "conferences",
		list:   api.GetConferences,
		update: api.UpdateConference,
		id:     func(item conference.Conference) int64 { return item.ID },
		idle:   None[conference.Conference],
		text: panelText{
			invalid:      "Укажите название конференции",
			updated:      "Конференция обновлена",
			updateFailed: "Не удалось обновить конференцию",
		},
		logger: panelLogger(logger, "conferences"),
	}
}

// SchedulePanel creates matches. Its form also needs the team list for the
// home and away pickers.
type SchedulePanel struct {
	*Panel[match.Match]
	teams func(context.Context) ([]team.Team, error)
}

type ScheduleState struct {
	State[match.Match]
	Teams []team.Team
}

func NewSchedulePanel(api MatchesAPI, logger *logging.Logger) *SchedulePanel {
	return &SchedulePanel{
		Panel: &Panel[match.Match]{
			name:   "schedule",
			list:   api.GetMatches,
			create: api.AddMatch,
			id:     func(item match.Match) int64 { return item.ID },
			idle: func() Draft[match.Match] {
				return Create(match.Match{Status: match.StatusScheduled})
			},
			text: panelText{
				invalid:      missingFields,
				created:      "Матч добавлен",
				createFailed: "Не удалось добавить матч",
			},
			logger: panelLogger(logger, "schedule"),
		},
		teams: api.GetTeams,
	}
}

// Load reads matches and teams concurrently.
func (p *SchedulePanel) Load(ctx context.Context) ScheduleState {
	var (
		state ScheduleState
		wg    conc.WaitGroup
	)
	wg.Go(func() {
		state.State = p.Panel.Load(ctx)
	})
	wg.Go(func() {
		state.Teams = p.TeamOptions(ctx)
	})
	wg.Wait()
	return state
}

// TeamOptions reads the teams offered by the home and away pickers.
func (p *SchedulePanel) TeamOptions(ctx context.Context) []team.Team {
	items, err := p.teams(ctx)
	if err != nil {
		p.logger.WarnContext(ctx, "admin team options read failed", "panel", p.name, "error", err)
		return nil
	}
	return items
}

// Submit fills in the default status before the shared submit flow.
func (p *SchedulePanel) Submit(ctx context.Context, draft Draft[match.Match]) State[match.Match] {
	if draft.Kind == Creating {
		draft.Entity.Status = match.NormalizeStatus(string(draft.Entity.Status))
	}
	return p.Panel.Submit(ctx, draft)
}

func panelLogger(logger *logging.Logger, name string) *logging.Logger {
	if logger == nil {
		logger = logging.Default()
	}
	return logger.Named("admin." + name)
}
