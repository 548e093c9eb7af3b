package leagueapi

import (
	"context"
	"net/http"

	"github.com/riskibarqy/hockey-league/internal/domain/conference"
	"github.com/riskibarqy/hockey-league/internal/domain/match"
	"github.com/riskibarqy/hockey-league/internal/domain/regulation"
	"github.com/riskibarqy/hockey-league/internal/domain/team"
)

// Resource is the value of the endpoint query parameter.
type Resource string

const (
	ResourceStandings        Resource = "standings"
	ResourceSchedule         Resource = "schedule"
	ResourceRegulations      Resource = "regulations"
	ResourceAdminTeams       Resource = "admin/teams"
	ResourceAdminMatches     Resource = "admin/matches"
	ResourceAdminRegulations Resource = "admin/regulations"
	ResourceAdminConferences Resource = "admin/conferences"
)

func (r Resource) String() string {
	return string(r)
}

type ConferencesResponse struct {
	Conferences []conference.Conference `json:"conferences"`
}

type MatchesResponse struct {
	Matches []match.Match `json:"matches"`
}

type RegulationsResponse struct {
	Regulations []regulation.Regulation `json:"regulations"`
}

type TeamsResponse struct {
	Teams []team.Team `json:"teams"`
}

// WriteResult is the mutation acknowledgement, {"success":true}.
type WriteResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func (c *Client) GetStandings(ctx context.Context) ([]conference.Conference, error) {
	var out ConferencesResponse
	if err := c.Read(ctx, ResourceStandings, &out); err != nil {
		return nil, err
	}
	return out.Conferences, nil
}

func (c *Client) GetSchedule(ctx context.Context) ([]match.Match, error) {
	var out MatchesResponse
	if err := c.Read(ctx, ResourceSchedule, &out); err != nil {
		return nil, err
	}
	return out.Matches, nil
}

func (c *Client) GetRegulations(ctx context.Context) ([]regulation.Regulation, error) {
	var out RegulationsResponse
	if err := c.Read(ctx, ResourceRegulations, &out); err != nil {
		return nil, err
	}
	return out.Regulations, nil
}

func (c *Client) GetTeams(ctx context.Context) ([]team.Team, error) {
	var out TeamsResponse
	if err := c.Read(ctx, ResourceAdminTeams, &out); err != nil {
		return nil, err
	}
	return out.Teams, nil
}

// UpdateTeam replaces the full team record.
func (c *Client) UpdateTeam(ctx context.Context, item team.Team) error {
	return c.Write(ctx, ResourceAdminTeams, item, http.MethodPost, nil)
}

func (c *Client) GetMatches(ctx context.Context) ([]match.Match, error) {
	var out MatchesResponse
	if err := c.Read(ctx, ResourceAdminMatches, &out); err != nil {
		return nil, err
	}
	return out.Matches, nil
}

func (c *Client) AddMatch(ctx context.Context, item match.Match) error {
	return c.Write(ctx, ResourceAdminMatches, item, http.MethodPost, nil)
}

func (c *Client) GetAdminRegulations(ctx context.Context) ([]regulation.Regulation, error) {
	var out RegulationsResponse
	if err := c.Read(ctx, ResourceAdminRegulations, &out); err != nil {
		return nil, err
	}
	return out.Regulations, nil
}

func (c *Client) AddRegulation(ctx context.Context, item regulation.Regulation) error {
	return c.Write(ctx, ResourceAdminRegulations, item, http.MethodPost, nil)
}

func (c *Client) UpdateRegulation(ctx context.Context, item regulation.Regulation) error {
	return c.Write(ctx, ResourceAdminRegulations, item, http.MethodPut, nil)
}

func (c *Client) GetConferences(ctx context.Context) ([]conference.Conference, error) {
	var out ConferencesResponse
	if err := c.Read(ctx, ResourceAdminConferences, &out); err != nil {
		return nil, err
	}
	return out.Conferences, nil
}

// UpdateConference renames a conference; teams in the payload are ignored upstream.
func (c *Client) UpdateConference(ctx context.Context, item conference.Conference) error {
	item.Teams = nil
	return c.Write(ctx, ResourceAdminConferences, item, http.MethodPost, nil)
}
