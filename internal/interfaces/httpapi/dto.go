package httpapi

import (
	"github.com/riskibarqy/hockey-league/internal/domain/conference"
	"github.com/riskibarqy/hockey-league/internal/domain/match"
	"github.com/riskibarqy/hockey-league/internal/domain/regulation"
	"github.com/riskibarqy/hockey-league/internal/domain/team"
)

type conferencesResponse struct {
	Conferences []conference.Conference `json:"conferences"`
}

type matchesResponse struct {
	Matches []match.Match `json:"matches"`
}

type regulationsResponse struct {
	Regulations []regulation.Regulation `json:"regulations"`
}

type teamsResponse struct {
	Teams []team.Team `json:"teams"`
}

// nonNil keeps empty collections encoded as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
