package httpapi

import (
	"net/http"
	"strings"
)

type standingsRequest struct {
	LeagueID string `param:"leagueId" validate:"required,number"`
	Season   string `param:"season" validate:"omitempty,number"`
}

type teamRequest struct {
	TeamID string `param:"teamId" validate:"required,number"`
}

type matchRequest struct {
	MatchID string `param:"matchId" validate:"required,number"`
}

func (h *Handler) StandingsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StandingsByLeague")
	defer span.End()

	req := standingsRequest{
		LeagueID: strings.TrimSpace(r.PathValue("leagueId")),
		Season:   strings.TrimSpace(r.URL.Query().Get("season")),
	}
	if err := h.validate(ctx, req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	leagueID, err := parseID("leagueId", req.LeagueID)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	seasonID, err := parseID("season", req.Season)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	standings, err := h.service.GetStandingsByLeague(ctx, leagueID, seasonID)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	writeList(ctx, w, standings)
}

// Team answers data:null when the provider knows no such team.
func (h *Handler) Team(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Team")
	defer span.End()

	req := teamRequest{TeamID: strings.TrimSpace(r.PathValue("teamId"))}
	if err := h.validate(ctx, req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	teamID, err := parseID("teamId", req.TeamID)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	team, err := h.service.GetTeam(ctx, teamID)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	writeObject(ctx, w, team)
}

func (h *Handler) Match(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Match")
	defer span.End()

	req := matchRequest{MatchID: strings.TrimSpace(r.PathValue("matchId"))}
	if err := h.validate(ctx, req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	matchID, err := parseID("matchId", req.MatchID)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	match, err := h.service.GetMatch(ctx, matchID)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	writeObject(ctx, w, match)
}
