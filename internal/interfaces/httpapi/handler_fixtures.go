package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/sportmonks-middleware/internal/domain/football"
)

type livescoresRequest struct {
	Date string `param:"date" validate:"omitempty,sportdate"`
}

type leagueFixturesRequest struct {
	LeagueID string `param:"leagueId" validate:"required,number"`
	Season   string `param:"season" validate:"omitempty,number"`
}

type teamFixturesRequest struct {
	TeamID string `param:"teamId" validate:"required,number"`
	Date   string `param:"date" validate:"omitempty,sportdate"`
}

type fixturesByDateRequest struct {
	Date string `param:"date" validate:"required,sportdate"`
}

func (h *Handler) Livescores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Livescores")
	defer span.End()

	req := livescoresRequest{Date: strings.TrimSpace(r.URL.Query().Get("date"))}
	if err := h.validate(ctx, req); err != nil {
		h.writeError(ctx, w, err)
		return
	}

	fixtures, err := h.service.GetLivescores(ctx, req.Date)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	writeList(ctx, w, fixtures)
}

func (h *Handler) FixturesByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FixturesByLeague")
	defer span.End()

	req := leagueFixturesRequest{
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

	fixtures, err := h.service.GetFixturesByLeague(ctx, leagueID, seasonID)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	writeList(ctx, w, fixtures)
}

func (h *Handler) TeamFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TeamFixtures")
	defer span.End()

	req := teamFixturesRequest{
		TeamID: strings.TrimSpace(r.PathValue("teamId")),
		Date:   strings.TrimSpace(r.URL.Query().Get("date")),
	}
	if err := h.validate(ctx, req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	teamID, err := parseID("teamId", req.TeamID)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	fixtures, err := h.service.GetTeamFixtures(ctx, teamID, req.Date)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	writeList(ctx, w, fixtures)
}

// FixturesByDate answers with one bucket per league plus the fixture total.
func (h *Handler) FixturesByDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FixturesByDate")
	defer span.End()

	req := fixturesByDateRequest{Date: strings.TrimSpace(r.PathValue("date"))}
	if err := h.validate(ctx, req); err != nil {
		h.writeError(ctx, w, err)
		return
	}

	grouped, err := h.service.GetFixturesByDate(ctx, req.Date)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	leagues := grouped.Leagues
	if leagues == nil {
		leagues = []football.LeagueFixtures{}
	}
	writeJSON(ctx, w, http.StatusOK, groupedEnvelope{
		Success:       true,
		Data:          leagues,
		Count:         len(leagues),
		TotalFixtures: grouped.TotalFixtures,
	})
}
