package httpapi

import (
	"net/http"
	"strings"
)

type seasonSchedulesRequest struct {
	SeasonID string `param:"seasonId" validate:"required,number"`
}

type teamSchedulesRequest struct {
	TeamID string `param:"teamId" validate:"required,number"`
}

type seasonTeamSchedulesRequest struct {
	SeasonID string `param:"seasonId" validate:"required,number"`
	TeamID   string `param:"teamId" validate:"required,number"`
}

type leagueSchedulesRequest struct {
	LeagueID string `param:"leagueId" validate:"required,number"`
}

func (h *Handler) SchedulesBySeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SchedulesBySeason")
	defer span.End()

	req := seasonSchedulesRequest{SeasonID: strings.TrimSpace(r.PathValue("seasonId"))}
	if err := h.validate(ctx, req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	seasonID, err := parseID("seasonId", req.SeasonID)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	stages, err := h.service.GetSchedulesBySeason(ctx, seasonID)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	writeList(ctx, w, stages)
}

func (h *Handler) SchedulesByTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SchedulesByTeam")
	defer span.End()

	req := teamSchedulesRequest{TeamID: strings.TrimSpace(r.PathValue("teamId"))}
	if err := h.validate(ctx, req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	teamID, err := parseID("teamId", req.TeamID)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	stages, err := h.service.GetSchedulesByTeam(ctx, teamID)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	writeList(ctx, w, stages)
}

func (h *Handler) SchedulesBySeasonAndTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SchedulesBySeasonAndTeam")
	defer span.End()

	req := seasonTeamSchedulesRequest{
		SeasonID: strings.TrimSpace(r.PathValue("seasonId")),
		TeamID:   strings.TrimSpace(r.PathValue("teamId")),
	}
	if err := h.validate(ctx, req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	seasonID, err := parseID("seasonId", req.SeasonID)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	teamID, err := parseID("teamId", req.TeamID)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	stages, err := h.service.GetSchedulesBySeasonAndTeam(ctx, seasonID, teamID)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	writeList(ctx, w, stages)
}

// SchedulesByLeague resolves the league's current season first.
func (h *Handler) SchedulesByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SchedulesByLeague")
	defer span.End()

	req := leagueSchedulesRequest{LeagueID: strings.TrimSpace(r.PathValue("leagueId"))}
	if err := h.validate(ctx, req); err != nil {
		h.writeError(ctx, w, err)
		return
	}
	leagueID, err := parseID("leagueId", req.LeagueID)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	stages, err := h.service.GetSchedulesByLeague(ctx, leagueID)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	writeList(ctx, w, stages)
}
