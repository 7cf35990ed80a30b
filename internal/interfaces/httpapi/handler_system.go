package httpapi

import (
	"net/http"
	"time"
)

const documentationURL = "https://docs.sportmonks.com"

type healthResponse struct {
	Success   bool    `json:"success"`
	Message   string  `json:"message"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
	Cache     string  `json:"cache"`
}

type indexResponse struct {
	Message       string            `json:"message"`
	Version       string            `json:"version"`
	Endpoints     map[string]string `json:"endpoints"`
	Documentation string            `json:"documentation"`
}

// Health always answers 200; an unreachable cache only degrades the
// cache field because reads still fall through to the provider.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Health")
	defer span.End()

	cacheStatus := "ok"
	if h.cache == nil {
		cacheStatus = "disabled"
	} else if err := h.cache.Ping(ctx); err != nil {
		h.logger.WarnContext(ctx, "cache ping failed", "error", err)
		cacheStatus = "unavailable"
	}

	now := h.now()
	writeJSON(ctx, w, http.StatusOK, healthResponse{
		Success:   true,
		Message:   "SportMonks Middleware API is running",
		Timestamp: now.UTC().Format(time.RFC3339Nano),
		Uptime:    now.Sub(h.startedAt).Seconds(),
		Cache:     cacheStatus,
	})
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Index")
	defer span.End()

	p := h.prefix
	writeJSON(ctx, w, http.StatusOK, indexResponse{
		Message: "SportMonks Middleware API",
		Version: h.version,
		Endpoints: map[string]string{
			"health":                   p + "/health",
			"livescores":               p + "/livescores",
			"fixturesByLeague":         p + "/fixtures/league/:leagueId",
			"teamFixtures":             p + "/fixtures/team/:teamId",
			"fixturesByDate":           p + "/fixtures/date/:date",
			"standings":                p + "/standings/league/:leagueId",
			"team":                     p + "/team/:teamId",
			"match":                    p + "/match/:matchId",
			"schedulesBySeason":        p + "/schedules/season/:seasonId",
			"schedulesByTeam":          p + "/schedules/team/:teamId",
			"schedulesBySeasonAndTeam": p + "/schedules/season/:seasonId/team/:teamId",
			"schedulesByLeague":        p + "/schedules/league/:leagueId",
		},
		Documentation: documentationURL,
	})
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.NotFound")
	defer span.End()

	h.writeCode(ctx, w, http.StatusNotFound, codeRouteNotFound)
}
