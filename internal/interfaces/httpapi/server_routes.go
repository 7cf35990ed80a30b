package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /{$}", handler.Index)
	mux.HandleFunc("GET "+handler.prefix+"/health", handler.Health)
	mux.HandleFunc("/", handler.NotFound)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

// Identifier segments use trailing wildcards so an empty segment reaches
// the handler and is reported as a missing parameter.
func registerSportRoutes(mux *http.ServeMux, handler *Handler) {
	p := handler.prefix
	mux.HandleFunc("GET "+p+"/livescores", handler.Livescores)
	mux.HandleFunc("GET "+p+"/fixtures/league/{leagueId...}", handler.FixturesByLeague)
	mux.HandleFunc("GET "+p+"/fixtures/team/{teamId...}", handler.TeamFixtures)
	mux.HandleFunc("GET "+p+"/fixtures/date/{date...}", handler.FixturesByDate)
	mux.HandleFunc("GET "+p+"/standings/league/{leagueId...}", handler.StandingsByLeague)
	mux.HandleFunc("GET "+p+"/team/{teamId...}", handler.Team)
	mux.HandleFunc("GET "+p+"/match/{matchId...}", handler.Match)
	mux.HandleFunc("GET "+p+"/schedules/season/{seasonId}/team/{teamId...}", handler.SchedulesBySeasonAndTeam)
	mux.HandleFunc("GET "+p+"/schedules/season/{seasonId...}", handler.SchedulesBySeason)
	mux.HandleFunc("GET "+p+"/schedules/team/{teamId...}", handler.SchedulesByTeam)
	mux.HandleFunc("GET "+p+"/schedules/league/{leagueId...}", handler.SchedulesByLeague)
}
