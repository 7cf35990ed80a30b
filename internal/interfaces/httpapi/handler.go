package httpapi

import (
	"context"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/sportmonks-middleware/internal/domain/football"
	"github.com/riskibarqy/sportmonks-middleware/internal/platform/i18n"
	"github.com/riskibarqy/sportmonks-middleware/internal/platform/logging"
	"github.com/riskibarqy/sportmonks-middleware/internal/usecase"
)

// SportDataService is the read side the handlers serve from.
type SportDataService interface {
	GetLivescores(ctx context.Context, date string) ([]football.Fixture, error)
	GetFixturesByLeague(ctx context.Context, leagueID, seasonID int64) ([]football.Fixture, error)
	GetTeamFixtures(ctx context.Context, teamID int64, date string) ([]football.Fixture, error)
	GetFixturesByDate(ctx context.Context, date string) (usecase.GroupedFixtures, error)
	GetStandingsByLeague(ctx context.Context, leagueID, seasonID int64) ([]football.Standing, error)
	GetTeam(ctx context.Context, teamID int64) (*football.Team, error)
	GetMatch(ctx context.Context, matchID int64) (*football.MatchDetail, error)
	GetSchedulesBySeason(ctx context.Context, seasonID int64) ([]football.ScheduleStage, error)
	GetSchedulesByTeam(ctx context.Context, teamID int64) ([]football.ScheduleStage, error)
	GetSchedulesBySeasonAndTeam(ctx context.Context, seasonID, teamID int64) ([]football.ScheduleStage, error)
	GetSchedulesByLeague(ctx context.Context, leagueID int64) ([]football.ScheduleStage, error)
}

// CachePinger reports whether the cache backend is reachable.
type CachePinger interface {
	Ping(ctx context.Context) error
}

type HandlerConfig struct {
	RoutePrefix string
	Version     string
}

type Handler struct {
	service   SportDataService
	cache     CachePinger
	messages  *i18n.Messages
	logger    *logging.Logger
	validator *validator.Validate
	prefix    string
	version   string
	startedAt time.Time
	now       func() time.Time
}

func NewHandler(
	service SportDataService,
	cache CachePinger,
	messages *i18n.Messages,
	logger *logging.Logger,
	cfg HandlerConfig,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Version == "" {
		cfg.Version = "1.0.0"
	}

	return &Handler{
		service:   service,
		cache:     cache,
		messages:  messages,
		logger:    logger,
		validator: newValidator(),
		prefix:    cfg.RoutePrefix,
		version:   cfg.Version,
		startedAt: time.Now(),
		now:       time.Now,
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := field.Tag.Get("param"); name != "" {
			return name
		}
		return field.Name
	})
	_ = v.RegisterValidation("sportdate", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == usecase.DateToday {
			return true
		}
		_, err := time.Parse(time.DateOnly, value)
		return err == nil
	})
	return v
}

// validate checks req and converts the first failure into a parameter error.
func (h *Handler) validate(ctx context.Context, req any) error {
	err := h.validator.StructCtx(ctx, req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !asValidationErrors(err, &fieldErrs) || len(fieldErrs) == 0 {
		return usecase.InvalidParameter("request", req)
	}

	first := fieldErrs[0]
	if first.Tag() == "required" {
		return usecase.MissingParameter(first.Field())
	}
	return usecase.InvalidParameter(first.Field(), first.Value())
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = fieldErrs
	}
	return ok
}

// parseID turns a validated numeric string into an id. Empty means zero.
func parseID(param, raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, usecase.InvalidParameter(param, raw)
	}
	return id, nil
}
