package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/riskibarqy/sportmonks-middleware/internal/domain/football"
	"github.com/riskibarqy/sportmonks-middleware/internal/platform/cache"
	"github.com/riskibarqy/sportmonks-middleware/internal/transform"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DateToday  = "today"
	dateLayout = "2006-01-02"
)

// GetLivescores returns the matches of date, which is "today" or a
// YYYY-MM-DD day. Today's board comes from the livescores feed, any other
// day from the fixtures-by-date feed.
func (s *SportDataService) GetLivescores(ctx context.Context, date string) (out []football.Fixture, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SportDataService.GetLivescores", attribute.String("date", date))
	defer func() { endSpan(span, err) }()

	date = strings.TrimSpace(date)
	if date == "" {
		date = DateToday
	}
	day, err := s.parseDate("date", date)
	if err != nil {
		return nil, err
	}

	fetch := func(ctx context.Context) (any, error) {
		return s.provider.FetchLivescores(ctx)
	}
	if !day.Equal(s.today()) {
		fetch = func(ctx context.Context) (any, error) {
			return s.provider.FetchFixturesByDate(ctx, day.Format(dateLayout))
		}
	}

	return load(ctx, s, resource[[]football.Fixture]{
		key:   cache.LivescoresKey(date),
		ttl:   s.ttl.Livescores,
		code:  CodeLivescoresUnavailable,
		fetch: fetch,
		shape: transform.Livescores,
	})
}

// parseDate accepts "today" or YYYY-MM-DD and returns the UTC day.
func (s *SportDataService) parseDate(param, value string) (time.Time, error) {
	if value == DateToday {
		return s.today(), nil
	}
	day, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, InvalidParameter(param, value)
	}
	return day.UTC(), nil
}
