package httpapi

import (
	"net/http"

	"github.com/riskibarqy/sportmonks-middleware/internal/platform/id"
	"github.com/riskibarqy/sportmonks-middleware/internal/platform/logging"
	"github.com/riskibarqy/sportmonks-middleware/internal/usecase"
)

// RouterConfig carries the HTTP surface settings.
type RouterConfig struct {
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
	Limiter            *RateLimiter
	RequestIDs         id.Generator
}

// NewRouter wires routes and middleware, outermost first: tracing, request
// id, logging, locale, panic recovery, security headers, CORS, compression
// and rate limiting.
func NewRouter(handler *Handler, logger *logging.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.RequestIDs == nil {
		cfg.RequestIDs = id.NewRandomGenerator()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, cfg.SwaggerEnabled)
	registerSportRoutes(mux, handler)

	var chain http.Handler = mux
	chain = handler.RateLimit(cfg.Limiter, chain)
	chain = Compress(chain)
	chain = CORS(cfg.CORSAllowedOrigins, chain)
	chain = SecurityHeaders(chain)
	chain = handler.recoverPanic(chain)
	chain = handler.Localize(chain)
	chain = RequestLogging(logger, chain)
	chain = RequestID(cfg.RequestIDs, chain)
	return RequestTracing(chain)
}

func (h *Handler) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				h.logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				h.writeCode(ctx, w, http.StatusInternalServerError, string(usecase.CodeInternal))
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
