package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/sportmonks-middleware/internal/platform/logging"
)

const (
	CacheDriverRedis  = "redis"
	CacheDriverMemory = "memory"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv          string
	ServiceName     string
	ServiceVersion  string
	HTTPAddr        string
	RoutePrefix     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	LogLevel        logging.Level
	Locale          string

	CORSAllowedOrigins   []string
	RateLimitWindow      time.Duration
	RateLimitMaxRequests int
	RateLimitTrustProxy  bool
	SwaggerEnabled       bool

	SportMonksBaseURL               string
	SportMonksToken                 string
	SportMonksTimeout               time.Duration
	SportMonksMaxPages              int
	SportMonksCircuitEnabled        bool
	SportMonksCircuitFailureCount   int
	SportMonksCircuitOpenTimeout    time.Duration
	SportMonksCircuitHalfOpenMaxReq int

	CacheDriver        string
	RedisHost          string
	RedisPort          int
	RedisPassword      string
	RedisDB            int
	RedisDialTimeout   time.Duration
	CacheTTLLivescores time.Duration
	CacheTTLFixtures   time.Duration
	CacheTTLStandings  time.Duration
	CacheTTLTeams      time.Duration
	CacheTTLSchedules  time.Duration
	CacheTTLLeagues    time.Duration
	CachePurgePatterns []string

	PrefetchEnabled         bool
	PrefetchWarmOnStart     bool
	PrefetchLeagueIDs       []int64
	PrefetchDelay           time.Duration
	PrefetchLivescoresCron  string
	PrefetchFixturesCron    string
	PrefetchStandingsCron   string
	PrefetchMaintenanceCron string
	PrefetchLocation        *time.Location

	PprofEnabled bool
	PprofAddr    string

	UptraceEnabled bool
	UptraceDSN     string

	BetterStackEnabled  bool
	BetterStackEndpoint string
	BetterStackToken    string
	BetterStackTimeout  time.Duration
	BetterStackMinLevel logging.Level

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:         appEnv,
		ServiceName:    getEnv("APP_SERVICE_NAME", "sportmonks-middleware"),
		ServiceVersion: getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:       httpAddr(),
		RoutePrefix:    normalizePrefix(getEnv("APP_ROUTE_PREFIX", "/api")),
		Locale:         strings.ToLower(strings.TrimSpace(getEnv("APP_LOCALE", "th"))),

		CORSAllowedOrigins: splitCSV(getEnv("ALLOWED_ORIGINS", "http://localhost:8000")),

		SportMonksBaseURL: strings.TrimRight(strings.TrimSpace(getEnv("SPORTMONKS_BASE_URL", "https://api.sportmonks.com/v3/football")), "/"),
		SportMonksToken:   strings.TrimSpace(getEnv("SPORTMONKS_API_KEY", getEnv("SPORTMONKS_TOKEN", ""))),

		CacheDriver:        strings.ToLower(strings.TrimSpace(getEnv("CACHE_DRIVER", CacheDriverRedis))),
		RedisHost:          strings.TrimSpace(getEnv("REDIS_HOST", "localhost")),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		CachePurgePatterns: splitCSV(getEnv("CACHE_PURGE_PATTERNS", "")),

		PrefetchLivescoresCron:  strings.TrimSpace(getEnv("PREFETCH_LIVESCORES_CRON", "* * * * *")),
		PrefetchFixturesCron:    strings.TrimSpace(getEnv("PREFETCH_FIXTURES_CRON", "*/30 * * * *")),
		PrefetchStandingsCron:   strings.TrimSpace(getEnv("PREFETCH_STANDINGS_CRON", "0 */6 * * *")),
		PrefetchMaintenanceCron: strings.TrimSpace(getEnv("PREFETCH_MAINTENANCE_CRON", "0 0 * * *")),

		PprofAddr: strings.TrimSpace(getEnv("PPROF_ADDR", ":6060")),

		UptraceDSN: strings.TrimSpace(getEnv("UPTRACE_DSN", "")),

		BetterStackEndpoint: strings.TrimSpace(getEnv("BETTERSTACK_ENDPOINT", "")),
		BetterStackToken:    strings.TrimSpace(getEnv("BETTERSTACK_TOKEN", "")),

		PyroscopeServerAddress:     strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", "")),
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}

	p := parser{}
	cfg.ReadTimeout = p.duration("APP_READ_TIMEOUT", "10s")
	cfg.WriteTimeout = p.duration("APP_WRITE_TIMEOUT", "30s")
	cfg.ShutdownTimeout = p.duration("APP_SHUTDOWN_TIMEOUT", "15s")
	cfg.LogLevel = p.level("APP_LOG_LEVEL", "info")
	cfg.SwaggerEnabled = p.boolean("SWAGGER_ENABLED", swaggerDefault)

	cfg.RateLimitWindow = time.Duration(p.integer("RATE_LIMIT_WINDOW_MS", 900000)) * time.Millisecond
	cfg.RateLimitMaxRequests = p.integer("RATE_LIMIT_MAX_REQUESTS", 100)
	cfg.RateLimitTrustProxy = p.boolean("RATE_LIMIT_TRUST_PROXY", "false")

	cfg.SportMonksTimeout = p.duration("SPORTMONKS_TIMEOUT", "10s")
	cfg.SportMonksMaxPages = p.integer("SPORTMONKS_MAX_PAGES", 1)
	cfg.SportMonksCircuitEnabled = p.boolean("SPORTMONKS_CIRCUIT_ENABLED", "true")
	cfg.SportMonksCircuitFailureCount = p.integer("SPORTMONKS_CIRCUIT_FAILURE_COUNT", 5)
	cfg.SportMonksCircuitOpenTimeout = p.duration("SPORTMONKS_CIRCUIT_OPEN_TIMEOUT", "30s")
	cfg.SportMonksCircuitHalfOpenMaxReq = p.integer("SPORTMONKS_CIRCUIT_HALF_OPEN_MAX_REQ", 1)

	cfg.RedisPort = p.integer("REDIS_PORT", 6379)
	cfg.RedisDB = p.integer("REDIS_DB", 0)
	cfg.RedisDialTimeout = p.duration("REDIS_DIAL_TIMEOUT", "5s")
	cfg.CacheTTLLivescores = p.seconds("CACHE_TTL_LIVESCORES", 60)
	cfg.CacheTTLFixtures = p.seconds("CACHE_TTL_FIXTURES", 3600)
	cfg.CacheTTLStandings = p.seconds("CACHE_TTL_STANDINGS", 86400)
	cfg.CacheTTLTeams = p.seconds("CACHE_TTL_TEAMS", 604800)
	cfg.CacheTTLSchedules = p.seconds("CACHE_TTL_SCHEDULES", 3600)
	cfg.CacheTTLLeagues = p.seconds("CACHE_TTL_LEAGUES", 86400)

	cfg.PrefetchEnabled = p.boolean("PREFETCH_ENABLED", "true")
	cfg.PrefetchWarmOnStart = p.boolean("PREFETCH_WARM_ON_START", "false")
	cfg.PrefetchLeagueIDs = p.ids("PREFETCH_LEAGUE_IDS", "8,564,384,82,301,2,5")
	cfg.PrefetchDelay = p.duration("PREFETCH_DELAY", "2s")
	cfg.PrefetchLocation = p.location("PREFETCH_TIMEZONE", "UTC")

	cfg.PprofEnabled = p.boolean("PPROF_ENABLED", "false")
	cfg.UptraceEnabled = p.boolean("UPTRACE_ENABLED", "false")
	cfg.BetterStackEnabled = p.boolean("BETTERSTACK_ENABLED", "false")
	cfg.BetterStackTimeout = p.duration("BETTERSTACK_TIMEOUT", "3s")
	cfg.BetterStackMinLevel = p.level("BETTERSTACK_MIN_LEVEL", "error")
	cfg.PyroscopeEnabled = p.boolean("PYROSCOPE_ENABLED", "false")
	cfg.PyroscopeUploadRate = p.duration("PYROSCOPE_UPLOAD_RATE", "15s")

	if p.err != nil {
		return Config{}, p.err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.SportMonksToken == "" {
		return fmt.Errorf("SPORTMONKS_API_KEY is required")
	}
	if c.SportMonksBaseURL == "" {
		return fmt.Errorf("SPORTMONKS_BASE_URL cannot be empty")
	}
	if c.SportMonksTimeout <= 0 {
		return fmt.Errorf("SPORTMONKS_TIMEOUT must be > 0")
	}
	if c.SportMonksMaxPages < 1 {
		return fmt.Errorf("SPORTMONKS_MAX_PAGES must be >= 1")
	}
	if c.SportMonksCircuitFailureCount < 1 {
		return fmt.Errorf("SPORTMONKS_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	if c.SportMonksCircuitOpenTimeout <= 0 {
		return fmt.Errorf("SPORTMONKS_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	if c.SportMonksCircuitHalfOpenMaxReq < 1 {
		return fmt.Errorf("SPORTMONKS_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	switch c.CacheDriver {
	case CacheDriverRedis, CacheDriverMemory:
	default:
		return fmt.Errorf("invalid CACHE_DRIVER %q: valid values are %s, %s", c.CacheDriver, CacheDriverRedis, CacheDriverMemory)
	}
	if c.RedisPort <= 0 || c.RedisPort > 65535 {
		return fmt.Errorf("REDIS_PORT must be between 1 and 65535")
	}
	if c.RedisDB < 0 {
		return fmt.Errorf("REDIS_DB must be >= 0")
	}
	ttls := map[string]time.Duration{
		"CACHE_TTL_LIVESCORES": c.CacheTTLLivescores,
		"CACHE_TTL_FIXTURES":   c.CacheTTLFixtures,
		"CACHE_TTL_STANDINGS":  c.CacheTTLStandings,
		"CACHE_TTL_TEAMS":      c.CacheTTLTeams,
		"CACHE_TTL_SCHEDULES":  c.CacheTTLSchedules,
		"CACHE_TTL_LEAGUES":    c.CacheTTLLeagues,
	}
	for name, ttl := range ttls {
		if ttl <= 0 {
			return fmt.Errorf("%s must be > 0", name)
		}
	}

	if len(c.CORSAllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_ORIGINS cannot be empty")
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW_MS must be > 0")
	}
	if c.RateLimitMaxRequests < 1 {
		return fmt.Errorf("RATE_LIMIT_MAX_REQUESTS must be >= 1")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("APP_SHUTDOWN_TIMEOUT must be > 0")
	}
	switch c.Locale {
	case "th", "en":
	default:
		return fmt.Errorf("invalid APP_LOCALE %q: valid values are th, en", c.Locale)
	}

	if c.PrefetchDelay < 0 {
		return fmt.Errorf("PREFETCH_DELAY must be >= 0")
	}
	if c.PprofEnabled && c.PprofAddr == "" {
		return fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}
	if c.UptraceEnabled && c.UptraceDSN == "" {
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	if c.BetterStackEnabled && c.BetterStackEndpoint == "" {
		return fmt.Errorf("BETTERSTACK_ENDPOINT is required when BETTERSTACK_ENABLED=true")
	}
	if c.BetterStackTimeout <= 0 {
		return fmt.Errorf("BETTERSTACK_TIMEOUT must be > 0")
	}
	if c.PyroscopeEnabled && c.PyroscopeServerAddress == "" {
		return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	if c.PyroscopeEnabled && c.PyroscopeAppName == "" {
		return fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if c.PyroscopeUploadRate <= 0 {
		return fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}
	return nil
}

// parser keeps the first conversion error so Load can read every variable
// in one pass.
type parser struct {
	err error
}

func (p *parser) fail(key string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("parse %s: %w", key, err)
	}
}

func (p *parser) boolean(key, fallback string) bool {
	out, err := strconv.ParseBool(strings.TrimSpace(getEnv(key, fallback)))
	if err != nil {
		p.fail(key, err)
	}
	return out
}

func (p *parser) integer(key string, fallback int) int {
	out, err := getEnvAsInt(key, fallback)
	if err != nil {
		p.fail(key, err)
	}
	return out
}

func (p *parser) duration(key, fallback string) time.Duration {
	out, err := time.ParseDuration(strings.TrimSpace(getEnv(key, fallback)))
	if err != nil {
		p.fail(key, err)
	}
	return out
}

func (p *parser) seconds(key string, fallback int) time.Duration {
	return time.Duration(p.integer(key, fallback)) * time.Second
}

func (p *parser) level(key, fallback string) logging.Level {
	out, ok := logging.ParseLevel(getEnv(key, fallback))
	if !ok {
		p.fail(key, fmt.Errorf("unknown level %q", getEnv(key, fallback)))
	}
	return out
}

func (p *parser) ids(key, fallback string) []int64 {
	out, err := parseIDs(getEnv(key, fallback))
	if err != nil {
		p.fail(key, err)
	}
	return out
}

func (p *parser) location(key, fallback string) *time.Location {
	out, err := time.LoadLocation(strings.TrimSpace(getEnv(key, fallback)))
	if err != nil {
		p.fail(key, err)
		return time.UTC
	}
	return out
}

// httpAddr honours the conventional PORT variable before APP_HTTP_ADDR.
func httpAddr() string {
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		return ":" + strings.TrimPrefix(port, ":")
	}
	return getEnv("APP_HTTP_ADDR", ":3000")
}

func normalizePrefix(v string) string {
	value := strings.Trim(strings.TrimSpace(v), "/")
	if value == "" {
		return ""
	}
	return "/" + value
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseIDs(raw string) ([]int64, error) {
	items := splitCSV(raw)
	out := make([]int64, 0, len(items))
	for _, item := range items {
		value, err := strconv.ParseInt(item, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", item, err)
		}
		if value <= 0 {
			return nil, fmt.Errorf("id must be > 0, got %d", value)
		}
		out = append(out, value)
	}
	return out, nil
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
