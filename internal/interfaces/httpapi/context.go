package httpapi

import "context"

type contextKey string

const (
	localeContextKey    contextKey = "locale"
	requestIDContextKey contextKey = "request_id"
)

func withLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey, locale)
}

func localeFromContext(ctx context.Context) (string, bool) {
	locale, ok := ctx.Value(localeContextKey).(string)
	return locale, ok && locale != ""
}

func withRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, requestID)
}

func requestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDContextKey).(string)
	return requestID
}
