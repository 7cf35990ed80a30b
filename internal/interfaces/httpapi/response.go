package httpapi

import (
	"context"
	"net/http"
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/sportmonks-middleware/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const (
	codeRateLimited   = "RATE_LIMITED"
	codeRouteNotFound = "NOT_FOUND"
)

// listEnvelope keeps data and count even when empty.
type listEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
	Count   int  `json:"count"`
}

type objectEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type groupedEnvelope struct {
	Success       bool `json:"success"`
	Data          any  `json:"data"`
	Count         int  `json:"count"`
	TotalFixtures int  `json:"totalFixtures"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// paramLabels are the human names used inside parameter messages.
var paramLabels = map[string]string{
	"leagueId": "League ID",
	"teamId":   "Team ID",
	"matchId":  "Match ID",
	"seasonId": "Season ID",
	"season":   "Season",
	"date":     "date",
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		buf.Reset()
		status = http.StatusInternalServerError
		_, _ = buf.WriteString(`{"success":false,"message":"internal server error","code":"INTERNAL"}`)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

func writeList[T any](ctx context.Context, w http.ResponseWriter, items []T) {
	if items == nil {
		items = []T{}
	}
	writeJSON(ctx, w, http.StatusOK, listEnvelope{Success: true, Data: items, Count: len(items)})
}

func writeObject(ctx context.Context, w http.ResponseWriter, data any) {
	writeJSON(ctx, w, http.StatusOK, objectEnvelope{Success: true, Data: data})
}

// writeError renders err in the request locale. Only 500s are logged here;
// the usecase layer already logged the cause at WARN.
func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	status := statusFor(err)
	code := string(usecase.CodeOf(err))
	param := usecase.ParamOf(err)
	if label, ok := paramLabels[param]; ok {
		param = label
	}

	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, "request failed", "code", code, "error", err)
	}

	h.writeCode(ctx, w, status, code, param)
}

func (h *Handler) writeCode(ctx context.Context, w http.ResponseWriter, status int, code string, params ...string) {
	writeJSON(ctx, w, status, errorEnvelope{
		Success: false,
		Message: h.messages.Message(h.locale(ctx), code, params...),
		Code:    code,
	})
}

func (h *Handler) locale(ctx context.Context) string {
	if locale, ok := localeFromContext(ctx); ok {
		return locale
	}
	return h.messages.DefaultLocale()
}

func statusFor(err error) int {
	switch {
	case usecase.IsInvalidInput(err):
		return http.StatusBadRequest
	case usecase.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
