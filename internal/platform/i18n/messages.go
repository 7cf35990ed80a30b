package i18n

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/th"
	ut "github.com/go-playground/universal-translator"
)

const (
	LocaleThai    = "th"
	LocaleEnglish = "en"

	// FallbackCode is used when a code has no message in the chosen locale.
	FallbackCode = "INTERNAL"
)

var catalog = map[string]map[string]string{
	LocaleThai: {
		"MISSING_PARAMETER":         "กรุณาระบุ {0}",
		"INVALID_PARAMETER":         "รูปแบบ {0} ไม่ถูกต้อง",
		"LIVESCORES_UNAVAILABLE":    "ไม่สามารถดึงข้อมูล Live Scores ได้",
		"FIXTURES_UNAVAILABLE":      "ไม่สามารถดึงข้อมูลตารางการแข่งขันได้",
		"TEAM_FIXTURES_UNAVAILABLE": "ไม่สามารถดึงข้อมูลตารางการแข่งขันของทีมได้",
		"STANDINGS_UNAVAILABLE":     "ไม่สามารถดึงข้อมูลตารางคะแนนได้",
		"TEAM_UNAVAILABLE":          "ไม่สามารถดึงข้อมูลทีมได้",
		"MATCH_UNAVAILABLE":         "ไม่สามารถดึงข้อมูลการแข่งขันได้",
		"SCHEDULES_UNAVAILABLE":     "ไม่สามารถดึงข้อมูลโปรแกรมการแข่งขันได้",
		"NO_CURRENT_SEASON":         "ไม่พบฤดูกาลปัจจุบันของลีกนี้",
		"RATE_LIMITED":              "คำขอมากเกินไป กรุณาลองใหม่อีกครั้งภายหลัง",
		"NOT_FOUND":                 "Endpoint ไม่พบในระบบ",
		"INTERNAL":                  "เกิดข้อผิดพลาดภายในเซิร์ฟเวอร์",
	},
	LocaleEnglish: {
		"MISSING_PARAMETER":         "{0} is required",
		"INVALID_PARAMETER":         "{0} is invalid",
		"LIVESCORES_UNAVAILABLE":    "Unable to fetch live scores",
		"FIXTURES_UNAVAILABLE":      "Unable to fetch fixtures",
		"TEAM_FIXTURES_UNAVAILABLE": "Unable to fetch team fixtures",
		"STANDINGS_UNAVAILABLE":     "Unable to fetch standings",
		"TEAM_UNAVAILABLE":          "Unable to fetch team",
		"MATCH_UNAVAILABLE":         "Unable to fetch match details",
		"SCHEDULES_UNAVAILABLE":     "Unable to fetch schedules",
		"NO_CURRENT_SEASON":         "The league has no current season",
		"RATE_LIMITED":              "Too many requests, please try again later",
		"NOT_FOUND":                 "Endpoint not found",
		"INTERNAL":                  "Internal server error",
	},
}

// Messages renders error codes into user-facing text for a locale.
type Messages struct {
	universal     *ut.UniversalTranslator
	defaultLocale string
}

func New(defaultLocale string) (*Messages, error) {
	enLocale := en.New()
	universal := ut.New(enLocale, enLocale, th.New())

	for locale, messages := range catalog {
		translator, ok := universal.GetTranslator(locale)
		if !ok {
			return nil, fmt.Errorf("translator for locale %q not registered", locale)
		}
		for code, text := range messages {
			if err := translator.Add(code, text, false); err != nil {
				return nil, fmt.Errorf("add %s message %s: %w", locale, code, err)
			}
		}
	}

	if err := universal.VerifyTranslations(); err != nil {
		return nil, fmt.Errorf("verify translations: %w", err)
	}

	locale := normalizeLocale(defaultLocale)
	if _, ok := catalog[locale]; !ok {
		return nil, fmt.Errorf("unsupported locale %q", defaultLocale)
	}

	return &Messages{universal: universal, defaultLocale: locale}, nil
}

// DefaultLocale returns the locale used when a request does not pick one.
func (m *Messages) DefaultLocale() string {
	return m.defaultLocale
}

// Resolve picks the supported locale with the highest q weight from an
// Accept-Language header. Ties keep header order and q=0 excludes a tag.
func (m *Messages) Resolve(acceptLanguage string) string {
	type candidate struct {
		tag    string
		weight float64
	}

	var candidates []candidate
	for _, part := range strings.Split(acceptLanguage, ",") {
		fields := strings.Split(part, ";")
		tag := normalizeLocale(fields[0])
		if _, ok := catalog[tag]; !ok {
			continue
		}
		weight, ok := qWeight(fields[1:])
		if !ok || weight <= 0 {
			continue
		}
		candidates = append(candidates, candidate{tag: tag, weight: weight})
	}
	if len(candidates) == 0 {
		return m.defaultLocale
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return cmp.Compare(b.weight, a.weight)
	})
	return candidates[0].tag
}

// qWeight reads the q parameter of a language range; it defaults to 1 and
// reports false when the value is malformed.
func qWeight(params []string) (float64, bool) {
	for _, param := range params {
		key, value, found := strings.Cut(strings.TrimSpace(param), "=")
		if !found || !strings.EqualFold(strings.TrimSpace(key), "q") {
			continue
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || weight < 0 || weight > 1 {
			return 0, false
		}
		return weight, true
	}
	return 1, true
}

// Message renders code in locale with positional params. Unknown locales use
// the default locale and unknown codes use FallbackCode.
func (m *Messages) Message(locale, code string, params ...string) string {
	locale = normalizeLocale(locale)
	if _, ok := catalog[locale]; !ok {
		locale = m.defaultLocale
	}
	translator, _ := m.universal.GetTranslator(locale)

	// T indexes params by placeholder position and panics on a short slice.
	for len(params) < strings.Count(catalog[locale][code], "{") {
		params = append(params, "")
	}

	text, err := translator.T(code, params...)
	if err == nil {
		return text
	}

	text, err = translator.T(FallbackCode)
	if err != nil {
		return FallbackCode
	}
	return text
}

func normalizeLocale(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if idx := strings.IndexAny(raw, "-_"); idx > 0 {
		raw = raw[:idx]
	}
	return raw
}
