package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// coerceStringList normalizes the multi-select field: a list stays a list, a
// scalar is wrapped, anything absent becomes an empty list.
func coerceStringList(v any) []string {
	switch x := v.(type) {
	case nil:
		return []string{}
	case string:
		return []string{x}
	case []string:
		return append([]string(nil), x...)
	case []any:
		out := make([]string, 0, len(x))
		for _, item := range x {
			if s, ok := item.(string); ok {
				out = append(out, s)
			} else {
				out = append(out, fmt.Sprint(item))
			}
		}
		return out
	default:
		return []string{fmt.Sprint(x)}
	}
}

// consentToBool treats exactly "true" (any case) as consent; everything else,
// including absence, is false.
func consentToBool(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}

func jsonArray(v []string) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func parseStringArray(raw string) []string {
	var out []string
	if raw != "" {
		_ = json.Unmarshal([]byte(raw), &out)
	}
	if out == nil {
		out = []string{}
	}
	return out
}

// newSurveyResponse builds a storable record from a submitted payload:
// coerces q1_c to a list, maps finalReadingDuration onto the storage column,
// coerces consent, and stamps the server time. The id is assigned by the
// caller.
func newSurveyResponse(req SubmitRequest, now time.Time) SurveyResponse {
	return SurveyResponse{
		ConsentAgreed: consentToBool(req.ConsentAgreed),
		GradeLevel:    req.GradeLevel,

		Q1A:    req.Q1A,
		Q1B:    req.Q1B,
		Q1CRaw: jsonArray(coerceStringList(req.Q1C)),
		Q1D:    req.Q1D,
		Q1E:    req.Q1E,
		Q1F:    req.Q1F,

		Q2A: req.Q2A,
		Q2B: req.Q2B,
		Q2C: req.Q2C,

		QuizQ1: req.QuizQ1,
		QuizQ2: req.QuizQ2,
		QuizQ3: req.QuizQ3,
		QuizQ4: req.QuizQ4,
		QuizQ5: req.QuizQ5,
		QuizQ6: req.QuizQ6,
		QuizQ7: req.QuizQ7,

		ReadingDuration: req.FinalReadingDuration,
		SubmittedAt:     now,
	}
}
