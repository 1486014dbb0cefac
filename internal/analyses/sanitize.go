package analyses

import (
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strings"
)

// ErrParseFailed reports a model reply that could not be coerced into
// the canonical schema. The orchestrator absorbs it and substitutes
// Fallback; it is never surfaced to the client as an error.
var ErrParseFailed = errors.New("Failed to parse AI response. Please try again.")

var fenceMarkers = regexp.MustCompile("```(?:json)?\n?")

// ParseResponse turns a raw, possibly noisy model reply into a canonical
// Result. It never returns a partial object: any structural problem
// fails with ErrParseFailed.
func ParseResponse(raw string) (Result, error) {
	parsed, err := decode(extractJSON(raw))
	if err != nil {
		return Result{}, ErrParseFailed
	}
	if err := validateStructure(parsed); err != nil {
		return Result{}, ErrParseFailed
	}
	return sanitize(parsed), nil
}

// extractJSON isolates the candidate JSON from surrounding noise. A
// strict whole-string parse is preferred; the fence strip plus greedy
// first-{ to last-} span is the fallback heuristic and can misfire on
// prose containing braces.
func extractJSON(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if json.Valid([]byte(trimmed)) {
		return trimmed
	}

	cleaned := fenceMarkers.ReplaceAllString(raw, "")
	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start >= 0 && end > start {
		return cleaned[start : end+1]
	}
	return strings.TrimSpace(cleaned)
}

func decode(candidate string) (map[string]any, error) {
	var parsed map[string]any
	if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
		return nil, err
	}
	if parsed == nil {
		return nil, errors.New("not a JSON object")
	}
	return parsed, nil
}

// validateStructure checks that all seven required fields exist with
// the right coarse type. A miss here is a schema mismatch, not a value
// to silently default.
func validateStructure(parsed map[string]any) error {
	for _, field := range []string{"score", "ats", "keywordMatch"} {
		val, ok := parsed[field]
		if !ok {
			return errors.New("missing field: " + field)
		}
		if _, ok := val.(float64); !ok {
			return errors.New("field is not numeric: " + field)
		}
	}
	for _, field := range []string{"strengths", "improvements", "missingKeywords", "tips"} {
		val, ok := parsed[field]
		if !ok {
			return errors.New("missing field: " + field)
		}
		if _, ok := val.([]any); !ok {
			return errors.New("field is not an array: " + field)
		}
	}
	return nil
}

// sanitize is only reached once structure validates. Numbers are
// rounded then clamped into [0,100]; arrays keep only non-blank string
// entries in order, truncated to the field cap.
func sanitize(parsed map[string]any) Result {
	return Result{
		Score:           clampScore(parsed["score"].(float64)),
		ATS:             clampScore(parsed["ats"].(float64)),
		KeywordMatch:    clampScore(parsed["keywordMatch"].(float64)),
		Strengths:       cleanStrings(parsed["strengths"].([]any), maxStrengths),
		Improvements:    cleanStrings(parsed["improvements"].([]any), maxImprovements),
		MissingKeywords: cleanStrings(parsed["missingKeywords"].([]any), maxMissingKeywords),
		Tips:            cleanStrings(parsed["tips"].([]any), maxTips),
	}
}

func clampScore(value float64) int {
	rounded := int(math.Round(value))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

func cleanStrings(values []any, limit int) []string {
	out := make([]string, 0, len(values))
	for _, val := range values {
		str, ok := val.(string)
		if !ok || strings.TrimSpace(str) == "" {
			continue
		}
		out = append(out, str)
		if len(out) == limit {
			break
		}
	}
	return out
}
