package analyses

// Result is the canonical analysis schema, the only shape ever returned
// to a client:
//
//	{
//	  "score": number 0-100,
//	  "ats": number 0-100,
//	  "keywordMatch": number 0-100,
//	  "strengths": ["string"],        // max 10
//	  "improvements": ["string"],     // max 10
//	  "missingKeywords": ["string"],  // max 15
//	  "tips": ["string"]              // max 10
//	}
//
// Constructed once per request from the untrusted model reply, immutable
// after sanitization, never stored server-side.
type Result struct {
	Score           int      `json:"score"`
	ATS             int      `json:"ats"`
	KeywordMatch    int      `json:"keywordMatch"`
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
	MissingKeywords []string `json:"missingKeywords"`
	Tips            []string `json:"tips"`
}

// Array caps per field.
const (
	maxStrengths       = 10
	maxImprovements    = 10
	maxMissingKeywords = 15
	maxTips            = 10
)

// Fallback is the designated recovery value substituted when the model
// reply cannot be sanitized, so the caller always receives a well-formed
// result instead of an error page.
func Fallback(reason string) Result {
	if reason == "" {
		reason = "Analysis unavailable"
	}
	return Result{
		Score:           0,
		ATS:             0,
		KeywordMatch:    0,
		Strengths:       []string{"Unable to analyze resume"},
		Improvements:    []string{"Error: " + reason},
		MissingKeywords: []string{},
		Tips:            []string{"Please try uploading your resume again"},
	}
}
