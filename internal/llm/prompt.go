package llm

import "fmt"

// BuildAnalysisPrompt renders the instruction block sent to the model.
// Pure and deterministic: the embedded JSON schema is the contract the
// response sanitizer enforces on the way back.
func BuildAnalysisPrompt(resumeText, jobRole string) string {
	return fmt.Sprintf(`You are an expert ATS (Applicant Tracking System) resume analyzer and career coach. Analyze the following resume for the "%[1]s" position.

RESUME CONTENT:
%[2]s

TARGET JOB ROLE: %[1]s

ANALYSIS REQUIREMENTS:
1. Evaluate ATS compatibility (format, keywords, structure)
2. Calculate overall resume quality score
3. Assess keyword match percentage for "%[1]s"
4. Identify key strengths
5. Suggest specific improvements
6. List missing critical keywords for this role
7. Provide actionable tips

CRITICAL: Respond ONLY with valid JSON. No explanations, no markdown, no code blocks. Just pure JSON.

Required JSON structure:
{
  "score": <number 0-100>,
  "ats": <number 0-100>,
  "keywordMatch": <number 0-100>,
  "strengths": [<array of 3-8 specific strengths as strings>],
  "improvements": [<array of 3-8 actionable improvements as strings>],
  "missingKeywords": [<array of 5-12 important missing keywords as strings>],
  "tips": [<array of 3-6 professional tips as strings>]
}

SCORING GUIDELINES:
- score: Overall resume quality (0-100)
- ats: ATS compatibility score (0-100)
- keywordMatch: Percentage of role-relevant keywords present (0-100)

IMPORTANT RULES:
- All array items must be clear, specific, and actionable
- Focus on "%[1]s" requirements
- Be constructive and professional
- Provide diverse, non-repetitive points
- Each improvement should address different aspects

Return ONLY the JSON object. No other text.`, jobRole, resumeText)
}
