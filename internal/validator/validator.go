package validator

import (
	"strings"
	"unicode/utf8"

	"github.com/rafaelandrade/intelligent-resume-matcher/internal/logging"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/logging/types"
	"github.com/rafaelandrade/intelligent-resume-matcher/pkg/utils"
)

// Score is the per-signal breakdown accumulated while validating
type Score struct {
	SectionsFound int
	HasEmail      bool
	HasPhone      bool
	HasDates      bool
	HasEducation  bool
	Total         int
}

// Result is the validator's decision. Rejections carry a localized reason
// suitable for returning to the caller verbatim.
type Result struct {
	Accepted bool
	Reason   string
	Score    Score
}

// Validator decides whether extracted PDF text looks like a resume. It is a
// pure function of (text, language) and runs before any LLM call so
// non-resumes are rejected without paying for inference.
type Validator struct {
	logger types.Logger
}

// New creates a validator
func New() *Validator {
	return &Validator{
		logger: logging.GetGlobalLogger(),
	}
}

// Validate scores text against the language's rule set and accepts when the
// total reaches the cutoff. The sub-score breakdown is always logged.
func (v *Validator) Validate(text, language string) Result {
	rules := rulesEN
	if utils.IsPortuguese(language) {
		rules = rulesPT
	}

	trimmed := strings.TrimSpace(text)
	// Length gate counts characters, not bytes, so accented text is not
	// inflated by its UTF-8 encoding
	if utf8.RuneCountInString(trimmed) < minResumeLength {
		v.logger.Info("Resume rejected, text too short", map[string]interface{}{
			"text_length": utf8.RuneCountInString(trimmed),
			"language":    language,
		})
		return Result{Accepted: false, Reason: rules.msgNotValid}
	}

	lower := strings.ToLower(trimmed)
	score := Score{}

	for _, section := range rules.sections {
		if strings.Contains(lower, section) {
			score.SectionsFound++
		}
	}
	switch {
	case score.SectionsFound >= sectionHighCutoff:
		score.Total += sectionBonusHigh
	case score.SectionsFound >= 1:
		score.Total += sectionBonusLow
	}

	if emailRe.MatchString(trimmed) {
		score.HasEmail = true
		score.Total += contactBonus
	}

	if phoneRe.MatchString(trimmed) {
		score.HasPhone = true
		score.Total += contactBonus
	}

	for _, pattern := range rules.datePatterns {
		if pattern.MatchString(trimmed) {
			score.HasDates = true
			score.Total += dateBonus
			break
		}
	}

	for _, term := range rules.educationTerms {
		if strings.Contains(lower, term) {
			score.HasEducation = true
			score.Total += educationBonus
			break
		}
	}

	accepted := score.Total >= acceptanceCutoff

	v.logger.Info("Resume validation scored", map[string]interface{}{
		"sections_found": score.SectionsFound,
		"has_email":      score.HasEmail,
		"has_phone":      score.HasPhone,
		"has_dates":      score.HasDates,
		"has_education":  score.HasEducation,
		"total":          score.Total,
		"accepted":       accepted,
		"language":       language,
	})

	if !accepted {
		return Result{Accepted: false, Reason: rules.msgLacksTraits, Score: score}
	}

	return Result{Accepted: true, Score: score}
}
