package validator

import "regexp"

// Rule sets are parallel across languages: section header terms, contact
// patterns, date patterns, and education terms. Contact regexes are shared
// because email addresses and phone formats are language-neutral.

var sectionTermsEN = []string{
	"summary",
	"objective",
	"experience",
	"employment",
	"work history",
	"education",
	"skills",
	"certifications",
	"projects",
	"languages",
	"references",
}

var sectionTermsPT = []string{
	"resumo",
	"objetivo",
	"experiência",
	"formação",
	"educação",
	"habilidades",
	"competências",
	"certificações",
	"projetos",
	"idiomas",
}

var educationTermsEN = []string{
	"bachelor",
	"master",
	"phd",
	"doctorate",
	"university",
	"college",
	"degree",
	"graduated",
}

var educationTermsPT = []string{
	"bacharel",
	"mestrado",
	"doutorado",
	"universidade",
	"faculdade",
	"graduação",
	"graduado",
	"licenciatura",
	"tecnólogo",
	"formado",
}

var emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// Matches "(11) 98765-4321", "(123) 456-7890" and "123-456-7890" without
// firing on bare year ranges like "2015-2019"
var phoneRe = regexp.MustCompile(`(?:\(\d{2,3}\)\s?|\b\d{3}[-.\s])\d{3,5}[-.\s]?\d{4}\b`)

var datePatternsEN = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}`),
	regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
	regexp.MustCompile(`(?i)\b(19|20)\d{2}\s*[-–]\s*((19|20)\d{2}|present)\b`),
}

var datePatternsPT = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(jan|fev|mar|abr|mai|jun|jul|ago|set|out|nov|dez)[a-zç]*\.?\s*(de\s+)?\d{4}`),
	regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
	regexp.MustCompile(`(?i)\b(19|20)\d{2}\s*[-–]\s*((19|20)\d{2}|atual|presente)\b`),
}

// Localized rejection messages
const (
	msgNotValidEN     = "The PDF is not a valid resume"
	msgNotValidPT     = "O PDF não é um currículo válido"
	msgLacksTraitsEN  = "Document lacks resume characteristics"
	msgLacksTraitsPT  = "O documento não possui características de um currículo"
	minResumeLength   = 100
	acceptanceCutoff  = 5
	sectionBonusHigh  = 3
	sectionBonusLow   = 1
	contactBonus      = 2
	dateBonus         = 2
	educationBonus    = 1
	sectionHighCutoff = 3
)

// ruleSet bundles the language-specific heuristics
type ruleSet struct {
	sections       []string
	educationTerms []string
	datePatterns   []*regexp.Regexp
	msgNotValid    string
	msgLacksTraits string
}

var rulesEN = ruleSet{
	sections:       sectionTermsEN,
	educationTerms: educationTermsEN,
	datePatterns:   datePatternsEN,
	msgNotValid:    msgNotValidEN,
	msgLacksTraits: msgLacksTraitsEN,
}

var rulesPT = ruleSet{
	sections:       sectionTermsPT,
	educationTerms: educationTermsPT,
	datePatterns:   datePatternsPT,
	msgNotValid:    msgNotValidPT,
	msgLacksTraits: msgLacksTraitsPT,
}
