package matcher

import (
	"regexp"
	"strings"
	"unicode"
)

// stopWords are filler words ignored during keyword extraction. The set
// leans job-posting-specific: words like "experience" and "required" carry
// no signal in this domain.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "an", "the", "and", "or", "but", "in", "on", "at", "to", "for",
		"of", "with", "by", "from", "is", "are", "was", "were", "be", "been",
		"being", "have", "has", "had", "do", "does", "did", "will", "would",
		"could", "should", "may", "might", "shall", "can", "need", "must",
		"that", "which", "who", "whom", "this", "these", "those", "it", "its",
		"we", "you", "your", "our", "they", "them", "their", "he", "she",
		"as", "if", "not", "no", "so", "up", "out", "about", "into", "over",
		"after", "before", "between", "under", "above", "such", "each",
		"all", "any", "both", "few", "more", "most", "other", "some",
		"only", "same", "than", "too", "very", "just", "also", "well",
		"etc", "e.g", "i.e", "able", "work", "working", "including",
		"experience", "using", "used", "use", "new", "within", "across",
		"strong", "excellent", "good", "great", "best", "high", "highly",
		"minimum", "preferred", "required", "requirements", "looking",
		"join", "team", "role", "position", "company", "years", "year",
	} {
		stopWords[w] = struct{}{}
	}
}

// compoundTerms are multi-word technical phrases detected as single
// keyword units rather than split into separate words.
var compoundTerms = []string{
	"machine learning", "deep learning", "natural language processing",
	"computer vision", "data science", "data engineering", "data analysis",
	"project management", "product management", "software engineering",
	"full stack", "front end", "back end", "cloud computing",
	"ci/cd", "ci cd", "version control", "unit testing",
	"rest api", "restful api", "web services", "microservices",
	"agile methodology", "scrum master", "design patterns",
	"object oriented", "test driven", "continuous integration",
	"continuous delivery", "continuous deployment",
	"amazon web services", "google cloud", "microsoft azure",
}

// nonKeywordChars matches everything outside word characters, whitespace,
// and the tech-name characters / + # . (think C++, C#, node.js, ci/cd).
var nonKeywordChars = regexp.MustCompile(`[^\w\s/+#.]`)

// normalize lowercases text and strips characters that never appear in
// technology names.
func normalize(text string) string {
	return strings.TrimSpace(nonKeywordChars.ReplaceAllString(strings.ToLower(text), " "))
}

// ExtractKeywords extracts meaningful keywords and compound phrases from
// free text.
func ExtractKeywords(text string) map[string]struct{} {
	normalized := normalize(text)
	keywords := make(map[string]struct{})

	// Compound terms first, by substring containment on normalized text.
	for _, term := range compoundTerms {
		if strings.Contains(normalized, term) {
			keywords[term] = struct{}{}
		}
	}

	for _, word := range strings.Fields(normalized) {
		word = strings.Trim(word, ".,;:()")
		if len(word) < 2 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		keywords[word] = struct{}{}
	}

	return keywords
}

// filterImportant keeps only keywords likely meaningful for matching:
// short tokens survive only as all-uppercase acronyms, and pure numbers
// are dropped.
func filterImportant(keywords map[string]struct{}) map[string]struct{} {
	important := make(map[string]struct{}, len(keywords))
	for kw := range keywords {
		if len(kw) <= 2 && !isUpperAcronym(kw) {
			continue
		}
		if isDigits(kw) {
			continue
		}
		important[kw] = struct{}{}
	}
	return important
}

// isUpperAcronym reports whether s contains at least one letter and every
// letter is uppercase. Letterless tokens like "++" are not acronyms.
func isUpperAcronym(s string) bool {
	hasLetter := false
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		hasLetter = true
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return hasLetter
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isCompoundMember reports whether a keyword is, or is contained in, a
// known compound term.
func isCompoundMember(keyword string) bool {
	for _, term := range compoundTerms {
		if strings.Contains(term, keyword) {
			return true
		}
	}
	return false
}

// looksLikeTechAbbreviation reports whether a short keyword looks like a
// technology name once +/# decorations are stripped (go, sql, c++, c#).
func looksLikeTechAbbreviation(keyword string) bool {
	if len(keyword) > 5 {
		return false
	}
	stripped := strings.ReplaceAll(strings.ReplaceAll(keyword, "+", ""), "#", "")
	return isAlpha(stripped)
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z') {
			return false
		}
	}
	return true
}
