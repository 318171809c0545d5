package tabular

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
)

// CatalogEntry describes one canonical survey question. A column matches by
// exact label, by regex pattern, or as a last resort by stemmed keywords
// (every keyword stem must appear in the column text). Pattern matching is
// the tolerant default: it survives minor rewording of the question.
type CatalogEntry struct {
	Outcome  int
	Label    string
	Pattern  *regexp.Regexp
	Keywords []string
}

// OutcomeCatalog is the fixed catalog of indirect-assessment survey
// questions, one per Program Learning Outcome.
var OutcomeCatalog = []CatalogEntry{
	{
		Outcome:  1,
		Label:    "I am confident to apply engineering knowledge in the field",
		Pattern:  regexp.MustCompile(`(?i)confident.*apply engineering knowledge`),
		Keywords: []string{"apply", "engineering", "knowledge"},
	},
	{
		Outcome:  2,
		Label:    "I am able to identify and analyze the engineering problems",
		Pattern:  regexp.MustCompile(`(?i)able.*identify.*analyze.*engineering problems`),
		Keywords: []string{"identify", "analyze", "problems"},
	},
	{
		Outcome:  3,
		Label:    "I am equipped with skills of designing and developing the solutions for socio-cultural and environmental needs.",
		Pattern:  regexp.MustCompile(`(?i)equipped.*skills.*designing.*solutions.*socio-cultural`),
		Keywords: []string{"designing", "solutions", "environmental"},
	},
	{
		Outcome:  4,
		Label:    "I can investigate experimental data to derive valid conclusions",
		Pattern:  regexp.MustCompile(`(?i)investigate.*experimental data.*derive.*conclusions`),
		Keywords: []string{"investigate", "experimental", "conclusions"},
	},
	{
		Outcome:  5,
		Label:    "I have the ability to create, select and apply modern tools to cater the complex engineering problems",
		Pattern:  regexp.MustCompile(`(?i)ability.*create.*select.*apply.*modern tools`),
		Keywords: []string{"modern", "tools", "complex"},
	},
	{
		Outcome:  6,
		Label:    "I am able to take relevant responsibilities into professional engineering practices",
		Pattern:  regexp.MustCompile(`(?i)able.*take.*responsibilities.*professional engineering practices`),
		Keywords: []string{"responsibilities", "professional", "practices"},
	},
	{
		Outcome:  7,
		Label:    "I understand the impact of engineering practices in societal and environmental contexts and able to provide sustainable solutions",
		Pattern:  regexp.MustCompile(`(?i)impact.*engineering practices.*societal.*environmental.*sustainable solutions`),
		Keywords: []string{"impact", "societal", "sustainable"},
	},
	{
		Outcome:  8,
		Label:    "I feel confident to practice ethical principles and commit to professional ethics, responsibilities and norms of engineering practices.",
		Pattern:  regexp.MustCompile(`(?i)practice ethical principles.*professional ethics.*responsibilities`),
		Keywords: []string{"ethical", "principles", "norms"},
	},
	{
		Outcome:  9,
		Label:    "I am confident in my ability to perform any project by being connected with people in my team and lead them individually",
		Pattern:  regexp.MustCompile(`(?i)perform any project.*connected with people.*team.*lead them`),
		Keywords: []string{"project", "team", "lead"},
	},
	{
		Outcome:  10,
		Label:    "I can communicate effectively with the clients, colleagues, and other members of an interprofessional team",
		Pattern:  regexp.MustCompile(`(?i)communicate effectively.*clients.*colleagues.*interprofessional team`),
		Keywords: []string{"communicate", "clients", "colleagues"},
	},
	{
		Outcome:  11,
		Label:    "I am capable to manage projects in multidisciplinary fields",
		Pattern:  regexp.MustCompile(`(?i)capable.*manage projects.*multidisciplinary fields`),
		Keywords: []string{"manage", "projects", "multidisciplinary"},
	},
	{
		Outcome:  12,
		Label:    "I have the ability to recognize the importance of, and pursue lifelong learning in the broader context of innovation and technological developments",
		Pattern:  regexp.MustCompile(`(?i)recognize.*importance.*pursue lifelong learning.*innovation.*technological developments`),
		Keywords: []string{"lifelong", "learning", "innovation"},
	},
}

// MatchQuestionColumns resolves each catalog entry to the first sheet column
// matching it: exact label, then regex pattern, then stemmed keywords.
// Entries matching no column are simply missing from the result; the
// corresponding outcome is reported with zero responses instead of failing
// the upload.
func MatchQuestionColumns(sheet *Sheet) map[int]string {
	columns := make(map[int]string, len(OutcomeCatalog))
	for _, entry := range OutcomeCatalog {
		if col, ok := matchEntry(sheet.Headers, entry); ok {
			columns[entry.Outcome] = col
		}
	}
	return columns
}

func matchEntry(headers []string, entry CatalogEntry) (string, bool) {
	for _, h := range headers {
		if h == entry.Label {
			return h, true
		}
	}
	for _, h := range headers {
		if entry.Pattern.MatchString(h) {
			return h, true
		}
	}
	for _, h := range headers {
		if keywordsMatch(h, entry.Keywords) {
			return h, true
		}
	}
	return "", false
}

// keywordsMatch reports whether every keyword stem appears among the stems
// of the header words.
func keywordsMatch(header string, keywords []string) bool {
	if len(keywords) == 0 {
		return false
	}
	stems := make(map[string]bool)
	for _, word := range splitWords(header) {
		stems[stemWord(word)] = true
	}
	for _, kw := range keywords {
		if !stems[stemWord(kw)] {
			return false
		}
	}
	return true
}

func splitWords(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func stemWord(word string) string {
	stemmed, err := snowball.Stem(word, "english", true)
	if err != nil {
		return strings.ToLower(word)
	}
	return stemmed
}
