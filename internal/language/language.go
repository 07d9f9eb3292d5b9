package language

import "strings"

type entry struct {
	code3   string // ISO 639-2 primary (3-letter, what ffprobe reports)
	alt3    string // ISO 639-2 alternate (e.g. "fre" vs "fra")
	display string // Human-readable name
}

var languages = []entry{
	{"eng", "", "English"},
	{"spa", "", "Spanish"},
	{"fra", "fre", "French"},
	{"deu", "ger", "German"},
	{"ita", "", "Italian"},
	{"por", "", "Portuguese"},
	{"jpn", "", "Japanese"},
	{"kor", "", "Korean"},
	{"zho", "chi", "Chinese"},
	{"rus", "", "Russian"},
	{"ara", "", "Arabic"},
	{"hin", "", "Hindi"},
	{"nld", "dut", "Dutch"},
	{"pol", "", "Polish"},
	{"swe", "", "Swedish"},
	{"dan", "", "Danish"},
	{"nor", "", "Norwegian"},
	{"fin", "", "Finnish"},
	{"tur", "", "Turkish"},
	{"tha", "", "Thai"},
	{"vie", "", "Vietnamese"},
	{"ces", "cze", "Czech"},
	{"ell", "gre", "Greek"},
	{"heb", "", "Hebrew"},
	{"hun", "", "Hungarian"},
	{"ind", "", "Indonesian"},
	{"ukr", "", "Ukrainian"},
}

var byCode3 map[string]*entry

func init() {
	byCode3 = make(map[string]*entry, len(languages)*2)
	for i := range languages {
		e := &languages[i]
		byCode3[e.code3] = e
		if e.alt3 != "" {
			byCode3[e.alt3] = e
		}
	}
}

// DisplayName returns a human-readable language name for any recognized
// ISO 639-2 code. Returns "Unknown" for empty or undetermined input, or the
// uppercased code for unrecognized input.
func DisplayName(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" || code == "und" {
		return "Unknown"
	}
	if e, ok := byCode3[code]; ok {
		return e.display
	}
	return strings.ToUpper(code)
}

// ExtractFromTags extracts the language code from stream metadata tags.
// Checks common tag keys: language, LANGUAGE, Language, language_ietf, lang, LANG.
func ExtractFromTags(tags map[string]string) string {
	if len(tags) == 0 {
		return ""
	}
	keys := []string{"language", "LANGUAGE", "Language", "language_ietf", "lang", "LANG"}
	for _, key := range keys {
		if value, ok := tags[key]; ok {
			value = strings.TrimSpace(strings.ReplaceAll(value, "\x00", ""))
			if value != "" {
				return strings.ToLower(value)
			}
		}
	}
	return ""
}
