package dictionary

import (
	"codeberg.org/snonux/lugha/internal/language"
	"codeberg.org/snonux/lugha/internal/normalize"
)

// Fallback is a small built-in dictionary of common words, consulted when the
// CSV table has no match. It guarantees a baseline vocabulary even when the
// CSV file is missing or incomplete. Exact, normalized-key lookups only.
type Fallback struct {
	words map[language.Language]map[string]string
}

// Lookup returns the fallback translation of word for target, if any.
func (f *Fallback) Lookup(word string, target language.Language) (string, bool) {
	table, ok := f.words[target]
	if !ok {
		return "", false
	}
	translation, ok := table[normalize.Word(word)]
	return translation, ok
}

// DefaultFallback returns the built-in fallback dictionary.
func DefaultFallback() *Fallback {
	return &Fallback{words: map[language.Language]map[string]string{
		language.Swahili: {
			"hello":     "hujambo",
			"goodbye":   "kwaheri",
			"thank you": "asante",
			"please":    "tafadhali",
			"yes":       "ndiyo",
			"no":        "hapana",
			"water":     "maji",
			"food":      "chakula",
			"house":     "nyumba",
			"family":    "familia",
			"friend":    "rafiki",
			"love":      "upendo",
			"peace":     "amani",
			"school":    "shule",
			"book":      "kitabu",
			"teacher":   "mwalimu",
			"student":   "mwanafunzi",
			"mother":    "mama",
			"father":    "baba",
			"child":     "mtoto",
			"good":      "nzuri",
			"bad":       "mbaya",
			"big":       "kubwa",
			"small":     "ndogo",
		},
		language.Haya: {
			"hello":     "oriire ota",
			"water":     "amizi",
			"food":      "ebyakula",
			"house":     "enju",
			"thank you": "waakera",
			"good":      "kirungi",
			"man":       "mushaija",
			"woman":     "mukazi",
			"child":     "mwana",
			"book":      "ekitabu",
			"school":    "umosomelo",
			"sleep":     "okunyama",
			"eat":       "okulya",
			"walk":      "iruka",
			"morning":   "bwakya",
			"one":       "emo",
			"two":       "ibili",
			"three":     "ishatu",
			"four":      "ina",
			"five":      "itanu",
		},
		language.Sukuma: {
			"hello":    "mwangaluka",
			"world":    "welelo",
			"food":     "shilewa",
			"water":    "minze",
			"house":    "numba",
			"school":   "shule",
			"friend":   "nsumba",
			"man":      "ngosha",
			"woman":    "nkima",
			"child":    "mwana",
			"tomorrow": "ntondo",
			"home":     "mukaya",
			"yes":      "geko",
			"salt":     "munhu",
			"shop":     "iduka",
			"milk":     "mabwhela",
			"talk":     "goyomba",
			"one":      "emo",
			"buy":      "gula",
			"sell":     "guzu",
		},
	}}
}
