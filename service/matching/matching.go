package matching

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"multirex.GO/service/stats"
)

// Synonyms maps canonical brand and fuel terms to the short forms that
// show up in engine descriptions and free-text searches.
var Synonyms = map[string][]string{
	"RENAULT":     {"REN", "RENO", "R"},
	"PEUGEOT":     {"PEU", "PSA", "P"},
	"CITROEN":     {"CIT", "CITRO", "C"},
	"VOLKSWAGEN":  {"VW", "VOLKS"},
	"MERCEDES":    {"MERC", "MB", "MERCEDES-BENZ"},
	"BMW":         {"BM"},
	"AUDI":        {"AUD"},
	"FORD":        {"F"},
	"OPEL":        {"OP"},
	"FIAT":        {"FIA"},
	"DIESEL":      {"GASOIL", "GAZOLE", "HDI", "DCI", "TDI", "CDI", "TDCI", "D"},
	"ESSENCE":     {"ESS", "E", "TSI", "TFSI", "TCE"},
	"ELECTRIQUE":  {"ELEC", "EV", "ELECTRIC"},
	"HYBRIDE":     {"HYB", "HYBRID"},
	"TURBO":       {"T", "TURB"},
	"INJECTION":   {"INJ", "I"},
	"COMMON RAIL": {"CR", "COMMONRAIL"},
	"BOITE":       {"BV", "BA", "GEARBOX"},
	"AUTOMATIQUE": {"AUTO", "AT", "BVA"},
	"MANUELLE":    {"MAN", "MT", "BVM"},
}

var (
	spaceRe       = regexp.MustCompile(`\s+`)
	accentRemover = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Normalize uppercases text, strips accents, turns separators into
// spaces and collapses runs of whitespace.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	if stripped, _, err := transform.String(accentRemover, text); err == nil {
		text = stripped
	}
	text = strings.ToUpper(strings.TrimSpace(text))
	replacer := strings.NewReplacer("-", " ", "_", " ", ".", " ")
	text = replacer.Replace(text)
	return spaceRe.ReplaceAllString(text, " ")
}

// SearchVariants expands a search term with its synonym substitutions,
// in both directions (short form to canonical and back).
func SearchVariants(text string) []string {
	if text == "" {
		return nil
	}
	norm := Normalize(text)
	seen := map[string]bool{norm: true}
	variants := []string{norm}

	add := func(v string) {
		if !seen[v] {
			seen[v] = true
			variants = append(variants, v)
		}
	}
	for key, values := range Synonyms {
		for _, value := range values {
			if strings.Contains(norm, value) {
				add(strings.ReplaceAll(norm, value, key))
			}
		}
		if strings.Contains(norm, key) {
			for _, value := range values {
				add(strings.ReplaceAll(norm, key, value))
			}
		}
	}
	return variants
}

// Match pairs an engine need with its relevance score.
type Match struct {
	Need  stats.EngineNeed
	Score int
}

// scoreNeed weighs a need against the search term. Exact substring of
// the engine code dominates, then full-phrase and variant matches,
// then shared words of two characters or more.
func scoreNeed(searchNorm string, variants []string, need stats.EngineNeed) int {
	score := 0
	motorNorm := Normalize(strings.Join([]string{
		need.EngineCode, need.Brand, need.Energy, need.TypeYear,
	}, " "))

	if strings.Contains(motorNorm, searchNorm) {
		score += 100
	}
	for _, variant := range variants {
		if variant != "" && strings.Contains(motorNorm, variant) {
			score += 50
		}
	}

	motorWords := strings.Fields(motorNorm)
	for _, sword := range strings.Fields(searchNorm) {
		if len(sword) < 2 {
			continue
		}
		for _, mword := range motorWords {
			if strings.Contains(mword, sword) || strings.Contains(sword, mword) {
				score += 10
			}
		}
	}

	if strings.Contains(strings.ToUpper(need.EngineCode), searchNorm) {
		score += 200
	}
	return score
}

// SmartMatch filters needs down to those matching the search term,
// best matches first. An empty search returns the needs unchanged.
func SmartMatch(search string, needs []stats.EngineNeed) []stats.EngineNeed {
	if search == "" || len(needs) == 0 {
		return needs
	}
	searchNorm := Normalize(search)
	variants := SearchVariants(search)

	var matches []Match
	for _, need := range needs {
		if score := scoreNeed(searchNorm, variants, need); score > 0 {
			matches = append(matches, Match{Need: need, Score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	out := make([]stats.EngineNeed, len(matches))
	for i, m := range matches {
		out[i] = m.Need
	}
	return out
}

// SuggestDescription builds a short human-readable engine description
// from a need row, for prefilling breaker offer forms.
func SuggestDescription(need stats.EngineNeed) string {
	var parts []string
	if need.Brand != "" {
		parts = append(parts, need.Brand)
	}
	if need.Energy != "" {
		energy := strings.ToUpper(need.Energy)
		switch {
		case strings.Contains(energy, "DIESEL"), strings.Contains(energy, "DCI"), strings.Contains(energy, "HDI"):
			parts = append(parts, "Diesel")
		case strings.Contains(energy, "ESSENCE"), strings.Contains(energy, "TSI"), strings.Contains(energy, "TCE"):
			parts = append(parts, "Essence")
		}
	}
	if need.TypeYear != "" {
		parts = append(parts, need.TypeYear)
	}
	if len(parts) == 0 {
		return need.EngineCode
	}
	return strings.Join(parts, " ")
}
