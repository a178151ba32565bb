package trend

import (
	"regexp"
	"strconv"
	"strings"

	"trend_digest/internal/domain"
)

// ModelMention is a single model-name match found in free text.
type ModelMention struct {
	Family string
	Name   string // canonical display form, e.g. "Gpt-4o", "Claude-3.5-sonnet"
}

// modelPattern pairs a vendor family id with the naming-convention regex
// that recognizes its releases. The list is ordered; add new families at
// the end. Each pattern captures a version group and an optional suffix
// qualifier group.
type modelPattern struct {
	family string
	re     *regexp.Regexp
}

var defaultModelPatterns = []modelPattern{
	{"gpt", regexp.MustCompile(`(?i)\bgpt[ -]?(\d+(?:\.\d+)?)[ -]?(o\b|mini|nano|turbo|pro)?`)},
	{"claude", regexp.MustCompile(`(?i)\bclaude[ -]?(\d(?:\.\d)?)[ -]?(opus|sonnet|haiku)?`)},
	{"claude", regexp.MustCompile(`(?i)\bclaude[ -]?(?:(opus|sonnet|haiku)[ -]?)(\d(?:\.\d)?)`)},
	{"gemini", regexp.MustCompile(`(?i)\bgemini[ -]?(\d+(?:\.\d+)?)[ -]?(pro|flash|ultra|nano)?`)},
	{"llama", regexp.MustCompile(`(?i)\bllama[ -]?(\d+(?:\.\d+)?)[ -]?(\d+b|scout|maverick)?`)},
	{"grok", regexp.MustCompile(`(?i)\bgrok[ -]?(\d+(?:\.\d+)?)[ -]?(mini|fast)?`)},
	{"mistral", regexp.MustCompile(`(?i)\bmistral[ -]?(large|small|medium)[ -]?(\d+(?:\.\d+)?)?`)},
	{"deepseek", regexp.MustCompile(`(?i)\bdeepseek[ -]?(?:v|r)?(\d+(?:\.\d+)?)`)},
	{"qwen", regexp.MustCompile(`(?i)\bqwen[ -]?(\d+(?:\.\d+)?)[ -]?(max|plus|turbo)?`)},
}

// ExtractModelMentions scans text for model-name mentions using the
// vendor naming-convention patterns and returns every match in canonical
// form. The patterns are what let previously-unseen releases surface
// without a maintained allow-list.
func ExtractModelMentions(text string) []ModelMention {
	var mentions []ModelMention
	for _, p := range defaultModelPatterns {
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			// Not every pattern carries a qualifier group.
			suffix := ""
			if len(m) > 2 {
				suffix = m[2]
			}
			name := canonicalModelName(p.family, m[1], suffix)
			if name == "" {
				continue
			}
			mentions = append(mentions, ModelMention{Family: p.family, Name: name})
		}
	}
	return mentions
}

// canonicalModelName builds the display form: first segment capitalized,
// remaining segments lower-cased and joined with hyphens. A bare "o"
// qualifier attaches directly to the version ("Gpt-4o").
func canonicalModelName(family, version, suffix string) string {
	version = strings.ToLower(strings.TrimSpace(version))
	suffix = strings.ToLower(strings.TrimSpace(suffix))

	// The claude reversed-order pattern captures the qualifier first.
	if version != "" && (version[0] < '0' || version[0] > '9') {
		version, suffix = suffix, version
	}
	if version == "" {
		return ""
	}

	name := strings.ToUpper(family[:1]) + family[1:] + "-" + version
	switch {
	case suffix == "":
	case suffix == "o":
		name += "o"
	default:
		name += "-" + suffix
	}
	return name
}

// modelGeneration reports the major generation number of a canonical
// model name and whether it is a refreshed sub-variant of that
// generation (a point release like "-4.5" or an "o"-suffixed refresh).
func modelGeneration(name string) (major int, refreshed bool, ok bool) {
	i := strings.IndexFunc(name, func(r rune) bool { return r >= '0' && r <= '9' })
	if i < 0 {
		return 0, false, false
	}
	j := i
	for j < len(name) && name[j] >= '0' && name[j] <= '9' {
		j++
	}
	major, err := strconv.Atoi(name[i:j])
	if err != nil {
		return 0, false, false
	}
	if j < len(name) && (name[j] == '.' || name[j] == 'o') {
		refreshed = true
	}
	return major, refreshed, true
}

// filterSupersededModels drops older-generation names from each family
// once a newer major generation is present in the same set. The
// immediate predecessor survives only as a refreshed sub-variant, since
// that variant may still be the production default; anything more than
// one generation behind is dropped outright.
//
// The generation comparison is a best-effort heuristic tuned to the
// vendor schemes in defaultModelPatterns; it assumes a leading major
// version number and may not hold for naming schemes that break that
// convention.
func filterSupersededModels(counts map[string]int, families map[string]string) map[string]int {
	latest := make(map[string]int)
	for name := range counts {
		major, _, ok := modelGeneration(name)
		if !ok {
			continue
		}
		if fam := families[name]; major > latest[fam] {
			latest[fam] = major
		}
	}

	filtered := make(map[string]int, len(counts))
	for name, count := range counts {
		major, refreshed, ok := modelGeneration(name)
		if !ok {
			filtered[name] = count
			continue
		}
		newest := latest[families[name]]
		switch {
		case major >= newest:
			filtered[name] = count
		case major == newest-1 && refreshed:
			filtered[name] = count
		}
	}
	return filtered
}

// extractModelCounts accumulates mention counts per canonical model name
// across an event set. Every match counts, including repeats within one
// event.
func extractModelCounts(events []domain.Event) (counts map[string]int, families map[string]string) {
	counts = make(map[string]int)
	families = make(map[string]string)
	for _, ev := range events {
		for _, m := range ExtractModelMentions(ev.Title + " " + ev.Content) {
			counts[m.Name]++
			families[m.Name] = m.Family
		}
	}
	return counts, families
}
