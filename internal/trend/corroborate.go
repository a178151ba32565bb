package trend

import (
	"sort"
	"strings"

	"trend_digest/internal/domain"
)

// minCorroborationMentions is the total-mention floor below which
// cross-source agreement is too thin to count as corroboration.
const minCorroborationMentions = 3

// DetectMultiSourceMentions reports whether keyword appears across at
// least minSources distinct sources in the event set, with enough total
// mentions to matter. It returns nil otherwise; corroboration is a
// validation pass over already-detected trends, never a filter on them.
func DetectMultiSourceMentions(events []domain.Event, keyword string, minSources int) *domain.CorroborationResult {
	kw := strings.ToLower(keyword)
	if kw == "" {
		return nil
	}

	sources := make(map[string]struct{})
	count := 0
	for _, ev := range events {
		if strings.Contains(eventText(ev), kw) {
			sources[ev.Source] = struct{}{}
			count++
		}
	}

	if len(sources) < minSources || count < minCorroborationMentions {
		return nil
	}

	names := make([]string, 0, len(sources))
	for s := range sources {
		names = append(names, s)
	}
	sort.Strings(names)

	return &domain.CorroborationResult{
		Keyword: keyword,
		Sources: names,
		Count:   count,
	}
}
