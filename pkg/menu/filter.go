package menu

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Selectable returns the items a user can pick, in order.
func Selectable(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.IsSelectable() {
			out = append(out, it)
		}
	}
	return out
}

// Filter returns the items matching query. A header is kept when it or
// any of its children match, and a matching header keeps its whole group.
// Dividers are dropped while a query is active. Keys are never changed.
func Filter(items []Item, query string) []Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return cloneItems(items)
	}

	matched := matchIndexes(items, trimmed)
	if len(matched) == 0 {
		return []Item{}
	}

	// group[i] is the index of the header owning item i, or -1.
	group := make([]int, len(items))
	current := -1
	for i, it := range items {
		switch it.Role {
		case RoleHeader:
			current = i
			group[i] = i
		case RoleChild:
			group[i] = current
		default:
			current = -1
			group[i] = -1
		}
	}

	keep := make([]bool, len(items))
	for i := range matched {
		switch items[i].Role {
		case RoleDivider:
			continue
		case RoleChild:
			if group[i] >= 0 {
				keep[group[i]] = true
			}
		case RoleHeader:
			for j := i + 1; j < len(items) && group[j] == i; j++ {
				keep[j] = true
			}
		}
		keep[i] = true
	}

	filtered := make([]Item, 0, len(items))
	for i, it := range items {
		if keep[i] {
			filtered = append(filtered, it)
		}
	}
	return filtered
}

// matchIndexes ranks item labels against query with fuzzy matching and
// falls back to case-insensitive substring matching on labels and icon names.
func matchIndexes(items []Item, query string) map[int]struct{} {
	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = it.Text
	}

	matches := make(map[int]struct{})
	for _, rank := range fuzzy.RankFindNormalizedFold(query, labels) {
		if items[rank.OriginalIndex].Role != RoleDivider {
			matches[rank.OriginalIndex] = struct{}{}
		}
	}
	if len(matches) > 0 {
		return matches
	}

	lower := strings.ToLower(query)
	for i, it := range items {
		if it.Role == RoleDivider {
			continue
		}
		if strings.Contains(strings.ToLower(it.Text), lower) || strings.Contains(strings.ToLower(it.IconName), lower) {
			matches[i] = struct{}{}
		}
	}
	return matches
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
