package menu

import "strconv"

// SelectionPolicy is the floor convention used when clamping a 1-based selection.
type SelectionPolicy int

const (
	// AllowNone clamps into [0, count]; 0 means nothing is selected.
	AllowNone SelectionPolicy = iota
	// RequireOne clamps into [1, count]; 0 is returned only for an empty list.
	RequireOne
)

// String returns the policy name.
func (p SelectionPolicy) String() string {
	if p == RequireOne {
		return "require-one"
	}
	return "allow-none"
}

// ClampSelection clamps a 1-based selection index into the range the policy allows.
func ClampSelection(index, count int, policy SelectionPolicy) int {
	if count <= 0 {
		return 0
	}
	floor := 0
	if policy == RequireOne {
		floor = 1
	}
	if index < floor {
		return floor
	}
	if index > count {
		return count
	}
	return index
}

// ItemAt resolves a 1-based selection to the item whose key equals it.
func ItemAt(items []Item, index int) (Item, bool) {
	key := strconv.Itoa(index)
	for _, it := range items {
		if it.Key == key {
			return it, true
		}
	}
	return Item{}, false
}

// WithFallback returns items, or a single plain item labelled label when items is empty.
func WithFallback(items []Item, label string) []Item {
	if len(items) > 0 {
		return items
	}
	return []Item{{
		Key:      "1",
		Position: 1,
		Text:     label,
		Role:     RolePlain,
	}}
}
