// Package menu builds flat and grouped item models from line markup.
package menu

// Role is the neutral classification of a built item.
type Role string

const (
	RolePlain   Role = "plain"
	RoleChild   Role = "child"
	RoleHeader  Role = "header"
	RoleDivider Role = "divider"
)

// Audience selects which toolkit enumeration item types are drawn from.
type Audience int

const (
	AudienceOptions     Audience = iota // selectable option menus (dropdowns, choice lists)
	AudienceContextMenu                 // contextual menus
)

// AudienceFor maps the builder's contextMenu flag to an Audience.
func AudienceFor(contextMenu bool) Audience {
	if contextMenu {
		return AudienceContextMenu
	}
	return AudienceOptions
}

// String returns the audience name.
func (a Audience) String() string {
	if a == AudienceContextMenu {
		return "context"
	}
	return "options"
}

// ItemType names a member of a toolkit menu item enumeration.
// The zero value means "no special type".
type ItemType string

const (
	ContextualMenuNormal  ItemType = "ContextualMenuItemType.Normal"
	ContextualMenuDivider ItemType = "ContextualMenuItemType.Divider"
	ContextualMenuHeader  ItemType = "ContextualMenuItemType.Header"
	ContextualMenuSection ItemType = "ContextualMenuItemType.Section"

	SelectableOptionNormal    ItemType = "SelectableOptionMenuItemType.Normal"
	SelectableOptionDivider   ItemType = "SelectableOptionMenuItemType.Divider"
	SelectableOptionHeader    ItemType = "SelectableOptionMenuItemType.Header"
	SelectableOptionSelectAll ItemType = "SelectableOptionMenuItemType.SelectAll"
)

// itemTypeOrdinals holds the numeric enum value of every known member.
var itemTypeOrdinals = map[ItemType]int{
	ContextualMenuNormal:  0,
	ContextualMenuDivider: 1,
	ContextualMenuHeader:  2,
	ContextualMenuSection: 3,

	SelectableOptionNormal:    0,
	SelectableOptionDivider:   1,
	SelectableOptionHeader:    2,
	SelectableOptionSelectAll: 3,
}

// Ordinal returns the numeric enum value. Unknown and empty types are Normal (0).
func (t ItemType) Ordinal() int {
	return itemTypeOrdinals[t]
}

// itemTypeTable maps audience and role to an item type.
// Plain and child roles are absent: they carry no special type.
var itemTypeTable = map[Audience]map[Role]ItemType{
	AudienceContextMenu: {
		RoleHeader:  ContextualMenuHeader,
		RoleDivider: ContextualMenuDivider,
	},
	AudienceOptions: {
		RoleHeader:  SelectableOptionHeader,
		RoleDivider: SelectableOptionDivider,
	},
}

// ResolveItemType looks up the item type for a role and audience.
func ResolveItemType(role Role, audience Audience) ItemType {
	return itemTypeTable[audience][role]
}

// Item is one entry of a built menu or list.
type Item struct {
	Key      string   `json:"key" yaml:"key"`
	Position int      `json:"position" yaml:"position"` // 1-based line ordinal
	Text     string   `json:"text,omitempty" yaml:"text,omitempty"`
	IconName string   `json:"iconName,omitempty" yaml:"iconName,omitempty"`
	Role     Role     `json:"role" yaml:"role"`
	ItemType ItemType `json:"itemType,omitempty" yaml:"itemType,omitempty"`
}

// IsSelectable reports whether a user can pick the item.
func (it Item) IsSelectable() bool {
	return it.Role == RolePlain || it.Role == RoleChild
}
