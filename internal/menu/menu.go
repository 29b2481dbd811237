// Package menu models the application's native menu bar as a platform-neutral tree
// of predefined items. The tree is rendered into the host toolkit by internal/desktop.
package menu

import "fmt"

// Kind identifies a predefined, platform-semantic menu item.
type Kind int

const (
	KindSeparator Kind = iota + 1
	KindAbout
	KindServices
	KindHide
	KindHideOthers
	KindShowAll
	KindQuit
	KindCloseWindow
	KindUndo
	KindRedo
	KindCut
	KindCopy
	KindPaste
	KindSelectAll
	KindMinimize
)

var kindNames = map[Kind]string{
	KindSeparator:   "separator",
	KindAbout:       "about",
	KindServices:    "services",
	KindHide:        "hide",
	KindHideOthers:  "hide_others",
	KindShowAll:     "show_all",
	KindQuit:        "quit",
	KindCloseWindow: "close_window",
	KindUndo:        "undo",
	KindRedo:        "redo",
	KindCut:         "cut",
	KindCopy:        "copy",
	KindPaste:       "paste",
	KindSelectAll:   "select_all",
	KindMinimize:    "minimize",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Valid reports whether k is one of the predefined kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// AboutMetadata configures the About item. Empty fields mean "platform default".
type AboutMetadata struct {
	Name      string
	Version   string
	Copyright string
	Website   string
	Comments  string
}

// Item is a leaf of the menu tree.
type Item struct {
	kind  Kind
	about *AboutMetadata
}

// Kind is the predefined action the item performs.
func (i Item) Kind() Kind { return i.kind }

// About returns a copy of the About metadata, or nil for every other kind.
func (i Item) About() *AboutMetadata {
	if i.about == nil {
		return nil
	}
	md := *i.about
	return &md
}

func (i Item) IsSeparator() bool { return i.kind == KindSeparator }

// Submenu is a titled, ordered group of items.
type Submenu struct {
	title   string
	enabled bool
	items   []Item
}

// Title is the label shown in the menu bar.
func (s Submenu) Title() string { return s.title }

// Enabled reports whether the submenu can be opened.
func (s Submenu) Enabled() bool { return s.enabled }

// Len counts the items, separators included.
func (s Submenu) Len() int { return len(s.items) }

// Items returns a copy of the submenu's items in display order.
func (s Submenu) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Menu is the root of the tree. It is immutable once built.
type Menu struct {
	submenus []Submenu
}

// Submenus returns a copy of the top-level entries in display order.
func (m *Menu) Submenus() []Submenu {
	out := make([]Submenu, len(m.submenus))
	copy(out, m.submenus)
	return out
}

// Find returns the first item of the given kind together with its submenu title.
func (m *Menu) Find(kind Kind) (Item, string, bool) {
	for _, sub := range m.submenus {
		for _, it := range sub.items {
			if it.kind == kind {
				return it, sub.title, true
			}
		}
	}
	return Item{}, "", false
}
