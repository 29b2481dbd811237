package menu

import (
	"errors"
	"fmt"
	"strings"
)

// Factory constructs the pieces of the tree. Each call may fail; Build stops at the
// first failure.
type Factory interface {
	Item(kind Kind, about *AboutMetadata) (Item, error)
	Submenu(title string, enabled bool, items []Item) (Submenu, error)
	Append(root *Menu, sub Submenu) error
}

var (
	ErrUnknownKind  = errors.New("unknown menu item kind")
	ErrEmptyTitle   = errors.New("submenu title is empty")
	ErrUnexpectedMD = errors.New("about metadata on non-about item")
	ErrEmptySubmenu = errors.New("submenu has no items")
)

// Standard is the default Factory. It validates its inputs the way a native toolkit
// would reject malformed items.
type Standard struct{}

// Item rejects unknown kinds and About metadata on any other kind. The metadata
// is copied.
func (Standard) Item(kind Kind, about *AboutMetadata) (Item, error) {
	if !kind.Valid() {
		return Item{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	if about != nil && kind != KindAbout {
		return Item{}, fmt.Errorf("%w: %s", ErrUnexpectedMD, kind)
	}
	it := Item{kind: kind}
	if about != nil {
		md := *about
		it.about = &md
	}
	return it, nil
}

// Submenu rejects a blank title or an empty item list.
func (Standard) Submenu(title string, enabled bool, items []Item) (Submenu, error) {
	if strings.TrimSpace(title) == "" {
		return Submenu{}, ErrEmptyTitle
	}
	if len(items) == 0 {
		return Submenu{}, fmt.Errorf("%w: %q", ErrEmptySubmenu, title)
	}
	out := make([]Item, len(items))
	copy(out, items)
	return Submenu{title: title, enabled: enabled, items: out}, nil
}

// Append adds sub after the existing submenus. Titles need not be unique.
func (Standard) Append(root *Menu, sub Submenu) error {
	root.submenus = append(root.submenus, sub)
	return nil
}

// builder threads the first error through a sequence of factory calls so the
// construction below reads as a flat list.
type builder struct {
	f   Factory
	err error
}

func (b *builder) item(kind Kind, about *AboutMetadata) Item {
	if b.err != nil {
		return Item{}
	}
	it, err := b.f.Item(kind, about)
	if err != nil {
		b.err = fmt.Errorf("create %s item: %w", kind, err)
	}
	return it
}

func (b *builder) submenu(title string, items ...func() Item) Submenu {
	if b.err != nil {
		return Submenu{}
	}
	built := make([]Item, 0, len(items))
	for _, mk := range items {
		it := mk()
		if b.err != nil {
			return Submenu{}
		}
		built = append(built, it)
	}
	sub, err := b.f.Submenu(title, true, built)
	if err != nil {
		b.err = fmt.Errorf("create %q submenu: %w", title, err)
	}
	return sub
}

func (b *builder) append(root *Menu, sub Submenu) {
	if b.err != nil {
		return
	}
	if err := b.f.Append(root, sub); err != nil {
		b.err = fmt.Errorf("append %q submenu: %w", sub.title, err)
	}
}

func (b *builder) predefined(kind Kind) func() Item {
	return func() Item { return b.item(kind, nil) }
}

// Build constructs the Application, File, Edit and Window submenus in that order.
// On error no menu is returned.
func Build(f Factory, productName string) (*Menu, error) {
	b := &builder{f: f}
	sep := b.predefined(KindSeparator)

	app := b.submenu(productName,
		func() Item { return b.item(KindAbout, &AboutMetadata{Name: productName}) },
		sep,
		b.predefined(KindServices),
		sep,
		b.predefined(KindHide),
		b.predefined(KindHideOthers),
		b.predefined(KindShowAll),
		sep,
		b.predefined(KindQuit),
	)
	file := b.submenu("File",
		b.predefined(KindCloseWindow),
	)
	edit := b.submenu("Edit",
		b.predefined(KindUndo),
		b.predefined(KindRedo),
		sep,
		b.predefined(KindCut),
		b.predefined(KindCopy),
		b.predefined(KindPaste),
		b.predefined(KindSelectAll),
	)
	window := b.submenu("Window",
		b.predefined(KindMinimize),
	)

	root := &Menu{}
	for _, sub := range []Submenu{app, file, edit, window} {
		b.append(root, sub)
	}
	if b.err != nil {
		return nil, fmt.Errorf("build menu: %w", b.err)
	}
	return root, nil
}

// Default builds the menu with the Standard factory.
func Default(productName string) (*Menu, error) {
	return Build(Standard{}, productName)
}
