package desktop

import (
	"fmt"

	"github.com/geminidesk/gemini-desktop/internal/menu"
	wmenu "github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
)

// RenderMenu converts the menu tree into a Wails application menu for goos.
// On darwin, branches that match a standard macOS menu are rendered through
// the native Wails role so AppKit performs the items itself (Services, Hide
// Others, responder-chain editing, the About panel from mac.AboutInfo).
// Elsewhere each item is rendered as a text item bound to acts; items with no
// runtime call there (Services, Hide Others) are shown disabled.
func RenderMenu(m *menu.Menu, acts Actions, goos string) (*wmenu.Menu, error) {
	root := wmenu.NewMenu()
	for _, sub := range m.Submenus() {
		if goos == "darwin" {
			if native, ok := nativeRole(sub); ok {
				root.Append(native())
				continue
			}
		}
		rendered := wmenu.NewMenu()
		for i, it := range sub.Items() {
			item, err := renderItem(it, sub.Title(), acts)
			if err != nil {
				return nil, fmt.Errorf("render %q item %d: %w", sub.Title(), i, err)
			}
			rendered.Append(item)
		}
		entry := wmenu.SubMenu(sub.Title(), rendered)
		entry.Disabled = !sub.Enabled()
		root.Append(entry)
	}
	return root, nil
}

// MacAbout is the content of the native About panel behind the darwin app menu
// role, taken from the tree's About item.
func MacAbout(m *menu.Menu) *mac.AboutInfo {
	md := menu.AboutMetadata{}
	if it, appName, ok := m.Find(menu.KindAbout); ok {
		md.Name = appName
		if about := it.About(); about != nil {
			md = *about
		}
	}
	return &mac.AboutInfo{Title: md.Name, Message: aboutMessage(md)}
}

var nativeRoles = []struct {
	item  func() *wmenu.MenuItem
	kinds []menu.Kind
}{
	{wmenu.AppMenu, []menu.Kind{
		menu.KindAbout, menu.KindSeparator, menu.KindServices, menu.KindSeparator,
		menu.KindHide, menu.KindHideOthers, menu.KindShowAll, menu.KindSeparator, menu.KindQuit,
	}},
	{wmenu.EditMenu, []menu.Kind{
		menu.KindUndo, menu.KindRedo, menu.KindSeparator,
		menu.KindCut, menu.KindCopy, menu.KindPaste, menu.KindSelectAll,
	}},
	{wmenu.WindowMenu, []menu.Kind{menu.KindMinimize}},
}

// nativeRole returns the constructor of the macOS role menu whose standard
// items are exactly sub's.
func nativeRole(sub menu.Submenu) (func() *wmenu.MenuItem, bool) {
	items := sub.Items()
	for _, nr := range nativeRoles {
		if len(nr.kinds) != len(items) {
			continue
		}
		match := true
		for i, k := range nr.kinds {
			if items[i].Kind() != k {
				match = false
				break
			}
		}
		if match {
			return nr.item, true
		}
	}
	return nil, false
}

func renderItem(it menu.Item, appName string, acts Actions) (*wmenu.MenuItem, error) {
	switch it.Kind() {
	case menu.KindSeparator:
		return wmenu.Separator(), nil
	case menu.KindAbout:
		md := menu.AboutMetadata{Name: appName}
		if about := it.About(); about != nil {
			md = *about
		}
		return wmenu.Text("About "+md.Name, nil, func(*wmenu.CallbackData) { acts.About(md) }), nil
	case menu.KindServices:
		return disabled(wmenu.Text("Services", nil, nil)), nil
	case menu.KindHide:
		return wmenu.Text("Hide "+appName, keys.CmdOrCtrl("h"), func(*wmenu.CallbackData) { acts.HideApp() }), nil
	case menu.KindHideOthers:
		return disabled(wmenu.Text("Hide Others", keys.Combo("h", keys.CmdOrCtrlKey, keys.OptionOrAltKey), nil)), nil
	case menu.KindShowAll:
		return wmenu.Text("Show All", nil, func(*wmenu.CallbackData) { acts.ShowAll() }), nil
	case menu.KindQuit:
		return wmenu.Text("Quit "+appName, keys.CmdOrCtrl("q"), func(*wmenu.CallbackData) { acts.Quit() }), nil
	case menu.KindCloseWindow:
		return wmenu.Text("Close Window", keys.CmdOrCtrl("w"), func(*wmenu.CallbackData) { acts.CloseWindow() }), nil
	case menu.KindUndo:
		return editItem("Undo", EditUndo, acts), nil
	case menu.KindRedo:
		return editItem("Redo", EditRedo, acts), nil
	case menu.KindCut:
		return editItem("Cut", EditCut, acts), nil
	case menu.KindCopy:
		return editItem("Copy", EditCopy, acts), nil
	case menu.KindPaste:
		return editItem("Paste", EditPaste, acts), nil
	case menu.KindSelectAll:
		return editItem("Select All", EditSelectAll, acts), nil
	case menu.KindMinimize:
		return wmenu.Text("Minimize", keys.CmdOrCtrl("m"), func(*wmenu.CallbackData) { acts.Minimize() }), nil
	default:
		return nil, fmt.Errorf("%w: %s", menu.ErrUnknownKind, it.Kind())
	}
}

// editItem carries no accelerator: the webview handles Ctrl+C/V/X/Z/A itself,
// and a menu shortcut would swallow the keystroke before the page sees it.
func editItem(label string, cmd EditCommand, acts Actions) *wmenu.MenuItem {
	return wmenu.Text(label, nil, func(*wmenu.CallbackData) { acts.Edit(cmd) })
}

func disabled(item *wmenu.MenuItem) *wmenu.MenuItem {
	item.Disabled = true
	return item
}
