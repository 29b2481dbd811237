package desktop

import (
	"errors"
	"strings"
	"testing"

	"github.com/geminidesk/gemini-desktop/internal/menu"
	"github.com/geminidesk/gemini-desktop/internal/version"
	wmenu "github.com/wailsapp/wails/v2/pkg/menu"
)

type recordingActions struct {
	calls []string
	about menu.AboutMetadata
}

func (r *recordingActions) About(md menu.AboutMetadata) {
	r.about = md
	r.calls = append(r.calls, "about")
}
func (r *recordingActions) HideApp()             { r.calls = append(r.calls, "hide") }
func (r *recordingActions) ShowAll()             { r.calls = append(r.calls, "show_all") }
func (r *recordingActions) Quit()                { r.calls = append(r.calls, "quit") }
func (r *recordingActions) CloseWindow()         { r.calls = append(r.calls, "close_window") }
func (r *recordingActions) Edit(cmd EditCommand) { r.calls = append(r.calls, "edit:"+string(cmd)) }
func (r *recordingActions) Minimize()            { r.calls = append(r.calls, "minimize") }

func renderDefault(t *testing.T) (*wmenu.Menu, *recordingActions) {
	t.Helper()
	return renderFor(t, "linux")
}

func renderFor(t *testing.T, goos string) (*wmenu.Menu, *recordingActions) {
	t.Helper()
	m, err := menu.Default("Google Gemini")
	if err != nil {
		t.Fatal(err)
	}
	acts := &recordingActions{}
	out, err := RenderMenu(m, acts, goos)
	if err != nil {
		t.Fatalf("RenderMenu() error = %v", err)
	}
	return out, acts
}

func TestRenderMenuStructure(t *testing.T) {
	out, _ := renderDefault(t)

	want := []struct {
		title  string
		labels []string
	}{
		{"Google Gemini", []string{
			"About Google Gemini", "", "Services", "",
			"Hide Google Gemini", "Hide Others", "Show All", "", "Quit Google Gemini",
		}},
		{"File", []string{"Close Window"}},
		{"Edit", []string{"Undo", "Redo", "", "Cut", "Copy", "Paste", "Select All"}},
		{"Window", []string{"Minimize"}},
	}

	if len(out.Items) != len(want) {
		t.Fatalf("got %d top-level entries, want %d", len(out.Items), len(want))
	}
	for i, w := range want {
		top := out.Items[i]
		if top.Label != w.title || top.Type != wmenu.SubmenuType {
			t.Errorf("entry %d = %q (%s), want submenu %q", i, top.Label, top.Type, w.title)
			continue
		}
		items := top.SubMenu.Items
		if len(items) != len(w.labels) {
			t.Errorf("%q has %d items, want %d", w.title, len(items), len(w.labels))
			continue
		}
		for j, label := range w.labels {
			if label == "" {
				if items[j].Type != wmenu.SeparatorType {
					t.Errorf("%q item %d is %s, want separator", w.title, j, items[j].Type)
				}
				continue
			}
			if items[j].Label != label {
				t.Errorf("%q item %d label = %q, want %q", w.title, j, items[j].Label, label)
			}
		}
	}
}

func TestRenderMenuUnsupportedItemsDisabled(t *testing.T) {
	out, _ := renderDefault(t)
	for _, it := range out.Items[0].SubMenu.Items {
		wantDisabled := it.Label == "Services" || it.Label == "Hide Others"
		if it.Disabled != wantDisabled {
			t.Errorf("%q disabled = %v, want %v", it.Label, it.Disabled, wantDisabled)
		}
	}
}

func TestRenderMenuCallbacks(t *testing.T) {
	out, acts := renderDefault(t)

	click := func(top int, label string) {
		t.Helper()
		for _, it := range out.Items[top].SubMenu.Items {
			if it.Label == label {
				if it.Click == nil {
					t.Fatalf("%q has no click handler", label)
				}
				it.Click(&wmenu.CallbackData{MenuItem: it})
				return
			}
		}
		t.Fatalf("item %q not found", label)
	}

	click(0, "About Google Gemini")
	click(0, "Hide Google Gemini")
	click(0, "Show All")
	click(0, "Quit Google Gemini")
	click(1, "Close Window")
	click(2, "Undo")
	click(2, "Redo")
	click(2, "Cut")
	click(2, "Copy")
	click(2, "Paste")
	click(2, "Select All")
	click(3, "Minimize")

	want := "about hide show_all quit close_window edit:undo edit:redo edit:cut edit:copy edit:paste edit:selectAll minimize"
	if got := strings.Join(acts.calls, " "); got != want {
		t.Errorf("calls = %q\nwant    %q", got, want)
	}
	if acts.about.Name != "Google Gemini" {
		t.Errorf("about name = %q", acts.about.Name)
	}
}

func TestRenderMenuAccelerators(t *testing.T) {
	out, _ := renderDefault(t)
	for _, it := range out.Items[2].SubMenu.Items {
		if it.Accelerator != nil {
			t.Errorf("edit item %q binds %+v; the webview must receive editing keystrokes", it.Label, it.Accelerator)
		}
	}
	if q := out.Items[0].SubMenu.Items[8].Accelerator; q == nil || q.Key != "q" {
		t.Errorf("quit accelerator = %+v", q)
	}
	if w := out.Items[1].SubMenu.Items[0].Accelerator; w == nil || w.Key != "w" {
		t.Errorf("close window accelerator = %+v", w)
	}
}

func TestRenderMenuDarwinUsesNativeRoles(t *testing.T) {
	out, acts := renderFor(t, "darwin")
	if len(out.Items) != 4 {
		t.Fatalf("got %d top-level entries, want 4", len(out.Items))
	}

	wantRoles := map[int]wmenu.Role{0: wmenu.AppMenuRole, 2: wmenu.EditMenuRole, 3: wmenu.WindowMenuRole}
	for i, role := range wantRoles {
		if got := out.Items[i].Role; got != role {
			t.Errorf("entry %d role = %v, want %v", i, got, role)
		}
	}

	// File has no macOS role; Close Window stays bound to the close-request path.
	file := out.Items[1]
	if file.Role != 0 || file.Label != "File" || len(file.SubMenu.Items) != 1 {
		t.Fatalf("file entry = %+v", file)
	}
	file.SubMenu.Items[0].Click(&wmenu.CallbackData{MenuItem: file.SubMenu.Items[0]})
	if strings.Join(acts.calls, " ") != "close_window" {
		t.Errorf("calls = %v", acts.calls)
	}
}

func TestRenderMenuDarwinFallsBackForNonStandardBranch(t *testing.T) {
	m, err := menu.Build(unknownKindFactory{}, "Google Gemini")
	if err != nil {
		t.Fatal(err)
	}
	// The Window branch no longer matches the standard role, so it is rendered
	// item by item and the bad kind surfaces.
	if _, err := RenderMenu(m, &recordingActions{}, "darwin"); !errors.Is(err, menu.ErrUnknownKind) {
		t.Errorf("error = %v, want ErrUnknownKind", err)
	}
}

func TestRenderMenuUnknownKind(t *testing.T) {
	m, err := menu.Build(unknownKindFactory{}, "Google Gemini")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := RenderMenu(m, &recordingActions{}, "windows"); !errors.Is(err, menu.ErrUnknownKind) {
		t.Errorf("error = %v, want ErrUnknownKind", err)
	}
}

// unknownKindFactory turns every Minimize into an out-of-range kind.
type unknownKindFactory struct{ menu.Standard }

func (f unknownKindFactory) Item(kind menu.Kind, about *menu.AboutMetadata) (menu.Item, error) {
	if kind == menu.KindMinimize {
		return menu.Item{}, nil
	}
	return f.Standard.Item(kind, about)
}

func TestAboutMessage(t *testing.T) {
	oldVersion, oldCommit := version.Version, version.Commit
	defer func() { version.Version, version.Commit = oldVersion, oldCommit }()
	version.Version, version.Commit = "2.0.0", ""

	msg := aboutMessage(menu.AboutMetadata{Name: "Google Gemini"})
	if !strings.HasPrefix(msg, "Google Gemini\nVersion 2.0.0") {
		t.Errorf("message = %q", msg)
	}

	msg = aboutMessage(menu.AboutMetadata{Name: "Google Gemini", Version: "9", Copyright: "(c) 2026"})
	if msg != "Google Gemini\nVersion 9\n(c) 2026" {
		t.Errorf("message = %q", msg)
	}
}

func TestMacAboutFromTree(t *testing.T) {
	oldVersion, oldCommit := version.Version, version.Commit
	defer func() { version.Version, version.Commit = oldVersion, oldCommit }()
	version.Version, version.Commit = "2.0.0", ""

	m, err := menu.Default("Google Gemini")
	if err != nil {
		t.Fatal(err)
	}
	info := MacAbout(m)
	if info.Title != "Google Gemini" {
		t.Errorf("title = %q", info.Title)
	}
	if !strings.Contains(info.Message, "Version 2.0.0") {
		t.Errorf("message = %q", info.Message)
	}
}
