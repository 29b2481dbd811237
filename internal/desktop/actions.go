package desktop

import (
	"fmt"

	"github.com/geminidesk/gemini-desktop/internal/menu"
)

// Actions performs the platform behavior behind each predefined menu item.
type Actions interface {
	About(md menu.AboutMetadata)
	HideApp()
	ShowAll()
	Quit()
	CloseWindow()
	Edit(cmd EditCommand)
	Minimize()
}

// EditCommand is a document editing command executed inside the webview.
type EditCommand string

const (
	EditUndo      EditCommand = "undo"
	EditRedo      EditCommand = "redo"
	EditCut       EditCommand = "cut"
	EditCopy      EditCommand = "copy"
	EditPaste     EditCommand = "paste"
	EditSelectAll EditCommand = "selectAll"
)

func (c EditCommand) Script() string {
	return fmt.Sprintf("document.execCommand(%q)", string(c))
}
