package opengl

import (
	"context"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/editsurface"
)

// TextInput receives typed text and deletions. MemoryEditContext
// implements it.
type TextInput interface {
	InsertText(text string)
	DeleteBackward()
	DeleteForward()
}

// WindowAdapter routes GLFW window callbacks to a controller: navigation
// and shortcuts go to HandleKey, typed characters and deletions to the
// text input, and size or position changes to HandleResize.
type WindowAdapter struct {
	window  *glfw.Window
	ctrl    *editsurface.Controller
	input   TextInput
	surface *editsurface.DrawListSurface
}

// NewWindowAdapter installs key, char, size and position callbacks on
// window. The surface is resized to follow the window width.
func NewWindowAdapter(window *glfw.Window, ctrl *editsurface.Controller, input TextInput, surface *editsurface.DrawListSurface) *WindowAdapter {
	a := &WindowAdapter{
		window:  window,
		ctrl:    ctrl,
		input:   input,
		surface: surface,
	}

	window.SetKeyCallback(a.keyCallback)
	window.SetCharCallback(a.charCallback)
	window.SetSizeCallback(a.sizeCallback)
	window.SetPosCallback(a.posCallback)

	return a
}

// ScreenOrigin returns the window's content origin on screen, for
// editsurface.WithScreenOrigin.
func ScreenOrigin(window *glfw.Window) func() editsurface.Vec2 {
	return func() editsurface.Vec2 {
		x, y := window.GetPos()
		return editsurface.Vec2{X: float32(x), Y: float32(y)}
	}
}

func (a *WindowAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	ev := keyEvent(key, mods)
	if ev.Key == editsurface.KeyNone {
		return
	}

	switch {
	case ev.Key == editsurface.KeyBackspace && a.input != nil:
		a.input.DeleteBackward()
	case ev.Key == editsurface.KeyDelete && a.input != nil:
		a.input.DeleteForward()
	default:
		a.ctrl.HandleKey(ev)
	}
}

func (a *WindowAdapter) charCallback(w *glfw.Window, char rune) {
	if a.input != nil {
		a.input.InsertText(string(char))
	}
}

func (a *WindowAdapter) sizeCallback(w *glfw.Window, width, height int) {
	if a.surface != nil {
		off := a.surface.Offset()
		a.surface.SetSize(editsurface.Vec2{
			X: max(float32(width)-2*off.X, 0),
			Y: a.surface.Size().Y,
		})
		a.ctrl.Render()
	}
	a.ctrl.HandleResize()
}

func (a *WindowAdapter) posCallback(w *glfw.Window, x, y int) {
	a.ctrl.HandleResize()
}

// keyEvent converts a GLFW key press.
func keyEvent(key glfw.Key, mods glfw.ModifierKey) editsurface.KeyEvent {
	return editsurface.KeyEvent{
		Key:   glfwKeyToKey(key),
		Ctrl:  mods&glfw.ModControl != 0,
		Shift: mods&glfw.ModShift != 0,
		Alt:   mods&glfw.ModAlt != 0,
		Meta:  mods&glfw.ModSuper != 0,
	}
}

// glfwKeyToKey maps GLFW keys to surface keys.
func glfwKeyToKey(key glfw.Key) editsurface.Key {
	switch key {
	case glfw.KeyLeft:
		return editsurface.KeyLeft
	case glfw.KeyRight:
		return editsurface.KeyRight
	case glfw.KeyUp:
		return editsurface.KeyUp
	case glfw.KeyDown:
		return editsurface.KeyDown
	case glfw.KeyHome:
		return editsurface.KeyHome
	case glfw.KeyEnd:
		return editsurface.KeyEnd
	case glfw.KeyBackspace:
		return editsurface.KeyBackspace
	case glfw.KeyDelete:
		return editsurface.KeyDelete
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return editsurface.KeyEnter
	case glfw.KeyEscape:
		return editsurface.KeyEscape
	case glfw.KeyTab:
		return editsurface.KeyTab
	case glfw.KeyA:
		return editsurface.KeyA
	case glfw.KeyC:
		return editsurface.KeyC
	case glfw.KeyV:
		return editsurface.KeyV
	case glfw.KeyX:
		return editsurface.KeyX
	default:
		return editsurface.KeyNone
	}
}

// WindowClipboard reads the GLFW clipboard. GLFW only allows clipboard
// access from the main thread, so ReadText hands the request to Serve,
// which the main loop calls once per frame.
type WindowClipboard struct {
	window   *glfw.Window
	requests chan chan string
}

// pendingReads bounds the reads waiting for Serve.
const pendingReads = 4

// NewWindowClipboard creates a clipboard reading through window.
func NewWindowClipboard(window *glfw.Window) *WindowClipboard {
	return &WindowClipboard{
		window:   window,
		requests: make(chan chan string, pendingReads),
	}
}

// ReadText implements editsurface.Clipboard. It blocks until the main
// loop calls Serve or ctx is done.
func (c *WindowClipboard) ReadText(ctx context.Context) (string, error) {
	reply := make(chan string, 1)
	select {
	case c.requests <- reply:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	// Wake a main loop blocked in WaitEvents.
	glfw.PostEmptyEvent()

	select {
	case text := <-reply:
		if text == "" {
			return "", editsurface.ErrClipboardEmpty
		}
		return text, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Serve answers pending clipboard reads. Call it from the main thread.
func (c *WindowClipboard) Serve() {
	for {
		select {
		case reply := <-c.requests:
			reply <- c.window.GetClipboardString()
		default:
			return
		}
	}
}
