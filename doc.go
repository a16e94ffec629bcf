/*
Package editsurface renders a single line of editable text onto a 2D
surface and keeps it in sync with a host-owned text model.

The host owns the document through an EditContext. A Controller paints the
text, blinks a caret, underlines input-method compositions, reports control
and character geometry back to the EditContext, and handles a small set of
keys. MemoryEditContext is an in-process EditContext; DrawListSurface is a
retained Surface that builds a DrawList for the OpenGL backend.

# Quick Start

	edit := editsurface.NewMemoryEditContext("Hello World")
	surface := editsurface.NewDrawListSurface(editsurface.NewMonoFont(16), editsurface.Vec2{X: 600, Y: 60})

	ctrl, err := editsurface.NewController(edit, surface,
	    editsurface.WithClipboard(editsurface.SystemClipboard{}),
	    editsurface.WithWake(glfw.PostEmptyEvent),
	)
	if err != nil {
	    return err
	}
	defer ctrl.Close()
	ctrl.Start(ctx)

	for !window.ShouldClose() {
	    glfw.WaitEvents()
	    ctrl.Pump()

	    dl := editsurface.AcquireDrawList()
	    surface.Build(dl, renderer.FontTextureID())
	    renderer.Render(dl)
	    editsurface.ReleaseDrawList(dl)
	    window.SwapBuffers()
	}

# Threading

Controller methods run on the UI goroutine. The caret blink timer and
clipboard reads run on their own goroutines and hand their results back
through a task queue; the UI loop drains it with Pump (or Run). WithWake
lets the queue wake a loop blocked waiting for window events.

# Offsets

Selection and range offsets count runes, not bytes.

# Keyboard Reference

	Left Arrow       Move caret one rune left, collapsing the selection
	Right Arrow      Move caret one rune right, collapsing the selection
	Shift+Arrow      Ignored; the selection is left unchanged
	Ctrl+V / Cmd+V   Paste clipboard text over the selection

With the GLFW adapter, typed characters, Backspace and Delete edit the
MemoryEditContext directly.

# Input-Method Events

	compositionstart       Surface gains the "is-composing" class
	compositionend         Surface loses the "is-composing" class
	textupdate             Text is repainted
	textformatupdate       Text is repainted, then each range underlined
	characterboundsupdate  One rectangle per offset is reported back
*/
package editsurface
