package editsurface

// MemoryEditContext is an in-process EditContext. It owns the document and
// turns typed characters, deletions and composition input into the same
// event sequence a platform input-method context dispatches.
//
// Not safe for concurrent use; drive it from the UI goroutine.
type MemoryEditContext struct {
	text     []rune
	selStart int
	selEnd   int

	composing bool
	compStart int
	compEnd   int

	controlBounds   Rect
	charBoundsStart int
	charBounds      []Rect

	listeners map[int]EventListener
	order     []int
	nextID    int
}

// NewMemoryEditContext creates an edit context holding text with the caret
// at its end.
func NewMemoryEditContext(text string) *MemoryEditContext {
	runes := []rune(text)
	return &MemoryEditContext{
		text:      runes,
		selStart:  len(runes),
		selEnd:    len(runes),
		listeners: make(map[int]EventListener),
	}
}

// Text implements EditContext.
func (m *MemoryEditContext) Text() string {
	return string(m.text)
}

// SelectionStart implements EditContext.
func (m *MemoryEditContext) SelectionStart() int {
	return m.selStart
}

// SelectionEnd implements EditContext.
func (m *MemoryEditContext) SelectionEnd() int {
	return m.selEnd
}

// UpdateText implements EditContext. The range is clamped and ordered. The
// selection is left in place, clamped to the new length. A TextUpdateEvent
// is dispatched.
func (m *MemoryEditContext) UpdateText(start, end int, text string) {
	start, end = m.clampRange(start, end)
	m.replace(start, end, text)
	m.selStart, m.selEnd = m.clampRange(m.selStart, m.selEnd)
	m.dispatchTextUpdate(start, end, text)
}

// UpdateSelection implements EditContext. Offsets are clamped to the text
// and ordered so that start <= end.
func (m *MemoryEditContext) UpdateSelection(start, end int) {
	m.selStart, m.selEnd = m.clampRange(start, end)
}

// UpdateControlBounds implements EditContext.
func (m *MemoryEditContext) UpdateControlBounds(bounds Rect) {
	m.controlBounds = bounds
}

// ControlBounds returns the last reported control bounds.
func (m *MemoryEditContext) ControlBounds() Rect {
	return m.controlBounds
}

// UpdateCharacterBounds implements EditContext.
func (m *MemoryEditContext) UpdateCharacterBounds(rangeStart int, bounds []Rect) {
	m.charBoundsStart = rangeStart
	m.charBounds = append(m.charBounds[:0], bounds...)
}

// CharacterBounds returns the last reported character bounds and the
// offset of the first one.
func (m *MemoryEditContext) CharacterBounds() (rangeStart int, bounds []Rect) {
	return m.charBoundsStart, append([]Rect(nil), m.charBounds...)
}

// AddEventListener implements EditContext. Listeners run in subscription
// order.
func (m *MemoryEditContext) AddEventListener(l EventListener) func() {
	id := m.nextID
	m.nextID++
	m.listeners[id] = l
	m.order = append(m.order, id)
	return func() {
		if _, ok := m.listeners[id]; !ok {
			return
		}
		delete(m.listeners, id)
		for i, v := range m.order {
			if v == id {
				m.order = append(m.order[:i], m.order[i+1:]...)
				break
			}
		}
	}
}

// InsertText replaces the selection with typed text and collapses the caret
// after it. An active composition is committed first.
func (m *MemoryEditContext) InsertText(text string) {
	if text == "" {
		return
	}
	m.CommitComposition()
	start, end := m.selStart, m.selEnd
	m.replace(start, end, text)
	caret := start + RuneLen(text)
	m.selStart, m.selEnd = caret, caret
	m.dispatchTextUpdate(start, end, text)
}

// DeleteBackward deletes the selection, or the rune before the caret.
func (m *MemoryEditContext) DeleteBackward() {
	start, end := m.selStart, m.selEnd
	if start == end {
		if start == 0 {
			return
		}
		start--
	}
	m.deleteRange(start, end)
}

// DeleteForward deletes the selection, or the rune after the caret.
func (m *MemoryEditContext) DeleteForward() {
	start, end := m.selStart, m.selEnd
	if start == end {
		if end == len(m.text) {
			return
		}
		end++
	}
	m.deleteRange(start, end)
}

func (m *MemoryEditContext) deleteRange(start, end int) {
	m.replace(start, end, "")
	m.selStart, m.selEnd = start, start
	m.dispatchTextUpdate(start, end, "")
}

// IsComposing reports whether a composition is active.
func (m *MemoryEditContext) IsComposing() bool {
	return m.composing
}

// CompositionRange returns the range the active composition occupies.
func (m *MemoryEditContext) CompositionRange() (start, end int) {
	return m.compStart, m.compEnd
}

// BeginComposition starts a composition over the current selection.
func (m *MemoryEditContext) BeginComposition() {
	if m.composing {
		return
	}
	m.composing = true
	m.compStart, m.compEnd = m.selStart, m.selEnd
	m.dispatch(CompositionStartEvent{Data: string(m.text[m.compStart:m.compEnd])})
}

// SetComposition replaces the composition text and places the caret at its
// end, then dispatches textupdate, textformatupdate and
// characterboundsupdate in that order. nil formats underline the whole
// composition with a thin solid line.
func (m *MemoryEditContext) SetComposition(text string, formats []TextFormat) {
	m.BeginComposition()

	start, end := m.compStart, m.compEnd
	m.replace(start, end, text)
	m.compStart, m.compEnd = start, start+RuneLen(text)
	m.selStart, m.selEnd = m.compEnd, m.compEnd
	m.dispatchTextUpdate(start, end, text)

	if formats == nil && m.compEnd > m.compStart {
		formats = []TextFormat{{
			RangeStart:         m.compStart,
			RangeEnd:           m.compEnd,
			UnderlineStyle:     UnderlineStyleSolid,
			UnderlineThickness: UnderlineThicknessThin,
		}}
	}
	m.dispatch(TextFormatUpdateEvent{Formats: formats})
	m.dispatch(CharacterBoundsUpdateEvent{RangeStart: m.compStart, RangeEnd: m.compEnd})
}

// CommitComposition ends the composition, keeping its text.
func (m *MemoryEditContext) CommitComposition() {
	if !m.composing {
		return
	}
	m.composing = false
	m.dispatch(CompositionEndEvent{Data: string(m.text[m.compStart:m.compEnd])})
}

// CancelComposition ends the composition and removes its text.
func (m *MemoryEditContext) CancelComposition() {
	if !m.composing {
		return
	}
	start, end := m.compStart, m.compEnd
	m.composing = false
	if end > start {
		m.replace(start, end, "")
		m.selStart, m.selEnd = start, start
		m.dispatchTextUpdate(start, end, "")
	}
	m.dispatch(CompositionEndEvent{})
}

// RequestCharacterBounds asks listeners for the bounds of [start, end).
func (m *MemoryEditContext) RequestCharacterBounds(start, end int) {
	m.dispatch(CharacterBoundsUpdateEvent{RangeStart: start, RangeEnd: end})
}

// replace swaps [start, end) for text. An active composition range follows
// the edit; text inserted at either of its edges lands outside it.
func (m *MemoryEditContext) replace(start, end int, text string) {
	ins := []rune(text)
	out := make([]rune, 0, len(m.text)-(end-start)+len(ins))
	out = append(out, m.text[:start]...)
	out = append(out, ins...)
	out = append(out, m.text[end:]...)
	m.text = out

	if m.composing {
		m.shiftComposition(start, end, len(ins))
	}
}

func (m *MemoryEditContext) shiftComposition(start, end, n int) {
	delta := n - (end - start)
	switch {
	case m.compStart >= end:
		m.compStart += delta
	case m.compStart > start:
		m.compStart = start
	}
	switch {
	case m.compEnd > end:
		m.compEnd += delta
	case m.compEnd > start:
		m.compEnd = start + n
	}
	m.compEnd = max(m.compEnd, m.compStart)
}

func (m *MemoryEditContext) clampRange(start, end int) (int, int) {
	n := len(m.text)
	start = min(max(start, 0), n)
	end = min(max(end, 0), n)
	if start > end {
		start, end = end, start
	}
	return start, end
}

func (m *MemoryEditContext) dispatchTextUpdate(start, end int, text string) {
	m.dispatch(TextUpdateEvent{
		UpdateRangeStart: start,
		UpdateRangeEnd:   end,
		Text:             text,
		SelectionStart:   m.selStart,
		SelectionEnd:     m.selEnd,
	})
}

// dispatch delivers ev to a snapshot of the listeners, so listeners may
// subscribe or unsubscribe while handling it.
func (m *MemoryEditContext) dispatch(ev Event) {
	ids := append([]int(nil), m.order...)
	for _, id := range ids {
		if l, ok := m.listeners[id]; ok {
			l(ev)
		}
	}
}
