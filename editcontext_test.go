package editsurface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eventLog collects the events dispatched by a MemoryEditContext.
type eventLog struct {
	events []Event
}

func (l *eventLog) listen(ev Event) {
	l.events = append(l.events, ev)
}

func (l *eventLog) types() []EventType {
	out := make([]EventType, len(l.events))
	for i, ev := range l.events {
		out[i] = ev.Type()
	}
	return out
}

func newLoggedContext(text string) (*MemoryEditContext, *eventLog) {
	m := NewMemoryEditContext(text)
	log := &eventLog{}
	m.AddEventListener(log.listen)
	return m, log
}

func TestNewMemoryEditContextPlacesCaretAtEnd(t *testing.T) {
	m := NewMemoryEditContext("héllo")
	assert.Equal(t, "héllo", m.Text())
	assert.Equal(t, 5, m.SelectionStart())
	assert.Equal(t, 5, m.SelectionEnd())
}

func TestUpdateSelectionClampsAndOrders(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		wantStart  int
		wantEnd    int
	}{
		{name: "caret", start: 2, end: 2, wantStart: 2, wantEnd: 2},
		{name: "range", start: 1, end: 3, wantStart: 1, wantEnd: 3},
		{name: "reversed", start: 3, end: 1, wantStart: 1, wantEnd: 3},
		{name: "negative", start: -4, end: 2, wantStart: 0, wantEnd: 2},
		{name: "past end", start: 2, end: 99, wantStart: 2, wantEnd: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMemoryEditContext("abcd")
			m.UpdateSelection(tt.start, tt.end)
			assert.Equal(t, tt.wantStart, m.SelectionStart())
			assert.Equal(t, tt.wantEnd, m.SelectionEnd())
		})
	}
}

func TestUpdateTextReplacesRangeAndDispatches(t *testing.T) {
	m, log := newLoggedContext("Hello World")
	m.UpdateSelection(2, 5)

	m.UpdateText(2, 5, "ABC")
	assert.Equal(t, "HeABC World", m.Text())
	assert.Equal(t, 2, m.SelectionStart())
	assert.Equal(t, 5, m.SelectionEnd())

	require.Len(t, log.events, 1)
	assert.Equal(t, TextUpdateEvent{
		UpdateRangeStart: 2,
		UpdateRangeEnd:   5,
		Text:             "ABC",
		SelectionStart:   2,
		SelectionEnd:     5,
	}, log.events[0])
}

func TestUpdateTextClampsSelectionToShorterText(t *testing.T) {
	m := NewMemoryEditContext("abcdef")
	m.UpdateSelection(4, 6)

	m.UpdateText(0, 6, "xy")
	assert.Equal(t, "xy", m.Text())
	assert.Equal(t, 2, m.SelectionStart())
	assert.Equal(t, 2, m.SelectionEnd())
}

func TestUpdateTextCountsRunes(t *testing.T) {
	m := NewMemoryEditContext("日本語")
	m.UpdateText(1, 2, "ü")
	assert.Equal(t, "日ü語", m.Text())
}

func TestInsertTextCollapsesCaretAfterInsertion(t *testing.T) {
	m, log := newLoggedContext("ad")
	m.UpdateSelection(1, 1)

	m.InsertText("bc")
	assert.Equal(t, "abcd", m.Text())
	assert.Equal(t, 3, m.SelectionStart())
	assert.Equal(t, 3, m.SelectionEnd())
	assert.Equal(t, []EventType{EventTextUpdate}, log.types())

	m.InsertText("")
	assert.Len(t, log.events, 1)
}

func TestDeleteBackwardAndForward(t *testing.T) {
	m, log := newLoggedContext("abcd")

	m.UpdateSelection(2, 2)
	m.DeleteBackward()
	assert.Equal(t, "acd", m.Text())
	assert.Equal(t, 1, m.SelectionStart())

	m.DeleteForward()
	assert.Equal(t, "ad", m.Text())
	assert.Equal(t, 1, m.SelectionStart())

	m.UpdateSelection(0, 2)
	m.DeleteForward()
	assert.Equal(t, "", m.Text())
	assert.Len(t, log.events, 3)

	// Nothing to delete at either edge.
	m.DeleteBackward()
	m.DeleteForward()
	assert.Len(t, log.events, 3)
}

func TestCompositionEventSequence(t *testing.T) {
	m, log := newLoggedContext("ab")

	m.BeginComposition()
	assert.True(t, m.IsComposing())
	m.SetComposition("x", nil)
	m.SetComposition("xy", nil)
	m.CommitComposition()
	assert.False(t, m.IsComposing())

	assert.Equal(t, []EventType{
		EventCompositionStart,
		EventTextUpdate, EventTextFormatUpdate, EventCharacterBoundsUpdate,
		EventTextUpdate, EventTextFormatUpdate, EventCharacterBoundsUpdate,
		EventCompositionEnd,
	}, log.types())

	assert.Equal(t, "abxy", m.Text())
	assert.Equal(t, 4, m.SelectionEnd())
	assert.Equal(t, CompositionEndEvent{Data: "xy"}, log.events[len(log.events)-1])

	format := log.events[5].(TextFormatUpdateEvent)
	assert.Equal(t, []TextFormat{{
		RangeStart:         2,
		RangeEnd:           4,
		UnderlineStyle:     UnderlineStyleSolid,
		UnderlineThickness: UnderlineThicknessThin,
	}}, format.Formats)
	assert.Equal(t, CharacterBoundsUpdateEvent{RangeStart: 2, RangeEnd: 4}, log.events[6])
}

func TestSetCompositionStartsComposition(t *testing.T) {
	m, log := newLoggedContext("")
	m.SetComposition("か", nil)

	assert.True(t, m.IsComposing())
	start, end := m.CompositionRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, 1, end)
	assert.Equal(t, EventCompositionStart, log.events[0].Type())
}

func TestCancelCompositionRemovesText(t *testing.T) {
	m, log := newLoggedContext("ab")
	m.SetComposition("xyz", nil)
	log.events = nil

	m.CancelComposition()
	assert.Equal(t, "ab", m.Text())
	assert.Equal(t, 2, m.SelectionStart())
	assert.Equal(t, []EventType{EventTextUpdate, EventCompositionEnd}, log.types())

	m.CancelComposition()
	assert.Len(t, log.events, 2)
}

func TestInsertTextCommitsComposition(t *testing.T) {
	m, log := newLoggedContext("")
	m.SetComposition("a", nil)
	log.events = nil

	m.InsertText("b")
	assert.False(t, m.IsComposing())
	assert.Equal(t, "ab", m.Text())
	assert.Equal(t, []EventType{EventCompositionEnd, EventTextUpdate}, log.types())
}

func TestDeletionsShrinkComposition(t *testing.T) {
	m, log := newLoggedContext("")
	m.SetComposition("abc", nil)

	m.DeleteBackward()
	m.DeleteBackward()
	start, end := m.CompositionRange()
	assert.Equal(t, [2]int{0, 1}, [2]int{start, end})

	require.NotPanics(t, m.CommitComposition)
	assert.Equal(t, "a", m.Text())
	assert.Equal(t, CompositionEndEvent{Data: "a"}, log.events[len(log.events)-1])
}

func TestUpdateTextOverComposition(t *testing.T) {
	m := NewMemoryEditContext("")
	m.SetComposition("abcd", nil)

	m.UpdateText(0, 4, "x")
	start, end := m.CompositionRange()
	assert.Equal(t, [2]int{0, 1}, [2]int{start, end})

	require.NotPanics(t, func() { m.SetComposition("y", nil) })
	assert.Equal(t, "y", m.Text())
	start, end = m.CompositionRange()
	assert.Equal(t, [2]int{0, 1}, [2]int{start, end})
}

func TestEditsAroundCompositionShiftIt(t *testing.T) {
	m, log := newLoggedContext("ab")
	m.SetComposition("xy", nil)

	m.UpdateText(0, 0, "Z")
	start, end := m.CompositionRange()
	assert.Equal(t, [2]int{3, 5}, [2]int{start, end})

	// Text inserted at the trailing edge stays outside.
	m.UpdateText(5, 5, "!")
	start, end = m.CompositionRange()
	assert.Equal(t, [2]int{3, 5}, [2]int{start, end})

	m.CommitComposition()
	assert.Equal(t, "Zabxy!", m.Text())
	assert.Equal(t, CompositionEndEvent{Data: "xy"}, log.events[len(log.events)-1])
}

func TestCancelAfterCompositionWasDeleted(t *testing.T) {
	m := NewMemoryEditContext("ab")
	m.SetComposition("xy", nil)

	m.UpdateText(0, 4, "")
	start, end := m.CompositionRange()
	assert.Equal(t, [2]int{0, 0}, [2]int{start, end})

	require.NotPanics(t, m.CancelComposition)
	assert.Equal(t, "", m.Text())
	assert.False(t, m.IsComposing())
}

func TestListenersRunInOrderAndCanBeRemoved(t *testing.T) {
	m := NewMemoryEditContext("")
	var got []string

	removeA := m.AddEventListener(func(Event) { got = append(got, "a") })
	m.AddEventListener(func(Event) { got = append(got, "b") })

	m.InsertText("x")
	assert.Equal(t, []string{"a", "b"}, got)

	removeA()
	removeA()
	got = nil
	m.InsertText("y")
	assert.Equal(t, []string{"b"}, got)
}

func TestListenerMayUnsubscribeDuringDispatch(t *testing.T) {
	m := NewMemoryEditContext("")
	calls := 0

	var remove func()
	remove = m.AddEventListener(func(Event) {
		calls++
		remove()
	})
	m.InsertText("x")
	m.InsertText("y")
	assert.Equal(t, 1, calls)
}

func TestCharacterBoundsAreCopied(t *testing.T) {
	m := NewMemoryEditContext("abc")
	in := []Rect{{X: 1, W: 2}, {X: 3, W: 2}}
	m.UpdateCharacterBounds(1, in)
	in[0].X = 99

	start, out := m.CharacterBounds()
	assert.Equal(t, 1, start)
	assert.Equal(t, []Rect{{X: 1, W: 2}, {X: 3, W: 2}}, out)
}

func TestPrefixAndRuneAt(t *testing.T) {
	s := "aé日"
	assert.Equal(t, "", Prefix(s, -1))
	assert.Equal(t, "", Prefix(s, 0))
	assert.Equal(t, "aé", Prefix(s, 2))
	assert.Equal(t, s, Prefix(s, 10))

	assert.Equal(t, "é", RuneAt(s, 1))
	assert.Equal(t, "日", RuneAt(s, 2))
	assert.Equal(t, "", RuneAt(s, 3))
	assert.Equal(t, "", RuneAt(s, -1))
	assert.Equal(t, 3, RuneLen(s))
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "textupdate", EventTextUpdate.String())
	assert.Equal(t, "characterboundsupdate", EventCharacterBoundsUpdate.String())
	assert.Equal(t, "unknown", EventType(42).String())
	assert.Equal(t, "Thick", UnderlineThicknessThick.String())
	assert.Equal(t, "Wavy", UnderlineStyleWavy.String())
}

func TestUnderlineThicknessPixels(t *testing.T) {
	assert.Equal(t, float32(1), UnderlineThicknessNone.Pixels())
	assert.Equal(t, float32(1), UnderlineThicknessThin.Pixels())
	assert.Equal(t, float32(2), UnderlineThicknessThick.Pixels())
}
