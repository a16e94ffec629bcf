package editsurface

import "unicode/utf8"

// EditContext is the host-owned text and selection model the surface is
// bound to. It plays the role of the platform's input-method context: it
// owns the document, receives composition input, and is told where the
// control and its characters are on screen.
//
// Offsets are rune offsets into Text.
type EditContext interface {
	// Text returns the current document text.
	Text() string

	// SelectionStart returns the start of the selection (or the caret).
	SelectionStart() int

	// SelectionEnd returns the end of the selection (or the caret).
	SelectionEnd() int

	// UpdateText replaces the range [start, end) with text.
	UpdateText(start, end int, text string)

	// UpdateSelection sets the selection. start == end collapses it to a caret.
	UpdateSelection(start, end int)

	// UpdateControlBounds reports the control's screen rectangle.
	UpdateControlBounds(bounds Rect)

	// UpdateCharacterBounds reports one rectangle per offset starting at
	// rangeStart.
	UpdateCharacterBounds(rangeStart int, bounds []Rect)

	// AddEventListener subscribes l to all events and returns a function
	// that removes the subscription.
	AddEventListener(l EventListener) (remove func())
}

// EventListener receives EditContext events.
type EventListener func(Event)

// EventType identifies an EditContext event.
type EventType int

const (
	EventCompositionStart EventType = iota
	EventCompositionEnd
	EventTextUpdate
	EventTextFormatUpdate
	EventCharacterBoundsUpdate
)

var eventTypeNames = [...]string{
	EventCompositionStart:      "compositionstart",
	EventCompositionEnd:        "compositionend",
	EventTextUpdate:            "textupdate",
	EventTextFormatUpdate:      "textformatupdate",
	EventCharacterBoundsUpdate: "characterboundsupdate",
}

func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Event is an EditContext event. Use a type switch on the concrete types.
type Event interface {
	Type() EventType
}

// CompositionStartEvent is dispatched when an input-method composition begins.
type CompositionStartEvent struct {
	Data string
}

// CompositionEndEvent is dispatched when a composition is committed or
// cancelled. Data holds the committed text.
type CompositionEndEvent struct {
	Data string
}

// TextUpdateEvent is dispatched whenever the document text changes.
type TextUpdateEvent struct {
	UpdateRangeStart int
	UpdateRangeEnd   int
	Text             string
	SelectionStart   int
	SelectionEnd     int
}

// TextFormatUpdateEvent asks the surface to decorate composition ranges.
type TextFormatUpdateEvent struct {
	Formats []TextFormat
}

// CharacterBoundsUpdateEvent asks the surface for the screen rectangles of
// the characters in [RangeStart, RangeEnd).
type CharacterBoundsUpdateEvent struct {
	RangeStart int
	RangeEnd   int
}

func (CompositionStartEvent) Type() EventType { return EventCompositionStart }
func (CompositionEndEvent) Type() EventType { return EventCompositionEnd }
func (TextUpdateEvent) Type() EventType { return EventTextUpdate }
func (TextFormatUpdateEvent) Type() EventType { return EventTextFormatUpdate }
func (CharacterBoundsUpdateEvent) Type() EventType { return EventCharacterBoundsUpdate }

// TextFormat describes the decoration of one composition range.
type TextFormat struct {
	RangeStart         int
	RangeEnd           int
	UnderlineStyle     UnderlineStyle
	UnderlineThickness UnderlineThickness
}

// UnderlineStyle is the requested underline style of a TextFormat.
type UnderlineStyle int

const (
	UnderlineStyleNone UnderlineStyle = iota
	UnderlineStyleSolid
	UnderlineStyleDotted
	UnderlineStyleDashed
	UnderlineStyleWavy
)

func (s UnderlineStyle) String() string {
	switch s {
	case UnderlineStyleNone:
		return "None"
	case UnderlineStyleSolid:
		return "Solid"
	case UnderlineStyleDotted:
		return "Dotted"
	case UnderlineStyleDashed:
		return "Dashed"
	case UnderlineStyleWavy:
		return "Wavy"
	default:
		return "unknown"
	}
}

// UnderlineThickness is the requested underline thickness of a TextFormat.
type UnderlineThickness int

const (
	UnderlineThicknessNone UnderlineThickness = iota
	UnderlineThicknessThin
	UnderlineThicknessThick
)

func (t UnderlineThickness) String() string {
	switch t {
	case UnderlineThicknessNone:
		return "None"
	case UnderlineThicknessThin:
		return "Thin"
	case UnderlineThicknessThick:
		return "Thick"
	default:
		return "unknown"
	}
}

// Pixels returns the stroke width for t.
func (t UnderlineThickness) Pixels() float32 {
	if t == UnderlineThicknessThick {
		return 2
	}
	return 1
}

// Prefix returns the first n runes of s, clamped to [0, len].
func Prefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// RuneAt returns the rune at offset n as a string, or "" when n is out of
// range.
func RuneAt(s string, n int) string {
	if n < 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			_, size := utf8.DecodeRuneInString(s[pos:])
			return s[pos : pos+size]
		}
		i++
	}
	return ""
}

// RuneLen returns the number of runes in s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}
