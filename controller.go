package editsurface

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrNilEditContext is returned by NewController without an edit context.
	ErrNilEditContext = errors.New("edit context is nil")

	// ErrNilSurface is returned by NewController without a surface.
	ErrNilSurface = errors.New("surface is nil")
)

// Layout holds the fixed geometry of the text line.
type Layout struct {
	TextX           float32 // Left edge of the text
	TextY           float32 // Text baseline
	FontSize        float32 // Font size; also the caret height
	CaretWidth      float32
	UnderlineOffset float32 // Composition underline distance below the baseline
	BoundsPadding   float32 // Extra vertical offset of reported character bounds
}

// DefaultLayout returns the layout of a 16px monospace line anchored at (10, 30).
func DefaultLayout() Layout {
	return Layout{
		TextX:           10,
		TextY:           30,
		FontSize:        16,
		CaretWidth:      2,
		UnderlineOffset: 3,
		BoundsPadding:   10,
	}
}

// Style holds the colors the controller paints with.
type Style struct {
	TextColor      uint32
	CaretColor     uint32
	UnderlineColor uint32
}

// DefaultStyle returns black text, caret and underlines.
func DefaultStyle() Style {
	return Style{
		TextColor:      ColorBlack,
		CaretColor:     ColorBlack,
		UnderlineColor: ColorBlack,
	}
}

// DefaultBlinkInterval is the caret blink period.
const DefaultBlinkInterval = 500 * time.Millisecond

// taskQueueSize bounds the work waiting for the UI goroutine.
const taskQueueSize = 64

// Option configures a Controller.
type Option func(*Controller)

// WithLayout sets the text line geometry.
func WithLayout(l Layout) Option {
	return func(c *Controller) { c.layout = l }
}

// WithStyle sets the paint colors.
func WithStyle(s Style) Option {
	return func(c *Controller) { c.style = s }
}

// WithBlinkInterval sets the caret blink period.
func WithBlinkInterval(d time.Duration) Option {
	return func(c *Controller) { c.blinkInterval = d }
}

// WithClipboard sets the clipboard used for paste.
func WithClipboard(cb Clipboard) Option {
	return func(c *Controller) { c.clipboard = cb }
}

// WithLogger sets the logger. Defaults to the package logger on stderr.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithWake sets a function called after work is queued from another
// goroutine, e.g. glfw.PostEmptyEvent to wake a loop blocked in WaitEvents.
func WithWake(wake func()) Option {
	return func(c *Controller) { c.wake = wake }
}

// Controller binds an EditContext to a Surface: it renders the text,
// blinks the caret, bridges input-method events and handles the keyboard.
//
// All methods except Post must be called from the UI goroutine. Work
// started elsewhere (blink ticks, clipboard reads) is queued and runs when
// the UI goroutine calls Pump or Run.
type Controller struct {
	edit      EditContext
	surface   Surface
	clipboard Clipboard
	layout    Layout
	style     Style
	logger    *slog.Logger
	wake      func()

	blinkInterval time.Duration
	cursorVisible bool

	tasks          chan func()
	removeListener func()

	// Lifetime of the controller; cancels in-flight clipboard reads.
	ctx    context.Context
	cancel context.CancelFunc
	pastes errgroup.Group

	// Blink loop, set between Start and Stop.
	parent      context.Context
	blinkCancel context.CancelFunc
	blinkGroup  *errgroup.Group
}

// NewController creates a controller and subscribes it to edit's events.
// Call Start to begin blinking the caret and Close to release it.
func NewController(edit EditContext, surface Surface, opts ...Option) (*Controller, error) {
	if edit == nil {
		return nil, ErrNilEditContext
	}
	if surface == nil {
		return nil, ErrNilSurface
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		edit:          edit,
		surface:       surface,
		layout:        DefaultLayout(),
		style:         DefaultStyle(),
		logger:        defaultLogger,
		blinkInterval: DefaultBlinkInterval,
		cursorVisible: true,
		tasks:         make(chan func(), taskQueueSize),
		ctx:           ctx,
		cancel:        cancel,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.removeListener = edit.AddEventListener(c.handleEvent)
	return c, nil
}

// Start reports the control bounds, paints the current text and starts the
// caret blink loop. The loop runs until Stop, Close, or ctx is done.
func (c *Controller) Start(ctx context.Context) {
	if c.blinkGroup != nil {
		return
	}
	c.parent = ctx

	c.UpdateControlBounds()
	c.Render()

	blinkCtx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(blinkCtx)
	interval := c.blinkInterval
	g.Go(func() error {
		return c.blinkLoop(gctx, interval)
	})
	c.blinkCancel = cancel
	c.blinkGroup = g

	c.logger.Debug("surface started", "blink", interval)
}

// Stop ends the caret blink loop and waits for it to exit.
func (c *Controller) Stop() {
	if c.blinkGroup == nil {
		return
	}
	c.blinkCancel()
	_ = c.blinkGroup.Wait()
	c.blinkGroup = nil
	c.blinkCancel = nil
}

// Close stops the controller, cancels pending clipboard reads and
// unsubscribes from the edit context.
func (c *Controller) Close() {
	c.Stop()
	c.cancel()
	_ = c.pastes.Wait()
	if c.removeListener != nil {
		c.removeListener()
		c.removeListener = nil
	}
}

// SetBlinkInterval changes the caret blink period, restarting a running
// blink loop.
func (c *Controller) SetBlinkInterval(d time.Duration) {
	if d <= 0 || d == c.blinkInterval {
		return
	}
	c.blinkInterval = d
	if c.blinkGroup != nil {
		c.Stop()
		c.Start(c.parent)
	}
}

// SetStyle changes the paint colors and repaints.
func (c *Controller) SetStyle(s Style) {
	c.style = s
	c.Render()
}

// Layout returns the text line geometry.
func (c *Controller) Layout() Layout {
	return c.layout
}

// Pump runs queued work and returns the number of tasks run.
// Call it once per frame from the UI loop.
func (c *Controller) Pump() int {
	n := 0
	for {
		select {
		case fn := <-c.tasks:
			fn()
			n++
		default:
			return n
		}
	}
}

// Run runs queued work until ctx is done. Use it instead of Pump on hosts
// without a frame loop.
func (c *Controller) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-c.tasks:
			fn()
		}
	}
}

// Post queues fn to run on the UI goroutine. It may be called from any
// goroutine and blocks while the queue is full. After Close, fn is dropped.
func (c *Controller) Post(fn func()) {
	c.post(c.ctx, fn)
}

func (c *Controller) post(ctx context.Context, fn func()) {
	select {
	case c.tasks <- fn:
		c.notify()
	case <-ctx.Done():
	}
}

// tryPost queues fn unless the queue is full.
func (c *Controller) tryPost(fn func()) bool {
	select {
	case c.tasks <- fn:
		c.notify()
		return true
	default:
		return false
	}
}

func (c *Controller) notify() {
	if c.wake != nil {
		c.wake()
	}
}
