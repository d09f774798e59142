package recycler

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

const (
	// The size of the queued updates channel.
	updatesQueueSize = 100
	// The size of the event channels.
	eventsQueueSize = 64
	// The minimum time between two consecutive redraws on resize.
	redrawPause = 50 * time.Millisecond
)

// queuedUpdate represents the execution of f queued by
// Application.QueueUpdate. If done is not nil, it receives exactly one element
// after f has executed.
type queuedUpdate struct {
	f    func()
	done chan struct{}
}

// Application is the event loop around a single root primitive. Key events go
// to the root while it has focus, mouse events are turned into MouseActions,
// and functions queued from other goroutines run on the loop.
//
//	if err := recycler.NewApplication().SetRoot(view).Run(); err != nil {
//	    log.Fatal(err)
//	}
type Application struct {
	sync.RWMutex

	// The application's screen. Set by SetScreen or created by Run.
	screen tcell.Screen

	focus Primitive
	root  Primitive

	// Events queued with QueueEvent.
	events chan tcell.Event
	quit   chan struct{}
	err    error

	// Functions queued from goroutines, used to serialize updates to primitives.
	updates chan queuedUpdate

	mouseCapturingPrimitive Primitive        // Receives follow-up mouse events while set.
	lastMouseX, lastMouseY  int              // The last position of the mouse.
	mouseDownX, mouseDownY  int              // The position of the mouse when its button was last pressed.
	lastMouseButtons        tcell.ButtonMask // The last mouse button state.

	forceRedraw bool
	lastRedraw  time.Time
	redrawTimer *time.Timer
}

// NewApplication creates and returns a new application.
func NewApplication() *Application {
	return &Application{
		events:  make(chan tcell.Event, eventsQueueSize),
		quit:    make(chan struct{}),
		updates: make(chan queuedUpdate, updatesQueueSize),
	}
}

// SetScreen sets the screen used by Run. The screen must not be initialized;
// Run initializes it. It has no effect once a screen is set.
func (a *Application) SetScreen(screen tcell.Screen) *Application {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		a.screen = screen
	}
	return a
}

// Run initializes the screen and runs the event loop until Stop is called.
func (a *Application) Run() error {
	a.Lock()
	if a.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			a.Unlock()
			return err
		}
		a.screen = screen
	}
	screen := a.screen
	if err := screen.Init(); err != nil {
		a.Unlock()
		return err
	}
	screen.EnableMouse()
	a.forceRedraw = true
	a.Unlock()

	// We catch panics to clean up because they mess up the terminal.
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()

	// The screen closes this channel when it stops.
	screenEvents := make(chan tcell.Event, eventsQueueSize)
	go screen.ChannelEvents(screenEvents, a.quit)

	a.draw()

	for {
		var event tcell.Event
		select {
		case <-a.quit:
			return a.err
		case ev, ok := <-screenEvents:
			if !ok {
				return a.err
			}
			event = ev
		case event = <-a.events:
		case update := <-a.updates:
			update.f()
			if update.done != nil {
				update.done <- struct{}{}
			}
			continue
		}
		a.handleEvent(event)
	}
}

func (a *Application) handleEvent(event tcell.Event) {
	switch event := event.(type) {
	case *tcell.EventKey:
		a.RLock()
		root := a.root
		a.RUnlock()

		if root != nil && root.HasFocus() {
			if a.executeCommand(root.InputHandler(event)) {
				a.draw()
			}
		}
	case *tcell.EventResize:
		a.Lock()
		a.forceRedraw = true
		a.Unlock()
		if time.Since(a.lastRedraw) < redrawPause {
			if a.redrawTimer != nil {
				a.redrawTimer.Stop()
			}
			a.redrawTimer = time.AfterFunc(redrawPause, func() {
				a.QueueEvent(event)
			})
		}
		a.lastRedraw = time.Now()
		a.draw()
	case *tcell.EventMouse:
		handled, isMouseDownAction := a.fireMouseActions(event)
		if handled {
			a.draw()
		}
		a.lastMouseButtons = event.Buttons()
		if isMouseDownAction {
			a.mouseDownX, a.mouseDownY = event.Position()
		}
	case *tcell.EventError:
		a.err = event
		a.Stop()
	}
}

// fireMouseActions derives mouse actions from event and forwards them to the
// capturing primitive or the root.
func (a *Application) fireMouseActions(event *tcell.EventMouse) (handled, isMouseDownAction bool) {
	fire := func(action MouseAction) {
		switch action {
		case MouseLeftDown, MouseRightDown:
			isMouseDownAction = true
		}

		primitive := a.mouseCapturingPrimitive
		if primitive == nil {
			primitive = a.root
		}
		var capturingPrimitive Primitive
		if primitive != nil {
			var cmd Command
			capturingPrimitive, cmd = primitive.MouseHandler(action, event)
			if a.executeCommand(cmd) {
				handled = true
			}
		}
		a.mouseCapturingPrimitive = capturingPrimitive
	}

	x, y := event.Position()
	buttons := event.Buttons()
	clickMoved := x != a.mouseDownX || y != a.mouseDownY
	buttonChanges := buttons ^ a.lastMouseButtons

	if x != a.lastMouseX || y != a.lastMouseY {
		fire(MouseMove)
		a.lastMouseX = x
		a.lastMouseY = y
	}

	for _, buttonEvent := range []struct {
		button          tcell.ButtonMask
		down, up, click MouseAction
	}{
		{tcell.ButtonPrimary, MouseLeftDown, MouseLeftUp, MouseLeftClick},
		{tcell.ButtonSecondary, MouseRightDown, MouseRightUp, MouseRightClick},
	} {
		if buttonChanges&buttonEvent.button == 0 {
			continue
		}
		if buttons&buttonEvent.button != 0 {
			fire(buttonEvent.down)
			continue
		}
		fire(buttonEvent.up)
		if !clickMoved {
			fire(buttonEvent.click)
		}
	}

	if buttons&tcell.WheelUp != 0 {
		fire(MouseScrollUp)
	}
	if buttons&tcell.WheelDown != 0 {
		fire(MouseScrollDown)
	}

	return handled, isMouseDownAction
}

// Stop finalizes the screen and makes Run return. It is safe to call more
// than once.
func (a *Application) Stop() {
	a.Lock()
	defer a.Unlock()
	screen := a.screen
	if screen == nil {
		return
	}
	screen.Fini()
	a.screen = nil
	close(a.quit)
}

// draw draws the root primitive over the whole screen.
func (a *Application) draw() {
	a.Lock()
	screen := a.screen
	root := a.root
	forceRedraw := a.forceRedraw
	a.forceRedraw = false
	a.Unlock()

	if screen == nil || root == nil {
		return
	}

	width, height := screen.Size()
	root.SetRect(0, 0, width, height)
	if forceRedraw {
		screen.Clear()
	}
	root.Draw(screen)
	screen.Show()
}

// SetRoot sets the root primitive and gives it the focus.
func (a *Application) SetRoot(root Primitive) *Application {
	a.Lock()
	a.root = root
	a.forceRedraw = true
	a.Unlock()

	a.SetFocus(root)
	return a
}

// SetFocus blurs the previously focused primitive and focuses p.
func (a *Application) SetFocus(p Primitive) *Application {
	a.Lock()
	if a.focus != nil {
		a.focus.Blur()
	}
	a.focus = p
	if a.screen != nil {
		a.screen.HideCursor()
	}
	a.Unlock()
	if p != nil {
		p.Focus(func(p Primitive) {
			a.SetFocus(p)
		})
	}
	return a
}

// GetFocus returns the primitive which has the current focus, or nil.
func (a *Application) GetFocus() Primitive {
	a.RLock()
	defer a.RUnlock()
	return a.focus
}

// QueueUpdate runs f on the event loop and returns after f has executed. It
// must not be called from the event loop itself.
func (a *Application) QueueUpdate(f func()) *Application {
	ch := make(chan struct{}, 1)
	select {
	case a.updates <- queuedUpdate{f: f, done: ch}:
	case <-a.quit:
		return a
	}
	select {
	case <-ch:
	case <-a.quit:
	}
	return a
}

// QueueUpdateDraw works like QueueUpdate and redraws the screen after f.
func (a *Application) QueueUpdateDraw(f func()) *Application {
	return a.QueueUpdate(func() {
		f()
		a.draw()
	})
}

// QueueEvent sends an event to the event loop.
func (a *Application) QueueEvent(event tcell.Event) *Application {
	select {
	case a.events <- event:
	case <-a.quit:
	}
	return a
}

// executeCommand runs cmd and reports whether the screen needs a redraw.
func (a *Application) executeCommand(cmd Command) bool {
	if cmd == nil {
		return false
	}

	switch c := cmd.(type) {
	case BatchCommand:
		handled := false
		for _, item := range c {
			if a.executeCommand(item) {
				handled = true
			}
		}
		return handled
	case RedrawCommand:
		return true
	case QuitCommand:
		a.Stop()
		return false
	}
	return false
}
