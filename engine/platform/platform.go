package platform

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/spaghettifunk/arena/engine/core"
)

var startTime = time.Now()

// pending terminal events between two PumpMessages calls
const eventBuffer = 128

// Platform reads terminal input on its own goroutine and feeds it to the
// core input and event systems from PumpMessages, on the frame loop.
type Platform struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
	closed bool
}

func New(screen tcell.Screen) *Platform {
	return &Platform{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
		quit:   make(chan struct{}),
	}
}

// Startup begins polling. The screen must already be initialized.
func (p *Platform) Startup(applicationName string) error {
	p.screen.EnableMouse()
	go p.poll()
	core.LogInfo("%s: terminal platform started", applicationName)
	return nil
}

func (p *Platform) poll() {
	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case p.events <- ev:
		case <-p.quit:
			return
		}
	}
}

func (p *Platform) Shutdown() error {
	if p.closed {
		return nil
	}
	p.closed = true
	close(p.quit)
	p.screen.Fini()
	return nil
}

// PumpMessages handles every pending terminal event. It returns false once
// the user asked to quit with Ctrl-C.
func (p *Platform) PumpMessages() bool {
	for {
		select {
		case ev := <-p.events:
			if !p.handle(ev) {
				return false
			}
		default:
			return true
		}
	}
}

func (p *Platform) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		key, shift, ok := TranslateKey(ev.Key(), ev.Rune(), ev.Modifiers())
		if !ok {
			return true
		}
		// terminals report strokes, not press and release
		if err := core.InputProcessKey(key, true, shift); err != nil {
			core.LogWarn("%s", err)
		}
		if err := core.InputProcessKey(key, false, shift); err != nil {
			core.LogWarn("%s", err)
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		if err := core.EventPost(core.EventContext{
			Type: core.EVENT_CODE_RESIZED,
			Data: &core.SystemEvent{WindowWidth: uint32(w), WindowHeight: uint32(h)},
		}); err != nil {
			core.LogWarn("resize not posted: %s", err)
		}
	case *tcell.EventMouse:
		p.handleMouse(ev)
	}
	return true
}

func (p *Platform) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	if err := core.InputProcessMouseMove(uint16(x), uint16(y)); err != nil {
		core.LogWarn("%s", err)
	}
	buttons := ev.Buttons()
	if err := core.InputProcessButton(core.BUTTON_LEFT, buttons&tcell.Button1 != 0); err != nil {
		core.LogWarn("%s", err)
	}
	if err := core.InputProcessButton(core.BUTTON_RIGHT, buttons&tcell.Button2 != 0); err != nil {
		core.LogWarn("%s", err)
	}

	var scroll int8
	switch {
	case buttons&tcell.WheelUp != 0:
		scroll = 1
	case buttons&tcell.WheelDown != 0:
		scroll = -1
	}
	if scroll != 0 {
		if err := core.InputProcessMouseWheel(scroll); err != nil {
			core.LogWarn("%s", err)
		}
	}
}

// TranslateKey maps a terminal key stroke onto an engine key code. Upper
// case letters and shifted symbols report shift.
func TranslateKey(k tcell.Key, r rune, mod tcell.ModMask) (core.KeyCode, bool, bool) {
	shift := mod&tcell.ModShift != 0
	switch k {
	case tcell.KeyUp:
		return core.KEY_UP, shift, true
	case tcell.KeyDown:
		return core.KEY_DOWN, shift, true
	case tcell.KeyLeft:
		return core.KEY_LEFT, shift, true
	case tcell.KeyRight:
		return core.KEY_RIGHT, shift, true
	case tcell.KeyEscape:
		return core.KEY_ESCAPE, shift, true
	case tcell.KeyEnter:
		return core.KEY_ENTER, shift, true
	case tcell.KeyTab:
		return core.KEY_TAB, shift, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return core.KEY_BACKSPACE, shift, true
	case tcell.KeyRune:
	default:
		return 0, false, false
	}

	switch {
	case r >= 'a' && r <= 'z':
		return core.KEY_A + core.KeyCode(r-'a'), shift, true
	case r >= 'A' && r <= 'Z':
		return core.KEY_A + core.KeyCode(r-'A'), true, true
	case r >= '0' && r <= '9':
		return core.KEY_0 + core.KeyCode(r-'0'), shift, true
	case r == '+' || r == '=':
		return core.KEY_PLUS, r == '+' || shift, true
	case r == '-' || r == '_':
		return core.KEY_MINUS, r == '_' || shift, true
	case r == ' ':
		return core.KEY_SPACE, shift, true
	}
	return 0, false, false
}

// GetAbsoluteTime returns seconds since the process started.
func GetAbsoluteTime() float64 {
	return time.Since(startTime).Seconds()
}

func (p *Platform) Sleep(ms float64) {
	time.Sleep(time.Duration(ms * float64(time.Millisecond)))
}
