package core

import (
	"sync"
	"sync/atomic"

	"github.com/spaghettifunk/arena/engine/containers"
)

// System internal event codes. Application should use codes beyond 255.
type EventCode uint16

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01
	// Keyboard key pressed. Data: *KeyEvent
	EVENT_CODE_KEY_PRESSED EventCode = 0x02
	// Keyboard key released. Data: *KeyEvent
	EVENT_CODE_KEY_RELEASED EventCode = 0x03
	// Mouse button pressed. Data: *MouseEvent
	EVENT_CODE_BUTTON_PRESSED EventCode = 0x04
	// Mouse button released. Data: *MouseEvent
	EVENT_CODE_BUTTON_RELEASED EventCode = 0x05
	// Mouse moved. Data: *MouseEvent
	EVENT_CODE_MOUSE_MOVED EventCode = 0x06
	// Mouse wheel. Data: *MouseEvent
	EVENT_CODE_MOUSE_WHEEL EventCode = 0x07
	// Resized/resolution changed from the OS. Data: *SystemEvent
	EVENT_CODE_RESIZED EventCode = 0x08
	// Configuration file changed on disk. Data: *ReloadEvent
	EVENT_CODE_CONFIG_RELOADED EventCode = 0x09
	// A texture changed on disk. Data: *ReloadEvent
	EVENT_CODE_ASSET_RELOADED EventCode = 0x0A

	MAX_EVENT_CODE EventCode = 0xFF
)

// Application event codes.
const (
	// The ball went through a rim. Data: *ArenaEvent
	EVENT_CODE_SWISH EventCode = MAX_EVENT_CODE + 1 + iota
	// A shot completed and the score changed. Data: *ArenaEvent
	EVENT_CODE_SCORE
)

// This should be more than enough codes...
const MAX_MESSAGE_CODES = 512

// Pending events posted from outside the frame tick.
const EVENT_QUEUE_CAPACITY = 256

type EventContext struct {
	Type EventCode
	Data interface{}
}

type KeyEvent struct {
	KeyCode KeyCode
	Shift   bool
}

type MouseEvent struct {
	Button Button
	PosX   uint16
	PosY   uint16
	Scroll int8
}

type SystemEvent struct {
	WindowWidth  uint32
	WindowHeight uint32
}

type ReloadEvent struct {
	Path string
}

type ArenaEvent struct {
	Side  int
	Score int
}

// FnOnEvent is invoked for every fired event matching the registered code.
type FnOnEvent func(context EventContext)

// ListenerID identifies a registration so it can be removed later.
type ListenerID uint32

type registeredEvent struct {
	id       ListenerID
	callback FnOnEvent
}

type eventSystemState struct {
	registered [MAX_MESSAGE_CODES][]*registeredEvent
	nextID     ListenerID
	queue      *containers.RingQueue[EventContext]
	mu         sync.Mutex
}

// eventState is swapped atomically so EventPost can race with shutdown.
var eventState atomic.Pointer[eventSystemState]

// EventSystemInitialize (re)creates the event system, dropping all listeners.
func EventSystemInitialize() bool {
	eventState.Store(&eventSystemState{
		queue: containers.NewRingQueue[EventContext](EVENT_QUEUE_CAPACITY),
	})
	return true
}

func EventSystemShutdown() error {
	state := eventState.Swap(nil)
	if state == nil {
		return ErrNotInitialized
	}
	for i := range state.registered {
		state.registered[i] = nil
	}
	return nil
}

// EventRegister adds a listener for the code. Returns 0 when the system is
// not initialized or the code is out of range.
func EventRegister(code EventCode, onEvent FnOnEvent) ListenerID {
	state := eventState.Load()
	if state == nil || int(code) >= MAX_MESSAGE_CODES || onEvent == nil {
		return 0
	}
	state.nextID++
	state.registered[code] = append(state.registered[code], &registeredEvent{
		id:       state.nextID,
		callback: onEvent,
	})
	return state.nextID
}

// EventUnregister removes a listener previously returned by EventRegister.
func EventUnregister(code EventCode, id ListenerID) bool {
	state := eventState.Load()
	if state == nil || int(code) >= MAX_MESSAGE_CODES {
		return false
	}
	events := state.registered[code]
	for i, e := range events {
		if e.id == id {
			state.registered[code] = append(events[:i], events[i+1:]...)
			return true
		}
	}
	return false
}

// EventFire dispatches the event immediately to every listener of its code.
// Returns false when nothing is registered for it.
func EventFire(context EventContext) bool {
	state := eventState.Load()
	if state == nil || int(context.Type) >= MAX_MESSAGE_CODES {
		return false
	}
	events := state.registered[context.Type]
	if len(events) == 0 {
		return false
	}
	for _, e := range events {
		e.callback(context)
	}
	return true
}

// EventPost queues an event for the next EventDispatchQueued call. It is the
// only event function safe to call from other goroutines, including while
// the system shuts down.
func EventPost(context EventContext) error {
	state := eventState.Load()
	if state == nil {
		return ErrNotInitialized
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	return state.queue.Enqueue(context)
}

// EventDispatchQueued fires every queued event in FIFO order and returns how
// many were dispatched.
func EventDispatchQueued() int {
	state := eventState.Load()
	if state == nil {
		return 0
	}
	dispatched := 0
	for {
		state.mu.Lock()
		context, err := state.queue.Dequeue()
		state.mu.Unlock()
		if err != nil {
			return dispatched
		}
		EventFire(context)
		dispatched++
	}
}
