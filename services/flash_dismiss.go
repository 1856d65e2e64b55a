package services

import (
	"sync"
	"time"
)

const DefaultFlashDismissAfter = 5 * time.Second

// FlashElement is a rendered flash message that can fade out.
type FlashElement interface {
	// Fade starts the fade transition (adds "fade", removes "show").
	Fade()
	// OnTransitionEnd registers fn to run once the fade transition finishes.
	OnTransitionEnd(fn func())
	Remove()
}

type Timer interface {
	Stop() bool
}

type FlashDismisser struct {
	Delay     time.Duration
	AfterFunc func(d time.Duration, fn func()) Timer
}

func NewFlashDismisser(delay time.Duration) *FlashDismisser {
	if delay <= 0 {
		delay = DefaultFlashDismissAfter
	}
	return &FlashDismisser{
		Delay: delay,
		AfterFunc: func(d time.Duration, fn func()) Timer {
			return time.AfterFunc(d, fn)
		},
	}
}

// DelayMS is the delay handed to rendered pages.
func (d *FlashDismisser) DelayMS() int64 {
	return d.Delay.Milliseconds()
}

// Schedule arms one timer per element. On expiry the element fades and is
// removed only when its transition ends.
func (d *FlashDismisser) Schedule(elements []FlashElement) []Timer {
	timers := make([]Timer, 0, len(elements))
	for _, el := range elements {
		el := el
		timers = append(timers, d.AfterFunc(d.Delay, func() {
			el.Fade()
			el.OnTransitionEnd(el.Remove)
		}))
	}
	return timers
}

// FlashNode is an in-memory FlashElement used when no document is attached,
// e.g. when replaying a page in tests.
type FlashNode struct {
	ID string

	mu      sync.Mutex
	classes map[string]bool
	onEnd   []func()
	removed bool
	fading  bool
}

func NewFlashNode(id string) *FlashNode {
	return &FlashNode{ID: id, classes: map[string]bool{"alert": true, "show": true}}
}

func (n *FlashNode) Fade() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.classes["fade"] = true
	delete(n.classes, "show")
	n.fading = true
}

func (n *FlashNode) OnTransitionEnd(fn func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onEnd = append(n.onEnd, fn)
}

// EndTransition fires the registered transitionend listeners.
func (n *FlashNode) EndTransition() {
	n.mu.Lock()
	if !n.fading {
		n.mu.Unlock()
		return
	}
	listeners := n.onEnd
	n.onEnd = nil
	n.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

func (n *FlashNode) Remove() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.removed = true
}

func (n *FlashNode) HasClass(c string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.classes[c]
}

func (n *FlashNode) Removed() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.removed
}
