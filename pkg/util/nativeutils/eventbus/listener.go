// Package eventbus implements the fire-and-forget publication
// collaborator the mempool calls through its Bus interface (spec
// section 6, `bus.message(name, ...args)`).
//
// Adapted from the teacher's own nativeutils/eventbus listener: the
// Listener/CallbackListener contract survives, but the wire-message
// encoding and ring-buffer streaming machinery built around it is
// dropped — nothing here serializes events onto the network wire, so
// that concern stays with the p2p layer rather than this package.
package eventbus

import (
	"math/rand"
	"sync"

	logger "github.com/sirupsen/logrus"
)

var logEB = logger.WithField("process", "eventbus")

// Event is what a subscriber receives: the topic it was notified for
// and the args the publisher passed to Publish.
type Event struct {
	Topic string
	Args  []interface{}
}

// Listener is notified of every event published on a topic it
// subscribed to.
type Listener interface {
	Notify(Event)
}

// CallbackListener subscribes using a plain callback, dispatched on its
// own goroutine so a slow subscriber never blocks the publisher.
type CallbackListener struct {
	callback func(Event)
}

// NewCallbackListener creates a callback-based subscriber.
func NewCallbackListener(callback func(Event)) *CallbackListener {
	return &CallbackListener{callback: callback}
}

// Notify dispatches e to the callback on its own goroutine. A panicking
// subscriber is recovered and logged rather than taking down the
// publisher's goroutine.
func (c *CallbackListener) Notify(e Event) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logEB.WithField("topic", e.Topic).Warnln("notifying subscriber failed")
			}
		}()
		c.callback(e)
	}()
}

// idListener pairs a Listener with the subscription id Subscribe handed
// back, so Unsubscribe can find it again.
type idListener struct {
	Listener
	id uint32
}

// topicListeners is the set of subscribers registered for a single
// topic.
type topicListeners struct {
	sync.RWMutex
	dispatchers []idListener
}

func newTopicListeners() *topicListeners {
	return &topicListeners{dispatchers: make([]idListener, 0)}
}

func (t *topicListeners) forward(e Event) {
	t.RLock()
	defer t.RUnlock()
	for _, d := range t.dispatchers {
		d.Notify(e)
	}
}

func (t *topicListeners) store(l Listener) uint32 {
	h := idListener{Listener: l, id: rand.Uint32()}
	t.Lock()
	defer t.Unlock()
	t.dispatchers = append(t.dispatchers, h)
	return h.id
}

func (t *topicListeners) delete(id uint32) bool {
	t.Lock()
	defer t.Unlock()
	for i, h := range t.dispatchers {
		if h.id == id {
			t.dispatchers = append(t.dispatchers[:i], t.dispatchers[i+1:]...)
			return true
		}
	}
	logEB.WithField("id", id).Warnln("unsubscribe: listener id not found")
	return false
}
