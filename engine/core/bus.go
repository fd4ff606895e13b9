package core

import "fmt"

// Bus routes messages between systems through named topics. A topic must be
// registered before anything sends to it; UI sessions treat a missing topic
// as a configuration error.
//
// Single-threaded: topics are sent to during the update phase and drained by
// systems on the following tick.
type Bus struct {
	topics map[string]*Topic
}

func NewBus() *Bus { return &Bus{topics: map[string]*Topic{}} }

// Register creates the mailbox for a topic. Registering the same name twice
// panics, which catches duplicated session wiring at startup.
func (b *Bus) Register(name string) *Topic {
	if _, ok := b.topics[name]; ok {
		panic(fmt.Sprintf("core: topic %q registered twice", name))
	}
	t := &Topic{name: name}
	b.topics[name] = t
	return t
}

// Lookup returns the mailbox for name, if registered.
func (b *Bus) Lookup(name string) (*Topic, bool) {
	t, ok := b.topics[name]
	return t, ok
}

// Topic is an ordered mailbox of messages.
type Topic struct {
	name    string
	pending []any
}

func (t *Topic) Name() string { return t.name }

func (t *Topic) Send(msg any) { t.pending = append(t.pending, msg) }

func (t *Topic) Len() int { return len(t.pending) }

// Drain returns the pending messages in arrival order and empties the
// mailbox.
func (t *Topic) Drain() []any {
	msgs := t.pending
	t.pending = nil
	return msgs
}
