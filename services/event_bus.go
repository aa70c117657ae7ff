package services

import "sync"

// Topics are published after each store write. Observers use them to refresh
// views; they are not a durability mechanism.
const (
	TopicLogsUpdated  = "logs.updated"
	TopicPlansUpdated = "plans.updated"
	TopicMealsUpdated = "meals.updated"
)

// EventBus is an in-process subscribe/notify signal shared by the stores.
// It is injected into consumers rather than living as an ambient global.
type EventBus struct {
	mu   sync.RWMutex
	subs map[string][]func()
	all  []func(topic string)
}

func NewEventBus() *EventBus {
	return &EventBus{subs: make(map[string][]func())}
}

func (b *EventBus) Subscribe(topic string, fn func()) {
	b.mu.Lock()
	b.subs[topic] = append(b.subs[topic], fn)
	b.mu.Unlock()
}

// SubscribeAll registers an observer for every topic, e.g. the realtime hub.
func (b *EventBus) SubscribeAll(fn func(topic string)) {
	b.mu.Lock()
	b.all = append(b.all, fn)
	b.mu.Unlock()
}

func (b *EventBus) Publish(topic string) {
	b.mu.RLock()
	subs := b.subs[topic]
	all := b.all
	b.mu.RUnlock()
	for _, fn := range subs {
		fn()
	}
	for _, fn := range all {
		fn(topic)
	}
}
