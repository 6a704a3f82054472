// Package flux provides typed broadcast slots used to announce events (such as
// "pods fetched") to any number of subscribers.
package flux

import "sync"

// Subscription identifies a handler registered on an Action. The zero value
// identifies nothing.
type Subscription struct {
	id uint64
}

type subscriber[T any] struct {
	id      uint64
	handler func(T)
}

// Action is a broadcast slot for payloads of type T.
//
// Publish calls every current subscriber synchronously, in subscription
// order. Nothing is buffered: publishing with no subscribers is a no-op and
// late subscribers never see earlier payloads.
type Action[T any] struct {
	mu          sync.Mutex
	lastID      uint64
	subscribers []subscriber[T]
}

// NewAction creates an action with no subscribers
func NewAction[T any]() *Action[T] {
	return &Action[T]{}
}

// Subscribe registers handler and returns its token. A nil handler is not
// registered and yields the zero Subscription.
func (a *Action[T]) Subscribe(handler func(T)) Subscription {
	if handler == nil {
		return Subscription{}
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.lastID++
	a.subscribers = append(a.subscribers, subscriber[T]{id: a.lastID, handler: handler})
	return Subscription{id: a.lastID}
}

// Unsubscribe removes the handler registered under sub. Unknown tokens are ignored.
func (a *Action[T]) Unsubscribe(sub Subscription) {
	if sub.id == 0 {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	for i, s := range a.subscribers {
		if s.id == sub.id {
			a.subscribers = append(a.subscribers[:i:i], a.subscribers[i+1:]...)
			return
		}
	}
}

// Publish delivers payload to all current subscribers. Handlers run on the
// caller's goroutine, so a slow handler delays the ones after it.
func (a *Action[T]) Publish(payload T) {
	a.mu.Lock()
	subscribers := make([]subscriber[T], len(a.subscribers))
	copy(subscribers, a.subscribers)
	a.mu.Unlock()

	for _, s := range subscribers {
		s.handler(payload)
	}
}

// Len returns the number of current subscribers
func (a *Action[T]) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.subscribers)
}
