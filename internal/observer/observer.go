// Package observer provides a minimal subscribe/notify primitive used by the
// process-wide state holders (auth, theme, router).
//
// A Subject is owned by the Bubble Tea event loop. It is not safe for
// concurrent use; every Notify happens on the goroutine that runs Update.
package observer

// Subject fans a value out to its subscribers in subscription order.
type Subject[T any] struct {
	next int
	subs []subscription[T]
}

type subscription[T any] struct {
	id int
	fn func(T)
}

// Subscribe registers fn and returns a function that removes it. The returned
// function is safe to call more than once.
func (s *Subject[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	s.next++
	id := s.next
	s.subs = append(s.subs, subscription[T]{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Notify calls every subscriber with v. Subscribers added or removed during
// Notify take effect on the next call.
func (s *Subject[T]) Notify(v T) {
	subs := append([]subscription[T](nil), s.subs...)
	for _, sub := range subs {
		sub.fn(v)
	}
}

// Len returns the number of live subscriptions.
func (s *Subject[T]) Len() int {
	return len(s.subs)
}
