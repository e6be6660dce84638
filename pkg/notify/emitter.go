package notify

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Message wraps an event payload with the topic it was published under,
// so coarse subscribers can still tell contexts apart.
type Message[T any] struct {
	Topic Topic
	Data  T
}

// Subscriber receives messages from an Emitter.
type Subscriber[T any] interface {
	// Receive returns the channel messages arrive on. The channel is
	// closed when the subscriber or the emitter is closed.
	Receive(ctx context.Context) <-chan Message[T]

	// Close unsubscribes and closes the receive channel. Idempotent.
	Close() error
}

type subscriber[T any] struct {
	id     string
	topic  Topic
	ch     chan Message[T]
	mu     sync.RWMutex
	closed bool
}

func (s *subscriber[T]) Receive(ctx context.Context) <-chan Message[T] {
	return s.ch
}

func (s *subscriber[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
	return nil
}

func (s *subscriber[T]) send(msg Message[T]) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}
	select {
	case s.ch <- msg:
		return true
	default:
		return false
	}
}

// Option configures an Emitter.
type Option func(*settings)

type settings struct {
	bufferSize int
}

// WithBufferSize sets the per-subscriber channel buffer. A minimum of 1
// is enforced so sends stay non-blocking.
func WithBufferSize(n int) Option {
	return func(s *settings) {
		s.bufferSize = n
	}
}

// Emitter fans out published messages to topic-matched subscribers.
// Sends are non-blocking: a subscriber whose buffer is full misses the
// message and is dropped from the emitter. All methods are safe for
// concurrent use.
type Emitter[T any] struct {
	subscribers map[string]*subscriber[T]
	bufferSize  int
	closed      bool
	mu          sync.RWMutex
	cleanupWg   sync.WaitGroup
}

// NewEmitter creates an in-memory emitter.
func NewEmitter[T any](opts ...Option) *Emitter[T] {
	s := settings{bufferSize: 8}
	for _, opt := range opts {
		opt(&s)
	}
	return &Emitter[T]{
		subscribers: make(map[string]*subscriber[T]),
		bufferSize:  max(s.bufferSize, 1),
	}
}

// Subscribe registers a listener for the given topic. The subscription
// is cleaned up when ctx is cancelled. Subscribing to a closed emitter
// returns an already-closed subscriber rather than an error.
func (e *Emitter[T]) Subscribe(ctx context.Context, topic Topic) Subscriber[T] {
	e.mu.Lock()
	defer e.mu.Unlock()

	sub := &subscriber[T]{
		id:    uuid.NewString(),
		topic: topic,
		ch:    make(chan Message[T], e.bufferSize),
	}
	if e.closed {
		_ = sub.Close()
		return sub
	}
	e.subscribers[sub.id] = sub

	if ctx.Done() != nil {
		e.cleanupWg.Add(1)
		go func() {
			defer e.cleanupWg.Done()
			<-ctx.Done()
			e.unsubscribe(sub.id)
		}()
	}
	return sub
}

// Publish delivers the payload to every subscriber whose topic matches.
// Publishing with no matching subscribers is a no-op; the only error
// condition is a closed emitter.
func (e *Emitter[T]) Publish(ctx context.Context, topic Topic, data T) error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.closed {
		return ErrEmitterClosed
	}

	msg := Message[T]{Topic: topic, Data: data}
	for id, sub := range e.subscribers {
		if !sub.topic.matches(topic) {
			continue
		}
		if !sub.send(msg) {
			// Drop slow or closed subscribers off the hot path.
			go e.unsubscribe(id)
		}
	}
	return nil
}

// Close shuts the emitter down and closes every subscriber. Idempotent.
func (e *Emitter[T]) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	for _, sub := range e.subscribers {
		_ = sub.Close()
	}
	clear(e.subscribers)
	e.mu.Unlock()

	e.cleanupWg.Wait()
	return nil
}

func (e *Emitter[T]) unsubscribe(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if sub, ok := e.subscribers[id]; ok {
		delete(e.subscribers, id)
		_ = sub.Close()
	}
}
