package service

import (
	"sync"

	"github.com/google/uuid"
	"github.com/tmarsden/taskboard/internal/domain"
)

// TaskFeed is an in-process change feed for task inserts. Publish fans the
// task out to every live subscriber; a subscriber that falls behind its
// buffer misses events rather than blocking the publisher. Events are
// notification-only and never feed back into persisted state.
type TaskFeed struct {
	mu   sync.Mutex
	subs map[string]chan domain.Task
}

// Subscription is a handle to a TaskFeed subscription. Events arrive on C
// until Unsubscribe is called, after which C is closed.
type Subscription struct {
	C <-chan domain.Task

	id   string
	feed *TaskFeed
}

const subscriptionBuffer = 16

// NewTaskFeed creates an empty TaskFeed.
func NewTaskFeed() *TaskFeed {
	return &TaskFeed{subs: make(map[string]chan domain.Task)}
}

// Subscribe registers a new subscriber and returns its subscription handle.
// Callers must Unsubscribe when done to release the channel.
func (f *TaskFeed) Subscribe() *Subscription {
	ch := make(chan domain.Task, subscriptionBuffer)
	id := uuid.NewString()

	f.mu.Lock()
	f.subs[id] = ch
	f.mu.Unlock()

	return &Subscription{C: ch, id: id, feed: f}
}

// Publish delivers the task to every subscriber. Subscribers with full
// buffers are skipped.
func (f *TaskFeed) Publish(task domain.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ch := range f.subs {
		select {
		case ch <- task:
		default:
		}
	}
}

// Unsubscribe removes the subscription from the feed and closes its channel.
// It is safe to call more than once.
func (s *Subscription) Unsubscribe() {
	s.feed.mu.Lock()
	defer s.feed.mu.Unlock()

	if ch, ok := s.feed.subs[s.id]; ok {
		delete(s.feed.subs, s.id)
		close(ch)
	}
}
