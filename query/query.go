// Package query is a request cache indexed by keys. It serves cached
// responses while they are fresh, shares concurrent fetches of the same key,
// marks entries stale on invalidation, and supports optimistic mutations
// that are rolled back when the remote write fails (see Mutate).
//
// Cached values are shared between readers: callers must treat them as
// immutable and build new values instead of modifying them in place.
package query

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/etnz/wealthdesk/logging"
	"golang.org/x/sync/singleflight"
)

// Key identifies a cached response, e.g. Key{"legal_documents", 12}.
type Key []any

// String returns the cache index of the key.
func (k Key) String() string {
	parts := make([]string, len(k))
	for i, p := range k {
		parts[i] = fmt.Sprint(p)
	}
	return strings.Join(parts, "/")
}

// HasPrefix reports whether k starts with every part of p.
func (k Key) HasPrefix(p Key) bool {
	if len(p) > len(k) {
		return false
	}
	for i := range p {
		if fmt.Sprint(k[i]) != fmt.Sprint(p[i]) {
			return false
		}
	}
	return true
}

// EventKind tells what happened to a cache entry.
type EventKind int

const (
	EventUpdated EventKind = iota
	EventInvalidated
	EventRolledBack
	EventRemoved
)

func (k EventKind) String() string {
	switch k {
	case EventUpdated:
		return "updated"
	case EventInvalidated:
		return "invalidated"
	case EventRolledBack:
		return "rolled-back"
	case EventRemoved:
		return "removed"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is sent to subscribers on every cache change.
type Event struct {
	Kind EventKind
	Key  Key
}

// Options configures a Client.
type Options struct {
	// StaleTime is how long a fetched value is served without refetching.
	// Zero means values are stale as soon as they are stored.
	StaleTime time.Duration
	Logger    *slog.Logger
	// IsCanceled recognises errors caused by a cancelled request. Defaults
	// to errors.Is(err, context.Canceled).
	IsCanceled func(error) bool
	// Now defaults to time.Now.
	Now func() time.Time
}

type entry struct {
	key       Key
	value     any
	updatedAt time.Time
	stale     bool
}

// Client is the cache. It is safe for concurrent use.
type Client struct {
	opts Options

	mu      sync.Mutex
	entries map[string]*entry
	group   singleflight.Group
	subs    map[int]chan Event
	nextSub int
}

// NewClient returns an empty cache.
func NewClient(opts Options) *Client {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.IsCanceled == nil {
		opts.IsCanceled = func(err error) bool { return errors.Is(err, context.Canceled) }
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Client{
		opts:    opts,
		entries: make(map[string]*entry),
		subs:    make(map[int]chan Event),
	}
}

// Get returns the cached value of key, fresh or stale.
func (c *Client) Get(key Key) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key.String()]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// GetAs is Get with a type assertion. ok is false when the entry is missing
// or holds another type.
func GetAs[T any](c *Client, key Key) (v T, ok bool) {
	raw, found := c.Get(key)
	if !found {
		return v, false
	}
	v, ok = raw.(T)
	return v, ok
}

// Set stores value as a fresh entry.
func (c *Client) Set(key Key, value any) {
	c.mu.Lock()
	c.set(key, value)
	c.mu.Unlock()
	c.publish(Event{EventUpdated, key})
}

func (c *Client) set(key Key, value any) {
	c.entries[key.String()] = &entry{key: key, value: value, updatedAt: c.opts.Now()}
}

// Remove drops the entry of key.
func (c *Client) Remove(key Key) {
	c.mu.Lock()
	_, ok := c.entries[key.String()]
	delete(c.entries, key.String())
	c.mu.Unlock()
	if ok {
		c.publish(Event{EventRemoved, key})
	}
}

// Keys returns the keys of every entry starting with prefix.
func (c *Client) Keys(prefix Key) []Key {
	c.mu.Lock()
	defer c.mu.Unlock()
	var keys []Key
	for _, e := range c.entries {
		if e.key.HasPrefix(prefix) {
			keys = append(keys, e.key)
		}
	}
	return keys
}

// Invalidate marks every entry starting with prefix as stale, so that the
// next Fetch refetches it. It returns the number of entries marked.
func (c *Client) Invalidate(prefix Key) int {
	c.mu.Lock()
	var marked []Key
	for _, e := range c.entries {
		if e.key.HasPrefix(prefix) {
			e.stale = true
			marked = append(marked, e.key)
		}
	}
	c.mu.Unlock()
	for _, k := range marked {
		c.publish(Event{EventInvalidated, k})
	}
	return len(marked)
}

// IsStale reports whether key must be refetched: missing, invalidated or
// older than StaleTime.
func (c *Client) IsStale(key Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key.String()]
	return !ok || c.isStale(e)
}

func (c *Client) isStale(e *entry) bool {
	return e.stale || c.opts.Now().Sub(e.updatedAt) >= c.opts.StaleTime
}

// Subscribe returns a channel receiving every cache event, and a function
// to stop the subscription. Events are dropped when the channel buffer is
// full.
func (c *Client) Subscribe(buffer int) (<-chan Event, func()) {
	ch := make(chan Event, buffer)
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = ch
	c.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
			close(ch)
		})
	}
}

func (c *Client) publish(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ch := range c.subs {
		select {
		case ch <- ev:
		default:
			c.opts.Logger.Warn("cache event dropped", "event", ev.Kind.String(), "key", ev.Key.String())
		}
	}
}

// Fetch returns the value of key, calling fn when the cached value is
// stale. Concurrent fetches of the same key share one call of fn, run with
// the context of the caller that started it.
//
// A fetch cancelled through its context is neither a failure nor an
// update: it returns ok=false and a nil error, and the cache is untouched.
// A caller that joined a shared call cancelled by someone else fetches
// again with its own context.
func Fetch[T any](ctx context.Context, c *Client, key Key, fn func(context.Context) (T, error)) (value T, ok bool, err error) {
	k := key.String()
	for {
		c.mu.Lock()
		e, found := c.entries[k]
		fresh := found && !c.isStale(e)
		c.mu.Unlock()
		if fresh {
			if v, isT := e.value.(T); isT {
				return v, true, nil
			}
		}

		var started bool
		ch := c.group.DoChan(k, func() (any, error) {
			started = true
			v, err := fn(ctx)
			if err != nil {
				return nil, err
			}
			c.mu.Lock()
			c.set(key, v)
			c.mu.Unlock()
			c.publish(Event{EventUpdated, key})
			return v, nil
		})

		var res singleflight.Result
		select {
		case <-ctx.Done():
			c.opts.Logger.Debug("fetch cancelled", "key", k)
			return value, false, nil
		case res = <-ch:
		}

		switch {
		case res.Err == nil:
			value, ok = res.Val.(T)
			return value, ok, nil
		case ctx.Err() != nil:
			c.opts.Logger.Debug("fetch cancelled", "key", k)
			return value, false, nil
		case c.opts.IsCanceled(res.Err) && !started:
			c.opts.Logger.Debug("shared fetch cancelled, fetching again", "key", k)
			continue
		case c.opts.IsCanceled(res.Err):
			c.opts.Logger.Debug("fetch cancelled", "key", k)
			return value, false, nil
		}
		c.opts.Logger.Info("fetch failed", "key", k, "error", res.Err)
		return value, false, res.Err
	}
}
