package query

import (
	"context"
	"time"
)

// Snapshot holds the state of some cache entries, including their absence.
type Snapshot struct {
	items []snapshotItem
}

type snapshotItem struct {
	key       Key
	present   bool
	value     any
	updatedAt time.Time
	stale     bool
}

// Len returns the number of keys in the snapshot.
func (s Snapshot) Len() int { return len(s.items) }

// Snapshot captures the current state of keys.
func (c *Client) Snapshot(keys ...Key) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot(keys)
}

func (c *Client) snapshot(keys []Key) Snapshot {
	s := Snapshot{items: make([]snapshotItem, 0, len(keys))}
	for _, k := range keys {
		item := snapshotItem{key: k}
		if e, ok := c.entries[k.String()]; ok {
			item.present = true
			item.value = e.value
			item.updatedAt = e.updatedAt
			item.stale = e.stale
		}
		s.items = append(s.items, item)
	}
	return s
}

// Restore puts back every entry of s exactly as it was captured. Entries
// that were absent are removed.
func (c *Client) Restore(s Snapshot) {
	c.mu.Lock()
	for _, item := range s.items {
		if !item.present {
			delete(c.entries, item.key.String())
			continue
		}
		c.entries[item.key.String()] = &entry{
			key:       item.key,
			value:     item.value,
			updatedAt: item.updatedAt,
			stale:     item.stale,
		}
	}
	c.mu.Unlock()
	for _, item := range s.items {
		c.publish(Event{EventRolledBack, item.key})
	}
}

// Mutation describes a remote write of variables V answering R, and how it
// changes the cache before the answer is known.
type Mutation[V, R any] struct {
	// Name is used in logs.
	Name string
	// Keys lists the entries changed optimistically.
	Keys func(V) []Key
	// Apply returns the optimistic value of key given its current value
	// (nil when absent). Returning nil leaves the entry untouched.
	Apply func(v V, key Key, old any) any
	// Fn performs the remote write.
	Fn func(context.Context, V) (R, error)
	// Invalidates lists the prefixes to mark stale once Fn succeeded.
	Invalidates func(V, R) []Key
}

// Mutate runs m with v.
//
// The entries named by m.Keys are captured, then changed by m.Apply before
// m.Fn is called. When m.Fn fails the entries are restored to the captured
// state and its error is returned unchanged. When it succeeds the
// optimistic state is kept and the prefixes of m.Invalidates are marked
// stale. Nothing is retried.
func Mutate[V, R any](ctx context.Context, c *Client, m Mutation[V, R], v V) (R, error) {
	var keys []Key
	if m.Keys != nil {
		keys = m.Keys(v)
	}

	c.mu.Lock()
	snap := c.snapshot(keys)
	var changed []Key
	if m.Apply != nil {
		for _, k := range keys {
			var old any
			if e, ok := c.entries[k.String()]; ok {
				old = e.value
			}
			if next := m.Apply(v, k, old); next != nil {
				c.set(k, next)
				changed = append(changed, k)
			}
		}
	}
	c.mu.Unlock()
	for _, k := range changed {
		c.publish(Event{EventUpdated, k})
	}

	r, err := m.Fn(ctx, v)
	if err != nil {
		c.opts.Logger.Info("mutation failed, rolling back", "mutation", m.Name, "keys", len(keys), "error", err)
		c.Restore(snap)
		return r, err
	}

	if m.Invalidates != nil {
		for _, p := range m.Invalidates(v, r) {
			c.Invalidate(p)
		}
	}
	c.opts.Logger.Debug("mutation applied", "mutation", m.Name)
	return r, nil
}
