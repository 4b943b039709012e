package query

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type record struct {
	ID   int
	Name string
}

func without(list []record, id int) []record {
	out := make([]record, 0, len(list))
	for _, r := range list {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}

func TestKey(t *testing.T) {
	k := Key{"legal_documents", "product_owner", 12}
	if got, want := k.String(), "legal_documents/product_owner/12"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	tests := []struct {
		prefix Key
		want   bool
	}{
		{Key{}, true},
		{Key{"legal_documents"}, true},
		{Key{"legal_documents", "product_owner", 12}, true},
		{Key{"legal_documents", "product_owner", "12"}, true},
		{Key{"legal_documents", "product_owner", 13}, false},
		{Key{"scheduled_transactions"}, false},
		{Key{"legal_documents", "product_owner", 12, "x"}, false},
	}
	for _, tt := range tests {
		if got := k.HasPrefix(tt.prefix); got != tt.want {
			t.Errorf("HasPrefix(%v) = %v, want %v", tt.prefix, got, tt.want)
		}
	}
}

func TestFetch_FreshAndStale(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	c := NewClient(Options{StaleTime: time.Minute, Now: func() time.Time { return now }})
	key := Key{"funds"}
	var calls int
	fetch := func(context.Context) ([]record, error) {
		calls++
		return []record{{ID: calls}}, nil
	}
	ctx := context.Background()

	got, ok, err := Fetch(ctx, c, key, fetch)
	if err != nil || !ok {
		t.Fatalf("Fetch() = %v, %v, %v", got, ok, err)
	}
	if _, _, err := Fetch(ctx, c, key, fetch); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("fresh value refetched: calls = %d, want 1", calls)
	}

	now = now.Add(2 * time.Minute)
	if !c.IsStale(key) {
		t.Errorf("IsStale() = false after StaleTime")
	}
	got, _, _ = Fetch(ctx, c, key, fetch)
	if calls != 2 || got[0].ID != 2 {
		t.Errorf("stale value not refetched: calls = %d, got %v", calls, got)
	}

	c.Invalidate(Key{"funds"})
	if !c.IsStale(key) {
		t.Errorf("IsStale() = false after Invalidate")
	}
	// invalidated entries are still served by Get
	if _, ok := c.Get(key); !ok {
		t.Errorf("Get() after Invalidate: entry missing")
	}
	Fetch(ctx, c, key, fetch)
	if calls != 3 {
		t.Errorf("invalidated value not refetched: calls = %d, want 3", calls)
	}
}

func TestFetch_Canceled(t *testing.T) {
	c := NewClient(Options{StaleTime: time.Minute})
	key := Key{"client_groups"}
	c.Set(key, []record{{ID: 1}})
	c.Invalidate(key)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	got, ok, err := Fetch(ctx, c, key, func(ctx context.Context) ([]record, error) {
		return nil, fmt.Errorf("get: %w", ctx.Err())
	})
	if err != nil {
		t.Errorf("Fetch() error = %v, want nil for a cancelled request", err)
	}
	if ok || got != nil {
		t.Errorf("Fetch() = %v, %v, want nil, false", got, ok)
	}
	cached, _ := GetAs[[]record](c, key)
	if !reflect.DeepEqual(cached, []record{{ID: 1}}) {
		t.Errorf("cache changed by a cancelled fetch: %v", cached)
	}
}

func TestFetch_Error(t *testing.T) {
	c := NewClient(Options{})
	boom := errors.New("boom")
	_, ok, err := Fetch(context.Background(), c, Key{"x"}, func(context.Context) (int, error) { return 0, boom })
	if !errors.Is(err, boom) || ok {
		t.Errorf("Fetch() = %v, %v, want boom, false", ok, err)
	}
	if _, found := c.Get(Key{"x"}); found {
		t.Errorf("failed fetch stored a value")
	}
}

func TestFetch_SharesInflight(t *testing.T) {
	c := NewClient(Options{StaleTime: time.Minute})
	release := make(chan struct{})
	var calls atomic.Int32
	fetch := func(context.Context) (int, error) {
		calls.Add(1)
		<-release
		return 42, nil
	}

	const n = 5
	var wg sync.WaitGroup
	results := make([]int, n)
	started := make(chan struct{}, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			started <- struct{}{}
			v, _, _ := Fetch(context.Background(), c, Key{"portfolios"}, fetch)
			results[i] = v
		}()
	}
	for range n {
		<-started
	}
	// let every goroutine reach Fetch before the call completes
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("fetch called %d times, want 1", got)
	}
	for i, v := range results {
		if v != 42 {
			t.Errorf("results[%d] = %d, want 42", i, v)
		}
	}
}

func TestFetch_JoinerOutlivesCanceledCall(t *testing.T) {
	c := NewClient(Options{StaleTime: time.Minute})
	key := Key{"client_groups"}
	entered := make(chan struct{})
	var calls atomic.Int32
	fetch := func(ctx context.Context) (int, error) {
		if calls.Add(1) == 1 {
			close(entered)
			<-ctx.Done()
			return 0, fmt.Errorf("get: %w", ctx.Err())
		}
		return 7, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		v, ok, err := Fetch(ctx, c, key, fetch)
		if v != 0 || ok || err != nil {
			t.Errorf("cancelled Fetch() = %v, %v, %v, want 0, false, nil", v, ok, err)
		}
	}()
	<-entered

	type result struct {
		v   int
		ok  bool
		err error
	}
	joined := make(chan result, 1)
	go func() {
		v, ok, err := Fetch(context.Background(), c, key, fetch)
		joined <- result{v, ok, err}
	}()
	// let the second caller join the running call
	time.Sleep(20 * time.Millisecond)
	cancel()

	got := <-joined
	<-firstDone
	if got.v != 7 || !got.ok || got.err != nil {
		t.Errorf("Fetch() with a live context = %v, %v, %v, want 7, true, nil", got.v, got.ok, got.err)
	}
	if v, _ := GetAs[int](c, key); v != 7 {
		t.Errorf("cached value = %v, want 7", v)
	}
}

func deleteMutation(c *Client, key Key, fn func(context.Context, int) (struct{}, error)) Mutation[int, struct{}] {
	return Mutation[int, struct{}]{
		Name: "delete",
		Keys: func(int) []Key { return []Key{key} },
		Apply: func(id int, _ Key, old any) any {
			list, _ := old.([]record)
			return without(list, id)
		},
		Fn:          fn,
		Invalidates: func(int, struct{}) []Key { return []Key{key} },
	}
}

func TestMutate_OptimisticDeleteRolledBack(t *testing.T) {
	c := NewClient(Options{StaleTime: time.Minute})
	key := Key{"legal_documents", "product_owner", 7}
	initial := []record{{1, "Will"}, {2, "EPA"}, {3, "LPOA P&F"}}
	c.Set(key, initial)

	inflight := make(chan struct{})
	reject := make(chan error)
	m := deleteMutation(c, key, func(context.Context, int) (struct{}, error) {
		close(inflight)
		return struct{}{}, <-reject
	})

	done := make(chan error)
	go func() {
		_, err := Mutate(context.Background(), c, m, 1)
		done <- err
	}()

	<-inflight
	during, _ := GetAs[[]record](c, key)
	if len(during) != 2 {
		t.Errorf("during the request: %d entries, want 2", len(during))
	}

	boom := errors.New("500 Internal Server Error")
	reject <- boom
	if err := <-done; err != boom {
		t.Errorf("Mutate() error = %v, want the raw error %v", err, boom)
	}
	after, _ := GetAs[[]record](c, key)
	if !reflect.DeepEqual(after, initial) {
		t.Errorf("after rollback = %v, want %v", after, initial)
	}
}

func TestMutate_Success(t *testing.T) {
	c := NewClient(Options{StaleTime: time.Minute})
	key := Key{"scheduled_transactions"}
	c.Set(key, []record{{1, "a"}, {2, "b"}})
	m := deleteMutation(c, key, func(context.Context, int) (struct{}, error) { return struct{}{}, nil })

	if _, err := Mutate(context.Background(), c, m, 2); err != nil {
		t.Fatal(err)
	}
	got, _ := GetAs[[]record](c, key)
	if !reflect.DeepEqual(got, []record{{1, "a"}}) {
		t.Errorf("after success = %v", got)
	}
	if !c.IsStale(key) {
		t.Errorf("entry not invalidated after success")
	}
}

func TestMutate_EmptyAndAbsentCollections(t *testing.T) {
	c := NewClient(Options{})
	empty := Key{"legal_documents", "product_owner", 1}
	absent := Key{"legal_documents", "product_owner", 2}
	c.Set(empty, []record{})

	m := Mutation[record, record]{
		Keys: func(record) []Key { return []Key{empty, absent} },
		Apply: func(r record, _ Key, old any) any {
			list, _ := old.([]record)
			return append(append([]record(nil), list...), r)
		},
		Fn: func(context.Context, record) (record, error) { return record{}, errors.New("rejected") },
	}
	if _, err := Mutate(context.Background(), c, m, record{-1, "new"}); err == nil {
		t.Fatal("Mutate() error = nil")
	}
	got, ok := GetAs[[]record](c, empty)
	if !ok || len(got) != 0 {
		t.Errorf("empty collection after rollback = %v, %v, want [], true", got, ok)
	}
	if _, ok := c.Get(absent); ok {
		t.Errorf("absent entry exists after rollback")
	}
}

func TestMutate_ConcurrentSnapshots(t *testing.T) {
	c := NewClient(Options{})
	keyA := Key{"client_groups", 1}
	keyB := Key{"client_groups", 2}
	c.Set(keyA, []record{{1, "a"}, {2, "b"}})
	c.Set(keyB, []record{{1, "x"}, {2, "y"}})

	failA := deleteMutation(c, keyA, func(context.Context, int) (struct{}, error) { return struct{}{}, errors.New("rejected") })
	okB := deleteMutation(c, keyB, func(context.Context, int) (struct{}, error) { return struct{}{}, nil })

	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); Mutate(context.Background(), c, failA, 1) }()
	go func() { defer wg.Done(); Mutate(context.Background(), c, okB, 1) }()
	wg.Wait()

	a, _ := GetAs[[]record](c, keyA)
	b, _ := GetAs[[]record](c, keyB)
	if len(a) != 2 {
		t.Errorf("rejected mutation not rolled back: %v", a)
	}
	if !reflect.DeepEqual(b, []record{{2, "y"}}) {
		t.Errorf("successful mutation affected by the other rollback: %v", b)
	}
}

func TestSubscribe(t *testing.T) {
	c := NewClient(Options{})
	events, cancel := c.Subscribe(16)
	key := Key{"funds"}
	m := deleteMutation(c, key, func(context.Context, int) (struct{}, error) { return struct{}{}, errors.New("no") })
	c.Set(key, []record{{1, "a"}})
	Mutate(context.Background(), c, m, 1)
	c.Remove(key)
	cancel()

	var kinds []EventKind
	for ev := range events {
		kinds = append(kinds, ev.Kind)
	}
	want := []EventKind{EventUpdated, EventUpdated, EventRolledBack, EventRemoved}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("events = %v, want %v", kinds, want)
	}
}

func TestSnapshotRestore(t *testing.T) {
	c := NewClient(Options{StaleTime: time.Minute})
	present, absent := Key{"client_groups"}, Key{"funds"}
	c.Set(present, []record{{1, "a"}})

	snap := c.Snapshot(present, absent)
	if snap.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", snap.Len())
	}
	c.Set(present, []record{})
	c.Set(absent, []record{{2, "b"}})
	c.Restore(snap)

	if got, _ := GetAs[[]record](c, present); !reflect.DeepEqual(got, []record{{1, "a"}}) {
		t.Errorf("restored %v = %v, want the captured list", present, got)
	}
	if _, ok := c.Get(absent); ok {
		t.Errorf("%v was absent when captured and must be removed", absent)
	}
}
