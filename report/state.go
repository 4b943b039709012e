package report

import (
	"maps"
	"slices"
	"sync"

	"github.com/etnz/wealthdesk"
)

// StateEventKind tells which part of a State changed.
type StateEventKind int

const (
	ProductsChanged StateEventKind = iota
	DateChanged
	IRRChanged
	TotalChanged
	LoadingChanged
	ErrorChanged
)

func (k StateEventKind) String() string {
	switch k {
	case ProductsChanged:
		return "products"
	case DateChanged:
		return "date"
	case IRRChanged:
		return "irr"
	case TotalChanged:
		return "total"
	case LoadingChanged:
		return "loading"
	case ErrorChanged:
		return "error"
	}
	return "unknown"
}

// StateEvent is sent to subscribers with a copy of the state after the change.
type StateEvent struct {
	Kind  StateEventKind
	State Values
}

// Values is a copy of the content of a State.
type Values struct {
	Products []wealthdesk.Product
	IRRDate  string
	IRRs     map[int]*float64 // latest IRR per product id
	Total    *float64
	Loading  bool
	Err      error
}

// State is the mutable state of one report. Each report owns its State.
type State struct {
	mu     sync.Mutex
	values Values
	subs   map[int]chan StateEvent
	next   int
}

func NewState() *State {
	return &State{
		values: Values{IRRs: make(map[int]*float64)},
		subs:   make(map[int]chan StateEvent),
	}
}

// Values returns a copy of the state.
func (s *State) Values() Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copy()
}

func (s *State) copy() Values {
	v := s.values
	v.Products = slices.Clone(s.values.Products)
	v.IRRs = maps.Clone(s.values.IRRs)
	return v
}

// Subscribe returns a channel of state events, and a function to stop the
// subscription. Events are dropped when the buffer is full.
func (s *State) Subscribe(buffer int) (<-chan StateEvent, func()) {
	ch := make(chan StateEvent, buffer)
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = ch
	s.mu.Unlock()
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
			close(ch)
		})
	}
}

// update changes the state with fn and notifies the subscribers.
func (s *State) update(kind StateEventKind, fn func(*Values)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.values)
	ev := StateEvent{Kind: kind, State: s.copy()}
	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (s *State) SetProducts(products []wealthdesk.Product) {
	s.update(ProductsChanged, func(v *Values) { v.Products = slices.Clone(products) })
}

func (s *State) SetIRRDate(d string) {
	s.update(DateChanged, func(v *Values) { v.IRRDate = d })
}

func (s *State) SetIRR(productID int, irr *float64) {
	s.update(IRRChanged, func(v *Values) { v.IRRs[productID] = irr })
}

func (s *State) SetTotal(irr *float64) {
	s.update(TotalChanged, func(v *Values) { v.Total = irr })
}

func (s *State) SetLoading(loading bool) {
	s.update(LoadingChanged, func(v *Values) { v.Loading = loading })
}

func (s *State) SetError(err error) {
	s.update(ErrorChanged, func(v *Values) { v.Err = err })
}
