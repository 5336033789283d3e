package extension

import (
	"sync"

	"github.com/counselkit/counsel/model/types"
	"github.com/viant/x"
)

// Strategies provides a named allocation-strategy registry.
type Strategies struct {
	types      *Types
	strategies map[string]types.Strategy
	mux        sync.RWMutex
}

func (s *Strategies) Types() *Types {
	return s.types
}

// Lookup returns a strategy by name, or nil when absent.
func (s *Strategies) Lookup(name string) types.Strategy {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.strategies[name]
}

// Register registers a strategy under its own name.
func (s *Strategies) Register(strategy types.Strategy) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.strategies[strategy.Name()] = strategy
}

// Names returns the registered strategy names.
func (s *Strategies) Names() []string {
	s.mux.RLock()
	defer s.mux.RUnlock()
	names := make([]string, 0, len(s.strategies))
	for name := range s.strategies {
		names = append(names, name)
	}
	return names
}

// NewStrategies creates a new strategy registry.
func NewStrategies(goTypes ...*x.Type) *Strategies {
	ret := &Strategies{
		types:      NewTypes(),
		strategies: make(map[string]types.Strategy),
	}
	for _, t := range goTypes {
		if t != nil {
			ret.types.Register(t)
		}
	}
	return ret
}
