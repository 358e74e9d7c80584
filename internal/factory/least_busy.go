package factory

import (
	"sync"

	"car-factory/internal/car"
	"car-factory/internal/logger"

	"go.uber.org/zap"
)

// LeastBusyFactory builds every car at whichever owned factory has produced
// the fewest so far. Its own counter tracks the total routed through it.
type LeastBusyFactory struct {
	counter
	factories []CarFactory
	mutex     sync.Mutex
	logger    logger.Logger
}

// NewLeastBusyFactory takes ownership of factories. The caller must not use
// them directly afterwards, and no other balancer may absorb them.
func NewLeastBusyFactory(factories []CarFactory, opts ...Option) (*LeastBusyFactory, error) {
	owned, err := absorb(factories)
	if err != nil {
		return nil, err
	}

	o := newOptions(opts)
	f := &LeastBusyFactory{
		factories: owned,
		logger:    o.log,
	}
	return f, nil
}

func (f *LeastBusyFactory) Name() string { return LeastBusy }

// RequestCar panics on a LeastBusyFactory that was not built with NewLeastBusyFactory,
// since it has nothing to delegate to.
func (f *LeastBusyFactory) RequestCar() car.Car {
	if len(f.factories) == 0 {
		panic(errUnbuiltBalancer)
	}
	return f.request(f.createCar)
}

func (f *LeastBusyFactory) createCar() car.Car {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	index := leastBusy(f.factories)
	chosen := f.factories[index]
	f.log().Debug("Dispatching car request",
		zap.String("balancer", LeastBusy),
		zap.Int("index", index),
		zap.String("factory", chosen.Name()),
		zap.Uint64("produced", chosen.Produced()),
	)
	return chosen.RequestCar()
}

func (f *LeastBusyFactory) log() logger.Logger {
	if f.logger == nil {
		return logger.Nop()
	}
	return f.logger
}

func (f *LeastBusyFactory) Shares() []Share {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return shares(f.factories)
}

// leastBusy returns the index of the factory with the lowest count. Ties go
// to the leftmost factory.
func leastBusy(factories []CarFactory) int {
	best := 0
	for i := 1; i < len(factories); i++ {
		if factories[i].Produced() < factories[best].Produced() {
			best = i
		}
	}
	return best
}
