package factory

import (
	"sync"

	"car-factory/internal/car"
	"car-factory/internal/logger"

	"go.uber.org/zap"
)

// RoundRobinFactory hands requests to its owned factories in turn, ignoring
// how busy each one is.
type RoundRobinFactory struct {
	counter
	factories    []CarFactory
	currentIndex int
	mutex        sync.Mutex
	logger       logger.Logger
}

func NewRoundRobinFactory(factories []CarFactory, opts ...Option) (*RoundRobinFactory, error) {
	owned, err := absorb(factories)
	if err != nil {
		return nil, err
	}

	o := newOptions(opts)
	f := &RoundRobinFactory{
		factories: owned,
		logger:    o.log,
	}
	return f, nil
}

func (f *RoundRobinFactory) Name() string { return RoundRobin }

// RequestCar panics on a RoundRobinFactory that was not built with NewRoundRobinFactory,
// since it has nothing to delegate to.
func (f *RoundRobinFactory) RequestCar() car.Car {
	if len(f.factories) == 0 {
		panic(errUnbuiltBalancer)
	}
	return f.request(f.createCar)
}

func (f *RoundRobinFactory) createCar() car.Car {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	index := f.currentIndex
	f.currentIndex = (f.currentIndex + 1) % len(f.factories)

	chosen := f.factories[index]
	f.log().Debug("Dispatching car request",
		zap.String("balancer", RoundRobin),
		zap.Int("index", index),
		zap.String("factory", chosen.Name()),
	)
	return chosen.RequestCar()
}

func (f *RoundRobinFactory) log() logger.Logger {
	if f.logger == nil {
		return logger.Nop()
	}
	return f.logger
}

func (f *RoundRobinFactory) Shares() []Share {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return shares(f.factories)
}
