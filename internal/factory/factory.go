// Package factory implements the factory method side of the car plant: simple
// factories that always build one brand, and balancing factories that route each
// request to one of the factories they own.
//
// Every factory counts the cars it has produced. The count is kept by the
// embedded counter, never by the concrete factories, so each RequestCar call
// moves it by exactly one regardless of how the car is built.
package factory

import (
	"errors"
	"fmt"
	"reflect"
	"sync/atomic"

	"car-factory/internal/car"
	"car-factory/internal/logger"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNoFactories     = fmt.Errorf("%w: no factories provided", ErrInvalidArgument)

	errUnbuiltBalancer = fmt.Errorf("%w: balancer has no factories, build it with its constructor", ErrInvalidArgument)
)

// CarFactory is the factory method capability shared by every factory.
type CarFactory interface {
	// RequestCar builds a new car and counts it. The caller owns the result.
	RequestCar() car.Car
	// Produced reports how many cars this factory has handed out.
	Produced() uint64
	Name() string
}

// Share is one owned factory's slice of the work done by a balancer.
type Share struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Produced uint64 `json:"produced"`
}

// Balancer is a CarFactory that delegates to a fixed set of owned factories.
type Balancer interface {
	CarFactory
	Shares() []Share
}

// counter is the bookkeeping shared by every factory. Concrete factories
// route RequestCar through request so the count moves exactly once per car.
type counter struct {
	produced atomic.Uint64
	owned    atomic.Bool
}

func (c *counter) request(create func() car.Car) car.Car {
	c.produced.Add(1)
	return create()
}

func (c *counter) Produced() uint64 {
	return c.produced.Load()
}

// claim marks the factory as owned by a balancer. It reports false if some
// balancer already owns it.
func (c *counter) claim() bool {
	return c.owned.CompareAndSwap(false, true)
}

func (c *counter) release() {
	c.owned.Store(false)
}

type claimable interface {
	claim() bool
	release()
}

type Option func(*options)

type options struct {
	log logger.Logger
}

func WithLogger(log logger.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

func newOptions(opts []Option) options {
	o := options{log: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// absorb validates, claims and copies the members handed to a balancer. A
// factory may appear once per list and belong to one balancer at a time.
// Nothing is claimed when an error is returned.
func absorb(factories []CarFactory) ([]CarFactory, error) {
	if len(factories) == 0 {
		return nil, ErrNoFactories
	}

	owned := make([]CarFactory, len(factories))
	for i, f := range factories {
		if f == nil {
			return nil, fmt.Errorf("%w: factory at index %d is nil", ErrInvalidArgument, i)
		}
		if reflect.TypeOf(f).Comparable() {
			for j := 0; j < i; j++ {
				if reflect.TypeOf(owned[j]).Comparable() && owned[j] == f {
					return nil, fmt.Errorf("%w: factory at index %d repeats index %d", ErrInvalidArgument, i, j)
				}
			}
		}
		owned[i] = f
	}

	for i, f := range owned {
		c, ok := f.(claimable)
		if !ok {
			continue
		}
		if !c.claim() {
			for _, prev := range owned[:i] {
				if pc, ok := prev.(claimable); ok {
					pc.release()
				}
			}
			return nil, fmt.Errorf("%w: factory at index %d already belongs to a balancer", ErrInvalidArgument, i)
		}
	}
	return owned, nil
}

func shares(factories []CarFactory) []Share {
	out := make([]Share, len(factories))
	for i, f := range factories {
		out[i] = Share{Index: i, Name: f.Name(), Produced: f.Produced()}
	}
	return out
}
