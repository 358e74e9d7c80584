package factory

import (
	"fmt"

	"car-factory/internal/logger"
)

const (
	LeastBusy  = "least-busy"
	RoundRobin = "round-robin"
)

type BalancerFactory struct{}

func NewBalancerFactory() *BalancerFactory {
	return &BalancerFactory{}
}

// CreateBalancer wraps factories in the balancer named by balancerType. An
// empty type selects least-busy.
func (f *BalancerFactory) CreateBalancer(balancerType string, factories []CarFactory, log logger.Logger) (Balancer, error) {
	var (
		balancer Balancer
		err      error
	)

	switch balancerType {
	case LeastBusy, "":
		balancer, err = NewLeastBusyFactory(factories, WithLogger(log))
	case RoundRobin:
		balancer, err = NewRoundRobinFactory(factories, WithLogger(log))
	default:
		return nil, fmt.Errorf("%w: unsupported balancer type %q", ErrInvalidArgument, balancerType)
	}
	if err != nil {
		return nil, err
	}
	return balancer, nil
}
