// Package plant assembles a balancer from configured factory specs.
package plant

import (
	"fmt"

	"car-factory/internal/car"
	"car-factory/internal/config"
	"car-factory/internal/factory"
	"car-factory/internal/logger"

	"go.uber.org/zap"
)

// Build creates one factory per spec, requests Warmup cars from each directly
// and hands all of them to a balancer of balancerType.
func Build(specs []config.FactorySpec, balancerType string, log logger.Logger) (factory.Balancer, error) {
	if log == nil {
		log = logger.Nop()
	}

	factories := make([]factory.CarFactory, 0, len(specs))
	for i, spec := range specs {
		brand, err := car.ParseBrand(spec.Brand)
		if err != nil {
			return nil, fmt.Errorf("factory %d: %w", i, err)
		}
		f, err := factory.New(brand)
		if err != nil {
			return nil, fmt.Errorf("factory %d: %w", i, err)
		}
		for n := 0; n < spec.Warmup; n++ {
			f.RequestCar()
		}
		log.Debug("Factory ready",
			zap.Int("index", i),
			zap.String("brand", brand.String()),
			zap.Uint64("produced", f.Produced()),
		)
		factories = append(factories, f)
	}

	balancer, err := factory.NewBalancerFactory().CreateBalancer(balancerType, factories, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create %q balancer: %w", balancerType, err)
	}

	log.Info("Plant ready",
		zap.String("balancer", balancer.Name()),
		zap.Int("factories", len(factories)),
	)
	return balancer, nil
}
