// Package demo walks through both factory patterns and prints what each one
// builds.
package demo

import (
	"fmt"
	"io"

	"car-factory/internal/assembly"
	"car-factory/internal/car"
	"car-factory/internal/config"
	"car-factory/internal/factory"
	"car-factory/internal/logger"
	"car-factory/internal/plant"

	"go.uber.org/zap"
)

// Run prints the abstract factory cars, one car from each brand's factory,
// and then cfg.Requests cars from the configured plant.
func Run(cfg *config.Config, out io.Writer, log logger.Logger) error {
	if log == nil {
		log = logger.Nop()
	}

	for _, brand := range car.Brands() {
		line, err := assembly.For(brand)
		if err != nil {
			return err
		}
		if err := assembly.CreateSomeCars(out, line); err != nil {
			return err
		}
	}

	for _, brand := range car.Brands() {
		f, err := factory.New(brand)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, f.RequestCar().Info()); err != nil {
			return err
		}
	}

	balancer, err := plant.Build(cfg.Factories, cfg.BalancerType, log)
	if err != nil {
		return err
	}

	for i := 0; i < cfg.Requests; i++ {
		if _, err := fmt.Fprintln(out, balancer.RequestCar().Info()); err != nil {
			return err
		}
	}

	fields := []zap.Field{zap.Uint64("routed", balancer.Produced())}
	for _, share := range balancer.Shares() {
		fields = append(fields, zap.Uint64(fmt.Sprintf("%s_%d", share.Name, share.Index), share.Produced))
	}
	log.Info("Demo finished", fields...)
	return nil
}
