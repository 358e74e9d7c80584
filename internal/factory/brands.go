package factory

import (
	"fmt"

	"car-factory/internal/car"
)

type FordFactory struct {
	counter
}

// NewFordFactory returns a Ford factory. The zero FordFactory is ready to use
// as well.
func NewFordFactory() *FordFactory {
	return &FordFactory{}
}

func (f *FordFactory) RequestCar() car.Car { return f.request(car.NewFord) }
func (f *FordFactory) Name() string        { return "ford" }

type ToyotaFactory struct {
	counter
}

func NewToyotaFactory() *ToyotaFactory {
	return &ToyotaFactory{}
}

func (f *ToyotaFactory) RequestCar() car.Car { return f.request(car.NewToyota) }
func (f *ToyotaFactory) Name() string        { return "toyota" }

// New returns a fresh factory for brand.
func New(brand car.Brand) (CarFactory, error) {
	if !brand.Valid() {
		return nil, fmt.Errorf("%w: %s", car.ErrUnknownBrand, brand)
	}
	if brand == car.Toyota {
		return NewToyotaFactory(), nil
	}
	return NewFordFactory(), nil
}
