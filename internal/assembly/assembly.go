// Package assembly is the abstract factory side of the plant. An AssemblyLine
// builds a family of related cars, one per body style, all of the same brand.
// Code that depends only on AssemblyLine never learns which brand it is
// building.
package assembly

import (
	"fmt"
	"io"

	"car-factory/internal/car"
)

type AssemblyLine interface {
	MakeSedan() car.Car
	MakeSuv() car.Car
}

type FordAssembly struct{}

func (FordAssembly) MakeSedan() car.Car { return car.NewModel(car.Ford, car.Sedan) }
func (FordAssembly) MakeSuv() car.Car   { return car.NewModel(car.Ford, car.Suv) }

type ToyotaAssembly struct{}

func (ToyotaAssembly) MakeSedan() car.Car { return car.NewModel(car.Toyota, car.Sedan) }
func (ToyotaAssembly) MakeSuv() car.Car   { return car.NewModel(car.Toyota, car.Suv) }

// For returns the assembly line of brand.
func For(brand car.Brand) (AssemblyLine, error) {
	if !brand.Valid() {
		return nil, fmt.Errorf("%w: %s", car.ErrUnknownBrand, brand)
	}
	if brand == car.Toyota {
		return ToyotaAssembly{}, nil
	}
	return FordAssembly{}, nil
}

// CreateSomeCars builds one car of each body style on line and writes their
// descriptions to w.
func CreateSomeCars(w io.Writer, line AssemblyLine) error {
	sedan := line.MakeSedan()
	suv := line.MakeSuv()

	if _, err := fmt.Fprintf(w, "Sedan: %s\n", sedan.Info()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Suv: %s\n", suv.Info())
	return err
}
