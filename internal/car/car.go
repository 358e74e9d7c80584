// Package car holds the products built by the factories: a closed set of
// brands and the cars each brand can turn out.
package car

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownBrand = errors.New("unknown brand")

type Brand int

const (
	Ford Brand = iota
	Toyota
)

// Brands lists every supported brand in declaration order.
func Brands() []Brand {
	return []Brand{Ford, Toyota}
}

func (b Brand) String() string {
	switch b {
	case Ford:
		return "Ford"
	case Toyota:
		return "Toyota"
	default:
		return fmt.Sprintf("Brand(%d)", int(b))
	}
}

func (b Brand) Valid() bool {
	return b == Ford || b == Toyota
}

func ParseBrand(name string) (Brand, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ford":
		return Ford, nil
	case "toyota":
		return Toyota, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownBrand, name)
	}
}

// Car is anything a factory hands back. Implementations are immutable.
type Car interface {
	Brand() Brand
	Info() string
}

type generic struct {
	brand Brand
}

func (g generic) Brand() Brand { return g.brand }
func (g generic) Info() string { return g.brand.String() }

// NewFord returns the brand-only car produced by a Ford factory.
func NewFord() Car { return generic{brand: Ford} }

// NewToyota returns the brand-only car produced by a Toyota factory.
func NewToyota() Car { return generic{brand: Toyota} }
