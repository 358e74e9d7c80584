package car

type BodyStyle int

const (
	Sedan BodyStyle = iota
	Suv
)

func (s BodyStyle) String() string {
	switch s {
	case Sedan:
		return "Sedan"
	case Suv:
		return "Suv"
	default:
		return "Unknown"
	}
}

// Model is a car with a body style, built by an assembly line.
type Model struct {
	brand Brand
	style BodyStyle
}

func NewModel(brand Brand, style BodyStyle) Model {
	return Model{brand: brand, style: style}
}

func (m Model) Brand() Brand     { return m.brand }
func (m Model) Style() BodyStyle { return m.style }
func (m Model) Info() string     { return m.brand.String() + " " + m.style.String() }
