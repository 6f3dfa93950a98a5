package health

// Color is the wire representation of a health signal.
type Color string

const (
	// ColorGreen indicates a healthy component or aspect.
	ColorGreen Color = "green"
	// ColorRed indicates an unhealthy component or aspect.
	ColorRed Color = "red"
)

// ColorFor converts a boolean health signal into a Color.
func ColorFor(ok bool) Color {
	if ok {
		return ColorGreen
	}
	return ColorRed
}

// Aspect is a single named boolean health signal contributing to a
// component's overall health. Aspects are immutable once constructed and
// owned by the component that reports them.
type Aspect struct {
	// Name identifies the aspect within its component.
	Name string

	// OK is the aspect's health signal.
	OK bool
}

// Color returns the aspect's health color.
func (a Aspect) Color() Color {
	return ColorFor(a.OK)
}

// Component is a named health unit evaluated either directly (a single
// boolean) or by aggregating a set of aspects. The two forms are
// mutually exclusive; use DirectComponent or AggregateComponent to
// construct one, or NewComponent when the form is decided at runtime.
type Component struct {
	name    string
	direct  bool
	ok      bool
	aspects []Aspect
}

// DirectComponent creates a component whose health is the given boolean.
func DirectComponent(name string, ok bool) Component {
	return Component{name: name, direct: true, ok: ok}
}

// AggregateComponent creates a component whose health is the logical AND
// of its aspects' health.
func AggregateComponent(name string, aspects ...Aspect) Component {
	copied := make([]Aspect, len(aspects))
	copy(copied, aspects)
	return Component{name: name, aspects: copied}
}

// ComponentConfig describes a component in its optional-field form, for
// callers that decide the component's shape at runtime.
type ComponentConfig struct {
	// Name identifies the component.
	Name string

	// OK is the direct health signal. Exactly one of OK and Aspects
	// must be set.
	OK *bool

	// Aspects are the component's health aspects. Exactly one of OK and
	// Aspects must be set.
	Aspects []Aspect
}

// NewComponent validates config and creates a component. It returns
// ErrComponentConflict if both OK and Aspects are set, and
// ErrComponentEmpty if neither is.
func NewComponent(config ComponentConfig) (Component, error) {
	switch {
	case config.OK != nil && config.Aspects != nil:
		return Component{}, ErrComponentConflict
	case config.OK == nil && config.Aspects == nil:
		return Component{}, ErrComponentEmpty
	case config.OK != nil:
		return DirectComponent(config.Name, *config.OK), nil
	default:
		return AggregateComponent(config.Name, config.Aspects...), nil
	}
}

// Name returns the component's name.
func (c Component) Name() string {
	return c.name
}

// Direct reports whether the component carries a direct status rather
// than aspects.
func (c Component) Direct() bool {
	return c.direct
}

// Aspects returns the component's aspects. It returns nil for a direct
// component.
func (c Component) Aspects() []Aspect {
	if c.direct {
		return nil
	}
	copied := make([]Aspect, len(c.aspects))
	copy(copied, c.aspects)
	return copied
}

// Color returns the component's rolled-up health color. A direct
// component follows its boolean; an aggregating component is red if any
// aspect is red.
func (c Component) Color() Color {
	if c.direct {
		return ColorFor(c.ok)
	}
	for _, a := range c.aspects {
		if !a.OK {
			return ColorRed
		}
	}
	return ColorGreen
}
