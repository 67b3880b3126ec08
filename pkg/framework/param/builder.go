package param

// Builder provides a fluent API for creating parameters
type Builder struct {
	param  *Parameter
	centre float64
}

// New creates a new parameter builder
func New(id uint32, name string) *Builder {
	return &Builder{
		param: &Parameter{
			ID:        id,
			Name:      name,
			ShortName: name,
			Range:     NewRange(0, 1),
			Flags:     CanAutomate,
		},
	}
}

// Key sets the textual identifier used for lookups and persistence
func (b *Builder) Key(key string) *Builder {
	b.param.Key = key
	return b
}

// ShortName sets the short name
func (b *Builder) ShortName(name string) *Builder {
	b.param.ShortName = name
	return b
}

// Range sets the min and max values
func (b *Builder) Range(min, max float64) *Builder {
	b.param.Range.Min = min
	b.param.Range.Max = max
	return b
}

// Centre skews the range so that value sits at the middle of the control
// travel. Applied at Build time, after the final range is known.
func (b *Builder) Centre(value float64) *Builder {
	b.centre = value
	return b
}

// Interval sets the snapping step in plain units
func (b *Builder) Interval(step float64) *Builder {
	b.param.Range.Interval = step
	return b
}

// Default sets the default value (in plain range, not normalized)
func (b *Builder) Default(value float64) *Builder {
	b.param.DefaultValue = value
	return b
}

// Unit sets the unit string
func (b *Builder) Unit(unit string) *Builder {
	b.param.Unit = unit
	return b
}

// Steps sets the number of discrete steps
func (b *Builder) Steps(count int32) *Builder {
	b.param.StepCount = count
	return b
}

// Formatter sets custom value formatting and parsing
func (b *Builder) Formatter(format func(float64) string, parse func(string) (float64, error)) *Builder {
	b.param.formatFunc = format
	b.param.parseFunc = parse
	return b
}

// Build returns the configured parameter, initialised to its default
func (b *Builder) Build() *Parameter {
	if b.centre != 0 {
		b.param.Range = b.param.Range.WithCentre(b.centre)
	}
	b.param.DefaultValue = b.param.Range.Snap(b.param.DefaultValue)
	b.param.Reset()
	return b.param
}
