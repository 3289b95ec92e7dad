package waveguide

// Builder assembles a Model. A model is only produced when exactly one of
// Angle or Morph has been set; see Build.
type Builder struct {
	spheroid     Spheroid
	angle        AnglePolicy
	morph        MorphTarget
	superellipse *Superellipse
	clothoid     *Clothoid
}

// NewBuilder starts a model from the spheroid flare law.
func NewBuilder(s Spheroid) *Builder {
	return &Builder{spheroid: s}
}

// Angle sets a direct flare angle rule.
func (b *Builder) Angle(p AnglePolicy) *Builder {
	b.angle = p
	return b
}

// Morph sets a mouth target from which the flare angle is back-solved.
func (b *Builder) Morph(t MorphTarget) *Builder {
	b.morph = t
	return b
}

// Superellipse adds the superellipse mouth termination term.
func (b *Builder) Superellipse(t Superellipse) *Builder {
	b.superellipse = &t
	return b
}

// Clothoid finishes the mouth with a clothoid tail instead of an additive
// termination term.
func (b *Builder) Clothoid(c Clothoid) *Builder {
	b.clothoid = &c
	return b
}

// Build validates the configuration and returns the model.
func (b *Builder) Build() (*Model, error) {
	const op = "build model"
	switch {
	case b.angle == nil && b.morph == nil:
		return nil, configErr(op, ErrNoAngleRule)
	case b.angle != nil && b.morph != nil:
		return nil, configErr(op, ErrAmbiguousAngleRule)
	case b.superellipse != nil && b.clothoid != nil:
		return nil, configErr(op, ErrTerminationClash)
	}
	if err := b.spheroid.validate(); err != nil {
		return nil, err
	}
	m := &Model{
		spheroid:    b.spheroid,
		angle:       b.angle,
		morph:       b.morph,
		termination: noTermination{},
	}
	if b.superellipse != nil {
		if err := b.superellipse.validate(); err != nil {
			return nil, err
		}
		m.termination = *b.superellipse
	}
	if b.clothoid != nil {
		if err := b.clothoid.validate(); err != nil {
			return nil, err
		}
		c := *b.clothoid
		m.clothoid = &c
	}
	return m, nil
}

// Must panics if err is not nil. It is meant for programs with
// hard-coded parameters.
func Must(m *Model, err error) *Model {
	if err != nil {
		panic(err)
	}
	return m
}

// NewAxisymmetric returns a round horn with half-angle alpha.
func NewAxisymmetric(s Spheroid, t Superellipse, alpha float64) (*Model, error) {
	return NewBuilder(s).Angle(ConstantAngle{Alpha: alpha}).Superellipse(t).Build()
}

// NewEllipsoidal returns a horn with an elliptical mouth.
func NewEllipsoidal(s Spheroid, t Superellipse, alphaH, alphaV float64) (*Model, error) {
	return NewBuilder(s).Angle(EllipticalAngle{AlphaH: alphaH, AlphaV: alphaV}).Superellipse(t).Build()
}

// NewRectangular returns a horn whose flare angle is bounded by two pairs of
// planar walls.
func NewRectangular(s Spheroid, t Superellipse, alphaH, alphaV float64) (*Model, error) {
	return NewBuilder(s).Angle(RectangularAngle{AlphaH: alphaH, AlphaV: alphaV}).Superellipse(t).Build()
}

// NewRectangularMorph returns a horn that morphs from the round throat to a
// rectangular mouth.
func NewRectangularMorph(s Spheroid, t Superellipse, alphaH, alphaV float64) (*Model, error) {
	return NewBuilder(s).Morph(RectangularTarget{AlphaH: alphaH, AlphaV: alphaV}).Superellipse(t).Build()
}

// NewAxisymmetricClothoid returns a round horn finished by a clothoid tail.
func NewAxisymmetricClothoid(s Spheroid, c Clothoid, alpha float64) (*Model, error) {
	return NewBuilder(s).Angle(ConstantAngle{Alpha: alpha}).Clothoid(c).Build()
}

// NewRectangularClothoid returns a rectangular-flare horn finished by a
// clothoid tail.
func NewRectangularClothoid(s Spheroid, c Clothoid, alphaH, alphaV float64) (*Model, error) {
	return NewBuilder(s).Angle(RectangularAngle{AlphaH: alphaH, AlphaV: alphaV}).Clothoid(c).Build()
}
