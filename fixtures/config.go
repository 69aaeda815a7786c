package fixtures

import "github.com/morphonets/snt-trace/volume"

// config is the private, fully-resolved set of parameters every builder
// in this package starts from; Option mutates it in order, the same
// functional-option shape the teacher's builder package uses for its
// own synthetic graph constructors.
type config struct {
	background float64
	bright     float64
	cal        volume.Calibration
	noise      float64
	rng        randSource
}

func defaultConfig() config {
	return config{
		background: 10,
		bright:     220,
		cal:        volume.Calibration{SX: 1, SY: 1, SZ: 1, Unit: "px"},
		noise:      0,
		rng:        nil,
	}
}

// Option mutates a builder's resolved config; apply in order, matching
// builder.BuilderOption's resolution contract.
type Option func(*config)

// WithBackground sets the dim voxel value used outside tubular/bright
// structures. Default 10.
func WithBackground(v float64) Option {
	return func(c *config) { c.background = v }
}

// WithBright sets the voxel value painted along a fixture's bright
// structure (tube, line, cylinder core). Default 220.
func WithBright(v float64) Option {
	return func(c *config) { c.bright = v }
}

// WithCalibration overrides the default unit-spacing calibration.
func WithCalibration(cal volume.Calibration) Option {
	return func(c *config) { c.cal = cal }
}

// WithNoise adds uniform random jitter in [-amount,+amount] to every
// voxel once a Rand source is also supplied via WithRand; amount is
// ignored (the fixture stays perfectly deterministic) if no Rand source
// is set. Default 0 (no noise).
func WithNoise(amount float64) Option {
	return func(c *config) { c.noise = amount }
}

// randSource is the minimal interface this package needs from
// *math/rand.Rand, kept local so fixtures never forces a *rand.Rand
// import on callers that only want deterministic fixtures.
type randSource interface {
	Float64() float64
}

// WithRand supplies the deterministic noise source a fixture mutates
// with when WithNoise is also set. A nil source (the default) disables
// noise entirely regardless of WithNoise.
func WithRand(r randSource) Option {
	return func(c *config) { c.rng = r }
}

func resolve(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c config) jitter() float64 {
	if c.rng == nil || c.noise == 0 {
		return 0
	}
	return (c.rng.Float64()*2 - 1) * c.noise
}
