package config

// IconSpec pairs a glyph with the color it is drawn in.
type IconSpec struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// Config is the immutable configuration of one stepper control.
// Colors are lipgloss color strings ("#RRGGBB" or an ANSI index).
type Config struct {
	Unit  string `yaml:"unit"`  // Suffix appended to displayed numbers
	Label string `yaml:"label"` // Caption; empty hides it

	Step    int `yaml:"step"`
	Minimum int `yaml:"minimum"` // Inclusive
	Maximum int `yaml:"maximum"` // Inclusive

	DecrementIcon IconSpec `yaml:"decrement_icon"`
	IncrementIcon IconSpec `yaml:"increment_icon"`
	CancelIcon    IconSpec `yaml:"cancel_icon"`
	ConfirmIcon   IconSpec `yaml:"confirm_icon"`

	DisabledColor string  `yaml:"disabled_color"`
	LabelOpacity  float64 `yaml:"label_opacity"` // 0..1
	LabelColor    string  `yaml:"label_color"`
	ValueColor    string  `yaml:"value_color"`

	// ShowAlertOnAutoCorrect surfaces the alert even when an invalid entry
	// is silently corrected on focus loss. Explicit confirms always alert.
	ShowAlertOnAutoCorrect bool `yaml:"show_alert_on_auto_correct"`

	// Reserved for a fractional variant; integers are formatted without
	// decimals regardless.
	MinimumDecimalPlaces int `yaml:"minimum_decimal_places"`
	MaximumDecimalPlaces int `yaml:"maximum_decimal_places"`
}

// Default palette, matching internal/ui.
const (
	defaultAccentColor   = "#7D56F4"
	defaultConfirmColor  = "#43BF6D"
	defaultCancelColor   = "#FF5555"
	defaultDisabledColor = "#626262"
	defaultTextColor     = "#FFFFFF"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Step:    1,
		Minimum: 0,
		Maximum: 100,

		DecrementIcon: IconSpec{Glyph: "−", Color: defaultAccentColor},
		IncrementIcon: IconSpec{Glyph: "+", Color: defaultAccentColor},
		CancelIcon:    IconSpec{Glyph: "✗", Color: defaultCancelColor},
		ConfirmIcon:   IconSpec{Glyph: "✓", Color: defaultConfirmColor},

		DisabledColor: defaultDisabledColor,
		LabelOpacity:  1,
		LabelColor:    defaultTextColor,
		ValueColor:    defaultTextColor,
	}
}

// Option overrides a single field at construction time.
type Option func(*Config)

// With returns a copy of c with opts applied. c itself is not changed.
func (c Config) With(opts ...Option) Config {
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// WithUnit sets the suffix appended to the displayed value.
func WithUnit(unit string) Option { return func(c *Config) { c.Unit = unit } }

// WithLabel sets the caption; empty hides it.
func WithLabel(label string) Option { return func(c *Config) { c.Label = label } }

// WithStep sets the amount one button step moves the value.
func WithStep(step int) Option { return func(c *Config) { c.Step = step } }

// WithMinimum sets the lowest allowed value.
func WithMinimum(min int) Option { return func(c *Config) { c.Minimum = min } }

// WithMaximum sets the highest allowed value.
func WithMaximum(max int) Option { return func(c *Config) { c.Maximum = max } }

// WithBounds sets the inclusive range.
func WithBounds(min, max int) Option {
	return func(c *Config) {
		c.Minimum = min
		c.Maximum = max
	}
}

// WithDecrementIcon sets the decrement button glyph and color.
func WithDecrementIcon(icon IconSpec) Option { return func(c *Config) { c.DecrementIcon = icon } }

// WithIncrementIcon sets the increment button glyph and color.
func WithIncrementIcon(icon IconSpec) Option { return func(c *Config) { c.IncrementIcon = icon } }

// WithCancelIcon sets the edit-mode cancel control.
func WithCancelIcon(icon IconSpec) Option { return func(c *Config) { c.CancelIcon = icon } }

// WithConfirmIcon sets the edit-mode confirm control.
func WithConfirmIcon(icon IconSpec) Option { return func(c *Config) { c.ConfirmIcon = icon } }

// WithDisabledColor sets the color of a button at its bound.
func WithDisabledColor(color string) Option { return func(c *Config) { c.DisabledColor = color } }

// WithLabelColor sets the caption color.
func WithLabelColor(color string) Option { return func(c *Config) { c.LabelColor = color } }

// WithValueColor sets the color of the displayed value.
func WithValueColor(color string) Option { return func(c *Config) { c.ValueColor = color } }

// WithLabelOpacity sets the caption opacity in [0, 1].
func WithLabelOpacity(o float64) Option { return func(c *Config) { c.LabelOpacity = o } }

// WithShowAlertOnAutoCorrect sets the alert policy for implicit dismissal.
func WithShowAlertOnAutoCorrect(show bool) Option {
	return func(c *Config) { c.ShowAlertOnAutoCorrect = show }
}

// WithDecimalPlaces sets the reserved decimal place range.
func WithDecimalPlaces(min, max int) Option {
	return func(c *Config) {
		c.MinimumDecimalPlaces = min
		c.MaximumDecimalPlaces = max
	}
}

// Contains reports whether v lies within [Minimum, Maximum].
func (c Config) Contains(v int) bool {
	return v >= c.Minimum && v <= c.Maximum
}

// Clamp returns v limited to [Minimum, Maximum].
func (c Config) Clamp(v int) int {
	if v < c.Minimum {
		return c.Minimum
	}
	if v > c.Maximum {
		return c.Maximum
	}
	return v
}
