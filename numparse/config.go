package numparse

// NotationConfig is the per-notation option set:
// whether the notation is considered at all, whether a leading sign is
// accepted, whether digits may be underscore-separated, the literal prefix
// that introduces the notation, and the letter case its digits accept.
type NotationConfig struct {
	Enabled          bool
	AllowMinus       bool
	AllowPlus        bool
	AllowUnderscores bool
	Prefix           string
	Case             Case
}

// DecimalConfig extends NotationConfig with the two decimal-only switches:
// whether a fractional part and an exponent suffix are recognised.
type DecimalConfig struct {
	NotationConfig
	AllowFloat    bool
	AllowExponent bool
}

// DefaultHexConfig returns the default hex notation block: enabled, signed,
// underscored, prefix "0x", any case.
func DefaultHexConfig() NotationConfig {
	return NotationConfig{Enabled: true, AllowMinus: true, AllowPlus: true, AllowUnderscores: true, Prefix: "0x", Case: CaseAny}
}

// DefaultOctalConfig returns the default octal notation block, prefix "0o".
func DefaultOctalConfig() NotationConfig {
	return NotationConfig{Enabled: true, AllowMinus: true, AllowPlus: true, AllowUnderscores: true, Prefix: "0o", Case: CaseAny}
}

// DefaultBinaryConfig returns the default binary notation block, prefix "0b".
func DefaultBinaryConfig() NotationConfig {
	return NotationConfig{Enabled: true, AllowMinus: true, AllowPlus: true, AllowUnderscores: true, Prefix: "0b", Case: CaseAny}
}

// DefaultDecimalConfig returns the default decimal notation block: enabled,
// signed, underscored, no prefix, floats and exponents both allowed.
func DefaultDecimalConfig() DecimalConfig {
	return DecimalConfig{
		NotationConfig: NotationConfig{Enabled: true, AllowMinus: true, AllowPlus: true, AllowUnderscores: true, Prefix: "", Case: CaseAny},
		AllowFloat:     true,
		AllowExponent:  true,
	}
}

// Config assembles the four notation blocks the recogniser consults, per
// the contract that the default configuration enables every notation.
type Config struct {
	Decimal DecimalConfig
	Hex     NotationConfig
	Octal   NotationConfig
	Binary  NotationConfig
}

// ConfigOption configures a Config built by NewConfig, following the
// functional-options idiom used throughout this module.
type ConfigOption func(*Config)

// WithDecimal overrides the decimal notation block.
func WithDecimal(c DecimalConfig) ConfigOption { return func(cfg *Config) { cfg.Decimal = c } }

// WithHex overrides the hex notation block.
func WithHex(c NotationConfig) ConfigOption { return func(cfg *Config) { cfg.Hex = c } }

// WithOctal overrides the octal notation block.
func WithOctal(c NotationConfig) ConfigOption { return func(cfg *Config) { cfg.Octal = c } }

// WithBinary overrides the binary notation block.
func WithBinary(c NotationConfig) ConfigOption { return func(cfg *Config) { cfg.Binary = c } }

// NewConfig builds a Config from the defaults, applying opts in order.
func NewConfig(opts ...ConfigOption) Config {
	cfg := Config{
		Decimal: DefaultDecimalConfig(),
		Hex:     DefaultHexConfig(),
		Octal:   DefaultOctalConfig(),
		Binary:  DefaultBinaryConfig(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func digitValue(c rune) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

// isDigitFor reports whether c is a valid digit for radix, honouring a
// hex-letter case restriction (digits 0-9 are case-insensitive by nature).
func isDigitFor(c rune, radix int, kase Case) bool {
	v, ok := digitValue(c)
	if !ok || v >= radix {
		return false
	}
	if v < 10 {
		return true
	}
	switch kase {
	case CaseUpper:
		return c >= 'A' && c <= 'F'
	case CaseLower:
		return c >= 'a' && c <= 'f'
	default:
		return true
	}
}

// matchesExponentMarker reports whether c satisfies kase for the decimal exponent
// marker ('e'/'E').
func matchesExponentMarker(c rune, kase Case) bool {
	switch kase {
	case CaseUpper:
		return c == 'E'
	case CaseLower:
		return c == 'e'
	default:
		return c == 'e' || c == 'E'
	}
}
