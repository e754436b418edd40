package rotary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultHitRadius is the distance, in reference pixels, within which a
	// pointer counts as touching a letter.
	DefaultHitRadius = 150.0
	// DefaultLetterRadiusRatio places letters at 80% of the way from the
	// centre to the edge. 0 = in the centre, 1 = on the edge.
	DefaultLetterRadiusRatio = 0.8
)

// Config holds the host-supplied settings of a Keyboard.
type Config struct {
	Letters           []string     `toml:"letters" yaml:"letters" json:"letters"`
	HitRadius         float64      `toml:"hit_radius" yaml:"hit_radius" json:"hit_radius"`
	LetterRadiusRatio float64      `toml:"letter_radius_ratio" yaml:"letter_radius_ratio" json:"letter_radius_ratio"`
	RepeatPolicy      RepeatPolicy `toml:"repeat_policy" yaml:"repeat_policy" json:"repeat_policy"`
	Debug             bool         `toml:"debug" yaml:"debug" json:"debug"`
}

// DefaultConfig returns a Config with no letters and the default hit radius,
// letter radius ratio and repeat policy.
func DefaultConfig() Config {
	return Config{
		HitRadius:         DefaultHitRadius,
		LetterRadiusRatio: DefaultLetterRadiusRatio,
		RepeatPolicy:      RepeatAppend,
	}
}

// withDefaults fills zero-valued numeric fields from DefaultConfig.
func (c Config) withDefaults() Config {
	if c.HitRadius == 0 {
		c.HitRadius = DefaultHitRadius
	}
	if c.LetterRadiusRatio == 0 {
		c.LetterRadiusRatio = DefaultLetterRadiusRatio
	}
	return c
}

// MarshalText implements encoding.TextMarshaler.
func (p RepeatPolicy) MarshalText() ([]byte, error) {
	switch p {
	case RepeatAppend, RepeatCollapse:
		return []byte(p.String()), nil
	}
	return nil, fmt.Errorf("unknown repeat policy %d", p)
}

// UnmarshalText implements encoding.TextUnmarshaler. Matching is
// case-insensitive and the empty string selects RepeatAppend.
func (p *RepeatPolicy) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "append":
		*p = RepeatAppend
	case "collapse":
		*p = RepeatCollapse
	default:
		return fmt.Errorf("unknown repeat policy %q", text)
	}
	return nil
}

// --- Validation ---

// ValidationError represents a single configuration problem.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	msgs := make([]string, 0, len(e))
	for i := range e {
		msgs = append(msgs, e[i].Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks c and returns ValidationErrors listing every problem, or
// nil. An empty letter list is allowed: the keyboard simply has no layout.
func (c Config) Validate() error {
	var errs ValidationErrors

	if !(c.HitRadius > 0) {
		errs = append(errs, ValidationError{
			Field:   "hit_radius",
			Message: fmt.Sprintf("must be positive, got %v", c.HitRadius),
		})
	}
	if !(c.LetterRadiusRatio > 0 && c.LetterRadiusRatio <= 1) {
		errs = append(errs, ValidationError{
			Field:   "letter_radius_ratio",
			Message: fmt.Sprintf("must be in (0, 1], got %v", c.LetterRadiusRatio),
		})
	}
	if c.RepeatPolicy != RepeatAppend && c.RepeatPolicy != RepeatCollapse {
		errs = append(errs, ValidationError{
			Field:   "repeat_policy",
			Message: fmt.Sprintf("unknown policy %d", c.RepeatPolicy),
		})
	}
	for i, l := range c.Letters {
		if l == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("letters[%d]", i),
				Message: "must not be empty",
			})
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// --- Loading ---

// Format selects the encoding ParseConfig decodes.
type Format uint8

const (
	FormatAuto Format = iota // detect from content
	FormatTOML
	FormatYAML
	FormatJSON
)

// FormatForPath picks a Format from a file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatAuto
	}
}

// LoadConfig reads, decodes and validates the config file at path. Fields
// missing from the file keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data, FormatForPath(path))
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes data in the given format on top of DefaultConfig and
// validates the result.
func ParseConfig(data []byte, format Format) (Config, error) {
	cfg := DefaultConfig()

	if format == FormatAuto {
		format = detectFormat(data)
	}

	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("decode TOML: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("decode TOML: unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("decode YAML: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("decode JSON: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("parse config: unknown format %d", format)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validation failed: %w", err)
	}
	return cfg, nil
}

// detectFormat guesses the encoding of data: a leading '{' is JSON, a
// "key = value" line is TOML, anything else is treated as YAML.
func detectFormat(data []byte) Format {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatJSON
	}
	for _, line := range strings.Split(string(trimmed), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if eq := strings.IndexByte(line, '='); eq > 0 {
			if colon := strings.IndexByte(line, ':'); colon < 0 || colon > eq {
				return FormatTOML
			}
		}
		break
	}
	return FormatYAML
}
