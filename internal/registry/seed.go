package registry

import (
	"bytes"
	_ "embed"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-roller/internal/entities/special"
	"github.com/KirkDiggler/rpg-roller/internal/errors"
)

//go:embed templates.yaml
var defaultSeed []byte

// SeedFile is the YAML layout of a template seed
type SeedFile struct {
	Templates []SeedTemplate `yaml:"templates"`
}

// SeedTemplate describes one template. Token uses the special grammar with
// no value, for example "Vicious(s)". Derivation is "none", "identity",
// "constant:k" or "scaled:k".
type SeedTemplate struct {
	Token      string `yaml:"token"`
	Derivation string `yaml:"derivation,omitempty"`
	Min        *int   `yaml:"min,omitempty"`
	Max        *int   `yaml:"max,omitempty"`
}

// Build turns the seed entry into a template
func (t SeedTemplate) Build() (special.Special, error) {
	tok, err := special.ParseToken(t.Token)
	if err != nil {
		return special.Special{}, err
	}
	if v := tok.ValueOr(0); v != 0 {
		return special.Special{}, errors.InvalidArgumentf("template %s must not carry a value, got %d", tok.Name, v)
	}

	opts := []special.Option{special.WithBounds(t.Min, t.Max)}
	switch {
	case tok.Numeric != nil && t.Derivation != "":
		return special.Special{}, errors.InvalidArgumentf(
			"template %s sets both a numeric literal and a derivation", tok.Name)
	case tok.Numeric != nil:
		opts = append(opts, special.WithDerivation(special.Constant(*tok.Numeric)))
	default:
		d, err := special.ParseDerivation(t.Derivation)
		if err != nil {
			return special.Special{}, errors.Wrapf(err, "template %s", tok.Name)
		}
		opts = append(opts, special.WithDerivation(d))
	}

	return special.NewTemplate(tok.Name, tok.Stacks, opts...)
}

// ParseSeed decodes a YAML seed into templates
func ParseSeed(r io.Reader) ([]special.Special, error) {
	var file SeedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode template seed")
	}

	out := make([]special.Special, 0, len(file.Templates))
	for i, entry := range file.Templates {
		s, err := entry.Build()
		if err != nil {
			return nil, errors.Wrapf(err, "template seed entry %d", i).WithMeta("index", i)
		}
		out = append(out, s)
	}
	return out, nil
}

// LoadSeed registers every template in the YAML seed read from r.
// It returns the names skipped because they were already registered.
func (r *Registry) LoadSeed(in io.Reader) ([]string, error) {
	templates, err := ParseSeed(in)
	if err != nil {
		return nil, err
	}

	var skipped []string
	for _, t := range templates {
		if !r.Register(t) {
			skipped = append(skipped, t.Name())
		}
	}
	return skipped, nil
}

// Defaults returns the built-in templates
func Defaults() []special.Special {
	templates, err := ParseSeed(bytes.NewReader(defaultSeed))
	if err != nil {
		panic(errors.Wrap(err, "embedded template seed is invalid"))
	}
	return templates
}

// NewWithDefaults creates a registry seeded with the built-in templates
func NewWithDefaults() *Registry {
	r := New()
	for _, t := range Defaults() {
		r.Register(t)
	}
	return r
}
