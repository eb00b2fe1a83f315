package profile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/codekit"
)

// Profile is one named generation recipe as written in a profiles document.
// Exactly one of Template and Length must be set; the remaining fields are
// optional.
type Profile struct {
	Template string `yaml:"template,omitempty"`
	Length   int    `yaml:"length,omitempty"`
	Count    int    `yaml:"count,omitempty"`
	Charset  string `yaml:"charset,omitempty"`
	Pool     string `yaml:"pool,omitempty"`
	Prefix   string `yaml:"prefix,omitempty"`
	Suffix   string `yaml:"suffix,omitempty"`
}

// Config resolves the profile into a generation config. Count defaults to 1
// and Charset to alphanumeric when omitted.
func (p Profile) Config() (codekit.Config, error) {
	var cfg codekit.Config

	switch {
	case p.Length < 0:
		return cfg, fmt.Errorf("%w: length must not be negative", ErrInvalidProfile)
	case p.Count < 0:
		return cfg, fmt.Errorf("%w: count must not be negative", ErrInvalidProfile)
	case p.Template != "" && p.Length > 0:
		return cfg, fmt.Errorf("%w: template and length are mutually exclusive", ErrInvalidProfile)
	case p.Template == "" && p.Length == 0:
		return cfg, fmt.Errorf("%w: either template or length is required", ErrInvalidProfile)
	}

	if p.Template != "" {
		cfg.Pattern = codekit.Template(p.Template)
	} else {
		cfg.Pattern = codekit.Length(p.Length)
	}

	charset, err := parseCharset(p.Charset, p.Pool)
	if err != nil {
		return codekit.Config{}, err
	}
	cfg.Charset = charset

	cfg.Count = p.Count
	if cfg.Count == 0 {
		cfg.Count = 1
	}

	cfg.Prefix = p.Prefix
	cfg.Suffix = p.Suffix
	return cfg, nil
}

func parseCharset(name, pool string) (codekit.Charset, error) {
	if pool != "" && name != "custom" {
		return codekit.Charset{}, fmt.Errorf("%w: pool is only valid with the custom charset", ErrInvalidProfile)
	}

	switch name {
	case "", "alphanumeric":
		return codekit.Alphanumeric, nil
	case "numeric":
		return codekit.Numeric, nil
	case "alphabetic":
		return codekit.Alphabetic, nil
	case "custom":
		if pool == "" {
			return codekit.Charset{}, fmt.Errorf("%w: custom charset requires a pool", ErrInvalidProfile)
		}
		return codekit.Custom(pool), nil
	default:
		return codekit.Charset{}, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
	}
}

// Profiles is a parsed profiles document.
type Profiles struct {
	profiles map[string]Profile
}

// Load decodes a profiles document from r. Unknown fields are rejected so a
// typo in a profile key fails loudly instead of silently falling back to a
// default.
func Load(r io.Reader) (*Profiles, error) {
	var doc struct {
		Profiles map[string]Profile `yaml:"profiles"`
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrParsingProfiles, err)
	}
	if len(doc.Profiles) == 0 {
		return nil, fmt.Errorf("%w: document defines no profiles", ErrParsingProfiles)
	}

	return &Profiles{profiles: doc.Profiles}, nil
}

// LoadFile reads and decodes the profiles document at path.
func LoadFile(path string) (*Profiles, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open profiles file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Names returns the defined profile names in sorted order.
func (p *Profiles) Names() []string {
	names := make([]string, 0, len(p.profiles))
	for name := range p.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve looks up a profile by name and resolves it into a generation
// config.
func (p *Profiles) Resolve(name string) (codekit.Config, error) {
	prof, ok := p.profiles[name]
	if !ok {
		return codekit.Config{}, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	return prof.Config()
}
