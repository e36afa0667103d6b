// Package gallery loads cardshow gallery documents and turns them into
// widget trees.
package gallery

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/tomortec/drift-expandable/pkg/animation"
	"github.com/tomortec/drift-expandable/pkg/graphics"
)

// SchemaVersion is the newest gallery schema this build understands. Older
// minor versions of the same major are accepted.
const SchemaVersion = "v1.1.0"

// ErrUnsupportedVersion is returned for documents written for a schema this
// build cannot read.
var ErrUnsupportedVersion = errors.New("unsupported gallery version")

// Document is a parsed gallery file.
type Document struct {
	Version    string    `yaml:"version"`
	Title      string    `yaml:"title,omitempty"`
	Width      float64   `yaml:"width,omitempty"`
	Background string    `yaml:"background,omitempty"`
	Spacing    *float64  `yaml:"spacing,omitempty"`
	Sections   []Section `yaml:"sections"`
}

// Section is one labelled entry: either a single card or a group.
type Section struct {
	Title string     `yaml:"title,omitempty"`
	Card  *CardSpec  `yaml:"card,omitempty"`
	Group *GroupSpec `yaml:"group,omitempty"`
}

// Dims is a [width, height] pair. A negative height on a card selects
// dynamic height.
type Dims [2]float64

// Size converts d to a graphics.Size.
func (d Dims) Size() graphics.Size {
	return graphics.Size{Width: d[0], Height: d[1]}
}

// StyleSpec holds the styling keys shared by cards and groups. Unset keys
// keep the library defaults.
type StyleSpec struct {
	HeaderColor  string      `yaml:"headerColor,omitempty"`
	CardColor    string      `yaml:"cardColor,omitempty"`
	HeaderRadius *float64    `yaml:"headerRadius,omitempty"`
	CardRadius   *float64    `yaml:"cardRadius,omitempty"`
	Shadow       *ShadowSpec `yaml:"shadow,omitempty"`
	Dynamic      bool        `yaml:"dynamic,omitempty"`
	Duration     string      `yaml:"duration,omitempty"`
	Curve        string      `yaml:"curve,omitempty"`
}

// ShadowSpec mirrors expandable.ShadowStyle.
type ShadowSpec struct {
	Radius float64 `yaml:"radius"`
	Color  string  `yaml:"color,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
}

// CardSpec describes a single expandable card.
type CardSpec struct {
	StyleSpec `yaml:",inline"`
	Header    string `yaml:"header"`
	Body      string `yaml:"body"`
	// HeaderSize and CardSize are [width, height] pairs.
	HeaderSize Dims `yaml:"headerSize"`
	CardSize   Dims `yaml:"cardSize"`
	Expanded   bool `yaml:"expanded,omitempty"`
}

// GroupSpec describes a group of cards.
type GroupSpec struct {
	StyleSpec  `yaml:",inline"`
	Headers    []string `yaml:"headers"`
	Bodies     []string `yaml:"bodies"`
	HeaderSize Dims     `yaml:"headerSize"`
	CardSize   Dims     `yaml:"cardSize"`
	Spacing    *float64 `yaml:"spacing,omitempty"`
	Background string   `yaml:"background,omitempty"`
}

// Load reads and validates a gallery document.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gallery: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes and validates a gallery document. Unknown keys are
// rejected so that typos surface instead of silently using defaults.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse gallery: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// CheckVersion accepts versions with the same major as SchemaVersion that
// are not newer than it.
func CheckVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, v)
	}
	if semver.Major(v) != semver.Major(SchemaVersion) || semver.Compare(v, SchemaVersion) > 0 {
		return fmt.Errorf("%w: %s (this build reads %s up to %s)", ErrUnsupportedVersion, v, semver.Major(SchemaVersion), SchemaVersion)
	}
	return nil
}

// Validate checks the version and every value that would otherwise fail
// later at build time. Pairing errors are left to Build so they surface
// as the library's own error.
func (d *Document) Validate() error {
	if err := CheckVersion(d.Version); err != nil {
		return err
	}
	if d.Width < 0 {
		return fmt.Errorf("width must not be negative, got %v", d.Width)
	}
	if _, err := parseColorOr(d.Background, graphics.ColorTransparent); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if len(d.Sections) == 0 {
		return errors.New("gallery has no sections")
	}
	for i, s := range d.Sections {
		if err := s.validate(); err != nil {
			return fmt.Errorf("sections[%d] %q: %w", i, s.Title, err)
		}
	}
	return nil
}

func (s Section) validate() error {
	switch {
	case s.Card != nil && s.Group != nil:
		return errors.New("set either card or group, not both")
	case s.Card != nil:
		if err := validateSizes(s.Card.HeaderSize, s.Card.CardSize); err != nil {
			return err
		}
		return s.Card.StyleSpec.validate()
	case s.Group != nil:
		if err := validateSizes(s.Group.HeaderSize, s.Group.CardSize); err != nil {
			return err
		}
		if _, err := parseColorOr(s.Group.Background, graphics.ColorTransparent); err != nil {
			return fmt.Errorf("background: %w", err)
		}
		return s.Group.StyleSpec.validate()
	default:
		return errors.New("section needs a card or a group")
	}
}

func validateSizes(header, card Dims) error {
	if header[0] <= 0 || header[1] <= 0 {
		return fmt.Errorf("headerSize must be positive, got %v", header)
	}
	if card[0] <= 0 {
		return fmt.Errorf("cardSize width must be positive, got %v", card[0])
	}
	return nil
}

func (s StyleSpec) validate() error {
	for name, value := range map[string]string{"headerColor": s.HeaderColor, "cardColor": s.CardColor} {
		if _, err := parseColorOr(value, 0); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if s.Shadow != nil {
		if _, err := parseColorOr(s.Shadow.Color, 0); err != nil {
			return fmt.Errorf("shadow.color: %w", err)
		}
	}
	if _, err := s.transition(); err != nil {
		return err
	}
	return nil
}

// transition resolves duration and curve, or returns nil when neither is
// set.
func (s StyleSpec) transition() (*transition, error) {
	if s.Duration == "" && s.Curve == "" {
		return nil, nil
	}
	timing := &transition{curve: animation.EaseInOut, duration: 350 * time.Millisecond}
	if s.Duration != "" {
		d, err := time.ParseDuration(s.Duration)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("duration: invalid value %q", s.Duration)
		}
		timing.duration = d
	}
	if s.Curve != "" {
		curve, ok := animation.CurveByName(s.Curve)
		if !ok {
			return nil, fmt.Errorf("curve: unknown curve %q", s.Curve)
		}
		timing.curve = curve
	}
	return timing, nil
}

type transition struct {
	duration time.Duration
	curve    func(float64) float64
}

func parseColorOr(s string, fallback graphics.Color) (graphics.Color, error) {
	if strings.TrimSpace(s) == "" {
		return fallback, nil
	}
	return graphics.ParseColor(s)
}

// Entry describes one card of the document.
type Entry struct {
	Section    string
	HeaderSize graphics.Size
	CardSize   graphics.Size
	Dynamic    bool
}

// Entries lists the document's cards in the order they are mounted.
func (d *Document) Entries() []Entry {
	var entries []Entry
	for _, s := range d.Sections {
		switch {
		case s.Card != nil:
			entries = append(entries, Entry{
				Section:    s.Title,
				HeaderSize: s.Card.HeaderSize.Size(),
				CardSize:   s.Card.CardSize.Size(),
				Dynamic:    s.Card.Dynamic || s.Card.CardSize[1] < 0,
			})
		case s.Group != nil:
			for range s.Group.Bodies {
				entries = append(entries, Entry{
					Section:    s.Title,
					HeaderSize: s.Group.HeaderSize.Size(),
					CardSize:   s.Group.CardSize.Size(),
					Dynamic:    s.Group.Dynamic || s.Group.CardSize[1] < 0,
				})
			}
		}
	}
	return entries
}
