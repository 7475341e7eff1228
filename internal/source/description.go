// Package source loads build inputs from disk: the YAML font description
// and the directory of glyph bitmaps.
package source

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/pixfont"
	"github.com/gogpu/pixfont/build"
)

// descriptionFile is the YAML form of a build.Description:
//
//	lineHeight: 11
//	spaceWidth: 2
//	baseline: 8
//	defaultBearings: [0, 1]
//	bearings:
//	  j: [-2, 1]
//	leftKerningClasses:
//	  1: [A, B, C]
//	rightKerningClasses:
//	  14: [",", "."]
//	kerningPairs:
//	  - {left: 1, right: 14, delta: -1}
//	kerningOverrides:
//	  - {left: C, right: f, delta: -1}
type descriptionFile struct {
	LineHeight          int                    `yaml:"lineHeight"`
	SpaceWidth          int                    `yaml:"spaceWidth"`
	Baseline            int                    `yaml:"baseline"`
	DefaultBearings     []int32                `yaml:"defaultBearings"`
	Bearings            yaml.Node              `yaml:"bearings"`
	LeftKerningClasses  yaml.Node              `yaml:"leftKerningClasses"`
	RightKerningClasses yaml.Node              `yaml:"rightKerningClasses"`
	KerningPairs        []kerningPairEntry     `yaml:"kerningPairs"`
	KerningOverrides    []kerningOverrideEntry `yaml:"kerningOverrides"`
}

type kerningPairEntry struct {
	Left  uint8 `yaml:"left"`
	Right uint8 `yaml:"right"`
	Delta int32 `yaml:"delta"`
}

// Identities are decoded as nodes so that a plain ~ stays the tilde glyph
// instead of resolving to null.
type kerningOverrideEntry struct {
	Left  yaml.Node `yaml:"left"`
	Right yaml.Node `yaml:"right"`
	Delta int32     `yaml:"delta"`
}

// LoadDescription reads and parses a YAML description file.
func LoadDescription(path string) (build.Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return build.Description{}, err
	}
	desc, err := ParseDescription(data)
	if err != nil {
		return build.Description{}, fmt.Errorf("%s: %w", path, err)
	}
	return desc, nil
}

// ParseDescription parses a YAML description.
func ParseDescription(data []byte) (build.Description, error) {
	var f descriptionFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return build.Description{}, fmt.Errorf("source: parsing description: %w", err)
	}

	desc := build.Description{
		LineHeight: f.LineHeight,
		SpaceWidth: f.SpaceWidth,
		Baseline:   f.Baseline,
	}
	var err error
	if desc.DefaultBearings, err = bearingPair("defaultBearings", f.DefaultBearings); err != nil {
		return build.Description{}, err
	}

	if desc.Bearings, err = parseBearings(&f.Bearings); err != nil {
		return build.Description{}, err
	}

	if desc.LeftKerningClass, err = invertClasses("leftKerningClasses", &f.LeftKerningClasses); err != nil {
		return build.Description{}, err
	}
	if desc.RightKerningClass, err = invertClasses("rightKerningClasses", &f.RightKerningClasses); err != nil {
		return build.Description{}, err
	}

	for _, p := range f.KerningPairs {
		desc.KerningPairs = append(desc.KerningPairs, pixfont.KerningPair{Left: p.Left, Right: p.Right, Delta: p.Delta})
	}
	for _, o := range f.KerningOverrides {
		left, err := nodeIdentity(&o.Left)
		if err != nil {
			return build.Description{}, fmt.Errorf("source: kerningOverrides: %w", err)
		}
		right, err := nodeIdentity(&o.Right)
		if err != nil {
			return build.Description{}, fmt.Errorf("source: kerningOverrides: %w", err)
		}
		desc.KerningOverrides = append(desc.KerningOverrides, build.KerningOverride{Left: left, Right: right, Delta: o.Delta})
	}
	return desc, nil
}

func bearingPair(field string, v []int32) (pixfont.Bearings, error) {
	switch len(v) {
	case 0:
		return pixfont.Bearings{}, nil
	case 2:
		return pixfont.Bearings{Left: v[0], Right: v[1]}, nil
	}
	return pixfont.Bearings{}, fmt.Errorf("source: %s: want [left, right], got %d values", field, len(v))
}

// mappingPairs returns the key/value nodes of a mapping. An absent or null
// node is an empty mapping.
func mappingPairs(field string, n *yaml.Node) ([][2]*yaml.Node, error) {
	if n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.Tag == "!!null") {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("source: %s: line %d: want a mapping", field, n.Line)
	}
	pairs := make([][2]*yaml.Node, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		pairs = append(pairs, [2]*yaml.Node{n.Content[i], n.Content[i+1]})
	}
	return pairs, nil
}

// nodeIdentity reads a glyph identity from a scalar node using its literal
// text, so ~ and other YAML null spellings name glyphs.
func nodeIdentity(n *yaml.Node) (build.Identity, error) {
	if n.Kind != 0 && n.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("%w: line %d: not a scalar", build.ErrInvalidIdentity, n.Line)
	}
	return build.NewIdentity(n.Value)
}

func parseBearings(n *yaml.Node) (map[build.Identity]pixfont.Bearings, error) {
	pairs, err := mappingPairs("bearings", n)
	if err != nil {
		return nil, err
	}
	out := make(map[build.Identity]pixfont.Bearings, len(pairs))
	for _, kv := range pairs {
		id, err := nodeIdentity(kv[0])
		if err != nil {
			return nil, fmt.Errorf("source: bearings: %w", err)
		}
		var v []int32
		if err := kv[1].Decode(&v); err != nil {
			return nil, fmt.Errorf("source: bearings %s: %w", id, err)
		}
		if out[id], err = bearingPair("bearings "+string(id), v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// invertClasses turns class -> identities lists into an identity -> class map.
func invertClasses(field string, n *yaml.Node) (map[build.Identity]uint8, error) {
	pairs, err := mappingPairs(field, n)
	if err != nil {
		return nil, err
	}
	out := make(map[build.Identity]uint8)
	for _, kv := range pairs {
		var class uint8
		if kv[0].Kind != yaml.ScalarNode || kv[0].Tag == "!!null" {
			return nil, fmt.Errorf("source: %s: line %d: class must be a number", field, kv[0].Line)
		}
		if err := kv[0].Decode(&class); err != nil {
			return nil, fmt.Errorf("source: %s: class %q: %w", field, kv[0].Value, err)
		}
		members := kv[1]
		if members.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("source: %s: class %d: line %d: want a list", field, class, members.Line)
		}
		for _, m := range members.Content {
			id, err := nodeIdentity(m)
			if err != nil {
				return nil, fmt.Errorf("source: %s: %w", field, err)
			}
			if prev, dup := out[id]; dup && prev != class {
				return nil, fmt.Errorf("source: %s: %s is in classes %d and %d", field, id, prev, class)
			}
			out[id] = class
		}
	}
	return out, nil
}
