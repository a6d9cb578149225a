package definition

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Definition is the declarative form of a state machine.
type Definition struct {
	States       []string     `yaml:"states"`
	Events       []string     `yaml:"events"`
	DefaultState string       `yaml:"default_state,omitempty"`
	Transitions  []Transition `yaml:"transitions"`
}

// Transition declares the branches taken when Event arrives in State.
type Transition struct {
	State   string `yaml:"state"`
	Event   string `yaml:"event"`
	Decider string `yaml:"decider,omitempty"`
	Next    Next   `yaml:"next"`
}

// Branch declares one candidate outcome. Action names an action resolved on the owner.
type Branch struct {
	State  string `yaml:"state"`
	Name   string `yaml:"name,omitempty"`
	Action string `yaml:"action,omitempty"`
}

// Next is the list of branches of a transition. In YAML it may be written as a
// bare state name, a single branch mapping, or a sequence of either.
type Next []Branch

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *Next) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*n = Next{{State: node.Value}}
		return nil
	case yaml.MappingNode:
		var b Branch
		if err := node.Decode(&b); err != nil {
			return err
		}
		*n = Next{b}
		return nil
	case yaml.SequenceNode:
		out := make(Next, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind == yaml.SequenceNode {
				return fmt.Errorf("%w (line %d)", ErrInvalidNext, item.Line)
			}
			var one Next
			if err := one.UnmarshalYAML(item); err != nil {
				return err
			}
			out = append(out, one...)
		}
		*n = out
		return nil
	}
	return fmt.Errorf("%w (line %d)", ErrInvalidNext, node.Line)
}

// Parse decodes a YAML definition.
func Parse(ctx context.Context, content []byte) (*Definition, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var def Definition
	if err := yaml.Unmarshal(content, &def); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return &def, nil
}

// Load reads and decodes the YAML definition at path.
func Load(ctx context.Context, path string) (*Definition, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadingDefinition, err)
	}
	return Parse(ctx, content)
}

// DeciderNames returns the distinct decider names referenced by the transitions, in order.
func (d *Definition) DeciderNames() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, t := range d.Transitions {
		if t.Decider == "" {
			continue
		}
		if _, ok := seen[t.Decider]; ok {
			continue
		}
		seen[t.Decider] = struct{}{}
		names = append(names, t.Decider)
	}
	return names
}
