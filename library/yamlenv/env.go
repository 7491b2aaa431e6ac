// Package yamlenv provides YAML values that can be taken from the environment.
//
// A scalar written as ${NAME} or ${NAME:default} is resolved from the
// environment variable NAME when the config is decoded; the default is used
// when the variable is unset or empty. Any other scalar is decoded as is.
package yamlenv

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

var reference = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)(?::(.*))?\}$`)

type Env[T any] struct {
	Name  string // environment variable the value came from, if any
	Value T
}

func (e *Env[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return node.Decode(&e.Value)
	}

	raw := node.Value
	if m := reference.FindStringSubmatch(raw); m != nil {
		e.Name = m[1]
		raw = m[2]
		if v, ok := os.LookupEnv(m[1]); ok && v != "" {
			raw = v
		}
	}

	// re-resolve the tag so that "${PORT:8080}" decodes into an int
	resolved := &yaml.Node{Kind: yaml.ScalarNode, Value: raw}
	if err := resolved.Decode(&e.Value); err != nil {
		return fmt.Errorf("yamlenv: line %d: %w", node.Line, err)
	}

	return nil
}

// Or returns the value, or def when the key was absent from the file.
func (e *Env[T]) Or(def T) T {
	if e == nil {
		return def
	}
	return e.Value
}
