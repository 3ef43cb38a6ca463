// internal/defs/loader.go
package defs

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/definitions.yaml
var defaultDefinitions []byte

// Library holds every difficulty and assault plan, keyed by name.
type Library struct {
	Difficulties map[string]DifficultyDefinition `yaml:"difficulties"`
	Plans        map[string]PlanDefinition       `yaml:"plans"`

	aliases map[string]string
}

// Default parses the definitions shipped with the game.
func Default() (*Library, error) {
	lib, err := ParseDefinitions(defaultDefinitions)
	if err != nil {
		return nil, fmt.Errorf("built-in definitions: %w", err)
	}
	return lib, nil
}

// LoadDefinitions reads a definitions file from disk.
func LoadDefinitions(path string) (*Library, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	return ParseDefinitions(file)
}

// ParseDefinitions decodes and validates a definitions document.
func ParseDefinitions(data []byte) (*Library, error) {
	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}
	lib.aliases = make(map[string]string)
	for name, d := range lib.Difficulties {
		if _, ok := lib.Plans[d.Plan]; !ok {
			return nil, fmt.Errorf("difficulty %q: unknown plan %q", name, d.Plan)
		}
		if d.Tunnels <= 0 {
			return nil, fmt.Errorf("difficulty %q: tunnels must be positive", name)
		}
		for _, alias := range d.Aliases {
			lib.aliases[alias] = name
		}
	}
	for name, p := range lib.Plans {
		for i, w := range p.Waves {
			if w.Bee == "" || w.Count <= 0 {
				return nil, fmt.Errorf("plan %q wave %d: bee and positive count required", name, i)
			}
		}
	}
	return &lib, nil
}

// Difficulty resolves a difficulty by name or alias.
func (l *Library) Difficulty(name string) (DifficultyDefinition, bool) {
	name = strings.ToLower(name)
	if canonical, ok := l.aliases[name]; ok {
		name = canonical
	}
	d, ok := l.Difficulties[name]
	return d, ok
}

// Plan returns the named assault plan.
func (l *Library) Plan(name string) (PlanDefinition, bool) {
	p, ok := l.Plans[name]
	return p, ok
}

// DifficultyNames lists the canonical difficulty names, sorted.
func (l *Library) DifficultyNames() []string {
	names := make([]string, 0, len(l.Difficulties))
	for name := range l.Difficulties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadStrategy reads a scripted strategy file.
func LoadStrategy(path string) (*StrategyDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read strategy file: %w", err)
	}
	return ParseStrategy(file)
}

// ParseStrategy decodes and validates a strategy script.
func ParseStrategy(data []byte) (*StrategyDefinition, error) {
	var def StrategyDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to unmarshal strategy: %w", err)
	}
	for i, o := range def.Orders {
		if o.Place == "" {
			return nil, fmt.Errorf("order %d: place required", i)
		}
		if (o.Deploy == "") == !o.Remove {
			return nil, fmt.Errorf("order %d: exactly one of deploy and remove required", i)
		}
	}
	return &def, nil
}
