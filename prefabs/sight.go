package prefabs

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// SightRule is a compiled tengo script that decides whether an enemy has
// spotted the player. The script reads distance and sight_range and must set
// a bool named spotted.
type SightRule struct {
	name     string
	compiled *tengo.Compiled
}

// LoadSightRule compiles a script from prefabs/scripts.
func LoadSightRule(name string) (*SightRule, error) {
	src, err := LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load script %s: %w", name, err)
	}
	return CompileSightRule(name, src)
}

func CompileSightRule(name string, src []byte) (*SightRule, error) {
	script := tengo.NewScript(src)
	_ = script.Add("distance", 0.0)
	_ = script.Add("sight_range", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("prefabs: compile script %s: %w", name, err)
	}
	rule := &SightRule{name: name, compiled: compiled}

	// Globals stay undefined until the script has run once.
	if _, err := rule.Spotted(0, 0); err != nil {
		return nil, err
	}
	return rule, nil
}

func (r *SightRule) Name() string {
	return r.name
}

// Spotted runs the script for one enemy.
func (r *SightRule) Spotted(distance, sightRange float64) (bool, error) {
	if err := r.compiled.Set("distance", distance); err != nil {
		return false, fmt.Errorf("prefabs: script %s: set distance: %w", r.name, err)
	}
	if err := r.compiled.Set("sight_range", sightRange); err != nil {
		return false, fmt.Errorf("prefabs: script %s: set sight_range: %w", r.name, err)
	}
	if err := r.compiled.Run(); err != nil {
		return false, fmt.Errorf("prefabs: script %s: run: %w", r.name, err)
	}
	v := r.compiled.Get("spotted")
	if v.ValueType() != "bool" {
		return false, fmt.Errorf("prefabs: script %s: spotted is %s, want bool", r.name, v.ValueType())
	}
	return v.Bool(), nil
}
