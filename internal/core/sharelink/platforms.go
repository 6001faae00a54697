package sharelink

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed platforms.yaml
var platformsYAML []byte

// Platform describes one supported music service.
type Platform struct {
	Key      string `yaml:"-"`
	Name     string `yaml:"name"`
	Template string `yaml:"template"`
}

// URL expands the platform's URL template with the decoded type and id.
func (p Platform) URL(typ, id string) string {
	return strings.NewReplacer("{type}", typ, "{id}", id).Replace(p.Template)
}

var registry = mustLoadRegistry()

func mustLoadRegistry() map[string]Platform {
	var file struct {
		Platforms map[string]Platform `yaml:"platforms"`
	}
	if err := yaml.Unmarshal(platformsYAML, &file); err != nil {
		panic(fmt.Sprintf("sharelink: embedded platform registry is invalid: %v", err))
	}

	registry := make(map[string]Platform, len(file.Platforms))
	for key, platform := range file.Platforms {
		platform.Key = strings.ToLower(key)
		registry[platform.Key] = platform
	}
	return registry
}
