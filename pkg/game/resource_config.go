package game

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ResourceConfig represents the top-level resource configuration loaded from YAML.
// It defines the structure of data/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: resources
//	groups:
//	  group_name:
//	    images: [...]
//	    sounds: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Configuration file version
	BasePath string                   `yaml:"base_path"` // Base path for all resources, relative to the asset root
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup represents a collection of related resources that can be loaded together.
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"` // List of image resources in this group
	Sounds []SoundResource `yaml:"sounds"` // List of sound resources in this group
}

// ImageResource represents a single image resource definition.
// It can be a simple image or a horizontal sprite sheet.
//
// Examples:
//
//	Simple image:
//	  - id: IMAGE_BACKGROUND
//	    path: images/gameBackround2.png
//
//	Sprite sheet:
//	  - id: IMAGE_CAR_STRAIGHT
//	    path: images/carStraight.png
//	    cols: 7
type ImageResource struct {
	ID   string `yaml:"id"`             // Resource ID (unique identifier)
	Path string `yaml:"path"`           // Relative file path from base_path
	Cols int    `yaml:"cols,omitempty"` // Sprite sheet columns (0 or 1 for a single frame)
}

// SoundResource represents a single sound/audio resource definition.
//
// Example:
//   - id: MUSIC_BACKGROUND
//     path: sounds/marioKart.mp3
//     loop: true
type SoundResource struct {
	ID   string `yaml:"id"`             // Resource ID (unique identifier)
	Path string `yaml:"path"`           // Relative file path from base_path
	Loop bool   `yaml:"loop,omitempty"` // Loop forever (background music)
}

// ParseResourceConfig parses and validates resource configuration YAML.
// Every resource ID must be unique across all groups.
func ParseResourceConfig(data []byte) (*ResourceConfig, error) {
	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse resource config: %w", err)
	}

	seen := make(map[string]string)
	for groupName, group := range cfg.Groups {
		for _, img := range group.Images {
			if err := checkResourceEntry(seen, groupName, img.ID, img.Path); err != nil {
				return nil, err
			}
			if img.Cols < 0 {
				return nil, fmt.Errorf("image %s: cols must be >= 0, got %d", img.ID, img.Cols)
			}
		}
		for _, sound := range group.Sounds {
			if err := checkResourceEntry(seen, groupName, sound.ID, sound.Path); err != nil {
				return nil, err
			}
		}
	}

	return &cfg, nil
}

func checkResourceEntry(seen map[string]string, groupName, id, path string) error {
	if id == "" {
		return fmt.Errorf("group %s: resource with empty id (path %q)", groupName, path)
	}
	if path == "" {
		return fmt.Errorf("group %s: resource %s has empty path", groupName, id)
	}
	if other, exists := seen[id]; exists {
		return fmt.Errorf("duplicate resource id %s (groups %s and %s)", id, other, groupName)
	}
	seen[id] = groupName
	return nil
}

// buildFullPath constructs the full file path for a resource.
// It combines the base path with the resource's relative path.
//
// Parameters:
//   - basePath: The base path from ResourceConfig (e.g., "resources")
//   - relativePath: The resource's relative path (e.g., "images/carLeft.png")
//
// Returns:
//   - The full file path (e.g., "resources/images/carLeft.png")
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
