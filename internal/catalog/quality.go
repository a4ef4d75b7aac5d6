package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// VariantPlaceholder in a profile file is replaced by the manifest variant of the game.
const VariantPlaceholder = "{variant}"

const (
	variantLive     = "slide"
	variantArchived = "complete-trimmed"
)

// QualityProfile describes one resolution variant of a stream.
type QualityProfile struct {
	Key     string `yaml:"key" json:"key"`
	Title   string `yaml:"title" json:"title"`
	File    string `yaml:"file" json:"file"`
	Bitrate int    `yaml:"bitrate" json:"bitrate"`
}

// DefaultProfiles are used when no profile file is configured.
func DefaultProfiles() []QualityProfile {
	return []QualityProfile{
		{Key: "720p60", Title: "720p 60fps", File: "5600K/5600_{variant}.m3u8", Bitrate: 5600000},
		{Key: "720p", Title: "720p", File: "3500K/3500_{variant}.m3u8", Bitrate: 3500000},
		{Key: "540p", Title: "540p", File: "2500K/2500_{variant}.m3u8", Bitrate: 2500000},
		{Key: "360p", Title: "360p", File: "1200K/1200_{variant}.m3u8", Bitrate: 1200000},
	}
}

type profileFile struct {
	Profiles []QualityProfile `yaml:"profiles"`
}

// LoadProfiles reads quality profiles from a YAML file with a top-level "profiles" list.
func LoadProfiles(path string) ([]QualityProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quality profiles: %w", err)
	}
	return ParseProfiles(data)
}

// ParseProfiles decodes and validates YAML quality profiles.
func ParseProfiles(data []byte) ([]QualityProfile, error) {
	var f profileFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode quality profiles: %w", err)
	}
	if err := ValidateProfiles(f.Profiles); err != nil {
		return nil, err
	}
	return f.Profiles, nil
}

// ValidateProfiles requires at least one profile, unique non-empty keys and non-empty files.
func ValidateProfiles(profiles []QualityProfile) error {
	if len(profiles) == 0 {
		return errors.New("no quality profiles defined")
	}
	seen := make(map[string]struct{}, len(profiles))
	for i, p := range profiles {
		if strings.TrimSpace(p.Key) == "" {
			return fmt.Errorf("quality profile %d: key is required", i)
		}
		if strings.TrimSpace(p.File) == "" {
			return fmt.Errorf("quality profile %q: file is required", p.Key)
		}
		if _, dup := seen[p.Key]; dup {
			return fmt.Errorf("quality profile %q: duplicate key", p.Key)
		}
		seen[p.Key] = struct{}{}
	}
	return nil
}

// StreamURL swaps the final path segment of base for the profile file, with the variant
// placeholder set for a live or finished game.
func StreamURL(base, file string, inProgress bool) string {
	variant := variantArchived
	if inProgress {
		variant = variantLive
	}
	prefix := base
	if idx := strings.LastIndex(base, "/"); idx >= 0 {
		prefix = base[:idx]
	}
	return prefix + "/" + strings.ReplaceAll(file, VariantPlaceholder, variant)
}
