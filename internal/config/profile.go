package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// ApplyProfile overlays the named profile's values onto the scan and
// generation sections. Profile maps use the same keys as the config file
// (e.g. "extensions", "before_lines", "model"); keys belonging to either
// section may appear in one flat map.
//
// The merged configuration is re-validated so a profile cannot smuggle in
// invalid values.
func (c *Config) ApplyProfile(name string) error {
	profile, ok := c.Profiles[name]
	if !ok {
		return fmt.Errorf("unknown profile %q", name)
	}

	// Decode the flat profile map over both sections. ErrorUnused is off:
	// scan keys are unused when decoding the generation section and vice
	// versa, so each decode pass picks out the keys it recognizes.
	if err := decodeInto(profile, &c.Scan); err != nil {
		return fmt.Errorf("profile %q: %w", name, err)
	}
	if err := decodeInto(profile, &c.Generation); err != nil {
		return fmt.Errorf("profile %q: %w", name, err)
	}

	return c.Validate()
}

func decodeInto(src map[string]any, dst any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dst,
		WeaklyTypedInput: true,
		// A profile value replaces the default outright. Without this,
		// mapstructure merges slices element-wise and a shorter override
		// keeps the tail of the default.
		ZeroFields: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(src)
}
