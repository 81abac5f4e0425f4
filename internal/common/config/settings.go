package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DecodeSettings overlays an agent's free-form settings onto out, which should
// already hold that agent's defaults. Unknown keys are rejected.
func DecodeSettings(settings map[string]interface{}, out interface{}) error {
	if len(settings) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		ZeroFields:       true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return fmt.Errorf("build settings decoder: %w", err)
	}
	if err := dec.Decode(settings); err != nil {
		return fmt.Errorf("decode settings: %w", err)
	}
	return nil
}
