// SPDX-License-Identifier: MIT

// Package modelfile loads an HMM description from a YAML or JSON document.
//
// The document is parsed into a generic map with yaml.v3 (JSON is valid YAML)
// and then decoded into hmm.Spec through its mapstructure tags:
//
//	states: [Rainy, Sunny]
//	start: {Rainy: 0.6, Sunny: 0.4}
//	transition:
//	  Rainy: {Rainy: 0.7, Sunny: 0.3}
//	  Sunny: {Rainy: 0.4, Sunny: 0.6}
//	emission:
//	  Rainy: {walk: 0.1, shop: 0.4, clean: 0.5}
//	  Sunny: {walk: 0.6, shop: 0.3, clean: 0.1}
package modelfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/stochastic/hmm"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrEmpty indicates a document without any content.
var ErrEmpty = errors.New("modelfile: empty document")

// Decode parses data and returns the model description it holds. Unknown
// top-level keys are rejected. The Spec is not validated; hmm.New does that.
func Decode(data []byte) (hmm.Spec, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return hmm.Spec{}, fmt.Errorf("modelfile: parse: %w", err)
	}
	if len(raw) == 0 {
		return hmm.Spec{}, ErrEmpty
	}

	var spec hmm.Spec
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &spec,
		TagName:          "mapstructure",
		ErrorUnused:      true,
		WeaklyTypedInput: true, // numeric state names arrive as int keys
	})
	if err != nil {
		return hmm.Spec{}, fmt.Errorf("modelfile: decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return hmm.Spec{}, fmt.Errorf("modelfile: decode: %w", err)
	}

	return spec, nil
}

// Load reads and decodes the file at path.
func Load(path string) (hmm.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return hmm.Spec{}, fmt.Errorf("modelfile: %w", err)
	}
	spec, err := Decode(data)
	if err != nil {
		return hmm.Spec{}, fmt.Errorf("%s: %w", path, err)
	}

	return spec, nil
}
