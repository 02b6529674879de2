// Package testdata embeds recorded landmark service responses for tests.
package testdata

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"github.com/ayusman/memecam/internal/detector"
)

//go:embed observations/*.json
var observationsFS embed.FS

// LoadObservation decodes the fixture observations/<name>.json.
func LoadObservation(name string) (detector.Observation, error) {
	data, err := observationsFS.ReadFile(path.Join("observations", name+".json"))
	if err != nil {
		return detector.Observation{}, fmt.Errorf("load observation %s: %w", name, err)
	}

	obs, err := detector.ParseResponse(data, 0)
	if err != nil {
		return detector.Observation{}, fmt.Errorf("decode observation %s: %w", name, err)
	}

	return obs, nil
}

// ObservationNames lists every embedded fixture without its extension.
func ObservationNames() ([]string, error) {
	entries, err := observationsFS.ReadDir("observations")
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	return names, nil
}

// LoadSequence loads several fixtures in order, e.g. to script a detector.
func LoadSequence(names ...string) ([]detector.Observation, error) {
	seq := make([]detector.Observation, 0, len(names))
	for _, name := range names {
		obs, err := LoadObservation(name)
		if err != nil {
			return nil, err
		}
		seq = append(seq, obs)
	}
	return seq, nil
}
