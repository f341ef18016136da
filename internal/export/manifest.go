package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Index int     `json:"index"`
	Angle float64 `json:"angle"`
	Image string  `json:"image"`
}

// WriteManifest writes the manifest for the successfully exported frames,
// creating its directory if needed.
func WriteManifest(path string, frames []Frame, results []Result) error {
	ok := make(map[int]string, len(results))
	for _, r := range results {
		if r.Success {
			ok[r.Index] = r.Image
		}
	}

	entries := make([]ManifestEntry, 0, len(frames))
	for _, f := range frames {
		img, found := ok[f.Index]
		if !found {
			continue
		}
		entries = append(entries, ManifestEntry{
			Index: f.Index,
			Angle: f.Angle,
			Image: img,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("export: create manifest dir: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
