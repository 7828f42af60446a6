package generate

import (
	"fmt"
	"os"
	"path/filepath"

	"sysforge/internal/config"
	"sysforge/pkg/logging"
)

// WriteArtifacts persists an artifact set under outputDir and serializes the
// full IR as config.json alongside it. Scripts get the executable bit;
// everything else is written world-readable, owner-writable.
//
// This is the single side-effecting step of the cold path; Generate itself
// never touches the filesystem.
func WriteArtifacts(outputDir string, cfg *config.Configuration, artifacts []Artifact) error {
	for _, artifact := range artifacts {
		path := filepath.Join(outputDir, filepath.FromSlash(artifact.Path))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", artifact.Path, err)
		}

		mode := os.FileMode(0o644)
		if artifact.Kind == KindScript {
			mode = 0o755
		}
		if err := os.WriteFile(path, []byte(artifact.Content), mode); err != nil {
			return fmt.Errorf("writing %s: %w", artifact.Path, err)
		}
		logging.Debug("ArtifactWriter", "Wrote %s (%s)", artifact.Path, artifact.Kind)
	}

	data, err := config.MarshalJSON(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outputDir, "config.json"), data, 0o644); err != nil {
		return fmt.Errorf("writing config.json: %w", err)
	}

	logging.Info("ArtifactWriter", "Wrote %d artifacts to %s", len(artifacts)+1, outputDir)
	return nil
}
