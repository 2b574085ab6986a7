package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/martinschatz-cz/docker-parallel-processing/internal/worker/core"
)

// ArtifactName returns the output filename for a replica. The name
// embeds the replica id so replicas sharing an output directory never
// overwrite each other, and merge tooling can enumerate
// results_0..results_{count-1}.
func ArtifactName(replicaID int) string {
	return fmt.Sprintf("results_%d.json", replicaID)
}

// WriteArtifact persists the ResultSet to
// <outputDir>/results_<replicaID>.json and returns the final path.
// The write goes through a temp file, fsync and rename so a reader
// either sees the complete artifact or none at all; a replica killed
// mid-write leaves nothing under the final name.
func WriteArtifact(outputDir string, replicaID int, results core.ResultSet) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", err
	}
	data = append(data, '\n')

	path := filepath.Join(outputDir, ArtifactName(replicaID))
	if err := writeFileAtomic(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return fsyncDir(dir)
}

func fsyncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
