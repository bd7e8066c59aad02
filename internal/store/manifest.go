package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Manifest lists the today documents an FSStore currently holds.
type Manifest struct {
	Version     int       `json:"version"`
	GeneratedAt time.Time `json:"generatedAt"`
	Retention   Retention `json:"retention"`
	Today       TodayMeta `json:"today"`
}

type Retention struct {
	TodayDays int `json:"todayDays"`
}

type TodayMeta struct {
	Dates       []string  `json:"dates"`
	LastWritten time.Time `json:"lastWritten"`
}

func defaultManifest(retentionDays int) Manifest {
	return Manifest{
		Version:     1,
		GeneratedAt: time.Now().UTC(),
		Retention: Retention{
			TodayDays: retentionDays,
		},
		Today: TodayMeta{
			Dates: []string{},
		},
	}
}

// ReadManifest loads the manifest from an FSStore root.
func ReadManifest(basePath string) (Manifest, error) {
	return readManifest(filepath.Join(basePath, "manifest.json"), 0)
}

func readManifest(path string, retentionDays int) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return defaultManifest(retentionDays), err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest(retentionDays), err
	}
	return m, nil
}

func writeManifest(basePath string, m Manifest) error {
	m.GeneratedAt = time.Now().UTC()
	path := filepath.Join(basePath, "manifest.json")
	tmp := path + ".tmp"
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
