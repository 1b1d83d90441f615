// Package storage persists rendered snapshots: a PNG plus a metadata
// sidecar per render, under a flat data directory.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/san-kum/fracview/internal/export"
	"github.com/san-kum/fracview/internal/mandel"
	"github.com/san-kum/fracview/internal/render"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type SnapshotMetadata struct {
	ID        string        `json:"id"`
	Timestamp time.Time     `json:"timestamp"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	MaxIter   int           `json:"max_iter"`
	Palette   string        `json:"palette"`
	Region    mandel.Region `json:"region"`
}

// Save writes the frame and its metadata, returning the snapshot id.
func (s *Store) Save(f *render.Frame, maxIter int, palette string, region mandel.Region) (string, error) {
	id := fmt.Sprintf("render_%d", time.Now().Unix())
	dir := filepath.Join(s.baseDir, id)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	meta := SnapshotMetadata{
		ID:        id,
		Timestamp: time.Now(),
		Width:     f.Width,
		Height:    f.Height,
		MaxIter:   maxIter,
		Palette:   palette,
		Region:    region,
	}

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := export.WritePNG(filepath.Join(dir, "image.png"), f); err != nil {
		return "", err
	}
	return id, nil
}

// Load reads one snapshot's metadata.
func (s *Store) Load(id string) (*SnapshotMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", id, err)
	}
	var meta SnapshotMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", id, err)
	}
	return &meta, nil
}

// ImagePath returns the location of a snapshot's PNG.
func (s *Store) ImagePath(id string) string {
	return filepath.Join(s.baseDir, id, "image.png")
}

// List returns all snapshot metadata, newest first.
func (s *Store) List() ([]SnapshotMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []SnapshotMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}
