package storage

import (
	"encoding/json"
	"io"
)

type ExportData struct {
	RunMetadata
	Populations []int `json:"populations"`
}

// Export writes the metadata and populations of a stored run as indented
// JSON.
func (s *Store) Export(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	pops, err := s.LoadPopulations(runID)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ExportData{RunMetadata: *meta, Populations: pops})
}
