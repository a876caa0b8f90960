package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/san-kum/pocketdim/internal/sim"
)

const (
	metadataFile    = "metadata.json"
	populationsFile = "populations.csv"
)

// Store keeps one directory per finished run. Only the final count and the
// per-generation populations are recorded, never the cells themselves.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Timestamp   time.Time          `json:"timestamp"`
	Input       string             `json:"input"`
	Dimension   int                `json:"dimension"`
	Rounds      int                `json:"rounds"`
	Workers     int                `json:"workers"`
	ActiveCount int                `json:"active_count"`
	Elapsed     time.Duration      `json:"elapsed_ns"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Save records result under a new run id. ID, Timestamp, ActiveCount and
// Metrics of meta are filled in from the run.
func (s *Store) Save(meta RunMetadata, result *sim.Result) (string, error) {
	now := time.Now()
	meta.ID = fmt.Sprintf("d%d_%d", meta.Dimension, now.UnixNano())
	meta.Timestamp = now
	meta.ActiveCount = result.ActiveCount()
	meta.Metrics = result.Metrics

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", errors.Wrapf(err, "[Save] failed to create run dir: %s", runDir)
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", errors.Wrap(err, "[Save] failed to create metadata")
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", errors.Wrap(err, "[Save] failed to encode metadata")
	}

	csvFile, err := os.Create(filepath.Join(runDir, populationsFile))
	if err != nil {
		return "", errors.Wrap(err, "[Save] failed to create populations")
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{"generation", "population"}); err != nil {
		return "", errors.Wrap(err, "[Save] failed to write header")
	}
	for gen, pop := range result.Populations {
		if err := w.Write([]string{strconv.Itoa(gen), strconv.Itoa(pop)}); err != nil {
			return "", errors.Wrapf(err, "[Save] failed to write generation %d", gen)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", errors.Wrap(err, "[Save] failed to flush populations")
	}

	return meta.ID, nil
}

// List returns every readable run, skipping directories without valid
// metadata.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] run %s", runID)
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, errors.Wrapf(err, "[Load] run %s: malformed metadata", runID)
	}

	return &meta, nil
}

// LoadPopulations returns the population of every generation of a run,
// indexed by generation.
func (s *Store) LoadPopulations(runID string) ([]int, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, populationsFile))
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadPopulations] run %s", runID)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadPopulations] run %s", runID)
	}

	if len(records) < 2 {
		return []int{}, nil
	}

	pops := make([]int, 0, len(records)-1)
	for i, record := range records[1:] {
		pop, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, errors.Wrapf(err, "[LoadPopulations] run %s line %d", runID, i+2)
		}
		pops = append(pops, pop)
	}

	return pops, nil
}
