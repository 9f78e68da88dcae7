package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/TejaswiBhavani/EVStockMaster/internal/contracts"
)

// csvHeader is the column layout of the on-disk demand cache.
var csvHeader = []string{"part_name", "date", "demand", "lead_time"}

const csvDateLayout = "2006-01-02"

// CSVStore caches the generated dataset on disk so restarts do not need
// to regenerate it.
type CSVStore struct {
	path string
	log  zerolog.Logger
}

// NewCSVStore creates a store writing to path.
func NewCSVStore(path string, log zerolog.Logger) *CSVStore {
	return &CSVStore{
		path: path,
		log:  log.With().Str("component", "csv_store").Logger(),
	}
}

// Path returns the cache file location.
func (s *CSVStore) Path() string { return s.path }

// Exists reports whether the cache file is present.
func (s *CSVStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Save writes the full dataset, creating parent directories as needed.
func (s *CSVStore) Save(records []contracts.DemandRecord) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create cache dir: %w", err)
		}
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create cache file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.PartName,
			r.Date.Format(csvDateLayout),
			strconv.Itoa(r.Demand),
			strconv.Itoa(r.LeadTime),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush cache: %w", err)
	}

	s.log.Info().Str("path", s.path).Int("records", len(records)).Msg("demand cache saved")
	return nil
}

// Load reads the full dataset back.
func (s *CSVStore) Load() ([]contracts.DemandRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open cache file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(csvHeader)

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read cache: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	records := make([]contracts.DemandRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		date, err := time.Parse(csvDateLayout, row[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: parse date %q: %w", i+2, row[1], err)
		}
		demand, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: parse demand %q: %w", i+2, row[2], err)
		}
		leadTime, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("row %d: parse lead_time %q: %w", i+2, row[3], err)
		}
		records = append(records, contracts.DemandRecord{
			PartName: row[0],
			Date:     date,
			Demand:   demand,
			LeadTime: leadTime,
		})
	}

	s.log.Info().Str("path", s.path).Int("records", len(records)).Msg("demand cache loaded")
	return records, nil
}
