package database

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"coronet_planner/internal/models"
)

type CatalogRepository interface {
	InsertBatch(options []*models.CatalogOption) error
	IsTablePopulated() (bool, error)
	List() ([]*models.CatalogOption, error)
	LoadFromMultipleCSV(csvPaths []string, batchSize int) error
}

type catalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

// InsertBatch inserts catalog options in a single transaction. An option
// that already exists keeps its position and takes the new label.
func (r *catalogRepository) InsertBatch(options []*models.CatalogOption) error {
	if len(options) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO catalog_options (
		kind, value, label, position
	) VALUES (?, ?, ?, ?)
	ON CONFLICT(kind, value) DO UPDATE SET label = excluded.label`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, opt := range options {
		if _, err := stmt.Exec(opt.Kind, opt.Value, opt.Label, opt.Position); err != nil {
			return fmt.Errorf("failed to insert catalog option %s/%s: %w", opt.Kind, opt.Value, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *catalogRepository) IsTablePopulated() (bool, error) {
	var ignored int
	err := r.db.QueryRow("SELECT 1 FROM catalog_options LIMIT 1").Scan(&ignored)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check catalog_options table: %w", err)
	}
	return true, nil
}

// List returns every option ordered by kind and position
func (r *catalogRepository) List() ([]*models.CatalogOption, error) {
	rows, err := r.db.Query(`SELECT kind, value, label, position
		FROM catalog_options ORDER BY kind, position, value`)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog options: %w", err)
	}
	defer rows.Close()

	var options []*models.CatalogOption
	for rows.Next() {
		opt := &models.CatalogOption{}
		if err := rows.Scan(&opt.Kind, &opt.Value, &opt.Label, &opt.Position); err != nil {
			return nil, fmt.Errorf("failed to scan catalog option: %w", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog options: %w", err)
	}

	return options, nil
}

// LoadFromMultipleCSV loads catalog options from CSV files with a
// kind,value,label header. New options are appended after the options
// already stored for their kind.
func (r *catalogRepository) LoadFromMultipleCSV(csvPaths []string, batchSize int) error {
	if batchSize <= 0 {
		return fmt.Errorf("batch size must be greater than 0")
	}

	next, err := r.nextPositions()
	if err != nil {
		return err
	}

	batch := make([]*models.CatalogOption, 0, batchSize)

	for _, csvPath := range csvPaths {
		options, err := ReadCatalogCSV(csvPath)
		if err != nil {
			return err
		}

		for _, opt := range options {
			opt.Position = next[opt.Kind]
			next[opt.Kind]++
			batch = append(batch, opt)

			if len(batch) >= batchSize {
				if err := r.InsertBatch(batch); err != nil {
					return fmt.Errorf("failed to insert batch: %w", err)
				}
				batch = batch[:0] // Reset slice but keep capacity
			}
		}
	}

	if len(batch) > 0 {
		if err := r.InsertBatch(batch); err != nil {
			return fmt.Errorf("failed to insert final batch: %w", err)
		}
	}

	return nil
}

// ReadCatalogCSV reads catalog options from a CSV file with a
// kind,value,label header. Rows without a kind or value are skipped and a
// blank label falls back to the value. Positions are left at zero.
func ReadCatalogCSV(csvPath string) ([]*models.CatalogOption, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file %s: %w", csvPath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields per record
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header from %s: %w", csvPath, err)
	}

	headerMap := make(map[string]int)
	for i, h := range header {
		headerMap[strings.ToLower(strings.Trim(strings.TrimSpace(h), "'\""))] = i
	}
	for _, required := range []string{"kind", "value", "label"} {
		if _, ok := headerMap[required]; !ok {
			return nil, fmt.Errorf("CSV file %s is missing the %q column", csvPath, required)
		}
	}

	var options []*models.CatalogOption
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record from %s: %w", csvPath, err)
		}

		opt := &models.CatalogOption{
			Kind:  getField(record, headerMap, "kind"),
			Value: getField(record, headerMap, "value"),
			Label: getField(record, headerMap, "label"),
		}

		if opt.Kind == "" || opt.Value == "" {
			continue
		}
		if opt.Label == "" {
			opt.Label = opt.Value
		}

		options = append(options, opt)
	}

	return options, nil
}

// nextPositions returns, per kind, the position after the last stored option
func (r *catalogRepository) nextPositions() (map[string]int, error) {
	rows, err := r.db.Query(`SELECT kind, MAX(position) FROM catalog_options GROUP BY kind`)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog positions: %w", err)
	}
	defer rows.Close()

	next := make(map[string]int)
	for rows.Next() {
		var kind string
		var maxPos int
		if err := rows.Scan(&kind, &maxPos); err != nil {
			return nil, fmt.Errorf("failed to scan catalog position: %w", err)
		}
		next[kind] = maxPos + 1
	}
	return next, rows.Err()
}

// getField safely retrieves a field from a CSV record by header name
func getField(record []string, headerMap map[string]int, fieldName string) string {
	if idx, ok := headerMap[fieldName]; ok && idx < len(record) {
		return strings.Trim(strings.TrimSpace(record[idx]), "'\"")
	}
	return ""
}
