package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Dataset is one loaded category dataset: a read-only mapping from
// entity (country) name to its numeric value. Built once by LoadDataset
// and never mutated.
type Dataset struct {
	Category string
	Field    string // name of the value column that was picked
	byEntity map[string]float64
}

// Value looks up an entity by exact, case-sensitive name. A nil Dataset
// (not yet loaded, or load failed) reports no match.
func (d *Dataset) Value(entity string) (float64, bool) {
	if d == nil {
		return 0, false
	}
	v, ok := d.byEntity[entity]
	return v, ok
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.byEntity)
}

// Entities returns the record names in unspecified order.
func (d *Dataset) Entities() []string {
	if d == nil {
		return nil
	}
	out := make([]string, 0, len(d.byEntity))
	for k := range d.byEntity {
		out = append(out, k)
	}
	return out
}

// entityKeys are the record-name columns recognized across data sources.
var entityKeys = []string{"Entity", "entity", "Country", "country", "name"}

// skipKeys are columns that never hold the category value.
var skipKeys = map[string]bool{
	"Entity": true, "entity": true, "Country": true, "country": true,
	"name": true, "Code": true, "code": true, "Year": true, "year": true,
}

// LoadDataset reads a category dataset from a JSON or CSV file. Each
// record carries an entity name plus one numeric field; the first
// numeric column that is not an identifier is taken as the value.
// Records with a duplicate entity keep the last value seen.
func LoadDataset(path, category string) (*Dataset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return parseCSVDataset(b, category)
	default:
		return parseJSONDataset(b, category)
	}
}

func parseJSONDataset(b []byte, category string) (*Dataset, error) {
	var rows []map[string]any
	if err := json.Unmarshal(b, &rows); err != nil {
		return nil, fmt.Errorf("dataset %s: %w", category, err)
	}
	d := &Dataset{Category: category, byEntity: make(map[string]float64, len(rows))}
	for _, row := range rows {
		name := ""
		for _, k := range entityKeys {
			if v, ok := row[k].(string); ok && v != "" {
				name = v
				break
			}
		}
		if name == "" {
			continue
		}
		if d.Field != "" {
			if v, ok := row[d.Field].(float64); ok {
				d.byEntity[name] = v
			}
			continue
		}
		for k, v := range row {
			if skipKeys[k] {
				continue
			}
			if f, ok := v.(float64); ok {
				d.Field = k
				d.byEntity[name] = f
				break
			}
		}
	}
	if len(d.byEntity) == 0 {
		return nil, fmt.Errorf("dataset %s: no usable records", category)
	}
	return d, nil
}

func parseCSVDataset(b []byte, category string) (*Dataset, error) {
	r := csv.NewReader(strings.NewReader(string(b)))
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", category, err)
	}
	if len(recs) < 2 {
		return nil, errors.New("dataset " + category + ": empty csv")
	}
	header := recs[0]
	idxEntity := -1
	for i, h := range header {
		for _, k := range entityKeys {
			if h == k {
				idxEntity = i
				break
			}
		}
		if idxEntity != -1 {
			break
		}
	}
	if idxEntity == -1 {
		return nil, errors.New("dataset " + category + ": entity column not found")
	}
	d := &Dataset{Category: category, byEntity: make(map[string]float64, len(recs)-1)}
	idxValue := -1
	for _, row := range recs[1:] {
		if idxEntity >= len(row) {
			continue
		}
		name := strings.TrimSpace(row[idxEntity])
		if name == "" {
			continue
		}
		if idxValue == -1 {
			for i, cell := range row {
				if i == idxEntity || (i < len(header) && skipKeys[header[i]]) {
					continue
				}
				if _, err := strconv.ParseFloat(strings.TrimSpace(cell), 64); err == nil {
					idxValue = i
					if i < len(header) {
						d.Field = header[i]
					}
					break
				}
			}
		}
		if idxValue == -1 || idxValue >= len(row) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[idxValue]), 64)
		if err != nil {
			continue
		}
		d.byEntity[name] = v
	}
	if len(d.byEntity) == 0 {
		return nil, errors.New("dataset " + category + ": no valid rows parsed")
	}
	return d, nil
}
