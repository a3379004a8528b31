package project

import (
	"encoding/csv"
	"fmt"
	"os"
)

// LoadMetadata reads a metadata export in CSV form. The header row must name
// an item_id column; item_title, collection_title and item_date are picked
// up when present. Empty cells count as absent.
func LoadMetadata(path string) (Metadata, error) {
	md := Metadata{ItemMetadata: make(map[string]*ItemMetadata)}

	f, err := os.Open(path)
	if err != nil {
		return md, fmt.Errorf("opening metadata export: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return md, fmt.Errorf("reading metadata export: %w", err)
	}
	if len(records) == 0 {
		return md, fmt.Errorf("metadata export %s has no header row", path)
	}

	columns := make(map[string]int)
	for i, name := range records[0] {
		columns[name] = i
	}
	idCol, ok := columns["item_id"]
	if !ok {
		return md, fmt.Errorf("metadata export %s has no item_id column", path)
	}

	cell := func(row []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	for _, row := range records[1:] {
		if idCol >= len(row) || row[idCol] == "" {
			continue
		}
		md.ItemMetadata[row[idCol]] = &ItemMetadata{
			ItemTitle:       cell(row, "item_title"),
			CollectionTitle: cell(row, "collection_title"),
			ItemDate:        cell(row, "item_date"),
		}
	}
	return md, nil
}
