// Package project models a batch preservation project: the items discovered
// on disk and the metadata export they are checked against.
package project

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Categories are the file categories tracked per item. Every item carries
// all of them, empty or not.
var Categories = []string{"xml", "wav", "mp3", "txt"}

// Item is one digitized object in the project.
type Item struct {
	// ID is the canonical object identifier, expected to match OBJID and
	// dc:identifier in the item's METS document.
	ID   string
	Path string
	// Files maps category to sorted filenames found under Path.
	Files map[string][]string
}

// ItemMetadata is one row of the metadata export spreadsheet. Empty fields
// were absent from the export.
type ItemMetadata struct {
	ItemTitle       string
	CollectionTitle string
	ItemDate        string
}

// Metadata is the loaded metadata export.
type Metadata struct {
	// ItemMetadata maps item id to its spreadsheet row. Items with no row
	// have no entry.
	ItemMetadata map[string]*ItemMetadata
}

// Project is the full batch: ordered items plus the metadata export.
type Project struct {
	Path     string
	Items    []*Item
	Metadata Metadata
}

// Load scans dir for items. Each immediate subdirectory is one item, its
// name taken as the item id. Files anywhere under the item directory are
// categorized by extension; unknown extensions are ignored.
func Load(dir string) (*Project, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading project directory: %w", err)
	}

	p := &Project{
		Path:     dir,
		Metadata: Metadata{ItemMetadata: make(map[string]*ItemMetadata)},
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		item, err := loadItem(filepath.Join(dir, entry.Name()), entry.Name())
		if err != nil {
			return nil, err
		}
		p.Items = append(p.Items, item)
	}
	return p, nil
}

func loadItem(path, id string) (*Item, error) {
	item := &Item{
		ID:    id,
		Path:  path,
		Files: make(map[string][]string),
	}
	for _, category := range Categories {
		item.Files[category] = []string{}
	}

	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(d.Name()), "."))
		if _, ok := item.Files[ext]; ok {
			item.Files[ext] = append(item.Files[ext], d.Name())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning item %s: %w", id, err)
	}

	for _, category := range Categories {
		sort.Strings(item.Files[category])
	}
	return item, nil
}
