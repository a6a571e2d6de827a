package shop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/aphfiwiwi/biiscoti/internal/common"
	"github.com/aphfiwiwi/biiscoti/internal/model"
	"gopkg.in/yaml.v3"
)

// ImportFile is the YAML layout accepted by Import:
//
//	category: bakery
//	listings:
//	  - name: Croissant
//	    amount: 1.5
//	    description: Butter, flaky
type ImportFile struct {
	Category string          `yaml:"category"`
	Listings []model.Listing `yaml:"listings"`
}

// DecodeImport reads an import file. Listings keep any IDs they carry, so
// re-importing the same file replaces rows instead of duplicating them.
func DecodeImport(r io.Reader) (ImportFile, error) {
	var f ImportFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return ImportFile{}, nil
		}
		return ImportFile{}, fmt.Errorf("failed to decode import file: %w", err)
	}
	return f, nil
}

// ImportResult counts what Import did.
type ImportResult struct {
	Saved   int
	Skipped int
}

// Importer is the subset of a table Import writes to.
type Importer interface {
	InsertOrReplace(ctx context.Context, rec model.Listing) (model.Listing, error)
}

// Import writes listings in order. Listings with a blank name or a
// non-finite amount are skipped. progress, when set, is called once per
// listing.
func Import(ctx context.Context, store Importer, listings []model.Listing, progress func()) (ImportResult, error) {
	var res ImportResult
	for i, l := range listings {
		if progress != nil {
			progress()
		}
		if err := validate.Var(l.Name, "notblank"); err != nil || math.IsNaN(l.Amount) || math.IsInf(l.Amount, 0) {
			slog.Warn("skipping invalid listing", "index", i, "name", l.Name)
			res.Skipped++
			continue
		}
		if _, err := store.InsertOrReplace(ctx, l); err != nil {
			return res, fmt.Errorf("failed to import listing %d (%q): %w", i, l.Name, err)
		}
		res.Saved++
	}
	if res.Skipped > 0 {
		return res, fmt.Errorf("%w: skipped %d", common.ErrInvalidListing, res.Skipped)
	}
	return res, nil
}
