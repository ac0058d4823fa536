package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Ravi-kumar178/ccjewllery/internal/seed"
)

// CSVImporter reads catalog CSV exports into seedable items. Expected
// headers: name, description, category, sub_category, price, image_url,
// bestseller. Price is a decimal dollar amount.
type CSVImporter struct {
	reader *csv.Reader
}

func NewCSVImporter(r io.Reader) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{reader: csvr}
}

// Parse reads every row and returns the items. A row missing its name,
// category, or price fails the whole parse; a silently short catalog is
// worse than an error.
func (i *CSVImporter) Parse() ([]seed.Item, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "read headers")
	}
	index := headerIndex(headers)

	var items []seed.Item
	line := 1
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read row")
		}
		line++

		name := pick(record, index, "name")
		category := pick(record, index, "category")
		priceStr := pick(record, index, "price")
		if name == "" && category == "" && priceStr == "" {
			continue
		}
		if name == "" || category == "" || priceStr == "" {
			return nil, errors.Errorf("line %d: name, category, and price are required", line)
		}
		cents, err := parsePriceCents(priceStr)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: price %q", line, priceStr)
		}

		items = append(items, seed.Item{
			Name:        name,
			Description: pick(record, index, "description"),
			Category:    category,
			SubCategory: pick(record, index, "sub_category"),
			PriceCents:  cents,
			ImageURL:    pick(record, index, "image_url"),
			Bestseller:  pick(record, index, "bestseller") == "true",
		})
	}
	return items, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}

// parsePriceCents converts a decimal dollar string to cents, rejecting more
// than two fractional digits rather than rounding money silently.
func parsePriceCents(s string) (int64, error) {
	whole, frac, hasFrac := strings.Cut(s, ".")
	cents, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount")
	}
	cents *= 100
	if !hasFrac {
		return cents, nil
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("more than two fractional digits")
	}
	for len(frac) < 2 {
		frac += "0"
	}
	fracCents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil || fracCents < 0 {
		return 0, fmt.Errorf("invalid fractional amount")
	}
	return cents + fracCents, nil
}
