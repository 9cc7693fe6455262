package importer

import (
	"fmt"
	"strings"

	"buildmart-be/internal/product"

	"github.com/shopspring/decimal"
)

// Mapping keys understood by MapRow. Anything else in a stored mapping is
// ignored.
const (
	FieldSKU     = "sku"
	FieldEAN     = "ean"
	FieldName    = "name"
	FieldBrand   = "brand"
	FieldUnit    = "unit"
	FieldPrice   = "price"
	FieldWeight  = "weight_kg"
	FieldLength  = "length_cm"
	FieldWidth   = "width_cm"
	FieldHeight  = "height_cm"
	FieldInStock = "in_stock"
)

// MapRow transforms one CSV record into a catalog row using the declared
// column mapping. It is pure: no cross-row state, no I/O.
//
// rowNum is 1-based over data rows and only used for the error message.
func MapRow(storeID uint, mapping Mapping, headers []string, record []string, rowNum int) (*product.Product, *RowError) {
	row := indexRecord(headers, record)

	pick := func(field string) string {
		header, ok := mapping[field]
		if !ok {
			return ""
		}
		return strings.TrimSpace(row[header])
	}

	p := &product.Product{
		StoreID: storeID,
		SKU:     optional(pick(FieldSKU)),
		EAN:     optional(pick(FieldEAN)),
		Name:    pick(FieldName),
		Brand:   optional(pick(FieldBrand)),
		Unit:    optional(pick(FieldUnit)),
	}

	if p.SKU == nil && p.EAN == nil {
		return nil, &RowError{Row: rowNum, Message: "row has neither sku nor ean"}
	}

	// Unparseable or missing price collapses to zero rather than failing
	// the row; partners routinely ship price-less availability files.
	p.Price = parseDecimal(pick(FieldPrice))

	p.WeightKg = parseOptionalDecimal(pick(FieldWeight))
	p.LengthCm = parseOptionalDecimal(pick(FieldLength))
	p.WidthCm = parseOptionalDecimal(pick(FieldWidth))
	p.HeightCm = parseOptionalDecimal(pick(FieldHeight))
	p.InStock = parseBool(pick(FieldInStock))

	p.MissingDimensions = p.WeightKg == nil ||
		p.LengthCm == nil || p.WidthCm == nil || p.HeightCm == nil

	return p, nil
}

func indexRecord(headers []string, record []string) map[string]string {
	row := make(map[string]string, len(headers))
	for i, h := range headers {
		if i < len(record) {
			row[strings.TrimSpace(h)] = record[i]
		}
	}
	return row
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// parseDecimal accepts both comma and dot decimal separators
// ("12,50" and "12.50"). Anything unparseable is zero.
func parseDecimal(s string) decimal.Decimal {
	if d := parseOptionalDecimal(s); d != nil {
		return *d
	}
	return decimal.Zero
}

func parseOptionalDecimal(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "yes":
		return true
	}
	return false
}

func rowError(rowNum int, format string, args ...interface{}) RowError {
	return RowError{Row: rowNum, Message: fmt.Sprintf(format, args...)}
}
