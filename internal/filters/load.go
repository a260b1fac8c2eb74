package filters

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"Handbook/internal/repo"

	"github.com/xuri/excelize/v2"
)

//go:embed data/airepleat.csv
var embedded []byte

const (
	colCode       = "product code"
	colNominal    = "nominal size (mm)"
	colActual     = "actual size (mm)"
	colAirflow    = "airflow capacity (l/sec)"
	colResistance = "initial resistance (pa)"
	colClass      = "filter classification"
)

var requiredColumns = []string{colCode, colNominal, colActual, colAirflow, colResistance, colClass}

// fromRecords converts a header row and data rows. Rows whose actual size
// does not parse are skipped.
func fromRecords(records [][]string) ([]Product, error) {
	if len(records) == 0 {
		return nil, errors.New("catalogue is empty")
	}
	idx := map[string]int{}
	for i, h := range records[0] {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("missing column %q", c)
		}
	}

	cell := func(rec []string, col string) string {
		if i := idx[col]; i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}
	var out []Product
	for _, rec := range records[1:] {
		p, ok := productFrom(
			cell(rec, colCode), cell(rec, colNominal), cell(rec, colActual),
			cell(rec, colAirflow), cell(rec, colResistance), cell(rec, colClass))
		if ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func productFrom(code, nominal, actual, airflow, res, class string) (Product, bool) {
	act, ok := ParseTriplet(actual)
	if !ok {
		return Product{}, false
	}
	nom, _ := ParseTriplet(nominal)
	af, _ := strconv.ParseFloat(strings.ReplaceAll(airflow, ",", ""), 64)
	r, _ := strconv.ParseFloat(res, 64)
	return Product{
		Code:           code,
		Nominal:        nom,
		Actual:         act,
		AirflowLs:      af,
		InitialResPa:   r,
		Classification: class,
	}, true
}

func ReadCSV(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	products, err := fromRecords(records)
	if err != nil {
		return nil, err
	}
	return NewCatalog(products), nil
}

// ReadXLSX reads the first sheet of a workbook laid out like the CSV.
func ReadXLSX(r io.Reader) (*Catalog, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	products, err := fromRecords(rows)
	if err != nil {
		return nil, err
	}
	return NewCatalog(products), nil
}

// Embedded returns the catalogue shipped with the binary.
func Embedded() (*Catalog, error) {
	return ReadCSV(bytes.NewReader(embedded))
}

// FromRepository builds the catalogue from a repository's filter rows,
// skipping rows whose actual size does not parse.
func FromRepository(ctx context.Context, src repo.Repository) (*Catalog, error) {
	rows, err := src.ListFilterProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list filter products: %w", err)
	}
	var products []Product
	for _, r := range rows {
		p, ok := productFrom(r.Code, r.NominalSize, r.ActualSize,
			strconv.FormatFloat(r.AirflowLs, 'f', -1, 64),
			strconv.FormatFloat(r.InitialResPa, 'f', -1, 64), r.Classification)
		if ok {
			products = append(products, p)
		}
	}
	return NewCatalog(products), nil
}

// Source names where the catalogue is loaded from.
type Source string

const (
	SourceEmbedded Source = "embedded"
	SourceCSV      Source = "csv"
	SourceXLSX     Source = "xlsx"
	SourcePostgres Source = "postgres"
)

// Load opens the catalogue from src. path is a file path for csv and xlsx
// and a connection string for postgres.
func Load(ctx context.Context, src Source, path string) (*Catalog, error) {
	switch src {
	case "", SourceEmbedded:
		return Embedded()
	case SourceCSV, SourceXLSX:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if src == SourceCSV {
			return ReadCSV(f)
		}
		return ReadXLSX(f)
	case SourcePostgres:
		db, err := repo.InitDB(ctx, path)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return FromRepository(ctx, repo.NewPostgresFilterDB(db))
	}
	return nil, fmt.Errorf("unknown catalogue source %q", src)
}
