package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

type record struct {
	ID       uint       `json:"id"`
	Name     string     `json:"name"`
	Price    float64    `json:"price"`
	Active   bool       `json:"active"`
	Secret   string     `json:"-"`
	Done     *time.Time `json:"done_at,omitempty"`
	internal int
}

func sample() []record {
	return []record{
		{ID: 1, Name: "Classic Haircut", Price: 250, Active: true, Secret: "x"},
		{ID: 2, Name: `Fade, "skin"`, Price: 199.5},
	}
}

func TestFromRecords(t *testing.T) {
	tbl, err := FromRecords("services", sample())
	if err != nil {
		t.Fatalf("table: %v", err)
	}

	wantHeader := []string{"id", "name", "price", "active", "done_at"}
	if len(tbl.Header) != len(wantHeader) {
		t.Fatalf("header = %v", tbl.Header)
	}
	for i := range wantHeader {
		if tbl.Header[i] != wantHeader[i] {
			t.Fatalf("header = %v", tbl.Header)
		}
	}
	if tbl.Rows[0][0] != uint64(1) || tbl.Rows[0][4] != "" {
		t.Fatalf("unexpected row: %v", tbl.Rows[0])
	}
}

func TestEmptyInput(t *testing.T) {
	if _, err := FromRecords("services", []record{}); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
	if _, err := CSV(&Table{Header: []string{"id"}}); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData from CSV, got %v", err)
	}
	if _, err := FromRecords("x", "nope"); err == nil {
		t.Fatal("expected error for non-slice input")
	}
}

func TestCSVQuoting(t *testing.T) {
	tbl, _ := FromRecords("services", sample())
	out, err := CSV(tbl)
	if err != nil {
		t.Fatalf("csv: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("csv did not parse back: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[2][1] != `Fade, "skin"` || rows[2][2] != "199.5" || rows[1][3] != "true" {
		t.Fatalf("unexpected row: %v", rows[2])
	}
}

func TestXLSX(t *testing.T) {
	tbl, _ := FromRecords("services", sample())
	out, err := Render(tbl, FormatXLSX)
	if err != nil {
		t.Fatalf("xlsx: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("services")
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 3 || rows[0][1] != "name" || rows[1][1] != "Classic Haircut" {
		t.Fatalf("unexpected sheet: %v", rows)
	}
}

func TestFilenameAndFormats(t *testing.T) {
	if got := Filename("appointments", "2026-10-15", FormatCSV); got != "appointments-2026-10-15.csv" {
		t.Fatalf("filename = %s", got)
	}
	tbl, _ := FromRecords("services", sample())
	if _, err := Render(tbl, "pdf"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}
