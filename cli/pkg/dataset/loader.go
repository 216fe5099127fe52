package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"
)

// Reading is one row of the energy data generator's CSV export.
type Reading struct {
	DataID      string
	NodeID      string
	KWh         float64
	Location    string
	Timestamp   int64
	Hour        int
	DayOfWeek   int
	Month       int
	PatternType string
	Anomaly     bool

	// kwhText is the raw kwh column. MilliKWh converts from it so the
	// on-chain value is exact; the float is for display only.
	kwhText string
}

// expectedHeader is the column layout the generator emits.
var expectedHeader = []string{
	"data_id", "node_id", "kwh", "location", "timestamp",
	"hour", "day_of_week", "month", "pattern_type", "anomaly",
}

// MilliKWh returns the reading's energy in milli-kWh, the integer unit
// the monitor contract stores.
func (r *Reading) MilliKWh() *big.Int {
	text := r.kwhText
	if text == "" {
		text = strconv.FormatFloat(r.KWh, 'f', -1, 64)
	}
	rat, ok := new(big.Rat).SetString(text)
	if !ok {
		return new(big.Int)
	}
	milli := rat.Mul(rat, big.NewRat(1000, 1))
	return new(big.Int).Quo(milli.Num(), milli.Denom())
}

// Load reads a generator CSV export from disk.
func Load(path string) ([]Reading, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads readings from CSV data, validating the header.
func Parse(r io.Reader) ([]Reading, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if len(header) != len(expectedHeader) {
		return nil, fmt.Errorf("unexpected CSV header: got %d columns, want %d", len(header), len(expectedHeader))
	}
	for i, col := range expectedHeader {
		if header[i] != col {
			return nil, fmt.Errorf("unexpected CSV column %d: got %q, want %q", i, header[i], col)
		}
	}

	var readings []Reading
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}
		line++

		reading, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		readings = append(readings, reading)
	}

	return readings, nil
}

func parseRecord(record []string) (Reading, error) {
	var r Reading
	var err error

	r.DataID = record[0]
	r.NodeID = record[1]
	if r.NodeID == "" {
		return r, fmt.Errorf("empty node_id")
	}

	if r.KWh, err = strconv.ParseFloat(record[2], 64); err != nil {
		return r, fmt.Errorf("invalid kwh %q: %w", record[2], err)
	}
	if r.KWh < 0 {
		return r, fmt.Errorf("negative kwh %q", record[2])
	}
	r.kwhText = record[2]

	r.Location = record[3]

	if r.Timestamp, err = strconv.ParseInt(record[4], 10, 64); err != nil {
		return r, fmt.Errorf("invalid timestamp %q: %w", record[4], err)
	}
	if r.Hour, err = strconv.Atoi(record[5]); err != nil {
		return r, fmt.Errorf("invalid hour %q: %w", record[5], err)
	}
	if r.DayOfWeek, err = strconv.Atoi(record[6]); err != nil {
		return r, fmt.Errorf("invalid day_of_week %q: %w", record[6], err)
	}
	if r.Month, err = strconv.Atoi(record[7]); err != nil {
		return r, fmt.Errorf("invalid month %q: %w", record[7], err)
	}

	r.PatternType = record[8]

	if r.Anomaly, err = strconv.ParseBool(record[9]); err != nil {
		return r, fmt.Errorf("invalid anomaly flag %q: %w", record[9], err)
	}

	return r, nil
}
