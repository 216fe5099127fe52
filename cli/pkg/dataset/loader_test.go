package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `data_id,node_id,kwh,location,timestamp,hour,day_of_week,month,pattern_type,anomaly
data_00000001,node_000001,3.512,"lat:40.7128,lon:-74.0060",1755907200,18,5,8,residential,False
data_00000002,node_000001,0.487,"lat:40.7128,lon:-74.0060",1755910800,19,5,8,residential,False
data_00000003,node_000002,45.0,"lat:41.8781,lon:-87.6298",1755907200,18,5,8,industrial,True
`

func TestParse(t *testing.T) {
	readings, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, readings, 3)

	first := readings[0]
	assert.Equal(t, "data_00000001", first.DataID)
	assert.Equal(t, "node_000001", first.NodeID)
	assert.InDelta(t, 3.512, first.KWh, 1e-9)
	assert.Equal(t, "lat:40.7128,lon:-74.0060", first.Location)
	assert.Equal(t, int64(1755907200), first.Timestamp)
	assert.Equal(t, 18, first.Hour)
	assert.Equal(t, "residential", first.PatternType)
	assert.False(t, first.Anomaly)

	assert.True(t, readings[2].Anomaly)
}

func TestMilliKWh(t *testing.T) {
	readings, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, "3512", readings[0].MilliKWh().String())
	assert.Equal(t, "487", readings[1].MilliKWh().String())
	assert.Equal(t, "45000", readings[2].MilliKWh().String())
}

func TestMilliKWhExactDecimals(t *testing.T) {
	// Values whose nearest float64 sits just below the decimal; a
	// float-based conversion truncates these by one milli-kWh.
	tests := []struct {
		kwh  string
		want string
	}{
		{"0.487", "487"},
		{"1.113", "1113"},
		{"2.675", "2675"},
		{"0.286", "286"},
		{"0.0004", "0"},
		{"120.5", "120500"},
	}

	header := "data_id,node_id,kwh,location,timestamp,hour,day_of_week,month,pattern_type,anomaly\n"
	for _, tt := range tests {
		t.Run(tt.kwh, func(t *testing.T) {
			row := `d1,n1,` + tt.kwh + `,"loc",1755907200,1,1,1,residential,False` + "\n"
			readings, err := Parse(strings.NewReader(header + row))
			require.NoError(t, err)
			require.Len(t, readings, 1)
			assert.Equal(t, tt.want, readings[0].MilliKWh().String())
		})
	}
}

func TestMilliKWhLiteralReading(t *testing.T) {
	// Readings built in code rather than parsed from CSV still convert.
	r := Reading{KWh: 0.487}
	assert.Equal(t, "487", r.MilliKWh().String())
}

func TestParseRejectsBadHeader(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{
			name: "wrong column name",
			csv:  "data_id,meter_id,kwh,location,timestamp,hour,day_of_week,month,pattern_type,anomaly\n",
		},
		{
			name: "too few columns",
			csv:  "data_id,node_id,kwh\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.csv))
			assert.Error(t, err)
		})
	}
}

func TestParseRejectsBadRows(t *testing.T) {
	header := "data_id,node_id,kwh,location,timestamp,hour,day_of_week,month,pattern_type,anomaly\n"

	tests := []struct {
		name string
		row  string
		want string
	}{
		{
			name: "empty node id",
			row:  `d1,,1.0,"loc",1755907200,1,1,1,residential,False`,
			want: "empty node_id",
		},
		{
			name: "negative kwh",
			row:  `d1,n1,-2.0,"loc",1755907200,1,1,1,residential,False`,
			want: "negative kwh",
		},
		{
			name: "bad timestamp",
			row:  `d1,n1,1.0,"loc",soon,1,1,1,residential,False`,
			want: "invalid timestamp",
		},
		{
			name: "bad anomaly flag",
			row:  `d1,n1,1.0,"loc",1755907200,1,1,1,residential,maybe`,
			want: "invalid anomaly flag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(header + tt.row + "\n"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), "line 2")
		})
	}
}
