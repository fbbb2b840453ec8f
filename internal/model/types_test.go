package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-01")
	require.NoError(t, err)
	assert.True(t, d.Valid)
	assert.Equal(t, "2025-06-01", d.String())

	for _, bad := range []string{"06/01/2025", "2025-6-1", "2025-13-01", "yesterday", ""} {
		_, err := ParseDate(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-12-31")
	require.NoError(t, err)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-12-31"`, string(b))

	var parsed Date
	require.NoError(t, json.Unmarshal(b, &parsed))
	assert.Equal(t, d, parsed)
}

func TestDateMarshalsNullWhenUnset(t *testing.T) {
	b, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	var d Date
	require.NoError(t, json.Unmarshal([]byte("null"), &d))
	assert.False(t, d.Valid)
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2025, 2, 3, 15, 30, 0, 0, time.UTC)))
	assert.Equal(t, "2025-02-03", d.String())

	require.NoError(t, d.Scan(nil))
	assert.False(t, d.Valid)
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("14:30")
	require.NoError(t, err)
	assert.Equal(t, "14:30:00", tod.String())

	for _, bad := range []string{"2:30 PM", "25:00", "14:60", "14", ""} {
		_, err := ParseTimeOfDay(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestTimeOfDayJSON(t *testing.T) {
	tod, err := ParseTimeOfDay("09:05")
	require.NoError(t, err)

	b, err := json.Marshal(tod)
	require.NoError(t, err)
	assert.Equal(t, `"09:05:00"`, string(b))

	b, err = json.Marshal(TimeOfDay{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestTimeOfDayScanString(t *testing.T) {
	var tod TimeOfDay
	require.NoError(t, tod.Scan("08:15:00"))
	assert.Equal(t, "08:15:00", tod.String())

	require.NoError(t, tod.Scan([]byte("16:45:30")))
	assert.Equal(t, "16:45:30", tod.String())
}

func TestCurrencyFieldsSerializeAsNumbers(t *testing.T) {
	record := ServiceRecord{
		LaborCost: decimal.NullDecimal{Decimal: decimal.RequireFromString("120.50"), Valid: true},
	}

	b, err := json.Marshal(record)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"labor_cost":120.5`)
	assert.Contains(t, string(b), `"parts_cost":null`)
}
