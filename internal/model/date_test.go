package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid date", input: "2024-03-15", wantErr: false},
		{name: "valid leap day", input: "2024-02-29", wantErr: false},
		{name: "wrong layout", input: "03/15/2024", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "date with time", input: "2024-03-15T10:00:00Z", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, d.String())
		})
	}
}

func TestDateOfTruncatesTime(t *testing.T) {
	d := DateOf(time.Date(2024, time.March, 15, 23, 59, 58, 0, time.UTC))
	assert.Equal(t, "2024-03-15", d.String())
}

func TestDateOrdering(t *testing.T) {
	a := NewDate(2024, time.March, 14)
	b := NewDate(2024, time.March, 15)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(NewDate(2024, time.March, 14)))
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.March, 15)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-15"`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, d.Equal(decoded))
}

func TestDateUnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`42`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &d))
}
