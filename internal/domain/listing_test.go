package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMatchMethod(t *testing.T) {
	tests := []struct {
		in      string
		want    MatchMethod
		wantErr bool
	}{
		{"id", MatchByID, false},
		{"byId", MatchByID, false},
		{" CODE ", MatchByCode, false},
		{"byCode", MatchByCode, false},
		{"title", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMatchMethod(tt.in)
		if tt.wantErr {
			assert.True(t, errors.Is(err, ErrInvalidInput), tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestGroupSelector_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    GroupSelector
		wantErr bool
	}{
		{"editor code form", `{"match-method": "code", "course-stream-code": "FALL25", "course-stream-id": "9"}`, GroupSelector{MatchByCode, "FALL25"}, false},
		{"editor id form numeric", `{"match-method": "id", "course-stream-id": 42}`, GroupSelector{MatchByID, "42"}, false},
		{"api form", `{"match_method": "byId", "match_value": "42"}`, GroupSelector{MatchByID, "42"}, false},
		{"extra editor keys ignored", `{"match-method": "id", "course-stream-id": 42, "expanded": true, "layout": {"cols": 2}, "tags": ["a"]}`, GroupSelector{MatchByID, "42"}, false},
		{"non-scalar value", `{"match-method": "code", "course-stream-code": {"v": "FALL25"}}`, GroupSelector{}, true},
		{"value for other method only", `{"match-method": "id", "course-stream-code": "FALL25"}`, GroupSelector{}, true},
		{"empty value", `{"match_method": "code", "match_value": ""}`, GroupSelector{}, true},
		{"no method", `{"match_value": "FALL25"}`, GroupSelector{}, true},
		{"not an object", `"FALL25"`, GroupSelector{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g GroupSelector
			err := json.Unmarshal([]byte(tt.in), &g)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, g)

			// Round trip through the API form.
			b, err := json.Marshal(g)
			require.NoError(t, err)
			var again GroupSelector
			require.NoError(t, json.Unmarshal(b, &again))
			assert.Equal(t, g, again)
		})
	}
}
