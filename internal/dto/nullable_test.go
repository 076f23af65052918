package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullable_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		set     bool
		isNull  bool
		dueDate time.Time
	}{
		{"absent", `{"title":"x"}`, false, false, time.Time{}},
		{"explicit null", `{"dueDate":null}`, true, true, time.Time{}},
		{"value", `{"dueDate":"2026-10-20T00:00:00Z"}`, true, false, time.Date(2026, time.October, 20, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req UpdateTaskRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			assert.Equal(t, tt.set, req.DueDate.Set)
			assert.Equal(t, tt.isNull, req.DueDate.IsNull())
			if !tt.dueDate.IsZero() {
				require.NotNil(t, req.DueDate.Value)
				assert.True(t, tt.dueDate.Equal(*req.DueDate.Value))
			}
		})
	}
}

func TestNullable_RejectsWrongType(t *testing.T) {
	var req UpdateTaskRequest
	assert.Error(t, json.Unmarshal([]byte(`{"estimatedMinutes":"soon"}`), &req))
}

func TestNullable_Marshal(t *testing.T) {
	out, err := json.Marshal(struct {
		A Nullable[int] `json:"a"`
		B Nullable[int] `json:"b"`
	}{A: Some(3), B: Null[int]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":3,"b":null}`, string(out))
}
