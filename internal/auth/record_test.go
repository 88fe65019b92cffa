package auth

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_UnmarshalSalted(t *testing.T) {
	data := []byte(`{"v":1,"createdAt":1700000000000,"iterations":120000,"salt":"c2FsdA==","verifier":"dmVy"}`)

	var r Record
	require.NoError(t, json.Unmarshal(data, &r))

	require.Equal(t, KindSalted, r.Kind())
	assert.Equal(t, int64(1700000000000), r.CreatedAt)
	assert.Equal(t, 120000, r.Salted.Iterations)
	assert.Equal(t, "c2FsdA==", r.Salted.Salt)
	assert.Equal(t, "dmVy", r.Salted.Verifier)
}

func TestRecord_UnmarshalLegacy(t *testing.T) {
	data := []byte(`{"createdAt":1600000000000,"password":"hunter2"}`)

	var r Record
	require.NoError(t, json.Unmarshal(data, &r))

	require.Equal(t, KindLegacy, r.Kind())
	assert.Equal(t, "hunter2", r.Legacy.Password)
	assert.Equal(t, int64(1600000000000), r.CreatedAt)
}

func TestRecord_UnmarshalCorruptShapes(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty object", `{}`},
		{"salt without verifier", `{"salt":"c2FsdA=="}`},
		{"verifier without salt", `{"verifier":"dmVy"}`},
		{"not an object", `"zzz"`},
		{"number", `42`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var r Record
			require.NoError(t, json.Unmarshal([]byte(tc.data), &r))
			require.Equal(t, KindCorrupt, r.Kind())
		})
	}
}

func TestRecord_IterationsCoercion(t *testing.T) {
	tests := []struct {
		name string
		data string
		want int
	}{
		{"number", `{"salt":"cw==","verifier":"dg==","iterations":90000}`, 90000},
		{"numeric string", `{"salt":"cw==","verifier":"dg==","iterations":"90000"}`, 90000},
		{"float", `{"salt":"cw==","verifier":"dg==","iterations":90000.0}`, 90000},
		{"garbage string", `{"salt":"cw==","verifier":"dg==","iterations":"lots"}`, 0},
		{"null", `{"salt":"cw==","verifier":"dg==","iterations":null}`, 0},
		{"absent", `{"salt":"cw==","verifier":"dg=="}`, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var r Record
			require.NoError(t, json.Unmarshal([]byte(tc.data), &r))
			require.Equal(t, KindSalted, r.Kind())
			assert.Equal(t, tc.want, r.Salted.Iterations)
		})
	}
}

func TestRecord_SaltedRoundTrip(t *testing.T) {
	rec := NewSaltedRecord(1700000000000, 120000, []byte("0123456789abcdef"), []byte("verifier-bytes"))

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var got Record
	require.NoError(t, json.Unmarshal(data, &got))

	require.Equal(t, KindSalted, got.Kind())
	assert.Equal(t, rec.CreatedAt, got.CreatedAt)
	assert.Equal(t, rec.Salted, got.Salted)
}

func TestRecord_LegacyRoundTrip(t *testing.T) {
	rec := Record{CreatedAt: 1600000000000, Legacy: &LegacyCredentials{Password: "pw"}}

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	// A legacy record must stay legacy on disk; it is never upgraded by
	// serialization alone.
	var got Record
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, KindLegacy, got.Kind())
	assert.Equal(t, "pw", got.Legacy.Password)
	assert.Equal(t, rec.CreatedAt, got.CreatedAt)
}

func TestRecord_CorruptPreservesOriginalBytes(t *testing.T) {
	original := []byte(`{"mystery":true,"blob":[1,2,3]}`)

	var r Record
	require.NoError(t, json.Unmarshal(original, &r))
	require.Equal(t, KindCorrupt, r.Kind())

	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, string(original), string(out))
}
