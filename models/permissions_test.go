package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionsDocument_RoundTrip(t *testing.T) {
	docs := []string{
		`{}`,
		`[]`,
		`null`,
		`"operators only"`,
		`{"groups":{"admin":["*"],"member":["build","chat"]},"ops":["Steve"],"whitelist":true,"level":4.5}`,
	}

	for _, body := range docs {
		t.Run(body, func(t *testing.T) {
			var first PermissionsDocument
			require.NoError(t, json.Unmarshal([]byte(body), &first))

			serialized, err := json.Marshal(first)
			require.NoError(t, err)

			var second PermissionsDocument
			require.NoError(t, json.Unmarshal(serialized, &second))

			assert.True(t, first.Equal(second))
			assert.JSONEq(t, body, string(serialized))
		})
	}
}

func TestPermissionsDocument_UnmarshalJSON_Invalid(t *testing.T) {
	var doc PermissionsDocument

	err := doc.UnmarshalJSON([]byte(`{"ops": [,]}`))

	require.Error(t, err)
	assert.Nil(t, doc.Raw())
}

func TestPermissionsDocument_ZeroValue(t *testing.T) {
	var doc PermissionsDocument

	b, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	var v any = "untouched"
	require.NoError(t, doc.Decode(&v))
	assert.Nil(t, v)
}

func TestPermissionsDocument_Decode(t *testing.T) {
	var doc PermissionsDocument
	require.NoError(t, json.Unmarshal([]byte(`{"ops": ["Steve", "Alex"]}`), &doc))

	var decoded struct {
		Ops []string `json:"ops"`
	}
	require.NoError(t, doc.Decode(&decoded))

	assert.Equal(t, []string{"Steve", "Alex"}, decoded.Ops)
}

func TestPermissionsDocument_RawIsACopy(t *testing.T) {
	var doc PermissionsDocument
	require.NoError(t, json.Unmarshal([]byte(`{"a":1}`), &doc))

	raw := doc.Raw()
	raw[0] = '['

	assert.Equal(t, `{"a":1}`, string(doc.Raw()))
}

func TestPermissionsDocument_NestedInStruct(t *testing.T) {
	var holder struct {
		Permissions PermissionsDocument `json:"permissions"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"permissions": { "ops" : [ ] }}`), &holder))

	assert.Equal(t, `{"ops":[]}`, string(holder.Permissions.Raw()))
}
