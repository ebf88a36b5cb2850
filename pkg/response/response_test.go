package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	body, err := json.Marshal(Error(404, "invoice 42 not found"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"error","status_code":404,"error":"invoice 42 not found"}`, string(body))
}

func TestNewPage_EmptyItemsEncodeAsArray(t *testing.T) {
	body, err := json.Marshal(NewPage[string](nil, 0, 1, 20))
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"total":0,"page":1,"limit":20}`, string(body))
}
