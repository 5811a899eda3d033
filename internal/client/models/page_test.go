package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPage_UnmarshalEnvelope(t *testing.T) {
	raw := `{"count":12,"next":"http://x/api/books/?page=2","previous":null,
	"results":[{"id":1,"name":"Novels"},{"id":2,"name":"Science"}]}`

	var p Page[Category]
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	require.EqualValues(t, 12, p.Count)
	require.NotNil(t, p.Next)
	require.Nil(t, p.Previous)
	require.Len(t, p.Results, 2)
	require.Equal(t, "Science", p.Results[1].Name)
}

func TestPage_UnmarshalBareArray(t *testing.T) {
	raw := `[{"id":7,"name":"Poetry"}]`

	var p Page[Category]
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	require.EqualValues(t, 1, p.Count)
	require.Nil(t, p.Next)
	require.Len(t, p.Results, 1)
	require.Equal(t, "Poetry", p.Results[0].Name)
}

func TestPage_UnmarshalMalformed(t *testing.T) {
	var p Page[Category]
	require.Error(t, json.Unmarshal([]byte(`[{"id":"seven"}]`), &p))
}
