package stringify

import (
	stdjson "encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringMatchesStandardLibrary(t *testing.T) {
	type record struct {
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
	}
	cases := []struct {
		name  string
		value any
	}{
		{"nil", nil},
		{"string", "text"},
		{"map", map[string]any{"a": 1, "b": []any{"x", "y"}}},
		{"struct omitempty", record{Message: "boom"}},
		{"struct full", record{Message: "boom", Code: "BAD_REQUEST"}},
		{"nested", map[string]any{"rec": record{Message: "m"}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			expected, err := stdjson.Marshal(c.value)
			require.NoError(t, err)
			require.Equal(t, string(expected), String(c.value))
		})
	}
}

func TestStringCyclicMap(t *testing.T) {
	m := map[string]any{"name": "loop"}
	m["self"] = m

	var out string
	require.NotPanics(t, func() { out = String(m) })
	require.Contains(t, out, `"name":"loop"`)
	require.Contains(t, out, `"self":"[Circular]"`)
}

func TestStringCyclicSlice(t *testing.T) {
	s := make([]any, 2)
	s[0] = "head"
	s[1] = s

	var out string
	require.NotPanics(t, func() { out = String(s) })
	require.Contains(t, out, `"head"`)
	require.Contains(t, out, `"[Circular]"`)
}

func TestStringCyclicStruct(t *testing.T) {
	type node struct {
		Name string `json:"name"`
		Next *node  `json:"next"`
	}
	n := &node{Name: "a"}
	n.Next = n

	var out string
	require.NotPanics(t, func() { out = String(n) })
	require.Contains(t, out, `"name":"a"`)
	require.Contains(t, out, Marker)
}

func TestStringSharedButAcyclic(t *testing.T) {
	// the same map referenced twice is not a cycle and must serialize fully
	shared := map[string]any{"k": "v"}
	value := map[string]any{"a": shared, "b": shared}
	expected, err := stdjson.Marshal(value)
	require.NoError(t, err)
	require.Equal(t, string(expected), String(value))
}

func TestStringUnserializableStructLosesTags(t *testing.T) {
	// an acyclic value the encoder rejects takes the lossy rewrite: the
	// chan becomes null and omitempty is no longer honored
	type payload struct {
		Name string   `json:"name,omitempty"`
		Ch   chan int `json:"ch"`
	}
	var out string
	require.NotPanics(t, func() { out = String(payload{Ch: make(chan int)}) })
	require.Equal(t, `{"ch":null,"name":""}`, out)
}

func TestStringUnserializable(t *testing.T) {
	var out string
	require.NotPanics(t, func() { out = String(map[string]any{"ch": make(chan int)}) })
	require.Equal(t, `{"ch":null}`, out)
}
