package envelope

import (
	stdjson "encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDocumentShape(t *testing.T) {
	env := New(Fields(map[string]any{
		"message": "boom",
		"code":    "BAD_REQUEST",
		"status":  400,
		"details": map[string]any{"field": "amount"},
	})).Append(Text("second"))

	require.Equal(t, Document{Errors: []Record{
		{
			Message: "boom",
			Code:    "BAD_REQUEST",
			Status:  400,
			Details: map[string]any{"field": "amount"},
		},
		{Message: "second"},
	}}, env.Document())
}

func TestDocumentStackGating(t *testing.T) {
	env := New(Text("boom"))

	withheld := env.Document()
	require.Empty(t, withheld.Errors[0].Stack)

	exposed := env.Document(IncludeStack())
	require.Contains(t, exposed.Errors[0].Stack, "Traceback:")
	require.Contains(t, exposed.Errors[0].Stack, "    at ")
}

func TestDocumentIsIndependent(t *testing.T) {
	env := New(Fields(map[string]any{
		"message": "boom",
		"details": map[string]any{"field": "amount"},
	}))

	doc := env.Document()
	doc.Errors[0].Details.(map[string]any)["field"] = "mutated"

	again := env.Document()
	require.Equal(t, "amount", again.Errors[0].Details.(map[string]any)["field"])
}

func TestJSONMatchesStandardLibrary(t *testing.T) {

	cases := []struct {
		name string
		env  *Envelope
	}{
		{"empty record", New(None())},
		{"text", New(Text("boom"))},
		{
			"full record",
			New(Fields(map[string]any{
				"message": "boom",
				"code":    "BAD_REQUEST",
				"source":  "billing",
				"status":  400,
				"details": map[string]any{"field": "amount"},
				"links":   map[string]any{"about": "/docs"},
			})),
		},
		{"multi record", New(Text("one")).Append(Text("two"))},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			expected, err := stdjson.Marshal(c.env.Document())
			require.NoError(t, err)
			require.Equal(t, string(expected), c.env.JSON())
		})
	}
}

func TestMarshalJSON(t *testing.T) {
	env := New(Text("boom"), WithCode("NOT_FOUND"), WithStatus(404))

	direct, err := stdjson.Marshal(env)
	require.NoError(t, err)
	require.Equal(t, env.JSON(), string(direct))

	// embedded in a larger payload the envelope serializes as its document
	wrapped, err := stdjson.Marshal(map[string]any{"error": env})
	require.NoError(t, err)
	require.Equal(t, `{"error":`+env.JSON()+`}`, string(wrapped))
}

var regxMatchTextFrame = regexp.MustCompile(`(?m)^    at \S+ \(\S+\.go:\d+\)$`)

func TestTextSingleRecord(t *testing.T) {
	env := New(Text("boom"), WithCode("BAD_REQUEST"), WithStatus(400))
	report := env.Text()

	require.True(t, strings.HasPrefix(report, "Error 1 of 1: [BAD_REQUEST] boom\n"))
	require.True(t, regxMatchTextFrame.MatchString(report))
	require.NotContains(t, report, "Traceback:")
	require.Contains(t, report, "    with {")
	require.Contains(t, report, `"code": "BAD_REQUEST"`)
	require.Contains(t, report, `"status": 400`)
	require.NotContains(t, report, `"message"`)
}

func TestTextWithoutCode(t *testing.T) {
	env := New(Text("boom"))
	report := env.Text()
	require.True(t, strings.HasPrefix(report, "Error 1 of 1: boom\n"))
	require.NotContains(t, report, "[")
}

func TestTextMultiRecord(t *testing.T) {
	env := New(Text("first")).Append(Text("second")).Append(Text("third"))
	report := env.Text()

	require.Contains(t, report, "Error 1 of 3: first")
	require.Contains(t, report, "\n\nError 2 of 3: second")
	require.Contains(t, report, "\n\nError 3 of 3: third")
}

func TestTextDataIndentation(t *testing.T) {
	env := New(Fields(map[string]any{
		"message": "boom",
		"code":    "BAD_REQUEST",
		"status":  400,
	}))
	report := env.Text()

	// the with block is introduced four spaces in; continuation lines are
	// indented nine spaces, plus the two-space pretty indent per level
	require.Contains(t, report, "\n    with {")
	require.Regexp(t, regexp.MustCompile(`(?m)^ {11}"code": "BAD_REQUEST",?$`), report)
	require.Regexp(t, regexp.MustCompile(`(?m)^ {9}\}$`), report)
}

func TestTextNoDataBlock(t *testing.T) {
	env := New(Text("boom"))
	require.NotContains(t, env.Text(), "with")
}
