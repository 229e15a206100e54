package education

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCards_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderCards(&buf, []Record{bsc, msc}))

	g := goldie.New(t, goldie.WithFixtureDir("testdata"))
	g.Assert(t, "cards", buf.Bytes())
}

func TestRenderCards_OneCardPerRecord(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderCards(&buf, []Record{bsc, msc, hsc}))

	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, `class="card education-card"`))
	assert.Less(t, strings.Index(out, "B.Sc"), strings.Index(out, "M.Sc"), "display order is storage order")
	assert.Less(t, strings.Index(out, "M.Sc"), strings.Index(out, "HSC"))
}

func TestRenderCards_DescriptionIsOptional(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderCards(&buf, []Record{bsc}))
	assert.Equal(t, 2, strings.Count(buf.String(), "<p>"))

	buf.Reset()
	require.NoError(t, RenderCards(&buf, []Record{msc}))
	assert.Equal(t, 3, strings.Count(buf.String(), "<p>"))
}

func TestRenderCards_EscapesText(t *testing.T) {
	var buf bytes.Buffer
	r := bsc
	r.Degree = "<script>alert(1)</script>"
	require.NoError(t, RenderCards(&buf, []Record{r}))
	assert.NotContains(t, buf.String(), "<script>")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestRenderForm(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderForm(&buf, FormHandle{ID: "f1", Index: 0, Record: msc}))
	out := buf.String()
	assert.Contains(t, out, `value="XYZ University"`)
	assert.Contains(t, out, ">Thesis on caching</textarea>")
	assert.Contains(t, out, ">Update</button>")
	assert.Contains(t, out, `<input type="hidden" name="form_id" value="f1">`)

	buf.Reset()
	require.NoError(t, RenderForm(&buf, FormHandle{ID: "f2", Index: -1}))
	assert.Contains(t, buf.String(), ">Add</button>")
}

func TestCardsHTML(t *testing.T) {
	h, err := CardsHTML([]Record{bsc})
	require.NoError(t, err)
	assert.Contains(t, string(h), "<p>ABC College (2018-2022)</p>")
}
