package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("content.YML"))
	assert.Equal(t, FormatYAML, FormatFromPath("/tmp/site.yaml"))
	assert.Equal(t, FormatJSON, FormatFromPath("site.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("site"))
}

func TestEncode_YAMLUsesJSONNames(t *testing.T) {
	out, err := Encode(Defaults(), FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(out), "programOverview:")
	assert.Contains(t, string(out), "initialOpenCount:")
}

func TestDecode_YAMLOverride(t *testing.T) {
	doc := []byte(`
hero:
  title: Ship real software
  subtitle: ""
faq:
  initialOpenCount: 2
  items:
    - question: Is it remote?
      answer: Yes.
`)
	data, err := Decode(doc, FormatYAML)
	require.NoError(t, err)

	o := ParseOverride(data)
	require.NotNil(t, o)
	require.NotNil(t, o.Hero)
	assert.Equal(t, "Ship real software", o.Hero.Title)

	r := Resolve(o)
	assert.Equal(t, Defaults().Hero.Subtitle, r.Hero.Subtitle)
	assert.Equal(t, 1, r.FAQ.InitialOpenCount)
	assert.Equal(t, "Is it remote?", r.FAQ.Items[0].Question)
}

func TestEncodeDecode_YAMLRoundTrip(t *testing.T) {
	out, err := Encode(Defaults(), FormatYAML)
	require.NoError(t, err)

	data, err := Decode(out, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, Resolve(&Override{}), Resolve(ParseOverride(data)))
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode([]byte("{not json"), FormatJSON)
	assert.Error(t, err)

	_, err = Decode([]byte("hero: [unclosed"), FormatYAML)
	assert.Error(t, err)

	_, err = Decode([]byte("{}"), "toml")
	assert.Error(t, err)
}
