package keywords

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/amharic-ner/internal/tagger"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	kw, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, tagger.DefaultKeywords(), kw)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "kw.toml", `
locations = ["ቦሌ", "ጦር ሀይሎች", "  ", "ቦሌ"]
products = ["ስልክ"]
`)

	kw, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"ቦሌ", "ጦርሀይሎች"}, kw.Locations)
	assert.Equal(t, []string{"ስልክ"}, kw.Products)
	// Unset fields keep their defaults.
	def := tagger.DefaultKeywords()
	assert.Equal(t, def.PriceMarkers, kw.PriceMarkers)
	assert.Equal(t, def.PriceUnit, kw.PriceUnit)
	assert.Equal(t, def.PriceIntroducer, kw.PriceIntroducer)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "kw.yml", `
price_markers: ["ዋጋ", "ብር", "ETB"]
price_unit: ETB
locations:
  - ፒያሳ
`)

	kw, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ETB", kw.PriceUnit)
	assert.Equal(t, "ዋጋ", kw.PriceIntroducer)
	assert.Equal(t, []string{"ፒያሳ"}, kw.Locations)

	got := tagger.New(kw).Label([]string{"ዋጋ", "10", "ETB", "ፒያሳ"})
	assert.Equal(t, tagger.IPrice, got[1].Tag)
	assert.Equal(t, tagger.IPrice, got[2].Tag)
	assert.Equal(t, tagger.BLocation, got[3].Tag)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		_, err := Load(writeFile(t, "kw.json", `{}`))
		assert.ErrorContains(t, err, "unsupported keyword file")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("bad toml", func(t *testing.T) {
		_, err := Load(writeFile(t, "kw.toml", `locations = [`))
		assert.ErrorContains(t, err, "decode toml")
	})

	t.Run("unit not a marker", func(t *testing.T) {
		_, err := Load(writeFile(t, "kw.toml", `price_unit = "ETB"`))
		assert.ErrorIs(t, err, ErrInvalid)
		assert.ErrorContains(t, err, "not listed in price_markers")
	})
}

func TestValidate(t *testing.T) {
	valid := tagger.DefaultKeywords()
	assert.NoError(t, Validate(valid))

	tests := []struct {
		name   string
		mutate func(*tagger.Keywords)
	}{
		{"empty unit", func(kw *tagger.Keywords) { kw.PriceUnit = "" }},
		{"empty introducer", func(kw *tagger.Keywords) { kw.PriceIntroducer = "" }},
		{"unit with space", func(kw *tagger.Keywords) {
			kw.PriceUnit = "ብር ብር"
			kw.PriceMarkers = append(kw.PriceMarkers, "ብር ብር")
		}},
		{"same unit and introducer", func(kw *tagger.Keywords) { kw.PriceIntroducer = kw.PriceUnit }},
		{"introducer not a marker", func(kw *tagger.Keywords) { kw.PriceMarkers = []string{"ብር"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kw := tagger.DefaultKeywords()
			tt.mutate(&kw)
			assert.ErrorIs(t, Validate(kw), ErrInvalid)
		})
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	def := tagger.DefaultKeywords()

	for _, format := range []Format{TOML, YAML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Marshal(def, format)
			require.NoError(t, err)

			got, err := Parse(data, format)
			require.NoError(t, err)
			assert.Equal(t, def, got)
		})
	}

	_, err := Marshal(def, Format("ini"))
	assert.Error(t, err)
}

func TestFormatFor(t *testing.T) {
	f, err := FormatFor("a/B.YAML")
	require.NoError(t, err)
	assert.Equal(t, YAML, f)

	f, err = FormatFor("kw.toml")
	require.NoError(t, err)
	assert.Equal(t, TOML, f)
}
