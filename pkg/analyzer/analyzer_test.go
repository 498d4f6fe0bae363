package analyzer

import (
	"testing"

	"github.com/lintang-b-s/text-summarizer/pkg/morph"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	a := New()

	t.Run("segments sentences on terminators", func(t *testing.T) {
		sentences := a.Analyze("Saya memakan nasi goreng. Dia tidur! Benarkah itu?")
		require.Len(t, sentences, 3)
		assert.Equal(t, 0, sentences[0].Position)
		assert.Equal(t, 2, sentences[2].Position)
	})

	t.Run("function words are not content words", func(t *testing.T) {
		sentences := a.Analyze("Saya memakan nasi.")
		require.Len(t, sentences, 1)

		byForm := map[string]morph.Morphology{}
		for _, token := range sentences[0].Tokens {
			require.Len(t, token.FlatMorphologies, 1)
			byForm[token.Form] = token.FlatMorphologies[0]
		}

		require.Contains(t, byForm, "saya")
		assert.False(t, byForm["saya"].IsContentWord())

		require.Contains(t, byForm, "memakan")
		assert.True(t, byForm["memakan"].IsContentWord())
		assert.Equal(t, "makan", byForm["memakan"].Lemma, "lemma is the stem")
	})

	t.Run("numerals are closed class", func(t *testing.T) {
		sentences := a.Analyze("Harga naik 25 persen.")
		require.Len(t, sentences, 1)

		for _, token := range sentences[0].Tokens {
			if token.Form == "25" {
				assert.Equal(t, morph.Numeral, token.FlatMorphologies[0].Class)
				assert.False(t, token.FlatMorphologies[0].IsContentWord())
			}
		}
	})

	t.Run("empty text", func(t *testing.T) {
		assert.Empty(t, a.Analyze(""))
		assert.Empty(t, a.Analyze("   "))
	})
}
