package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSlug(t *testing.T) {
	tests := []struct {
		name    string
		slug    string
		wantErr bool
	}{
		{"Valid simple slug", "acme", false},
		{"Valid with hyphen", "casa-da-maria", false},
		{"Valid with digits", "pizza123", false},
		{"Uppercase is normalized before checking", "ACME", false},
		{"Surrounding whitespace is trimmed", "  acme  ", false},
		{"Empty", "", true},
		{"Too short", "ab", true},
		{"Too long", "abcdefghijklmnopqrstuvwxyz12345", true},
		{"Leading hyphen", "-acme", true},
		{"Trailing hyphen", "acme-", true},
		{"Consecutive hyphens", "casa--maria", true},
		{"Underscore", "casa_maria", true},
		{"Accented characters", "açaí", true},
		{"Reserved infrastructure name", "www", true},
		{"Reserved platform name", "quentinhas", true},
		{"Reserved generic name", "delivery", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSlug(tt.slug)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizeSlug(t *testing.T) {
	assert.Equal(t, "acme", NormalizeSlug("  ACME "))
	assert.Equal(t, "casa-da-maria", NormalizeSlug("Casa-Da-Maria"))
}

func TestSlugFromName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Plain name", "Acme", "acme"},
		{"Spaces become hyphens", "Casa da Maria", "casa-da-maria"},
		{"Portuguese accents stripped", "Sabor Caseiro São João", "sabor-caseiro-sao-joao"},
		{"Cedilla", "Açaí do Zé", "acai-do-ze"},
		{"Punctuation dropped", "Maria's Food & Co.", "marias-food-co"},
		{"Collapsed hyphens", "A  -  B", "a-b"},
		{"Empty input", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SlugFromName(tt.in))
		})
	}
}

func TestSuggestSlugs(t *testing.T) {
	suggestions := SuggestSlugs("Casa da Maria")

	assert.NotEmpty(t, suggestions)
	assert.LessOrEqual(t, len(suggestions), 8)
	assert.Equal(t, "casa-da-maria", suggestions[0])
	assert.Contains(t, suggestions, "casa-da-maria-delivery")
	assert.Contains(t, suggestions, "casa-da-maria1")

	// Every suggestion respects the length bounds
	for _, s := range suggestions {
		assert.LessOrEqual(t, len(s), MaxSlugLength, s)
	}
}

func TestSuggestSlugsAbbreviatesLongNames(t *testing.T) {
	suggestions := SuggestSlugs("Restaurante Sabores da Fazenda Grande")
	assert.Contains(t, suggestions, "rsdfg")
}

func TestSuggestSlugsEmptyName(t *testing.T) {
	assert.Nil(t, SuggestSlugs("!!!"))
}
