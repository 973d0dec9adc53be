package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/find-the-imposter/internal/models"
)

func TestPickWordSkipsUsedWords(t *testing.T) {
	e := newTestEngine(1)
	all := allWords()
	used := append([]string(nil), all[:len(all)-1]...)

	word, category, updated := e.PickWord(models.CategoryRandom, used)

	assert.Equal(t, all[len(all)-1], word)
	assert.Equal(t, models.CategoryObject, category)
	assert.Len(t, updated, len(used)+1)
	assert.Equal(t, word, updated[len(updated)-1])
}

func TestPickWordResetsWhenCatalogExhausted(t *testing.T) {
	e := newTestEngine(2)

	word, category, updated := e.PickWord(models.CategoryRandom, allWords())

	assert.Equal(t, []string{word}, updated, "history restarts with the new pick")
	got, ok := CategoryOf(word)
	require.True(t, ok)
	assert.Equal(t, got, category)
}

func TestPickWordHonorsPreferredCategory(t *testing.T) {
	e := newTestEngine(3)
	used := []string{}
	for range 20 {
		var word string
		var category models.Category
		word, category, used = e.PickWord(models.CategoryAnimal, used)
		assert.Equal(t, models.CategoryAnimal, category)
		assert.Contains(t, Words(models.CategoryAnimal), word)
	}
	assert.Len(t, used, 20)
}

func TestPickWordNoRepeatWithinCategory(t *testing.T) {
	e := newTestEngine(4)
	seen := map[string]bool{}
	used := []string{}
	for range len(Words(models.CategoryLocation)) {
		var word string
		word, _, used = e.PickWord(models.CategoryLocation, used)
		assert.False(t, seen[word], "repeated %s", word)
		seen[word] = true
	}
}

func TestPickWordFallsBackToWholeCategory(t *testing.T) {
	e := newTestEngine(5)
	used := Words(models.CategoryFood)

	word, category, updated := e.PickWord(models.CategoryFood, used)

	assert.Equal(t, models.CategoryFood, category)
	assert.Contains(t, Words(models.CategoryFood), word)
	assert.Len(t, updated, len(used)+1)
}

func TestPickWordUnknownPreferenceActsRandom(t *testing.T) {
	e := newTestEngine(6)

	word, category, _ := e.PickWord("Vehicles", nil)

	got, ok := CategoryOf(word)
	require.True(t, ok)
	assert.Equal(t, got, category)
}

func TestCategoryOfSharedWordUsesFirstCategory(t *testing.T) {
	category, ok := CategoryOf("CHICKEN")
	require.True(t, ok)
	assert.Equal(t, models.CategoryFood, category)
}

func TestIsValidCategoryPreference(t *testing.T) {
	for _, c := range []models.Category{"Random", "Food", "Location", "Animal", "Object"} {
		assert.True(t, IsValidCategoryPreference(c), c)
	}
	assert.False(t, IsValidCategoryPreference("food"))
	assert.False(t, IsValidCategoryPreference(""))
}
