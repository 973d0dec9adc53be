package game

import "github.com/aaronzipp/find-the-imposter/internal/models"

// categories fixes lookup order; a word listed in two categories belongs to the first
var categories = []models.Category{
	models.CategoryFood,
	models.CategoryLocation,
	models.CategoryAnimal,
	models.CategoryObject,
}

var wordCategories = map[models.Category][]string{
	models.CategoryFood: {
		"PIZZA", "BURGER", "SUSHI", "PASTA", "TACO", "SANDWICH", "SALAD", "SOUP", "STEAK", "CHICKEN",
		"RICE", "NOODLES", "BREAD", "CHEESE", "CHOCOLATE", "APPLE", "BANANA", "ORANGE", "STRAWBERRY",
		"MANGO", "WATERMELON", "GRAPE", "PINEAPPLE", "PEACH", "CHERRY", "ICE CREAM", "CAKE", "COOKIE",
		"DONUT", "PANCAKE", "WAFFLE", "BACON", "EGG", "TOAST", "BURRITO", "QUESADILLA", "NACHOS",
		"HOT DOG", "FRIES", "POPCORN", "PRETZEL", "BAGEL", "MUFFIN", "CROISSANT", "RAMEN", "CURRY",
		"DUMPLINGS", "SPRING ROLL", "TEMPURA", "KEBAB",
	},
	models.CategoryLocation: {
		"BEACH", "MOUNTAIN", "DESERT", "FOREST", "CITY", "ISLAND", "LAKE", "RIVER", "PARK", "MALL",
		"AIRPORT", "HOSPITAL", "SCHOOL", "LIBRARY", "RESTAURANT", "CAFE", "MUSEUM", "THEATER", "STADIUM",
		"GYM", "HOTEL", "RESORT", "CABIN", "CASTLE", "PALACE", "CHURCH", "BRIDGE", "LIGHTHOUSE", "FARM",
		"RANCH", "VINEYARD", "GARDEN", "PLAYGROUND", "CEMETERY", "SUBWAY", "TRAIN STATION", "BUS STOP",
		"PARKING LOT", "WAREHOUSE", "FACTORY", "OFFICE", "LABORATORY", "BAKERY", "BUTCHER SHOP",
		"BOOKSTORE",
	},
	models.CategoryAnimal: {
		"DOG", "CAT", "ELEPHANT", "LION", "TIGER", "BEAR", "WOLF", "EAGLE", "SHARK", "DOLPHIN",
		"PENGUIN", "MONKEY", "GIRAFFE", "ZEBRA", "RABBIT", "HORSE", "COW", "PIG", "SHEEP", "GOAT",
		"CHICKEN", "DUCK", "GOOSE", "TURKEY", "PARROT", "FLAMINGO", "OWL", "HAWK", "CROW", "SEAGULL",
		"SNAKE", "LIZARD", "TURTLE", "FROG", "CROCODILE", "ALLIGATOR", "WHALE", "SEAL", "WALRUS",
		"OCTOPUS", "JELLYFISH", "STARFISH", "CRAB", "LOBSTER", "KANGAROO", "KOALA", "PANDA", "RACCOON",
		"SQUIRREL", "DEER",
	},
	models.CategoryObject: {
		"CAR", "PHONE", "LAPTOP", "WATCH", "CHAIR", "TABLE", "LAMP", "MIRROR", "BOOK", "PENCIL",
		"CAMERA", "GUITAR", "BALL", "CLOCK", "UMBRELLA", "BICYCLE", "MOTORCYCLE", "SKATEBOARD",
		"SCOOTER", "BOAT", "PLANE", "HELICOPTER", "TRAIN", "BUS", "TRUCK", "TELEVISION", "COMPUTER",
		"HEADPHONES", "SPEAKER", "MICROPHONE", "RADIO", "GLASSES", "SUNGLASSES", "HAT", "SHOES",
		"BACKPACK", "WALLET", "KEYS", "BOTTLE", "CUP", "PLATE", "FORK", "SPOON", "KNIFE", "PAN", "POT",
		"TOASTER", "BLENDER",
	},
}

// Categories returns the concrete categories in lookup order
func Categories() []models.Category {
	return append([]models.Category(nil), categories...)
}

// Words returns the word list of a category
func Words(category models.Category) []string {
	return append([]string(nil), wordCategories[category]...)
}

// IsKnownCategory reports whether c is a concrete catalog category
func IsKnownCategory(c models.Category) bool {
	_, ok := wordCategories[c]
	return ok
}

// IsValidCategoryPreference accepts a concrete category or Random
func IsValidCategoryPreference(c models.Category) bool {
	return c == models.CategoryRandom || IsKnownCategory(c)
}

// CategoryOf returns the first category listing word
func CategoryOf(word string) (models.Category, bool) {
	for _, c := range categories {
		for _, w := range wordCategories[c] {
			if w == word {
				return c, true
			}
		}
	}
	return "", false
}

// allWords is the de-duplicated union of every category, in lookup order
func allWords() []string {
	seen := make(map[string]bool)
	var words []string
	for _, c := range categories {
		for _, w := range wordCategories[c] {
			if !seen[w] {
				seen[w] = true
				words = append(words, w)
			}
		}
	}
	return words
}

// PickWord selects the next secret word. Words in used are skipped; when the
// whole catalog is used up the history restarts with this pick. A concrete
// preferred category restricts the pick to that category and falls back to
// the full category list when all of its words are used.
func (e *Engine) PickWord(preferred models.Category, used []string) (string, models.Category, []string) {
	usedSet := make(map[string]bool, len(used))
	for _, w := range used {
		usedSet[w] = true
	}

	var available []string
	for _, w := range allWords() {
		if !usedSet[w] {
			available = append(available, w)
		}
	}
	if len(available) == 0 {
		available = allWords()
		used = nil
		usedSet = map[string]bool{}
	}

	var word string
	var category models.Category
	if preferred != models.CategoryRandom && IsKnownCategory(preferred) {
		category = preferred
		list := wordCategories[preferred]
		var candidates []string
		for _, w := range list {
			if !usedSet[w] {
				candidates = append(candidates, w)
			}
		}
		if len(candidates) == 0 {
			candidates = list
		}
		word = candidates[e.intn(len(candidates))]
	} else {
		word = available[e.intn(len(available))]
		category, _ = CategoryOf(word)
	}

	updated := make([]string, 0, len(used)+1)
	updated = append(updated, used...)
	updated = append(updated, word)
	return word, category, updated
}
