package models

// Category groups secret words
type Category string

const (
	CategoryFood     Category = "Food"
	CategoryLocation Category = "Location"
	CategoryAnimal   Category = "Animal"
	CategoryObject   Category = "Object"

	// CategoryRandom is a preference only; a picked word always has a concrete category
	CategoryRandom Category = "Random"
)
