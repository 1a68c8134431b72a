package domain

// Language is a named category owning a collection of words
type Language struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
