package domain

// Word is a term belonging to exactly one language.
// Its name is unique within that language only.
type Word struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	LanguageID int64  `json:"language_id"`
}

// Entry is a word together with every word linked to it as a translation
type Entry struct {
	Word         Word   `json:"word"`
	Translations []Word `json:"translations"`
}
