package domain

// TranslationPair is an undirected edge between two words of different
// languages. FirstWordID is always strictly less than SecondWordID, so the
// stored key is a pure function of the unordered pair.
type TranslationPair struct {
	FirstWordID  int64 `json:"first_word_id"`
	SecondWordID int64 `json:"second_word_id"`
}

// NewTranslationPair validates a and b and orders them canonically.
// Argument order does not affect the result.
func NewTranslationPair(a, b Word) (TranslationPair, error) {
	if a.ID == b.ID {
		return TranslationPair{}, NewValidationError("a word cannot be a translation of itself")
	}
	if a.LanguageID == b.LanguageID {
		return TranslationPair{}, NewValidationError("words' languages must be different")
	}

	if a.ID > b.ID {
		a, b = b, a
	}
	return TranslationPair{FirstWordID: a.ID, SecondWordID: b.ID}, nil
}

// IsCanonical reports whether the pair satisfies first < second
func (p TranslationPair) IsCanonical() bool {
	return p.FirstWordID < p.SecondWordID
}
