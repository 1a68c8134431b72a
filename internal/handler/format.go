package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"dictionary/internal/domain"
)

const maxSearchResults = 50

func formatLanguages(languages []domain.Language) string {
	if len(languages) == 0 {
		return "No languages yet. Add one with /addlang <name>"
	}

	var b strings.Builder
	b.WriteString("🌍 Languages:\n")
	for _, l := range languages {
		fmt.Fprintf(&b, "\n%d. %s", l.ID, l.Name)
	}
	return b.String()
}

func formatWord(w domain.Word, languageNames map[int64]string) string {
	lang, ok := languageNames[w.LanguageID]
	if !ok {
		lang = "?"
	}
	return fmt.Sprintf("%s (%s) #%d", w.Name, lang, w.ID)
}

func formatWords(title string, words []domain.Word, languageNames map[int64]string) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	for _, w := range words {
		b.WriteString("\n• ")
		b.WriteString(formatWord(w, languageNames))
	}
	return b.String()
}

// formatSearchResults lists at most maxSearchResults words and returns the ones listed.
// Telegram rejects longer messages and larger keyboards.
func formatSearchResults(words []domain.Word, languageNames map[int64]string) (string, []domain.Word) {
	shown := words
	if len(shown) > maxSearchResults {
		shown = shown[:maxSearchResults]
	}

	text := formatWords("🔎 Found:", shown, languageNames)
	if hidden := len(words) - len(shown); hidden > 0 {
		text += fmt.Sprintf("\n\n…and %d more, refine the pattern", hidden)
	}
	return text, shown
}

func formatEntries(entries []domain.Entry, languageNames map[int64]string) string {
	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		var b strings.Builder
		b.WriteString("📝 ")
		b.WriteString(formatWord(e.Word, languageNames))
		if len(e.Translations) == 0 {
			b.WriteString("\nNo translations yet")
		}
		for _, t := range e.Translations {
			b.WriteString("\n🔄 ")
			b.WriteString(formatWord(t, languageNames))
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}

// splitFirst splits s into its first field and the trimmed remainder
func splitFirst(s string) (string, string, bool) {
	first, rest, ok := strings.Cut(strings.TrimSpace(s), " ")
	rest = strings.TrimSpace(rest)
	if !ok || first == "" || rest == "" {
		return "", "", false
	}
	return first, rest, true
}

func parseWordIDs(s string) (int64, int64, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, 0, errors.New("expected two word ids")
	}

	a, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid word id %q: %w", fields[0], err)
	}
	b, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid word id %q: %w", fields[1], err)
	}
	return a, b, nil
}
