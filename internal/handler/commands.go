package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"dictionary/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const helpText = `📖 Dictionary

/languages - list languages
/addlang <name> - add a language
/addword <language> <word> - add a word to a language
/search <pattern> - search words, % and _ are wildcards
/link <word id> <word id> - mark two words as translations
/word <word id> - show a word's translations

Send any word to look it up.`

// handleStart handles /start and /help
func (h *Handler) handleStart(c tele.Context) error {
	if sender := c.Sender(); sender != nil {
		h.logger.Info("User started bot",
			zap.Int64("user_id", sender.ID),
			zap.String("username", sender.Username),
		)
	}
	return c.Send(helpText)
}

func (h *Handler) handleLanguages(c tele.Context) error {
	languages, err := h.languageService.ListLanguages(context.Background())
	if err != nil {
		return h.reply(c, err)
	}
	return c.Send(formatLanguages(languages))
}

func (h *Handler) handleAddLanguage(c tele.Context) error {
	name := payload(c)
	if name == "" {
		return c.Send("Usage: /addlang <name>")
	}

	lang, err := h.languageService.CreateLanguage(context.Background(), name)
	if err != nil {
		return h.reply(c, err)
	}
	return c.Send(fmt.Sprintf("✅ Language %q added (id %d)", lang.Name, lang.ID))
}

func (h *Handler) handleAddWord(c tele.Context) error {
	ctx := context.Background()

	languageRef, name, ok := splitFirst(payload(c))
	if !ok {
		return c.Send("Usage: /addword <language> <word>")
	}

	lang, err := h.resolveLanguage(ctx, languageRef)
	if err != nil {
		return h.reply(c, err)
	}

	word, err := h.wordService.CreateWord(ctx, name, lang.ID)
	if err != nil {
		return h.reply(c, err)
	}
	return c.Send(fmt.Sprintf("✅ Word %q added to %s (id %d)", word.Name, lang.Name, word.ID))
}

func (h *Handler) handleSearch(c tele.Context) error {
	ctx := context.Background()

	pattern := payload(c)
	if pattern == "" {
		return c.Send("Usage: /search <pattern>")
	}

	words, err := h.wordService.SearchWords(ctx, pattern)
	if err != nil {
		return h.reply(c, err)
	}
	if len(words) == 0 {
		return c.Send("No words match " + strconv.Quote(pattern))
	}

	names, err := h.languageNames(ctx)
	if err != nil {
		return h.reply(c, err)
	}
	text, shown := formatSearchResults(words, names)
	return c.Send(text, wordsMarkup(shown))
}

func (h *Handler) handleLink(c tele.Context) error {
	a, b, err := parseWordIDs(payload(c))
	if err != nil {
		return c.Send("Usage: /link <word id> <word id>")
	}

	pair, err := h.translationService.AddTranslation(context.Background(), a, b)
	if err != nil {
		return h.reply(c, err)
	}
	return c.Send(fmt.Sprintf("✅ Words %d and %d are translations", pair.FirstWordID, pair.SecondWordID))
}

func (h *Handler) handleWord(c tele.Context) error {
	id, err := strconv.ParseInt(payload(c), 10, 64)
	if err != nil {
		return c.Send("Usage: /word <word id>")
	}
	return h.showTranslations(c, id)
}

// handleText looks up every word spelled like the message
func (h *Handler) handleText(c tele.Context) error {
	ctx := context.Background()

	text := strings.TrimSpace(c.Text())
	// Ignore unknown commands
	if text == "" || strings.HasPrefix(text, "/") {
		return nil
	}

	entries, err := h.translationService.Lookup(ctx, text)
	if err != nil {
		return h.reply(c, err)
	}
	if len(entries) == 0 {
		return c.Send("No word " + strconv.Quote(text) + " yet. Add it with /addword")
	}

	names, err := h.languageNames(ctx)
	if err != nil {
		return h.reply(c, err)
	}
	return c.Send(formatEntries(entries, names))
}

func (h *Handler) showTranslations(c tele.Context, wordID int64) error {
	ctx := context.Background()

	word, err := h.wordService.GetWord(ctx, wordID)
	if err != nil {
		return h.reply(c, err)
	}
	translations, err := h.translationService.TranslationsOf(ctx, wordID)
	if err != nil {
		return h.reply(c, err)
	}

	names, err := h.languageNames(ctx)
	if err != nil {
		return h.reply(c, err)
	}
	return c.Send(formatEntries([]domain.Entry{{Word: *word, Translations: translations}}, names))
}

// resolveLanguage accepts a language id or an exact language name
func (h *Handler) resolveLanguage(ctx context.Context, ref string) (*domain.Language, error) {
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return h.languageService.GetLanguage(ctx, id)
	}

	languages, err := h.languageService.ListLanguages(ctx)
	if err != nil {
		return nil, err
	}
	for i := range languages {
		if languages[i].Name == ref {
			return &languages[i], nil
		}
	}
	return nil, domain.NewValidationError("unknown language %q, see /languages", ref)
}

func payload(c tele.Context) string {
	if msg := c.Message(); msg != nil {
		return strings.TrimSpace(msg.Payload)
	}
	return ""
}
