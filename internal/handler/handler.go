package handler

import (
	"context"
	"errors"

	"dictionary/internal/domain"
	"dictionary/internal/middleware"
	"dictionary/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const msgInternalError = "Something went wrong. Try again later."

// Handler manages all bot interactions
type Handler struct {
	bot                *tele.Bot
	languageService    *service.LanguageService
	wordService        *service.WordService
	translationService *service.TranslationService
	logger             *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	languageService *service.LanguageService,
	wordService *service.WordService,
	translationService *service.TranslationService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:                bot,
		languageService:    languageService,
		wordService:        wordService,
		translationService: translationService,
		logger:             logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Use(middleware.BotLogger(h.logger))

	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/help", h.handleStart)
	h.bot.Handle("/languages", h.handleLanguages)
	h.bot.Handle("/addlang", h.handleAddLanguage)
	h.bot.Handle("/addword", h.handleAddWord)
	h.bot.Handle("/search", h.handleSearch)
	h.bot.Handle("/link", h.handleLink)
	h.bot.Handle("/word", h.handleWord)

	// Plain text looks a word up by its exact name
	h.bot.Handle(tele.OnText, h.handleText)

	// Inline "show translations" buttons
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// reply turns a service error into a message for the user.
// Validation and not-found errors are shown verbatim, anything else is logged.
func (h *Handler) reply(c tele.Context, err error) error {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return c.Send("⚠️ " + validationErr.Reason)
	}

	var notFoundErr *domain.NotFoundError
	if errors.As(err, &notFoundErr) {
		return c.Send("🔍 " + notFoundErr.Error())
	}

	h.logger.Error("Bot command failed", zap.Error(err), zap.String("text", c.Text()))
	return c.Send(msgInternalError)
}

// languageNames maps language ids to names for display
func (h *Handler) languageNames(ctx context.Context) (map[int64]string, error) {
	languages, err := h.languageService.ListLanguages(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(languages))
	for _, l := range languages {
		names[l.ID] = l.Name
	}
	return names, nil
}

// wordsMarkup adds one "translations" button per word
func wordsMarkup(words []domain.Word) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(words))
	for _, w := range words {
		rows = append(rows, markup.Row(markup.Data("🔄 "+w.Name, wordCallbackData(w.ID))))
	}
	markup.Inline(rows...)
	return markup
}
