package handler

import (
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const wordCallbackPrefix = "word_"

func wordCallbackData(wordID int64) string {
	return wordCallbackPrefix + strconv.FormatInt(wordID, 10)
}

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleCallback handles inline button presses
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)

	if strings.HasPrefix(data, wordCallbackPrefix) {
		id, err := strconv.ParseInt(strings.TrimPrefix(data, wordCallbackPrefix), 10, 64)
		if err != nil {
			return c.Respond(&tele.CallbackResponse{Text: "Unknown word"})
		}
		if err := c.Respond(); err != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
		}
		return h.showTranslations(c, id)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}
