package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

type createLanguageRequest struct {
	Name string `json:"name"`
}

type createWordRequest struct {
	Name       string `json:"name"`
	LanguageID int64  `json:"language_id"`
}

type addTranslationRequest struct {
	WordID      int64 `json:"word_id"`
	OtherWordID int64 `json:"other_word_id"`
}

func (s *Server) listLanguages(w http.ResponseWriter, r *http.Request) {
	languages, err := s.languages.ListLanguages(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, languages)
}

func (s *Server) createLanguage(w http.ResponseWriter, r *http.Request) {
	var req createLanguageRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	lang, err := s.languages.CreateLanguage(r.Context(), req.Name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, lang)
}

func (s *Server) listLanguageWords(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	words, err := s.words.ListWords(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, words)
}

func (s *Server) createWord(w http.ResponseWriter, r *http.Request) {
	var req createWordRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	word, err := s.words.CreateWord(r.Context(), req.Name, req.LanguageID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, word)
}

// searchWords passes q to LIKE untouched, so callers add their own wildcards
func (s *Server) searchWords(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("q") {
		s.writeError(w, r, badRequest("query parameter q is required"))
		return
	}

	words, err := s.words.SearchWords(r.Context(), query.Get("q"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, words)
}

func (s *Server) getWord(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	word, err := s.words.GetWord(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, word)
}

func (s *Server) wordTranslations(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	words, err := s.translations.TranslationsOf(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, words)
}

func (s *Server) addTranslation(w http.ResponseWriter, r *http.Request) {
	var req addTranslationRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	pair, err := s.translations.AddTranslation(r.Context(), req.WordID, req.OtherWordID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, pair)
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) {
	// chi matches on the raw path when it is set, so the parameter may still be escaped
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, r, badRequest("invalid word name"))
		return
	}

	entries, err := s.translations.Lookup(r.Context(), name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, entries)
}
