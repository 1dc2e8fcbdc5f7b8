// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backendtest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/intellicard-client/internal/utils"
	"github.com/MKhiriev/intellicard-client/models"
)

// masteredAfter is the number of correct answers that masters a card.
const masteredAfter = 3

func (s *Server) dueCards(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.visibleSet(w, r)
	if rec == nil {
		return
	}

	now := s.now()
	due := []models.Card{}
	for _, card := range s.cardsOf(rec.ID) {
		if card.NextReviewDate == nil || !card.NextReviewDate.After(now) {
			due = append(due, card)
		}
	}
	utils.WriteJSON(w, due, http.StatusOK)
}

func (s *Server) studyOverview(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.visibleSet(w, r)
	if rec == nil {
		return
	}

	now := s.now()
	overview := models.StudyOverview{CardSetID: rec.ID, CardSetName: rec.Name}
	for _, card := range s.cardsOf(rec.ID) {
		overview.TotalCards++
		if card.NextReviewDate == nil || !card.NextReviewDate.After(now) {
			overview.DueCards++
		}
		switch card.Status {
		case models.CardStatusMastered:
			overview.MasteredCards++
		case models.CardStatusLearning:
			overview.LearningCards++
		}
	}
	utils.WriteJSON(w, overview, http.StatusOK)
}

func (s *Server) reviewCard(w http.ResponseWriter, r *http.Request) {
	correct, err := strconv.ParseBool(r.URL.Query().Get("correct"))
	if err != nil {
		writeMessage(w, "correct must be true or false", http.StatusBadRequest)
		return
	}
	difficulty := models.DefaultReviewDifficulty
	if raw := r.URL.Query().Get("difficulty"); raw != "" {
		difficulty, err = strconv.Atoi(raw)
		if err != nil || difficulty < models.MinReviewDifficulty || difficulty > models.MaxReviewDifficulty {
			writeMessage(w, "difficulty must be between 1 and 5", http.StatusBadRequest)
			return
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, ErrInvalidID.Error(), http.StatusBadRequest)
		return
	}
	card, ok := s.cards[id]
	if !ok {
		writeMessage(w, ErrCardNotFound.Error(), http.StatusNotFound)
		return
	}
	if set := s.sets[card.CardSetID]; set == nil || s.accessTypeFor(set, currentUser(r)) == "" {
		writeMessage(w, ErrAccessDenied.Error(), http.StatusForbidden)
		return
	}

	card.TimesReviewed++
	next := s.now()
	if correct {
		card.TimesCorrect++
		next = next.Add(time.Duration(card.TimesCorrect*(models.MaxReviewDifficulty+1-difficulty)) * 24 * time.Hour)
	}
	card.NextReviewDate = &models.Timestamp{Time: next}

	switch {
	case card.TimesCorrect >= masteredAfter:
		card.Status = models.CardStatusMastered
	default:
		card.Status = models.CardStatusLearning
	}

	w.WriteHeader(http.StatusOK)
}
