// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package backendtest implements an in-memory Intellicard backend speaking
// the same REST contract as the local and cloud backends. Adapter and service
// tests run the real HTTP clients against it.
//
// A Server keeps users, card sets, cards and access requests in memory,
// issues HS256 JWTs on login, and lets tests inject failures for specific
// card sets or cards to exercise partial sync outcomes.
package backendtest

import (
	"net/http/httptest"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/intellicard-client/internal/logger"
	"github.com/MKhiriev/intellicard-client/models"
	"github.com/go-chi/chi/v5"
)

// APIPrefix is the path under which the API is mounted, matching the real
// backends' base URL layout.
const APIPrefix = "/api/v1"

const defaultTokenTTL = time.Hour

type cardSetRecord struct {
	models.CardSet
	Owner string
}

type cardRecord struct {
	models.Card
	CardSetID int64
}

type accessRecord struct {
	models.AccessRequest
	Owner string
}

// Server is an in-memory backend. The zero value is not usable; construct
// it with [New].
type Server struct {
	mu sync.Mutex

	issuer  string
	signKey string
	ttl     time.Duration

	// anonymousUser, when set, is the identity of requests that carry no
	// Authorization header. The local backend accepts the sync client's
	// credential-less calls this way.
	anonymousUser string

	users    map[string]string
	userIDs  map[string]int64
	sets     map[int64]*cardSetRecord
	cards    map[int64]*cardRecord
	requests map[int64]*accessRecord
	nextID   int64

	failSetNames map[string]int
	failCardSets map[int64]int
	failTerms    map[string]int
	failList     int

	calls map[string]int

	now    func() time.Time
	logger *logger.Logger
}

// Option configures a [Server].
type Option func(*Server)

// WithAnonymousUser makes requests without an Authorization header act as
// username instead of being rejected with 401.
func WithAnonymousUser(username string) Option {
	return func(s *Server) {
		s.anonymousUser = username
		s.ensureUser(username)
	}
}

// WithClock replaces the wall clock used for study scheduling.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// New returns an empty backend that signs tokens as issuer.
func New(issuer string, log *logger.Logger, opts ...Option) *Server {
	s := &Server{
		issuer:       issuer,
		signKey:      issuer + "-secret",
		ttl:          defaultTokenTTL,
		users:        make(map[string]string),
		userIDs:      make(map[string]int64),
		sets:         make(map[int64]*cardSetRecord),
		cards:        make(map[int64]*cardRecord),
		requests:     make(map[int64]*accessRecord),
		failSetNames: make(map[string]int),
		failCardSets: make(map[int64]int),
		failTerms:    make(map[string]int),
		calls:        make(map[string]int),
		now:          time.Now,
		logger:       log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start serves the backend on a loopback listener and returns the test
// server together with the API base URL.
func (s *Server) Start() (*httptest.Server, string) {
	srv := httptest.NewServer(s.Router())
	return srv, srv.URL + APIPrefix
}

// Router returns the chi router serving the API under [APIPrefix].
func (s *Server) Router() *chi.Mux {
	router := chi.NewRouter()
	router.Use(s.withRequestID, s.withLogging, s.countCalls)

	router.Route(APIPrefix, func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/auth/register", s.register)
			r.Post("/auth/login", s.login)
			r.Get("/auth/check-username", s.checkUsername)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.auth)

			r.Get("/cardsets", s.listCardSets)
			r.Post("/cardsets", s.createCardSet)
			r.Get("/cardsets/{id}", s.getCardSet)
			r.Put("/cardsets/{id}", s.updateCardSet)
			r.Delete("/cardsets/{id}", s.deleteCardSet)

			r.Post("/cardsets/{id}/access-requests", s.requestAccess)
			r.Get("/cardsets/{id}/access-requests", s.pendingAccessRequests)
			r.Delete("/cardsets/{id}/access-requests/revoke", s.revokeAccess)
			r.Put("/cardsets/{id}/access-requests/{requestId}", s.respondAccessRequest)

			r.Get("/cards/cardset/{id}", s.listCards)
			r.Post("/cards/cardset/{id}", s.createCard)
			r.Put("/cards/{id}", s.updateCard)
			r.Delete("/cards/{id}", s.deleteCard)

			r.Get("/study/cardset/{id}/due", s.dueCards)
			r.Get("/study/cardset/{id}/overview", s.studyOverview)
			r.Post("/study/card/{id}/review", s.reviewCard)
		})
	})

	return router
}

// ── Seeding and inspection ──────────────────────────────────────────────────

// AddUser registers username with password.
func (s *Server) AddUser(username, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[username] = password
	s.ensureUser(username)
}

// SeedCardSet stores a card set owned by owner with the given cards and
// returns it with its assigned id.
func (s *Server) SeedCardSet(owner string, in models.CardSetInput, cards ...models.CardInput) models.CardSet {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.insertCardSet(owner, in)
	for _, c := range cards {
		s.insertCard(rec.ID, c)
	}
	return s.viewCardSet(rec, owner)
}

// CardSets returns the card sets owned by owner in creation order.
func (s *Server) CardSets(owner string) []models.CardSet {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.CardSet
	for _, rec := range s.sortedSets() {
		if rec.Owner == owner {
			out = append(out, s.viewCardSet(rec, owner))
		}
	}
	return out
}

// Cards returns the cards of a card set in creation order.
func (s *Server) Cards(cardSetID int64) []models.Card {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cardsOf(cardSetID)
}

// Calls returns how many requests matched route, written as
// "METHOD /pattern", e.g. "POST /api/v1/cardsets".
func (s *Server) Calls(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.calls[route]
}

// IssueToken returns a valid bearer token for username.
func (s *Server) IssueToken(username string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureUser(username)
	token, err := s.issue(username)
	if err != nil {
		return ""
	}
	return token
}

// RotateSigningKey invalidates every token issued so far.
func (s *Server) RotateSigningKey() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.signKey += "-rotated"
}

// ── Failure injection ───────────────────────────────────────────────────────

// FailCardSetNamed makes POST /cardsets answer status for sets named name.
func (s *Server) FailCardSetNamed(name string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failSetNames[name] = status
}

// FailCardsOf makes every card endpoint of card set id answer status.
func (s *Server) FailCardsOf(id int64, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failCardSets[id] = status
}

// FailCardTerm makes creating a card with term answer status.
func (s *Server) FailCardTerm(term string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failTerms[term] = status
}

// FailListCardSets makes GET /cardsets answer status. Zero restores it.
func (s *Server) FailListCardSets(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failList = status
}

// ── internal helpers (callers hold s.mu) ────────────────────────────────────

func (s *Server) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *Server) ensureUser(username string) {
	if username == "" {
		return
	}
	if _, ok := s.userIDs[username]; !ok {
		s.userIDs[username] = s.id()
	}
}

func (s *Server) insertCardSet(owner string, in models.CardSetInput) *cardSetRecord {
	s.ensureUser(owner)
	rec := &cardSetRecord{
		CardSet: models.CardSet{
			ID:          s.id(),
			Name:        in.Name,
			Description: in.Description,
			IsPublic:    in.IsPublic,
			CreatorID:   s.userIDs[owner],
			CreatorName: owner,
		},
		Owner: owner,
	}
	s.sets[rec.ID] = rec
	return rec
}

func (s *Server) insertCard(cardSetID int64, in models.CardInput) *cardRecord {
	rec := &cardRecord{
		Card: models.Card{
			ID:         s.id(),
			Term:       in.Term,
			Definition: in.Definition,
			Status:     models.CardStatusNew,
		},
		CardSetID: cardSetID,
	}
	s.cards[rec.ID] = rec
	return rec
}

func (s *Server) sortedSets() []*cardSetRecord {
	out := make([]*cardSetRecord, 0, len(s.sets))
	for _, rec := range s.sets {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Server) cardsOf(cardSetID int64) []models.Card {
	out := []models.Card{}
	for _, rec := range s.cards {
		if rec.CardSetID == cardSetID {
			out = append(out, rec.Card)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Server) hasApprovedAccess(cardSetID int64, username string) bool {
	for _, req := range s.requests {
		if req.CardSetID == cardSetID && req.RequesterUsername == username && req.Status == models.AccessRequestApproved {
			return true
		}
	}
	return false
}

// accessTypeFor returns how username reaches rec, or "" if it cannot.
func (s *Server) accessTypeFor(rec *cardSetRecord, username string) models.AccessType {
	switch {
	case rec.Owner == username:
		return models.AccessOwner
	case s.hasApprovedAccess(rec.ID, username):
		return models.AccessAccessible
	case rec.IsPublic:
		return models.AccessPublic
	default:
		return ""
	}
}

func (s *Server) viewCardSet(rec *cardSetRecord, username string) models.CardSet {
	view := rec.CardSet
	view.AccessType = s.accessTypeFor(rec, username)
	view.TotalCards = len(s.cardsOf(rec.ID))
	return view
}
