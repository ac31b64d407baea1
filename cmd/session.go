package cmd

import (
	"net/http"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/jsphweid/pianoroll/constants"
	"github.com/jsphweid/pianoroll/grid"
)

// session is one viewer's grid. mu serializes its events so the grid sees
// them one at a time, in arrival order.
type session struct {
	mu    sync.Mutex
	id    string
	grid  *grid.Grid
	touch func(func())
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	idle     time.Duration
	newGrid  func() *grid.Grid
}

func newSessionStore(idle time.Duration, newGrid func() *grid.Grid) *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*session),
		idle:     idle,
		newGrid:  newGrid,
	}
}

func (s *sessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *sessionStore) get(id string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *sessionStore) create() *session {
	sess := &session{
		id:   uuid.New().String(),
		grid: s.newGrid(),
	}
	if s.idle > 0 {
		sess.touch = debounce.New(s.idle)
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	log.WithFields(log.Fields{"session": sess.id, "grid": sess.grid.ID()}).Debug("new session")
	return sess
}

func (s *sessionStore) evict(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; ok {
		delete(s.sessions, id)
		log.WithField("session", id).Debug("evicted idle session")
	}
}

// forRequest finds the caller's session from its cookie or starts a new one
// and sets the cookie. Every call pushes back the idle eviction.
func (s *sessionStore) forRequest(w http.ResponseWriter, r *http.Request) *session {
	var sess *session
	if c, err := r.Cookie(constants.SessionCookie); err == nil {
		sess, _ = s.get(c.Value)
	}
	if sess == nil {
		sess = s.create()
		http.SetCookie(w, &http.Cookie{
			Name:     constants.SessionCookie,
			Value:    sess.id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	if sess.touch != nil {
		id := sess.id
		sess.touch(func() { s.evict(id) })
	}
	return sess
}
