package client

import (
	"errors"
	"sync"
)

// State of the admin session.
type State int

const (
	StateAnonymous State = iota
	StateAuthenticated
)

// InvalidCredentialsMessage is the fixed message shown on a failed login.
const InvalidCredentialsMessage = "Invalid credentials. Please try again."

// Session is the admin gate: explicit state created at session start and
// cleared on logout, instead of an ambient storage flag. While
// authenticated it holds the token the API client attaches to mutations.
type Session struct {
	mu    sync.Mutex
	state State
	token string
	user  string

	api *Client
}

func NewSession(api *Client) *Session {
	return &Session{state: StateAnonymous, api: api}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

func (s *Session) Username() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Login checks the credentials server-side. A rejected pair leaves the
// session anonymous and returns the fixed invalid-credentials message.
func (s *Session) Login(username, password string) error {
	token, err := s.api.login(username, password)
	if err != nil {
		if errors.Is(err, errUnauthorized) {
			return errors.New(InvalidCredentialsMessage)
		}
		return err
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.token = token
	s.user = username
	s.mu.Unlock()

	s.api.SetToken(token)
	return nil
}

// Logout drops the token and returns the session to anonymous.
func (s *Session) Logout() {
	s.mu.Lock()
	s.state = StateAnonymous
	s.token = ""
	s.user = ""
	s.mu.Unlock()

	s.api.SetToken("")
}
