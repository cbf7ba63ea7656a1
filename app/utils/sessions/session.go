package sessions

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionCookieName = "autoparts_session"
	shopperTokenKey   = "shopper_token"
)

// Store mints and reads the opaque per-browser shopper token. The token
// is the only correlation key the engines ever see; it carries no other
// semantics and is passed through untouched.
type Store struct {
	cookies *sessions.CookieStore
}

func NewStore(keyPairs ...[]byte) *Store {
	store := sessions.NewCookieStore(keyPairs...)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(30 * 24 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{cookies: store}
}

// ShopperToken returns the session's token, creating and persisting one
// on first touch.
func (s *Store) ShopperToken(w http.ResponseWriter, r *http.Request) (string, error) {
	session, err := s.cookies.Get(r, sessionCookieName)
	if err != nil && session == nil {
		return "", err
	}

	if token, ok := session.Values[shopperTokenKey].(string); ok && token != "" {
		return token, nil
	}

	token := uuid.New().String()
	session.Values[shopperTokenKey] = token
	if err := session.Save(r, w); err != nil {
		return "", err
	}
	return token, nil
}
