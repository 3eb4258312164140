package session

import (
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

const CookieName = "absensi_session"

// CookieCodec menandatangani session id di cookie dengan HMAC (securecookie)
// agar id tidak bisa ditebak atau dipalsukan dari sisi client.
type CookieCodec struct {
	sc     *securecookie.SecureCookie
	secure bool
}

func NewCookieCodec(secret string, secure bool) *CookieCodec {
	return &CookieCodec{
		sc:     securecookie.New([]byte(secret), nil),
		secure: secure,
	}
}

func (c *CookieCodec) Write(w http.ResponseWriter, sessionID string, ttl time.Duration) error {
	encoded, err := c.sc.Encode(CookieName, sessionID)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (c *CookieCodec) Read(r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", err
	}

	var sessionID string
	if err := c.sc.Decode(CookieName, cookie.Value, &sessionID); err != nil {
		return "", err
	}
	return sessionID, nil
}

func (c *CookieCodec) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
