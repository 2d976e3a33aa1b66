package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nataliebakery/storefront/pkg/config"
)

func sessionConfig() config.CartConfig {
	return config.CartConfig{SessionCookieName: "nb_cart_session", SessionTTL: time.Hour}
}

func TestCartSessionIssuesCookie(t *testing.T) {
	var captured string
	handler := CartSession(sessionConfig(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = SessionIDFromContext(r.Context())
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))

	if captured == "" {
		t.Fatal("expected session id in request context")
	}
	if _, err := uuid.Parse(captured); err != nil {
		t.Fatalf("session id should be a uuid, got %q", captured)
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "nb_cart_session" {
		t.Fatalf("expected one session cookie, got %v", cookies)
	}
	if cookies[0].Value != captured {
		t.Fatal("cookie must carry the same session id as the context")
	}
	if !cookies[0].HttpOnly {
		t.Fatal("session cookie must be http-only")
	}
	if cookies[0].MaxAge != 3600 {
		t.Fatalf("expected sliding expiry of 3600s, got %d", cookies[0].MaxAge)
	}
}

func TestCartSessionReusesValidCookie(t *testing.T) {
	existing := uuid.NewString()
	var captured string
	handler := CartSession(sessionConfig(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = SessionIDFromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	r.AddCookie(&http.Cookie{Name: "nb_cart_session", Value: existing})
	handler.ServeHTTP(httptest.NewRecorder(), r)

	if captured != existing {
		t.Fatalf("expected existing session %q to be kept, got %q", existing, captured)
	}
}

func TestCartSessionReplacesMalformedCookie(t *testing.T) {
	var captured string
	handler := CartSession(sessionConfig(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = SessionIDFromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	r.AddCookie(&http.Cookie{Name: "nb_cart_session", Value: "not-a-uuid"})
	handler.ServeHTTP(httptest.NewRecorder(), r)

	if captured == "not-a-uuid" {
		t.Fatal("malformed session cookie must be replaced")
	}
	if _, err := uuid.Parse(captured); err != nil {
		t.Fatalf("replacement session id should be a uuid, got %q", captured)
	}
}
