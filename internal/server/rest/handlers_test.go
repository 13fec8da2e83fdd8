package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avinash6982/TripMakerWeb-BE/internal/logging"
	"github.com/avinash6982/TripMakerWeb-BE/internal/server/accounts"
	"github.com/avinash6982/TripMakerWeb-BE/internal/server/auth"
	"github.com/avinash6982/TripMakerWeb-BE/internal/server/store"
)

func newTestRouter(t *testing.T, tokenValidity time.Duration) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	st := store.New(afero.NewMemMapFs(), "/data/users.json", "/tmp/users.json", logger)
	issuer := auth.NewIssuer([]byte("test-secret"), tokenValidity)
	svc := accounts.NewService(st, issuer)

	return NewServer(":0", logger, svc, issuer).Router()
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func signup(t *testing.T, r *gin.Engine, email, password string) map[string]any {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/user/signup", "", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode(t, w)
}

func TestSignup(t *testing.T) {
	r := newTestRouter(t, time.Hour)

	resp := signup(t, r, "a@x.com", "secret1")
	assert.NotEmpty(t, resp["id"])
	assert.Equal(t, "a@x.com", resp["email"])
	assert.NotEmpty(t, resp["token"])

	t.Run("duplicate email", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/user/signup", "", gin.H{"email": "A@X.com", "password": "other"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("invalid email", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/user/signup", "", gin.H{"email": "not-an-email", "password": "x"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing password", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/user/signup", "", gin.H{"email": "b@x.com"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLogin(t *testing.T) {
	r := newTestRouter(t, time.Hour)
	signup(t, r, "a@x.com", "secret1")

	t.Run("success", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/user/login", "", gin.H{"email": "a@x.com", "password": "secret1"})
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode(t, w)
		assert.NotEmpty(t, resp["token"])
	})

	t.Run("wrong password", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/user/login", "", gin.H{"email": "a@x.com", "password": "wrong"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/user/login", "", gin.H{"email": "b@x.com", "password": "secret1"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestProfile(t *testing.T) {
	r := newTestRouter(t, time.Hour)
	token := signup(t, r, "a@x.com", "secret1")["token"].(string)

	t.Run("requires token", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/user/profile", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("defaults", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/user/profile", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode(t, w)
		assert.Equal(t, "en", resp["language"])
		assert.Equal(t, "USD", resp["currencyType"])
		assert.Equal(t, "", resp["phone"])
		assert.Equal(t, "", resp["country"])
	})

	t.Run("partial update", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/api/user/profile", token, gin.H{"language": "es"})
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode(t, w)
		assert.Equal(t, "es", resp["language"])
		assert.Equal(t, "USD", resp["currencyType"])
	})

	t.Run("rejects unknown language", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/api/user/profile", token, gin.H{"language": "zz"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects unknown currency", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/api/user/profile", token, gin.H{"currencyType": "XYZ"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProfile_TokenFailures(t *testing.T) {
	t.Run("expired token", func(t *testing.T) {
		r := newTestRouter(t, -time.Second)
		token := signup(t, r, "a@x.com", "secret1")["token"].(string)

		w := doJSON(t, r, http.MethodGet, "/api/user/profile", token, nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "token expired")
	})

	t.Run("garbage token", func(t *testing.T) {
		r := newTestRouter(t, time.Hour)
		w := doJSON(t, r, http.MethodGet, "/api/user/profile", "not.a.jwt", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid token")
	})
}
