package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func doJSONWithHeader(t *testing.T, router *gin.Engine, authHeader, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", authHeader)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHashPassword(t *testing.T) {
	password := "MySecurePassword123"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() failed: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$") {
		t.Errorf("hash should start with $argon2id$v=19$, got: %s", hash)
	}

	// Different salt each time.
	hash2, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() failed on second call: %v", err)
	}
	if hash == hash2 {
		t.Error("two hashes of the same password should differ (different salts)")
	}
}

func TestVerifyPassword(t *testing.T) {
	password := "MySecurePassword123"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() failed: %v", err)
	}

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
		wantErr  bool
	}{
		{"Correct password", password, hash, true, false},
		{"Wrong password", "WrongPassword456", hash, false, false},
		{"Invalid hash format", password, "invalid", false, true},
		{"Wrong algorithm", password, "$bcrypt$v=1$m=65536,t=1,p=4$salt$hash", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VerifyPassword(tt.password, tt.hash)
			if (err != nil) != tt.wantErr {
				t.Errorf("VerifyPassword() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("VerifyPassword() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTokenRoundTrip(t *testing.T) {
	a := newTestApp(&fakeStore{})

	token, err := a.IssueToken("user42")
	if err != nil {
		t.Fatalf("IssueToken() failed: %v", err)
	}

	userID, err := a.parseToken(token)
	if err != nil {
		t.Fatalf("parseToken() failed: %v", err)
	}
	if userID != "user42" {
		t.Errorf("subject = %q, want user42", userID)
	}

	if _, err := a.parseToken(token + "tampered"); err == nil {
		t.Error("tampered token should not parse")
	}

	wrongKey := &App{Cfg: &Config{JWTSecret: "other-secret", TokenTTLHours: 1}}
	if _, err := wrongKey.parseToken(token); err == nil {
		t.Error("token signed with a different secret should not parse")
	}
}

func TestAuthMiddleware(t *testing.T) {
	a := newTestApp(&fakeStore{})
	router := newTestRouter(a)
	token := mustToken(t, a, "user1")

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"No header", "", http.StatusUnauthorized},
		{"Not a bearer token", "Basic dXNlcjpwYXNz", http.StatusUnauthorized},
		{"Garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{"Valid token", "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w *httptest.ResponseRecorder
			if tt.header == "" {
				w = doJSON(t, router, "", "GET", "/api/grid", "")
			} else {
				w = doJSONWithHeader(t, router, tt.header, "GET", "/api/grid")
			}
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestRegisterAndLogin(t *testing.T) {
	a := newTestApp(&fakeStore{})
	router := newTestRouter(a)

	body := `{"email":"driver@example.com","password":"longenough1"}`
	w := doJSON(t, router, "", "POST", "/api/auth/register", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	// Duplicate email is rejected.
	if w := doJSON(t, router, "", "POST", "/api/auth/register", body); w.Code != http.StatusConflict {
		t.Errorf("duplicate register: expected 409, got %d", w.Code)
	}

	w = doJSON(t, router, "", "POST", "/api/auth/login", body)
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token  string `json:"token"`
		UserID string `json:"user_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Token == "" || resp.UserID == "" {
		t.Fatalf("login response missing token or user_id: %s", w.Body.String())
	}

	// The issued token opens the gated surface.
	if w := doJSONWithHeader(t, router, "Bearer "+resp.Token, "GET", "/api/grid"); w.Code != http.StatusOK {
		t.Errorf("grid with login token: expected 200, got %d", w.Code)
	}

	// Wrong password.
	bad := `{"email":"driver@example.com","password":"wrongwrong1"}`
	if w := doJSON(t, router, "", "POST", "/api/auth/login", bad); w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password: expected 401, got %d", w.Code)
	}
}
