package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"

	"github.com/givehub/backend/internal/domain"
	api "github.com/givehub/backend/internal/http"
	"github.com/givehub/backend/internal/log"
	"github.com/givehub/backend/internal/repo"
	"github.com/givehub/backend/internal/security"
)

const testSecret = "test-secret"

type testEnv struct {
	T      *testing.T
	Ctx    context.Context
	Mongo  *mongodb.MongoDBContainer
	Store  *repo.Store
	Router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	mc, err := mongodb.RunContainer(ctx, testcontainers.WithImage("mongo:6"))
	if err != nil {
		t.Fatalf("mongo container: %v", err)
	}
	uri, err := mc.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("mongo uri: %v", err)
	}

	if _, err := log.Init(false); err != nil {
		t.Fatalf("log init: %v", err)
	}

	store, err := repo.NewStore(ctx, uri, "givehub_test")
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	// the driver connects lazily; wait until the container answers pings
	deadline := time.Now().Add(10 * time.Second)
	for {
		if err := store.Ping(ctx); err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("mongo never became ready")
		}
		time.Sleep(100 * time.Millisecond)
	}
	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatal(err)
	}

	// no redis in tests: rate limiting is a no-op
	h := api.NewHandler(store, testSecret, 1, nil, 0)

	gin.SetMode(gin.TestMode)
	r := api.NewRouter(h, "http://localhost:5173")

	return &testEnv{T: t, Ctx: ctx, Mongo: mc, Store: store, Router: r}
}

func (e *testEnv) Close() {
	if e.Store != nil {
		_ = e.Store.Close(e.Ctx)
	}
	if e.Mongo != nil {
		_ = e.Mongo.Terminate(e.Ctx)
	}
}

func (e *testEnv) do(method, path, body, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	e.Router.ServeHTTP(w, req)
	return w
}

// data unwraps the success envelope.
func (e *testEnv) data(w *httptest.ResponseRecorder) map[string]any {
	e.T.Helper()
	var resp struct {
		Status string         `json:"status"`
		Data   map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		e.T.Fatalf("envelope parse: %v; body=%s", err, w.Body.String())
	}
	if resp.Status != "success" {
		e.T.Fatalf("status=%q body=%s", resp.Status, w.Body.String())
	}
	return resp.Data
}

func (e *testEnv) registerDonor(name, email, password string) string {
	e.T.Helper()
	body := `{"name":"` + name + `","email":"` + email + `","password":"` + password +
		`","phone":"+100","address":"1 Test St"}`
	w := e.do("POST", "/api/donors/register", body, "")
	if w.Code != 201 {
		e.T.Fatalf("register: %d %s", w.Code, w.Body.String())
	}
	tok, _ := e.data(w)["token"].(string)
	if tok == "" {
		e.T.Fatal("no token in register response")
	}
	return tok
}

// seedAdmin writes an admin the way cmd/seed does, then logs in through
// the API.
func (e *testEnv) seedAdmin(email string) string {
	e.T.Helper()
	hash, err := security.HashPassword("admin123")
	if err != nil {
		e.T.Fatal(err)
	}
	a := &domain.Admin{Name: "Admin", Email: email, PasswordHash: hash, Role: domain.RoleAdmin}
	if err := e.Store.CreateAdmin(e.Ctx, a); err != nil {
		e.T.Fatalf("seed admin: %v", err)
	}
	w := e.do("POST", "/api/admin/login", `{"email":"`+email+`","password":"admin123"}`, "")
	if w.Code != 200 {
		e.T.Fatalf("admin login: %d %s", w.Code, w.Body.String())
	}
	tok, _ := e.data(w)["token"].(string)
	if tok == "" {
		e.T.Fatal("no token in admin login response")
	}
	return tok
}

func (e *testEnv) createOrg(adminTok, name, email string) string {
	e.T.Helper()
	body := `{"name":"` + name + `","description":"test org","email":"` + email +
		`","phone":"+200","address":"2 Org Ave","website":"https://example.org","category":"Healthcare","status":"active"}`
	w := e.do("POST", "/api/organizations", body, adminTok)
	if w.Code != 201 {
		e.T.Fatalf("create org: %d %s", w.Code, w.Body.String())
	}
	org, _ := e.data(w)["organization"].(map[string]any)
	id, _ := org["id"].(string)
	if id == "" {
		e.T.Fatal("no organization id in response")
	}
	return id
}
