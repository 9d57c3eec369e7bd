package api_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/elearn-admin-gateway/internal/api"
	"github.com/elearn-admin-gateway/internal/auth"
	"github.com/elearn-admin-gateway/internal/config"
	"github.com/elearn-admin-gateway/internal/mocks"
	"github.com/elearn-admin-gateway/internal/models"
	"github.com/elearn-admin-gateway/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

const testSecret = "test-signing-secret"

type testMocks struct {
	auth    *mocks.MockAuthService
	user    *mocks.MockUserService
	stats   *mocks.MockStatsService
	library *mocks.MockLibraryService
	export  *mocks.MockExportService
}

func setupTestRouter() (*gin.Engine, *testMocks) {
	gin.SetMode(gin.TestMode)

	m := &testMocks{
		auth:    mocks.NewMockAuthService(),
		user:    mocks.NewMockUserService(),
		stats:   mocks.NewMockStatsService(),
		library: mocks.NewMockLibraryService(),
		export:  mocks.NewMockExportService(),
	}

	services := &service.Services{
		Auth:    m.auth,
		User:    m.user,
		Stats:   m.stats,
		Library: m.library,
		Export:  m.export,
	}

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Auth: config.AuthConfig{JWTSecret: testSecret},
		Upload: config.UploadConfig{
			MaxUploadSize: 10 * 1024 * 1024,
		},
	}

	log := zerolog.Nop()
	router := api.NewRouter(services, cfg, auth.NewVerifier(testSecret), nil, log)

	return router, m
}

func signToken(t *testing.T, id, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   id,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("Failed to sign test token: %v", err)
	}
	return signed
}

func adminToken(t *testing.T) string {
	return signToken(t, "admin-1", "admin")
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "elearn-admin-gateway" {
		t.Errorf("Expected service name, got %v", response["service"])
	}
}

func TestLoginEndpoint(t *testing.T) {
	router, m := setupTestRouter()

	body, _ := json.Marshal(models.LoginRequest{Email: "admin@example.com", Password: "secret"})
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var session models.Session
	if err := json.Unmarshal(w.Body.Bytes(), &session); err != nil {
		t.Fatalf("Failed to decode session: %v", err)
	}
	if session.Token == "" {
		t.Error("Expected a session token")
	}
	if m.auth.LoginCalls != 1 {
		t.Errorf("Expected one login call, got %d", m.auth.LoginCalls)
	}
}

func TestLoginRejectsInvalidBody(t *testing.T) {
	router, _ := setupTestRouter()

	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"email":"not-json`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router, m := setupTestRouter()

	paths := []string{
		"/api/dashboard/stats",
		"/api/dashboard/course-distribution",
		"/api/users",
		"/api/books",
		"/api/export?resource=users",
	}

	for _, path := range paths {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without token: expected 401, got %d", path, w.Code)
		}
	}

	// Rejection must happen before any backend work is triggered.
	if m.user.ListCalls != 0 {
		t.Errorf("Expected zero user service calls, got %d", m.user.ListCalls)
	}
	if m.stats.DashboardCalls != 0 {
		t.Errorf("Expected zero stats service calls, got %d", m.stats.DashboardCalls)
	}
}

func TestProtectedRoutesRejectMalformedHeader(t *testing.T) {
	router, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/api/users", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for non-bearer header, got %d", w.Code)
	}
}

func TestProtectedRoutesRejectBadSignature(t *testing.T) {
	router, m := setupTestRouter()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   "admin-1",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, _ := token.SignedString([]byte("some-other-secret"))

	req := httptest.NewRequest("GET", "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for wrong signature, got %d", w.Code)
	}
	if m.user.ListCalls != 0 {
		t.Errorf("Expected zero user service calls, got %d", m.user.ListCalls)
	}
}

func TestProtectedRoutesRejectNonAdmin(t *testing.T) {
	router, m := setupTestRouter()

	req := httptest.NewRequest("GET", "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "student-1", "student"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("Expected 403 for non-admin role, got %d", w.Code)
	}
	if m.user.ListCalls != 0 {
		t.Errorf("Expected zero user service calls, got %d", m.user.ListCalls)
	}
}

func TestListUsers(t *testing.T) {
	router, m := setupTestRouter()
	m.user.Users = []models.UserRecord{
		{ID: "u1", FirstName: "Ada", Email: "ada@example.com", TotalTimeSpent: models.MinutesOf(135)},
		{ID: "u2", FirstName: "Grace", Email: "grace@example.com", TotalTimeSpent: models.MinutesUnavailable()},
	}

	req := httptest.NewRequest("GET", "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response struct {
		Users []map[string]interface{} `json:"users"`
		Total int                      `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Total != 2 {
		t.Errorf("Expected total 2, got %d", response.Total)
	}
	if got := response.Users[0]["totalTimeSpent"]; got != float64(135) {
		t.Errorf("Expected totalTimeSpent 135, got %v", got)
	}
	if got := response.Users[1]["totalTimeSpent"]; got != "N/A" {
		t.Errorf("Expected totalTimeSpent \"N/A\" for failed lookup, got %v", got)
	}
}

func TestCreateUserValidation(t *testing.T) {
	router, m := setupTestRouter()

	body, _ := json.Marshal(models.UserInput{FirstName: "", Email: "not-an-email"})
	req := httptest.NewRequest("POST", "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d: %s", w.Code, w.Body.String())
	}
	if len(m.user.Users) != 0 {
		t.Error("Invalid input must not reach the service")
	}
}

func TestCreateUser(t *testing.T) {
	router, _ := setupTestRouter()

	body, _ := json.Marshal(models.UserInput{
		FirstName:  "Ada",
		SecondName: "Lovelace",
		Email:      "ada@example.com",
		Course:     "Information Technology",
	})
	req := httptest.NewRequest("POST", "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var list models.UserList
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if list.Total != 1 {
		t.Errorf("Expected total 1 after create, got %d", list.Total)
	}
}

func TestDeleteUserReturnsRefreshedCollection(t *testing.T) {
	router, m := setupTestRouter()
	m.user.Users = []models.UserRecord{{ID: "u1"}, {ID: "u2"}}

	req := httptest.NewRequest("DELETE", "/api/users/u1", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(m.user.DeleteCalls) != 1 || m.user.DeleteCalls[0] != "u1" {
		t.Errorf("Expected delete call for u1, got %v", m.user.DeleteCalls)
	}

	var list models.UserList
	json.Unmarshal(w.Body.Bytes(), &list)
	if list.Total != 1 {
		t.Errorf("Expected total 1 after delete, got %d", list.Total)
	}
}

func TestDashboardStats(t *testing.T) {
	router, m := setupTestRouter()

	req := httptest.NewRequest("GET", "/api/dashboard/stats", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if m.stats.DashboardCalls != 1 {
		t.Errorf("Expected one dashboard call, got %d", m.stats.DashboardCalls)
	}
}

func TestUploadBook(t *testing.T) {
	router, m := setupTestRouter()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	writer.WriteField("title", "Learning Go")
	writer.WriteField("author", "Jon Bodner")
	writer.WriteField("description", "An idiomatic approach")

	epub, _ := writer.CreateFormFile("epub", "learning-go.epub")
	epub.Write([]byte("fake epub bytes"))

	// CreateFormFile hardcodes application/octet-stream; the cover part
	// needs an image content type to pass validation.
	coverHeader := textproto.MIMEHeader{}
	coverHeader.Set("Content-Disposition", `form-data; name="coverImage"; filename="cover.png"`)
	coverHeader.Set("Content-Type", "image/png")
	cover, _ := writer.CreatePart(coverHeader)
	cover.Write([]byte("fake png bytes"))
	writer.Close()

	req := httptest.NewRequest("POST", "/api/books/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	if len(m.library.Books) != 1 || m.library.Books[0].Title != "Learning Go" {
		t.Errorf("Expected uploaded book in collection, got %v", m.library.Books)
	}
}

func TestUploadBookRequiresEpub(t *testing.T) {
	router, _ := setupTestRouter()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	writer.WriteField("title", "No Files")
	writer.Close()

	req := httptest.NewRequest("POST", "/api/books/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestDeleteBookReturnsRefreshedCollection(t *testing.T) {
	router, m := setupTestRouter()
	m.library.Books = []models.BookRecord{{ID: "b1"}, {ID: "b2"}}

	req := httptest.NewRequest("DELETE", "/api/books/b1", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var list models.BookList
	json.Unmarshal(w.Body.Bytes(), &list)
	if list.Total != 1 {
		t.Errorf("Expected total 1 after delete, got %d", list.Total)
	}
}

func TestExportValidatesResource(t *testing.T) {
	router, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/api/export?resource=invoices", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestExportUsersCSV(t *testing.T) {
	router, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/api/export?resource=users&format=csv", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("Expected Content-Type text/csv, got %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != "attachment; filename=users.csv" {
		t.Errorf("Unexpected Content-Disposition: %s", cd)
	}
}
