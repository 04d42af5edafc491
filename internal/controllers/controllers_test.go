package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"floorplan-web/internal/models"
	"floorplan-web/internal/service"
	"floorplan-web/internal/validation"
	"floorplan-web/internal/views"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type failingFloorPlanService struct{}

func (failingFloorPlanService) Generate(context.Context, *models.FloorPlanRequest) (*models.FloorPlanResponse, error) {
	return nil, errors.New("generator unavailable")
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func postJSON(t *testing.T, h gin.HandlerFunc, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	r := gin.New()
	r.POST("/target", h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/target", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func newFloorPlanController(svc service.FloorPlanService) *FloorPlanController {
	return NewFloorPlanController(svc, validation.New(), zap.NewNop())
}

const minimalPayload = `{"length":30,"width":40,"bedrooms":2,"drawingRoom":1,"kitchen":1,"toilet":1,"hasParking":false}`

func TestGenerateMinimalPayload(t *testing.T) {
	fc := newFloorPlanController(service.NewFloorPlanService(0, zap.NewNop()))

	w, env := postJSON(t, fc.Generate, minimalPayload)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Floor plan generated successfully", env.Message)
	assert.Empty(t, env.Error)

	var data struct {
		FloorPlanID string `json:"floorPlanId"`
		ImageURL    string `json:"imageUrl"`
		Parameters  struct {
			Length           float64 `json:"length"`
			Width            float64 `json:"width"`
			Bedrooms         int     `json:"bedrooms"`
			Toilet           int     `json:"toilet"`
			AdditionalSpaces struct {
				HasParking bool `json:"hasParking"`
			} `json:"additionalSpaces"`
		} `json:"parameters"`
		GeneratedAt time.Time `json:"generatedAt"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, strings.HasPrefix(data.FloorPlanID, "fp_"))
	assert.True(t, strings.HasPrefix(data.ImageURL, "/floor-plans/generated_"))
	assert.Equal(t, 30.0, data.Parameters.Length)
	assert.Equal(t, 40.0, data.Parameters.Width)
	assert.Equal(t, 2, data.Parameters.Bedrooms)
	assert.Equal(t, 1, data.Parameters.Toilet)
	assert.False(t, data.Parameters.AdditionalSpaces.HasParking)
	assert.False(t, data.GeneratedAt.IsZero())
}

func TestGenerateValidationMessages(t *testing.T) {
	fc := newFloorPlanController(service.NewFloorPlanService(0, zap.NewNop()))

	tests := []struct {
		name string
		body string
		want string
	}{
		{"empty body object", `{}`, "Length is required"},
		{"zero length", `{"length":0,"width":40,"bedrooms":2,"drawingRoom":1,"kitchen":1,"toilet":1}`, "Length must be greater than 0"},
		{"negative width", `{"length":30,"width":-1,"bedrooms":2,"drawingRoom":1,"kitchen":1,"toilet":1}`, "Width must be greater than 0"},
		{"no toilet", `{"length":30,"width":40,"bedrooms":2,"drawingRoom":1,"kitchen":1,"toilet":0}`, "At least one toilet is required"},
		{"parking without dimensions", `{"length":30,"width":40,"bedrooms":2,"drawingRoom":1,"kitchen":1,"toilet":1,"hasParking":true}`, "Parking length must be greater than 0"},
		{"porch enabled with none", `{"length":30,"width":40,"bedrooms":2,"drawingRoom":1,"kitchen":1,"toilet":1,"hasPorch":true,"porch":0}`, "Number of porches must be at least 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := postJSON(t, fc.Generate, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, env.Success)
			assert.Equal(t, "Validation failed", env.Message)
			assert.Equal(t, tt.want, env.Error)
		})
	}
}

func TestGenerateInvalidJSON(t *testing.T) {
	fc := newFloorPlanController(service.NewFloorPlanService(0, zap.NewNop()))

	w, env := postJSON(t, fc.Generate, `{"length":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", env.Error)
}

func TestGenerateServiceFailure(t *testing.T) {
	fc := newFloorPlanController(failingFloorPlanService{})

	w, env := postJSON(t, fc.Generate, minimalPayload)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", env.Message)
	assert.Equal(t, "Failed to generate floor plan", env.Error)
}

func TestRegister(t *testing.T) {
	ac := NewAuthController(service.NewAuthService(zap.NewNop()), validation.New(), zap.NewNop())

	w, env := postJSON(t, ac.Register, `{"fullName":"Asha Rao","email":"asha@example.com","password":"secret1","confirmPassword":"secret1"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Registration successful", env.Message)

	var data models.RegisterResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, strings.HasPrefix(data.UserID, "user_"))
	assert.Equal(t, "Asha Rao", data.FullName)
	assert.Equal(t, "student", data.Role)
}

func TestRegisterFailures(t *testing.T) {
	ac := NewAuthController(service.NewAuthService(zap.NewNop()), validation.New(), zap.NewNop())

	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing fields", `{"email":"asha@example.com"}`, "All required fields must be provided"},
		{"password mismatch", `{"fullName":"Asha","email":"asha@example.com","password":"a","confirmPassword":"b"}`, "Passwords do not match"},
		{"mismatch wins over bad email", `{"fullName":"Asha","email":"nope","password":"a","confirmPassword":"b"}`, "Passwords do not match"},
		{"bad email", `{"fullName":"Asha","email":"nope","password":"a","confirmPassword":"a"}`, "Invalid email format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := postJSON(t, ac.Register, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Validation failed", env.Message)
			assert.Equal(t, tt.want, env.Error)
		})
	}
}

func TestLogin(t *testing.T) {
	ac := NewAuthController(service.NewAuthService(zap.NewNop()), validation.New(), zap.NewNop())

	w, env := postJSON(t, ac.Login, `{"email":"asha@example.com","password":"anything"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Login successful", env.Message)

	var data models.AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "user_123", data.UserID)
	assert.Equal(t, "asha@example.com", data.Email)
	assert.Equal(t, "jwt_token_placeholder", data.Token)

	w, env = postJSON(t, ac.Login, `{"email":"asha@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email and password are required", env.Error)

	w, env = postJSON(t, ac.Login, `{"email":"asha","password":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid email format", env.Error)
}

func TestTutorialStatus(t *testing.T) {
	tc := NewTutorialController(service.NewTutorialService())
	r := gin.New()
	r.Any("/status", tc.Status)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "Tutorial status retrieved", env.Message)
	assert.JSONEq(t, `false`, string(mustField(t, env.Data, "completed")))
	assert.JSONEq(t, `1`, string(mustField(t, env.Data, "currentStep")))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/status", strings.NewReader(`{"completed":true,"currentStep":3}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "Tutorial status updated", env.Message)
	assert.JSONEq(t, `true`, string(mustField(t, env.Data, "completed")))
	assert.JSONEq(t, `3`, string(mustField(t, env.Data, "currentStep")))

	// Values of any JSON type come back as sent
	for _, body := range []string{
		`{"completed":true,"currentStep":"3"}`,
		`{"completed":"yes","currentStep":2.5}`,
		`{"completed":{"at":"intro"},"currentStep":[1,2]}`,
	} {
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/status", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, body)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

		var sent map[string]json.RawMessage
		require.NoError(t, json.Unmarshal([]byte(body), &sent))
		assert.JSONEq(t, string(sent["completed"]), string(mustField(t, env.Data, "completed")), body)
		assert.JSONEq(t, string(sent["currentStep"]), string(mustField(t, env.Data, "currentStep")), body)
	}

	// An empty update echoes nulls
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/status", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.JSONEq(t, `null`, string(mustField(t, env.Data, "completed")))
	assert.JSONEq(t, `null`, string(mustField(t, env.Data, "currentStep")))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/status", strings.NewReader(`not json`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func mustField(t *testing.T, data json.RawMessage, name string) json.RawMessage {
	t.Helper()
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))
	v, ok := fields[name]
	require.True(t, ok, "missing %q in %s", name, data)
	return v
}

func newPageRouter(t *testing.T, floorPlans service.FloorPlanService) *gin.Engine {
	t.Helper()
	tmpl, err := views.Load()
	require.NoError(t, err)

	pc := NewPageController(service.NewAuthService(zap.NewNop()), floorPlans, validation.New(), zap.NewNop())
	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.GET("/", pc.Home)
	r.GET("/about", pc.About)
	r.GET("/tutorial", pc.Tutorial)
	r.GET("/register", pc.RegisterForm)
	r.POST("/register", pc.SubmitRegister)
	r.GET("/login", pc.LoginForm)
	r.POST("/login", pc.SubmitLogin)
	r.GET("/app", pc.AppForm)
	r.POST("/app", pc.SubmitApp)
	return r
}

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func TestStaticPages(t *testing.T) {
	r := newPageRouter(t, service.NewFloorPlanService(0, zap.NewNop()))

	for path, want := range map[string]string{
		"/":         "Smart Floor Plan Generator",
		"/about":    "What Makes It Different",
		"/tutorial": "AI Generates Optimized Plan",
		"/register": "Create Account",
		"/login":    "Welcome Back",
		"/app":      "Generate Floor Plan",
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), want, path)
		assert.Contains(t, w.Body.String(), "info@floorplangen.com", path)
	}
}

func TestRegisterPage(t *testing.T) {
	r := newPageRouter(t, service.NewFloorPlanService(0, zap.NewNop()))

	w := postForm(r, "/register", url.Values{
		"fullName":        {" A "},
		"email":           {"asha@example"},
		"password":        {"abc"},
		"confirmPassword": {"abd"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Full name must be at least 2 characters")
	assert.Contains(t, body, "Please enter a valid email address")
	assert.Contains(t, body, "Password must be at least 6 characters")
	assert.Contains(t, body, "Passwords do not match")
	assert.Contains(t, body, `value="asha@example"`)

	w = postForm(r, "/register", url.Values{
		"fullName":        {"  Asha Rao "},
		"email":           {"asha@example.com"},
		"password":        {"secret1"},
		"confirmPassword": {"secret1"},
		"role":            {"architect"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Registration successful! Welcome, Asha Rao.")
	assert.Contains(t, w.Body.String(), `href="/tutorial"`)
}

func TestLoginPage(t *testing.T) {
	r := newPageRouter(t, service.NewFloorPlanService(0, zap.NewNop()))

	w := postForm(r, "/login", url.Values{"email": {""}, "password": {""}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email is required")
	assert.Contains(t, w.Body.String(), "Password is required")

	w = postForm(r, "/login", url.Values{"email": {"asha@example.com"}, "password": {"x"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Login successful")
}

func TestAppPage(t *testing.T) {
	r := newPageRouter(t, service.NewFloorPlanService(0, zap.NewNop()))

	w := postForm(r, "/app", url.Values{
		"length":        {"30"},
		"width":         {"0"},
		"bedrooms":      {"2"},
		"drawingRoom":   {"1"},
		"kitchen":       {"1"},
		"toilet":        {"0"},
		"hasParking":    {"true"},
		"parkingLength": {"10"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Width must be greater than 0")
	assert.Contains(t, body, "At least one toilet is required")
	assert.Contains(t, body, "Parking dimensions must be provided and greater than 0")
	assert.Contains(t, body, `value="30"`)
	assert.Contains(t, body, `value="10"`)

	w = postForm(r, "/app", url.Values{
		"length":      {"30"},
		"width":       {"40.5"},
		"bedrooms":    {"2"},
		"drawingRoom": {"1"},
		"kitchen":     {"1"},
		"toilet":      {"1"},
		"hasVeranda":  {"true"},
		"veranda":     {"2"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	body = w.Body.String()
	assert.Contains(t, body, "Floor Plan Generated")
	assert.Contains(t, body, "fp_")
	assert.Contains(t, body, "30 ft × 40.5 ft")
	assert.Contains(t, body, "Verandas")
	assert.NotContains(t, body, "Porches")
}

func TestAppPageGenerationFailure(t *testing.T) {
	r := newPageRouter(t, failingFloorPlanService{})

	w := postForm(r, "/app", url.Values{
		"length": {"30"}, "width": {"40"}, "bedrooms": {"2"},
		"drawingRoom": {"1"}, "kitchen": {"1"}, "toilet": {"1"},
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to generate floor plan. Please try again.")
}

func TestGenerateEchoesHugeCounts(t *testing.T) {
	fc := newFloorPlanController(service.NewFloorPlanService(0, zap.NewNop()))

	w, env := postJSON(t, fc.Generate, `{"length":30,"width":40,"bedrooms":1e20,"drawingRoom":1,"kitchen":1,"toilet":1}`)
	require.Equal(t, http.StatusOK, w.Code, env.Error)

	params := mustField(t, env.Data, "parameters")
	assert.Equal(t, "100000000000000000000", string(mustField(t, params, "bedrooms")))
}

func TestCancelledGenerationWritesNothing(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	fc := NewFloorPlanController(service.NewFloorPlanService(time.Hour, zap.NewNop()), validation.New(), zap.New(core))

	r := gin.New()
	r.POST("/target", fc.Generate)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/target", strings.NewReader(minimalPayload)).WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Empty(t, w.Body.String())
	assert.Equal(t, 1, logs.FilterMessage("client went away before the response was ready").Len())
	assert.Zero(t, logs.FilterLevelExact(zap.ErrorLevel).Len())
}
