package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"floorplan-web/internal/middleware"
	"floorplan-web/internal/models"
	"floorplan-web/internal/service"
	"floorplan-web/internal/validation"
	"floorplan-web/internal/views"
)

// PageController serves the static pages and the server-rendered forms.
type PageController struct {
	authService      service.AuthService
	floorPlanService service.FloorPlanService
	validator        *validation.Validator
	logger           *zap.Logger
}

func NewPageController(authService service.AuthService, floorPlanService service.FloorPlanService, validator *validation.Validator, logger *zap.Logger) *PageController {
	return &PageController{
		authService:      authService,
		floorPlanService: floorPlanService,
		validator:        validator,
		logger:           logger,
	}
}

func (pc *PageController) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", views.Page{Active: "home"})
}

func (pc *PageController) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", views.Page{Title: "About", Active: "about"})
}

func (pc *PageController) Tutorial(c *gin.Context) {
	c.HTML(http.StatusOK, "tutorial.html", views.Page{Title: "Tutorial", Active: "tutorial"})
}

// RegisterForm handles GET /register
func (pc *PageController) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", registerPage(&models.RegisterForm{}))
}

// SubmitRegister handles POST /register
func (pc *PageController) SubmitRegister(c *gin.Context) {
	var form models.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		page := registerPage(&form)
		page.Failed = "Invalid form submission"
		c.HTML(http.StatusBadRequest, "register.html", page)
		return
	}
	form.FullName = strings.TrimSpace(form.FullName)

	if errs, ok := pc.check(c, "register form", &form); !ok {
		page := registerPage(&form)
		page.Errors = errs
		status := http.StatusBadRequest
		if errs == nil {
			page.Failed = "Registration failed. Please try again."
			status = http.StatusInternalServerError
		}
		c.HTML(status, "register.html", page)
		return
	}

	account, err := pc.authService.Register(form.Request())
	if err != nil {
		pc.logger.Error("registration error", zap.Error(err))
		page := registerPage(&form)
		page.Failed = "Registration failed. Please try again."
		c.HTML(http.StatusInternalServerError, "register.html", page)
		return
	}

	page := registerPage(&form)
	page.Notice = "Registration successful! Welcome, " + account.FullName + "."
	c.HTML(http.StatusOK, "register.html", page)
}

// LoginForm handles GET /login
func (pc *PageController) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", loginPage(&models.LoginForm{}))
}

// SubmitLogin handles POST /login
func (pc *PageController) SubmitLogin(c *gin.Context) {
	var form models.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		page := loginPage(&form)
		page.Failed = "Invalid form submission"
		c.HTML(http.StatusBadRequest, "login.html", page)
		return
	}

	if errs, ok := pc.check(c, "login form", &form); !ok {
		page := loginPage(&form)
		page.Errors = errs
		status := http.StatusBadRequest
		if errs == nil {
			page.Failed = "Login failed. Please try again."
			status = http.StatusInternalServerError
		}
		c.HTML(status, "login.html", page)
		return
	}

	if _, err := pc.authService.Login(form.Request()); err != nil {
		pc.logger.Error("login error", zap.Error(err))
		page := loginPage(&form)
		page.Failed = "Login failed. Please try again."
		c.HTML(http.StatusInternalServerError, "login.html", page)
		return
	}

	page := loginPage(&models.LoginForm{Email: form.Email})
	page.Notice = "Login successful"
	c.HTML(http.StatusOK, "login.html", page)
}

// AppForm handles GET /app
func (pc *PageController) AppForm(c *gin.Context) {
	c.HTML(http.StatusOK, "app.html", appPage(&models.FloorPlanRequest{}))
}

// SubmitApp handles POST /app. The form keeps its values on failure so the user can correct them.
func (pc *PageController) SubmitApp(c *gin.Context) {
	var req models.FloorPlanRequest
	if err := c.ShouldBind(&req); err != nil {
		page := appPage(&req)
		page.Failed = "Invalid form submission"
		c.HTML(http.StatusBadRequest, "app.html", page)
		return
	}

	if errs, ok := pc.check(c, "floor plan form", &req); !ok {
		page := appPage(&req)
		page.Errors = errs
		status := http.StatusBadRequest
		if errs == nil {
			page.Failed = "Failed to generate floor plan. Please try again."
			status = http.StatusInternalServerError
		}
		c.HTML(status, "app.html", page)
		return
	}

	result, err := pc.floorPlanService.Generate(c.Request.Context(), &req)
	if errors.Is(err, context.Canceled) {
		clientGone(c, pc.logger)
		return
	}
	if err != nil {
		pc.logger.Error("floor plan generation error", zap.Error(err))
		page := appPage(&req)
		page.Failed = "Failed to generate floor plan. Please try again."
		c.HTML(http.StatusInternalServerError, "app.html", page)
		return
	}

	page := appPage(&req)
	page.Result = result
	c.HTML(http.StatusOK, "app.html", page)
}

// check validates a form. On a validation failure it returns the per-field messages; on any
// other error it logs and returns nil messages.
func (pc *PageController) check(c *gin.Context, what string, form interface{}) (map[string]string, bool) {
	err := pc.validator.Struct(form)
	if err == nil {
		return nil, true
	}
	if verr, ok := validation.AsError(err); ok {
		return verr.Fields(), false
	}
	pc.logger.Error(what+" validation error", zap.Error(err), zap.String("request_id", middleware.GetRequestID(c)))
	return nil, false
}

func registerPage(form *models.RegisterForm) views.Page {
	return views.Page{Title: "Register", Active: "register", Form: form}
}

func loginPage(form *models.LoginForm) views.Page {
	return views.Page{Title: "Login", Active: "login", Form: form}
}

func appPage(req *models.FloorPlanRequest) views.Page {
	return views.Page{Title: "Generate Plan", Active: "app", Form: req}
}
