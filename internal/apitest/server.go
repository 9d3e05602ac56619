// Package apitest runs a fake MeetLine backend for gateway tests. It speaks
// the same response envelope as the real API and counts calls so tests can
// assert that a code path never hit the network.
package apitest

import (
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gin-gonic/gin"
)

// DefaultToken carries payload {"sub":"u42"}.
const DefaultToken = "x.eyJzdWIiOiJ1NDIifQ.y"

type Server struct {
	*httptest.Server

	mu            sync.Mutex
	loginCalls    int
	registerCalls int

	// Token is returned from login/register responses. Tests overwrite it
	// to exercise malformed-JWT handling.
	Token string
	// RejectLogin makes login answer 401 with an envelope error.
	RejectLogin bool
	// Unauthorized makes every authenticated endpoint answer 401.
	Unauthorized bool
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, envelope{Success: true, Data: data})
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, envelope{Success: false, Message: "request failed", Error: msg})
}

// NewServer starts the fake backend. The caller owns its lifetime; defer
// Close.
func NewServer() *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{Token: DefaultToken}

	r := gin.New()
	api := r.Group("/api/v1")

	api.POST("/auth/login", func(c *gin.Context) {
		s.mu.Lock()
		s.loginCalls++
		reject := s.RejectLogin
		token := s.Token
		s.mu.Unlock()

		if reject {
			fail(c, http.StatusUnauthorized, "invalid credentials")
			return
		}

		var req struct {
			Email string `json:"email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "malformed body")
			return
		}
		respond(c, http.StatusOK, gin.H{
			"token":        token,
			"refreshToken": "refresh-1",
			"fullName":     "A",
			"email":        req.Email,
		})
	})

	api.POST("/auth/register", func(c *gin.Context) {
		s.mu.Lock()
		s.registerCalls++
		token := s.Token
		s.mu.Unlock()

		var req struct {
			FullName string `json:"fullName"`
			Email    string `json:"email"`
			Phone    string `json:"phone"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "malformed body")
			return
		}
		respond(c, http.StatusCreated, gin.H{
			"token":    token,
			"fullName": req.FullName,
			"email":    req.Email,
			"phone":    req.Phone,
		})
	})

	api.POST("/auth/refresh", func(c *gin.Context) {
		var req struct {
			RefreshToken string `json:"refreshToken"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
			fail(c, http.StatusUnauthorized, "invalid refresh token")
			return
		}
		respond(c, http.StatusOK, gin.H{"token": "rotated." + req.RefreshToken, "expiresAt": 0})
	})

	api.POST("/auth/forgot-password", func(c *gin.Context) {
		respond(c, http.StatusOK, nil)
	})

	api.POST("/auth/reset-password", func(c *gin.Context) {
		respond(c, http.StatusOK, nil)
	})

	authed := api.Group("")
	authed.Use(s.requireBearer)

	authed.GET("/users/me", func(c *gin.Context) {
		respond(c, http.StatusOK, gin.H{
			"id":       "u42",
			"fullName": "A",
			"email":    "a@b.com",
		})
	})

	authed.PUT("/users/me", func(c *gin.Context) {
		var req struct {
			ID        string `json:"id"`
			FullName  string `json:"fullName"`
			Email     string `json:"email"`
			Phone     string `json:"phone"`
			AvatarURL string `json:"avatarUrl"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "malformed body")
			return
		}
		respond(c, http.StatusOK, req)
	})

	api.GET("/public-project", func(c *gin.Context) {
		respond(c, http.StatusOK, []gin.H{
			{"id": "b1", "name": "Fade Lounge", "rating": 4.8},
			{"id": "b2", "name": "Glow Studio"},
		})
	})

	api.GET("/public-project/:id", func(c *gin.Context) {
		if c.Param("id") != "b1" {
			fail(c, http.StatusNotFound, "project not found")
			return
		}
		respond(c, http.StatusOK, gin.H{"id": "b1", "name": "Fade Lounge"})
	})

	api.GET("/public-service", func(c *gin.Context) {
		respond(c, http.StatusOK, []gin.H{
			{"id": "s1", "projectId": c.Query("projectId"), "name": "Haircut", "durationMinutes": 30, "priceCents": 2500},
		})
	})

	api.GET("/public-employee", func(c *gin.Context) {
		respond(c, http.StatusOK, []gin.H{
			{"id": "p1", "projectId": c.Query("projectId"), "fullName": "Marios"},
		})
	})

	api.GET("/availability", func(c *gin.Context) {
		respond(c, http.StatusOK, []gin.H{
			{"employeeId": "p1", "start": "2026-09-01T10:00:00Z", "end": "2026-09-01T10:30:00Z"},
		})
	})

	authed.GET("/appointments", func(c *gin.Context) {
		respond(c, http.StatusOK, []gin.H{
			{"id": "a1", "projectId": "b1", "serviceId": "s1", "status": "confirmed",
				"start": "2026-09-01T10:00:00Z", "end": "2026-09-01T10:30:00Z"},
		})
	})

	authed.POST("/appointments", func(c *gin.Context) {
		var req struct {
			ProjectID       string `json:"projectId"`
			ServiceID       string `json:"serviceId"`
			EmployeeID      string `json:"employeeId"`
			Start           string `json:"start"`
			ClientRequestID string `json:"clientRequestId"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "malformed body")
			return
		}
		if req.ClientRequestID == "" {
			fail(c, http.StatusBadRequest, "missing client request id")
			return
		}
		respond(c, http.StatusCreated, gin.H{
			"id": "a-new", "projectId": req.ProjectID, "serviceId": req.ServiceID,
			"employeeId": req.EmployeeID, "start": req.Start, "status": "pending",
		})
	})

	authed.DELETE("/appointments/:id", func(c *gin.Context) {
		if c.Param("id") == "missing" {
			fail(c, http.StatusNotFound, "appointment not found")
			return
		}
		respond(c, http.StatusOK, nil)
	})

	s.Server = httptest.NewServer(r)
	return s
}

func (s *Server) requireBearer(c *gin.Context) {
	s.mu.Lock()
	unauthorized := s.Unauthorized
	s.mu.Unlock()

	if unauthorized || c.GetHeader("Authorization") == "" {
		fail(c, http.StatusUnauthorized, "missing or invalid token")
		c.Abort()
		return
	}
	c.Next()
}

// LoginCalls reports how many times the login endpoint was hit.
func (s *Server) LoginCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loginCalls
}

// BaseURL is the API root the client should be pointed at.
func (s *Server) BaseURL() string {
	return s.URL + "/api/v1"
}
