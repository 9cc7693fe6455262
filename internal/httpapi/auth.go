package httpapi

import (
	"net/http"

	"buildmart-be/internal/user"

	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	Token string `json:"token"`
	User  struct {
		ID    uint   `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

// tokenTTLSeconds matches the JWT expiry.
const tokenTTLSeconds = 24 * 60 * 60

func loginHandler(users user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBindError(c, err)
			return
		}

		token, u, err := users.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			writeError(c, err)
			return
		}

		setSession(c, token)
		c.JSON(http.StatusOK, buildAuthResponse(token, u))
	}
}

func registerHandler(users user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBindError(c, err)
			return
		}

		token, u, err := users.Register(c.Request.Context(), req.Email, req.Password)
		if err == user.ErrEmailExists {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if err != nil {
			writeError(c, err)
			return
		}

		setSession(c, token)
		c.JSON(http.StatusCreated, buildAuthResponse(token, u))
	}
}

// setSession mirrors the token into an HttpOnly cookie so browser clients
// don't have to manage the Authorization header themselves.
func setSession(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("access_token", token, tokenTTLSeconds, "/", "", false, true)
}

func buildAuthResponse(token string, u user.User) authResponse {
	var resp authResponse
	resp.Token = token
	resp.User.ID = u.ID
	resp.User.Email = u.Email
	resp.User.Role = u.Role
	return resp
}
