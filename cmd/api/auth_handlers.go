package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oldstupa/storefront/internal/user"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// registerHandler creates a new user account.
// @Summary Register a user
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body credentials true "Username and password"
// @Success 201 {object} user.User
// @Router /auth/register [post]
func registerHandler(users user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentials
		if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
			return
		}
		u, err := users.Create(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, user.ErrAlreadyExist) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Username is already taken"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, u)
	}
}

// loginHandler verifies a username and password.
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body credentials true "Username and password"
// @Success 200 {object} user.User
// @Router /auth/login [post]
func loginHandler(users user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentials
		if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
			return
		}
		u, err := users.GetByUsername(c.Request.Context(), req.Username)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		if !user.CheckPassword(u.PasswordHash, req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
			return
		}
		c.JSON(http.StatusOK, u)
	}
}
