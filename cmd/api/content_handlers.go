package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oldstupa/storefront/internal/content"
)

// @Summary List published blog posts, newest first
// @Produce json
// @Success 200 {array} content.BlogPost
// @Router /blog [get]
func listBlogPostsHandler(repo content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := repo.ListBlogPosts(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, posts)
	}
}

// @Summary The newest published blog posts
// @Produce json
// @Param limit query int false "how many posts, defaults to 3"
// @Success 200 {array} content.BlogPost
// @Router /blog/recent [get]
func recentBlogPostsHandler(repo content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.Query("limit"))
		posts, err := repo.RecentBlogPosts(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, posts)
	}
}

// @Summary Get a published blog post by slug
// @Produce json
// @Param slug path string true "post slug"
// @Success 200 {object} content.BlogPost
// @Failure 404 {object} map[string]string
// @Router /blog/{slug} [get]
func getBlogPostHandler(repo content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := repo.GetBlogPostBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			if errors.Is(err, content.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Blog post not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// @Summary List published testimonials
// @Produce json
// @Success 200 {array} content.Testimonial
// @Router /testimonials [get]
func listTestimonialsHandler(repo content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		testimonials, err := repo.ListTestimonials(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, testimonials)
	}
}

// @Summary Subscribe an email to the newsletter
// @Accept json
// @Produce json
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /newsletter/subscribe [post]
func subscribeHandler(repo content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email string `json:"email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
			return
		}

		sub, err := repo.AddSubscriber(c.Request.Context(), req.Email)
		if err != nil {
			if errors.Is(err, content.ErrDuplicateEmail) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "This email is already subscribed"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Subscription successful", "subscriber": sub})
	}
}

// @Summary Submit the contact form
// @Accept json
// @Produce json
// @Param message body content.NewContactMessage true "contact message"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /contact [post]
func contactHandler(repo content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req content.NewContactMessage
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email and message are required"})
			return
		}
		if req.Name == "" || req.Email == "" || req.Message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email and message are required"})
			return
		}

		msg, err := repo.AddContactMessage(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully", "contactMessage": msg})
	}
}
