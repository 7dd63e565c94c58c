package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/oldstupa/storefront/docs"
	"github.com/oldstupa/storefront/internal/catalog"
	"github.com/oldstupa/storefront/internal/config"
	"github.com/oldstupa/storefront/internal/content"
	"github.com/oldstupa/storefront/internal/events"
	"github.com/oldstupa/storefront/internal/httpx"
	"github.com/oldstupa/storefront/internal/order"
	"github.com/oldstupa/storefront/internal/payments"
	"github.com/oldstupa/storefront/internal/user"
)

// @title Old Stupa Storefront API
// @version 1.0
// @description REST API for the Old Stupa handcrafted-goods storefront.
// @BasePath /api
func main() {
	cfg := config.Load()
	ctx := context.Background()

	var (
		catalogRepo catalog.Repository
		contentRepo content.Repository
		orderRepo   order.Repository
		userRepo    user.Repository
	)
	if cfg.PostgresDSN != "" {
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("postgres: %v", err)
		}
		defer pool.Close()
		catalogRepo = catalog.NewPGRepo(pool)
		contentRepo = content.NewPGRepo(pool)
		orderRepo = order.NewPGRepo(pool)
		userRepo = user.NewPGRepo(pool)
	} else {
		catalogMem := catalog.NewMemRepo()
		if err := catalog.Seed(ctx, catalogMem); err != nil {
			log.Fatalf("seed catalog: %v", err)
		}
		contentMem := content.NewMemRepo()
		if err := content.Seed(ctx, contentMem); err != nil {
			log.Fatalf("seed content: %v", err)
		}
		catalogRepo = catalogMem
		contentRepo = contentMem
		orderRepo = order.NewMemRepo()
		userRepo = user.NewMemRepo()
	}
	var intents intentCreator
	if cfg.StripeSecretKey != "" {
		intents = payments.NewClient(cfg.StripeSecretKey)
	}

	var pub orderPublisher
	if cfg.RabbitMQURL != "" {
		p, err := events.NewPublisher(cfg.RabbitMQURL, cfg.RabbitMQQueue)
		if err != nil {
			log.Printf("[events] broker unavailable, order events disabled: %v", err)
		} else {
			defer p.Close()
			pub = p
		}
	}

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	api := r.Group("/api")
	api.GET("/health", healthHandler())

	api.GET("/products", listProductsHandler(catalogRepo))
	api.GET("/products/featured", featuredProductsHandler(catalogRepo))
	api.GET("/products/related/:slug", relatedProductsHandler(catalogRepo))
	api.GET("/products/:slug", getProductHandler(catalogRepo))
	api.GET("/categories", listCategoriesHandler(catalogRepo))

	api.GET("/blog", listBlogPostsHandler(contentRepo))
	api.GET("/blog/recent", recentBlogPostsHandler(contentRepo))
	api.GET("/blog/:slug", getBlogPostHandler(contentRepo))
	api.GET("/testimonials", listTestimonialsHandler(contentRepo))
	api.POST("/newsletter/subscribe", subscribeHandler(contentRepo))
	api.POST("/contact", contactHandler(contentRepo))

	api.POST("/create-payment-intent", createPaymentIntentHandler(orderRepo, catalogRepo, intents))
	api.POST("/create-order", createOrderHandler(orderRepo, catalogRepo, pub))

	api.POST("/auth/register", registerHandler(userRepo))
	api.POST("/auth/login", loginHandler(userRepo))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Printf("storefront api listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
