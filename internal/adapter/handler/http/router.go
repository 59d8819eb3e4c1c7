package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/config"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"

	_ "github.com/sm8ta/webike_rental_microservice_nikita/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	router *gin.Engine
	server *http.Server
}

func NewRouter(
	cfg *config.HTTP,
	tokenService ports.TokenService,
	rentalHandler *RentalHandler,
	catalogHandler *CatalogHandler,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigins},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: cfg.AllowedOrigins != "*",
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Bikes routes
	bikes := router.Group("/bikes")
	bikes.Use(AuthMiddleware(tokenService))
	{
		bikes.POST("", AdminMiddleware(), rentalHandler.CreateBike)
		bikes.GET("/:id", rentalHandler.GetBike)
		bikes.POST("/:id/rent", rentalHandler.RentBike)
		bikes.POST("/:id/return", rentalHandler.ReturnBike)
		bikes.GET("/:id/audit", AdminMiddleware(), rentalHandler.GetAuditTrail)
	}
	// Catalogs routes
	catalogs := router.Group("/catalogs")
	catalogs.Use(AuthMiddleware(tokenService))
	{
		catalogs.GET("", catalogHandler.ListCatalogs)
		catalogs.GET("/:index/bikes", catalogHandler.ListBikes)
		catalogs.DELETE("/:index", AdminMiddleware(), catalogHandler.RemoveCatalog)
		catalogs.DELETE("/:index/bikes/:id", AdminMiddleware(), catalogHandler.RemoveBike)
	}
	return &Router{
		router: router,
		server: &http.Server{
			Addr:    fmt.Sprintf("%s:%s", cfg.URL, cfg.Port),
			Handler: router,
		},
	}, nil
}

func (r *Router) Addr() string {
	return r.server.Addr
}

// Serve blocks until the server stops. http.ErrServerClosed after Shutdown
// is not an error, including a Shutdown that happened before Serve.
func (r *Router) Serve() error {
	if err := r.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (r *Router) Shutdown(ctx context.Context) error {
	return r.server.Shutdown(ctx)
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
