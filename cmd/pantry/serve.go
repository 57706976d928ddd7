// Serve command: expose the catalog search over HTTP.
package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/cookpedia/pantry/internal/content"
	"github.com/cookpedia/pantry/internal/metrics"
	"github.com/cookpedia/pantry/internal/resolver"
	"github.com/cookpedia/pantry/pkg/types"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog search over HTTP",
	Long: `Serve loads the catalog from the content service and exposes it:

  GET  /api/recipes           filtered listing (text, ingredient, category
                              query parameters; ingredient and category
                              repeat and are ANDed)
  GET  /api/recipes/:id       single recipe
  POST /api/recipes           publish a raw post object into the catalog
  POST /api/refresh           re-fetch the listing from the content service
  GET  /healthz               liveness
  GET  /metrics               prometheus metrics`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", ":7070", "listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	store, journal, err := openCatalog()
	if err != nil {
		return err
	}
	defer journal.Close()

	client, err := content.NewClient(cfg.APIBase)
	if err != nil {
		return err
	}

	// A failed initial fetch is not fatal: the server comes up with the
	// journaled records and serves stale-but-present data until a refresh
	// succeeds.
	if err := store.Refresh(cmd.Context(), client); err != nil {
		slog.Warn("initial catalog fetch failed", "error", err)
	}
	if err := store.Hydrate(); err != nil {
		return fmt.Errorf("hydrate from journal: %w", err)
	}

	registry := prometheus.NewRegistry()
	if err := metrics.Default.Register(registry); err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	router := newRouter(store, client, registry)
	slog.Info("serving catalog", "addr", flagAddr, "recipes", store.Len())
	return router.Run(flagAddr)
}

func newRouter(store types.Catalog, src types.Source, registry *prometheus.Registry) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "recipes": store.Len()})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	api := router.Group("/api")
	api.GET("/recipes", func(c *gin.Context) {
		results := store.Filter(types.Criteria{
			Text:        c.Query("text"),
			Ingredients: c.QueryArray("ingredient"),
			Categories:  c.QueryArray("category"),
		})
		c.JSON(http.StatusOK, gin.H{"count": len(results), "recipes": results})
	})

	api.GET("/recipes/:id", func(c *gin.Context) {
		r, err := store.Get(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "recipe not found"})
			return
		}
		c.JSON(http.StatusOK, r)
	})

	api.POST("/recipes", func(c *gin.Context) {
		var post types.RawPost
		if err := c.ShouldBindJSON(&post); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if post.PostID == nil || post.PostID == "" {
			post.PostID = generateID()
		}
		recipe, err := resolver.Normalize(types.RawEnvelope{Post: &post})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		store.PublishCreated(recipe)
		c.JSON(http.StatusCreated, recipe)
	})

	api.POST("/refresh", func(c *gin.Context) {
		if err := store.Refresh(c.Request.Context(), src); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"recipes": store.Len()})
	})

	return router
}
