// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rentbus/internal/http/handlers"
	"rentbus/internal/http/middleware"
	"rentbus/internal/modules/pricing"
	"rentbus/internal/modules/seo"
	"rentbus/internal/modules/testimonial"
	"rentbus/internal/modules/tripplan"
)

type RouterDeps struct {
	Pricing      *pricing.Service
	Testimonials *testimonial.Service
	Planner      *tripplan.Service
	SEO          *seo.Service

	Log         *zap.Logger
	CORSOrigins []string
	PlanRPS     float64
	PlanBurst   int
}

func NewRouter(deps RouterDeps) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Recovery(deps.Log))
	r.Use(middleware.Logging(deps.Log))
	r.Use(middleware.CORS(deps.CORSOrigins))

	quoteHandler := handlers.NewQuoteHandler(deps.Pricing)
	r.POST("/api/quotes", quoteHandler.Create)

	testimonialHandler := handlers.NewTestimonialHandler(deps.Testimonials)
	r.GET("/api/testimonials", testimonialHandler.List)
	r.GET("/api/testimonials/featured", testimonialHandler.Featured)
	r.POST("/api/testimonials", testimonialHandler.Create)

	planLimiter := middleware.NewRateLimiter(deps.PlanRPS, deps.PlanBurst)
	planHandler := handlers.NewTripPlanHandler(deps.Planner)
	r.POST("/api/trip-plans", planLimiter.Handler(), planHandler.Create)

	contentHandler := handlers.NewContentHandler()
	r.GET("/api/content/fleet", contentHandler.Fleet)
	r.GET("/api/content/services", contentHandler.Services)

	seoHandler := handlers.NewSEOHandler(deps.SEO)
	r.GET("/api/seo/:page", seoHandler.Meta)
	r.GET("/sitemap.xml", seoHandler.Sitemap)
	r.GET("/robots.txt", seoHandler.Robots)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
