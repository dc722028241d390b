// README: Testimonial endpoints: public listing, featured page, submission.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentbus/internal/modules/testimonial"
)

type TestimonialHandler struct {
	testimonials *testimonial.Service
}

func NewTestimonialHandler(svc *testimonial.Service) *TestimonialHandler {
	return &TestimonialHandler{testimonials: svc}
}

func (h *TestimonialHandler) List(c *gin.Context) {
	items, err := h.testimonials.List(c.Request.Context())
	if err != nil {
		writeTestimonialError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"testimonials": items})
}

func (h *TestimonialHandler) Featured(c *gin.Context) {
	page, err := h.testimonials.Featured(c.Request.Context())
	if err != nil {
		writeTestimonialError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, page)
}

type createTestimonialReq struct {
	CustomerName     string `json:"customer_name"`
	CustomerLocation string `json:"customer_location"`
	ServiceType      string `json:"service_type"`
	Rating           int    `json:"rating"`
	QuoteEN          string `json:"quote_en"`
	QuoteFR          string `json:"quote_fr"`
}

func (h *TestimonialHandler) Create(c *gin.Context) {
	var req createTestimonialReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	created, err := h.testimonials.Create(c.Request.Context(), testimonial.CreateCommand{
		CustomerName:     req.CustomerName,
		CustomerLocation: req.CustomerLocation,
		ServiceType:      req.ServiceType,
		Rating:           req.Rating,
		QuoteEN:          req.QuoteEN,
		QuoteFR:          req.QuoteFR,
	})
	if err != nil {
		writeTestimonialError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, created)
}
