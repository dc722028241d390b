// README: SEO metadata, sitemap.xml and robots.txt endpoints.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rentbus/internal/modules/seo"
)

type SEOHandler struct {
	seo *seo.Service
}

func NewSEOHandler(svc *seo.Service) *SEOHandler {
	return &SEOHandler{seo: svc}
}

func (h *SEOHandler) Meta(c *gin.Context) {
	meta, err := h.seo.Meta(c.Param("page"), requestLanguage(c))
	if err != nil {
		if errors.Is(err, seo.ErrUnknownPage) {
			writeError(c, http.StatusNotFound, err.Error())
			return
		}
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, meta)
}

func (h *SEOHandler) Sitemap(c *gin.Context) {
	body, err := h.seo.Sitemap()
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

func (h *SEOHandler) Robots(c *gin.Context) {
	c.Data(http.StatusOK, "text/plain; charset=utf-8", h.seo.Robots())
}
