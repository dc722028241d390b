// README: Fleet and service catalog endpoints.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentbus/internal/modules/content"
)

type ContentHandler struct{}

func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

func (h *ContentHandler) Fleet(c *gin.Context) {
	lang := requestLanguage(c)
	writeJSON(c, http.StatusOK, gin.H{"fleet": content.Fleet(lang)})
}

func (h *ContentHandler) Services(c *gin.Context) {
	lang := requestLanguage(c)
	writeJSON(c, http.StatusOK, gin.H{"services": content.Services(lang)})
}
