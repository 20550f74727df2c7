package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/playapi/internal/domain/playstore"
)

type categoryResource struct {
	playstore.Category
	URL string `json:"url"`
}

// Categories returns the store taxonomy with a listing link per category.
func (h *Handlers) Categories(c *gin.Context) {
	l := h.links(c)
	categories := playstore.Categories()

	out := make([]categoryResource, 0, len(categories))
	for _, cat := range categories {
		out = append(out, categoryResource{
			Category: cat,
			URL:      l.url("apps/?category=" + cat.ID),
		})
	}
	c.JSON(http.StatusOK, out)
}
