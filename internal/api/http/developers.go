package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/playapi/internal/domain/playstore"
)

// DeveloperIndexMessage is returned when no developer id is given.
const DeveloperIndexMessage = "Please specify a developer id."

// Developer lists a developer's apps
func (h *Handlers) Developer(c *gin.Context) {
	num, err := intParam(c, "num", 0)
	if err != nil {
		fail(c, err)
		return
	}
	fullDetail, err := boolParam(c, "fullDetail")
	if err != nil {
		fail(c, err)
		return
	}

	devID := c.Param("devId")
	apps, err := h.scraper.Developer(c.Request.Context(), playstore.DeveloperOptions{
		Locale:     localeParam(c),
		DevID:      devID,
		Num:        num,
		FullDetail: fullDetail,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"devId": devID,
		"apps":  h.links(c).apps(apps),
	})
}

// DeveloperIndex explains that a developer id is required.
func (h *Handlers) DeveloperIndex(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"message": DeveloperIndexMessage,
		"example": h.links(c).url("/developers/" + escape("Wikimedia Foundation")),
	})
}
