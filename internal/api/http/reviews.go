package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/playapi/internal/domain/playstore"
)

// Reviews returns one page of reviews. Page N is reached by following N
// continuation tokens from the first batch.
func (h *Handlers) Reviews(c *gin.Context) {
	page, err := intParam(c, "page", 0)
	if err != nil {
		fail(c, err)
		return
	}
	if page < 0 {
		fail(c, fmt.Errorf("%w: page must not be negative", playstore.ErrInvalidOption))
		return
	}
	num, err := intParam(c, "num", 0)
	if err != nil {
		fail(c, err)
		return
	}
	sort, err := playstore.ParseSort(c.Query("sort"))
	if err != nil {
		fail(c, err)
		return
	}

	appID := c.Param("appId")
	opts := playstore.ReviewsOptions{
		Locale: localeParam(c),
		AppID:  appID,
		Sort:   sort,
		Num:    num,
	}

	reviews := []playstore.Review{}
	for i := 0; i <= page; i++ {
		batch, err := h.scraper.Reviews(c.Request.Context(), opts)
		if err != nil {
			fail(c, err)
			return
		}
		if i == page {
			if batch.Data != nil {
				reviews = batch.Data
			}
			break
		}
		if batch.NextPaginationToken == "" {
			break
		}
		opts.Token = batch.NextPaginationToken
	}

	l := h.links(c)
	subpath := "/apps/" + appID + "/reviews/"
	resp := listResponse{Results: reviews}
	query := c.Request.URL.Query()
	if page > 0 {
		query.Set("page", strconv.Itoa(page-1))
		resp.Prev = l.withQuery(subpath, query)
	}
	if len(reviews) > 0 {
		query.Set("page", strconv.Itoa(page+1))
		resp.Next = l.withQuery(subpath, query)
	}
	c.JSON(http.StatusOK, resp)
}
