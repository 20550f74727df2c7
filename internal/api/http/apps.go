package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/playapi/internal/domain/playstore"
)

// listCap is the last start offset that still gets a next link.
const listCap = 500

type listResponse struct {
	Results interface{} `json:"results"`
	Prev    string      `json:"prev,omitempty"`
	Next    string      `json:"next,omitempty"`
}

type suggestion struct {
	Term string `json:"term"`
	URL  string `json:"url"`
}

// Apps dispatches GET /apps to search, suggest or list depending on the
// query.
func (h *Handlers) Apps(c *gin.Context) {
	switch {
	case c.Query("q") != "":
		h.search(c)
	case c.Query("suggest") != "":
		h.suggest(c)
	default:
		h.list(c)
	}
}

func (h *Handlers) search(c *gin.Context) {
	num, err := intParam(c, "num", 0)
	if err != nil {
		fail(c, err)
		return
	}
	price, err := playstore.ParsePrice(c.Query("price"))
	if err != nil {
		fail(c, err)
		return
	}
	fullDetail, err := boolParam(c, "fullDetail")
	if err != nil {
		fail(c, err)
		return
	}

	apps, err := h.scraper.Search(c.Request.Context(), playstore.SearchOptions{
		Locale:     localeParam(c),
		Term:       c.Query("q"),
		Num:        num,
		Price:      price,
		FullDetail: fullDetail,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Results: h.links(c).apps(apps)})
}

func (h *Handlers) suggest(c *gin.Context) {
	terms, err := h.scraper.Suggest(c.Request.Context(), playstore.SuggestOptions{
		Locale: localeParam(c),
		Term:   c.Query("suggest"),
	})
	if err != nil {
		fail(c, err)
		return
	}

	l := h.links(c)
	results := make([]suggestion, 0, len(terms))
	for _, term := range terms {
		results = append(results, suggestion{
			Term: term,
			URL:  l.withQuery("/apps/", url.Values{"q": {term}}),
		})
	}
	c.JSON(http.StatusOK, listResponse{Results: results})
}

func (h *Handlers) list(c *gin.Context) {
	num, err := intParam(c, "num", playstore.DefaultListNum)
	if err != nil {
		fail(c, err)
		return
	}
	if num <= 0 {
		fail(c, fmt.Errorf("%w: num must be positive", playstore.ErrInvalidOption))
		return
	}
	start, err := intParam(c, "start", 0)
	if err != nil {
		fail(c, err)
		return
	}
	collection, err := playstore.ParseCollection(c.Query("collection"))
	if err != nil {
		fail(c, err)
		return
	}
	age, err := playstore.ParseAge(c.Query("age"))
	if err != nil {
		fail(c, err)
		return
	}
	fullDetail, err := boolParam(c, "fullDetail")
	if err != nil {
		fail(c, err)
		return
	}

	apps, err := h.scraper.List(c.Request.Context(), playstore.ListOptions{
		Locale:     localeParam(c),
		Collection: collection,
		Category:   c.Query("category"),
		Age:        age,
		Num:        num,
		Start:      start,
		FullDetail: fullDetail,
	})
	if err != nil {
		fail(c, err)
		return
	}

	l := h.links(c)
	resp := listResponse{Results: l.apps(apps)}
	query := c.Request.URL.Query()
	if start-num >= 0 {
		query.Set("start", strconv.Itoa(start-num))
		resp.Prev = l.withQuery("/apps/", query)
	}
	if start+num <= listCap {
		query.Set("start", strconv.Itoa(start+num))
		resp.Next = l.withQuery("/apps/", query)
	}
	c.JSON(http.StatusOK, resp)
}

// App returns a single listing
func (h *Handlers) App(c *gin.Context) {
	app, err := h.scraper.App(c.Request.Context(), playstore.AppOptions{
		Locale: localeParam(c),
		AppID:  c.Param("appId"),
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.links(c).app(app))
}

// Similar returns apps related to the given one
func (h *Handlers) Similar(c *gin.Context) {
	fullDetail, err := boolParam(c, "fullDetail")
	if err != nil {
		fail(c, err)
		return
	}

	apps, err := h.scraper.Similar(c.Request.Context(), playstore.SimilarOptions{
		Locale:     localeParam(c),
		AppID:      c.Param("appId"),
		FullDetail: fullDetail,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Results: h.links(c).apps(apps)})
}

// DataSafety returns the data safety section of a listing
func (h *Handlers) DataSafety(c *gin.Context) {
	safety, err := h.scraper.DataSafety(c.Request.Context(), playstore.DataSafetyOptions{
		Locale: localeParam(c),
		AppID:  c.Param("appId"),
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Results: safety})
}

// Permissions returns the permissions a listing declares. With short=true
// only the permission group names are returned.
func (h *Handlers) Permissions(c *gin.Context) {
	short, err := boolParam(c, "short")
	if err != nil {
		fail(c, err)
		return
	}

	perms, err := h.scraper.Permissions(c.Request.Context(), playstore.PermissionsOptions{
		Locale: localeParam(c),
		AppID:  c.Param("appId"),
		Short:  short,
	})
	if err != nil {
		fail(c, err)
		return
	}

	if short {
		names := make([]string, 0, len(perms))
		for _, p := range perms {
			names = append(names, p.Permission)
		}
		c.JSON(http.StatusOK, listResponse{Results: names})
		return
	}
	if perms == nil {
		perms = []playstore.Permission{}
	}
	c.JSON(http.StatusOK, listResponse{Results: perms})
}
