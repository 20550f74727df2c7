package http

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/playapi/internal/domain/playstore"
)

func localeParam(c *gin.Context) playstore.Locale {
	return playstore.Locale{
		Lang:    c.Query("lang"),
		Country: c.Query("country"),
	}
}

// intParam reads an integer query parameter, def when absent.
func intParam(c *gin.Context, name string, def int) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", playstore.ErrInvalidOption, name, raw)
	}
	return n, nil
}

// boolParam reads a boolean query parameter, false when absent.
func boolParam(c *gin.Context, name string) (bool, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean, got %q", playstore.ErrInvalidOption, name, raw)
	}
	return b, nil
}
