package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"aquameter/internal/shared/errors"
)

// ParseUintParam parses a URI path parameter as an unsigned integer ID.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("invalid " + name + " parameter")
	}
	return uint(id), nil
}

// ParseUintQuery parses an optional query parameter as an unsigned integer.
// Returns 0 when the parameter is absent.
func ParseUintQuery(c *gin.Context, name string) (uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errors.NewBadRequestError("invalid " + name + " parameter")
	}
	return uint(id), nil
}

// DigitsOnly strips every non-digit rune from s. Used to normalize national
// IDs that clients may send formatted (e.g. "123.456.789-00").
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
