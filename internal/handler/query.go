package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/VictorGlez97/almperms/internal/model"
	"github.com/VictorGlez97/almperms/internal/service"
	"github.com/VictorGlez97/almperms/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// writeError maps service errors onto HTTP status codes
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case service.IsValidation(err):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	}
	c.JSON(status, response.Error(status, err.Error()))
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, msg))
}

// queryParser collects optional filters from the query string, keeping the first parse error
type queryParser struct {
	c   *gin.Context
	err error
}

func (q *queryParser) str(key string) *string {
	v, ok := q.c.GetQuery(key)
	if !ok {
		return nil
	}
	return &v
}

func (q *queryParser) integer(key string) *int {
	v, ok := q.c.GetQuery(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		q.fail(key, "an integer")
		return nil
	}
	return &n
}

func (q *queryParser) int64(key string) *int64 {
	v, ok := q.c.GetQuery(key)
	if !ok {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		q.fail(key, "an integer")
		return nil
	}
	return &n
}

func (q *queryParser) boolean(key string) *bool {
	v, ok := q.c.GetQuery(key)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		q.fail(key, "a boolean")
		return nil
	}
	return &b
}

func (q *queryParser) decimal(key string) *decimal.Decimal {
	v, ok := q.c.GetQuery(key)
	if !ok {
		return nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		q.fail(key, "a number")
		return nil
	}
	return &d
}

func (q *queryParser) date(key string) *time.Time {
	v, ok := q.c.GetQuery(key)
	if !ok {
		return nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		q.fail(key, "a date (YYYY-MM-DD)")
		return nil
	}
	return &t
}

// list reads a comma separated value; nil when the key is absent
func (q *queryParser) list(key string) []string {
	v, ok := q.c.GetQuery(key)
	if !ok {
		return nil
	}
	out := []string{}
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (q *queryParser) int64List(key string) []int64 {
	parts := q.list(key)
	if parts == nil {
		return nil
	}
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			q.fail(key, "a list of integers")
			return nil
		}
		out = append(out, n)
	}
	return out
}

func (q *queryParser) fail(key, want string) {
	if q.err == nil {
		q.err = fmt.Errorf("query parameter %s must be %s", key, want)
	}
}

// statusCode defaults an absent status code to active; an explicit empty value means any status
func (q *queryParser) statusCode(key string) *string {
	v, ok := q.c.GetQuery(key)
	if !ok {
		active := model.StatusCodeActive
		return &active
	}
	if v = strings.TrimSpace(v); v == "" {
		return nil
	}
	return &v
}
