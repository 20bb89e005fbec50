package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// currentUserID reads the identity placed on the context by the identity
// middleware.
func currentUserID(c *gin.Context) uint {
	return c.GetUint("userID")
}

// validationDetails flattens binding errors into the `details` array the
// client shows next to form fields.
func validationDetails(err error) []gin.H {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]gin.H, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, gin.H{"field": fe.Field(), "rule": fe.Tag()})
		}
		return out
	}
	return []gin.H{{"message": err.Error()}}
}

func respondValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "validation failed",
		"details": validationDetails(err),
	})
}

// respondStoreError maps store failures onto the HTTP taxonomy: missing row
// is 404, everything else a generic 500 (the real cause goes to the log).
func respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter. The second
// return is false when the value is present but malformed.
func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	v := c.Query(name)
	if v == "" {
		return nil, true
	}
	t, err := time.ParseInLocation(dateLayout, v, time.Local)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// parseBodyDate turns a request-body date string into local time, defaulting
// to today when empty.
func parseBodyDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	return time.ParseInLocation(dateLayout, s, time.Local)
}
