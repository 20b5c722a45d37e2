package handler

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationError carries the reasons a submitted form was rejected. It is
// the locally recoverable failure kind: handlers flash the problems and
// re-render the form instead of touching the database.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid form: " + strings.Join(e.Problems, "; ")
}

type VenueForm struct {
	Name               string   `form:"name" binding:"required"`
	City               string   `form:"city" binding:"required"`
	State              string   `form:"state" binding:"required"`
	Address            string   `form:"address"`
	Phone              string   `form:"phone"`
	ImageLink          string   `form:"image_link" binding:"omitempty,url"`
	FacebookLink       string   `form:"facebook_link" binding:"omitempty,url"`
	WebsiteLink        string   `form:"website_link" binding:"omitempty,url"`
	SeekingTalent      string   `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description"`
	Genres             []string `form:"genres"`
}

type ArtistForm struct {
	Name               string   `form:"name" binding:"required"`
	City               string   `form:"city" binding:"required"`
	State              string   `form:"state" binding:"required"`
	Phone              string   `form:"phone"`
	ImageLink          string   `form:"image_link" binding:"omitempty,url"`
	FacebookLink       string   `form:"facebook_link" binding:"omitempty,url"`
	WebsiteLink        string   `form:"website_link" binding:"omitempty,url"`
	SeekingTalent      string   `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description"`
	Genres             []string `form:"genres"`
}

type ShowForm struct {
	ArtistID  uint   `form:"artist_id" binding:"required"`
	VenueID   uint   `form:"venue_id" binding:"required"`
	StartTime string `form:"start_time"`
}

// bindForm binds the request payload and converts validator field errors
// into a ValidationError.
func bindForm(c *gin.Context, dest any) error {
	err := c.ShouldBind(dest)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		problems := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			problems = append(problems, fmt.Sprintf("field %s failed the %s rule", fe.Field(), fe.Tag()))
		}
		return &ValidationError{Problems: problems}
	}
	return &ValidationError{Problems: []string{err.Error()}}
}

// parseSeekingTalent maps the checkbox value onto a bool. Only the shapes a
// browser actually submits are accepted; anything else is rejected instead
// of silently coerced.
func parseSeekingTalent(raw string) (bool, error) {
	switch raw {
	case "":
		return false, nil
	case "y", "on", "true", "1":
		return true, nil
	}
	return false, &ValidationError{
		Problems: []string{fmt.Sprintf("seeking_talent must be one of y, on, true, 1 or empty, got %q", raw)},
	}
}

var startTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// parseStartTime parses an ISO-8601-ish timestamp. An empty value returns
// the zero time, which the show service treats as "now".
func parseStartTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &ValidationError{
		Problems: []string{fmt.Sprintf("start_time %q is not an ISO-8601 timestamp", raw)},
	}
}
