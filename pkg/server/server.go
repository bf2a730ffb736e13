package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/bochkarevko/timetable-bot/pkg/timetable"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// DayFetcher is the part of timetable.Client the server needs.
type DayFetcher interface {
	FetchDay(ctx context.Context, day string, profile timetable.Profile) ([]timetable.Lesson, error)
}

// DayRequest selects a day and, optionally, the student's tracks.
type DayRequest struct {
	Day           string `param:"day" validate:"required,max=32"`
	Group         string `query:"group"`
	Algorithms    string `query:"algorithms"`
	Combinatorics string `query:"combinatorics"`
}

// NextRequest additionally carries the reference time as HH:MM.
type NextRequest struct {
	DayRequest
	At string `query:"at" validate:"omitempty,datetime=15:04"`
}

func (r DayRequest) profile() timetable.Profile {
	return timetable.NewProfile(r.Group, r.Algorithms, r.Combinatorics)
}

// CustomValidator plugs go-playground/validator into echo's c.Validate.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate checks struct tags and reports failures as 400 Bad Request.
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// New builds the HTTP surface. now is used when a request carries no time.
func New(fetcher DayFetcher, loc *time.Location, now func() time.Time) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/timetable/:day", GetDay(fetcher))
	e.GET("/timetable/:day/next", GetNextLesson(fetcher, loc, now))

	return e
}

// GetDay responds with the rendered day for the requested tracks.
func GetDay(fetcher DayFetcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req DayRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		if err := c.Validate(&req); err != nil {
			return err
		}

		lessons, err := fetcher.FetchDay(c.Request().Context(), req.Day, req.profile())
		if err != nil {
			return fetchError(err)
		}

		return c.String(http.StatusOK, timetable.PrintDay(lessons))
	}
}

// GetNextLesson responds with the next lesson of the day relative to ?at= or the current time.
func GetNextLesson(fetcher DayFetcher, loc *time.Location, now func() time.Time) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req NextRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		if err := c.Validate(&req); err != nil {
			return err
		}

		at := now().In(loc)
		if req.At != "" {
			parsed, err := time.Parse("15:04", req.At)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "at must be HH:MM")
			}
			at = parsed
		}

		lessons, err := fetcher.FetchDay(c.Request().Context(), req.Day, req.profile())
		if err != nil {
			return fetchError(err)
		}

		next, ok := timetable.NextLesson(lessons, at)
		if !ok {
			return echo.NewHTTPError(http.StatusNotFound, "no more lessons this day")
		}

		return c.String(http.StatusOK, next.Render())
	}
}

func fetchError(err error) error {
	var transportErr *timetable.TransportError
	if errors.As(err, &transportErr) {
		return echo.NewHTTPError(http.StatusBadGateway, transportErr.Error()).SetInternal(err)
	}
	return err
}
