package router

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pedro-candido/mvvm-app/internal/requestlog"
)

// Latency returns middleware that delays every request by d before the
// handler runs, simulating network latency. The delay is per request, not a
// global lock: requests arriving within the window still interleave.
func Latency(d time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if d > 0 {
				time.Sleep(d)
			}
			return next(c)
		}
	}
}

// Tap returns middleware that records method, path and timestamp of every
// request into the ring, with the response status once known.
func Tap(ring *requestlog.Ring) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			entry := requestlog.Entry{
				Timestamp: time.Now(),
				Method:    c.Request().Method,
				Path:      c.Request().URL.Path,
			}
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			entry.Status = c.Response().Status
			ring.Record(entry)
			return nil
		}
	}
}
