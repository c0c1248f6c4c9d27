// Package api
package api

import (
	"github.com/labstack/echo"
)

// RestServer define all API expose
type RestServer interface {
	// General
	Ping(c echo.Context) error
	Status(c echo.Context) error

	// Action surface
	Metadata(c echo.Context) error
	Interactions(c echo.Context) error
}
