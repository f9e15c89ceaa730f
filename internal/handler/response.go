package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Every endpoint answers with the same envelope: {success, data} on success,
// {success, message} on failure. The failure half lives in the central error
// handler; these helpers cover the success half.

type envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type failure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// respondOK writes a 200 success envelope.
func respondOK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

// respondCreated writes a 201 success envelope.
func respondCreated(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, envelope{Success: true, Data: data})
}
