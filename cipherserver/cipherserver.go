// Package cipherserver exposes the ciphers over HTTP. The request body is the
// text, the path picks the direction and the query carries key and alg.
package cipherserver

import (
	"context"
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/tednaleid/encdec/cipher"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"
)

func New(accessLog io.Writer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Output: accessLog,
	}))
	e.Use(middleware.Recover())

	e.POST("/:mode", transform)

	return e
}

// Serve starts listening right away so a busy port is reported to the caller,
// requests are then handled in the background until shutdown is called.
func Serve(port int64, accessLog io.Writer) (func() error, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, err
	}

	s := &http.Server{
		Handler: New(accessLog),
	}

	go func() {
		if err := s.Serve(listener); err != nil && err != http.ErrServerClosed {
			fmt.Fprintln(accessLog, err)
		}
	}()

	shutdown := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Shutdown(ctx)
	}

	return shutdown, nil
}

func transform(c echo.Context) error {
	key := 0
	if keyParam := c.QueryParam("key"); keyParam != "" {
		var err error
		key, err = strconv.Atoi(keyParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "key must be an integer: "+keyParam)
		}
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return err
	}

	text, err := cipher.CodeUnits(body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	request := cipher.Request{
		Text:      text,
		Key:       key,
		Direction: cipher.ParseDirection(c.Param("mode")),
		Variant:   cipher.ParseVariant(c.QueryParam("alg")),
	}

	return c.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, cipher.Text(request.Apply()))
}
