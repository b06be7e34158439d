// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	forwardedHostHeaderKey = "x-forwarded-host"
	forwardedForHeaderKey  = "x-forwarded-for"
	requestIDHeaderName    = "x-request-id"
	userAgentHeaderName    = "user-agent"

	IncomingRequestMessage  = "incoming request"
	RequestCompletedMessage = "request completed"
)

// httpFields groups the request and response attributes of a log line.
type httpFields struct {
	Request  *requestFields  `json:"request,omitempty"`
	Response *responseFields `json:"response,omitempty"`
}

type requestFields struct {
	Method    string `json:"method,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
}

type responseFields struct {
	StatusCode int `json:"statusCode,omitempty"`
	BodyBytes  int `json:"bodyBytes"`
}

type hostFields struct {
	Hostname      string `json:"hostname,omitempty"`
	ForwardedHost string `json:"forwardedHost,omitempty"`
	IP            string `json:"ip,omitempty"`
}

// requestID returns the id sent by the client or a newly generated random one.
func requestID(c *fiber.Ctx) string {
	if id := c.Get(requestIDHeaderName); id != "" {
		return id
	}

	id, err := uuid.NewRandom()
	if err != nil {
		panic(fmt.Errorf("error generating request id: %w", err))
	}
	return id.String()
}

func requestAttributes(c *fiber.Ctx) requestFields {
	return requestFields{
		Method:    c.Method(),
		UserAgent: c.Get(userAgentHeaderName),
	}
}

func hostAttributes(c *fiber.Ctx) hostFields {
	return hostFields{
		Hostname:      strings.Split(c.Hostname(), ":")[0],
		ForwardedHost: c.Get(forwardedHostHeaderKey),
		IP:            c.Get(forwardedForHeaderKey),
	}
}

// responseAttributes reads the status and size of the response, preferring the
// values carried by a *fiber.Error returned from the handler chain.
func responseAttributes(c *fiber.Ctx, handlerErr error) responseFields {
	var fiberErr *fiber.Error
	if errors.As(handlerErr, &fiberErr) {
		return responseFields{StatusCode: fiberErr.Code, BodyBytes: len(fiberErr.Message)}
	}

	status := c.Response().StatusCode()
	if !statusHasBody(status) {
		return responseFields{StatusCode: status}
	}
	return responseFields{StatusCode: status, BodyBytes: len(c.Response().Body())}
}

// statusHasBody reports whether a response with status may carry a body.
func statusHasBody(status int) bool {
	return status >= fiber.StatusOK && status != fiber.StatusNoContent && status != fiber.StatusNotModified
}

// RequestMiddlewareLogger is a fiber middleware that logs every request not matching excludedPrefix.
// The incoming request is logged at TRACE level, the completed one at INFO level together
// with its latency. A logger named after the request id is stored in the request user context.
func RequestMiddlewareLogger(logger Logger, excludedPrefix []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.OriginalURL()
		for _, prefix := range excludedPrefix {
			if strings.HasPrefix(path, prefix) {
				return c.Next()
			}
		}

		start := time.Now()
		log := logger.WithName("request").WithName(requestID(c))
		c.SetUserContext(WithContext(c.UserContext(), log))

		request := requestAttributes(c)
		host := hostAttributes(c)
		log.Trace(IncomingRequestMessage,
			"http", httpFields{Request: &request},
			"url", path,
			"host", host,
		)

		err := c.Next()

		response := responseAttributes(c, err)
		log.Info(RequestCompletedMessage,
			"http", httpFields{Request: &request, Response: &response},
			"url", path,
			"host", host,
			"responseTime", float64(time.Since(start).Milliseconds()),
		)

		return err
	}
}
