package middleware

import (
	"bloglist/internal/observability"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// RequestTracing starts a server span for each request. The span is attached
// to the request context so repository and service calls nest under it.
func RequestTracing() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, span := observability.Tracer.Start(c.UserContext(), c.Method()+" "+c.Path(),
			trace.WithSpanKind(trace.SpanKindServer),
		)
		defer span.End()

		c.SetUserContext(ctx)
		err := c.Next()

		span.SetAttributes(
			attribute.String("http.method", c.Method()),
			attribute.String("http.route", c.Path()),
			attribute.Int("http.status_code", c.Response().StatusCode()),
		)
		if err != nil {
			span.RecordError(err)
		}
		return err
	}
}
