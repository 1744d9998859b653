package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/domain"
	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Error codes returned in the error envelope
const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeNotFound      = "NOT_FOUND"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeDuplicate     = "DUPLICATE_ERROR"
	CodeInvalidID     = "INVALID_ID"
	CodeInternal      = "INTERNAL_ERROR"
	CodeRouteNotFound = "ROUTE_NOT_FOUND"
	CodeUnavailable   = "SERVICE_UNAVAILABLE"
)

// ErrorBody is the error part of the envelope
type ErrorBody struct {
	Code    string   `json:"code"`
	Details []string `json:"details,omitempty"`
}

// Response is the envelope every endpoint answers with
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Message string     `json:"message,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

var validate = newValidator()

// newValidator reports fields by their JSON names
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func ok(c *fiber.Ctx, status int, data any, message string) error {
	return c.Status(status).JSON(Response{Success: true, Data: data, Message: message})
}

func fail(c *fiber.Ctx, status int, code, message string, details ...string) error {
	return c.Status(status).JSON(Response{
		Success: false,
		Message: message,
		Error:   &ErrorBody{Code: code, Details: details},
	})
}

// validateStruct runs validator tags and returns one readable line per field
func validateStruct(v any) []string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, describeFieldError(fe))
	}
	return details
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// requestError rejects a malformed or invalid request body
type requestError struct {
	message string
	details []string
}

func (e *requestError) Error() string { return e.message }

// parseBody parses the JSON body into v and validates it
func parseBody(c *fiber.Ctx, v any) error {
	if err := c.BodyParser(v); err != nil {
		return &requestError{message: "Invalid request body"}
	}
	if details := validateStruct(v); len(details) > 0 {
		return &requestError{message: "Validation failed", details: details}
	}
	return nil
}

// handleError maps domain errors onto the envelope
func handleError(c *fiber.Ctx, err error) error {
	var reqErr *requestError
	switch {
	case errors.As(err, &reqErr):
		return fail(c, fiber.StatusBadRequest, CodeValidation, reqErr.message, reqErr.details...)
	case errors.Is(err, domain.ErrInvalidID):
		return fail(c, fiber.StatusBadRequest, CodeInvalidID, "Invalid ID format")
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrProfileNotFound):
		return fail(c, fiber.StatusNotFound, CodeNotFound, notFoundMessage(err))
	case errors.Is(err, domain.ErrEmailTaken), errors.Is(err, domain.ErrDuplicateFood),
		errors.Is(err, domain.ErrDuplicateMeal):
		return fail(c, fiber.StatusConflict, CodeDuplicate, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrInvalidToken):
		return fail(c, fiber.StatusUnauthorized, CodeUnauthorized, err.Error())
	case errors.Is(err, domain.ErrInvalidMeal), errors.Is(err, domain.ErrInvalidWindow),
		errors.Is(err, domain.ErrUnsupportedImage), errors.Is(err, domain.ErrInvalidProfile):
		return fail(c, fiber.StatusBadRequest, CodeValidation, err.Error())
	case errors.Is(err, domain.ErrPredictionUnavailable):
		return fail(c, fiber.StatusBadGateway, CodeUnavailable, err.Error())
	default:
		logger.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
		return fail(c, fiber.StatusInternalServerError, CodeInternal, "Internal server error")
	}
}

func notFoundMessage(err error) string {
	if errors.Is(err, domain.ErrProfileNotFound) {
		return "User profile not found"
	}
	return "Resource not found"
}

// ErrorHandler renders errors escaping handlers with the same envelope
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := CodeInternal
		switch fe.Code {
		case fiber.StatusNotFound:
			code = CodeRouteNotFound
		case fiber.StatusBadRequest, fiber.StatusRequestEntityTooLarge:
			code = CodeValidation
		case fiber.StatusUnauthorized:
			code = CodeUnauthorized
		case fiber.StatusTooManyRequests:
			code = "RATE_LIMITED"
		}
		return fail(c, fe.Code, code, fe.Message)
	}
	return handleError(c, err)
}

// NotFound answers unknown routes
func NotFound(c *fiber.Ctx) error {
	return fail(c, fiber.StatusNotFound, CodeRouteNotFound, fmt.Sprintf("Route %s not found", c.OriginalURL()))
}
