package shared

import (
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

var jsonAPI = sonic.Config{
	UseNumber:            true,
	EscapeHTML:           false,
	SortMapKeys:          false,
	CompactMarshaler:     true,
	NoQuoteTextMarshaler: true,
	NoNullSliceOrMap:     true,
}.Froze()

// JSONEncoder and JSONDecoder plug sonic into fiber.Config.
func JSONEncoder(v interface{}) ([]byte, error) {
	return jsonAPI.Marshal(v)
}

func JSONDecoder(data []byte, v interface{}) error {
	return jsonAPI.Unmarshal(data, v)
}

type errorBody struct {
	Error string `json:"error"`
}

var (
	notFoundBody      = mustMarshal(errorBody{Error: "Not found"})
	unauthorizedBody  = mustMarshal(errorBody{Error: "Not authenticated"})
	internalErrorBody = mustMarshal(errorBody{Error: "Internal server error"})
)

func mustMarshal(v interface{}) []byte {
	b, _ := jsonAPI.Marshal(v)
	return b
}

func ResponseJSON(c *fiber.Ctx, httpCode int, data interface{}) error {
	return c.Status(httpCode).JSON(data)
}

func ResponseOK(c *fiber.Ctx, data interface{}) error {
	return ResponseJSON(c, fiber.StatusOK, data)
}

func ResponseCreated(c *fiber.Ctx, data interface{}) error {
	return ResponseJSON(c, fiber.StatusCreated, data)
}

func ResponseError(c *fiber.Ctx, httpCode int, message string) error {
	switch {
	case httpCode == fiber.StatusNotFound && message == "Not found":
		return writeRaw(c, httpCode, notFoundBody)
	case httpCode == fiber.StatusUnauthorized && message == "Not authenticated":
		return writeRaw(c, httpCode, unauthorizedBody)
	case httpCode == fiber.StatusInternalServerError:
		return writeRaw(c, httpCode, internalErrorBody)
	}
	return ResponseJSON(c, httpCode, errorBody{Error: message})
}

func writeRaw(c *fiber.Ctx, httpCode int, body []byte) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Status(httpCode).Send(body)
}
