package util

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Status  int
	Message string
}

func (he *HTTPError) Error() string {
	return fmt.Sprintf("%v (statusCode=%v)", he.Message, he.Status)
}

var MalformedIdHTTPErr = HTTPError{
	Status:  http.StatusBadRequest,
	Message: "Id inválido.",
}

// Handler is a route handler that returns a JSON-serializable body or an
// HTTP error, never writes the response itself.
type Handler func(c *gin.Context) (interface{}, *HTTPError)

type HandlerOpts struct {
	// SuccessStatus defaults to 200.
	SuccessStatus int
}

// HandlerWrapper adapts a Handler to gin, centralizing response writing:
// errors become {"error": message}, values are serialized as-is.
func HandlerWrapper(handler Handler, opts *HandlerOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, httpErr := handler(c)
		if httpErr != nil {
			c.JSON(httpErr.Status, gin.H{"error": httpErr.Message})
			return
		}
		status := opts.SuccessStatus
		if status == 0 {
			status = http.StatusOK
		}
		if data == nil {
			c.Status(status)
			return
		}
		c.JSON(status, data)
	}
}

func BuildJSONBindHTTPErr(err error) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Message: "Corpo da requisição inválido.",
	}
}

func ParseId(val string) (int64, *HTTPError) {
	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, &MalformedIdHTTPErr
	}
	return id, nil
}
