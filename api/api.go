package api

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/schema"
	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/chainscan/internal/common"
)

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type QueryParams struct {
	Analyzed bool `schema:"analyzed"`
	Slots    int  `schema:"slots"`
	Count    int  `schema:"count"`
}

type QueryResponse struct {
	Data interface{} `json:"data"`
}

func writeError(c *gin.Context, message string, code int) {
	c.AbortWithStatusJSON(code, Error{Code: code, Message: message})
}

var (
	BadRequestErrorHandler = func(c *gin.Context, err error) {
		writeError(c, err.Error(), http.StatusBadRequest)
	}
	NotFoundErrorHandler = func(c *gin.Context, message string) {
		writeError(c, message, http.StatusNotFound)
	}
	InternalErrorHandler = func(c *gin.Context) {
		writeError(c, "An unexpected error occurred.", http.StatusInternalServerError)
	}
)

// ErrorHandler answers with the status matching the kind of err. Store failures are logged
// and hidden from the caller.
func ErrorHandler(c *gin.Context, err error) {
	switch common.KindOf(err) {
	case common.ErrorKindInvalidArgument:
		BadRequestErrorHandler(c, err)
	case common.ErrorKindNotFound, common.ErrorKindOutOfRange:
		NotFoundErrorHandler(c, err.Error())
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Query failed")
		_ = c.Error(err)
		InternalErrorHandler(c)
	}
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, QueryResponse{Data: data})
}

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

func ParseQueryParams(values url.Values) (QueryParams, error) {
	var params QueryParams
	if err := decoder.Decode(&params, values); err != nil {
		var multi schema.MultiError
		if errors.As(err, &multi) {
			for key := range multi {
				return QueryParams{}, common.NewInvalidArgumentError("parse query params", "invalid value for %q", key)
			}
		}
		return QueryParams{}, common.NewInvalidArgumentError("parse query params", "%v", err)
	}
	if params.Slots < 0 || params.Count < 0 {
		return QueryParams{}, common.NewInvalidArgumentError("parse query params", "counts must not be negative")
	}
	return params, nil
}
