package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"swimapi/internal/handler/httperr"
	"swimapi/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var (
	errUnsupportedMedia = errs.New("unsupported media type")
	errNotJSONObject    = errs.New("body is not a JSON object")
)

// decodeBody enforces the media-type contract before any validation or
// store access: a non-JSON content type or unparseable payload is 415, a
// parseable payload that is not an object is left for the 400 path.
func decodeBody(c *gin.Context) (map[string]any, error) {
	if c.ContentType() != "application/json" {
		return nil, errUnsupportedMedia
	}

	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, errUnsupportedMedia
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errUnsupportedMedia
	}

	doc, ok := raw.(map[string]any)
	if !ok {
		return nil, errNotJSONObject
	}
	return doc, nil
}

func abortBodyError(c *gin.Context, err error) {
	if errors.Is(err, errNotJSONObject) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Request body must be a JSON object.", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusUnsupportedMediaType, err, "Request content type must be application/json.", nil)
}

// parseID reads the numeric path parameter. A non-numeric id cannot name any
// row, so it reports 404 with the offending value, mirroring typed route
// converters.
func parseID(c *gin.Context, entity string) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, entity+" "+raw+" not found.", nil)
		return 0, false
	}
	return id, true
}
