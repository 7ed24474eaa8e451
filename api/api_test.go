package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirdweb-dev/chainscan/internal/common"
)

func TestParseQueryParams(t *testing.T) {
	params, err := ParseQueryParams(url.Values{"analyzed": {"true"}, "slots": {"4"}, "unrelated": {"x"}})
	require.NoError(t, err)
	assert.True(t, params.Analyzed)
	assert.Equal(t, 4, params.Slots)

	_, err = ParseQueryParams(url.Values{"analyzed": {"maybe"}})
	assert.True(t, errors.Is(err, common.ErrInvalidArgument))

	_, err = ParseQueryParams(url.Values{"count": {"-1"}})
	assert.True(t, errors.Is(err, common.ErrInvalidArgument))
}

func TestErrorHandlerStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid argument", common.NewInvalidArgumentError("parse address", "bad"), http.StatusBadRequest},
		{"not found", common.NewNotFoundError("find segment", "no segment"), http.StatusNotFound},
		{"out of range", common.NewOutOfRangeError("read", 3, 10), http.StatusNotFound},
		{"store access", common.NewStoreAccessError("read header", errors.New("disk")), http.StatusInternalServerError},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			ErrorHandler(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var body Error
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.status, body.Code)
			if tt.status == http.StatusInternalServerError {
				assert.NotContains(t, body.Message, "disk")
			}
		})
	}
}
