package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestLoggerRecordsRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	orig := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = orig }()

	r := gin.New()
	r.Use(Logger())
	r.GET("/fail", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "no")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail?x=1", nil))

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"path":"/fail"`)
	assert.Contains(t, buf.String(), `"raw":"x=1"`)
	assert.Contains(t, buf.String(), `"status":500`)
}
