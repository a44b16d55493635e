package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/cloudpower/site-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

// DefaultMessage is used when a handler passes an empty message
const DefaultMessage = "操作成功"

// TimestampLayout is the display format of createdAt/updatedAt
const TimestampLayout = "2006-01-02 15:04"

// Response is the envelope of every JSON response
type Response struct {
	Success bool        `json:"success"`
	Result  interface{} `json:"result"`
	Message string      `json:"message"`
}

var displayLocation atomic.Pointer[time.Location]

func init() {
	loc, err := time.LoadLocation("Asia/Taipei")
	if err != nil {
		loc = time.FixedZone("CST", 8*60*60)
	}
	displayLocation.Store(loc)
}

// SetDisplayLocation sets the timezone timestamps are rendered in
func SetDisplayLocation(loc *time.Location) {
	if loc != nil {
		displayLocation.Store(loc)
	}
}

// Success renders payload inside the success envelope after rewriting
// its timestamps for display.
func Success(c *gin.Context, status int, message string, payload interface{}) {
	result, err := FormatTimestamps(payload)
	if err != nil {
		Fail(c, Internal(err))
		return
	}
	if message == "" {
		message = DefaultMessage
	}
	c.JSON(status, Response{Success: true, Result: result, Message: message})
}

// OK is Success with 200
func OK(c *gin.Context, message string, payload interface{}) {
	Success(c, http.StatusOK, message, payload)
}

// Created is Success with 201
func Created(c *gin.Context, message string, payload interface{}) {
	Success(c, http.StatusCreated, message, payload)
}

// Fail renders err inside the error envelope and aborts the chain.
// Errors that are not AppErrors become a generic 500.
func Fail(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = Internal(err)
	}

	message := appErr.Message
	if appErr.Status >= http.StatusInternalServerError {
		logger.GetLogger().Error().
			Err(appErr.Err).
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
		message = InternalMessage
	}

	c.AbortWithStatusJSON(appErr.Status, Response{Success: false, Result: nil, Message: message})
}

// FormatTimestamps returns a JSON tree equal to payload with every
// createdAt/updatedAt string rewritten to TimestampLayout in the display
// timezone. Other values, numbers included, pass through unchanged.
func FormatTimestamps(payload interface{}) (interface{}, error) {
	if payload == nil {
		return nil, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var tree interface{}
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}
	return rewriteTimestamps(tree, displayLocation.Load()), nil
}

func rewriteTimestamps(node interface{}, loc *time.Location) interface{} {
	switch n := node.(type) {
	case map[string]interface{}:
		for key, val := range n {
			if key == "createdAt" || key == "updatedAt" {
				if s, ok := val.(string); ok {
					if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
						n[key] = t.In(loc).Format(TimestampLayout)
						continue
					}
				}
			}
			n[key] = rewriteTimestamps(val, loc)
		}
	case []interface{}:
		for i := range n {
			n[i] = rewriteTimestamps(n[i], loc)
		}
	}
	return node
}
