package resthttp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fox-one/pkg/logger"
	"github.com/go-resty/resty/v2"
)

const (
	// HeaderKeyRequestID request id header key
	headerKeyRequestID = "X-Request-Id"
)

var runOnce sync.Once
var restyClient *resty.Client

// Client resty client
func Client() *resty.Client {
	runOnce.Do(func() {
		restyClient = resty.New().
			SetHeader("Content-Type", "application/json").
			SetHeader("Charset", "utf-8").
			SetTimeout(10 * time.Second)
	})

	return restyClient
}

// Request new resty request
func Request(ctx context.Context) *resty.Request {
	return Client().R().SetContext(ctx)
}

// WithRequestID resty request with request id
func WithRequestID(ctx context.Context, requestID string) *resty.Request {
	return Request(ctx).SetHeader(headerKeyRequestID, requestID)
}

// Execute do network request and decode the json body into resp
func Execute(request *resty.Request, method, url string, body interface{}, resp interface{}) (int, error) {
	log := logger.FromContext(request.Context()).WithField("url", url)

	if body != nil {
		request = request.SetBody(body)
	}

	r, err := request.Execute(strings.ToUpper(method), url)
	if err != nil {
		log.WithError(err).Debugln("request failed")
		return r.StatusCode(), err
	}

	log.Debugln("resp.status:", r.Status())
	return r.StatusCode(), ParseResponse(r, resp)
}

// ParseResponse decode a 2xx body into obj, other statuses become errors
func ParseResponse(r *resty.Response, obj interface{}) error {
	if !r.IsSuccess() {
		return fmt.Errorf("%s: %s", r.Status(), strings.TrimSpace(string(r.Body())))
	}

	if obj == nil {
		return nil
	}

	if err := json.Unmarshal(r.Body(), obj); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}

	return nil
}
