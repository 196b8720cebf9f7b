package render

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// ResponseErrorMessageAsHint internal error msg as hint
var ResponseErrorMessageAsHint bool

func init() {
	v := os.Getenv("RESPONSE_ERROR_MESSAGE_AS_HINT")
	ResponseErrorMessageAsHint, _ = strconv.ParseBool(v)
}

type wrapResponse struct {
	status int
	header http.Header
	buf    *bytes.Buffer
}

func (w *wrapResponse) Header() http.Header {
	return w.header
}

func (w *wrapResponse) WriteHeader(statusCode int) {
	w.status = statusCode
}

func (w *wrapResponse) Write(data []byte) (int, error) {
	return w.buf.Write(data)
}

func (w *wrapResponse) isJsonContent() bool {
	typ := w.header.Get("Content-Type")
	return strings.HasPrefix(typ, "application/json")
}

type dataResponse struct {
	Data json.RawMessage `json:"data,omitempty"`
}

type errorResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Hint string `json:"hint,omitempty"`
}

// WrapResponse wraps successful json bodies as {"data": body}
func WrapResponse(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		wr := &wrapResponse{
			status: http.StatusOK,
			header: w.Header(),
			buf:    &bytes.Buffer{},
		}

		next.ServeHTTP(wr, r)

		body := wr.buf.Bytes()
		if wr.status < http.StatusMultipleChoices && wr.isJsonContent() && len(body) > 0 {
			data, err := json.Marshal(dataResponse{Data: bytes.TrimSpace(body)})
			if err != nil {
				logrus.WithError(err).Errorln("wrap response")
			} else {
				body = data
			}
		}

		w.WriteHeader(wr.status)
		if _, err := w.Write(body); err != nil {
			logrus.WithError(err).Debugln("write response")
		}
	}

	return http.HandlerFunc(fn)
}
