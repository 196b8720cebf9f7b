package render

import (
	"encoding/json"
	"net/http"

	"moneymarket/handler/codes"

	"github.com/sirupsen/logrus"
	"github.com/twitchtv/twirp"
)

type H map[string]interface{}

func write(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Errorln("render")
	}
}

// JSON render with json
func JSON(w http.ResponseWriter, v interface{}) {
	write(w, http.StatusOK, v)
}

// Error write error, status and code follow the twirp error err maps to
func Error(w http.ResponseWriter, err error) {
	twerr := codes.From(err)
	status := twirp.ServerHTTPStatusFromErrorCode(twerr.Code())

	resp := errorResponse{
		Code: codes.Code(twerr),
		Msg:  twerr.Msg(),
	}

	if status >= http.StatusInternalServerError {
		resp.Msg = http.StatusText(status)
		if ResponseErrorMessageAsHint {
			resp.Hint = twerr.Msg()
		}
	}

	write(w, status, resp)
}

// BadRequest bad request error
func BadRequest(w http.ResponseWriter, err error) {
	Error(w, codes.With(twirp.InvalidArgumentError("request", err.Error()), codes.InvalidArguments))
}

// NotFoundRequest not found request error
func NotFoundRequest(w http.ResponseWriter, err error) {
	Error(w, twirp.NotFoundError(err.Error()))
}
