package codes

import (
	"strconv"

	"moneymarket/core"

	"github.com/twitchtv/twirp"
)

const (
	// CustomCodeKey code key
	CustomCodeKey = "custom_code"

	// InvalidArguments invalid arguments
	InvalidArguments = int(core.ErrInvalidArgument)
)

// With with specified error
func With(err error, code int) error {
	twerr, ok := err.(twirp.Error)
	if !ok {
		twerr = twirp.InternalErrorWith(err)
	}

	return twerr.WithMeta(CustomCodeKey, strconv.Itoa(code))
}

// Get get error code
func Get(code twirp.ErrorCode) int {
	switch code {
	case twirp.InvalidArgument:
		return InvalidArguments
	default:
		return twirp.ServerHTTPStatusFromErrorCode(code)
	}
}

// From converts a service error into a twirp error carrying its numeric code
func From(err error) twirp.Error {
	if twerr, ok := err.(twirp.Error); ok {
		return twerr
	}

	code, ok := core.IsErrorCode(err)
	if !ok {
		return twirp.InternalErrorWith(err)
	}

	var twerr twirp.Error
	switch code {
	case core.ErrUnauthorized:
		twerr = twirp.NewError(twirp.Unauthenticated, code.Error())
	case core.ErrUnsupportedToken:
		twerr = twirp.NewError(twirp.NotFound, code.Error())
	default:
		twerr = twirp.NewError(twirp.InvalidArgument, code.Error())
	}

	return twerr.WithMeta(CustomCodeKey, strconv.Itoa(int(code)))
}

// Code numeric code of twerr, the custom code when present
func Code(twerr twirp.Error) int {
	if v := twerr.Meta(CustomCodeKey); v != "" {
		if code, err := strconv.Atoi(v); err == nil {
			return code
		}
	}

	return Get(twerr.Code())
}
