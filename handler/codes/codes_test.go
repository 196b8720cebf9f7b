package codes

import (
	"errors"
	"fmt"
	"testing"

	"moneymarket/core"

	"github.com/stretchr/testify/assert"
	"github.com/twitchtv/twirp"
)

func TestFrom(t *testing.T) {
	for _, c := range []struct {
		err    error
		status twirp.ErrorCode
		code   int
	}{
		{core.ErrUnauthorized, twirp.Unauthenticated, 100001},
		{core.ErrUnsupportedToken, twirp.NotFound, 100103},
		{core.ErrNotEnoughCollateral, twirp.InvalidArgument, 100106},
		{fmt.Errorf("borrow: %w", core.ErrNotEnoughLiquidity), twirp.InvalidArgument, 100107},
		{errors.New("disk full"), twirp.Internal, 500},
	} {
		twerr := From(c.err)
		assert.Equal(t, c.status, twerr.Code(), c.err.Error())
		assert.Equal(t, c.code, Code(twerr), c.err.Error())
	}
}

func TestWith(t *testing.T) {
	twerr := With(twirp.InvalidArgumentError("limit", "too large"), InvalidArguments).(twirp.Error)
	assert.Equal(t, InvalidArguments, Code(twerr))
	assert.Equal(t, twirp.InvalidArgument, twerr.Code())
}
