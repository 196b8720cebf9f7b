package id

import (
	"strconv"

	foxuuid "github.com/fox-one/pkg/uuid"
	"github.com/gofrs/uuid"
)

// GenTraceID new random trace id
func GenTraceID() string {
	return uuid.Must(uuid.NewV4()).String()
}

// SubTraceID deterministic trace id of the idx-th record under trace
func SubTraceID(trace string, idx int) string {
	return foxuuid.Modify(trace, strconv.Itoa(idx))
}
