package core

import (
	"errors"
	"strconv"
)

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unknown
	ErrUnknown ErrorCode = 100000
	// ErrUnauthorized caller is not the required principal
	ErrUnauthorized ErrorCode = 100001
	// ErrInvalidArgument invalid argument
	ErrInvalidArgument ErrorCode = 100002

	// ErrAlreadyInitialized admin already set
	ErrAlreadyInitialized ErrorCode = 100100
	// ErrUninitialized admin not set
	ErrUninitialized ErrorCode = 100101
	// ErrPaused operations paused
	ErrPaused ErrorCode = 100102
	// ErrUnsupportedToken asset not registered
	ErrUnsupportedToken ErrorCode = 100103
	// ErrAlreadySupportedToken asset already registered
	ErrAlreadySupportedToken ErrorCode = 100104
	// ErrNotEnoughBalance not enough balance
	ErrNotEnoughBalance ErrorCode = 100105
	// ErrNotEnoughCollateral not enough collateral
	ErrNotEnoughCollateral ErrorCode = 100106
	// ErrNotEnoughLiquidity not enough liquidity
	ErrNotEnoughLiquidity ErrorCode = 100107
	// ErrNotOverLiquidationThreshold position is healthy
	ErrNotOverLiquidationThreshold ErrorCode = 100108
	// ErrMustNotHaveBorrow liquidator has outstanding debt
	ErrMustNotHaveBorrow ErrorCode = 100109
	// ErrRemainingCollateralNotEnough collateral left after toggling off would not cover the debt
	ErrRemainingCollateralNotEnough ErrorCode = 100110
	// ErrNoCollateral user has no collateral flagged
	ErrNoCollateral ErrorCode = 100111

	// ErrDivisionByZero division by zero
	ErrDivisionByZero ErrorCode = 100200
	// ErrOverflow scaled magnitude out of range
	ErrOverflow ErrorCode = 100201
)

var errorNames = map[ErrorCode]string{
	ErrUnknown:                      "unknown",
	ErrUnauthorized:                 "unauthorized",
	ErrInvalidArgument:              "invalid argument",
	ErrAlreadyInitialized:           "already initialized",
	ErrUninitialized:                "uninitialized",
	ErrPaused:                       "paused",
	ErrUnsupportedToken:             "unsupported token",
	ErrAlreadySupportedToken:        "already supported token",
	ErrNotEnoughBalance:             "not enough balance",
	ErrNotEnoughCollateral:          "not enough collateral",
	ErrNotEnoughLiquidity:           "not enough liquidity",
	ErrNotOverLiquidationThreshold:  "not over liquidation threshold",
	ErrMustNotHaveBorrow:            "must not have borrow",
	ErrRemainingCollateralNotEnough: "remaining collateral not enough",
	ErrNoCollateral:                 "no collateral",
	ErrDivisionByZero:               "division by zero",
	ErrOverflow:                     "overflow",
}

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	if name, ok := errorNames[e]; ok {
		return name
	}

	return e.String()
}

// IsErrorCode reports whether err is one of the domain error codes
func IsErrorCode(err error) (ErrorCode, bool) {
	var code ErrorCode
	if errors.As(err, &code) {
		return code, true
	}

	return 0, false
}
