package infra

import (
	"errors"

	"github.com/philmade/gather-shop/internal/pkg/errs"
)

type GatewayErrorKind string

// Upstream-specific error kinds. Every upstream is assumed to fail
// independently and transiently; handlers map Unavailable to a retryable
// status and NotFound to a hard rejection.
const (
	KindNotFound      GatewayErrorKind = "NOT_FOUND"
	KindUnavailable   GatewayErrorKind = "UNAVAILABLE"
	KindUpstreamError GatewayErrorKind = "UPSTREAM_ERROR"
)

type GatewayError struct {
	Kind GatewayErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e GatewayError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e GatewayError) Unwrap() error {
	return e.err
}

func WrapGatewayErr(kind GatewayErrorKind, msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return GatewayError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind GatewayErrorKind) bool {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
