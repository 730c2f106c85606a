package common

import (
	"errors"
	"fmt"
	"net"

	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
)

const (
	ExitFailure = 1
	ExitInput   = 2
	ExitAuth    = 3
	ExitNetwork = 4
	ExitApi     = 5
)

type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf(
		"Error in inputs: %s",
		e.Message)
}

// AuthError means no usable credentials could be resolved, or the service rejected them.
type AuthError struct {
	Op  string
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: authentication failed: %v", e.Op, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: request failed: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

type ApiError struct {
	Op   string
	Code string
	Err  error
}

func (e *ApiError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Code, e.Err)
}

func (e *ApiError) Unwrap() error { return e.Err }

var authErrorCodes = map[string]struct{}{
	"AccessDenied":                {},
	"AccessDeniedException":       {},
	"UnrecognizedClientException": {},
	"InvalidClientTokenId":        {},
	"InvalidSignatureException":   {},
	"SignatureDoesNotMatch":       {},
	"ExpiredToken":                {},
	"ExpiredTokenException":       {},
	"MissingAuthenticationToken":  {},
	"UnauthorizedOperation":       {},
}

// Classify maps an error returned by an AWS call onto AuthError, NetworkError or ApiError.
// Errors already classified are returned unchanged.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var (
		authErr    *AuthError
		networkErr *NetworkError
		apiErr     *ApiError
	)
	if errors.As(err, &authErr) || errors.As(err, &networkErr) || errors.As(err, &apiErr) {
		return err
	}

	var smithyErr smithy.APIError
	if errors.As(err, &smithyErr) {
		if _, ok := authErrorCodes[smithyErr.ErrorCode()]; ok {
			return &AuthError{Op: op, Err: err}
		}
		return &ApiError{Op: op, Code: smithyErr.ErrorCode(), Err: err}
	}

	var sendErr *smithyhttp.RequestSendError
	if errors.As(err, &sendErr) {
		return &NetworkError{Op: op, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return &NetworkError{Op: op, Err: err}
	}
	return &ApiError{Op: op, Err: err}
}

func ExitCode(err error) int {
	var (
		inputErr   *InputError
		authErr    *AuthError
		networkErr *NetworkError
		apiErr     *ApiError
	)
	switch {
	case err == nil:
		return 0
	case errors.As(err, &inputErr):
		return ExitInput
	case errors.As(err, &authErr):
		return ExitAuth
	case errors.As(err, &networkErr):
		return ExitNetwork
	case errors.As(err, &apiErr):
		return ExitApi
	}
	return ExitFailure
}
