package errs

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
	ErrTimeout           = errors.New("timeout")
)

func NewRateLimitExceededError(retryAfter time.Duration) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusTooManyRequests,
		err:        ErrRateLimitExceeded,
		Details:    fmt.Sprintf("Too many requests, retry in %s", retryAfter.Round(time.Second)),
	}
}

func NewTimeoutError(operation string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusRequestTimeout,
		err:        ErrTimeout,
		Details:    fmt.Sprintf("%s did not complete in time", operation),
		Cause:      cause,
	}
}

func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}
