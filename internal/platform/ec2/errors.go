package ec2

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// API error codes that indicate a nonexistent instance id.
const (
	codeInstanceNotFound  = "InvalidInstanceID.NotFound"
	codeInstanceMalformed = "InvalidInstanceID.Malformed"
)

// RegionConnectionError reports a failure to establish an EC2 session for a
// region.
type RegionConnectionError struct {
	Region string
	Err    error
}

func (e *RegionConnectionError) Error() string {
	return fmt.Sprintf("could not connect to EC2 region %q: %v", e.Region, e.Err)
}

func (e *RegionConnectionError) Unwrap() error { return e.Err }

// NotFoundError reports a lookup that matched no instances.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no instance matching %s", e.Query)
}

// AmbiguousError reports a lookup that matched more than one instance when
// exactly one was required.
type AmbiguousError struct {
	Query string
	Count int
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("expected exactly one instance matching %s, found %d", e.Query, e.Count)
}

// isAPIErrorCode checks if the error is an EC2 API error with one of the
// given codes.
func isAPIErrorCode(err error, codes ...string) bool {
	if err == nil {
		return false
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		for _, code := range codes {
			if apiErr.ErrorCode() == code {
				return true
			}
		}
	}
	return false
}

// IsNotFound checks if an error indicates an instance was not found, either
// as a directory lookup miss or as the API's unknown-id error.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return true
	}
	return isAPIErrorCode(err, codeInstanceNotFound, codeInstanceMalformed)
}
