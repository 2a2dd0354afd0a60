package aws

import (
	"errors"

	cwltypes "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/aws/smithy-go"
)

// isNotFound checks if the error says the resource is already gone.
func isNotFound(err error) bool {
	if err == nil {
		return false
	}

	// Check for typed errors first
	var rnf *cwltypes.ResourceNotFoundException
	if errors.As(err, &rnf) {
		return true
	}

	var qdne *sqstypes.QueueDoesNotExist
	if errors.As(err, &qdne) {
		return true
	}

	// Fall back to API error code checking; SQS still reports the legacy
	// query-protocol code on some endpoints.
	return hasErrorCode(err,
		"ResourceNotFoundException",
		"QueueDoesNotExist",
		"AWS.SimpleQueueService.NonExistentQueue",
	)
}

// hasErrorCode checks if err is an AWS API error with one of the given codes.
func hasErrorCode(err error, codes ...string) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	code := apiErr.ErrorCode()
	for _, c := range codes {
		if code == c {
			return true
		}
	}
	return false
}
