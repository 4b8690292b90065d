package errors

import "google.golang.org/grpc/codes"

func Unknown() ErrorResponse {
	return New("Unknown error occurred", codes.Unknown, nil).WithReason("unknown")
}
func InvalidArgument() ErrorResponse {
	return New("Invalid argument", codes.InvalidArgument, nil).WithReason("invalid_argument")
}
func Internal() ErrorResponse {
	return New("Internal error", codes.Internal, nil).WithReason("internal")
}

func ValidationFields(fields map[string]string) ErrorResponse {
	return InvalidArgument().WithReason("validation_failed").WithDetails(fields).WithViolations(ViolationsFromMap(fields))
}

func ValidationViolations(v []FieldViolation) ErrorResponse {
	return InvalidArgument().WithReason("validation_failed").WithViolations(v)
}
