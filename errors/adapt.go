package errors

import "errors"

// ToErrorResponse converts any error into an ErrorResponse.
// Supported inputs:
// - ErrorResponse / *ErrorResponse (passthrough)
// - InvariantError (field violation, InvalidArgument)
//
// Anything else is reported as Internal.
func ToErrorResponse(err error) ErrorResponse {
	if err == nil {
		return Internal().WithReason("unexpected_error")
	}

	var e ErrorResponse
	if errors.As(err, &e) {
		return e
	}

	var ep *ErrorResponse
	if errors.As(err, &ep) && ep != nil {
		return *ep
	}

	var ie InvariantError
	if !errors.As(err, &ie) {
		return Internal().WithReason("unexpected_error")
	}

	if ie.Field == "" {
		return InvalidArgument().WithReason(ie.Reason)
	}
	resp := ValidationFields(map[string]string{ie.Field: ie.Reason})
	if ie.Base != nil {
		resp = resp.WithMessage(ie.Base.Error())
	}
	return resp
}
