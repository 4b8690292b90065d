package errors

import (
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const violationReasonMetadataPrefix = "_errors.violation_reason."

// ToGRPC renders e as a status error carrying ErrorInfo and, for
// InvalidArgument with violations, BadRequest details.
func (e ErrorResponse) ToGRPC() error {
	st := status.New(e.Code, e.Message)

	metadata := cloneDetails(e.Details)
	for _, v := range e.Violations {
		if v.Field == "" || v.Reason == "" {
			continue
		}
		if metadata == nil {
			metadata = map[string]string{}
		}
		metadata[violationReasonMetadataPrefix+v.Field] = v.Reason
	}

	if e.Reason != "" || len(metadata) > 0 || e.Domain != "" {
		ei := &errdetails.ErrorInfo{
			Reason:   string(e.Reason),
			Domain:   e.Domain,
			Metadata: metadata,
		}
		if st2, err := st.WithDetails(ei); err == nil {
			st = st2
		}
	}

	if len(e.Violations) > 0 && e.Code == codes.InvalidArgument {
		br := &errdetails.BadRequest{
			FieldViolations: make([]*errdetails.BadRequest_FieldViolation, 0, len(e.Violations)),
		}
		for _, v := range e.Violations {
			desc := v.Description
			if desc == "" {
				desc = v.Reason
			}
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       v.Field,
				Description: desc,
			})
		}
		if st2, err := st.WithDetails(br); err == nil {
			st = st2
		}
	}

	return st.Err()
}

// FromGRPC is the inverse of ToGRPC. Non-status errors map to Unknown.
func FromGRPC(err error) ErrorResponse {
	st, ok := status.FromError(err)
	if !ok {
		return Unknown()
	}
	out := New(st.Message(), st.Code(), nil)
	var violationReasons map[string]string
	for _, d := range st.Details() {
		switch x := d.(type) {
		case *errdetails.ErrorInfo:
			if x.GetReason() != "" {
				out.Reason = Reason(x.GetReason())
			}
			if dom := x.GetDomain(); dom != "" {
				out.Domain = dom
			}
			details := map[string]string{}
			for k, v := range x.GetMetadata() {
				field, isViolation := strings.CutPrefix(k, violationReasonMetadataPrefix)
				if !isViolation {
					details[k] = v
					continue
				}
				if field == "" {
					continue
				}
				if violationReasons == nil {
					violationReasons = map[string]string{}
				}
				violationReasons[field] = v
			}
			out = out.WithDetails(details)
		case *errdetails.BadRequest:
			vs := make([]FieldViolation, 0, len(x.GetFieldViolations()))
			for _, fv := range x.GetFieldViolations() {
				vs = append(vs, FieldViolation{Field: fv.GetField(), Description: fv.GetDescription()})
			}
			out.Violations = vs
		}
	}
	// ErrorInfo and BadRequest may arrive in either order.
	for i := range out.Violations {
		out.Violations[i].Reason = violationReasons[out.Violations[i].Field]
	}
	return out
}
