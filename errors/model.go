package errors

import (
	"encoding/json"
	"sort"

	"google.golang.org/grpc/codes"
)

// Reason is a stable machine-readable code.
type Reason string

type FieldViolation struct {
	Field       string `json:"field"`
	Reason      string `json:"reason,omitempty"`
	Description string `json:"description,omitempty"`
}

// ErrorResponse is the transport-agnostic error shape handed to callers
// that need to surface a classification failure over HTTP or gRPC.
type ErrorResponse struct {
	Code       codes.Code        `json:"code"`
	Reason     Reason            `json:"reason,omitempty"`
	Domain     string            `json:"domain,omitempty"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
	Violations []FieldViolation  `json:"violations,omitempty"`
}

func New(message string, code codes.Code, details map[string]string) ErrorResponse {
	return ErrorResponse{Code: code, Message: message, Details: cloneDetails(details)}
}

func (e ErrorResponse) WithReason(r string) ErrorResponse  { e.Reason = Reason(r); return e }
func (e ErrorResponse) WithDomain(d string) ErrorResponse  { e.Domain = d; return e }
func (e ErrorResponse) WithMessage(m string) ErrorResponse { e.Message = m; return e }

func (e ErrorResponse) WithDetail(k, v string) ErrorResponse {
	details := cloneDetails(e.Details)
	if details == nil {
		details = map[string]string{}
	}
	details[k] = v
	e.Details = details
	return e
}

func (e ErrorResponse) WithDetails(m map[string]string) ErrorResponse {
	if len(m) == 0 {
		return e
	}
	details := cloneDetails(e.Details)
	if details == nil {
		details = make(map[string]string, len(m))
	}
	for k, v := range m {
		details[k] = v
	}
	e.Details = details
	return e
}

func (e ErrorResponse) WithViolations(v []FieldViolation) ErrorResponse {
	if len(v) == 0 {
		return e
	}
	e.Violations = append([]FieldViolation(nil), v...)
	return e
}

func (e ErrorResponse) Error() string {
	type out struct {
		Code       string            `json:"code"`
		Reason     Reason            `json:"reason,omitempty"`
		Domain     string            `json:"domain,omitempty"`
		Message    string            `json:"message"`
		Details    map[string]string `json:"details,omitempty"`
		Violations []FieldViolation  `json:"violations,omitempty"`
	}
	b, _ := json.Marshal(out{
		Code:       e.Code.String(),
		Reason:     e.Reason,
		Domain:     e.Domain,
		Message:    e.Message,
		Details:    e.Details,
		Violations: e.Violations,
	})
	return string(b)
}

// ViolationsFromMap builds violations ordered by field name.
func ViolationsFromMap(m map[string]string) []FieldViolation {
	if len(m) == 0 {
		return nil
	}
	fields := make([]string, 0, len(m))
	for f := range m {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	out := make([]FieldViolation, 0, len(m))
	for _, f := range fields {
		out = append(out, FieldViolation{Field: f, Reason: m[f]})
	}
	return out
}

func cloneDetails(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
