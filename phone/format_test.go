package phone

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	errs "github.com/vortex-fintech/zimphone/errors"
)

func TestFormatLocal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "0772123456", want: "0772123456"},
		{in: "+263772123456", want: "0772123456"},
		{in: "263772123456", want: "0772123456"},
		{in: "077 212 3456", want: "0772123456"},
		{in: "0242123456", want: "0242123456"},
		{in: "+263242123456", want: "0242123456"},
		{in: "263242123456", want: "0242123456"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := FormatLocal(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFormatInternational(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "0772123456", want: "+263772123456"},
		{in: "+263772123456", want: "+263772123456"},
		{in: "263772123456", want: "+263772123456"},
		{in: "0242123456", want: "+263242123456"},
		{in: "+263242123456", want: "+263242123456"},
		{in: "263242123456", want: "+263242123456"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := FormatInternational(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFormatBoth(t *testing.T) {
	got, err := FormatBoth("0772123456")
	require.NoError(t, err)
	require.Equal(t, Formats{Local: "0772123456", International: "+263772123456"}, got)
}

func TestFormat_InvalidNumber(t *testing.T) {
	_, err := FormatLocal("invalid")
	require.ErrorIs(t, err, ErrInvalidNumber)
	require.Contains(t, err.Error(), "invalid phone number provided")

	_, err = FormatInternational("invalid")
	require.ErrorIs(t, err, ErrInvalidNumber)

	both, err := FormatBoth("invalid")
	require.ErrorIs(t, err, ErrInvalidNumber)
	require.Equal(t, Formats{}, both)

	_, err = FormatLocal("")
	require.ErrorIs(t, err, ErrInvalidNumber)
}

func TestFormat_InvalidNumberIsFieldViolation(t *testing.T) {
	_, err := FormatLocal("0792123456")
	require.True(t, errs.IsInvariant(err))

	resp := errs.ToErrorResponse(err)
	assert.Equal(t, codes.InvalidArgument, resp.Code)
	assert.Equal(t, errs.Reason("validation_failed"), resp.Reason)
	assert.Equal(t, "invalid_number", resp.Details["number"])
	assert.Equal(t, ErrInvalidNumber.Error(), resp.Message)
}

func TestFormat_Idempotent(t *testing.T) {
	for _, in := range []string{"0772123456", "+263 71 212 3456", "(024) 212-3456", "263732123456"} {
		local, err := FormatLocal(in)
		require.NoError(t, err)
		intl, err := FormatInternational(in)
		require.NoError(t, err)

		again, err := FormatLocal(local)
		require.NoError(t, err)
		assert.Equal(t, local, again, in)

		fromIntl, err := FormatLocal(intl)
		require.NoError(t, err)
		assert.Equal(t, local, fromIntl, in)

		intlAgain, err := FormatInternational(intl)
		require.NoError(t, err)
		assert.Equal(t, intl, intlAgain, in)

		assert.Equal(t, ExtractCore(in), ExtractCore(local), in)
		assert.Equal(t, ExtractCore(in), ExtractCore(intl), in)
	}
}

func TestErrInvalidNumber_IsSentinel(t *testing.T) {
	_, err := FormatInternational("abc")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidNumber))
}
