package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-idle/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "save not found",
			expected: "NOT_FOUND: save not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "unknown weapon type",
			expected: "INVALID_ARGUMENT: unknown weapon type",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("item not in inventory").
		WithMeta("item_id", "sword_1").
		WithMeta("character_id", "char_1")

	s.Equal("sword_1", err.Meta["item_id"])
	s.Equal("char_1", err.Meta["character_id"])
}

func (s *ErrorsTestSuite) TestWrap() {
	base := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(base, "failed to save game")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("INTERNAL: failed to save game: connection refused", wrapped.Error())
	s.ErrorIs(wrapped, base)
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	base := errors.NotFound("save not found").WithMeta("slot", "default")
	wrapped := errors.Wrap(base, "failed to load game")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("default", wrapped.Meta["slot"])
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	base := errors.NotFound("missing field").WithMeta("field", "level")
	wrapped := errors.WrapWithCode(base, errors.CodeDataLoss, "corrupt snapshot")

	s.Equal(errors.CodeDataLoss, wrapped.Code)
	s.Equal("level", wrapped.Meta["field"])

	// Metadata is copied, not shared.
	wrapped.WithMeta("field", "changed")
	s.Equal("level", base.Meta["field"])
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "nothing"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeInternal, "nothing"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err := errors.Wrap(errors.FailedPrecondition("wave is locked"), "start wave")

	s.True(errors.Is(err, errors.FailedPrecondition("")))
	s.False(errors.Is(err, errors.NotFound("")))
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	s.True(errors.IsNotFound(errors.NotFoundf("slot %s", "a")))
	s.True(errors.IsInvalidArgument(errors.InvalidArgumentf("level %d", -1)))
	s.True(errors.IsAlreadyExists(errors.AlreadyExists("dup")))
	s.True(errors.IsFailedPrecondition(errors.FailedPreconditionf("wave %d locked", 3)))
	s.True(errors.IsDataLoss(errors.DataLossf("bad json: %s", "x")))
	s.True(errors.IsInternal(errors.Internal("boom")))
	s.True(errors.IsCanceled(errors.Canceled("stopped")))
	s.False(errors.IsNotFound(nil))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Equal(errors.CodeOutOfRange, errors.GetCode(errors.OutOfRangef("index %d", 9)))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	s.Equal("", errors.GetMessage(nil))
	s.Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
	s.Equal("wave is locked", errors.GetMessage(errors.FailedPrecondition("wave is locked")))
	s.Nil(errors.GetMeta(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestRecoverable() {
	s.True(errors.CodeDataLoss.Recoverable())
	s.True(errors.CodeNotFound.Recoverable())
	s.False(errors.CodeInvalidArgument.Recoverable())
	s.False(errors.CodeFailedPrecondition.Recoverable())
}
