package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/tavernkeep/dungeonmaster/internal/errors"
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
			name:     "invalid dice expression",
			code:     errors.CodeInvalidDiceExpression,
			message:  `invalid dice expression: "2x6"`,
			expected: `INVALID_DICE_EXPRESSION: invalid dice expression: "2x6"`,
		},
		{
			name:     "not started",
			code:     errors.CodeNotStarted,
			message:  "campaign has not been started",
			expected: "NOT_STARTED: campaign has not been started",
		},
		{
			name:     "snapshot format",
			code:     errors.CodeSnapshotFormat,
			message:  "save file is missing current_scene_idx",
			expected: "SNAPSHOT_FORMAT: save file is missing current_scene_idx",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.ContentFormat("scene is missing an id").
		WithMeta("scene_index", 2).
		WithMeta("path", "campaign.yaml")

	s.Assert().Equal(2, err.Meta["scene_index"])
	s.Assert().Equal("campaign.yaml", err.Meta["path"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("disk full")
	wrapped := errors.Wrap(baseErr, "failed to write save file")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to write save file", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.SnapshotFormat("missing rng_state")
	wrapped := errors.Wrap(baseErr, "failed to load save")

	s.Assert().Equal(errors.CodeSnapshotFormat, wrapped.Code)
	s.Assert().Equal("failed to load save", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("permission denied")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeIO, "failed to read campaign")

	s.Assert().Equal(errors.CodeIO, wrapped.Code)
	s.Assert().Equal("failed to read campaign", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeIO, "should be nil"))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain error")))
	s.Assert().Equal(errors.CodeNotStarted, errors.GetCode(errors.NotStarted("not started")))
}

func (s *ErrorsTestSuite) TestTypeCheckers() {
	s.Assert().True(errors.IsInvalidDiceExpression(errors.InvalidDiceExpression("bad notation")))
	s.Assert().True(errors.IsNotStarted(errors.NotStarted("call Start first")))
	s.Assert().True(errors.IsContentFormat(errors.ContentFormatf("scene %d has no id", 1)))
	s.Assert().True(errors.IsSnapshotFormat(errors.SnapshotFormat("bad save")))
	s.Assert().True(errors.IsIO(errors.IO("unreadable path")))
	s.Assert().False(errors.IsNotStarted(errors.Internal("boom")))

	// Wrapping preserves the code for the checkers.
	wrapped := errors.Wrap(errors.IO("unreadable path"), "failed to load")
	s.Assert().True(errors.IsIO(wrapped))
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	err := errors.NewValidationBuilder().
		RequiredField("Roller").
		RequiredField("Snapshots").
		Build()

	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "Roller")
	s.Assert().Contains(err.Error(), "Snapshots")

	s.Assert().Nil(errors.NewValidationBuilder().Build())
}
