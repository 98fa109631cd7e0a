// pkg/types/types_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test symlink type parsing and outcome constructors

package types_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/ezlink/pkg/errors"
	"github.com/arthur-debert/ezlink/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSymlinkType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected types.SymlinkType
		wantErr  bool
	}{
		{name: "auto", input: "auto", expected: types.SymlinkAuto},
		{name: "empty is auto", input: "", expected: types.SymlinkAuto},
		{name: "file", input: "file", expected: types.SymlinkFile},
		{name: "file uppercase", input: "FILE", expected: types.SymlinkFile},
		{name: "dir", input: "dir", expected: types.SymlinkDirectory},
		{name: "directory", input: "directory", expected: types.SymlinkDirectory},
		{name: "unknown", input: "hard", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.ParseSymlinkType(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSymlinkTypeTextRoundTrip(t *testing.T) {
	for _, kind := range []types.SymlinkType{types.SymlinkAuto, types.SymlinkFile, types.SymlinkDirectory} {
		text, err := kind.MarshalText()
		require.NoError(t, err)

		var parsed types.SymlinkType
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, kind, parsed)
	}
}

func TestOutcomeConstructors(t *testing.T) {
	req := types.LinkRequest{Source: "/tmp/a", Destination: "/tmp/b"}

	success := types.Success("done", req, types.SymlinkDirectory)
	assert.True(t, success.IsSuccess())
	require.NotNil(t, success.LinkType)
	assert.Equal(t, types.SymlinkDirectory, *success.LinkType)

	failure := types.Failure("nope", req, errors.New(errors.ErrSourceNotFound, "missing"))
	assert.True(t, failure.IsError())
	assert.Equal(t, errors.ErrSourceNotFound, failure.Code)

	plain := types.Failure("nope", req, stderrors.New("plain"))
	assert.Equal(t, errors.ErrUnknown, plain.Code)

	pending := types.ConfirmationRequired("merge?", req)
	assert.True(t, pending.NeedsConfirmation())
	assert.Equal(t, req, pending.Request)
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "confirmation-pending", types.StateConfirmationPending.String())
	assert.Equal(t, "destination-exists", types.DestinationExists.String())
	assert.Equal(t, "confirmation_required", types.OutcomeConfirmationRequired.String())
	assert.Equal(t, "/a -> /b", types.HistoryEntry{Source: "/a", Destination: "/b"}.String())
}

func TestMergeReportSummary(t *testing.T) {
	assert.Equal(t, "0 files, 0 directories (0 B)", types.MergeReport{}.Summary())

	r := types.MergeReport{
		FilesCopied: 1,
		DirsCreated: 2,
		LinksCopied: 1,
		BytesCopied: 2000,
		Overwritten: []string{"x.txt"},
	}
	assert.Equal(t, "1 file, 2 directories, 1 link (2.0 kB), 1 overwritten", r.Summary())
}
