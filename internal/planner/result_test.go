package planner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResult_Success(t *testing.T) {
	req := baseRequest()
	req.Payloads = payloads(2)

	res, err := NewResult(Generate(req))
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Len(t, res.Sessions, 2)
	assert.Equal(t, 2, res.Requested)
	assert.Empty(t, res.ErrorKind)
}

func TestNewResult_Failure(t *testing.T) {
	req := baseRequest()
	req.Timetable = nil

	res, err := NewResult(Generate(req))
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Equal(t, KindNoActiveTimetable, res.ErrorKind)
	assert.NotEmpty(t, res.Message)
}

func TestNewResult_InternalError(t *testing.T) {
	boom := errors.New("boom")

	_, err := NewResult(nil, boom)
	assert.ErrorIs(t, err, boom)
}
