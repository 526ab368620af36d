package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Success(t *testing.T) {
	res := Success(&Account{Email: "john@mail.com"})

	assert.False(t, res.IsFailure())
	require.NotNil(t, res.Value())
	assert.Equal(t, "john@mail.com", res.Value().Email)
	assert.Nil(t, res.Err())
}

func TestResult_Failure(t *testing.T) {
	res := Failure[*Account](ErrAccountNotFound("john@mail.com"))

	assert.True(t, res.IsFailure())
	assert.Nil(t, res.Value())
	require.NotNil(t, res.Err())
	assert.Equal(t, CodeAccountNotFound, res.Err().Code)
}

func TestResult_BoolPayload(t *testing.T) {
	ok := Success(true)
	assert.False(t, ok.IsFailure())
	assert.True(t, ok.Value())

	failed := Failure[bool](ErrStepDone())
	assert.True(t, failed.IsFailure())
	assert.False(t, failed.Value())
}
