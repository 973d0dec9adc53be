package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("join: %w", New(CodeRoomFull, "game is full"))

	assert.True(t, stderrors.Is(err, New(CodeRoomFull, "")))
	assert.False(t, stderrors.Is(err, New(CodeNotFound, "")))
	assert.True(t, Is(err, CodeRoomFull))
	assert.Equal(t, CodeRoomFull, CodeOf(err))
}

func TestCodeOfForeignError(t *testing.T) {
	assert.Equal(t, CodeInternal, CodeOf(stderrors.New("boom")))
	assert.False(t, Is(nil, CodeInternal))
	assert.Equal(t, "internal error", Public(stderrors.New("boom")))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(CodeInternal, "save snapshot", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "save snapshot: connection refused", err.Error())
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeNotFound, http.StatusNotFound},
		{CodeForbidden, http.StatusForbidden},
		{CodeInvalidState, http.StatusConflict},
		{CodeAlreadyVoted, http.StatusConflict},
		{CodeRoomFull, http.StatusConflict},
		{CodeInvalidWord, http.StatusUnprocessableEntity},
		{CodeValidation, http.StatusUnprocessableEntity},
		{CodeRateLimited, http.StatusTooManyRequests},
		{CodeInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.HTTPStatus())
		})
	}
}
