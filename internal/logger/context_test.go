// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerInContext(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		ctx          func(*testing.T, Logger) context.Context
		expectStored bool
	}{
		"nil context returns the null logger": {
			ctx: func(*testing.T, Logger) context.Context { return nil },
		},
		"empty context returns the null logger": {
			ctx: func(t *testing.T, _ Logger) context.Context { return t.Context() },
		},
		"context with a logger returns that logger": {
			ctx:          func(t *testing.T, l Logger) context.Context { return WithContext(t.Context(), l) },
			expectStored: true,
		},
	}

	for testName, test := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()

			log := NewLogger(io.Discard)
			fromCtx := FromContext(test.ctx(t, log))
			if test.expectStored {
				assert.Equal(t, log, fromCtx)
				return
			}
			assert.Equal(t, nullLogger, fromCtx)
		})
	}
}
