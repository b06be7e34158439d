// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package fake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartAndStop(t *testing.T) {
	t.Parallel()

	server := NewFakeServer(t)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start()
	}()

	<-server.StartedServer()
	require.NoError(t, server.Stop())
	<-server.StoppedServer()
	assert.NoError(t, <-errChan)

	// stopping twice must not panic
	assert.NoError(t, server.Stop())
}

func TestStartError(t *testing.T) {
	t.Parallel()

	server := NewFakeServer(t)
	server.StartErr = assert.AnError

	assert.ErrorIs(t, server.Start(), assert.AnError)
	<-server.StartedServer()
}
