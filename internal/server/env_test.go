// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServerConfig(t *testing.T) {
	testCases := map[string]struct {
		env            map[string]string
		expectedConfig *Config
		expectedError  error
	}{
		"default values": {
			expectedConfig: &Config{
				DisableStartupMessage: true,
				HTTPPort:              3000,
			},
		},
		"custom values": {
			env: map[string]string{
				"HTTP_HOST":               "127.0.0.1",
				"HTTP_PORT":               "8080",
				"DISABLE_STARTUP_MESSAGE": "false",
			},
			expectedConfig: &Config{
				HTTPHost: "127.0.0.1",
				HTTPPort: 8080,
			},
		},
		"port is not a number": {
			env:           map[string]string{"HTTP_PORT": "port"},
			expectedError: ErrEnvVariablesNotValid,
		},
		"port out of range": {
			env:           map[string]string{"HTTP_PORT": "655350"},
			expectedError: ErrEnvVariablesNotValid,
		},
	}

	for testName, test := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Setenv("HTTP_HOST", "")
			t.Setenv("HTTP_PORT", "3000")
			t.Setenv("DISABLE_STARTUP_MESSAGE", "true")
			for key, value := range test.env {
				t.Setenv(key, value)
			}

			config, err := LoadServerConfig()
			if test.expectedError != nil {
				assert.ErrorIs(t, err, test.expectedError)
				assert.Nil(t, config)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expectedConfig, config)
		})
	}
}

func TestValidateEnvironmentVariables(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		port        int
		expectError bool
	}{
		"negative port":      {port: -1, expectError: true},
		"zero port":          {port: 0, expectError: true},
		"port too big":       {port: 655350, expectError: true},
		"valid port":         {port: 3000},
		"highest valid port": {port: 65535},
	}

	for testName, test := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()

			err := validateEnvironmentVariables(&Config{HTTPPort: test.port})
			if test.expectError {
				assert.ErrorIs(t, err, ErrEnvVariablesNotValid)
				return
			}
			assert.NoError(t, err)
		})
	}
}
