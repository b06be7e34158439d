// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package server exposes a diag.Logger over HTTP using the Fiber framework.
// Every POST to one of the /lines routes emits exactly one line with the request
// body as value; status routes are served under the /-/ prefix and are excluded
// from request logging.
package server
