// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Domy v Itálii

package server

import "errors"

var (
	errNoHandler = errors.New("no handler to serve")
)
