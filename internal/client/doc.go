// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Domy v Itálii

// Package client implements the interactive portal client runtime.
//
// It wires the terminal UI, the portal adapter, the local SQLite store
// and the session observer into a single process lifecycle.
package client
