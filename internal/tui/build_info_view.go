// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Domy v Itálii

package tui

import (
	"strings"

	"github.com/domy-v-italii/portal/models"
)

func renderBuildInfo(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Aplikace: Domy v Itálii\n")
	b.WriteString("Verze: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Datum: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))

	return renderPage("O APLIKACI", b.String(), "esc: zpět")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
