package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/depcache/internal/adapters/scanner"
)

func TestScanDirectives(t *testing.T) {
	src := []byte(`// leading comment
#pragma once
#include "local.h"
#  include <vector>
#include_next <stdio.h>
#import "objc.h"
#include CONFIG_HEADER
#include "unclosed.h
#includes "not-a-directive.h"
#define CONFIG_HEADER "config.h"
#define ALIAS CONFIG_HEADER
#define FN(x) <fn.h>
#define PLAIN 42
#ifdef FEATURE_A
#elif defined(FEATURE_B) && VERSION > 2 // trailing
#endif
#ifndef GUARD_H
#undef LEGACY
#if __has_include(<optional>) || 1
#endif
int x = FEATURE_C;
`)

	d := scanner.ScanDirectives(src)

	assert.Equal(t, []scanner.Include{
		{Spec: `"local.h"`},
		{Spec: `<vector>`},
		{Spec: `<stdio.h>`, Next: true},
		{Spec: `"objc.h"`},
		{Spec: `CONFIG_HEADER`},
	}, d.Includes)

	assert.Equal(t, map[string][]string{
		"CONFIG_HEADER": {`"config.h"`},
		"ALIAS":         {"CONFIG_HEADER"},
	}, d.Defines)

	assert.Equal(t, []string{
		"CONFIG_HEADER", "FEATURE_A", "FEATURE_B", "VERSION", "GUARD_H", "LEGACY",
	}, d.Macros)
}

func TestScanDirectives_Empty(t *testing.T) {
	d := scanner.ScanDirectives(nil)
	assert.Empty(t, d.Includes)
	assert.Empty(t, d.Macros)
}

func TestInclude_Quoted(t *testing.T) {
	assert.True(t, scanner.Include{Spec: `"a.h"`}.Quoted())
	assert.False(t, scanner.Include{Spec: `<a.h>`}.Quoted())
}

func TestScanDirectives_ContinuedLines(t *testing.T) {
	src := []byte("#if defined(A) \\\n    || defined(B)\n#endif\n" +
		"#define HEADER \\\r\n  \"continued.h\"\n" +
		"#include \\\n  HEADER\n")

	d := scanner.ScanDirectives(src)

	assert.Equal(t, []string{"A", "B", "HEADER"}, d.Macros)
	assert.Equal(t, map[string][]string{"HEADER": {`"continued.h"`}}, d.Defines)
	assert.Equal(t, []scanner.Include{{Spec: "HEADER"}}, d.Includes)
}

func TestScanDirectives_CommentMarkersInOperand(t *testing.T) {
	src := []byte(`#include "gen//out.h" // generated
#include <sys/*arch*/types.h>
#define PATH "a//b.h" /* alias */
`)

	d := scanner.ScanDirectives(src)

	assert.Equal(t, []scanner.Include{
		{Spec: `"gen//out.h"`},
		{Spec: `<sys/*arch*/types.h>`},
	}, d.Includes)
	assert.Equal(t, map[string][]string{"PATH": {`"a//b.h"`}}, d.Defines)
}
