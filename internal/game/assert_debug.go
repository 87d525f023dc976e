//go:build crawldebug

package game

const debugAssertions = true
