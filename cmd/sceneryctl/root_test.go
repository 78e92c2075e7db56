package main

// TEST TYPE: Unit
// DEPENDENCIES: None
// PURPOSE: Verify command registration and flag wiring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdRegistersAllVerbs(t *testing.T) {
	root := NewRootCmd()

	want := []string{
		"status", "list", "on", "off", "move", "up", "down",
		"category", "rm", "apply", "reset", "conflicts",
		"edit", "genconfig", "version", "completion", "topics",
	}
	have := make(map[string]bool)
	for _, c := range root.Commands() {
		have[c.Name()] = true
	}
	for _, name := range want {
		assert.True(t, have[name], "missing command %s", name)
	}
}

func TestRootCmdGlobalFlags(t *testing.T) {
	root := NewRootCmd()

	require.NotNil(t, root.PersistentFlags().Lookup("verbose"))
	require.NotNil(t, root.PersistentFlags().Lookup("color"))
}

func TestStepCmdsTakeStepsFlag(t *testing.T) {
	up := newUpCmd()
	down := newDownCmd()

	assert.NotNil(t, up.Flags().Lookup("steps"))
	assert.NotNil(t, down.Flags().Lookup("steps"))
}
