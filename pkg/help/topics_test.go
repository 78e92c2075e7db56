package help

// TEST TYPE: Unit
// DEPENDENCIES: Embedded guides
// PURPOSE: Verify topic discovery and lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicsListsEmbeddedGuides(t *testing.T) {
	topics, err := Topics()
	require.NoError(t, err)

	names := make([]string, len(topics))
	for i, topic := range topics {
		names[i] = topic.Name
	}
	assert.Contains(t, names, "conflicts")
	assert.Contains(t, names, "ordering")
	assert.Contains(t, names, "config")
	assert.IsIncreasing(t, names)
}

func TestLookupKnownTopic(t *testing.T) {
	topic, err := Lookup("conflicts")
	require.NoError(t, err)
	assert.Equal(t, "conflicts", topic.Name)
	assert.NotEmpty(t, topic.Content)
}

func TestLookupUnknownTopic(t *testing.T) {
	_, err := Lookup("nope")
	require.Error(t, err)
}

func TestTopicsCmdListsWithoutArgs(t *testing.T) {
	cmd := NewTopicsCmd()
	assert.Equal(t, "topics [topic]", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}
