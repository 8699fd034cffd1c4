//go:build !strata_debug

package strata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackDuplicatePushUnchecked(t *testing.T) {
	manager := NewManager()
	stack := NewStackWith(manager)
	defer stack.Close()

	var log []string
	layer := newRecordingLayer("layer", &log)

	// without the strata_debug tag a duplicate push is not detected,
	// the layer is on the stack twice and visited twice per traversal
	stack.PushLayer(layer)
	stack.PushLayer(layer)
	require.Equal(t, 2, stack.Len())

	log = nil
	stack.OnUpdate(0.016)
	require.Equal(t, []string{"layer:update", "layer:update"}, log)
}
