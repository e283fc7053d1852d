package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractiveApprover_Confirmed(t *testing.T) {
	var out bytes.Buffer
	a := NewInteractiveApproverIO(strings.NewReader("cache\n"), &out)

	approved, err := a.RequestApproval(context.Background(), "/work/out/cache")
	require.NoError(t, err)
	assert.True(t, approved)
	assert.Contains(t, out.String(), "cache")
}

func TestInteractiveApprover_Mismatch(t *testing.T) {
	var out bytes.Buffer
	a := NewInteractiveApproverIO(strings.NewReader("wrong\n"), &out)

	approved, err := a.RequestApproval(context.Background(), "/work/out/cache")
	require.NoError(t, err)
	assert.False(t, approved)
	assert.Contains(t, out.String(), "does not match")
}

func TestInteractiveApprover_TrimsWhitespace(t *testing.T) {
	var out bytes.Buffer
	a := NewInteractiveApproverIO(strings.NewReader("  cache  \n"), &out)

	approved, err := a.RequestApproval(context.Background(), "/work/out/cache")
	require.NoError(t, err)
	assert.True(t, approved)
}

func TestInteractiveApprover_ClosedInput(t *testing.T) {
	var out bytes.Buffer
	a := NewInteractiveApproverIO(strings.NewReader(""), &out)

	approved, err := a.RequestApproval(context.Background(), "/work/out/cache")
	assert.Error(t, err)
	assert.False(t, approved)
}

func TestInteractiveApprover_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	a := NewInteractiveApproverIO(blockingReader{}, &out)

	approved, err := a.RequestApproval(ctx, "/work/out/cache")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, approved)
}

// blockingReader never returns, standing in for a user who walked away.
type blockingReader struct{}

func (blockingReader) Read(p []byte) (int, error) {
	select {}
}

func TestForcedApprover_Approves(t *testing.T) {
	var out bytes.Buffer
	a := NewForcedApproverIO(&out)

	approved, err := a.RequestApproval(context.Background(), "/work/out/cache")
	require.NoError(t, err)
	assert.True(t, approved)
	assert.Contains(t, out.String(), "--force")
}

func TestForcedApprover_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	approved, err := NewForcedApproverIO(&out).RequestApproval(ctx, "/work/out/cache")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, approved)
}
