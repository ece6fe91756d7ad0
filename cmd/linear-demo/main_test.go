package main

import (
	"bytes"
	"testing"

	"github.com/anchore/go-logger"
	alogrus "github.com/anchore/go-logger/adapter/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger(t *testing.T) logger.Logger {
	log, err := alogrus.New(alogrus.Config{Level: logger.DisabledLevel})
	require.NoError(t, err)
	return log
}

func TestChainDemos(t *testing.T) {
	assert := assert.New(t)
	var out bytes.Buffer
	assert.NoError(run(&out, quietLogger(t), "chain-queue"))
	assert.Equal("Queue: A -> B -> C -> D -> F\n", out.String())

	out.Reset()
	assert.NoError(run(&out, quietLogger(t), "chain-stack"))
	assert.Equal("Stack before pop: F -> D -> C -> B -> A\n"+
		"Popped: F\n"+
		"Stack after pop: D -> C -> B -> A\n", out.String())
}

func TestPriorityDemo(t *testing.T) {
	var out bytes.Buffer
	assert.NoError(t, run(&out, quietLogger(t), "priority"))
	assert.Equal(t, "A\nB\nC\nD\nF\n", out.String())
}

func TestStackAndQueueDemos(t *testing.T) {
	assert := assert.New(t)
	var out bytes.Buffer
	assert.NoError(run(&out, quietLogger(t), "stack"))
	assert.Equal("Is stack empty? true\n"+
		"Current stack: [Minecraft Skyrim DOOM Borderlands FFVII]\n"+
		"Popped game: FFVII\n"+
		"Top of stack: Borderlands\n"+
		"Search result for 'Fallout76': -1\n", out.String())

	out.Reset()
	assert.NoError(run(&out, quietLogger(t), "queue"))
	assert.Equal("Is queue empty? true\n"+
		"Current queue: [Karen Chad Steve Harold]\n"+
		"Front of queue (peek): Karen\n"+
		"Dequeued item: Karen\n"+
		"Is 'Harold' in queue? true\n"+
		"Updated queue: [Chad Steve Harold]\n", out.String())
}

func TestRunAll(t *testing.T) {
	var out bytes.Buffer
	assert.NoError(t, run(&out, quietLogger(t), ""))
	assert.Contains(t, out.String(), "Queue: A -> B -> C -> D -> F")
	assert.Contains(t, out.String(), "Updated queue:")
}

func TestUnknownDemo(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, quietLogger(t), "deque")
	assert.EqualError(t, err, `unknown demo "deque"`)
	assert.Empty(t, out.String())
}
