package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handleTurnUC "github.com/m04kA/SMC-ParkingService/internal/usecase/handle_turn"
)

type echoTurns struct {
	messages []string
}

func (e *echoTurns) Execute(_ context.Context, req *handleTurnUC.Request) (*handleTurnUC.Response, error) {
	e.messages = append(e.messages, req.Message)
	return &handleTurnUC.Response{Route: handleTurnUC.RouteGeneralQuery, Reply: "echo " + req.Message}, nil
}

func TestChat(t *testing.T) {
	turns := &echoTurns{}
	var out bytes.Buffer

	err := chat(context.Background(), turns, strings.NewReader("hello\n\n  \nstatus of 1\nQUIT\nignored\n"), &out)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.String(), banner+"\nYou: "), out.String())
	assert.Equal(t, []string{"hello", "status of 1"}, turns.messages)
	assert.Contains(t, out.String(), "Assistant: echo hello")
	assert.Contains(t, out.String(), "Goodbye.")
}

func TestChat_EOF(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, chat(context.Background(), &echoTurns{}, strings.NewReader("hi"), &out))
	assert.Contains(t, out.String(), "Assistant: echo hi")
}
