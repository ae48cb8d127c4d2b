package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sortviz/sortviz/cmd/sortviz/commands"
)

func TestServeCommand_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := commands.NewServeCommand()

	var buf bytes.Buffer

	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"--listen", "localhost:0", "--interval", "10ms"})

	err := cmd.ExecuteContext(ctx)
	require.NoError(t, err)
}

func TestServeCommand_FlagDefaults(t *testing.T) {
	cmd := commands.NewServeCommand()

	listenFlag := cmd.Flags().Lookup("listen")
	require.NotNil(t, listenFlag)

	intervalFlag := cmd.Flags().Lookup("interval")
	require.NotNil(t, intervalFlag)
}
