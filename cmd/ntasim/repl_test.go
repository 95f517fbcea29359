package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rendezvousScenario = `
name: rendezvous
seed: 7
channels:
  - name: ch
templates:
  - name: Sender
    locations:
      - name: Idle
        initial: true
      - name: Sent
    edges:
      - from: Idle
        to: Sent
        sync_channel: ch
        sync_emit: true
  - name: Receiver
    locations:
      - name: Idle
        initial: true
      - name: Got
    edges:
      - from: Idle
        to: Got
        sync_channel: ch
`

func writeScenario(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func runSession(t *testing.T, script string) (string, string, int) {
	t.Helper()
	var out, errOut bytes.Buffer
	repl := NewREPL(&out, &errOut, nil)
	code := repl.Run(strings.NewReader(script))
	return out.String(), errOut.String(), code
}

func TestREPL_LoadAndState(t *testing.T) {
	path := writeScenario(t, rendezvousScenario)
	out, errOut, code := runSession(t, "load "+path+"\nstate\nx\n")

	assert.Equal(t, 0, code)
	assert.Empty(t, errOut)
	assert.Contains(t, out, `loaded "rendezvous" (seed 7)`)
	assert.Contains(t, out, "Sender @ Idle")
	assert.Contains(t, out, "Receiver @ Idle")
	assert.Contains(t, out, "t0:")
}

func TestREPL_FireAndSeq(t *testing.T) {
	path := writeScenario(t, rendezvousScenario)
	out, _, code := runSession(t, "load "+path+"\nt0\nseq\nq\n")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Sender @ Sent")
	assert.Contains(t, out, "Receiver @ Got")
	assert.Contains(t, out, "--- step 1 ---")
}

func TestREPL_BackAndForward(t *testing.T) {
	path := writeScenario(t, rendezvousScenario)
	out, errOut, code := runSession(t, "load "+path+"\nt0\nb\nstate\nf\nstate\nx\n")

	assert.Equal(t, 0, code)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "Sender @ Idle")
	assert.Contains(t, out, "Sender @ Sent")
}

func TestREPL_RandomAdvancesUntilDeadlock(t *testing.T) {
	path := writeScenario(t, rendezvousScenario)
	out, errOut, code := runSession(t, "load "+path+"\nr 5\nx\n")

	assert.Equal(t, 0, code)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "(no enabled transitions)")
}

func TestREPL_CommandsBeforeLoadError(t *testing.T) {
	_, errOut, code := runSession(t, "state\nt0\nb\n")

	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "no scenario loaded")
}

func TestREPL_BadPathReportsErrorAndContinues(t *testing.T) {
	out, errOut, code := runSession(t, "load /no/such/file.yaml\nstate\n")

	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "load:")
	assert.Contains(t, errOut, "no scenario loaded")
	assert.Equal(t, strings.Repeat("ntasim> ", 3), out)
}

func TestREPL_UnknownCommand(t *testing.T) {
	_, errOut, code := runSession(t, "bogus\n")

	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, `unknown command "bogus"`)
}

func TestREPL_QuotedLoadPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario with spaces.yaml")
	require.NoError(t, os.WriteFile(path, []byte(rendezvousScenario), 0o644))

	out, errOut, code := runSession(t, `load "`+path+`"`+"\nstate\n")

	assert.Equal(t, 0, code)
	assert.Empty(t, errOut)
	assert.Contains(t, out, `loaded "rendezvous"`)
}
