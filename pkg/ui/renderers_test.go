// pkg/ui/renderers_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None (renders into buffers)
// PURPOSE: Test every output format renders outcomes, history, errors and messages

package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/ezlink/pkg/errors"
	"github.com/arthur-debert/ezlink/pkg/types"
	"github.com/arthur-debert/ezlink/pkg/ui"
)

var (
	request = types.LinkRequest{Source: "/data/notes", Destination: "/home/me/notes"}

	merged = func() types.Outcome {
		out := types.Success("Folders merged and symlink created successfully!", request, types.SymlinkDirectory)
		out.Merge = &types.MergeReport{FilesCopied: 2, BytesCopied: 2048}
		return out
	}()

	failed = types.Failure("Source does not exist.", request,
		errors.New(errors.ErrSourceNotFound, "Source does not exist."))

	history = []types.HistoryEntry{
		{Source: "/a", Destination: "/b"},
		{Source: "/c", Destination: "/d"},
	}
)

func render(t *testing.T, format ui.Format, fn func(r ui.Renderer) error) string {
	t.Helper()
	var buf bytes.Buffer
	r, err := ui.NewRenderer(format, &buf)
	require.NoError(t, err)
	require.NoError(t, fn(r))
	return buf.String()
}

func TestTextRenderer(t *testing.T) {
	out := render(t, ui.FormatText, func(r ui.Renderer) error { return r.RenderResult(merged) })
	assert.Equal(t, "Folders merged and symlink created successfully!\n"+
		"  /home/me/notes -> /data/notes (dir link)\n"+
		"  merged: 2 files, 0 directories (2.0 kB)\n", out)

	out = render(t, ui.FormatText, func(r ui.Renderer) error { return r.RenderResult(&failed) })
	assert.Equal(t, "Error: Source does not exist.\n", out)

	out = render(t, ui.FormatText, func(r ui.Renderer) error { return r.RenderResult(history) })
	assert.Equal(t, "Recent links:\n  1. /a -> /b\n  2. /c -> /d\n", out)

	out = render(t, ui.FormatText, func(r ui.Renderer) error { return r.RenderResult([]types.HistoryEntry{}) })
	assert.Equal(t, "No links created yet.\n", out)

	out = render(t, ui.FormatText, func(r ui.Renderer) error {
		return r.RenderError(errors.Wrap(assert.AnError, errors.ErrIO, "copy failed"))
	})
	assert.Equal(t, "Error: "+assert.AnError.Error()+"\n", out)
}

func TestTerminalRenderer(t *testing.T) {
	pending := types.ConfirmationRequired("Destination already exists.", request)

	out := render(t, ui.FormatTerminal, func(r ui.Renderer) error {
		for _, o := range []types.Outcome{merged, failed, pending} {
			if err := r.RenderResult(o); err != nil {
				return err
			}
		}
		return r.RenderResult(history)
	})

	assert.Contains(t, out, "Folders merged and symlink created successfully!")
	assert.Contains(t, out, "/data/notes")
	assert.Contains(t, out, "2.0 kB")
	assert.Contains(t, out, "Source does not exist.")
	assert.Contains(t, out, "SOURCE_NOT_FOUND")
	assert.Contains(t, out, "Destination already exists.")
	assert.Contains(t, out, "Recent links")
}

func TestJSONRenderer(t *testing.T) {
	out := render(t, ui.FormatJSON, func(r ui.Renderer) error { return r.RenderResult(merged) })

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "success", decoded["kind"])
	assert.Equal(t, true, decoded["ok"])
	assert.Equal(t, "dir", decoded["link_type"])
	assert.Equal(t, "/data/notes", decoded["source"])
	assert.Equal(t, "/home/me/notes", decoded["destination"])
	assert.NotContains(t, decoded, "code")
	require.Contains(t, decoded, "merge")
	report := decoded["merge"].(map[string]interface{})
	assert.Equal(t, "2 files, 0 directories (2.0 kB)", report["summary"])
	assert.Equal(t, float64(2), report["files_copied"])

	decoded = nil
	out = render(t, ui.FormatJSON, func(r ui.Renderer) error { return r.RenderResult(failed) })
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "error", decoded["kind"])
	assert.Equal(t, false, decoded["ok"])
	assert.Equal(t, "SOURCE_NOT_FOUND", decoded["code"])
	assert.NotContains(t, decoded, "merge")

	out = render(t, ui.FormatJSON, func(r ui.Renderer) error {
		return r.RenderError(errors.New(errors.ErrCancelled, "Operation cancelled.").WithDetail("destination", "/b"))
	})
	assert.JSONEq(t, `{"kind": "error", "ok": false, "code": "OPERATION_CANCELLED",
		"message": "Operation cancelled.", "details": {"destination": "/b"}}`, out)

	out = render(t, ui.FormatJSON, func(r ui.Renderer) error { return r.RenderResult(history) })
	assert.JSONEq(t, `{"kind": "history", "links": [
		{"source": "/a", "destination": "/b"},
		{"source": "/c", "destination": "/d"}]}`, out)

	out = render(t, ui.FormatJSON, func(r ui.Renderer) error { return r.RenderResult([]types.HistoryEntry(nil)) })
	assert.JSONEq(t, `{"kind": "history", "links": []}`, out)

	out = render(t, ui.FormatJSON, func(r ui.Renderer) error { return r.RenderMessage("hi") })
	assert.JSONEq(t, `{"kind": "message", "message": "hi"}`, out)
}

func TestYAMLRenderer(t *testing.T) {
	out := render(t, ui.FormatYAML, func(r ui.Renderer) error { return r.RenderResult(failed) })

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "error", decoded["kind"])
	assert.Equal(t, "Source does not exist.", decoded["message"])
	assert.Equal(t, "SOURCE_NOT_FOUND", decoded["code"])

	out = render(t, ui.FormatYAML, func(r ui.Renderer) error { return r.RenderResult(history) })
	var entries []map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "/c", entries[1]["source"])
}

func TestNewRenderer_AutoWithoutFile(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatAuto, &buf)
	require.NoError(t, err)
	assert.NotNil(t, r)

	_, err = ui.NewRenderer(ui.Format(99), &buf)
	assert.Error(t, err)
}
