package ui

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/msto63/libmgr/internal/registry"
)

func sampleRecords() []registry.Record {
	return []registry.Record{
		{Name: "llama", Path: "/models/llama"},
		{Name: "mistral-7b", Path: "/models/mistral"},
	}
}

func TestPrinter_Messages(t *testing.T) {
	tests := []struct {
		name     string
		print    func(p *Printer)
		expected string
	}{
		{"not found", func(p *Printer) { p.NotFound("m") }, "Model 'm' not found.\n"},
		{"moved", func(p *Printer) { p.Moved("m", "/b") }, "Moved 'm' to '/b'\n"},
		{"deleted", func(p *Printer) { p.Deleted("m") }, "Deleted 'm'\n"},
		{"added", func(p *Printer) { p.Added("m", "/a") }, "Added 'm' at '/a'\n"},
		{"invalid", func(p *Printer) { p.InvalidCommand() }, "Invalid command. Use --help for more information.\n"},
		{"details", func(p *Printer) {
			p.ModelDetails(registry.Record{Name: "m", Path: "/a"})
		}, "Model Details:\nName: m\nPath: /a\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(NewPrinter(&buf, true))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestPrinter_StyledDetailsKeepText(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false).ModelDetails(registry.Record{Name: "m", Path: "/a"})

	assert.Contains(t, buf.String(), "Model Details:")
	assert.Contains(t, buf.String(), "m\n")
	assert.Contains(t, buf.String(), "/a\n")
}

func TestPrinter_RecordsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, true).Records(sampleRecords(), FormatTable))

	expected := "" +
		"MODEL       PATH\n" +
		"----------------\n" +
		"llama       /models/llama\n" +
		"mistral-7b  /models/mistral\n" +
		"\n" +
		"Total: 2 model(s)\n"
	assert.Equal(t, expected, buf.String())
}

func TestPrinter_RecordsEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, true).Records(nil, ""))

	assert.Equal(t, "No models registered.\n", buf.String())
}

func TestPrinter_RecordsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, true).Records(sampleRecords(), FormatJSON))

	var got []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []map[string]string{
		{"name": "llama", "path": "/models/llama"},
		{"name": "mistral-7b", "path": "/models/mistral"},
	}, got)
}

func TestPrinter_RecordsYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, true).Records(sampleRecords(), FormatYAML))

	var got []map[string]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "mistral-7b", got[1]["name"])
	assert.Equal(t, "/models/mistral", got[1]["path"])
}

func TestPrinter_RecordsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := NewPrinter(&buf, true).Records(sampleRecords(), "xml")

	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestPrinter_Error(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, true).Error(errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())

	buf.Reset()
	NewPrinter(&buf, false).Error(errors.New("boom"))
	assert.Contains(t, buf.String(), "Error:")
	assert.Contains(t, buf.String(), "boom\n")
}
