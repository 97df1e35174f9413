package analyzer

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"larpscan/types"
)

func TestIsCodeFile(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "go source", path: "cmd/main.go", want: true},
		{name: "solidity contract", path: "contracts/Token.sol", want: true},
		{name: "uppercase extension", path: "README.MD", want: true},
		{name: "yaml config", path: "config.yml", want: true},
		{name: "gitignore", path: ".gitignore", want: true},
		{name: "image", path: "assets/logo.png", want: false},
		{name: "binary", path: "bin/widget", want: false},
		{name: "lockfile", path: "Cargo.lock", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCodeFile(tt.path))
		})
	}
}

func TestSampleFilesCapAndOrder(t *testing.T) {
	host := &fakeHost{contents: map[string]string{}}

	var files []types.FileEntry
	for i := 0; i < 60; i++ {
		url := fmt.Sprintf("https://raw.test/f%02d.go", i)
		files = append(files, types.FileEntry{
			Path:        fmt.Sprintf("f%02d.go", i),
			Kind:        types.EntryFile,
			Size:        12,
			DownloadURL: url,
		})
		host.contents[url] = "package main"
	}
	files = append(files, types.FileEntry{Path: "logo.png", Kind: types.EntryFile, Size: 12, DownloadURL: "https://raw.test/logo.png"})

	a := newTestAnalyzer(host, &fakeGenerator{})
	samples := a.sampleFiles(context.Background(), files)

	require.Len(t, samples, 50)
	for i, sample := range samples {
		assert.Equal(t, fmt.Sprintf("f%02d.go", i), sample.Path)
		assert.Equal(t, "package main", sample.Content)
	}
	assert.NotContains(t, host.fetchedURLs(), "https://raw.test/logo.png")
}

func TestSampleFilesOversize(t *testing.T) {
	host := &fakeHost{}
	files := []types.FileEntry{
		{Path: "data/blob.json", Kind: types.EntryFile, Size: 600000, DownloadURL: "https://raw.test/blob.json"},
	}

	a := newTestAnalyzer(host, &fakeGenerator{})
	samples := a.sampleFiles(context.Background(), files)

	require.Len(t, samples, 1)
	assert.Equal(t, "File too large to analyze", samples[0].Content)
	assert.Equal(t, 600000, samples[0].Size)
	assert.Empty(t, samples[0].Error)
	// oversized files never trigger a fetch
	assert.Empty(t, host.fetchedURLs())
}

func TestSampleFilesFetchFailure(t *testing.T) {
	host := &fakeHost{
		contentErrs: map[string]error{"https://raw.test/a.go": errors.New("connection reset")},
	}
	files := []types.FileEntry{
		{Path: "a.go", Kind: types.EntryFile, Size: 10, DownloadURL: "https://raw.test/a.go"},
	}

	a := newTestAnalyzer(host, &fakeGenerator{})
	samples := a.sampleFiles(context.Background(), files)

	require.Len(t, samples, 1)
	assert.Equal(t, "Error fetching content", samples[0].Content)
	assert.Contains(t, samples[0].Error, "connection reset")
}

func TestSampleFilesJSONContent(t *testing.T) {
	host := &fakeHost{
		contents:     map[string]string{"https://raw.test/package.json": "{\n  \"name\": \"widget\"\n}\n"},
		contentTypes: map[string]string{"https://raw.test/package.json": "application/json; charset=utf-8"},
	}
	files := []types.FileEntry{
		{Path: "package.json", Kind: types.EntryFile, Size: 24, DownloadURL: "https://raw.test/package.json"},
	}

	a := newTestAnalyzer(host, &fakeGenerator{})
	samples := a.sampleFiles(context.Background(), files)

	require.Len(t, samples, 1)
	assert.Equal(t, `{"name":"widget"}`, samples[0].Content)
}

func TestDecodeContent(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		contentType string
		want        string
	}{
		{name: "plain text", body: "plain body", contentType: "text/plain; charset=utf-8", want: "plain body"},
		{name: "json compacted", body: "{ \"a\": 1 }", contentType: "application/json", want: `{"a":1}`},
		{name: "malformed json passes through", body: "{ not json", contentType: "application/json", want: "{ not json"},
		{name: "no content type", body: "body", contentType: "", want: "body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeContent([]byte(tt.body), tt.contentType))
		})
	}
}
