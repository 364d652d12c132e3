package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetMultiline_DoubleEnter(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("a\nb\n\n\n"), "Enter text", &out)
	if err != nil {
		t.Fatal(err)
	}
	want := "a\nb"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetPassword(&out)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGetTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "simple list",
			input:    "go, testing\n",
			expected: []string{"go", "testing"},
		},
		{
			name:     "spaces trimmed, empties dropped",
			input:    " go ,, sql \n",
			expected: []string{"go", "sql"},
		},
		{
			name:     "empty answer gives nil",
			input:    "\n",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetTags(rdr(tt.input), &out)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestGetInt(t *testing.T) {
	var out bytes.Buffer

	got, err := GetInt(rdr("7\n"), "Page?", 0, &out)
	require.NoError(t, err)
	require.Equal(t, 7, got)

	got, err = GetInt(rdr("\n"), "Page?", 3, &out)
	require.NoError(t, err)
	require.Equal(t, 3, got, "empty answer falls back to default")

	_, err = GetInt(rdr("abc\n"), "Page?", 0, &out)
	require.Error(t, err)
}
