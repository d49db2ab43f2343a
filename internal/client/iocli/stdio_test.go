package iocli

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStdio(input string) (*Stdio, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &Stdio{
		in:  bufio.NewReader(strings.NewReader(input)),
		out: out,
		fd:  -1, // не терминал
	}, out
}

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	assert.NotNil(t, NewStdio())
}

func TestPrintlnPrintfWrite(t *testing.T) {
	stdio, out := newTestStdio("")

	stdio.Println("hello", "world")
	stdio.Printf("test %d %s\n", 1, "abc")
	n, err := stdio.Write([]byte("raw"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.Equal(t, "hello world\ntest 1 abc\nraw", out.String())
}

func TestReadInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "several lines", input: "first\nsecond\n", expected: []string{"first", "second"}},
		{name: "crlf", input: "windows\r\n", expected: []string{"windows"}},
		{name: "no trailing newline", input: "last", expected: []string{"last"}},
		{name: "keeps inner spaces", input: "  padded value \n", expected: []string{"  padded value "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdio, out := newTestStdio(tt.input)
			for _, want := range tt.expected {
				got, err := stdio.ReadInput("Prompt: ")
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}
			assert.True(t, strings.HasPrefix(out.String(), "Prompt: "))

			_, err := stdio.ReadInput("Prompt: ")
			assert.ErrorIs(t, err, io.EOF)
		})
	}
}

// Без терминала пароль читается как обычная строка (например, из pipe)
func TestReadPassword_NotTerminal(t *testing.T) {
	stdio, out := newTestStdio("secret1\nsecret1\n")

	first, err := stdio.ReadPassword("Password: ")
	require.NoError(t, err)
	second, err := stdio.ReadPassword("Confirm password: ")
	require.NoError(t, err)

	assert.Equal(t, "secret1", first)
	assert.Equal(t, first, second)
	assert.Equal(t, "Password: Confirm password: ", out.String())
}
