package filesystem_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/temirov/aoc/internal/filesystem"
)

func TestParseToken(t *testing.T) {
	testCases := []struct {
		name     string
		line     string
		expected filesystem.Token
	}{
		{name: "cd root", line: "$ cd /", expected: filesystem.ChangeDirectory("/")},
		{name: "cd parent", line: "$ cd ..", expected: filesystem.ChangeDirectory("..")},
		{name: "cd child", line: "$ cd a", expected: filesystem.ChangeDirectory("a")},
		{name: "ls", line: "$ ls", expected: filesystem.List()},
		{name: "dir", line: "dir d", expected: filesystem.DirectoryEntry("d")},
		{name: "file", line: "14848514 b.txt", expected: filesystem.FileEntry("b.txt", 14848514)},
		{name: "empty file", line: "0 empty", expected: filesystem.FileEntry("empty", 0)},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			token, parseError := filesystem.ParseToken(testCase.line)
			if parseError != nil {
				t.Fatalf("ParseToken(%q) error: %v", testCase.line, parseError)
			}
			if token != testCase.expected {
				t.Fatalf("ParseToken(%q) = %+v, want %+v", testCase.line, token, testCase.expected)
			}
			if token.String() != testCase.line {
				t.Fatalf("round trip of %q produced %q", testCase.line, token.String())
			}
		})
	}
}

func TestParseTokenRejectsMalformedLines(t *testing.T) {
	lines := []string{
		"",
		"$",
		"$ cd",
		"$ cd a b",
		"$ ls -la",
		"$ rm x",
		"dir",
		"dir a b",
		"-5 negative",
		"+5 signed",
		"12.5 fractional",
		"abc name",
		"123",
		"123 name extra",
		"  $   ls  ",
		"$  ls",
		"$ ls ",
		"dir\ta",
		"dir  a",
		"10\tfile",
		"dir ",
		"$ cd ",
		"$ cd a/b",
		"$ cd .",
		"dir a/b",
		"dir ..",
		"10 a/b",
		"10 /",
	}
	for _, line := range lines {
		_, parseError := filesystem.ParseToken(line)
		if !errors.Is(parseError, filesystem.ErrParse) {
			t.Fatalf("ParseToken(%q) = %v, want ErrParse", line, parseError)
		}
		var typedError *filesystem.ParseError
		if !errors.As(parseError, &typedError) || typedError.Line != line {
			t.Fatalf("ParseToken(%q) did not identify the offending line: %v", line, parseError)
		}
	}
}

func TestParseTokenSizeErrorKeepsCause(t *testing.T) {
	_, parseError := filesystem.ParseToken("99999999999999999999 huge")
	if !errors.Is(parseError, strconv.ErrRange) {
		t.Fatalf("expected strconv.ErrRange in chain, got %v", parseError)
	}
}

func TestParseTranscriptReportsLineNumber(t *testing.T) {
	_, parseError := filesystem.ParseTranscript("$ cd /\n$ ls\nbogus line here\n")
	var typedError *filesystem.ParseError
	if !errors.As(parseError, &typedError) {
		t.Fatalf("expected *ParseError, got %v", parseError)
	}
	if typedError.LineNumber != 3 {
		t.Fatalf("line number = %d, want 3", typedError.LineNumber)
	}
}

func TestParseTranscriptAcceptsCRLF(t *testing.T) {
	tokens, parseError := filesystem.ParseTranscript("$ cd /\r\n$ ls\r\n10 a\r\n")
	if parseError != nil {
		t.Fatalf("ParseTranscript error: %v", parseError)
	}
	if len(tokens) != 3 || tokens[2] != filesystem.FileEntry("a", 10) {
		t.Fatalf("unexpected tokens: %+v", tokens)
	}
}
