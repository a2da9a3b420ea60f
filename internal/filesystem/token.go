// Package filesystem replays shell transcripts of cd/ls sessions into a
// path-indexed directory model and answers aggregate size queries over it.
package filesystem

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	commandPrompt        = "$"
	changeDirectoryWord  = "cd"
	listWord             = "ls"
	directoryEntryWord   = "dir"
	unrecognizedLineText = "unrecognized transcript line"
	invalidSizeFormat    = "invalid file size %q: %w"
	invalidNameFormat    = "invalid name %q"
	fieldSeparator       = " "
	parseErrorFormat     = "line %d %q: %v"
	parseErrorNoLine     = "%q: %v"
)

// ErrParse marks every failure to turn a transcript line into a Token.
var ErrParse = errors.New("parse error")

// TokenKind identifies which shape a transcript line has.
type TokenKind int

const (
	// TokenChangeDirectory is a "$ cd <name>" line.
	TokenChangeDirectory TokenKind = iota
	// TokenList is a "$ ls" line.
	TokenList
	// TokenDirectoryEntry is a "dir <name>" line from ls output.
	TokenDirectoryEntry
	// TokenFileEntry is a "<size> <name>" line from ls output.
	TokenFileEntry
)

// Token is one parsed transcript line. Name is empty for TokenList and Size is
// only meaningful for TokenFileEntry.
type Token struct {
	Kind TokenKind
	Name string
	Size int64
}

// ParseError reports a transcript line that does not match any token shape.
type ParseError struct {
	// LineNumber is 1-based; zero when the line was parsed in isolation.
	LineNumber int
	Line       string
	Err        error
}

func (parseError *ParseError) Error() string {
	if parseError.LineNumber > 0 {
		return fmt.Sprintf(parseErrorFormat, parseError.LineNumber, parseError.Line, parseError.Err)
	}
	return fmt.Sprintf(parseErrorNoLine, parseError.Line, parseError.Err)
}

// Unwrap exposes both ErrParse and the underlying cause.
func (parseError *ParseError) Unwrap() []error {
	return []error{ErrParse, parseError.Err}
}

// ChangeDirectory builds a cd token.
func ChangeDirectory(name string) Token {
	return Token{Kind: TokenChangeDirectory, Name: name}
}

// List builds an ls token.
func List() Token {
	return Token{Kind: TokenList}
}

// DirectoryEntry builds a dir listing token.
func DirectoryEntry(name string) Token {
	return Token{Kind: TokenDirectoryEntry, Name: name}
}

// FileEntry builds a file listing token.
func FileEntry(name string, size int64) Token {
	return Token{Kind: TokenFileEntry, Name: name, Size: size}
}

// String renders the token in its canonical transcript form.
func (token Token) String() string {
	switch token.Kind {
	case TokenChangeDirectory:
		return commandPrompt + " " + changeDirectoryWord + " " + token.Name
	case TokenList:
		return commandPrompt + " " + listWord
	case TokenDirectoryEntry:
		return directoryEntryWord + " " + token.Name
	case TokenFileEntry:
		return strconv.FormatInt(token.Size, 10) + " " + token.Name
	default:
		return fmt.Sprintf("token(%d)", int(token.Kind))
	}
}

// ParseToken converts a single transcript line into a Token. Fields are
// separated by exactly one space, and every name is a single path segment
// except the "/" and ".." targets of cd.
func ParseToken(line string) (Token, error) {
	fields := strings.Split(line, fieldSeparator)
	switch {
	case len(fields) == 3 && fields[0] == commandPrompt && fields[1] == changeDirectoryWord:
		target := fields[2]
		if target != RootPath && target != parentDirectoryName && !isSegment(target) {
			return Token{}, &ParseError{Line: line, Err: fmt.Errorf(invalidNameFormat, target)}
		}
		return ChangeDirectory(target), nil
	case len(fields) == 2 && fields[0] == commandPrompt && fields[1] == listWord:
		return List(), nil
	case len(fields) == 2 && fields[0] == directoryEntryWord:
		if !isSegment(fields[1]) {
			return Token{}, &ParseError{Line: line, Err: fmt.Errorf(invalidNameFormat, fields[1])}
		}
		return DirectoryEntry(fields[1]), nil
	case len(fields) == 2 && fields[0] != commandPrompt:
		size, sizeError := strconv.ParseUint(fields[0], 10, 63)
		if sizeError != nil {
			return Token{}, &ParseError{Line: line, Err: fmt.Errorf(invalidSizeFormat, fields[0], sizeError)}
		}
		if !isSegment(fields[1]) {
			return Token{}, &ParseError{Line: line, Err: fmt.Errorf(invalidNameFormat, fields[1])}
		}
		return FileEntry(fields[1], int64(size)), nil
	default:
		return Token{}, &ParseError{Line: line, Err: errors.New(unrecognizedLineText)}
	}
}

// isSegment reports whether name is usable as one component of a path.
func isSegment(name string) bool {
	return name != "" && name != "." && name != parentDirectoryName && !strings.Contains(name, pathSeparator)
}

// ParseTranscript tokenizes every line of a transcript. A trailing newline is
// allowed; blank lines anywhere else are rejected.
func ParseTranscript(transcript string) ([]Token, error) {
	var tokens []Token
	scanner := bufio.NewScanner(strings.NewReader(transcript))
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		token, parseError := ParseToken(line)
		if parseError != nil {
			var typedError *ParseError
			if errors.As(parseError, &typedError) {
				typedError.LineNumber = lineNumber
			}
			return nil, parseError
		}
		tokens = append(tokens, token)
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil, fmt.Errorf("reading transcript: %w", scanError)
	}
	return tokens, nil
}
