package filesystem

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const (
	// RootPath is the absolute path of the root directory.
	RootPath = "/"

	parentDirectoryName = ".."
	pathSeparator       = "/"

	errorPopRootFormat     = "%w: cannot change to parent of %s"
	errorUnknownPathFormat = "%w: directory %s does not exist"
	errorUnknownTokenKind  = "unsupported token kind %d"
	errorInvalidNameFormat = "%w: %q is not a single path segment"
)

// ErrTraversal marks references to directories that are absent from the
// mapping, and attempts to move above the root.
var ErrTraversal = errors.New("traversal error")

// File is a single file listed in a directory.
type File struct {
	Name string
	Size int64
}

// Directory holds the direct contents of one directory. Children are names
// relative to the directory; their entries live in the owning FileSystem.
type Directory struct {
	Children []string
	Files    []File

	childNames map[string]struct{}
}

func newDirectory() *Directory {
	return &Directory{childNames: make(map[string]struct{})}
}

// addChild registers a child name once and reports whether it was new.
func (directory *Directory) addChild(name string) bool {
	if _, exists := directory.childNames[name]; exists {
		return false
	}
	directory.childNames[name] = struct{}{}
	directory.Children = append(directory.Children, name)
	return true
}

// FileSystem maps absolute directory paths to their contents and tracks the
// replay cursor while a transcript is applied.
type FileSystem struct {
	directories map[string]*Directory
	currentPath []string
}

// New returns a FileSystem containing only an empty root with the cursor at root.
func New() *FileSystem {
	return &FileSystem{
		directories: map[string]*Directory{RootPath: newDirectory()},
		currentPath: []string{RootPath},
	}
}

// Build replays tokens in order into a fresh FileSystem.
func Build(tokens []Token) (*FileSystem, error) {
	fileSystem := New()
	for tokenIndex, token := range tokens {
		if applyError := fileSystem.Apply(token); applyError != nil {
			return nil, fmt.Errorf("token %d (%s): %w", tokenIndex+1, token, applyError)
		}
	}
	return fileSystem, nil
}

// FromTranscript tokenizes and replays a whole transcript.
func FromTranscript(transcript string) (*FileSystem, error) {
	tokens, parseError := ParseTranscript(transcript)
	if parseError != nil {
		return nil, parseError
	}
	return Build(tokens)
}

// Apply mutates the file system according to one token.
func (fileSystem *FileSystem) Apply(token Token) error {
	switch token.Kind {
	case TokenChangeDirectory:
		return fileSystem.changeDirectory(token.Name)
	case TokenList:
		return nil
	case TokenDirectoryEntry:
		if !isSegment(token.Name) {
			return fmt.Errorf(errorInvalidNameFormat, ErrTraversal, token.Name)
		}
		fileSystem.ensureChild(token.Name)
		return nil
	case TokenFileEntry:
		if !isSegment(token.Name) {
			return fmt.Errorf(errorInvalidNameFormat, ErrTraversal, token.Name)
		}
		current := fileSystem.directories[fileSystem.CurrentPath()]
		current.Files = append(current.Files, File{Name: token.Name, Size: token.Size})
		return nil
	default:
		return fmt.Errorf(errorUnknownTokenKind, int(token.Kind))
	}
}

func (fileSystem *FileSystem) changeDirectory(name string) error {
	switch name {
	case RootPath:
		fileSystem.currentPath = fileSystem.currentPath[:1]
	case parentDirectoryName:
		if len(fileSystem.currentPath) == 1 {
			return fmt.Errorf(errorPopRootFormat, ErrTraversal, RootPath)
		}
		fileSystem.currentPath = fileSystem.currentPath[:len(fileSystem.currentPath)-1]
	default:
		if !isSegment(name) {
			return fmt.Errorf(errorInvalidNameFormat, ErrTraversal, name)
		}
		fileSystem.ensureChild(name)
		fileSystem.currentPath = append(fileSystem.currentPath, name)
	}
	return nil
}

// ensureChild links name under the current directory and creates its entry.
func (fileSystem *FileSystem) ensureChild(name string) {
	parentPath := fileSystem.CurrentPath()
	fileSystem.directories[parentPath].addChild(name)
	childPath := JoinPath(parentPath, name)
	if _, exists := fileSystem.directories[childPath]; !exists {
		fileSystem.directories[childPath] = newDirectory()
	}
}

// CurrentPath returns the absolute path of the replay cursor.
func (fileSystem *FileSystem) CurrentPath() string {
	return RootPath + strings.Join(fileSystem.currentPath[1:], pathSeparator)
}

// Directory returns the directory stored at path.
func (fileSystem *FileSystem) Directory(path string) (*Directory, error) {
	directory, exists := fileSystem.directories[path]
	if !exists {
		return nil, fmt.Errorf(errorUnknownPathFormat, ErrTraversal, path)
	}
	return directory, nil
}

// Paths lists every known directory path in lexical order.
func (fileSystem *FileSystem) Paths() []string {
	paths := make([]string, 0, len(fileSystem.directories))
	for path := range fileSystem.directories {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// JoinPath appends a child name to an absolute directory path.
func JoinPath(parentPath string, name string) string {
	if parentPath == RootPath {
		return RootPath + name
	}
	return parentPath + pathSeparator + name
}
