package filesystem

import (
	"fmt"
	"path"

	"github.com/temirov/aoc/internal/types"
	"github.com/temirov/aoc/internal/utils"
)

const errorNoDirectoryAtLeastFormat = "%w: no directory of at least %d bytes"

// TotalSize returns the size of every file under directoryPath, recursively.
func (fileSystem *FileSystem) TotalSize(directoryPath string) (int64, error) {
	directory, lookupError := fileSystem.Directory(directoryPath)
	if lookupError != nil {
		return 0, lookupError
	}
	var total int64
	for _, file := range directory.Files {
		total += file.Size
	}
	for _, childName := range directory.Children {
		childTotal, childError := fileSystem.TotalSize(JoinPath(directoryPath, childName))
		if childError != nil {
			return 0, childError
		}
		total += childTotal
	}
	return total, nil
}

type sizeStackEntry struct {
	path     string
	expanded bool
}

// DirectorySizes computes the total size of every directory reachable from
// the root. Each directory is visited once; children are summed before their
// parent using an explicit stack.
func (fileSystem *FileSystem) DirectorySizes() (map[string]int64, error) {
	sizes := make(map[string]int64, len(fileSystem.directories))
	stack := []sizeStackEntry{{path: RootPath}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		directory, lookupError := fileSystem.Directory(top.path)
		if lookupError != nil {
			return nil, lookupError
		}
		if !top.expanded {
			stack = append(stack, sizeStackEntry{path: top.path, expanded: true})
			for _, childName := range directory.Children {
				stack = append(stack, sizeStackEntry{path: JoinPath(top.path, childName)})
			}
			continue
		}
		var total int64
		for _, file := range directory.Files {
			total += file.Size
		}
		for _, childName := range directory.Children {
			total += sizes[JoinPath(top.path, childName)]
		}
		sizes[top.path] = total
	}
	return sizes, nil
}

// SumAtMost adds up the totals of all directories whose total is at most limit.
// Nested directories are counted once for themselves and again inside each ancestor.
func (fileSystem *FileSystem) SumAtMost(limit int64) (int64, error) {
	sizes, sizesError := fileSystem.DirectorySizes()
	if sizesError != nil {
		return 0, sizesError
	}
	var sum int64
	for _, size := range sizes {
		if size <= limit {
			sum += size
		}
	}
	return sum, nil
}

// SmallestAtLeast returns the smallest directory total that is at least threshold.
func (fileSystem *FileSystem) SmallestAtLeast(threshold int64) (int64, error) {
	sizes, sizesError := fileSystem.DirectorySizes()
	if sizesError != nil {
		return 0, sizesError
	}
	var candidates []int64
	for _, size := range sizes {
		if size >= threshold {
			candidates = append(candidates, size)
		}
	}
	if len(candidates) == 0 {
		return 0, fmt.Errorf(errorNoDirectoryAtLeastFormat, ErrTraversal, threshold)
	}
	return utils.Min(candidates), nil
}

// SpaceToFree reports how many bytes must be deleted so that requiredFree bytes
// are available on a disk of the given capacity. It never returns a negative value.
func (fileSystem *FileSystem) SpaceToFree(capacity int64, requiredFree int64) (int64, error) {
	used, usedError := fileSystem.TotalSize(RootPath)
	if usedError != nil {
		return 0, usedError
	}
	return max(0, requiredFree-(capacity-used)), nil
}

// Tree converts the file system into nested output nodes carrying aggregate sizes.
func (fileSystem *FileSystem) Tree() (*types.TreeOutputNode, error) {
	sizes, sizesError := fileSystem.DirectorySizes()
	if sizesError != nil {
		return nil, sizesError
	}
	return fileSystem.treeNode(RootPath, sizes), nil
}

func (fileSystem *FileSystem) treeNode(directoryPath string, sizes map[string]int64) *types.TreeOutputNode {
	directory := fileSystem.directories[directoryPath]
	name := path.Base(directoryPath)
	node := &types.TreeOutputNode{
		Path:      directoryPath,
		Name:      name,
		Type:      types.NodeTypeDirectory,
		SizeBytes: sizes[directoryPath],
		TotalSize: utils.FormatFileSize(sizes[directoryPath]),
	}
	for _, childName := range directory.Children {
		childNode := fileSystem.treeNode(JoinPath(directoryPath, childName), sizes)
		node.TotalFiles += childNode.TotalFiles
		node.Children = append(node.Children, childNode)
	}
	for _, file := range directory.Files {
		node.Children = append(node.Children, &types.TreeOutputNode{
			Path:      JoinPath(directoryPath, file.Name),
			Name:      file.Name,
			Type:      types.NodeTypeFile,
			SizeBytes: file.Size,
			Size:      utils.FormatFileSize(file.Size),
		})
		node.TotalFiles++
	}
	return node
}
