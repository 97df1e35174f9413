package analyzer

import (
	"path"
	"strings"

	"larpscan/types"
)

// BuildStructure folds a flat crawl listing into the extension
// histogram and the nested directory tree. Pure; files without an
// extension count under the empty string, and only intermediate
// directory segments become tree nodes.
func BuildStructure(files []types.FileEntry) types.RepoStructure {
	structure := types.RepoStructure{
		FileTypes: make(map[string]int),
		Tree:      newTreeNode(),
	}

	for _, file := range files {
		structure.FileTypes[strings.ToLower(path.Ext(file.Path))]++
		structure.TotalFiles++

		node := structure.Tree
		segments := strings.Split(file.Path, "/")
		for _, segment := range segments[:len(segments)-1] {
			child, ok := node.Children[segment]
			if !ok {
				child = newTreeNode()
				node.Children[segment] = child
			}
			node = child
		}
	}

	return structure
}

func newTreeNode() *types.TreeNode {
	return &types.TreeNode{Children: make(map[string]*types.TreeNode)}
}
