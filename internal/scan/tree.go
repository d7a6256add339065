package scan

import (
	"fmt"
	"sort"
	"strings"
)

const treeMaxFiles = 5

type treeNode struct {
	children map[string]*treeNode
}

func newTreeNode() *treeNode {
	return &treeNode{children: map[string]*treeNode{}}
}

// FormatTree renders paths as an indented directory tree, truncating
// directories with many files so the output stays readable in a report.
func FormatTree(paths []string) string {
	root := newTreeNode()
	for _, path := range paths {
		current := root
		for _, part := range strings.Split(path, "/") {
			if part == "" {
				continue
			}
			child, ok := current.children[part]
			if !ok {
				child = newTreeNode()
				current.children[part] = child
			}
			current = child
		}
	}
	return strings.Join(formatNode(root, ""), "\n")
}

func formatNode(node *treeNode, prefix string) []string {
	var dirs, files []string
	for name, child := range node.children {
		if len(child.children) > 0 {
			dirs = append(dirs, name)
		} else {
			files = append(files, name)
		}
	}
	sort.Strings(dirs)
	sort.Strings(files)

	var lines []string
	for _, name := range dirs {
		lines = append(lines, prefix+name+"/")
		lines = append(lines, formatNode(node.children[name], prefix+"  ")...)
	}

	if len(files) > treeMaxFiles {
		for _, f := range files[:treeMaxFiles-1] {
			lines = append(lines, prefix+f)
		}
		lines = append(lines, prefix+fmt.Sprintf("... (%d more files)", len(files)-treeMaxFiles+1))
	} else {
		for _, f := range files {
			lines = append(lines, prefix+f)
		}
	}

	return lines
}
