// Package manifest loads declarative extension trees from YAML. A manifest
// describes the source side of a patch (containers with scalar leaves) so a
// data-only extension can ship as an artifact instead of code.
package manifest

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/grafter/namespace"
	"gopkg.in/yaml.v3"
)

// Node is the YAML shape of one container in an extension tree. A member
// whose value is a mapping with a kind or members key is a nested container;
// any other value becomes a leaf.
type Node struct {
	Kind    string               `yaml:"kind,omitempty"`
	Doc     string               `yaml:"doc,omitempty"`
	Members map[string]yaml.Node `yaml:"members,omitempty"`
}

// Load reads a manifest from URL, a file path or any scheme afs can reach,
// and builds a source namespace rooted at name.
func Load(ctx context.Context, URL string, name string) (namespace.Namespace, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", URL, err)
	}
	result, err := Parse(data, name)
	if err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", URL, err)
	}
	return result, nil
}

// Parse builds a source namespace rooted at name from raw manifest bytes.
func Parse(data []byte, name string) (namespace.Namespace, error) {
	root := &Node{}
	if err := yaml.Unmarshal(data, root); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return build(root, name)
}

func build(node *Node, path string) (namespace.Mutable, error) {
	var container namespace.Mutable
	switch node.Kind {
	case "", "module":
		container = namespace.NewModule(path)
	case "class":
		container = namespace.NewClass(path)
	default:
		return nil, fmt.Errorf("unknown kind %q at %s", node.Kind, path)
	}
	// A doc is emitted only when present, so patching never clobbers an
	// existing doc with an absent one.
	if node.Doc != "" {
		container.SetLeaf("doc", node.Doc)
	}
	for name, value := range node.Members {
		childPath := namespace.Join(path, name)
		if isContainer(&value) {
			child := &Node{}
			if err := value.Decode(child); err != nil {
				return nil, fmt.Errorf("invalid member %s: %w", childPath, err)
			}
			sub, err := build(child, childPath)
			if err != nil {
				return nil, err
			}
			container.Attach(name, sub)
			continue
		}
		var leaf any
		if err := value.Decode(&leaf); err != nil {
			return nil, fmt.Errorf("invalid member %s: %w", childPath, err)
		}
		container.SetLeaf(name, leaf)
	}
	return container, nil
}

func isContainer(node *yaml.Node) bool {
	if node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if key := node.Content[i].Value; key == "kind" || key == "members" {
			return true
		}
	}
	return false
}
