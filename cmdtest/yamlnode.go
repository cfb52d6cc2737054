package cmdtest

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

func (s *TestSuite) persist(group *TestGroup) error {
	backing := s.backings[group]
	if backing == nil {
		return fmt.Errorf("no yaml backing for group %s", group.Name)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(backing.root.Content[0]); err != nil {
		_ = enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return os.WriteFile(backing.path, buf.Bytes(), 0o644)
}

func locateTestsNode(doc *yaml.Node) (*yaml.Node, error) {
	if doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 {
		doc = doc.Content[0]
	}
	switch doc.Kind {
	case yaml.MappingNode:
		val := findMapValue(doc, "tests")
		if val == nil {
			return nil, fmt.Errorf("missing 'tests' key")
		}
		if val.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("tests must be a sequence")
		}
		return val, nil
	case yaml.SequenceNode:
		return doc, nil
	default:
		return nil, fmt.Errorf("unsupported top-level yaml kind: %v", doc.Kind)
	}
}

func findMapValue(mapNode *yaml.Node, key string) *yaml.Node {
	if mapNode.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		if mapNode.Content[i].Value == key {
			return mapNode.Content[i+1]
		}
	}
	return nil
}

func ensureMapValue(mapNode *yaml.Node, key string) *yaml.Node {
	if mapNode.Kind != yaml.MappingNode {
		mapNode.Kind = yaml.MappingNode
		mapNode.Content = nil
	}
	if val := findMapValue(mapNode, key); val != nil {
		return val
	}
	keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
	valNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str"}
	mapNode.Content = append(mapNode.Content, keyNode, valNode)
	return valNode
}

func setStringScalar(node *yaml.Node, val string) {
	node.Kind = yaml.ScalarNode
	node.Tag = "!!str"
	node.Style = 0
	// A lone line break would otherwise be written as an empty literal block.
	if val == "\n" || val == "\r\n" {
		node.Style = yaml.DoubleQuotedStyle
	}
	node.Value = val
}

func setIntScalar(node *yaml.Node, val int) {
	node.Kind = yaml.ScalarNode
	node.Tag = "!!int"
	node.Style = 0
	node.Value = strconv.Itoa(val)
}
