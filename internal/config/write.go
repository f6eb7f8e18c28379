package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// AddNode adds a node entry to the config file in place.
// It preserves the existing YAML structure and comments.
// If a node with the same name already exists, it does nothing.
func AddNode(configPath, name string, node Node) error {
	// Read the existing file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse as yaml.Node to preserve structure
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return fmt.Errorf("invalid YAML document structure")
	}

	docNode := root.Content[0]
	if docNode.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping at document root")
	}

	// Find or create the nodes key
	nodesNode := findMapValue(docNode, "nodes")
	if nodesNode == nil {
		nodesNode = &yaml.Node{
			Kind:    yaml.MappingNode,
			Tag:     "!!map",
			Content: []*yaml.Node{},
		}

		keyNode := &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: "nodes",
		}

		docNode.Content = append(docNode.Content, keyNode, nodesNode)
	}

	// Already present, nothing to do
	if findMapValue(nodesNode, name) != nil {
		return nil
	}

	nameNode := &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Value: name,
	}
	nodesNode.Content = append(nodesNode.Content, nameNode, buildNodeMapping(node))

	// Write back to file
	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&root); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	encoder.Close()

	if err := os.WriteFile(configPath, []byte(buf.String()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// buildNodeMapping converts a Node to a yaml mapping, omitting empty fields.
func buildNodeMapping(node Node) *yaml.Node {
	mapping := &yaml.Node{
		Kind:    yaml.MappingNode,
		Tag:     "!!map",
		Content: []*yaml.Node{},
	}

	appendScalar := func(key, value, tag string) {
		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value},
		)
	}

	if node.IP != "" {
		appendScalar("ip", node.IP, "!!str")
	}
	if node.SSH != "" {
		appendScalar("ssh", node.SSH, "!!str")
	}
	if node.HasWebserver {
		appendScalar("has_webserver", strconv.FormatBool(node.HasWebserver), "!!bool")
	}

	return mapping
}

// findMapValue finds a value in a mapping node by key name.
func findMapValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		if keyNode.Kind == yaml.ScalarNode && keyNode.Value == key {
			return valueNode
		}
	}

	return nil
}
