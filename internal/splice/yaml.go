package splice

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dosanma1/modelforge/internal/errors"
)

// YAMLSplicer edits yml service definitions through the node tree, so
// duplicates are detected on keys rather than substrings. Comments survive
// but indentation is normalized to four spaces.
type YAMLSplicer struct{}

// NewYAMLSplicer creates the structural splicer for yml documents.
func NewYAMLSplicer() *YAMLSplicer {
	return &YAMLSplicer{}
}

// Splice implements Splicer. Missing parameters or services sections are created.
func (s *YAMLSplicer) Splice(doc string, reg Registration) (string, error) {
	document, root, err := parseMapping(doc)
	if err != nil {
		return doc, err
	}

	parameters, err := section(root, "parameters")
	if err != nil {
		return doc, err
	}
	services, err := section(root, "services")
	if err != nil {
		return doc, err
	}

	if lookup(parameters, reg.Aliases.ManagerClassKey()) != nil || lookup(services, reg.Aliases.ServiceID()) != nil {
		return doc, errors.NewDuplicateRegistrationError(reg.Aliases.ManagerClassKey(), "")
	}

	parameters.Content = append(parameters.Content,
		scalar(reg.Aliases.ManagerClassKey(), 0),
		scalar(reg.ManagerClass, 0),
	)

	key := scalar(reg.Aliases.ServiceID(), 0)
	key.HeadComment = fmt.Sprintf("# Default %s manager", reg.ModelName)
	services.Content = append(services.Content, key, &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
		Content: []*yaml.Node{
			scalar("class", 0),
			scalar("%"+reg.Aliases.ManagerClassKey()+"%", yaml.SingleQuotedStyle),
			scalar("arguments", 0),
			{
				Kind: yaml.SequenceNode,
				Tag:  "!!seq",
				Content: []*yaml.Node{
					scalar("@"+reg.Driver.ServiceID(), yaml.SingleQuotedStyle),
					scalar("%"+reg.Aliases.ModelClassKey()+"%", yaml.SingleQuotedStyle),
				},
			},
		},
	})

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(4)
	if err := enc.Encode(document); err != nil {
		return doc, fmt.Errorf("failed to encode yml config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return doc, fmt.Errorf("failed to encode yml config: %w", err)
	}

	return commentPreamble(doc) + buf.String(), nil
}

// commentPreamble returns doc when it holds nothing but comments, so a
// header written above an otherwise empty configuration is kept.
func commentPreamble(doc string) string {
	trimmed := strings.TrimSpace(doc)
	if trimmed == "" {
		return ""
	}
	for _, line := range strings.Split(trimmed, "\n") {
		if line = strings.TrimSpace(line); line != "" && !strings.HasPrefix(line, "#") {
			return ""
		}
	}
	return trimmed + "\n\n"
}

// parseMapping returns the document node and its root mapping. An empty
// or null document yields a fresh mapping.
func parseMapping(doc string) (*yaml.Node, *yaml.Node, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	fresh := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}
	if strings.TrimSpace(doc) == "" {
		return fresh, root, nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal([]byte(doc), &node); err != nil {
		return nil, nil, errors.NewValidationError(fmt.Sprintf("invalid yml config: %v", err), "", "")
	}

	if node.Kind != yaml.DocumentNode || len(node.Content) == 0 {
		return fresh, root, nil
	}
	if node.Content[0].Kind == yaml.ScalarNode && node.Content[0].Tag == "!!null" {
		return fresh, root, nil
	}

	if node.Content[0].Kind != yaml.MappingNode {
		return nil, nil, errors.NewValidationError("yml config root is not a mapping", "", "")
	}
	return &node, node.Content[0], nil
}

// section returns the mapping stored under key, creating it when absent or empty.
func section(root *yaml.Node, key string) (*yaml.Node, error) {
	if value := lookup(root, key); value != nil {
		switch {
		case value.Kind == yaml.MappingNode:
			return value, nil
		case value.Kind == yaml.ScalarNode && value.Tag == "!!null":
			value.Kind = yaml.MappingNode
			value.Tag = "!!map"
			value.Value = ""
			return value, nil
		}
		return nil, errors.NewValidationError(fmt.Sprintf("yml config section %q is not a mapping", key), "", "")
	}

	value := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	root.Content = append(root.Content, scalar(key, 0), value)
	return value, nil
}

func lookup(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

func scalar(value string, style yaml.Style) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value, Style: style}
}
