package component

import (
	"encoding/json"

	"github.com/AINative-Studio/ai-kit-a2ui/errors"
)

// Node is one typed entry in the declarative UI tree.
//
// ID is unique among siblings at any instant; ids may be reused after
// removal. Properties carry kind-specific values, each either a literal or
// a pointer binding (a string starting with "/"). Children are exclusively
// owned by the node: replacing or removing the node destroys its subtree.
type Node struct {
	ID         string     `json:"id"`
	Kind       Kind       `json:"kind"`
	Properties Properties `json:"properties,omitempty"`
	Children   []Node     `json:"children,omitempty"`
}

// Validate checks the structural invariants a node must satisfy before it
// enters the surface tree: a non-empty id, a non-empty kind, and unique ids
// among each sibling group. Unknown kinds are accepted; they degrade to a
// visible fallback at render time.
func (n *Node) Validate() error {
	if n.ID == "" {
		return errors.WrapInvalid(errors.ErrInvalidMessage, "Node", "Validate", "id must not be empty")
	}
	if n.Kind == "" {
		return errors.WrapInvalid(errors.ErrInvalidMessage, "Node", "Validate", "kind must not be empty")
	}
	return validateSiblings(n.Children)
}

// ValidateTree validates a root sibling sequence and every subtree under it.
func ValidateTree(nodes []Node) error {
	return validateSiblings(nodes)
}

func validateSiblings(nodes []Node) error {
	seen := make(map[string]struct{}, len(nodes))
	for i := range nodes {
		node := &nodes[i]
		if _, dup := seen[node.ID]; dup && node.ID != "" {
			return errors.WrapInvalid(errors.ErrInvalidMessage, "Node", "Validate",
				"duplicate sibling id "+node.ID)
		}
		seen[node.ID] = struct{}{}
		if err := node.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy of the node. Property values are copied via
// JSON round-trip so the clone shares no mutable state with the original.
func (n Node) Clone() Node {
	clone := Node{ID: n.ID, Kind: n.Kind}
	if n.Properties != nil {
		clone.Properties = n.Properties.clone()
	}
	if n.Children != nil {
		clone.Children = make([]Node, len(n.Children))
		for i, child := range n.Children {
			clone.Children[i] = child.Clone()
		}
	}
	return clone
}

// ChildrenOfKind returns the node's direct children with the given kind,
// in document order. Used by the tabs children-mode partition.
func (n Node) ChildrenOfKind(kind Kind) []Node {
	var out []Node
	for _, child := range n.Children {
		if child.Kind == kind {
			out = append(out, child)
		}
	}
	return out
}

func (p Properties) clone() Properties {
	data, err := json.Marshal(p)
	if err != nil {
		// Properties always originate from decoded JSON, so this cannot
		// fail on well-formed surfaces; fall back to a shallow copy.
		shallow := make(Properties, len(p))
		for k, v := range p {
			shallow[k] = v
		}
		return shallow
	}
	var out Properties
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}
