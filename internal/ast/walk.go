package ast

// Visitor is called for every node by Walk. If Visit returns a non-nil w,
// Walk visits the children of node with w, then calls w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses the tree rooted at node depth-first in source order.
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Statements {
			Walk(v, s)
		}
	case *LetStatement:
		if n.Name != nil {
			Walk(v, n.Name)
		}
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *ReturnStatement:
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *Identifier, *Placeholder:
		// leaves
	}

	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if node != nil && f(node) {
		return f
	}
	return nil
}

// Inspect calls f for every node in depth-first order; returning false from
// f skips the node's children.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

// Children returns the direct children of node in source order.
func Children(node Node) []Node {
	switch n := node.(type) {
	case *Program:
		out := make([]Node, 0, len(n.Statements))
		for _, s := range n.Statements {
			out = append(out, s)
		}
		return out
	case *LetStatement:
		var out []Node
		if n.Name != nil {
			out = append(out, n.Name)
		}
		if n.Value != nil {
			out = append(out, n.Value)
		}
		return out
	case *ReturnStatement:
		if n.Value != nil {
			return []Node{n.Value}
		}
	}
	return nil
}
