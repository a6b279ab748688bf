package sintax

import "slices"

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeText                      // renders its text content
	NodeTypeRect                      // renders a solid Width x Height rectangle
)

// nodeIDCounter is not synchronized; scenes run on one goroutine.
var nodeIDCounter uint32

// Node is an addressable element owned by the page. Timelines write to nodes
// through SetText and the tweenable fields but never own them; a disposed
// node silently ignores further writes.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Local placement, relative to the parent.
	X, Y           float64
	ScaleX, ScaleY float64

	// Rect size (NodeTypeRect). Scaled by ScaleX/ScaleY; the scale origin
	// is the top-left corner so a ScaleX tween grows a bar to the right.
	Width, Height float64

	// Visibility
	Alpha   float64
	Visible bool
	Color   Color

	// Text fields (NodeTypeText)
	FontSize float64 // 0 = surface default

	// OnUpdate runs once per frame before timelines advance.
	OnUpdate func(dt float64)

	text     string
	disposed bool
}

func newNode(name string, typ NodeType) *Node {
	nodeIDCounter++
	return &Node{
		ID:      nodeIDCounter,
		Name:    name,
		Type:    typ,
		ScaleX:  1,
		ScaleY:  1,
		Alpha:   1,
		Color:   ColorWhite,
		Visible: true,
	}
}

// NewContainer creates a node that only groups its children.
func NewContainer(name string) *Node {
	return newNode(name, NodeTypeContainer)
}

// NewText creates a text node showing content.
func NewText(name, content string) *Node {
	n := newNode(name, NodeTypeText)
	n.text = content
	return n
}

// NewRect creates a w x h block filled with c.
func NewRect(name string, w, h float64, c Color) *Node {
	n := newNode(name, NodeTypeRect)
	n.Width, n.Height = w, h
	n.Color = c
	return n
}

// Text returns what the node currently shows.
func (n *Node) Text() string {
	return n.text
}

// SetText replaces the shown text. Writes to a nil or disposed node are
// dropped.
func (n *Node) SetText(s string) {
	if n.writable() {
		n.text = s
	}
}

// AddChild makes child the last child of n, detaching it from any previous
// parent. A nil child or one that would form a cycle panics.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("sintax: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if child.encloses(n) {
		panic("sintax: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.unlink(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child, which must be a direct child of n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("sintax: child's parent is not this node")
	}
	n.unlink(child)
	child.Parent = nil
}

// RemoveFromParent detaches n. Detached nodes are left alone.
func (n *Node) RemoveFromParent() {
	if p := n.Parent; p != nil {
		p.RemoveChild(n)
	}
}

// Children returns the live child slice; callers must not modify it.
func (n *Node) Children() []*Node {
	return n.children
}

// Find searches n and its descendants depth-first for a node called name.
func (n *Node) Find(name string) *Node {
	if !n.writable() {
		return nil
	}
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if hit := c.Find(name); hit != nil {
			return hit
		}
	}
	return nil
}

// Dispose detaches n and retires it along with its whole subtree. Retired
// nodes ignore text writes and are skipped by timelines.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.retire()
}

func (n *Node) retire() {
	for _, c := range n.children {
		c.Parent = nil
		c.retire()
	}
	n.ID, n.Parent, n.children, n.OnUpdate = 0, nil, nil, nil
	n.disposed = true
}

// IsDisposed reports whether Dispose has run on n or an ancestor.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// writable reports whether effects may write to n.
func (n *Node) writable() bool {
	return n != nil && !n.disposed
}

// encloses reports whether other is n or lies below it.
func (n *Node) encloses(other *Node) bool {
	for p := other; p != nil; p = p.Parent {
		if p == n {
			return true
		}
	}
	return false
}

// unlink drops child from n.children and leaves child.Parent untouched.
func (n *Node) unlink(child *Node) {
	if i := slices.Index(n.children, child); i >= 0 {
		n.children = slices.Delete(n.children, i, i+1)
	}
}

// updateNodes runs OnUpdate callbacks depth-first.
func updateNodes(n *Node, dt float64) {
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	for _, c := range n.children {
		updateNodes(c, dt)
	}
}

// drawNodes paints visible nodes onto s with inherited offset and alpha.
func drawNodes(s Surface, n *Node, ox, oy, alpha float64) {
	if !n.Visible {
		return
	}
	x, y := ox+n.X, oy+n.Y
	a := alpha * n.Alpha
	if a <= 0 {
		return
	}
	switch n.Type {
	case NodeTypeRect:
		r := Rect{X: x, Y: y, Width: n.Width * n.ScaleX, Height: n.Height * n.ScaleY}
		if !r.Empty() {
			s.FillRect(r, n.Color.WithAlpha(a))
		}
	case NodeTypeText:
		if n.text != "" {
			s.DrawText(x, y, n.text, TextStyle{Color: n.Color.WithAlpha(a), Size: n.FontSize})
		}
	}
	for _, c := range n.children {
		drawNodes(s, c, x, y, a)
	}
}
