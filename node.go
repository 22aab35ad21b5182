package swipemenu

// SceneNode is the scene-graph collaborator an item slot drives. The menu
// only reads and writes poses and visibility; it never owns the node.
type SceneNode interface {
	Position() Vec3
	SetPosition(p Vec3)
	// SetRotation sets the yaw in degrees.
	SetRotation(deg float64)
	SetParent(parent SceneNode)
	SetActive(active bool)
}

// nodeIDCounter is a plain counter; the menu is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a minimal retained scene node satisfying SceneNode. Hosts with
// their own scene graph can implement SceneNode directly instead.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Pose (local)
	X, Y, Z  float64
	Rotation float64 // yaw in degrees

	// Hit quad size, centred on the node's position.
	Width, Height float64

	Active bool

	// Metadata
	UserData any

	disposed bool
}

// NewNode creates an active node with the given name and hit quad size.
func NewNode(name string, width, height float64) *Node {
	return &Node{
		ID:     nextNodeID(),
		Name:   name,
		Width:  width,
		Height: height,
		Active: true,
	}
}

// Position returns the node's local position.
func (n *Node) Position() Vec3 {
	return Vec3{n.X, n.Y, n.Z}
}

// SetPosition sets the node's local position.
func (n *Node) SetPosition(p Vec3) {
	n.X, n.Y, n.Z = p.X, p.Y, p.Z
}

// SetRotation sets the node's yaw in degrees.
func (n *Node) SetRotation(deg float64) {
	n.Rotation = deg
}

// SetActive shows or hides the node.
func (n *Node) SetActive(active bool) {
	n.Active = active
}

// SetParent reparents the node. Parents that are not *Node detach it.
func (n *Node) SetParent(parent SceneNode) {
	p, ok := parent.(*Node)
	if !ok || p == nil {
		n.RemoveFromParent()
		return
	}
	p.AddChild(n)
}

// IsActive reports whether the node and all its ancestors are active.
func (n *Node) IsActive() bool {
	for p := n; p != nil; p = p.Parent {
		if !p.Active {
			return false
		}
	}
	return true
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("swipemenu: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("swipemenu: adding child would create a cycle")
	}
	if child.Parent == n {
		return
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("swipemenu: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// WorldPosition returns the node's position in menu space. Each ancestor's
// offset is added after turning the local position by the ancestor's yaw.
func (n *Node) WorldPosition() Vec3 {
	local := Vec3{n.X, n.Y, n.Z}
	if n.Parent == nil {
		return local
	}
	if yaw := n.Parent.WorldRotation(); yaw != 0 {
		local = rotate(local, Pose{Rotation: yaw}.Orientation())
	}
	p := n.Parent.WorldPosition()
	return Vec3{p.X + local.X, p.Y + local.Y, p.Z + local.Z}
}

// WorldRotation returns the node's yaw in degrees with all ancestor yaws
// added. Rotations are about the vertical axis only, so they compose by sum.
func (n *Node) WorldRotation() float64 {
	var deg float64
	for p := n; p != nil; p = p.Parent {
		deg += p.Rotation
	}
	return deg
}

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
