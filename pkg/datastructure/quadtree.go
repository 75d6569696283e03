package datastructure

import "github.com/lintang-b-s/location-index/pkg/geo"

// MaxDepth bounds splitting. A leaf at this depth keeps growing past Capacity,
// which stops endless splits when more than Capacity points share a coordinate.
const MaxDepth = 32

// Quadtree is a point quadtree over a fixed root rectangle. It is not safe for
// concurrent use, see locationindex.LocationServiceManager.
//
// Points are routed to the first child, in NE, NW, SW, SE order, whose
// rectangle contains them. A point no child contains (outside the root
// rectangle, or NaN) is kept by the deepest node it reached, so Insert never
// drops a point.
type Quadtree[T comparable] struct {
	root *quadtreeNode[T]
	size int
}

func NewQuadtree[T comparable](bound geo.Rectangle) *Quadtree[T] {
	return &Quadtree[T]{
		root: newQuadtreeNode[T](bound),
	}
}

func (qt *Quadtree[T]) Bound() geo.Rectangle {
	return qt.root.bound
}

// Size returns the number of stored points, duplicates included.
func (qt *Quadtree[T]) Size() int {
	return qt.size
}

// Depth returns the number of levels below the root.
func (qt *Quadtree[T]) Depth() int {
	return depth(qt.root)
}

func depth[T comparable](node *quadtreeNode[T]) int {
	if node.isLeaf() {
		return 0
	}
	maxDepth := 0
	for _, child := range node.children {
		if d := depth(child); d > maxDepth {
			maxDepth = d
		}
	}
	return maxDepth + 1
}

func (qt *Quadtree[T]) Insert(p geo.Point[T]) {
	qt.insert(qt.root, p, 0)
	qt.size++
}

func (qt *Quadtree[T]) insert(node *quadtreeNode[T], p geo.Point[T], level int) {
	if !node.isLeaf() {
		if child := node.childFor(p); child != nil {
			qt.insert(child, p, level+1)
			return
		}
		node.points = append(node.points, p)
		return
	}

	node.points = append(node.points, p)

	if len(node.points) > Capacity && level < MaxDepth {
		qt.split(node, level)
	}
}

// split turns a leaf into an internal node and routes its points into the
// new quadrant children.
func (qt *Quadtree[T]) split(node *quadtreeNode[T], level int) {
	quadrants := node.bound.Quadrants()
	var children [4]*quadtreeNode[T]
	for i, quadrant := range quadrants {
		children[i] = newQuadtreeNode[T](quadrant)
	}
	node.children = &children

	points := node.points
	node.points = nil
	for _, p := range points {
		child := node.childFor(p)
		if child == nil {
			node.points = append(node.points, p)
			continue
		}
		qt.insert(child, p, level+1)
	}
}

// Delete removes the first stored point equal to p. It returns false when p
// is not stored.
func (qt *Quadtree[T]) Delete(p geo.Point[T]) bool {
	if !qt.delete(qt.root, p) {
		return false
	}
	qt.size--
	return true
}

func (qt *Quadtree[T]) delete(node *quadtreeNode[T], p geo.Point[T]) bool {
	if !node.isLeaf() {
		child := node.childFor(p)
		if child != nil && qt.delete(child, p) {
			mergeChildren(child)
			return true
		}
	}

	return node.removePoint(p)
}

// mergeChildren collapses node back into a leaf when it holds no points of
// its own, none of its children is internal, and their points fit in one
// leaf. Only this one level is compacted.
func mergeChildren[T comparable](node *quadtreeNode[T]) {
	if node.isLeaf() || len(node.points) != 0 || node.hasGrandchildren() {
		return
	}

	total := 0
	for _, child := range node.children {
		total += len(child.points)
	}
	if total > Capacity {
		return
	}

	points := make([]geo.Point[T], 0, Capacity+1)
	for _, child := range node.children {
		points = append(points, child.points...)
	}
	node.points = points
	node.children = nil
}

// QueryRange returns every point inside rect, in NE, NW, SW, SE subtree order
// and insertion order within a leaf.
func (qt *Quadtree[T]) QueryRange(rect geo.Rectangle) []geo.Point[T] {
	result := []geo.Point[T]{}
	return queryRange(qt.root, rect, result)
}

func queryRange[T comparable](node *quadtreeNode[T], rect geo.Rectangle, result []geo.Point[T]) []geo.Point[T] {
	for _, p := range node.points {
		if rect.ContainsPoint(p) {
			result = append(result, p)
		}
	}

	if node.isLeaf() {
		return result
	}

	for _, child := range node.children {
		if child.bound.Intersects(rect) {
			result = queryRange(child, rect, result)
		}
	}
	return result
}

// QueryRadius returns every point whose haversine distance to (lat, lon) is
// at most radius km. Subtrees are pruned with geo.DistanceToRectangle.
func (qt *Quadtree[T]) QueryRadius(lat, lon, radius float64) []geo.Point[T] {
	result := []geo.Point[T]{}
	return queryRadius(qt.root, geo.NewCircle(lat, lon, radius), result)
}

func queryRadius[T comparable](node *quadtreeNode[T], circle geo.Circle, result []geo.Point[T]) []geo.Point[T] {
	for _, p := range node.points {
		if circle.ContainsPoint(p) {
			result = append(result, p)
		}
	}

	if node.isLeaf() {
		return result
	}

	for _, child := range node.children {
		if circle.MayIntersect(child.bound) {
			result = queryRadius(child, circle, result)
		}
	}
	return result
}

// ClearAll leaves the root as an empty leaf over its original rectangle.
func (qt *Quadtree[T]) ClearAll() {
	qt.root.clear()
	qt.size = 0
}
