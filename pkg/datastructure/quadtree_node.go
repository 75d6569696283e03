package datastructure

import "github.com/lintang-b-s/location-index/pkg/geo"

// Capacity is the number of points a leaf holds before it is split.
const Capacity = 4

// quadtreeNode is a leaf while children is nil. An internal node keeps no
// points except strays that none of its children contain.
type quadtreeNode[T comparable] struct {
	bound    geo.Rectangle
	points   []geo.Point[T]
	children *[4]*quadtreeNode[T] // NE, NW, SW, SE
}

func newQuadtreeNode[T comparable](bound geo.Rectangle) *quadtreeNode[T] {
	return &quadtreeNode[T]{
		bound:  bound,
		points: make([]geo.Point[T], 0, Capacity+1),
	}
}

func (node *quadtreeNode[T]) isLeaf() bool {
	return node.children == nil
}

// childFor returns the first child containing p, in NE, NW, SW, SE order.
func (node *quadtreeNode[T]) childFor(p geo.Point[T]) *quadtreeNode[T] {
	for _, child := range node.children {
		if child.bound.ContainsPoint(p) {
			return child
		}
	}
	return nil
}

// hasGrandchildren reports whether any child of node is internal.
func (node *quadtreeNode[T]) hasGrandchildren() bool {
	if node.children == nil {
		return false
	}
	for _, child := range node.children {
		if !child.isLeaf() {
			return true
		}
	}
	return false
}

func (node *quadtreeNode[T]) removePoint(p geo.Point[T]) bool {
	for i, point := range node.points {
		if point.Equal(p) {
			node.points = append(node.points[:i], node.points[i+1:]...)
			return true
		}
	}
	return false
}

func (node *quadtreeNode[T]) clear() {
	node.points = nil
	if node.children == nil {
		return
	}
	for _, child := range node.children {
		child.clear()
	}
	node.children = nil
}
