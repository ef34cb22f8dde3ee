// Package thread keeps the client-side flattened view of a comment tree: an
// ordered sequence of level-tagged nodes in which every node is immediately
// followed by its loaded descendants.
package thread

import (
	"errors"
	"slices"

	"github.com/Guyuepp/blog-comment-thread/domain"
)

var (
	// ErrIndexOutOfRange is returned for a position outside the sequence
	ErrIndexOutOfRange = errors.New("thread: index out of range")
	// ErrInvalidSplice is returned when an insert or removal would break the
	// contiguity of a subtree
	ErrInvalidSplice = errors.New("thread: splice would break subtree contiguity")
)

// Node is one rendered comment.
type Node struct {
	Comment domain.Comment
	// Level is the nesting depth, 0 for root comments.
	Level int
	// IsReplyLoaded reports whether the node's replies are expanded.
	IsReplyLoaded bool
}

func (n Node) clone() Node {
	n.Comment.Children = slices.Clone(n.Comment.Children)
	return n
}

// Sequence is the ordered, level-tagged list behind a Projection. Every
// insert and removal is checked so that a node's loaded descendants always
// form the unbroken run right after it.
type Sequence struct {
	nodes []Node
}

func (s *Sequence) Len() int {
	return len(s.nodes)
}

// At returns a copy of the node at i.
func (s *Sequence) At(i int) (Node, error) {
	if i < 0 || i >= len(s.nodes) {
		return Node{}, ErrIndexOutOfRange
	}
	return s.nodes[i].clone(), nil
}

// Nodes returns a copy of the whole sequence.
func (s *Sequence) Nodes() []Node {
	res := make([]Node, len(s.nodes))
	for i := range s.nodes {
		res[i] = s.nodes[i].clone()
	}
	return res
}

// IndexOf returns the position of the comment, or -1.
func (s *Sequence) IndexOf(commentID int64) int {
	return slices.IndexFunc(s.nodes, func(n Node) bool {
		return n.Comment.ID == commentID
	})
}

// SubtreeEnd returns the index one past the last loaded descendant of the
// node at i.
func (s *Sequence) SubtreeEnd(i int) int {
	level := s.nodes[i].Level
	j := i + 1
	for j < len(s.nodes) && s.nodes[j].Level > level {
		j++
	}
	return j
}

// InsertAt splices nodes in before position i. The nodes must share one
// level L; a node of level L-1 or deeper must precede them (unless L is 0),
// and whatever follows must not be deeper than L.
func (s *Sequence) InsertAt(i int, nodes ...Node) error {
	if i < 0 || i > len(s.nodes) {
		return ErrIndexOutOfRange
	}
	if len(nodes) == 0 {
		return nil
	}

	level := nodes[0].Level
	for _, n := range nodes {
		if n.Level != level || n.Level < 0 {
			return ErrInvalidSplice
		}
	}
	if level > 0 && (i == 0 || s.nodes[i-1].Level < level-1) {
		return ErrInvalidSplice
	}
	if i < len(s.nodes) && s.nodes[i].Level > level {
		return ErrInvalidSplice
	}

	cloned := make([]Node, len(nodes))
	for k := range nodes {
		cloned[k] = nodes[k].clone()
	}
	s.nodes = slices.Insert(s.nodes, i, cloned...)
	return nil
}

// RemoveRange deletes [from, to). The range must not cut a subtree: the
// node after it may not be deeper than the first removed node.
func (s *Sequence) RemoveRange(from, to int) error {
	if from < 0 || to > len(s.nodes) || from > to {
		return ErrIndexOutOfRange
	}
	if from == to {
		return nil
	}
	if to < len(s.nodes) && s.nodes[to].Level > s.nodes[from].Level {
		return ErrInvalidSplice
	}
	s.nodes = slices.Delete(s.nodes, from, to)
	return nil
}

// node gives in-place access for flag and children updates; levels and
// order only change through InsertAt and RemoveRange.
func (s *Sequence) node(i int) *Node {
	return &s.nodes[i]
}

// FindAncestor scans backward from index for the nearest node whose level is
// strictly lower than the node at index. ok is false for root nodes.
func FindAncestor(seq *Sequence, index int) (int, bool) {
	if index <= 0 || index >= seq.Len() {
		return -1, false
	}
	level := seq.nodes[index].Level
	for i := index - 1; i >= 0; i-- {
		if seq.nodes[i].Level < level {
			return i, true
		}
	}
	return -1, false
}
