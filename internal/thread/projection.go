package thread

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/blog-comment-thread/domain"
)

// Source is where a Projection loads comments from and sends mutations to.
type Source interface {
	ListRoots(ctx context.Context, blogID int64, page int64) ([]domain.Comment, error)
	ListReplies(ctx context.Context, parentID int64, skip int64) ([]domain.Comment, error)
	AddComment(ctx context.Context, blogID int64, content string, replyTo int64) (domain.AddedComment, error)
	DeleteComment(ctx context.Context, id int64) error
}

// ReplyRequest is an in-flight replies load. Responses are matched back to
// their parent by id, so they may complete in any order.
type ReplyRequest struct {
	ParentID int64
	Skip     int64
}

// PendingRemoval is a delete that has been applied locally but not yet
// confirmed by the Source.
type PendingRemoval struct {
	CommentID int64
}

// Projection is the thread view of one blog. All mutations hold mu, so
// callbacks from concurrent loads are applied one at a time.
type Projection struct {
	mu     sync.Mutex
	blogID int64
	source Source
	seq    Sequence
}

func NewProjection(blogID int64, source Source) *Projection {
	return &Projection{
		blogID: blogID,
		source: source,
	}
}

func (p *Projection) BlogID() int64 {
	return p.blogID
}

// Nodes returns a snapshot of the rendered sequence.
func (p *Projection) Nodes() []Node {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.seq.Nodes()
}

func (p *Projection) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.seq.Len()
}

// LoadRoots fetches a page of root comments. Page 1 resets the view, later
// pages are appended; roots already shown are skipped.
func (p *Projection) LoadRoots(ctx context.Context, page int64) error {
	roots, err := p.source.ListRoots(ctx, p.blogID, page)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if page <= 1 {
		p.seq = Sequence{}
	}

	nodes := make([]Node, 0, len(roots))
	for _, c := range roots {
		if p.seq.IndexOf(c.ID) >= 0 {
			continue
		}
		nodes = append(nodes, Node{Comment: c})
	}
	return p.seq.InsertAt(p.seq.Len(), nodes...)
}

// ExpandReplies loads a page of replies under the node at index. Any replies
// already shown under it are collapsed first, so each call shows exactly
// the page asked for.
func (p *Projection) ExpandReplies(ctx context.Context, index int, skip int64) error {
	req, ok, err := p.BeginExpand(index, skip)
	if err != nil || !ok {
		return err
	}

	replies, err := p.source.ListReplies(ctx, req.ParentID, req.Skip)
	if err != nil {
		return err
	}
	return p.ApplyReplies(req, replies)
}

// BeginExpand collapses the node at index and returns the load to issue.
// ok is false when the node has no replies.
func (p *Projection) BeginExpand(index int, skip int64) (ReplyRequest, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if index < 0 || index >= p.seq.Len() {
		return ReplyRequest{}, false, ErrIndexOutOfRange
	}
	n := p.seq.node(index)
	if len(n.Comment.Children) == 0 {
		return ReplyRequest{}, false, nil
	}
	if err := p.collapse(index); err != nil {
		return ReplyRequest{}, false, err
	}
	if skip < 0 {
		skip = 0
	}
	return ReplyRequest{ParentID: n.Comment.ID, Skip: skip}, true, nil
}

// ApplyReplies splices a completed load in under its parent, wherever the
// parent sits now. A response for a parent that is no longer shown is
// dropped.
func (p *Projection) ApplyReplies(req ReplyRequest, replies []domain.Comment) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	idx := p.seq.IndexOf(req.ParentID)
	if idx < 0 {
		logrus.Debugf("replies of comment %d arrived after it left the view", req.ParentID)
		return nil
	}
	if err := p.collapse(idx); err != nil {
		return err
	}

	parent := p.seq.node(idx)
	nodes := make([]Node, 0, len(replies))
	for _, c := range replies {
		nodes = append(nodes, Node{Comment: c, Level: parent.Level + 1})
		// the parent may have been loaded before these replies were written
		if !slices.Contains(parent.Comment.Children, c.ID) {
			parent.Comment.Children = append(parent.Comment.Children, c.ID)
		}
	}
	parent.IsReplyLoaded = true
	return p.seq.InsertAt(idx+1, nodes...)
}

// Collapse hides every loaded descendant of the node at index.
func (p *Projection) Collapse(index int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if index < 0 || index >= p.seq.Len() {
		return ErrIndexOutOfRange
	}
	return p.collapse(index)
}

func (p *Projection) collapse(index int) error {
	p.seq.node(index).IsReplyLoaded = false
	return p.seq.RemoveRange(index+1, p.seq.SubtreeEnd(index))
}

// InsertLocalReply shows a freshly created reply directly under its parent.
func (p *Projection) InsertLocalReply(parentIndex int, c domain.Comment) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if parentIndex < 0 || parentIndex >= p.seq.Len() {
		return ErrIndexOutOfRange
	}
	return p.insertLocalReply(parentIndex, c, nil)
}

func (p *Projection) insertLocalReply(parentIndex int, c domain.Comment, parentChildren []int64) error {
	parent := p.seq.node(parentIndex)
	level := parent.Level + 1

	switch {
	case parentChildren != nil:
		parent.Comment.Children = slices.Clone(parentChildren)
	case !slices.Contains(parent.Comment.Children, c.ID):
		parent.Comment.Children = append(parent.Comment.Children, c.ID)
	}
	parent.IsReplyLoaded = true

	return p.seq.InsertAt(parentIndex+1, Node{Comment: c, Level: level})
}

// InsertLocalRoot shows a freshly created root comment at the top.
func (p *Projection) InsertLocalRoot(c domain.Comment) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.seq.InsertAt(0, Node{Comment: c})
}

// RemoveNode drops the node at index with its loaded descendants. With
// cascade the node is also unlinked from its nearest shown ancestor, whose
// expanded flag is cleared when no children remain.
func (p *Projection) RemoveNode(index int, cascade bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if index < 0 || index >= p.seq.Len() {
		return ErrIndexOutOfRange
	}
	return p.removeNode(index, cascade)
}

func (p *Projection) removeNode(index int, cascade bool) error {
	id := p.seq.node(index).Comment.ID
	ancestor, hasAncestor := FindAncestor(&p.seq, index)

	if err := p.collapse(index); err != nil {
		return err
	}
	if err := p.seq.RemoveRange(index, index+1); err != nil {
		return err
	}

	if cascade && hasAncestor {
		a := p.seq.node(ancestor)
		a.Comment.Children = slices.DeleteFunc(a.Comment.Children, func(child int64) bool {
			return child == id
		})
		if len(a.Comment.Children) == 0 {
			a.IsReplyLoaded = false
		}
	}
	return nil
}

// BeginRemove hides the replies of the node at index while its delete is in
// flight.
func (p *Projection) BeginRemove(index int) (PendingRemoval, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if index < 0 || index >= p.seq.Len() {
		return PendingRemoval{}, ErrIndexOutOfRange
	}
	id := p.seq.node(index).Comment.ID
	if err := p.collapse(index); err != nil {
		return PendingRemoval{}, err
	}
	return PendingRemoval{CommentID: id}, nil
}

// ConfirmRemove reconciles the view with the outcome of a delete. A comment
// that turned out to be gone already is removed as if the delete succeeded.
// On any other failure the node stays, collapsed, and err is returned.
func (p *Projection) ConfirmRemove(pr PendingRemoval, err error) error {
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	idx := p.seq.IndexOf(pr.CommentID)
	if idx < 0 {
		return nil
	}
	return p.removeNode(idx, true)
}

// Comment posts a new root comment and shows it at the top.
func (p *Projection) Comment(ctx context.Context, content string) (domain.AddedComment, error) {
	added, err := p.source.AddComment(ctx, p.blogID, content, 0)
	if err != nil {
		return domain.AddedComment{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.seq.IndexOf(added.ID) >= 0 {
		return added, nil
	}
	return added, p.seq.InsertAt(0, Node{Comment: added.Comment})
}

// Reply posts a reply to the node at parentIndex and shows it under the
// parent, which is looked up again once the write returns.
func (p *Projection) Reply(ctx context.Context, parentIndex int, content string) (domain.AddedComment, error) {
	p.mu.Lock()
	if parentIndex < 0 || parentIndex >= p.seq.Len() {
		p.mu.Unlock()
		return domain.AddedComment{}, ErrIndexOutOfRange
	}
	parentID := p.seq.node(parentIndex).Comment.ID
	p.mu.Unlock()

	added, err := p.source.AddComment(ctx, p.blogID, content, parentID)
	if err != nil {
		return domain.AddedComment{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	idx := p.seq.IndexOf(parentID)
	if idx < 0 || p.seq.IndexOf(added.ID) >= 0 {
		return added, nil
	}
	return added, p.insertLocalReply(idx, added.Comment, added.ParentChildren)
}

// Delete removes the node at index through the Source and reconciles the
// view with the outcome.
func (p *Projection) Delete(ctx context.Context, index int) error {
	pr, err := p.BeginRemove(index)
	if err != nil {
		return err
	}
	return p.ConfirmRemove(pr, p.source.DeleteComment(ctx, pr.CommentID))
}
