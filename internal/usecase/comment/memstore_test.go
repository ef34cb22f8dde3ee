package comment_test

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/Guyuepp/blog-comment-thread/domain"
)

// memStore keeps comments, blogs, users and notifications in memory so the
// service can be driven end to end.
type memStore struct {
	mu            sync.Mutex
	nextID        int64
	now           time.Time
	blogs         map[int64]*domain.Blog
	comments      map[int64]*domain.Comment
	notifications map[int64]domain.Notification
	users         map[int64]domain.User
}

func newMemStore() *memStore {
	return &memStore{
		now:           time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		blogs:         map[int64]*domain.Blog{},
		comments:      map[int64]*domain.Comment{},
		notifications: map[int64]domain.Notification{},
		users:         map[int64]domain.User{},
	}
}

func (m *memStore) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *memStore) Store(_ context.Context, c *domain.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var parent *domain.Comment
	if c.ParentID != 0 {
		p, ok := m.comments[c.ParentID]
		if !ok || p.BlogID != c.BlogID {
			return domain.ErrNotFound
		}
		parent = p
	}
	m.nextID++
	m.now = m.now.Add(time.Second)
	c.ID = m.nextID
	c.CreatedAt = m.now
	c.IsReply = c.ParentID != 0
	c.Children = []int64{}

	stored := *c
	stored.User = nil
	m.comments[c.ID] = &stored
	if parent != nil {
		parent.Children = append(parent.Children, c.ID)
	}
	return nil
}

func (m *memStore) DeleteSubtree(_ context.Context, id int64) (domain.SubtreeRemoval, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	root, ok := m.comments[id]
	if !ok {
		return domain.SubtreeRemoval{}, nil
	}
	removed := []int64{id}
	for i := 0; i < len(removed); i++ {
		removed = append(removed, m.comments[removed[i]].Children...)
	}
	for _, rid := range removed {
		delete(m.comments, rid)
	}
	if p, ok := m.comments[root.ParentID]; ok {
		p.Children = slices.DeleteFunc(p.Children, func(c int64) bool { return c == id })
	}
	for nid, n := range m.notifications {
		if slices.Contains(removed, n.CommentID) {
			delete(m.notifications, nid)
		}
	}
	return domain.SubtreeRemoval{
		BlogID:      root.BlogID,
		RemovedIDs:  removed,
		RootRemoved: root.ParentID == 0,
	}, nil
}

func (m *memStore) GetByID(_ context.Context, id int64) (domain.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.comments[id]
	if !ok {
		return domain.Comment{}, domain.ErrNotFound
	}
	res := *c
	res.Children = slices.Clone(c.Children)
	return res, nil
}

func (m *memStore) newestFirst(match func(c *domain.Comment) bool, skip, limit int64) []domain.Comment {
	res := []domain.Comment{}
	for _, c := range m.comments {
		if match(c) {
			cp := *c
			cp.Children = slices.Clone(c.Children)
			res = append(res, cp)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID > res[j].ID })
	if skip >= int64(len(res)) {
		return []domain.Comment{}
	}
	res = res[skip:]
	if limit < int64(len(res)) {
		res = res[:limit]
	}
	return res
}

func (m *memStore) FetchRoots(_ context.Context, blogID int64, skip, limit int64) ([]domain.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.newestFirst(func(c *domain.Comment) bool {
		return c.BlogID == blogID && c.ParentID == 0
	}, skip, limit), nil
}

func (m *memStore) FetchChildren(_ context.Context, parentID int64, skip, limit int64) ([]domain.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.newestFirst(func(c *domain.Comment) bool {
		return c.ParentID == parentID
	}, skip, limit), nil
}

// blogs

type memBlogs struct{ *memStore }

func (m memBlogs) GetByID(_ context.Context, id int64) (domain.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.blogs[id]
	if !ok {
		return domain.Blog{}, domain.ErrNotFound
	}
	return *b, nil
}

func (m memBlogs) Incr(_ context.Context, blogID int64, delta domain.CounterDelta) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.blogs[blogID]
	if !ok {
		return domain.ErrNotFound
	}
	b.TotalComments += delta.Comments
	b.TotalParentComments += delta.ParentComments
	return nil
}

func (m memBlogs) Recount(_ context.Context, blogID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := m.blogs[blogID]
	b.TotalComments, b.TotalParentComments = m.live(blogID)
	return nil
}

func (m memBlogs) FetchIDs(context.Context, int64, int64) ([]int64, error) {
	return nil, nil
}

// live counts the stored comments and root comments of a blog.
func (m *memStore) live(blogID int64) (total, roots int64) {
	for _, c := range m.comments {
		if c.BlogID != blogID {
			continue
		}
		total++
		if c.ParentID == 0 {
			roots++
		}
	}
	return
}

// notifications

type memNotifications struct{ *memStore }

func (m memNotifications) Create(_ context.Context, n *domain.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	n.ID = m.nextID
	n.CreatedAt = m.now
	m.notifications[n.ID] = *n
	return nil
}

func (m memNotifications) DeleteByCommentIDs(_ context.Context, ids []int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for nid, n := range m.notifications {
		if slices.Contains(ids, n.CommentID) {
			delete(m.notifications, nid)
		}
	}
	return nil
}

func (m memNotifications) Fetch(context.Context, int64, string, int64, int64) ([]domain.Notification, error) {
	return nil, nil
}

func (m memNotifications) Count(context.Context, int64, string) (int64, error) {
	return 0, nil
}

func (m memNotifications) HasUnseen(context.Context, int64) (bool, error) {
	return false, nil
}

func (m memNotifications) MarkSeen(context.Context, int64, []int64) error {
	return nil
}

func (m *memStore) notificationsFor(commentID int64) []domain.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []domain.Notification
	for _, n := range m.notifications {
		if n.CommentID == commentID {
			res = append(res, n)
		}
	}
	return res
}

// users

type memUsers struct{ *memStore }

func (m memUsers) GetByID(_ context.Context, id int64) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (m memUsers) GetByIDs(_ context.Context, ids []int64) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := []domain.User{}
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			res = append(res, u)
		}
	}
	return res, nil
}

// bloom lets everything through; negatives are covered with mocks

type openBloom struct{}

func (openBloom) Add(context.Context, int64) error           { return nil }
func (openBloom) Exists(context.Context, int64) (bool, error) { return true, nil }
func (openBloom) BulkAdd(context.Context, []int64) error      { return nil }

type noopRepair struct{}

func (noopRepair) Start(context.Context) {}
func (noopRepair) Send(int64)            {}
