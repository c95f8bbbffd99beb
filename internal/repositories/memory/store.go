// Package memory holds in-memory implementations of the repository
// interfaces. They back the handler tests so no live database is needed,
// and mirror the storage-layer rules the SQL schema enforces: cascades,
// group-reference clearing and the composite uniqueness constraints.
package memory

import (
	"sync"

	"github.com/sergey-xx/Blogicum/internal/models"
)

// Store owns every entity table. Cascades cross entity boundaries, so a
// single struct guards them all with one mutex.
type Store struct {
	mu       sync.Mutex
	users    map[uint]models.User
	groups   map[uint]models.Group
	posts    map[uint]models.Post
	comments map[uint]models.Comment
	follows  map[uint]models.Follow
	likes    map[uint]models.Like
	nextID   uint
}

func NewStore() *Store {
	return &Store{
		users:    make(map[uint]models.User),
		groups:   make(map[uint]models.Group),
		posts:    make(map[uint]models.Post),
		comments: make(map[uint]models.Comment),
		follows:  make(map[uint]models.Follow),
		likes:    make(map[uint]models.Like),
		nextID:   1,
	}
}

func (s *Store) id() uint {
	id := s.nextID
	s.nextID++
	return id
}

func (s *Store) Users() *UserMemoryRepository       { return &UserMemoryRepository{s} }
func (s *Store) Groups() *GroupMemoryRepository     { return &GroupMemoryRepository{s} }
func (s *Store) Posts() *PostMemoryRepository       { return &PostMemoryRepository{s} }
func (s *Store) Comments() *CommentMemoryRepository { return &CommentMemoryRepository{s} }
func (s *Store) Follows() *FollowMemoryRepository   { return &FollowMemoryRepository{s} }
func (s *Store) Likes() *LikeMemoryRepository       { return &LikeMemoryRepository{s} }

// deletePostLocked removes a post and everything hanging off it.
// Callers must hold s.mu.
func (s *Store) deletePostLocked(id uint) {
	delete(s.posts, id)
	for cid, c := range s.comments {
		if c.PostID == id {
			delete(s.comments, cid)
		}
	}
	for lid, l := range s.likes {
		if l.PostID == id {
			delete(s.likes, lid)
		}
	}
}

// deleteUserLocked removes a user, their posts (with comments and likes),
// their comments and both directions of their follow rows.
// Callers must hold s.mu.
func (s *Store) deleteUserLocked(id uint) {
	delete(s.users, id)
	for pid, p := range s.posts {
		if p.AuthorID == id {
			s.deletePostLocked(pid)
		}
	}
	for cid, c := range s.comments {
		if c.AuthorID == id {
			delete(s.comments, cid)
		}
	}
	for fid, f := range s.follows {
		if f.UserID == id || f.AuthorID == id {
			delete(s.follows, fid)
		}
	}
	for lid, l := range s.likes {
		if l.UserID == id {
			delete(s.likes, lid)
		}
	}
}
