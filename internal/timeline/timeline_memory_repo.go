package timeline

import (
	"context"
	"sort"

	"github.com/deployappsa/absensi/internal/shared/memstore"
)

type memoryRepository struct {
	posts    *memstore.Table[Post]
	likes    *memstore.Table[Like]
	comments *memstore.Table[Comment]
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		posts:    memstore.NewTable[Post](),
		likes:    memstore.NewTable[Like](),
		comments: memstore.NewTable[Comment](),
	}
}

func (r *memoryRepository) CreatePost(ctx context.Context, p *Post) error {
	saved := r.posts.Insert(func(id uint) Post {
		p.ID = id
		return *p
	})
	*p = saved
	return nil
}

func (r *memoryRepository) FindPostByID(ctx context.Context, id uint) (*Post, error) {
	row, err := r.posts.Get(id)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *memoryRepository) FindAllPosts(ctx context.Context) ([]Post, error) {
	rows := r.posts.List(nil)
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].ID > rows[j].ID
		}
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})
	return rows, nil
}

func (r *memoryRepository) FindLike(ctx context.Context, timelineID, userID uint) (*Like, error) {
	row, err := r.likes.Find(func(l Like) bool {
		return l.TimelineID == timelineID && l.UserID == userID
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *memoryRepository) CreateLike(ctx context.Context, l *Like) error {
	saved := r.likes.Insert(func(id uint) Like {
		l.ID = id
		return *l
	})
	*l = saved
	return nil
}

func (r *memoryRepository) DeleteLike(ctx context.Context, id uint) error {
	return r.likes.Delete(id)
}

func (r *memoryRepository) CountLikes(ctx context.Context, timelineID uint) (int, error) {
	return len(r.likes.List(func(l Like) bool { return l.TimelineID == timelineID })), nil
}

func (r *memoryRepository) CreateComment(ctx context.Context, cm *Comment) error {
	saved := r.comments.Insert(func(id uint) Comment {
		cm.ID = id
		return *cm
	})
	*cm = saved
	return nil
}

func (r *memoryRepository) FindComments(ctx context.Context, timelineID uint) ([]Comment, error) {
	rows := r.comments.List(func(cm Comment) bool { return cm.TimelineID == timelineID })
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].ID < rows[j].ID
		}
		return rows[i].CreatedAt.Before(rows[j].CreatedAt)
	})
	return rows, nil
}
