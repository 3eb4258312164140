package timeline

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=timeline_repo.go -destination=mock/timeline_repo_mock.go -package=mock
type Repository interface {
	CreatePost(ctx context.Context, p *Post) error
	FindPostByID(ctx context.Context, id uint) (*Post, error)
	FindAllPosts(ctx context.Context) ([]Post, error)

	FindLike(ctx context.Context, timelineID, userID uint) (*Like, error)
	CreateLike(ctx context.Context, l *Like) error
	DeleteLike(ctx context.Context, id uint) error
	CountLikes(ctx context.Context, timelineID uint) (int, error)

	CreateComment(ctx context.Context, cm *Comment) error
	FindComments(ctx context.Context, timelineID uint) ([]Comment, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreatePost(ctx context.Context, p *Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindPostByID(ctx context.Context, id uint) (*Post, error) {
	var p Post
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindAllPosts(ctx context.Context) ([]Post, error) {
	var rows []Post
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindLike(ctx context.Context, timelineID, userID uint) (*Like, error) {
	var l Like
	err := r.db.WithContext(ctx).
		Where("timeline_id = ? AND user_id = ?", timelineID, userID).
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) CreateLike(ctx context.Context, l *Like) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) DeleteLike(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Like{}, "id = ?", id).Error
}

func (r *repository) CountLikes(ctx context.Context, timelineID uint) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Like{}).
		Where("timeline_id = ?", timelineID).
		Count(&count).Error
	return int(count), err
}

func (r *repository) CreateComment(ctx context.Context, cm *Comment) error {
	return r.db.WithContext(ctx).Create(cm).Error
}

func (r *repository) FindComments(ctx context.Context, timelineID uint) ([]Comment, error) {
	var rows []Comment
	err := r.db.WithContext(ctx).
		Where("timeline_id = ?", timelineID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}
