package timeline

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	timelineerrors "github.com/deployappsa/absensi/internal/timeline/errors"
	"github.com/deployappsa/absensi/internal/user"
)

//go:generate mockgen -source=timeline_service.go -destination=mock/timeline_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]PostResponse, error)
	CreatePost(ctx context.Context, userID uint, role string, req CreatePostRequest) (PostResponse, error)
	ToggleLike(ctx context.Context, userID, postID uint) (LikeResponse, error)
	AddComment(ctx context.Context, userID, postID uint, req CreateCommentRequest) (CommentResponse, error)
}

type service struct {
	repo   Repository
	users  user.Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, users user.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("timeline.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timeline.service")
	}
	return &service{repo: repo, users: users, logger: l, now: time.Now}
}

func (s *service) List(ctx context.Context) ([]PostResponse, error) {
	posts, err := s.repo.FindAllPosts(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]PostResponse, len(posts))
	for i, p := range posts {
		likeCount, err := s.repo.CountLikes(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		comments, err := s.repo.FindComments(ctx, p.ID)
		if err != nil {
			return nil, err
		}

		commentResp := make([]CommentResponse, len(comments))
		for j, cm := range comments {
			commentResp[j] = CommentResponse{
				ID:        cm.ID,
				UserID:    cm.UserID,
				UserName:  s.displayName(ctx, cm.UserID),
				Content:   cm.Content,
				CreatedAt: cm.CreatedAt,
			}
		}

		resp[i] = PostResponse{
			ID:             p.ID,
			UserID:         p.UserID,
			UserName:       s.displayName(ctx, p.UserID),
			Content:        p.Content,
			CreatedAt:      p.CreatedAt,
			Image:          p.Image,
			IsAnnouncement: p.IsAnnouncement,
			LikeCount:      likeCount,
			Comments:       commentResp,
		}
	}
	return resp, nil
}

func (s *service) CreatePost(ctx context.Context, userID uint, role string, req CreatePostRequest) (PostResponse, error) {
	if req.IsAnnouncement && role != user.RoleAdmin {
		return PostResponse{}, timelineerrors.ErrAnnouncementForbidden
	}

	p := &Post{
		UserID:         userID,
		Content:        req.Content,
		CreatedAt:      s.now(),
		Image:          req.Image,
		IsAnnouncement: req.IsAnnouncement,
	}
	if err := s.repo.CreatePost(ctx, p); err != nil {
		s.logger.Warn("create post persist failed", zap.Uint("user_id", userID), zap.Error(err))
		return PostResponse{}, err
	}

	s.logger.Info("timeline post created",
		zap.Uint("post_id", p.ID),
		zap.Uint("user_id", userID),
		zap.Bool("announcement", p.IsAnnouncement),
	)
	return PostResponse{
		ID:             p.ID,
		UserID:         p.UserID,
		UserName:       s.displayName(ctx, p.UserID),
		Content:        p.Content,
		CreatedAt:      p.CreatedAt,
		Image:          p.Image,
		IsAnnouncement: p.IsAnnouncement,
		Comments:       []CommentResponse{},
	}, nil
}

func (s *service) ToggleLike(ctx context.Context, userID, postID uint) (LikeResponse, error) {
	if _, err := s.repo.FindPostByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LikeResponse{}, timelineerrors.ErrPostNotFound
		}
		return LikeResponse{}, err
	}

	liked := true
	existing, err := s.repo.FindLike(ctx, postID, userID)
	switch {
	case err == nil:
		if err := s.repo.DeleteLike(ctx, existing.ID); err != nil {
			return LikeResponse{}, err
		}
		liked = false
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.repo.CreateLike(ctx, &Like{TimelineID: postID, UserID: userID, CreatedAt: s.now()}); err != nil {
			return LikeResponse{}, err
		}
	default:
		return LikeResponse{}, err
	}

	count, err := s.repo.CountLikes(ctx, postID)
	if err != nil {
		return LikeResponse{}, err
	}
	return LikeResponse{TimelineID: postID, Liked: liked, LikeCount: count}, nil
}

func (s *service) AddComment(ctx context.Context, userID, postID uint, req CreateCommentRequest) (CommentResponse, error) {
	if _, err := s.repo.FindPostByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CommentResponse{}, timelineerrors.ErrPostNotFound
		}
		return CommentResponse{}, err
	}

	cm := &Comment{TimelineID: postID, UserID: userID, Content: req.Content, CreatedAt: s.now()}
	if err := s.repo.CreateComment(ctx, cm); err != nil {
		return CommentResponse{}, err
	}

	return CommentResponse{
		ID:        cm.ID,
		UserID:    cm.UserID,
		UserName:  s.displayName(ctx, cm.UserID),
		Content:   cm.Content,
		CreatedAt: cm.CreatedAt,
	}, nil
}

func (s *service) displayName(ctx context.Context, userID uint) string {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "Unknown"
	}
	return u.Name
}
