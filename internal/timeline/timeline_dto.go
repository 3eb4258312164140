package timeline

import "time"

type CreatePostRequest struct {
	Content        string  `json:"content" binding:"required"`
	Image          *string `json:"image"`
	IsAnnouncement bool    `json:"isAnnouncement"`
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type CommentResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	UserName  string    `json:"userName"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type PostResponse struct {
	ID             uint              `json:"id"`
	UserID         uint              `json:"userId"`
	UserName       string            `json:"userName"`
	Content        string            `json:"content"`
	CreatedAt      time.Time         `json:"createdAt"`
	Image          *string           `json:"image,omitempty"`
	IsAnnouncement bool              `json:"isAnnouncement"`
	LikeCount      int               `json:"likeCount"`
	Comments       []CommentResponse `json:"comments"`
}

type LikeResponse struct {
	TimelineID uint `json:"timelineId"`
	Liked      bool `json:"liked"`
	LikeCount  int  `json:"likeCount"`
}
