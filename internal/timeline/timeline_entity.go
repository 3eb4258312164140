package timeline

import "time"

type Post struct {
	ID             uint      `gorm:"column:id;primaryKey"`
	UserID         uint      `gorm:"column:user_id;not null"`
	Content        string    `gorm:"column:content;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;not null"`
	Image          *string   `gorm:"column:image"`
	IsAnnouncement bool      `gorm:"column:is_announcement;not null;default:false"`
}

func (Post) TableName() string {
	return "timeline"
}

type Like struct {
	ID         uint      `gorm:"column:id;primaryKey"`
	TimelineID uint      `gorm:"column:timeline_id;not null;uniqueIndex:idx_timeline_user"`
	UserID     uint      `gorm:"column:user_id;not null;uniqueIndex:idx_timeline_user"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"`
}

func (Like) TableName() string {
	return "timeline_likes"
}

type Comment struct {
	ID         uint      `gorm:"column:id;primaryKey"`
	TimelineID uint      `gorm:"column:timeline_id;not null"`
	UserID     uint      `gorm:"column:user_id;not null"`
	Content    string    `gorm:"column:content;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"`
}

func (Comment) TableName() string {
	return "timeline_comments"
}
