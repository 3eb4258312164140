package timeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	timelineerrors "github.com/deployappsa/absensi/internal/timeline/errors"
	"github.com/deployappsa/absensi/internal/user"
)

type timelineFixture struct {
	svc   Service
	users user.Repository
}

func newTimelineFixture(t *testing.T) *timelineFixture {
	t.Helper()

	users := user.NewMemoryRepository()
	return &timelineFixture{
		svc:   NewService(NewMemoryRepository(), users),
		users: users,
	}
}

func (f *timelineFixture) seedUser(t *testing.T, name, role string) uint {
	t.Helper()
	u := &user.User{Username: name, Password: "x", Name: name, Role: role}
	assert.NoError(t, f.users.Create(context.Background(), u))
	return u.ID
}

func TestCreatePost_EmployeeCannotAnnounce(t *testing.T) {
	f := newTimelineFixture(t)
	userID := f.seedUser(t, "budi", user.RoleEmployee)

	_, err := f.svc.CreatePost(context.Background(), userID, user.RoleEmployee, CreatePostRequest{
		Content:        "Pengumuman palsu",
		IsAnnouncement: true,
	})
	assert.ErrorIs(t, err, timelineerrors.ErrAnnouncementForbidden)
}

func TestCreatePost_AdminAnnouncement(t *testing.T) {
	f := newTimelineFixture(t)
	adminID := f.seedUser(t, "admin", user.RoleAdmin)

	resp, err := f.svc.CreatePost(context.Background(), adminID, user.RoleAdmin, CreatePostRequest{
		Content:        "Libur bersama hari Jumat",
		IsAnnouncement: true,
	})
	assert.NoError(t, err)
	assert.True(t, resp.IsAnnouncement)
	assert.Equal(t, "admin", resp.UserName)
}

func TestList_NewestFirstWithAuthorAndCounts(t *testing.T) {
	f := newTimelineFixture(t)
	userID := f.seedUser(t, "Budi Santoso", user.RoleEmployee)

	first, err := f.svc.CreatePost(context.Background(), userID, user.RoleEmployee, CreatePostRequest{Content: "pertama"})
	assert.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := f.svc.CreatePost(context.Background(), userID, user.RoleEmployee, CreatePostRequest{Content: "kedua"})
	assert.NoError(t, err)

	_, err = f.svc.ToggleLike(context.Background(), userID, first.ID)
	assert.NoError(t, err)
	_, err = f.svc.AddComment(context.Background(), userID, first.ID, CreateCommentRequest{Content: "mantap"})
	assert.NoError(t, err)

	posts, err := f.svc.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Equal(t, second.ID, posts[0].ID)
	assert.Equal(t, first.ID, posts[1].ID)
	assert.Equal(t, "Budi Santoso", posts[1].UserName)
	assert.Equal(t, 1, posts[1].LikeCount)
	assert.Len(t, posts[1].Comments, 1)
	assert.Equal(t, "mantap", posts[1].Comments[0].Content)
}

func TestToggleLike_Toggles(t *testing.T) {
	f := newTimelineFixture(t)
	userID := f.seedUser(t, "budi", user.RoleEmployee)

	post, err := f.svc.CreatePost(context.Background(), userID, user.RoleEmployee, CreatePostRequest{Content: "halo"})
	assert.NoError(t, err)

	liked, err := f.svc.ToggleLike(context.Background(), userID, post.ID)
	assert.NoError(t, err)
	assert.True(t, liked.Liked)
	assert.Equal(t, 1, liked.LikeCount)

	unliked, err := f.svc.ToggleLike(context.Background(), userID, post.ID)
	assert.NoError(t, err)
	assert.False(t, unliked.Liked)
	assert.Equal(t, 0, unliked.LikeCount)
}

func TestToggleLike_UnknownPost(t *testing.T) {
	f := newTimelineFixture(t)
	userID := f.seedUser(t, "budi", user.RoleEmployee)

	_, err := f.svc.ToggleLike(context.Background(), userID, 42)
	assert.ErrorIs(t, err, timelineerrors.ErrPostNotFound)
}

func TestAddComment_UnknownPost(t *testing.T) {
	f := newTimelineFixture(t)
	userID := f.seedUser(t, "budi", user.RoleEmployee)

	_, err := f.svc.AddComment(context.Background(), userID, 42, CreateCommentRequest{Content: "hai"})
	assert.ErrorIs(t, err, timelineerrors.ErrPostNotFound)
}
