package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"guitar-learning-system/models"
)

// CreateCommunityPost publishes a post to the shared feed. Author details
// are snapshotted onto the post so the feed renders without joins.
func (s *SocialService) CreateCommunityPost(userID, content string, postType models.PostType) (*models.CommunityPost, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	var user models.User
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if postType == "" {
		postType = models.PostTypePost
	}
	post := models.CommunityPost{
		ID:        "post_" + uuid.NewString(),
		UserID:    user.ID,
		UserName:  user.Name,
		Username:  user.Username,
		UserLevel: string(user.Level),
		Avatar:    user.Avatar,
		Content:   content,
		Likes:     0,
		Comments:  0,
		Shares:    0,
		LikedBy:   []string{},
		Type:      postType,
		Timestamp: time.Now().UTC(),
	}
	if err := s.DB.Create(&post).Error; err != nil {
		return nil, err
	}

	s.mirror(EventCommunityPost, post, userID)
	return &post, nil
}

// LikeCommunityPost toggles the caller's like on a post. Liking twice
// restores the original state.
func (s *SocialService) LikeCommunityPost(userID, postID string) (*models.CommunityPost, error) {
	var post models.CommunityPost
	if err := s.DB.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	if post.HasLiked(userID) {
		kept := make([]string, 0, len(post.LikedBy))
		for _, id := range post.LikedBy {
			if id != userID {
				kept = append(kept, id)
			}
		}
		post.LikedBy = kept
		if post.Likes > 0 {
			post.Likes--
		}
	} else {
		post.LikedBy = append(post.LikedBy, userID)
		post.Likes++
	}

	if err := s.DB.Save(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Posts returns the community feed, newest first.
func (s *SocialService) Posts() ([]models.CommunityPost, error) {
	var posts []models.CommunityPost
	err := s.DB.Order("timestamp DESC").Find(&posts).Error
	return posts, err
}

// ApplyRemotePost merges a post received from the channel. Posts without
// content are dropped; known ids are kept as-is. The like counter is pinned
// to the liker set so counts cannot drift.
func (s *SocialService) ApplyRemotePost(post models.CommunityPost) {
	if strings.TrimSpace(post.Content) == "" {
		return
	}
	if post.ID == "" {
		post.ID = "post_" + uuid.NewString()
	}
	var existing models.CommunityPost
	err := s.DB.First(&existing, "id = ?", post.ID).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}
	if post.LikedBy == nil {
		post.LikedBy = []string{}
	}
	post.Likes = len(post.LikedBy)
	if post.Type == "" {
		post.Type = models.PostTypePost
	}
	if post.Timestamp.IsZero() {
		post.Timestamp = time.Now().UTC()
	}
	_ = s.DB.Create(&post).Error
}
