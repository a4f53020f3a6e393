package models

import "time"

// PostType distinguishes plain posts from achievement and milestone shares.
type PostType string

const (
	PostTypePost        PostType = "post"
	PostTypeAchievement PostType = "achievement"
	PostTypeMilestone   PostType = "milestone"
)

// CommunityPost is one feed entry. Invariant: Likes == len(LikedBy); a user
// toggles membership in LikedBy, so a second like undoes the first.
type CommunityPost struct {
	ID        string `gorm:"primaryKey" json:"id"`
	UserID    string `gorm:"index;not null" json:"userId"`
	UserName  string `json:"userName"`
	Username  string `json:"username"`
	UserLevel string `json:"userLevel"`
	Avatar    string `json:"avatar"`
	Content   string `json:"content"`

	Likes    int      `gorm:"default:0" json:"likes"`
	Comments int      `gorm:"default:0" json:"comments"`
	Shares   int      `gorm:"default:0" json:"shares"`
	LikedBy  []string `gorm:"serializer:json" json:"likedBy"`

	Type      PostType  `gorm:"default:post" json:"type"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
}

// HasLiked reports whether the user id is in the post's liked-by set.
func (p *CommunityPost) HasLiked(userID string) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}
