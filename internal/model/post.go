package model

import (
	"gorm.io/gorm"
)

// Post 帖子模型
type Post struct {
	gorm.Model
	Uuid       string `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:帖子唯一id"`
	ForumUuid  string `gorm:"column:forum_uuid;index;type:char(20);not null;comment:所属贴吧uuid"`
	AuthorUuid string `gorm:"column:author_uuid;index;type:char(20);not null;comment:作者uuid"`
	Title      string `gorm:"column:title;type:varchar(100);not null;comment:标题"`
	Content    string `gorm:"column:content;type:text;not null;comment:正文"`
	ViewCnt    int    `gorm:"column:view_cnt;default:0;comment:浏览数"`
	LikeCnt    int    `gorm:"column:like_cnt;default:0;comment:点赞数"`
	CommentCnt int    `gorm:"column:comment_cnt;default:0;comment:评论数"`
	IsPinned   int8   `gorm:"column:is_pinned;default:0;comment:是否置顶，0.否，1.是"`
	Status     int8   `gorm:"column:status;index;default:0;comment:状态，0.正常，1.隐藏"`
}

func (Post) TableName() string {
	return "post"
}
