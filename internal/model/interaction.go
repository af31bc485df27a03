// Package model 定义数据库实体模型
// 本文件定义互动相关模型：评论、点赞、收藏、关注
package model

import (
	"gorm.io/gorm"
)

// 点赞/收藏目标类型
const (
	TargetTypePost    = "post"
	TargetTypeComment = "comment"
)

// Comment 评论模型，支持一级回复（ParentId 非空时为楼中楼）
type Comment struct {
	gorm.Model
	Uuid       string `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:评论唯一id"`
	PostUuid   string `gorm:"column:post_uuid;index;type:char(20);not null;comment:帖子uuid"`
	AuthorUuid string `gorm:"column:author_uuid;index;type:char(20);not null;comment:作者uuid"`
	ParentUuid string `gorm:"column:parent_uuid;index;type:char(20);comment:父评论uuid，空为一级评论"`
	Content    string `gorm:"column:content;type:varchar(1000);not null;comment:内容"`
	LikeCnt    int    `gorm:"column:like_cnt;default:0;comment:点赞数"`
	Status     int8   `gorm:"column:status;default:0;comment:状态，0.正常，1.隐藏"`
}

func (Comment) TableName() string {
	return "comment"
}

// LikeRecord 点赞记录
// (user, target_type, target_uuid) 唯一，再次点赞视为取消（软删除切换）
type LikeRecord struct {
	gorm.Model
	UserUuid   string `gorm:"column:user_uuid;index:idx_like_user_target,unique;type:char(20);not null;comment:用户uuid"`
	TargetType string `gorm:"column:target_type;index:idx_like_user_target,unique;type:varchar(10);not null;comment:目标类型，post/comment"`
	TargetUuid string `gorm:"column:target_uuid;index:idx_like_user_target,unique;type:char(20);not null;comment:目标uuid"`
}

func (LikeRecord) TableName() string {
	return "like_record"
}

// CollectionFolder 收藏夹
type CollectionFolder struct {
	gorm.Model
	Uuid     string `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:收藏夹唯一id"`
	UserUuid string `gorm:"column:user_uuid;index;type:char(20);not null;comment:用户uuid"`
	Name     string `gorm:"column:name;type:varchar(30);not null;comment:收藏夹名称"`
	ItemCnt  int    `gorm:"column:item_cnt;default:0;comment:收藏条目数"`
}

func (CollectionFolder) TableName() string {
	return "collection_folder"
}

// CollectionItem 收藏条目
type CollectionItem struct {
	gorm.Model
	FolderUuid string `gorm:"column:folder_uuid;index:idx_item_folder_post,unique;type:char(20);not null;comment:收藏夹uuid"`
	PostUuid   string `gorm:"column:post_uuid;index:idx_item_folder_post,unique;type:char(20);not null;comment:帖子uuid"`
}

func (CollectionItem) TableName() string {
	return "collection_item"
}

// UserFollow 关注关系
// follower 关注 followee，取关为软删除，重新关注恢复原行
type UserFollow struct {
	gorm.Model
	FollowerUuid string `gorm:"column:follower_uuid;index:idx_follow_pair,unique;type:char(20);not null;comment:关注人uuid"`
	FolloweeUuid string `gorm:"column:followee_uuid;index:idx_follow_pair,unique;type:char(20);not null;comment:被关注人uuid"`
}

func (UserFollow) TableName() string {
	return "user_follow"
}
