package model

import (
	"gorm.io/gorm"
)

// Forum 贴吧（论坛）模型
type Forum struct {
	gorm.Model
	Uuid        string `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:贴吧唯一id"`
	Name        string `gorm:"column:name;uniqueIndex;type:varchar(30);not null;comment:贴吧名称"`
	Description string `gorm:"column:description;type:varchar(500);comment:贴吧简介"`
	Avatar      string `gorm:"column:avatar;type:char(255);default:https://cube.elemecdn.com/0/88/03b0d39583f48206768a7534e55bcpng.png;not null;comment:头像"`
	OwnerUuid   string `gorm:"column:owner_uuid;index;type:char(20);not null;comment:吧主uuid"`
	MemberCnt   int    `gorm:"column:member_cnt;default:1;comment:成员数"`
	PostCnt     int    `gorm:"column:post_cnt;default:0;comment:帖子数"`
	Status      int8   `gorm:"column:status;default:0;comment:状态，0.正常，1.封禁"`
}

func (Forum) TableName() string {
	return "forum"
}

// ForumCategory 贴吧分类
type ForumCategory struct {
	gorm.Model
	Name      string `gorm:"column:name;uniqueIndex;type:varchar(30);not null;comment:分类名称"`
	SortOrder int    `gorm:"column:sort_order;default:0;comment:排序权重"`
}

func (ForumCategory) TableName() string {
	return "forum_category"
}

// ForumCategoryMap 贴吧-分类关联表
type ForumCategoryMap struct {
	gorm.Model
	ForumUuid  string `gorm:"column:forum_uuid;index:idx_forum_category,unique;type:char(20);not null;comment:贴吧uuid"`
	CategoryId uint   `gorm:"column:category_id;index:idx_forum_category,unique;not null;comment:分类id"`
}

func (ForumCategoryMap) TableName() string {
	return "forum_category_map"
}
