// Package member 实现贴吧成员关系业务逻辑
// 本文件为纯状态机部分：不依赖存储，便于单独测试
//
// 成员关系以软删除复用行表示三种状态：
//   - StateNone   无记录，从未加入
//   - StateActive 记录存在且未软删除，当前在吧
//   - StateLeft   记录存在但已软删除，曾加入后退出
package member

import (
	"time"

	"github.com/WhiteCrowZero/MinTieba/pkg/constants"
)

// MemberState 成员关系状态
type MemberState int

const (
	StateNone   MemberState = iota // 从未加入
	StateActive                    // 在吧
	StateLeft                      // 已退出（软删除行）
)

// 切换动作取值，对应接口返回的 detail 字段
const (
	ToggleJoined   = "joined"   // 首次加入，新建成员行
	ToggleRejoined = "rejoined" // 重新加入，恢复软删除行
	ToggleLeft     = "left"     // 退出，软删除成员行
)

// DecideToggle 根据当前状态决定切换动作
// 首次加入和重新加入必须区分：前者新建行，后者恢复原行并保留角色
func DecideToggle(state MemberState) string {
	switch state {
	case StateActive:
		return ToggleLeft
	case StateLeft:
		return ToggleRejoined
	default:
		return ToggleJoined
	}
}

// sameDay 两个时间是否为同一自然日（按本地时区）
func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// NextStreak 计算签到后的连续天数
// 无签到记录为 1；昨天签过则 +1；中断则重置为 1
// 调用方需先用 SignedInOn 排除当日重复签到
func NextStreak(lastSignInAt *time.Time, streak int, now time.Time) int {
	if lastSignInAt == nil {
		return 1
	}
	yesterday := now.AddDate(0, 0, -1)
	if sameDay(*lastSignInAt, yesterday) {
		return streak + 1
	}
	return 1
}

// GainedExp 单次签到获得的经验
// 基础经验随连续天数递增，但不低于单次最低经验
func GainedExp(streak int) int {
	bonus := streak - 1
	if bonus < 0 {
		bonus = 0
	}
	exp := constants.SIGN_IN_BASE_EXP + bonus
	if exp < constants.SIGN_IN_MIN_EXP {
		return constants.SIGN_IN_MIN_EXP
	}
	return exp
}

// LevelFor 按累计经验计算等级
func LevelFor(expPoints int) int {
	return 1 + expPoints/constants.LEVEL_EXP_STEP
}
