package member

import (
	"testing"
	"time"
)

func TestDecideToggle(t *testing.T) {
	cases := []struct {
		name  string
		state MemberState
		want  string
	}{
		{"从未加入则新建", StateNone, ToggleJoined},
		{"在吧则退出", StateActive, ToggleLeft},
		{"退出后重新加入", StateLeft, ToggleRejoined},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := DecideToggle(c.state); got != c.want {
				t.Errorf("DecideToggle(%v) = %q, want %q", c.state, got, c.want)
			}
		})
	}
}

func TestNextStreak(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)
	yesterday := now.AddDate(0, 0, -1)
	threeDaysAgo := now.AddDate(0, 0, -3)

	if got := NextStreak(nil, 0, now); got != 1 {
		t.Errorf("首次签到 streak = %d, want 1", got)
	}
	if got := NextStreak(&yesterday, 4, now); got != 5 {
		t.Errorf("连续签到 streak = %d, want 5", got)
	}
	if got := NextStreak(&threeDaysAgo, 9, now); got != 1 {
		t.Errorf("中断后 streak = %d, want 1", got)
	}

	// 昨天深夜签到，今天凌晨再签，仍算连续
	lateYesterday := time.Date(2025, 6, 14, 23, 59, 0, 0, time.Local)
	earlyToday := time.Date(2025, 6, 15, 0, 1, 0, 0, time.Local)
	if got := NextStreak(&lateYesterday, 1, earlyToday); got != 2 {
		t.Errorf("跨日连续签到 streak = %d, want 2", got)
	}
}

func TestGainedExp(t *testing.T) {
	cases := []struct {
		streak int
		want   int
	}{
		{1, 30},  // 基础 10，无奖励，补足最低 30
		{2, 30},  // 10+1 仍低于最低值
		{21, 30}, // 10+20 恰好触到最低值
		{25, 34}, // 10+24 超过最低值
		{0, 30},  // 非法输入按无奖励处理
	}
	for _, c := range cases {
		if got := GainedExp(c.streak); got != c.want {
			t.Errorf("GainedExp(%d) = %d, want %d", c.streak, got, c.want)
		}
	}
}

func TestLevelFor(t *testing.T) {
	cases := []struct {
		exp  int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{250, 3},
		{1000, 11},
	}
	for _, c := range cases {
		if got := LevelFor(c.exp); got != c.want {
			t.Errorf("LevelFor(%d) = %d, want %d", c.exp, got, c.want)
		}
	}
}
