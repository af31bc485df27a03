package errorx

import (
	"errors"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"预定义未找到错误", ErrNotFound, true},
		{"包装后的未找到错误", Wrap(errors.New("record not found"), CodeNotFound, "贴吧不存在"), true},
		{"其他业务码", New(CodeConflict, "数据冲突"), false},
		{"裸错误消息不做字符串匹配", errors.New("record not found"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.want {
				t.Errorf("IsNotFound(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(CodeForbidden, "没有操作权限")); got != CodeForbidden {
		t.Errorf("GetCode = %d, want %d", got, CodeForbidden)
	}
	// 多层包装后仍能取到业务码
	deep := Wrap(Wrap(errors.New("root"), CodeNotFound, "内层"), CodeServerBusy, "外层")
	if got := GetCode(deep); got != CodeServerBusy {
		t.Errorf("GetCode(嵌套) = %d, want 外层码 %d", got, CodeServerBusy)
	}
	if got := GetCode(errors.New("plain")); got != CodeServerBusy {
		t.Errorf("非业务错误默认码 = %d, want %d", got, CodeServerBusy)
	}
}
