package repository

import (
	"errors"
	"testing"

	"github.com/WhiteCrowZero/MinTieba/pkg/errorx"

	"gorm.io/gorm"
)

func TestWrapDBError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"记录不存在", gorm.ErrRecordNotFound, errorx.CodeNotFound},
		{"唯一约束冲突", gorm.ErrDuplicatedKey, errorx.CodeConflict},
		{"其他数据库错误", errors.New("connection refused"), errorx.CodeDBError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := wrapDBError(tt.err, "测试操作")
			if got := errorx.GetCode(wrapped); got != tt.wantCode {
				t.Errorf("wrapDBError(%v) code = %d, want %d", tt.err, got, tt.wantCode)
			}
			if !errors.Is(wrapped, tt.err) {
				t.Errorf("wrapDBError(%v) 应保留底层错误链", tt.err)
			}
		})
	}

	if wrapDBError(nil, "测试操作") != nil {
		t.Error("wrapDBError(nil) 应返回 nil")
	}
}

func TestWrapDBErrorNotFoundDetection(t *testing.T) {
	wrapped := wrapDBErrorf(gorm.ErrRecordNotFound, "查询贴吧 uuid=%s", "F1")
	if !errorx.IsNotFound(wrapped) {
		t.Error("包装后的 ErrRecordNotFound 应被 IsNotFound 识别")
	}
	dup := wrapDBErrorf(gorm.ErrDuplicatedKey, "绑定分类 forum_uuid=%s", "F1")
	if errorx.IsNotFound(dup) {
		t.Error("唯一约束冲突不应被识别为未找到")
	}
}
