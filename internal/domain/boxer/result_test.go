package boxer

import "testing"

// TestParseFightResult 测试比赛结果解析
// 只接受小写的win/loss,不做trim、不做大小写转换
func TestParseFightResult(t *testing.T) {
	tests := []struct {
		input   string
		want    FightResult
		wantErr bool
	}{
		{"win", ResultWin, false},
		{"loss", ResultLoss, false},
		{"WIN", "", true},  // 大小写敏感
		{"Loss", "", true},
		{"draw", "", true}, // 不支持平局
		{"lose", "", true},
		{" win", "", true}, // 不做trim
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFightResult(tt.input)
		if tt.wantErr {
			if err != ErrInvalidResult {
				t.Errorf("输入%q期望返回ErrInvalidResult，实际%v", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("输入%q期望成功，实际失败: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("输入%q期望%s，实际%s", tt.input, tt.want, got)
		}
	}
}

// TestFightResult_Won 测试获胜判定
func TestFightResult_Won(t *testing.T) {
	if !ResultWin.Won() {
		t.Error("win应该判定为获胜")
	}
	if ResultLoss.Won() {
		t.Error("loss不应该判定为获胜")
	}
}
