package boxer

import "testing"

// TestClassify 测试体重级别划分
// 边界规则:区间下限含、上限不含,边界值归属更高级别
func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		weight  float64
		want    WeightClass
		wantErr bool
	}{
		{"重量级下边界", 203, WeightClassHeavyweight, false},
		{"重量级", 236, WeightClassHeavyweight, false},
		{"中量级上边界", 202.99, WeightClassMiddleweight, false},
		{"中量级下边界", 166, WeightClassMiddleweight, false},
		{"轻量级上边界", 165.99, WeightClassLightweight, false},
		{"轻量级下边界", 133, WeightClassLightweight, false},
		{"羽量级上边界", 132.99, WeightClassFeatherweight, false},
		{"羽量级下边界", 125, WeightClassFeatherweight, false},
		{"低于最低体重", 124.99, "", true},
		{"零体重", 0, "", true},
		{"负体重", -10, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.weight)
			if tt.wantErr {
				if err != ErrInvalidWeight {
					t.Errorf("体重%.2f期望返回ErrInvalidWeight，实际%v", tt.weight, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("体重%.2f期望成功，实际失败: %v", tt.weight, err)
			}
			if got != tt.want {
				t.Errorf("体重%.2f期望级别%s，实际%s", tt.weight, tt.want, got)
			}
		})
	}
}

// TestBoxer_WeightClass 测试实体的级别派生
func TestBoxer_WeightClass(t *testing.T) {
	b := NewBoxer("Muhammad Ali", 210, 75, 78, 32)
	if b.WeightClass() != WeightClassHeavyweight {
		t.Errorf("体重210期望级别HEAVYWEIGHT，实际%s", b.WeightClass())
	}
}
