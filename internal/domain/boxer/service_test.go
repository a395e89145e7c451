package boxer

import (
	"context"
	"testing"
)

// fakeRepository 内存版仓储
// 模拟数据库行为:自增ID、姓名唯一约束、原子累加战绩
type fakeRepository struct {
	seq  uint
	byID map[uint]*Boxer
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: make(map[uint]*Boxer)}
}

func (r *fakeRepository) Create(ctx context.Context, b *Boxer) error {
	for _, existing := range r.byID {
		if existing.Name == b.Name {
			return ErrNameDuplicate
		}
	}
	r.seq++
	b.ID = r.seq
	clone := *b
	r.byID[b.ID] = &clone
	return nil
}

func (r *fakeRepository) FindByID(ctx context.Context, id uint) (*Boxer, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, ErrBoxerNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *fakeRepository) FindByName(ctx context.Context, name string) (*Boxer, error) {
	for _, b := range r.byID {
		if b.Name == name {
			clone := *b
			return &clone, nil
		}
	}
	return nil, ErrBoxerNotFound
}

func (r *fakeRepository) Delete(ctx context.Context, id uint) error {
	if _, ok := r.byID[id]; !ok {
		return ErrBoxerNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeRepository) ApplyFightResult(ctx context.Context, id uint, won bool) error {
	b, ok := r.byID[id]
	if !ok {
		return ErrBoxerNotFound
	}
	if b.Wins > b.Fights {
		return ErrWinsExceedFights
	}
	b.Fights++
	if won {
		b.Wins++
	}
	return nil
}

func (r *fakeRepository) ListWithFights(ctx context.Context) ([]*Boxer, error) {
	out := make([]*Boxer, 0)
	for _, b := range r.byID {
		if b.Fights > 0 {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

// TestService_CreateBoxer 测试注册拳击手
func TestService_CreateBoxer(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	b, err := svc.CreateBoxer(ctx, "Mike Tyson", 218, 71, 71, 22)
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	if b.ID == 0 {
		t.Error("注册成功后应分配ID")
	}
	if b.Fights != 0 || b.Wins != 0 {
		t.Errorf("新注册拳击手战绩应为0胜0场，实际%d胜%d场", b.Wins, b.Fights)
	}
	if b.WeightClass() != WeightClassHeavyweight {
		t.Errorf("体重218期望级别HEAVYWEIGHT，实际%s", b.WeightClass())
	}
}

// TestService_CreateBoxer_ValidationOrder 测试字段校验顺序
// 多个字段同时非法时,按体重→身高→臂展→年龄→姓名的顺序报第一个错误
func TestService_CreateBoxer_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		weight  float64
		height  float64
		reach   float64
		age     int
		wantErr error
	}{
		{"体重不足时优先报体重", "", 100, -1, -1, 99, ErrInvalidWeight},
		{"身高非法时优先报身高", "", 150, 0, -1, 99, ErrInvalidHeight},
		{"臂展非法时优先报臂展", "", 150, 70, 0, 99, ErrInvalidReach},
		{"年龄过小", "Kid", 150, 70, 72, 17, ErrInvalidAge},
		{"年龄过大", "Veteran", 150, 70, 72, 41, ErrInvalidAge},
		{"姓名为空", "   ", 150, 70, 72, 25, ErrEmptyName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeRepository())

			_, err := svc.CreateBoxer(context.Background(), tt.arg, tt.weight, tt.height, tt.reach, tt.age)
			if err != tt.wantErr {
				t.Errorf("期望返回%v，实际%v", tt.wantErr, err)
			}
		})
	}
}

// TestService_CreateBoxer_TrimmedName 测试姓名trim与查重
func TestService_CreateBoxer_TrimmedName(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	// 带空白的姓名,存储时应去除首尾空白
	b, err := svc.CreateBoxer(ctx, "  Iron Mike  ", 218, 71, 71, 22)
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	if b.Name != "Iron Mike" {
		t.Errorf("期望存储trim后的姓名Iron Mike，实际%q", b.Name)
	}

	// 查询时同样先trim
	found, err := svc.GetBoxerByName(ctx, " Iron Mike ")
	if err != nil {
		t.Fatalf("按姓名查询失败: %v", err)
	}
	if found.ID != b.ID {
		t.Errorf("期望查到ID=%d，实际ID=%d", b.ID, found.ID)
	}

	// trim后相同的姓名视为重复
	if _, err := svc.CreateBoxer(ctx, "Iron Mike", 205, 70, 70, 25); err != ErrNameDuplicate {
		t.Errorf("期望返回ErrNameDuplicate，实际%v", err)
	}
}

// TestService_GetBoxerByID 测试按ID查询
func TestService_GetBoxerByID(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	b, err := svc.CreateBoxer(ctx, "Evander Holyfield", 208, 74, 77, 28)
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	found, err := svc.GetBoxerByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("按ID查询失败: %v", err)
	}
	if found.Name != "Evander Holyfield" {
		t.Errorf("期望姓名Evander Holyfield，实际%s", found.Name)
	}

	// 不存在的ID
	if _, err := svc.GetBoxerByID(ctx, 9999); err != ErrBoxerNotFound {
		t.Errorf("期望返回ErrBoxerNotFound，实际%v", err)
	}
}

// TestService_DeleteBoxer 测试删除拳击手
func TestService_DeleteBoxer(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	b, err := svc.CreateBoxer(ctx, "Larry Holmes", 215, 75, 81, 29)
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	if err := svc.DeleteBoxer(ctx, b.ID); err != nil {
		t.Fatalf("删除失败: %v", err)
	}

	// 删除后查询不到
	if _, err := svc.GetBoxerByID(ctx, b.ID); err != ErrBoxerNotFound {
		t.Errorf("删除后查询期望返回ErrBoxerNotFound，实际%v", err)
	}

	// 重复删除同一ID,第二次依然报不存在
	if err := svc.DeleteBoxer(ctx, b.ID); err != ErrBoxerNotFound {
		t.Errorf("重复删除期望返回ErrBoxerNotFound，实际%v", err)
	}
}

// TestService_RecordFight 测试登记比赛结果
func TestService_RecordFight(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	b, err := svc.CreateBoxer(ctx, "Lennox Lewis", 245, 77, 84, 27)
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	// 赢一场
	after, err := svc.RecordFight(ctx, b.ID, "win")
	if err != nil {
		t.Fatalf("登记win失败: %v", err)
	}
	if after.Fights != 1 || after.Wins != 1 {
		t.Errorf("赢1场后期望1胜1场，实际%d胜%d场", after.Wins, after.Fights)
	}

	// 输一场
	after, err = svc.RecordFight(ctx, b.ID, "loss")
	if err != nil {
		t.Fatalf("登记loss失败: %v", err)
	}
	if after.Fights != 2 || after.Wins != 1 {
		t.Errorf("输1场后期望1胜2场，实际%d胜%d场", after.Wins, after.Fights)
	}
}

// TestService_RecordFight_InvalidResult 测试非法结果不触发任何变更
func TestService_RecordFight_InvalidResult(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)
	ctx := context.Background()

	b, err := svc.CreateBoxer(ctx, "Riddick Bowe", 235, 77, 81, 25)
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	if _, err := svc.RecordFight(ctx, b.ID, "knockout"); err != ErrInvalidResult {
		t.Errorf("期望返回ErrInvalidResult，实际%v", err)
	}

	// 校验仓储中的战绩未被修改
	stored, _ := repo.FindByID(ctx, b.ID)
	if stored.Fights != 0 || stored.Wins != 0 {
		t.Errorf("非法结果不应改变战绩，实际%d胜%d场", stored.Wins, stored.Fights)
	}
}

// TestService_RecordFight_NotFound 测试不存在的拳击手
func TestService_RecordFight_NotFound(t *testing.T) {
	svc := NewService(newFakeRepository())

	if _, err := svc.RecordFight(context.Background(), 9999, "win"); err != ErrBoxerNotFound {
		t.Errorf("期望返回ErrBoxerNotFound，实际%v", err)
	}
}
