package boxer

// FightResult 比赛结果
// 教学要点:定义为类型别名并集中解析校验,避免魔法字符串散落各层
type FightResult string

const (
	ResultWin  FightResult = "win"  // 获胜
	ResultLoss FightResult = "loss" // 失利
)

// ParseFightResult 解析并校验比赛结果
// 只接受win/loss(大小写敏感),其他值一律返回ErrInvalidResult
func ParseFightResult(s string) (FightResult, error) {
	r := FightResult(s)
	if !r.Valid() {
		return "", ErrInvalidResult
	}
	return r, nil
}

// Valid 判断结果值是否合法
func (r FightResult) Valid() bool {
	return r == ResultWin || r == ResultLoss
}

// Won 是否为获胜结果
func (r FightResult) Won() bool {
	return r == ResultWin
}
