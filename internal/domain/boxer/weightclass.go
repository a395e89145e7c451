package boxer

// WeightClass 重量级别(派生属性)
// 教学要点:
// 1. 定义为string类型别名,JSON序列化直接输出级别名称
// 2. 级别由体重实时计算,不落库(避免与Weight字段产生不一致)
type WeightClass string

const (
	WeightClassHeavyweight   WeightClass = "HEAVYWEIGHT"   // >=203磅
	WeightClassMiddleweight  WeightClass = "MIDDLEWEIGHT"  // [166, 203)
	WeightClassLightweight   WeightClass = "LIGHTWEIGHT"   // [133, 166)
	WeightClassFeatherweight WeightClass = "FEATHERWEIGHT" // [125, 133)
)

// 各级别体重下限(磅),区间下限含、上限不含
const (
	MinWeight       = 125.0 // 可注册的最低体重,低于此值拒绝创建
	lightweightMin  = 133.0
	middleweightMin = 166.0
	heavyweightMin  = 203.0
)

// Classify 根据体重计算重量级别
// 规则(从高到低匹配,边界值归属更高级别):
// - >=203: HEAVYWEIGHT
// - >=166: MIDDLEWEIGHT
// - >=133: LIGHTWEIGHT
// - >=125: FEATHERWEIGHT
// - <125: 不属于任何级别,返回ErrInvalidWeight
func Classify(weight float64) (WeightClass, error) {
	switch {
	case weight >= heavyweightMin:
		return WeightClassHeavyweight, nil
	case weight >= middleweightMin:
		return WeightClassMiddleweight, nil
	case weight >= lightweightMin:
		return WeightClassLightweight, nil
	case weight >= MinWeight:
		return WeightClassFeatherweight, nil
	default:
		return "", ErrInvalidWeight
	}
}
