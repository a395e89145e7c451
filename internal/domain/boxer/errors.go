package boxer

import (
	apperrors "github.com/jflippa/boxing/pkg/errors"
)

// 拳击手领域错误定义
var (
	// ErrBoxerNotFound 拳击手不存在
	ErrBoxerNotFound = apperrors.New(apperrors.ErrCodeNotFound, "拳击手不存在")

	// ErrNameDuplicate 姓名已存在
	ErrNameDuplicate = apperrors.New(apperrors.ErrCodeDuplicateEntry, "拳击手姓名已存在")

	// ErrInvalidWeight 体重不合法
	ErrInvalidWeight = apperrors.New(apperrors.ErrCodeInvalidParams, "体重不能低于125磅")

	// ErrInvalidHeight 身高不合法
	ErrInvalidHeight = apperrors.New(apperrors.ErrCodeInvalidParams, "身高必须大于0")

	// ErrInvalidReach 臂展不合法
	ErrInvalidReach = apperrors.New(apperrors.ErrCodeInvalidParams, "臂展必须大于0")

	// ErrInvalidAge 年龄不合法
	ErrInvalidAge = apperrors.New(apperrors.ErrCodeInvalidParams, "年龄必须在18到40岁之间")

	// ErrEmptyName 姓名为空
	ErrEmptyName = apperrors.New(apperrors.ErrCodeInvalidParams, "拳击手姓名不能为空")

	// ErrInvalidResult 比赛结果不合法
	ErrInvalidResult = apperrors.New(apperrors.ErrCodeInvalidParams, "比赛结果只能是win或loss")

	// ErrWinsExceedFights 战绩数据异常(胜场数超过总场次)
	ErrWinsExceedFights = apperrors.New(apperrors.ErrCodeInvariantViolation, "战绩数据异常:胜场数超过总场次")
)
