package integration

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 教学说明：拳击手模块集成测试
//
// 测试场景覆盖：
// 1. 拳击手注册（字段校验、校验顺序、姓名查重）
// 2. 按ID/姓名查询
// 3. 删除（硬删除、重复删除）
// 4. 登记比赛结果（win/loss、大小写敏感、战绩累加）
//
// 运行前提：API服务已启动（go run cmd/api/main.go）

// TestBoxerRegister 测试拳击手注册功能
func TestBoxerRegister(t *testing.T) {
	t.Run("正常注册拳击手", func(t *testing.T) {
		name := GenerateTestBoxerName("ali")
		boxerReq := map[string]interface{}{
			"name":   name,
			"weight": 210,
			"height": 75,
			"reach":  78,
			"age":    32,
		}

		resp := PostJSON(t, BaseURL+"/boxers", boxerReq)

		assert.Equal(t, 0, resp.Code, "注册应该成功")

		var data BoxerData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err, "解析响应数据失败")

		assert.NotZero(t, data.ID, "拳击手ID应该大于0")
		assert.Equal(t, name, data.Name, "姓名应该一致")
		assert.Equal(t, "HEAVYWEIGHT", data.WeightClass, "体重210应该归入重量级")
		assert.Equal(t, 0, data.Fights, "新注册拳击手总场次应为0")
		assert.Equal(t, 0, data.Wins, "新注册拳击手胜场数应为0")

		t.Logf("✓ 注册成功，拳击手ID: %d, 级别: %s", data.ID, data.WeightClass)
	})

	t.Run("各重量级别归类", func(t *testing.T) {
		testCases := []struct {
			weight      float64
			weightClass string
		}{
			{203, "HEAVYWEIGHT"},   // 边界值归属更高级别
			{166, "MIDDLEWEIGHT"},
			{133, "LIGHTWEIGHT"},
			{125, "FEATHERWEIGHT"}, // 最低可注册体重
		}

		for _, tc := range testCases {
			data := CreateTestBoxer(t, GenerateTestBoxerName("class"), tc.weight)
			assert.Equal(t, tc.weightClass, data.WeightClass,
				"体重%.0f期望级别%s", tc.weight, tc.weightClass)

			t.Logf("✓ 体重%.0f磅归入%s", tc.weight, data.WeightClass)
		}
	})

	t.Run("体重不足应失败", func(t *testing.T) {
		boxerReq := map[string]interface{}{
			"name":   GenerateTestBoxerName("light"),
			"weight": 100, // 低于125磅下限
			"height": 70,
			"reach":  72,
			"age":    25,
		}

		resp := PostJSON(t, BaseURL+"/boxers", boxerReq)

		assert.Equal(t, 40900, resp.Code, "体重不足应该返回参数错误")
		assert.Contains(t, resp.Message, "体重", "错误信息应该提示体重相关")

		t.Logf("✓ 体重不足正确被拒绝: %s", resp.Message)
	})

	t.Run("多字段非法时按固定顺序报错", func(t *testing.T) {
		// 教学说明：体重、身高、臂展、年龄、姓名按固定顺序校验
		// 多个字段同时非法时只报第一个命中的错误
		boxerReq := map[string]interface{}{
			"name":   "",  // 姓名也非法
			"weight": 100, // 体重非法（最先校验）
			"height": -1,  // 身高非法
			"reach":  -1,  // 臂展非法
			"age":    99,  // 年龄非法
		}

		resp := PostJSON(t, BaseURL+"/boxers", boxerReq)

		assert.Equal(t, 40900, resp.Code, "应该返回参数错误")
		assert.Contains(t, resp.Message, "体重", "应该优先报体重错误")

		t.Logf("✓ 校验顺序正确，优先报体重: %s", resp.Message)
	})

	t.Run("年龄越界应失败", func(t *testing.T) {
		for _, age := range []int{17, 41} {
			boxerReq := map[string]interface{}{
				"name":   GenerateTestBoxerName("age"),
				"weight": 150,
				"height": 70,
				"reach":  72,
				"age":    age,
			}

			resp := PostJSON(t, BaseURL+"/boxers", boxerReq)

			assert.Equal(t, 40900, resp.Code, "年龄%d应该失败", age)
			assert.Contains(t, resp.Message, "年龄", "错误信息应该提示年龄相关")

			t.Logf("✓ 年龄%d正确被拒绝: %s", age, resp.Message)
		}
	})

	t.Run("姓名空白应失败", func(t *testing.T) {
		boxerReq := map[string]interface{}{
			"name":   "   ", // 只有空白字符
			"weight": 150,
			"height": 70,
			"reach":  72,
			"age":    25,
		}

		resp := PostJSON(t, BaseURL+"/boxers", boxerReq)

		assert.Equal(t, 40900, resp.Code, "空白姓名应该失败")
		assert.Contains(t, resp.Message, "姓名", "错误信息应该提示姓名相关")

		t.Logf("✓ 空白姓名正确被拒绝: %s", resp.Message)
	})

	t.Run("姓名重复应失败", func(t *testing.T) {
		name := GenerateTestBoxerName("dup")

		// 第一次注册
		CreateTestBoxer(t, name, 180)

		// 第二次注册（相同姓名）
		boxerReq := map[string]interface{}{
			"name":   name,
			"weight": 190,
			"height": 74,
			"reach":  76,
			"age":    30,
		}

		resp := PostJSON(t, BaseURL+"/boxers", boxerReq)

		assert.Equal(t, 40009, resp.Code, "重复姓名应该返回冲突错误")
		assert.Contains(t, resp.Message, "姓名", "错误信息应该提示姓名相关")

		t.Logf("✓ 重复姓名正确返回错误: %s", resp.Message)
	})

	t.Run("姓名首尾空白应被去除", func(t *testing.T) {
		name := GenerateTestBoxerName("trim")

		boxerReq := map[string]interface{}{
			"name":   "  " + name + "  ",
			"weight": 170,
			"height": 71,
			"reach":  73,
			"age":    26,
		}

		resp := PostJSON(t, BaseURL+"/boxers", boxerReq)
		require.Equal(t, 0, resp.Code, "注册应该成功: %s", resp.Message)

		var data BoxerData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err, "解析响应数据失败")

		assert.Equal(t, name, data.Name, "存储的姓名应该去除首尾空白")

		t.Logf("✓ 姓名已规范化存储: %q", data.Name)
	})
}

// TestBoxerQuery 测试拳击手查询功能
func TestBoxerQuery(t *testing.T) {
	name := GenerateTestBoxerName("query")
	created := CreateTestBoxer(t, name, 205)

	t.Run("按ID查询", func(t *testing.T) {
		resp := GetJSON(t, fmt.Sprintf("%s/boxers/%d", BaseURL, created.ID))

		assert.Equal(t, 0, resp.Code, "查询应该成功")

		var data BoxerData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err, "解析响应数据失败")

		assert.Equal(t, created.ID, data.ID, "ID应该一致")
		assert.Equal(t, name, data.Name, "姓名应该一致")
		assert.Equal(t, "HEAVYWEIGHT", data.WeightClass, "级别应该一致")

		t.Logf("✓ 按ID查询成功: %s", data.Name)
	})

	t.Run("按姓名查询", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/boxers/name/"+name)

		assert.Equal(t, 0, resp.Code, "查询应该成功")

		var data BoxerData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err, "解析响应数据失败")

		assert.Equal(t, created.ID, data.ID, "应该查到同一个拳击手")

		t.Logf("✓ 按姓名查询成功: ID=%d", data.ID)
	})

	t.Run("不存在的ID应返回404错误码", func(t *testing.T) {
		resp := GetJSON(t, fmt.Sprintf("%s/boxers/%d", BaseURL, 99999999))

		assert.Equal(t, 40400, resp.Code, "不存在的ID应该返回40400")
		assert.Contains(t, resp.Message, "不存在", "错误信息应该提示不存在")

		t.Logf("✓ 不存在的ID正确返回错误: %s", resp.Message)
	})

	t.Run("不存在的姓名应返回404错误码", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/boxers/name/no_such_boxer_ever")

		assert.Equal(t, 40400, resp.Code, "不存在的姓名应该返回40400")

		t.Logf("✓ 不存在的姓名正确返回错误: %s", resp.Message)
	})

	t.Run("非数字ID应返回参数错误", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/boxers/abc")

		assert.Equal(t, 40900, resp.Code, "非数字ID应该返回参数错误")

		t.Logf("✓ 非数字ID正确被拒绝: %s", resp.Message)
	})
}

// TestBoxerDelete 测试拳击手删除功能
func TestBoxerDelete(t *testing.T) {
	created := CreateTestBoxer(t, GenerateTestBoxerName("delete"), 185)

	t.Run("正常删除", func(t *testing.T) {
		resp := DeleteJSON(t, fmt.Sprintf("%s/boxers/%d", BaseURL, created.ID))

		assert.Equal(t, 0, resp.Code, "删除应该成功")

		// 删除后查询不到
		getResp := GetJSON(t, fmt.Sprintf("%s/boxers/%d", BaseURL, created.ID))
		assert.Equal(t, 40400, getResp.Code, "删除后应该查询不到")

		t.Logf("✓ 删除成功，ID=%d已不存在", created.ID)
	})

	t.Run("重复删除应返回404错误码", func(t *testing.T) {
		// 教学说明：硬删除，第二次删除同一ID时记录已不存在
		resp := DeleteJSON(t, fmt.Sprintf("%s/boxers/%d", BaseURL, created.ID))

		assert.Equal(t, 40400, resp.Code, "重复删除应该返回40400")

		t.Logf("✓ 重复删除正确返回错误: %s", resp.Message)
	})
}

// TestRecordFight 测试登记比赛结果功能
func TestRecordFight(t *testing.T) {
	created := CreateTestBoxer(t, GenerateTestBoxerName("fighter"), 220)

	t.Run("登记胜场", func(t *testing.T) {
		data := RecordTestFight(t, created.ID, "win")

		assert.Equal(t, 1, data.Fights, "总场次应该为1")
		assert.Equal(t, 1, data.Wins, "胜场数应该为1")

		t.Logf("✓ 登记win成功: %d胜%d场", data.Wins, data.Fights)
	})

	t.Run("登记负场", func(t *testing.T) {
		data := RecordTestFight(t, created.ID, "loss")

		assert.Equal(t, 2, data.Fights, "总场次应该为2")
		assert.Equal(t, 1, data.Wins, "胜场数应该仍为1")

		t.Logf("✓ 登记loss成功: %d胜%d场", data.Wins, data.Fights)
	})

	t.Run("非法结果应失败", func(t *testing.T) {
		// 教学说明：结果严格匹配win/loss，大小写敏感且不做trim
		invalidResults := []string{"draw", "WIN", "Loss", " win", ""}

		for _, result := range invalidResults {
			fightReq := map[string]string{"result": result}

			resp := PostJSON(t, fmt.Sprintf("%s/boxers/%d/fights", BaseURL, created.ID), fightReq)

			assert.Equal(t, 40900, resp.Code, "结果%q应该失败", result)
			assert.Contains(t, resp.Message, "win", "错误信息应该提示合法取值")

			t.Logf("✓ 非法结果%q正确被拒绝: %s", result, resp.Message)
		}

		// 确认非法登记没有影响战绩
		getResp := GetJSON(t, fmt.Sprintf("%s/boxers/%d", BaseURL, created.ID))
		require.Equal(t, 0, getResp.Code, "查询应该成功")

		var data BoxerData
		err := json.Unmarshal(getResp.Data, &data)
		require.NoError(t, err, "解析响应数据失败")

		assert.Equal(t, 2, data.Fights, "非法结果不应改变总场次")
		assert.Equal(t, 1, data.Wins, "非法结果不应改变胜场数")
	})

	t.Run("不存在的拳击手应失败", func(t *testing.T) {
		fightReq := map[string]string{"result": "win"}

		resp := PostJSON(t, fmt.Sprintf("%s/boxers/%d/fights", BaseURL, 99999999), fightReq)

		assert.Equal(t, 40400, resp.Code, "不存在的拳击手应该返回40400")

		t.Logf("✓ 不存在的拳击手正确返回错误: %s", resp.Message)
	})
}
