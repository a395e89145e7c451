package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 教学说明：测试辅助工具
// 这个文件包含集成测试的通用辅助函数，遵循DRY原则（Don't Repeat Yourself）
// 将重复的代码（HTTP请求、JSON解析）封装成可复用的函数

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080/api/v1"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// Response 统一响应结构
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// BoxerData 拳击手响应数据
type BoxerData struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Weight      float64 `json:"weight"`
	Height      float64 `json:"height"`
	Reach       float64 `json:"reach"`
	Age         int     `json:"age"`
	WeightClass string  `json:"weight_class"`
	Fights      int     `json:"fights"`
	Wins        int     `json:"wins"`
	CreatedAt   string  `json:"created_at"`
}

// LeaderboardData 排行榜响应数据
type LeaderboardData struct {
	SortBy string           `json:"sort_by"`
	Total  int              `json:"total"`
	List   []LeaderboardRow `json:"list"`
}

// LeaderboardRow 排行榜行
type LeaderboardRow struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Weight      float64 `json:"weight"`
	Height      float64 `json:"height"`
	Reach       float64 `json:"reach"`
	Age         int     `json:"age"`
	WeightClass string  `json:"weight_class"`
	Fights      int     `json:"fights"`
	Wins        int     `json:"wins"`
	WinPct      float64 `json:"win_pct"`
}

// PostJSON 发送POST请求并解析JSON响应
//
// 教学说明：
// - 使用*testing.T参数，可以在失败时立即终止测试
// - 使用require包进行断言，失败会立即停止（不继续执行）
// - 返回*Response而非error，简化调用方代码
func PostJSON(t *testing.T, url string, data interface{}) *Response {
	jsonData, err := json.Marshal(data)
	require.NoError(t, err, "JSON序列化失败")

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	require.NoError(t, err, "创建HTTP请求失败")

	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(body, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(body))

	return &result
}

// GetJSON 发送GET请求并解析JSON响应
func GetJSON(t *testing.T, url string) *Response {
	req, err := http.NewRequest("GET", url, nil)
	require.NoError(t, err, "创建HTTP请求失败")

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(body, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(body))

	return &result
}

// DeleteJSON 发送DELETE请求并解析JSON响应
func DeleteJSON(t *testing.T, url string) *Response {
	req, err := http.NewRequest("DELETE", url, nil)
	require.NoError(t, err, "创建HTTP请求失败")

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(body, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(body))

	return &result
}

// GenerateTestBoxerName 生成唯一的测试拳击手姓名
//
// 教学说明：
// 姓名是业务唯一标识，使用纳秒时间戳确保测试重复运行时不冲突
func GenerateTestBoxerName(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}

// CreateTestBoxer 注册测试拳击手并返回档案数据
//
// 教学说明：
// 这是一个"高阶"辅助函数，封装了注册流程
// 简化了测试代码，让测试更关注业务逻辑而非基础设施
func CreateTestBoxer(t *testing.T, name string, weight float64) *BoxerData {
	boxerReq := map[string]interface{}{
		"name":   name,
		"weight": weight,
		"height": 72,
		"reach":  74,
		"age":    28,
	}

	boxerResp := PostJSON(t, BaseURL+"/boxers", boxerReq)
	require.Equal(t, 0, boxerResp.Code, "注册拳击手失败: %s", boxerResp.Message)

	var boxerData BoxerData
	err := json.Unmarshal(boxerResp.Data, &boxerData)
	require.NoError(t, err, "解析拳击手响应失败")

	return &boxerData
}

// RecordTestFight 登记一场比赛结果并返回最新档案
func RecordTestFight(t *testing.T, boxerID uint, result string) *BoxerData {
	fightReq := map[string]string{
		"result": result,
	}

	fightResp := PostJSON(t, fmt.Sprintf("%s/boxers/%d/fights", BaseURL, boxerID), fightReq)
	require.Equal(t, 0, fightResp.Code, "登记比赛失败: %s", fightResp.Message)

	var boxerData BoxerData
	err := json.Unmarshal(fightResp.Data, &boxerData)
	require.NoError(t, err, "解析拳击手响应失败")

	return &boxerData
}
