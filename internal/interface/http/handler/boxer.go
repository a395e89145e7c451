package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appboxer "github.com/jflippa/boxing/internal/application/boxer"
	"github.com/jflippa/boxing/internal/interface/http/dto"
	"github.com/jflippa/boxing/pkg/response"
)

// BoxerHandler 拳击手HTTP处理器
type BoxerHandler struct {
	createBoxerUseCase *appboxer.CreateBoxerUseCase
	getBoxerUseCase    *appboxer.GetBoxerUseCase
	deleteBoxerUseCase *appboxer.DeleteBoxerUseCase
	recordFightUseCase *appboxer.RecordFightUseCase
}

// NewBoxerHandler 创建拳击手处理器
func NewBoxerHandler(
	createBoxerUseCase *appboxer.CreateBoxerUseCase,
	getBoxerUseCase *appboxer.GetBoxerUseCase,
	deleteBoxerUseCase *appboxer.DeleteBoxerUseCase,
	recordFightUseCase *appboxer.RecordFightUseCase,
) *BoxerHandler {
	return &BoxerHandler{
		createBoxerUseCase: createBoxerUseCase,
		getBoxerUseCase:    getBoxerUseCase,
		deleteBoxerUseCase: deleteBoxerUseCase,
		recordFightUseCase: recordFightUseCase,
	}
}

// parseIDParam 解析路径中的拳击手ID
// 解析失败时已写入错误响应,调用方直接return即可
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithCode(c, 40900, "无效的拳击手ID: "+c.Param("id"))
		return 0, false
	}
	return uint(id), true
}

// toBoxerResponse 应用层DTO → HTTP响应DTO
func toBoxerResponse(result *appboxer.BoxerResponse) *dto.BoxerResponse {
	return &dto.BoxerResponse{
		ID:          result.ID,
		Name:        result.Name,
		Weight:      result.Weight,
		Height:      result.Height,
		Reach:       result.Reach,
		Age:         result.Age,
		WeightClass: result.WeightClass,
		Fights:      result.Fights,
		Wins:        result.Wins,
		CreatedAt:   result.CreatedAt,
	}
}

// CreateBoxer 注册拳击手
// @Summary      注册拳击手
// @Description  登记新拳击手进入名册,体重必须达到羽量级下限(125磅),姓名不可重复
// @Tags         拳击手
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBoxerRequest true "拳击手信息"
// @Success      200 {object} response.Response{data=dto.BoxerResponse}
// @Failure      400 {object} response.Response "参数不合法"
// @Failure      409 {object} response.Response "姓名已存在"
// @Router       /api/v1/boxers [post]
func (h *BoxerHandler) CreateBoxer(c *gin.Context) {
	// 1. 参数绑定
	// 这里只负责JSON反序列化,字段取值校验在领域层
	var req dto.CreateBoxerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	// 2. 调用应用层用例
	result, err := h.createBoxerUseCase.Execute(c.Request.Context(), appboxer.CreateBoxerRequest{
		Name:   req.Name,
		Weight: req.Weight,
		Height: req.Height,
		Reach:  req.Reach,
		Age:    req.Age,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// 3. 构建HTTP响应
	response.Success(c, toBoxerResponse(result))
}

// GetBoxerByID 按ID查询拳击手
// @Summary      按ID查询拳击手
// @Tags         拳击手
// @Produce      json
// @Param        id path int true "拳击手ID"
// @Success      200 {object} response.Response{data=dto.BoxerResponse}
// @Failure      404 {object} response.Response "拳击手不存在"
// @Router       /api/v1/boxers/{id} [get]
func (h *BoxerHandler) GetBoxerByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.getBoxerUseCase.ByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toBoxerResponse(result))
}

// GetBoxerByName 按姓名查询拳击手
// @Summary      按姓名查询拳击手
// @Description  姓名精确匹配(比较前去除首尾空白)
// @Tags         拳击手
// @Produce      json
// @Param        name path string true "拳击手姓名"
// @Success      200 {object} response.Response{data=dto.BoxerResponse}
// @Failure      404 {object} response.Response "拳击手不存在"
// @Router       /api/v1/boxers/name/{name} [get]
func (h *BoxerHandler) GetBoxerByName(c *gin.Context) {
	result, err := h.getBoxerUseCase.ByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toBoxerResponse(result))
}

// DeleteBoxer 删除拳击手
// @Summary      删除拳击手
// @Description  从名册中删除拳击手(物理删除),战绩随之消失
// @Tags         拳击手
// @Produce      json
// @Param        id path int true "拳击手ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "拳击手不存在"
// @Router       /api/v1/boxers/{id} [delete]
func (h *BoxerHandler) DeleteBoxer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.deleteBoxerUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// RecordFight 登记比赛结果
// @Summary      登记比赛结果
// @Description  为拳击手记录一场比赛(win或loss),总场次与胜场数原子更新
// @Tags         拳击手
// @Accept       json
// @Produce      json
// @Param        id path int true "拳击手ID"
// @Param        request body dto.RecordFightRequest true "比赛结果"
// @Success      200 {object} response.Response{data=dto.BoxerResponse}
// @Failure      400 {object} response.Response "比赛结果不合法"
// @Failure      404 {object} response.Response "拳击手不存在"
// @Router       /api/v1/boxers/{id}/fights [post]
func (h *BoxerHandler) RecordFight(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.RecordFightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	result, err := h.recordFightUseCase.Execute(c.Request.Context(), appboxer.RecordFightRequest{
		BoxerID: id,
		Result:  req.Result,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toBoxerResponse(result))
}
