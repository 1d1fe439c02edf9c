package controller_discovery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Super-Badmen-Viper/NineTrip/api/controller"
	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_interface"
	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_models"
	"github.com/Super-Badmen-Viper/NineTrip/usecase"
)

// ContentItemController 内容目录运维接口：写入走目录usecase（生成检索键），
// 读取和删除走通用实体usecase
type ContentItemController struct {
	catalogUsecase discovery_interface.ContentItemRepository
	itemUsecase    usecase.BaseUsecase[discovery_models.ContentItem]
}

func NewContentItemController(
	catalogUsecase discovery_interface.ContentItemRepository,
	itemUsecase usecase.BaseUsecase[discovery_models.ContentItem],
) *ContentItemController {
	return &ContentItemController{
		catalogUsecase: catalogUsecase,
		itemUsecase:    itemUsecase,
	}
}

func (c *ContentItemController) Upsert(ctx *gin.Context) {
	var item discovery_models.ContentItem
	if err := ctx.ShouldBindJSON(&item); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}

	// 发布者固定为当前认证用户
	item.OwnerID = ctx.GetString("x-user-id")

	if err := c.catalogUsecase.Upsert(ctx, &item); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// List 分页列出全部内容条目
// GET /discovery/items?page=1&pageSize=20
func (c *ContentItemController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "20"))

	items, total, err := c.itemUsecase.GetPaginated(ctx, page, pageSize)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "INTERNAL", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "items", items, int(total))
}

// GetByID 按ID获取单个内容条目
// GET /discovery/items/:id
func (c *ContentItemController) GetByID(ctx *gin.Context) {
	item, err := c.itemUsecase.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusNotFound, "ITEM_NOT_FOUND", err.Error())
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// Delete 按ID删除内容条目
// DELETE /discovery/items/:id
func (c *ContentItemController) Delete(ctx *gin.Context) {
	if err := c.itemUsecase.Delete(ctx, ctx.Param("id")); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
