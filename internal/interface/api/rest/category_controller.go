package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/LukeSky25/Material-Share-App/internal/application/ports"
	"github.com/LukeSky25/Material-Share-App/internal/interface/api/rest/dto/category"
)

type CategoryController struct {
	categoryService ports.CategoryService
	logger          *zap.Logger
}

func NewCategoryController(
	r *gin.Engine,
	categoryService ports.CategoryService,
	logger *zap.Logger,
) *CategoryController {
	cc := &CategoryController{
		categoryService: categoryService,
		logger:          logger,
	}

	r.GET(RouteCategories, cc.GetCategoriesHandler)

	return cc
}

func (cc *CategoryController) GetCategoriesHandler(c *gin.Context) {
	cs, err := cc.categoryService.FindActive(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get categories"},
		)
		cc.logger.Error("FindActive() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, category.ResponseData{
		Data: category.ToResponseCategories(cs),
	})
}
