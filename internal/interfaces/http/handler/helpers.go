package handler

import (
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// bindListFilter parses pagination/sort query parameters into a Filter
func bindListFilter(c *gin.Context) (shared.Filter, error) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		return shared.Filter{}, err
	}
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}

	return shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Filters:  make(map[string]interface{}),
	}, nil
}
