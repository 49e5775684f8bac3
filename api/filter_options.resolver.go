package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) filterOptions(c *gin.Context) {
	ctx := c.Request.Context()

	options, err := m.PeriodViewHandler.GetFilterOptions(ctx)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to list filter options: %w", err), c)
		return
	}

	c.JSON(200, options)
}
