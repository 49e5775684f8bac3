package api

import (
	"fmt"

	"matusage/internal/app"
	"matusage/internal/domain"

	"github.com/gin-gonic/gin"
)

type PeriodViewRequest struct {
	Period           string `json:"period"`
	DepartmentFilter struct {
		Mode  string   `json:"mode"`
		Names []string `json:"names"`
	} `json:"departmentFilter"`
	MaterialFilter struct {
		Mode string `json:"mode"`
	} `json:"materialFilter"`
}

func (m ApiHandler) periodView(c *gin.Context) {
	ctx := c.Request.Context()

	var requestBody PeriodViewRequest
	if err := c.BindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse request body: %w", err), c, 400)
		return
	}

	period, err := domain.ParseMonth(requestBody.Period)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse period: %w", err), c, 400)
		return
	}

	departmentFilter := domain.DepartmentFilter{
		Mode:  domain.DepartmentFilterMode(requestBody.DepartmentFilter.Mode),
		Names: requestBody.DepartmentFilter.Names,
	}
	if departmentFilter.Mode == "" {
		departmentFilter.Mode = domain.DepartmentFilterMode_All
	}
	if err := departmentFilter.Validate(); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	materialFilter := domain.MaterialFilter{
		Mode: domain.MaterialFilterMode(requestBody.MaterialFilter.Mode),
	}
	if materialFilter.Mode == "" {
		materialFilter.Mode = domain.MaterialFilterMode_All
	}
	if err := materialFilter.Validate(); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	view, err := m.PeriodViewHandler.ComputePeriodView(ctx, app.PeriodViewInput{
		Period:     period,
		Department: departmentFilter,
		Material:   materialFilter,
	})
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to compute period view: %w", err), c)
		return
	}

	c.JSON(200, view)
}
