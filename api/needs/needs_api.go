package needs

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"multirex.GO/api"
	needsEntity "multirex.GO/model/entity/needs"
	needsRepo "multirex.GO/model/repository/needs"
)

func init() {
	api.RegisterModule(RegisterNeedsRoutes)
}

func RegisterNeedsRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/needs")
	repo := needsRepo.NewNeedRepository(db)

	// POST /api/needs – record a wanted-engine request
	g.POST("", func(c echo.Context) error {
		var need needsEntity.InternalNeed
		if err := c.Bind(&need); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		need.ID = 0
		if need.EngineCode != nil {
			code := strings.ToUpper(strings.TrimSpace(*need.EngineCode))
			need.EngineCode = &code
		}
		hasContent := (need.EngineCode != nil && *need.EngineCode != "") ||
			(need.ModelText != nil && strings.TrimSpace(*need.ModelText) != "")
		if !hasContent {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "code_moteur or modele_text is required"})
		}
		if err := repo.Create(&need); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, need)
	})

	// GET /api/needs?limit=100 – latest requests first
	g.GET("", func(c echo.Context) error {
		limit := 0
		if raw := c.QueryParam("limit"); raw != "" {
			var err error
			limit, err = strconv.Atoi(raw)
			if err != nil || limit < 0 {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "limit must be a non-negative integer"})
			}
		}
		items, err := repo.Recent(limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
	})

	// DELETE /api/needs/:id
	g.DELETE("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid need id"})
		}
		if err := repo.Delete(id); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	})
}
