package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4"
	"pkg.aki.moe/rolebind/internal/storage/entity"
)

// registerGetBindings GET /bindings/:message
func (a *API) registerGetBindings() {
	a.router.GET("/bindings/:message", func(c *gin.Context) {
		var param struct {
			Message uint64 `uri:"message"`
		}

		if err := c.ShouldBindUri(&param); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var bindings map[string]entity.Snowflake
		if err := a.storage.Begin(a.ctx, func(tx pgx.Tx) error {
			var err error
			bindings, err = entity.FindBindings(a.ctx, tx, param.Message)
			return err
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Snowflakes exceed the integer range JSON consumers handle
		// reliably, so role identifiers go out as strings.
		bm := make(map[string]string, len(bindings))
		for emoji, roleID := range bindings {
			bm[emoji] = entity.FormatSnowflake(roleID)
		}

		c.JSON(http.StatusOK, bm)
	})
}
