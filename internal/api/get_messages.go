package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4"
	"pkg.aki.moe/rolebind/internal/storage/entity"
)

// registerGetMessages GET /messages
func (a *API) registerGetMessages() {
	type messageModel struct {
		MessageID string `json:"message_id"`
		Bindings  uint32 `json:"bindings"`
	}

	a.router.GET("/messages", func(c *gin.Context) {
		var ms []*entity.BoundMessage
		if err := a.storage.Begin(a.ctx, func(tx pgx.Tx) error {
			var err error
			ms, err = entity.FindBoundMessages(a.ctx, tx)
			return err
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		mm := make([]*messageModel, len(ms))
		for i, m := range ms {
			mm[i] = &messageModel{MessageID: entity.FormatSnowflake(m.MessageID), Bindings: m.Bindings}
		}

		c.JSON(http.StatusOK, mm)
	})
}
