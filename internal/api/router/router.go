package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/stayloop/notify/internal/api/handlers/notification"
)

func New(handler *notification.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api/notifications")

	api.POST("/users/:user_id/send", handler.Send)
	api.POST("/broadcast", handler.Broadcast)
	api.GET("/users/:user_id", handler.List)
	api.PATCH("/read/:id", handler.MarkRead)
	api.PATCH("/users/:user_id/read-all", handler.MarkAllRead)
	api.DELETE("/users/:user_id", handler.Clear)

	return e
}
