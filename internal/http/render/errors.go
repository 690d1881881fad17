package render

import (
	"github.com/gin-gonic/gin"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/http/middleware"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/pkg/view"
)

type errorVM struct {
	view.Page
	Status    int
	Message   string
	RequestID string
}

func ErrorPage(c *gin.Context, status int, msg string) {
	Page(c, status, "error", errorVM{
		Page:      view.Page{Title: "Error", Flash: middleware.GetFlash(c)},
		Status:    status,
		Message:   msg,
		RequestID: middleware.GetRequestID(c),
	})
}
