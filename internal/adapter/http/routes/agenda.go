package routes

import "github.com/gin-gonic/gin"

const (
	PathEventos      = "/eventos"
	PathVencimientos = "/vencimientos"
	PathDashboard    = "/dashboard"
)

func addAgendaRoutes(rg *gin.RouterGroup, c *container) {
	eventos := rg.Group(PathEventos)
	{
		eventos.POST("", c.eventos.CreateEvento)
		eventos.GET("", c.eventos.ListEventos)
		// Static segment; gin resolves it ahead of /:id.
		eventos.GET("/export.ics", c.eventos.ExportCalendar)
		eventos.GET("/:id", c.eventos.GetEvento)
		eventos.PUT("/:id", c.eventos.UpdateEvento)
		eventos.DELETE("/:id", c.eventos.DeleteEvento)
	}

	rg.GET(PathVencimientos, c.vencimiento.ListVencimientos)
	rg.GET(PathDashboard, c.vencimiento.GetDashboard)
}
