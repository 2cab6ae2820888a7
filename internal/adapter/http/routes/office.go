package routes

import "github.com/gin-gonic/gin"

const (
	PathClientes = "/clientes"
	PathTrabajos = "/trabajos"
	PathItems    = "/items"
	PathPagos    = "/pagos"
)

func addClienteRoutes(rg *gin.RouterGroup, c *container) {
	clientes := rg.Group(PathClientes)
	{
		clientes.POST("", c.clientes.CreateCliente)
		clientes.GET("", c.clientes.ListClientes)
		clientes.GET("/:id", c.clientes.GetCliente)
		clientes.PUT("/:id", c.clientes.UpdateCliente)
		clientes.PATCH("/:id/deactivate", c.clientes.DeactivateCliente)
		clientes.PATCH("/:id/activate", c.clientes.ActivateCliente)
		clientes.GET("/:id/can-deactivate", c.clientes.CanDeactivateCliente)
		clientes.GET("/:id/trabajos", c.clientes.ListClienteTrabajos)
		clientes.POST("/:id/recalculate", c.clientes.RecalculateCliente)
	}
}

func addTrabajoRoutes(rg *gin.RouterGroup, c *container) {
	trabajos := rg.Group(PathTrabajos)
	{
		trabajos.POST("", c.trabajos.CreateTrabajo)
		trabajos.GET("", c.trabajos.ListTrabajos)
		trabajos.GET("/:id", c.trabajos.GetTrabajo)
		trabajos.PUT("/:id", c.trabajos.UpdateTrabajo)
		trabajos.PATCH("/:id/estado", c.trabajos.ChangeTrabajoEstado)
		trabajos.GET("/:id/items", c.trabajos.ListTrabajoItems)
		trabajos.POST("/:id/items", c.trabajos.CreateTrabajoItem)
		trabajos.GET("/:id/pagos", c.trabajos.ListTrabajoPagos)
	}

	items := rg.Group(PathItems)
	{
		items.PUT("/:id", c.items.UpdateItem)
		items.PATCH("/:id/estado", c.items.ChangeItemEstado)
		items.DELETE("/:id", c.items.DeleteItem)
	}
}

func addPagoRoutes(rg *gin.RouterGroup, c *container) {
	pagos := rg.Group(PathPagos)
	{
		pagos.POST("", c.pagos.CreatePago)
		pagos.GET("", c.pagos.ListPagos)
		pagos.GET("/:id", c.pagos.GetPago)
		pagos.DELETE("/:id", c.pagos.DeletePago)
	}
}
