package routes

import "github.com/gin-gonic/gin"

const (
	PathDocumentos = "/documentos"
	PathCatalogos  = "/catalogos"
	PathBackup     = "/backup"
	PathReportes   = "/reportes"
)

func addArchivoRoutes(rg *gin.RouterGroup, c *container) {
	documentos := rg.Group(PathDocumentos)
	{
		documentos.POST("", c.documentos.UploadDocumento)
		documentos.GET("", c.documentos.ListDocumentos)
		documentos.GET("/:id", c.documentos.GetDocumento)
		documentos.GET("/:id/archivo", c.documentos.DownloadDocumento)
		documentos.DELETE("/:id", c.documentos.DeleteDocumento)
	}

	catalogos := rg.Group(PathCatalogos)
	{
		catalogos.GET("/:tipo", c.catalogos.ListCatalogo)
		catalogos.POST("/:tipo", c.catalogos.CreateCatalogoEntry)
		catalogos.DELETE("/:tipo/:id", c.catalogos.DeleteCatalogoEntry)
	}

	backup := rg.Group(PathBackup)
	{
		backup.GET("", c.backup.ExportBackup)
		backup.POST("/import", c.backup.ImportBackup)
	}

	reportes := rg.Group(PathReportes)
	{
		reportes.GET("/vencimientos.xlsx", c.reportes.VencimientosReport)
		reportes.GET("/deudas.xlsx", c.reportes.DeudasReport)
	}
}
