package routes

import (
	"github.com/oghenejabor/Firebaseadmin/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all application routes onto the engine.
func RegisterRoutes(r *gin.Engine, importCtrl *controllers.ImportController, catalogCtrl *controllers.CatalogController, uploadCtrl *controllers.UploadController) {
	importRoutes := r.Group("/import")
	{
		importRoutes.POST("/validate", importCtrl.ValidateImport)
		importRoutes.POST("", importCtrl.Import)
	}

	catalogRoutes := r.Group("/catalog")
	{
		catalogRoutes.GET("/shop/categories", catalogCtrl.GetShopCategories)
		catalogRoutes.POST("/shop/categories", catalogCtrl.CreateShopCategory)
		catalogRoutes.DELETE("/shop/categories/:id", catalogCtrl.DeleteShopCategory)
		catalogRoutes.GET("/home/collections", catalogCtrl.GetHomeCollections)
		catalogRoutes.POST("/home/collections", catalogCtrl.CreateHomeCollection)
		catalogRoutes.DELETE("/home/collections/:id", catalogCtrl.DeleteHomeCollection)
	}

	uploadRoutes := r.Group("/uploads")
	{
		uploadRoutes.POST("", uploadCtrl.Upload)
		uploadRoutes.GET("/presign", uploadCtrl.Presign)
	}
}
