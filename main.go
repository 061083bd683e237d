package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"recipebook/internal/config"
	"recipebook/internal/database"
	"recipebook/internal/handlers"
	"recipebook/internal/middleware"
	"recipebook/internal/storage"
	"recipebook/internal/store"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureMemberIndexes(db); err != nil {
		log.Printf("⚠️ member index warning: %v", err)
	}

	members := store.NewMemberStore(db)
	recipes := store.NewRecipeStore(db)

	files, err := newStorage()
	if err != nil {
		log.Fatal(err)
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppEnv.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	if config.AppEnv.StorageDriver == "local" {
		r.Static("/uploads", config.AppEnv.UploadDir)
	}

	member := r.Group("/member")
	{
		member.POST("/register", handlers.RegisterMember(members))
		member.POST("/login", handlers.LoginMember(members, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL))
		member.GET("/members", handlers.GetMembers(members))
		member.GET("/oneMember/:stdID", handlers.GetMemberByStdID(members))
		member.GET("/me", middleware.MemberAuth(config.AppEnv.JWTSecret), handlers.GetMe(members))
		member.PUT("/members/:id", handlers.UpdateMember(members))
		member.DELETE("/members/:id", handlers.DeleteMember(members))
		member.PUT("/passReset/:stdID", handlers.ResetPassword(members))
	}

	recipe := r.Group("/food_recipe")
	{
		recipe.POST("/addRecipe", handlers.AddRecipe(recipes))
		recipe.GET("/getList", handlers.GetRecipes(recipes))
		recipe.GET("/getListForUser/:user", handlers.GetRecipesForUser(recipes))
		recipe.GET("/singlePost/:id", handlers.GetRecipeByID(recipes))
		recipe.GET("/searchPost/:title", handlers.SearchRecipes(recipes))
		recipe.PUT("/editPost/:id", handlers.EditRecipe(recipes))
		recipe.DELETE("/deletePost/:id", handlers.DeleteRecipe(recipes))
	}

	r.POST("/upload", handlers.UploadImage(files))

	r.Run(":" + config.AppEnv.Port)
}

func newStorage() (storage.Storage, error) {
	if config.AppEnv.StorageDriver == "mega" {
		return storage.NewMegaStorage(
			config.AppEnv.MegaLogin,
			config.AppEnv.MegaPassword,
			config.AppEnv.MegaFolder,
		)
	}
	return storage.NewLocalStorage(config.AppEnv.UploadDir, config.AppEnv.PublicBaseURL), nil
}
