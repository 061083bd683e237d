package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"recipebook/internal/models"
	"recipebook/internal/store"
)

type addRecipeRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	File        string `json:"file" binding:"required"`
	UploadedBy  string `json:"uploadedBy" binding:"required"`
	Culture     string `json:"culture" binding:"required"`
}

type editRecipeRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Culture     string `json:"culture" binding:"required"`
}

// AddRecipe publishes a new recipe record. Duplicate titles are allowed; the
// file reference is whatever the upload endpoint handed back to the client.
func AddRecipe(recipes store.RecipeStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addRecipeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, fieldErrors(err))
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		recipe := models.Recipe{
			Title:       req.Title,
			Culture:     req.Culture,
			Description: req.Description,
			File:        req.File,
			UploadedBy:  req.UploadedBy,
		}

		if _, err := recipes.Insert(ctx, recipe); err != nil {
			log.Println("[RECIPE] [ERROR] insert failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save food recipe"})
			return
		}

		log.Println("[RECIPE] [INFO] recipe published:", req.Title)
		c.JSON(http.StatusOK, gin.H{"message": "Food recipe published."})
	}
}

// GetRecipes returns every recipe in natural storage order.
func GetRecipes(recipes store.RecipeStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		list, err := recipes.List(ctx)
		if err != nil {
			log.Println("[RECIPE] [ERROR] list failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve food recipes"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GetRecipesForUser returns the recipes whose uploadedBy field equals the
// given name exactly. This is not a substring match.
func GetRecipesForUser(recipes store.RecipeStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		list, err := recipes.ListByUploader(ctx, c.Param("user"))
		if err != nil {
			log.Println("[RECIPE] [ERROR] list for user failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GetRecipeByID fetches a single recipe. A malformed identifier is a plain
// not-found, never a server error.
func GetRecipeByID(recipes store.RecipeStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		recipe, err := recipes.FindByID(ctx, c.Param("id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Food recipe not found"})
				return
			}
			log.Println("[RECIPE] [ERROR] lookup failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve food recipe"})
			return
		}
		c.JSON(http.StatusOK, recipe)
	}
}

// SearchRecipes matches titles by case-insensitive substring.
func SearchRecipes(recipes store.RecipeStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		results, err := recipes.SearchByTitle(ctx, c.Param("title"))
		if err != nil {
			log.Println("[RECIPE] [ERROR] search failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, results)
	}
}

// EditRecipe updates title, description and culture in place and returns the
// post-update record. File and uploadedBy are immutable through this path.
func EditRecipe(recipes store.RecipeStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req editRecipeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, fieldErrors(err))
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		updated, err := recipes.Update(ctx, c.Param("id"), store.RecipeUpdate{
			Title:       req.Title,
			Description: req.Description,
			Culture:     req.Culture,
		})
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
				return
			}
			log.Println("[RECIPE] [ERROR] update failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update post"})
			return
		}

		log.Println("[RECIPE] [INFO] recipe updated:", c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"message": "Post updated successfully", "post": updated})
	}
}

// DeleteRecipe removes a recipe record. Deleting an unknown or already
// deleted id is a not-found, never a server error.
func DeleteRecipe(recipes store.RecipeStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := recipes.Delete(ctx, c.Param("id")); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Food recipe not found"})
				return
			}
			log.Println("[RECIPE] [ERROR] delete failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete food recipe"})
			return
		}

		log.Println("[RECIPE] [INFO] recipe deleted:", c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"message": "Food recipe deleted successfully"})
	}
}
