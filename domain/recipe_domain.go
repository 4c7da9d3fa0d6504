package domain

import "errors"

var (
	MessageSuccessGenerateRecipes = "recipes generated successfully"
	MessageFailedGenerateRecipes  = "failed to generate recipes"

	ErrNoIngredients = errors.New("at least one ingredient is required")
)

type (
	GenerateRecipesRequest struct {
		Ingredients []string `json:"ingredients" validate:"required,min=1,dive,required"`
	}

	Recipe struct {
		Title        string   `json:"title"`
		Difficulty   string   `json:"difficulty"`
		Time         string   `json:"time"`
		Servings     int      `json:"servings"`
		Ingredients  []string `json:"ingredients"`
		Instructions []string `json:"instructions"`
	}

	GenerateRecipesResponse struct {
		Recipes []Recipe `json:"recipes"`
	}
)
