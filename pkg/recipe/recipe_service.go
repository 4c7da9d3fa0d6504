package recipe

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"snackstock-api/domain"
	"snackstock-api/pkg/groq"
)

const recipeSystemPrompt = "You are an expert chef. Respond ONLY with valid JSON, no markdown and no extra explanations."

const recipePromptTemplate = `Create 3 different, creative recipes using these ingredients: %s.
Every recipe must be unique (breakfast, lunch, dinner or dessert).

MANDATORY JSON FORMAT (no markdown fences, no explanations):
{
  "recipes": [
    {
      "title": "Dish Name 1",
      "difficulty": "Easy",
      "time": "20 min",
      "servings": 2,
      "ingredients": ["Ingredient 1", "Ingredient 2", "Ingredient 3"],
      "instructions": ["Step 1", "Step 2", "Step 3"]
    },
    {
      "title": "Dish Name 2",
      "difficulty": "Medium",
      "time": "30 min",
      "servings": 3,
      "ingredients": ["Ingredient 1", "Ingredient 2"],
      "instructions": ["Step 1", "Step 2"]
    },
    {
      "title": "Dish Name 3",
      "difficulty": "Easy",
      "time": "15 min",
      "servings": 2,
      "ingredients": ["Ingredient 1", "Ingredient 2"],
      "instructions": ["Step 1", "Step 2"]
    }
  ]
}`

type (
	RecipeService interface {
		GenerateRecipes(ctx context.Context, req domain.GenerateRecipesRequest) (domain.GenerateRecipesResponse, error)
	}

	recipeService struct {
		groqService groq.GroqService
	}
)

func NewRecipeService(groqService groq.GroqService) RecipeService {
	return &recipeService{groqService: groqService}
}

func (s *recipeService) GenerateRecipes(ctx context.Context, req domain.GenerateRecipesRequest) (domain.GenerateRecipesResponse, error) {
	if len(req.Ingredients) == 0 {
		return domain.GenerateRecipesResponse{}, domain.ErrNoIngredients
	}

	ingredientsList := strings.Join(req.Ingredients, ", ")
	prompt := fmt.Sprintf(recipePromptTemplate, ingredientsList)

	text, err := s.groqService.ChatJSON(ctx, recipeSystemPrompt, prompt, 0.7)
	if err != nil {
		log.Printf("recipe generation failed, serving fallback recipes: %v", err)
		return domain.GenerateRecipesResponse{Recipes: FallbackRecipes(req.Ingredients[0])}, nil
	}

	var result domain.GenerateRecipesResponse
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		log.Printf("recipe response parsing failed, serving fallback recipes: %v", err)
		return domain.GenerateRecipesResponse{Recipes: FallbackRecipes(req.Ingredients[0])}, nil
	}

	return result, nil
}

// FallbackRecipes builds three basic recipes around a single ingredient,
// served when the model is unavailable or returns unparseable output.
func FallbackRecipes(ingredient string) []domain.Recipe {
	return []domain.Recipe{
		{
			Title:        fmt.Sprintf("Sauteed %s", ingredient),
			Difficulty:   "Easy",
			Time:         "15 min",
			Servings:     2,
			Ingredients:  []string{ingredient, "Salt", "Oil", "Garlic"},
			Instructions: []string{"Heat the oil", "Saute the ingredient", "Serve hot"},
		},
		{
			Title:        fmt.Sprintf("Baked %s", ingredient),
			Difficulty:   "Medium",
			Time:         "30 min",
			Servings:     3,
			Ingredients:  []string{ingredient, "Spices", "Olive oil"},
			Instructions: []string{"Preheat oven to 180°C", "Bake for 25 min", "Serve"},
		},
		{
			Title:        fmt.Sprintf("Salad with %s", ingredient),
			Difficulty:   "Easy",
			Time:         "10 min",
			Servings:     2,
			Ingredients:  []string{ingredient, "Lettuce", "Tomato", "Lemon"},
			Instructions: []string{"Mix the ingredients", "Dress with lemon", "Serve cold"},
		},
	}
}
