package recipe

import (
	"context"
	"errors"
	"testing"

	"snackstock-api/domain"

	"github.com/stretchr/testify/require"
)

type fakeGroq struct {
	response string
	err      error
	lastUser string
}

func (f *fakeGroq) ChatJSON(_ context.Context, _, userPrompt string, _ float64) (string, error) {
	f.lastUser = userPrompt
	return f.response, f.err
}

func TestGenerateRecipesParsesModelOutput(t *testing.T) {
	groq := &fakeGroq{
		response: `{"recipes": [
			{"title": "Tortilla de Papa", "difficulty": "Easy", "time": "25 min", "servings": 4,
			 "ingredients": ["Papa", "Huevo", "Cebolla"],
			 "instructions": ["Peel the potatoes", "Beat the eggs", "Fry everything together"]}
		]}`,
	}
	service := NewRecipeService(groq)

	resp, err := service.GenerateRecipes(context.Background(), domain.GenerateRecipesRequest{
		Ingredients: []string{"Papa", "Huevo", "Cebolla"},
	})
	require.NoError(t, err)

	require.Len(t, resp.Recipes, 1)
	require.Equal(t, "Tortilla de Papa", resp.Recipes[0].Title)
	require.Equal(t, 4, resp.Recipes[0].Servings)
	require.Contains(t, groq.lastUser, "Papa, Huevo, Cebolla")
}

func TestGenerateRecipesNoIngredients(t *testing.T) {
	service := NewRecipeService(&fakeGroq{})

	_, err := service.GenerateRecipes(context.Background(), domain.GenerateRecipesRequest{})
	require.ErrorIs(t, err, domain.ErrNoIngredients)
}

func TestGenerateRecipesFallbackOnModelError(t *testing.T) {
	service := NewRecipeService(&fakeGroq{err: errors.New("groq unreachable")})

	resp, err := service.GenerateRecipes(context.Background(), domain.GenerateRecipesRequest{
		Ingredients: []string{"Pollo", "Arroz"},
	})
	require.NoError(t, err)

	require.Len(t, resp.Recipes, 3)
	require.Equal(t, "Sauteed Pollo", resp.Recipes[0].Title)
	require.Equal(t, "Baked Pollo", resp.Recipes[1].Title)
	require.Equal(t, "Salad with Pollo", resp.Recipes[2].Title)
}

func TestGenerateRecipesFallbackOnUnparseableOutput(t *testing.T) {
	service := NewRecipeService(&fakeGroq{response: "Sure! Here are some ideas for you:"})

	resp, err := service.GenerateRecipes(context.Background(), domain.GenerateRecipesRequest{
		Ingredients: []string{"Queso"},
	})
	require.NoError(t, err)
	require.Len(t, resp.Recipes, 3)
	require.Contains(t, resp.Recipes[0].Title, "Queso")
}
