package statistics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEstimateCaloriesExactMatch(t *testing.T) {
	require.Equal(t, 60, EstimateCalories("leche", 1))
	require.Equal(t, 350, EstimateCalories("queso", 1))
	require.Equal(t, 0, EstimateCalories("agua", 3))
}

func TestEstimateCaloriesNormalizesName(t *testing.T) {
	require.Equal(t, 265, EstimateCalories("  PAN ", 1))
}

func TestEstimateCaloriesSubstringMatch(t *testing.T) {
	// Product name contains a table key.
	require.Equal(t, 120, EstimateCalories("Leche Descremada", 2))
	// Product name is contained in a table key.
	require.Equal(t, 52, EstimateCalories("manzan", 1))
}

func TestEstimateCaloriesDefault(t *testing.T) {
	require.Equal(t, 100, EstimateCalories("producto misterioso", 1))
	require.Equal(t, 300, EstimateCalories("producto misterioso", 3))
}

func TestEstimateCaloriesQuantityFloor(t *testing.T) {
	// Non-positive quantities behave as 1.
	require.Equal(t, 60, EstimateCalories("leche", 0))
	require.Equal(t, 60, EstimateCalories("leche", -2))
}
