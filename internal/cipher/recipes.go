package cipher

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// RecipeManager handles storage and retrieval of named cipher pipelines
type RecipeManager struct {
	recipes   map[string]*Recipe
	storePath string
	mu        sync.RWMutex
}

// NewRecipeManager creates a new recipe manager. With an empty store path
// recipes live in memory only.
func NewRecipeManager(storePath string) *RecipeManager {
	return &RecipeManager{
		recipes:   make(map[string]*Recipe),
		storePath: storePath,
	}
}

// SaveRecipe stores a recipe, persisting it to disk when a store path is
// configured
func (rm *RecipeManager) SaveRecipe(recipe *Recipe) error {
	if recipe.Name == "" {
		return fmt.Errorf("recipe name cannot be empty")
	}

	rm.mu.Lock()
	defer rm.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339)
	if recipe.CreatedAt == "" {
		recipe.CreatedAt = now
	}
	recipe.UpdatedAt = now

	rm.recipes[recipe.Name] = recipe

	if rm.storePath != "" {
		return rm.persistRecipe(recipe)
	}
	return nil
}

// GetRecipe retrieves a recipe by name
func (rm *RecipeManager) GetRecipe(name string) (*Recipe, bool) {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	recipe, exists := rm.recipes[name]
	return recipe, exists
}

// ListRecipes returns all recipes
func (rm *RecipeManager) ListRecipes() []*Recipe {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	recipes := make([]*Recipe, 0, len(rm.recipes))
	for _, recipe := range rm.recipes {
		recipes = append(recipes, recipe)
	}
	return recipes
}

// DeleteRecipe removes a recipe from memory and disk
func (rm *RecipeManager) DeleteRecipe(name string) error {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	delete(rm.recipes, name)

	if rm.storePath != "" {
		recipePath := filepath.Join(rm.storePath, sanitizeFilename(name)+".json")
		if err := os.Remove(recipePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete recipe file: %w", err)
		}
	}
	return nil
}

// LoadRecipes loads all recipes from the store path
func (rm *RecipeManager) LoadRecipes() error {
	if rm.storePath == "" {
		return nil
	}

	rm.mu.Lock()
	defer rm.mu.Unlock()

	if err := os.MkdirAll(rm.storePath, 0755); err != nil {
		return fmt.Errorf("failed to create recipes directory: %w", err)
	}

	entries, err := os.ReadDir(rm.storePath)
	if err != nil {
		return fmt.Errorf("failed to read recipes directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		recipePath := filepath.Join(rm.storePath, entry.Name())
		data, err := os.ReadFile(recipePath)
		if err != nil {
			return fmt.Errorf("failed to read recipe %s: %w", entry.Name(), err)
		}

		var recipe Recipe
		if err := json.Unmarshal(data, &recipe); err != nil {
			return fmt.Errorf("failed to parse recipe %s: %w", entry.Name(), err)
		}

		rm.recipes[recipe.Name] = &recipe
	}

	return nil
}

// SearchRecipes finds recipes whose name, description, or tags contain the
// query (case-insensitive)
func (rm *RecipeManager) SearchRecipes(query string) []*Recipe {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	q := strings.ToLower(query)
	results := make([]*Recipe, 0)
	for _, recipe := range rm.recipes {
		if strings.Contains(strings.ToLower(recipe.Name), q) ||
			strings.Contains(strings.ToLower(recipe.Description), q) {
			results = append(results, recipe)
			continue
		}

		for _, tag := range recipe.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				results = append(results, recipe)
				break
			}
		}
	}
	return results
}

// persistRecipe writes a single recipe to disk
func (rm *RecipeManager) persistRecipe(recipe *Recipe) error {
	if err := os.MkdirAll(rm.storePath, 0755); err != nil {
		return fmt.Errorf("failed to create recipes directory: %w", err)
	}

	data, err := json.MarshalIndent(recipe, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize recipe: %w", err)
	}

	recipePath := filepath.Join(rm.storePath, sanitizeFilename(recipe.Name)+".json")
	if err := os.WriteFile(recipePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write recipe file: %w", err)
	}
	return nil
}

// sanitizeFilename converts a recipe name to a safe filename
func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "recipe"
	}
	return b.String()
}
