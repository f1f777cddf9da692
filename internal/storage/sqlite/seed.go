// ABOUTME: Sample recipe seeding for first run
// ABOUTME: Inserts the starter catalog only when the recipes table is empty
package sqlite

import (
	"fmt"

	"github.com/harper/recipedex/internal/models"
)

// Seed inserts the starter recipes when the catalog is empty. Returns the
// number of recipes inserted.
func Seed(db *DB) (int, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM recipes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	store := NewRecipeStore(db)
	for i := range sampleRecipes {
		if _, err := store.Insert(&sampleRecipes[i]); err != nil {
			return 0, fmt.Errorf("failed to seed recipe %q: %w", sampleRecipes[i].Name, err)
		}
	}

	return len(sampleRecipes), nil
}

// SampleRecipes returns a copy of the starter catalog (for tests and the CLI).
func SampleRecipes() []models.Recipe {
	recipes := make([]models.Recipe, len(sampleRecipes))
	copy(recipes, sampleRecipes)
	return recipes
}

var sampleRecipes = []models.Recipe{
	{
		Name:       "Masala Omelette",
		Category:   "Breakfast",
		Time:       models.IntPtr(10),
		Difficulty: models.DifficultyBeginner,
		Servings:   models.IntPtr(1),
		ImageURL:   "https://images.unsplash.com/photo-1615874959479-df48af5fbad4?w=400",
		Ingredients: []string{
			"2 eggs", "1 small onion", "1 green chili", "salt", "pepper", "1 tsp oil",
		},
		Steps: []string{
			"Beat eggs with salt and pepper in a bowl.",
			"Add finely chopped onion and green chili to the egg mixture.",
			"Heat oil in a non-stick pan over medium heat.",
			"Pour the egg mixture into the pan and spread evenly.",
			"Cook for 2-3 minutes until the bottom is golden.",
			"Flip and cook the other side for 1-2 minutes.",
			"Serve hot with bread or roti.",
		},
		Tags:        []string{"eggs", "quick", "protein", "easy"},
		Description: "Spicy Indian-style omelette, quick and protein-rich. Perfect for a quick breakfast!",
	},
	{
		Name:       "Tomato Basil Pasta",
		Category:   "Lunch",
		Time:       models.IntPtr(25),
		Difficulty: models.DifficultyBeginner,
		Servings:   models.IntPtr(2),
		ImageURL:   "https://images.unsplash.com/photo-1621996346565-e3dbc646d9a9?w=400",
		Ingredients: []string{
			"200g pasta", "2 cups tomatoes", "fresh basil", "olive oil", "salt", "garlic",
		},
		Steps: []string{
			"Bring a large pot of salted water to boil.",
			"Add pasta and cook until al dente (check package instructions).",
			"While pasta cooks, heat olive oil in a pan.",
			"Add minced garlic and sauté for 30 seconds.",
			"Add chopped tomatoes and cook until soft.",
			"Add fresh basil leaves and season with salt.",
			"Drain pasta and add to the sauce.",
			"Toss everything together and serve hot.",
		},
		Tags:        []string{"pasta", "vegetarian", "italian"},
		Description: "Fresh and light pasta with tomato-basil sauce. Simple yet delicious!",
	},
	{
		Name:       "Chocolate Mug Cake",
		Category:   "Dessert",
		Time:       models.IntPtr(5),
		Difficulty: models.DifficultyBeginner,
		Servings:   models.IntPtr(1),
		ImageURL:   "https://images.unsplash.com/photo-1606313564200-e75d5e30476c?w=400",
		Ingredients: []string{
			"4 tbsp flour", "2 tbsp sugar", "2 tbsp cocoa powder", "3 tbsp milk", "1 tbsp oil", "1/4 tsp baking powder",
		},
		Steps: []string{
			"In a microwave-safe mug, mix flour, sugar, cocoa powder, and baking powder.",
			"Add milk and oil, mix well until smooth.",
			"Make sure there are no lumps in the batter.",
			"Microwave on high for 70-90 seconds (time may vary).",
			"Let it cool for 1 minute before eating.",
			"Top with ice cream or whipped cream if desired.",
		},
		Tags:        []string{"dessert", "quick", "sweet", "microwave"},
		Description: "Single-serve chocolate cake ready in minutes. Perfect for a quick dessert!",
	},
	{
		Name:       "Veggie Stir Fry",
		Category:   "Dinner",
		Time:       models.IntPtr(20),
		Difficulty: models.DifficultyBeginner,
		Servings:   models.IntPtr(2),
		ImageURL:   "https://images.unsplash.com/photo-1563379091339-03246963d29c?w=400",
		Ingredients: []string{
			"mixed vegetables (bell peppers, carrots, broccoli)", "soy sauce", "garlic", "ginger", "sesame oil", "salt",
		},
		Steps: []string{
			"Cut all vegetables into bite-sized pieces.",
			"Heat sesame oil in a large wok or pan over high heat.",
			"Add minced garlic and ginger, stir for 30 seconds.",
			"Add vegetables and stir-fry for 5-7 minutes until tender-crisp.",
			"Add soy sauce and salt to taste.",
			"Stir for another minute and serve hot with rice.",
		},
		Tags:        []string{"vegan", "quick", "healthy", "one-pot"},
		Description: "Fast and healthy mixed vegetable stir fry. Great for a quick dinner!",
	},
	{
		Name:       "Instant Noodles Upgrade",
		Category:   "Lunch",
		Time:       models.IntPtr(10),
		Difficulty: models.DifficultyBeginner,
		Servings:   models.IntPtr(1),
		ImageURL:   "https://images.unsplash.com/photo-1569718212165-3a8278d5f624?w=400",
		Ingredients: []string{
			"1 packet instant noodles", "1 egg", "chopped spring onions", "soy sauce", "sesame oil",
		},
		Steps: []string{
			"Boil water in a pot and cook noodles according to package instructions.",
			"While noodles cook, heat a small pan and fry an egg sunny-side up.",
			"Drain noodles and mix with the seasoning packet.",
			"Add a dash of soy sauce and sesame oil.",
			"Top with the fried egg and chopped spring onions.",
			"Serve immediately while hot.",
		},
		Tags:        []string{"quick", "easy", "budget-friendly", "comfort-food"},
		Description: "Elevate your instant noodles with a simple egg and some extras. Quick and satisfying!",
	},
	{
		Name:       "Grilled Cheese Sandwich",
		Category:   "Snack",
		Time:       models.IntPtr(10),
		Difficulty: models.DifficultyBeginner,
		Servings:   models.IntPtr(1),
		ImageURL:   "https://images.unsplash.com/photo-1528735602780-2552fd46c7af?w=400",
		Ingredients: []string{
			"2 slices bread", "cheese slices", "butter", "optional: tomato slices",
		},
		Steps: []string{
			"Butter one side of each bread slice.",
			"Place cheese (and tomato if using) between the unbuttered sides.",
			"Heat a pan over medium heat.",
			"Place sandwich in pan, buttered side down.",
			"Cook for 3-4 minutes until golden brown.",
			"Flip and cook the other side until golden and cheese is melted.",
			"Cut in half and serve hot.",
		},
		Tags:        []string{"quick", "comfort-food", "vegetarian", "easy"},
		Description: "Classic grilled cheese sandwich. Simple, quick, and always satisfying!",
	},
	{
		Name:       "Egg Fried Rice",
		Category:   "Lunch",
		Time:       models.IntPtr(15),
		Difficulty: models.DifficultyBeginner,
		Servings:   models.IntPtr(2),
		ImageURL:   "https://images.unsplash.com/photo-1603133872878-684f208fb84b?w=400",
		Ingredients: []string{
			"2 cups cooked rice", "2 eggs", "1 small onion", "soy sauce", "oil", "salt", "pepper", "optional: vegetables",
		},
		Steps: []string{
			"Heat oil in a large pan or wok over high heat.",
			"Add chopped onion and cook until translucent.",
			"Push onions to one side, crack eggs into the pan and scramble.",
			"Add cooked rice and break up any clumps.",
			"Stir-fry for 3-4 minutes until rice is heated through.",
			"Add soy sauce, salt, and pepper to taste.",
			"Mix everything together and serve hot.",
		},
		Tags:        []string{"quick", "easy", "budget-friendly", "one-pot"},
		Description: "Simple and delicious fried rice. Perfect for using leftover rice!",
	},
	{
		Name:       "Scrambled Eggs with Toast",
		Category:   "Breakfast",
		Time:       models.IntPtr(8),
		Difficulty: models.DifficultyBeginner,
		Servings:   models.IntPtr(1),
		ImageURL:   "https://images.unsplash.com/photo-1525351484163-7529414344d8?w=400",
		Ingredients: []string{
			"2-3 eggs", "butter", "salt", "pepper", "2 slices bread", "optional: cheese, herbs",
		},
		Steps: []string{
			"Crack eggs into a bowl, add salt and pepper, and whisk lightly.",
			"Heat butter in a non-stick pan over medium-low heat.",
			"Pour in eggs and let them set slightly before gently stirring.",
			"Continue stirring until eggs are creamy but not dry.",
			"Toast bread slices until golden.",
			"Serve scrambled eggs on toast, optionally with cheese or herbs.",
		},
		Tags:        []string{"quick", "protein", "breakfast", "easy"},
		Description: "Classic breakfast that's quick, easy, and protein-packed!",
	},
	{
		Name:       "Simple Chicken Curry",
		Category:   "Dinner",
		Time:       models.IntPtr(35),
		Difficulty: models.DifficultyIntermediate,
		Servings:   models.IntPtr(2),
		ImageURL:   "https://images.unsplash.com/photo-1603133872878-684f208fb84b?w=400",
		Ingredients: []string{
			"300g chicken pieces", "1 onion", "2 tomatoes", "ginger-garlic paste", "curry powder", "oil", "salt", "water",
		},
		Steps: []string{
			"Heat oil in a pot and add sliced onions. Cook until golden.",
			"Add ginger-garlic paste and cook for 1 minute.",
			"Add chopped tomatoes and cook until soft.",
			"Add chicken pieces and cook for 5 minutes until sealed.",
			"Add curry powder, salt, and enough water to cover.",
			"Simmer for 20-25 minutes until chicken is cooked through.",
			"Serve hot with rice or bread.",
		},
		Tags:        []string{"protein", "comfort-food", "one-pot"},
		Description: "Aromatic and flavorful chicken curry. Perfect for a satisfying dinner!",
	},
	{
		Name:       "Avocado Toast",
		Category:   "Breakfast",
		Time:       models.IntPtr(5),
		Difficulty: models.DifficultyBeginner,
		Servings:   models.IntPtr(1),
		ImageURL:   "https://images.unsplash.com/photo-1541519227354-08fa5d50c44d?w=400",
		Ingredients: []string{
			"1 ripe avocado", "2 slices bread", "salt", "pepper", "lemon juice", "optional: red pepper flakes, feta cheese",
		},
		Steps: []string{
			"Toast bread slices until golden and crispy.",
			"Cut avocado in half, remove pit, and scoop out flesh.",
			"Mash avocado in a bowl with a fork.",
			"Add salt, pepper, and a squeeze of lemon juice.",
			"Spread avocado mixture on toast.",
			"Top with red pepper flakes or feta cheese if desired.",
			"Serve immediately.",
		},
		Tags:        []string{"quick", "healthy", "vegetarian", "easy"},
		Description: "Healthy and trendy avocado toast. Ready in minutes!",
	},
}
