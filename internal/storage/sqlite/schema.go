// ABOUTME: SQLite database schema for the recipe catalog
// ABOUTME: Creates recipes, user_preferences, and favorites tables
package sqlite

// Schema contains all SQL statements for database initialization
const Schema = `
-- Recipe catalog. List-valued fields are stored as JSON text.
CREATE TABLE IF NOT EXISTS recipes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    category TEXT,
    time INTEGER,
    difficulty TEXT,
    servings INTEGER,
    image_url TEXT,
    ingredients TEXT,
    steps TEXT,
    tags TEXT,
    description TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- User preference rows; the most recently updated row is the active one.
CREATE TABLE IF NOT EXISTS user_preferences (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    dietary_restrictions TEXT,
    cuisine_types TEXT,
    max_cooking_time INTEGER,
    difficulty_preference TEXT,
    theme TEXT,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Favorites reference recipes by id and carry no recipe data themselves.
CREATE TABLE IF NOT EXISTS favorites (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    recipe_id INTEGER,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (recipe_id) REFERENCES recipes(id)
);

-- Indexes for efficient querying
CREATE INDEX IF NOT EXISTS idx_recipes_category ON recipes(category);
CREATE INDEX IF NOT EXISTS idx_recipes_created ON recipes(created_at);
CREATE INDEX IF NOT EXISTS idx_favorites_recipe ON favorites(recipe_id);
`

// SchemaVersion is the current schema version for migrations
const SchemaVersion = 1
