package loader

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validRecipesJSON = `{
	"recipes": [
		{
			"id": "sugar-cookies",
			"metadata": {"name": "Sugar Cookies", "baseServings": 8, "difficulty": "easy", "bakingTime": 10, "icon": "🍪"},
			"steps": [{"template": "bake", "params": {"time": 10}}]
		}
	]
}`

const validTemplatesJSON = `{
	"stepTemplates": {
		"bake": {
			"name": "Bake",
			"type": "baking",
			"instructions": ["Bake for {time} minutes"],
			"defaultParams": {"temp": 350}
		}
	}
}`

// countingSource serves fixed payloads and counts fetches per kind.
type countingSource struct {
	recipes   []byte
	templates []byte
	err       error
	fetches   int32
}

func (s *countingSource) Fetch(ctx context.Context, kind Kind) ([]byte, error) {
	atomic.AddInt32(&s.fetches, 1)
	if s.err != nil {
		return nil, s.err
	}
	if kind == KindRecipes {
		return s.recipes, nil
	}
	return s.templates, nil
}

func TestLoadRecipes(t *testing.T) {
	t.Run("parses a valid document", func(t *testing.T) {
		l := New(&countingSource{recipes: []byte(validRecipesJSON)})

		doc := l.LoadRecipes(context.Background())

		require.Len(t, doc.Recipes, 1)
		assert.Equal(t, "sugar-cookies", doc.Recipes[0].ID)
		assert.Equal(t, "Sugar Cookies", doc.Recipes[0].Metadata.Name)
		assert.False(t, l.FallbackUsed(KindRecipes))
	})

	t.Run("repeated loads return the identical cached document", func(t *testing.T) {
		src := &countingSource{recipes: []byte(validRecipesJSON)}
		l := New(src)

		first := l.LoadRecipes(context.Background())
		second := l.LoadRecipes(context.Background())

		assert.Same(t, first, second)
		assert.Equal(t, int32(1), atomic.LoadInt32(&src.fetches))
	})

	t.Run("fetch failure falls back and caches the fallback", func(t *testing.T) {
		src := &countingSource{err: errors.New("connection refused")}
		l := New(src)

		first := l.LoadRecipes(context.Background())
		second := l.LoadRecipes(context.Background())

		require.Len(t, first.Recipes, 1)
		assert.Equal(t, "basic-cookies", first.Recipes[0].ID)
		assert.Same(t, first, second)
		assert.Equal(t, int32(1), atomic.LoadInt32(&src.fetches), "fallback must not be retried")
		assert.True(t, l.FallbackUsed(KindRecipes))
	})

	t.Run("validation failure falls back", func(t *testing.T) {
		tests := []struct {
			name string
			body string
		}{
			{name: "not an object", body: `[1, 2, 3]`},
			{name: "missing recipes array", body: `{"other": []}`},
			{name: "empty recipe id", body: `{"recipes": [{"id": "", "metadata": {"name": "X", "baseServings": 1}}]}`},
			{name: "missing metadata name", body: `{"recipes": [{"id": "x", "metadata": {"baseServings": 1}}]}`},
			{name: "zero baseServings", body: `{"recipes": [{"id": "x", "metadata": {"name": "X", "baseServings": 0}}]}`},
			{name: "baseServings wrong type", body: `{"recipes": [{"id": "x", "metadata": {"name": "X", "baseServings": "four"}}]}`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				l := New(&countingSource{recipes: []byte(tt.body)})

				doc := l.LoadRecipes(context.Background())

				require.Len(t, doc.Recipes, 1)
				assert.Equal(t, "basic-cookies", doc.Recipes[0].ID)
				assert.True(t, l.FallbackUsed(KindRecipes))
			})
		}
	})

	t.Run("concurrent loads coalesce into one fetch", func(t *testing.T) {
		src := &countingSource{recipes: []byte(validRecipesJSON)}
		l := New(src)

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				l.LoadRecipes(context.Background())
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), atomic.LoadInt32(&src.fetches))
	})
}

func TestLoadStepTemplates(t *testing.T) {
	t.Run("parses a valid document", func(t *testing.T) {
		l := New(&countingSource{templates: []byte(validTemplatesJSON)})

		doc := l.LoadStepTemplates(context.Background())

		tpl, ok := doc.StepTemplates["bake"]
		require.True(t, ok)
		assert.Equal(t, "Bake", tpl.Name)
		assert.Equal(t, "baking", tpl.Type)
		assert.Equal(t, 350.0, tpl.DefaultParams["temp"])
	})

	t.Run("entry without a name falls back", func(t *testing.T) {
		l := New(&countingSource{templates: []byte(`{"stepTemplates": {"bake": {"type": "baking"}}}`)})

		doc := l.LoadStepTemplates(context.Background())

		assert.Contains(t, doc.StepTemplates, "combine")
		assert.True(t, l.FallbackUsed(KindStepTemplates))
	})

	t.Run("kinds cache independently", func(t *testing.T) {
		src := &countingSource{recipes: []byte(validRecipesJSON), templates: []byte(validTemplatesJSON)}
		l := New(src)

		l.LoadRecipes(context.Background())
		l.LoadStepTemplates(context.Background())
		l.LoadRecipes(context.Background())
		l.LoadStepTemplates(context.Background())

		assert.Equal(t, int32(2), atomic.LoadInt32(&src.fetches))
	})
}

func TestClearCache(t *testing.T) {
	t.Run("forces a refetch", func(t *testing.T) {
		src := &countingSource{recipes: []byte(validRecipesJSON)}
		l := New(src)

		first := l.LoadRecipes(context.Background())
		l.ClearCache()
		second := l.LoadRecipes(context.Background())

		assert.NotSame(t, first, second)
		assert.Equal(t, int32(2), atomic.LoadInt32(&src.fetches))
	})
}

func TestHTTPSource(t *testing.T) {
	t.Run("fetches from the configured URL", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(validRecipesJSON))
		}))
		defer srv.Close()

		src := NewHTTPSource(srv.URL+"/recipes.json", srv.URL+"/templates.json")

		raw, err := src.Fetch(context.Background(), KindRecipes)

		require.NoError(t, err)
		assert.JSONEq(t, validRecipesJSON, string(raw))
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		src := NewHTTPSource(srv.URL, srv.URL)

		_, err := src.Fetch(context.Background(), KindRecipes)

		assert.Error(t, err)
	})

	t.Run("loader recovers from a failing server", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		l := New(NewHTTPSource(srv.URL, srv.URL))

		doc := l.LoadRecipes(context.Background())

		require.Len(t, doc.Recipes, 1)
		assert.Equal(t, "basic-cookies", doc.Recipes[0].ID)
	})
}

func TestFileSource(t *testing.T) {
	t.Run("reads documents from disk", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "recipes.json")
		require.NoError(t, os.WriteFile(path, []byte(validRecipesJSON), 0o644))

		src := &FileSource{RecipesPath: path}

		raw, err := src.Fetch(context.Background(), KindRecipes)

		require.NoError(t, err)
		assert.JSONEq(t, validRecipesJSON, string(raw))
	})

	t.Run("missing file is an error", func(t *testing.T) {
		src := &FileSource{RecipesPath: filepath.Join(t.TempDir(), "missing.json")}

		_, err := src.Fetch(context.Background(), KindRecipes)

		assert.Error(t, err)
	})
}

func TestFallbackDocuments(t *testing.T) {
	t.Run("fallback recipes pass their own validation", func(t *testing.T) {
		doc := fallbackRecipes()

		for _, r := range doc.Recipes {
			assert.NotEmpty(t, r.ID)
			assert.NotEmpty(t, r.Metadata.Name)
			assert.GreaterOrEqual(t, r.Metadata.BaseServings, 1)
		}
	})

	t.Run("fallback recipes only reference fallback templates", func(t *testing.T) {
		recipes := fallbackRecipes()
		templates := fallbackStepTemplates()

		for _, r := range recipes.Recipes {
			for _, s := range r.Steps {
				assert.Contains(t, templates.StepTemplates, s.Template)
			}
		}
	})
}
