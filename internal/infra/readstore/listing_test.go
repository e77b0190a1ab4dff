//go:build unit

package readstore

import (
	"testing"

	"rentacar-api/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

var testAllowed = map[string]string{
	"brand": "c.brand",
	"year":  "c.year",
	"color": "c.color",
}

func TestBuildListSQL(t *testing.T) {
	t.Run("フィルタは等価条件になる", func(t *testing.T) {
		opts := queries.ListOptions{
			Filters: map[string]string{"brand": "Toyota"},
		}

		conds, orderBy, paging, args := buildListSQL(opts, testAllowed, "c.created_at DESC", 1)

		assert.Equal(t, []string{"c.brand = $1"}, conds)
		assert.Equal(t, "ORDER BY c.created_at DESC", orderBy)
		assert.Equal(t, "LIMIT 20 OFFSET 0", paging)
		assert.Equal(t, []any{"Toyota"}, args)
	})

	t.Run("検索はILIKE条件になる", func(t *testing.T) {
		opts := queries.ListOptions{
			Searches: map[string]string{"color": "whi"},
		}

		conds, _, _, args := buildListSQL(opts, testAllowed, "c.created_at DESC", 1)

		assert.Equal(t, []string{"c.color::text ILIKE $1"}, conds)
		assert.Equal(t, []any{"%whi%"}, args)
	})

	t.Run("複数条件はキー順でプレースホルダが安定する", func(t *testing.T) {
		opts := queries.ListOptions{
			Filters:  map[string]string{"year": "2022", "brand": "Toyota"},
			Searches: map[string]string{"color": "whi"},
		}

		conds, _, _, args := buildListSQL(opts, testAllowed, "c.created_at DESC", 1)

		wantConds := []string{
			"c.brand = $1",
			"c.year = $2",
			"c.color::text ILIKE $3",
		}
		if diff := cmp.Diff(wantConds, conds); diff != "" {
			t.Errorf("conds mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, []any{"Toyota", "2022", "%whi%"}, args)
	})

	t.Run("許可されていないフィールドは無視される", func(t *testing.T) {
		opts := queries.ListOptions{
			Filters: map[string]string{
				"brand":         "Toyota",
				"password_hash": "x' OR 1=1 --",
			},
			Sort: []queries.SortKey{{Field: "id; DROP TABLE cars", Desc: true}},
		}

		conds, orderBy, _, args := buildListSQL(opts, testAllowed, "c.created_at DESC", 1)

		assert.Equal(t, []string{"c.brand = $1"}, conds)
		assert.Equal(t, []any{"Toyota"}, args)
		assert.Equal(t, "ORDER BY c.created_at DESC", orderBy)
	})

	t.Run("ソートキーの方向指定", func(t *testing.T) {
		opts := queries.ListOptions{
			Sort: []queries.SortKey{
				{Field: "year", Desc: true},
				{Field: "brand", Desc: false},
			},
		}

		_, orderBy, _, _ := buildListSQL(opts, testAllowed, "c.created_at DESC", 1)

		assert.Equal(t, "ORDER BY c.year DESC, c.brand ASC", orderBy)
	})

	t.Run("開始プレースホルダ番号を引き継ぐ", func(t *testing.T) {
		opts := queries.ListOptions{
			Filters: map[string]string{"brand": "Toyota"},
		}

		conds, _, _, _ := buildListSQL(opts, testAllowed, "c.created_at DESC", 3)

		assert.Equal(t, []string{"c.brand = $3"}, conds)
	})

	t.Run("ページングの正規化", func(t *testing.T) {
		opts := queries.ListOptions{Page: 3, Limit: 500}

		_, _, paging, _ := buildListSQL(opts, testAllowed, "c.created_at DESC", 1)

		// Limit is clamped to the maximum, offset follows the clamped limit.
		assert.Equal(t, "LIMIT 100 OFFSET 200", paging)
	})
}
