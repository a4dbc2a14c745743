package lunch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/lunch/pkg/domain"
	"github.com/umputun/lunch/pkg/lunch/mocks"
	"github.com/umputun/lunch/pkg/repository"
)

func newTestStore(t *testing.T, opts ...Option) (*Store, *repository.Repositories) {
	t.Helper()
	repos, err := repository.NewRepositories(context.Background(), repository.Config{DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })
	return NewFromRepositories(repos, opts...), repos
}

func historyCount(t *testing.T, repos *repository.Repositories) int {
	t.Helper()
	var count int
	require.NoError(t, repos.DB.Get(&count, "SELECT COUNT(*) FROM recent_selections"))
	return count
}

func TestStore_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes category and trims name", func(t *testing.T) {
		s, _ := newTestStore(t)
		r, err := s.Add(ctx, "  Taco Town ", "cheap")
		require.NoError(t, err)
		assert.Equal(t, domain.Restaurant{Name: "Taco Town", Category: domain.CategoryCheap}, r)

		r, err = s.Add(ctx, "Bistro Nine", "NORMAL")
		require.NoError(t, err)
		assert.Equal(t, domain.CategoryNormal, r.Category)

		list, err := s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []domain.Restaurant{
			{Name: "Bistro Nine", Category: domain.CategoryNormal},
			{Name: "Taco Town", Category: domain.CategoryCheap},
		}, list)
	})

	t.Run("keeps name as typed", func(t *testing.T) {
		s, _ := newTestStore(t)
		for _, name := range []string{"Tom & Jerry's", "AT&amp;T", "a < b", `Joe's "Diner"`, "5 > 4"} {
			r, err := s.Add(ctx, "  "+name+" ", "cheap")
			require.NoError(t, err, name)
			assert.Equal(t, name, r.Name)
		}

		list, err := s.List(ctx)
		require.NoError(t, err)
		names := make([]string, 0, len(list))
		for _, r := range list {
			names = append(names, r.Name)
		}
		assert.ElementsMatch(t, []string{"Tom & Jerry's", "AT&amp;T", "a < b", `Joe's "Diner"`, "5 > 4"}, names)
	})

	t.Run("rejects markup without storing", func(t *testing.T) {
		s, _ := newTestStore(t)
		_, err := s.Add(ctx, "Taco", "cheap")
		require.NoError(t, err)

		for _, name := range []string{"<b>Taco</b>", "Bar <Baz>", "<script>Joe</script>", "<i></i>"} {
			_, err := s.Add(ctx, name, "cheap")
			require.ErrorIs(t, err, domain.ErrInvalidInput, name)
			assert.NotErrorIs(t, err, domain.ErrDuplicateName, name)
		}

		list, err := s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []domain.Restaurant{{Name: "Taco", Category: domain.CategoryCheap}}, list)
	})

	t.Run("invalid input", func(t *testing.T) {
		s, _ := newTestStore(t)
		tbl := []struct{ name, category string }{
			{"", "cheap"},
			{"   ", "cheap"},
			{"\t\n", "normal"},
			{"Place", "fancy"},
			{"Place", ""},
		}
		for _, tt := range tbl {
			_, err := s.Add(ctx, tt.name, tt.category)
			require.Error(t, err, "%q %q", tt.name, tt.category)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		}
		list, err := s.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("duplicate name leaves store unchanged", func(t *testing.T) {
		s, _ := newTestStore(t)
		_, err := s.Add(ctx, "Taco Town", "cheap")
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			_, err = s.Add(ctx, "Taco Town", "normal")
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrDuplicateName)
		}
		list, err := s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []domain.Restaurant{{Name: "Taco Town", Category: domain.CategoryCheap}}, list)
	})
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	s, repos := newTestStore(t)

	_, err := s.Add(ctx, "Pasta Place", "Normal")
	require.NoError(t, err)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Restaurant{{Name: "Pasta Place", Category: domain.CategoryNormal}}, list)

	_, err = s.Roll(ctx, "normal")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "Pasta Place"))
	list, err = s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Equal(t, 1, historyCount(t, repos), "history not cascaded")

	// idempotent
	require.NoError(t, s.Delete(ctx, "Ghost Diner"))
	require.NoError(t, s.Delete(ctx, "Pasta Place"))
}

func TestStore_ListByCategory(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	for _, r := range []struct{ name, category string }{
		{"Cheap Place 1", "cheap"}, {"Cheap Place 2", "Cheap"}, {"Normal Place", "normal"},
	} {
		_, err := s.Add(ctx, r.name, r.category)
		require.NoError(t, err)
	}

	cheap, err := s.ListByCategory(ctx, "CHEAP")
	require.NoError(t, err)
	assert.Len(t, cheap, 2)

	normal, err := s.ListByCategory(ctx, "normal")
	require.NoError(t, err)
	assert.Equal(t, []domain.Restaurant{{Name: "Normal Place", Category: domain.CategoryNormal}}, normal)

	none, err := s.ListByCategory(ctx, "fancy")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_Roll(t *testing.T) {
	ctx := context.Background()

	t.Run("empty category", func(t *testing.T) {
		s, repos := newTestStore(t)
		_, err := s.Add(ctx, "Normal Place", "normal")
		require.NoError(t, err)

		_, err = s.Roll(ctx, "cheap")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNoRestaurants)
		assert.Zero(t, historyCount(t, repos))

		_, err = s.Roll(ctx, "fancy")
		assert.ErrorIs(t, err, domain.ErrNoRestaurants)
		assert.Zero(t, historyCount(t, repos))
	})

	t.Run("single restaurant repeats", func(t *testing.T) {
		s, _ := newTestStore(t)
		_, err := s.Add(ctx, "Only One", "cheap")
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			r, err := s.Roll(ctx, "cheap")
			require.NoError(t, err)
			assert.Equal(t, "Only One", r.Name)
		}
	})

	t.Run("no immediate repeat", func(t *testing.T) {
		s, _ := newTestStore(t)
		for _, name := range []string{"Place A", "Place B", "Place C"} {
			_, err := s.Add(ctx, name, "cheap")
			require.NoError(t, err)
		}

		prev := ""
		seen := map[string]int{}
		for i := 0; i < 60; i++ {
			r, err := s.Roll(ctx, "cheap")
			require.NoError(t, err)
			assert.NotEqual(t, prev, r.Name, "roll %d repeated previous pick", i)
			assert.Equal(t, domain.CategoryCheap, r.Category)
			prev = r.Name
			seen[r.Name]++
		}
		assert.Len(t, seen, 3, "all restaurants picked at some point")
	})

	t.Run("two restaurants alternate", func(t *testing.T) {
		s, _ := newTestStore(t)
		_, err := s.Add(ctx, "Place A", "cheap")
		require.NoError(t, err)
		_, err = s.Add(ctx, "Place B", "cheap")
		require.NoError(t, err)

		first, err := s.Roll(ctx, "cheap")
		require.NoError(t, err)
		second, err := s.Roll(ctx, "cheap")
		require.NoError(t, err)
		assert.NotEqual(t, first.Name, second.Name)
	})

	t.Run("last pick from another category doesn't matter", func(t *testing.T) {
		s, _ := newTestStore(t, WithRandom(func(int) int { return 0 }))
		_, err := s.Add(ctx, "Cheap A", "cheap")
		require.NoError(t, err)
		_, err = s.Add(ctx, "Normal A", "normal")
		require.NoError(t, err)
		_, err = s.Add(ctx, "Normal B", "normal")
		require.NoError(t, err)

		r, err := s.Roll(ctx, "normal")
		require.NoError(t, err)
		assert.Equal(t, "Normal A", r.Name)
		r, err = s.Roll(ctx, "cheap")
		require.NoError(t, err)
		assert.Equal(t, "Cheap A", r.Name)
		r, err = s.Roll(ctx, "normal")
		require.NoError(t, err)
		assert.Equal(t, "Normal A", r.Name, "only the single most recent pick is excluded")
	})

	t.Run("repeat allowed after other candidates deleted", func(t *testing.T) {
		s, _ := newTestStore(t, WithRandom(func(int) int { return 0 }))
		_, err := s.Add(ctx, "Place A", "cheap")
		require.NoError(t, err)
		_, err = s.Add(ctx, "Place B", "cheap")
		require.NoError(t, err)

		r, err := s.Roll(ctx, "cheap")
		require.NoError(t, err)
		assert.Equal(t, "Place A", r.Name)

		require.NoError(t, s.Delete(ctx, "Place B"))
		r, err = s.Roll(ctx, "cheap")
		require.NoError(t, err)
		assert.Equal(t, "Place A", r.Name)
	})

	t.Run("history bounded", func(t *testing.T) {
		s, repos := newTestStore(t)
		for i := 0; i < 5; i++ {
			_, err := s.Add(ctx, fmt.Sprintf("Place %d", i), "normal")
			require.NoError(t, err)
		}
		for i := 0; i < 40; i++ {
			_, err := s.Roll(ctx, "normal")
			require.NoError(t, err)
			assert.LessOrEqual(t, historyCount(t, repos), domain.HistoryLimit)
		}
		recent, err := s.Recent(ctx)
		require.NoError(t, err)
		assert.Len(t, recent, domain.HistoryLimit)
	})

	t.Run("records chosen name with clock time", func(t *testing.T) {
		ts := time.Date(2026, 10, 18, 12, 30, 0, 0, time.UTC)
		s, _ := newTestStore(t, WithClock(func() time.Time { return ts }))
		_, err := s.Add(ctx, "Taco Town", "cheap")
		require.NoError(t, err)

		r, err := s.Roll(ctx, "cheap")
		require.NoError(t, err)

		recent, err := s.Recent(ctx)
		require.NoError(t, err)
		require.Len(t, recent, 1)
		assert.Equal(t, r.Name, recent[0].Name)
		assert.True(t, ts.Equal(recent[0].SelectedAt))
		assert.NotEmpty(t, recent[0].ID)
	})
}

func TestStore_EndToEnd(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	_, err := s.Add(ctx, "Taco Town", "cheap")
	require.NoError(t, err)
	_, err = s.Add(ctx, "Bistro Nine", "normal")
	require.NoError(t, err)
	_, err = s.Add(ctx, "Taco Town", "cheap")
	assert.ErrorIs(t, err, domain.ErrDuplicateName)

	r, err := s.Roll(ctx, "cheap")
	require.NoError(t, err)
	assert.Equal(t, "Taco Town", r.Name)
	r, err = s.Roll(ctx, "cheap")
	require.NoError(t, err)
	assert.Equal(t, "Taco Town", r.Name)

	normal, err := s.ListByCategory(ctx, "normal")
	require.NoError(t, err)
	assert.Equal(t, []domain.Restaurant{{Name: "Bistro Nine", Category: domain.CategoryNormal}}, normal)

	require.NoError(t, s.Delete(ctx, "Bistro Nine"))
	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Restaurant{{Name: "Taco Town", Category: domain.CategoryCheap}}, list)
}

func TestStore_ConcurrentRolls(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "lunch.db")
	repos, err := repository.NewRepositories(ctx, repository.Config{Path: path, MaxOpenConns: 10})
	require.NoError(t, err)
	defer repos.Close()
	s := NewFromRepositories(repos)

	for i := 0; i < 4; i++ {
		_, err := s.Add(ctx, fmt.Sprintf("Place %d", i), "cheap")
		require.NoError(t, err)
	}

	var g errgroup.Group
	for i := 0; i < 50; i++ {
		g.Go(func() error {
			_, err := s.Roll(ctx, "cheap")
			return err
		})
	}
	require.NoError(t, g.Wait())

	// serialized rolls never repeat the previous pick
	recent, err := s.Recent(ctx)
	require.NoError(t, err)
	require.Len(t, recent, domain.HistoryLimit)
	for i := 1; i < len(recent); i++ {
		assert.NotEqual(t, recent[i-1].Name, recent[i].Name)
	}
}

func TestStore_StorageErrors(t *testing.T) {
	ctx := context.Background()
	readErr := fmt.Errorf("get restaurants: %w: disk I/O error", domain.ErrStorageRead)
	writeErr := fmt.Errorf("record selection: %w: disk full", domain.ErrStorageWrite)

	t.Run("list", func(t *testing.T) {
		rests := &mocks.RestaurantsMock{
			GetRestaurantsFunc: func(context.Context) ([]domain.Restaurant, error) { return nil, readErr },
		}
		s := New(rests, &mocks.SelectionsMock{})
		_, err := s.List(ctx)
		assert.ErrorIs(t, err, domain.ErrStorageRead)
	})

	t.Run("candidates read fails", func(t *testing.T) {
		rests := &mocks.RestaurantsMock{
			GetRestaurantsByCategoryFunc: func(context.Context, string) ([]domain.Restaurant, error) { return nil, readErr },
		}
		sels := &mocks.SelectionsMock{}
		s := New(rests, sels)
		_, err := s.Roll(ctx, "cheap")
		assert.ErrorIs(t, err, domain.ErrStorageRead)
		assert.Empty(t, sels.GetLastSelectionCalls())
	})

	t.Run("history read fails", func(t *testing.T) {
		rests := &mocks.RestaurantsMock{
			GetRestaurantsByCategoryFunc: func(context.Context, string) ([]domain.Restaurant, error) {
				return []domain.Restaurant{{Name: "A", Category: domain.CategoryCheap}}, nil
			},
		}
		sels := &mocks.SelectionsMock{
			GetLastSelectionFunc: func(context.Context) (*domain.Selection, error) { return nil, readErr },
		}
		s := New(rests, sels)
		_, err := s.Roll(ctx, "cheap")
		assert.ErrorIs(t, err, domain.ErrStorageRead)
		assert.Empty(t, sels.RecordSelectionCalls())
	})

	t.Run("record fails", func(t *testing.T) {
		rests := &mocks.RestaurantsMock{
			GetRestaurantsByCategoryFunc: func(context.Context, string) ([]domain.Restaurant, error) {
				return []domain.Restaurant{{Name: "A", Category: domain.CategoryCheap}, {Name: "B", Category: domain.CategoryCheap}}, nil
			},
		}
		sels := &mocks.SelectionsMock{
			GetLastSelectionFunc: func(context.Context) (*domain.Selection, error) {
				return &domain.Selection{Name: "A"}, nil
			},
			RecordSelectionFunc: func(context.Context, string, time.Time, int) (domain.Selection, error) {
				return domain.Selection{}, writeErr
			},
		}
		s := New(rests, sels)
		_, err := s.Roll(ctx, "cheap")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrStorageWrite)
		require.Len(t, sels.RecordSelectionCalls(), 1)
		assert.Equal(t, "B", sels.RecordSelectionCalls()[0].Name)
		assert.Equal(t, domain.HistoryLimit, sels.RecordSelectionCalls()[0].Keep)
	})

	t.Run("add and delete pass errors through", func(t *testing.T) {
		rests := &mocks.RestaurantsMock{
			CreateRestaurantFunc: func(context.Context, domain.Restaurant) error { return writeErr },
			DeleteRestaurantFunc: func(context.Context, string) error { return errors.New("boom") },
		}
		s := New(rests, &mocks.SelectionsMock{})
		_, err := s.Add(ctx, "A", "cheap")
		assert.ErrorIs(t, err, domain.ErrStorageWrite)
		assert.EqualError(t, s.Delete(ctx, "A"), "boom")
	})
}
