package class

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"dancedir/internal/database"
	"dancedir/internal/domain/dancer"
	"dancedir/internal/domain/studio"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&dancer.Dancer{}, &studio.Studio{}, &Class{}))
	return db
}

func createDancer(t *testing.T, db *gorm.DB, name string) *dancer.Dancer {
	t.Helper()

	d, err := dancer.NewRepository(db).Create(context.Background(), dancer.CreateParams{Name: name})
	require.NoError(t, err)
	return d
}

func createStudio(t *testing.T, db *gorm.DB, name string) *studio.Studio {
	t.Helper()

	st := &studio.Studio{Name: name}
	require.NoError(t, studio.NewRepository(db).Create(context.Background(), st))
	return st
}

func TestCreateLoadsDancers(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	st := createStudio(t, db, "1MILLION")
	d1 := createDancer(t, db, "리아킴")
	d2 := createDancer(t, db, "김민준")

	level := LevelBasic
	c, err := repo.Create(ctx, CreateParams{
		StudioID:  st.ID,
		DancerIDs: []string{d1.ID, d2.ID},
		DateTime:  time.Date(2025, 1, 15, 5, 0, 0, 0, time.UTC),
		Timezone:  "Asia/Seoul",
		Level:     &level,
	})
	require.NoError(t, err)
	require.Len(t, c.Dancers, 2)

	fresh, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, fresh.Dancers, 2)
	require.Equal(t, "Asia/Seoul", fresh.Timezone)
}

func TestCreateUnknownStudioFails(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)

	d := createDancer(t, db, "리아킴")

	_, err := repo.Create(context.Background(), CreateParams{
		StudioID:  "no-such-studio",
		DancerIDs: []string{d.ID},
		DateTime:  time.Now(),
		Timezone:  "UTC",
	})
	require.ErrorIs(t, err, ErrUnknownStudio)

	// No orphan row and no association rows left behind.
	var cnt int64
	require.NoError(t, db.Model(&Class{}).Count(&cnt).Error)
	require.Zero(t, cnt)
	require.NoError(t, db.Table("class_dancer_association").Count(&cnt).Error)
	require.Zero(t, cnt)
}

func TestCreateUnknownDancerFails(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)

	st := createStudio(t, db, "1MILLION")

	_, err := repo.Create(context.Background(), CreateParams{
		StudioID:  st.ID,
		DancerIDs: []string{uuid.NewString()},
		DateTime:  time.Now(),
		Timezone:  "UTC",
	})
	require.ErrorIs(t, err, ErrUnknownDancers)

	var cnt int64
	require.NoError(t, db.Model(&Class{}).Count(&cnt).Error)
	require.Zero(t, cnt)
}

func TestListByDancer(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	st := createStudio(t, db, "1MILLION")
	d1 := createDancer(t, db, "리아킴")
	d2 := createDancer(t, db, "김민준")

	_, err := repo.Create(ctx, CreateParams{
		StudioID:  st.ID,
		DancerIDs: []string{d1.ID},
		DateTime:  time.Now(),
		Timezone:  "UTC",
	})
	require.NoError(t, err)
	_, err = repo.Create(ctx, CreateParams{
		StudioID:  st.ID,
		DancerIDs: []string{d1.ID, d2.ID},
		DateTime:  time.Now().Add(time.Hour),
		Timezone:  "UTC",
	})
	require.NoError(t, err)

	byD1, err := repo.ListByDancer(ctx, d1.ID)
	require.NoError(t, err)
	require.Len(t, byD1, 2)

	byD2, err := repo.ListByDancer(ctx, d2.ID)
	require.NoError(t, err)
	require.Len(t, byD2, 1)

	byStudio, err := repo.ListByStudio(ctx, st.ID)
	require.NoError(t, err)
	require.Len(t, byStudio, 2)
}

func TestEditReplacesDancerSet(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	st := createStudio(t, db, "1MILLION")
	d1 := createDancer(t, db, "리아킴")
	d2 := createDancer(t, db, "김민준")

	c, err := repo.Create(ctx, CreateParams{
		StudioID:  st.ID,
		DancerIDs: []string{d1.ID},
		DateTime:  time.Now(),
		Timezone:  "UTC",
	})
	require.NoError(t, err)

	edited, err := repo.Edit(ctx, c.ID, EditParams{DancerIDs: []string{d2.ID}})
	require.NoError(t, err)
	require.Len(t, edited.Dancers, 1)
	require.Equal(t, d2.ID, edited.Dancers[0].ID)

	fresh, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, fresh.Dancers, 1)
	require.Equal(t, d2.ID, fresh.Dancers[0].ID)
}

func TestEditClearLevelOnly(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	st := createStudio(t, db, "1MILLION")
	d := createDancer(t, db, "리아킴")
	level := LevelAdvanced
	genre := dancer.GenreHiphop
	c, err := repo.Create(ctx, CreateParams{
		StudioID:  st.ID,
		DancerIDs: []string{d.ID},
		DateTime:  time.Now(),
		Timezone:  "UTC",
		Level:     &level,
		Genre:     &genre,
	})
	require.NoError(t, err)

	edited, err := repo.Edit(ctx, c.ID, EditParams{ClearLevel: true})
	require.NoError(t, err)
	require.Nil(t, edited.Level)

	fresh, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Nil(t, fresh.Level)
	require.NotNil(t, fresh.Genre)
	require.Equal(t, dancer.GenreHiphop, *fresh.Genre)
	require.Len(t, fresh.Dancers, 1)
}

func TestDeleteKeepsDancersAndOtherClasses(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	st := createStudio(t, db, "1MILLION")
	d := createDancer(t, db, "리아킴")

	c1, err := repo.Create(ctx, CreateParams{
		StudioID:  st.ID,
		DancerIDs: []string{d.ID},
		DateTime:  time.Now(),
		Timezone:  "UTC",
	})
	require.NoError(t, err)
	c2, err := repo.Create(ctx, CreateParams{
		StudioID:  st.ID,
		DancerIDs: []string{d.ID},
		DateTime:  time.Now().Add(time.Hour),
		Timezone:  "UTC",
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, c1.ID))

	_, err = repo.GetByID(ctx, c1.ID)
	require.ErrorIs(t, err, ErrNotFound)

	fresh, err := repo.GetByID(ctx, c2.ID)
	require.NoError(t, err)
	require.Len(t, fresh.Dancers, 1)

	_, err = dancer.NewRepository(db).GetByID(ctx, d.ID)
	require.NoError(t, err)

	require.ErrorIs(t, repo.Delete(ctx, c1.ID), ErrNotFound)
}

func TestRemoveDuplicates(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	st := createStudio(t, db, "1MILLION")
	d1 := createDancer(t, db, "리아킴")
	d2 := createDancer(t, db, "김민준")
	at := time.Date(2025, 1, 15, 5, 0, 0, 0, time.UTC)

	first, err := repo.Create(ctx, CreateParams{
		StudioID:  st.ID,
		DancerIDs: []string{d1.ID, d2.ID},
		DateTime:  at,
		Timezone:  "Asia/Seoul",
	})
	require.NoError(t, err)

	// Same studio, same time, same dancers in a different order.
	dup, err := repo.Create(ctx, CreateParams{
		StudioID:  st.ID,
		DancerIDs: []string{d2.ID, d1.ID},
		DateTime:  at,
		Timezone:  "Asia/Seoul",
	})
	require.NoError(t, err)

	// Same everything except the dancer set.
	other, err := repo.Create(ctx, CreateParams{
		StudioID:  st.ID,
		DancerIDs: []string{d1.ID},
		DateTime:  at,
		Timezone:  "Asia/Seoul",
	})
	require.NoError(t, err)

	deleted, err := repo.RemoveDuplicates(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, deleted)

	_, err = repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	_, err = repo.GetByID(ctx, dup.ID)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = repo.GetByID(ctx, other.ID)
	require.NoError(t, err)

	var cnt int64
	require.NoError(t, db.Table("class_dancer_association").
		Where("class_id = ?", dup.ID).Count(&cnt).Error)
	require.Zero(t, cnt)

	// Second pass finds nothing.
	deleted, err = repo.RemoveDuplicates(ctx)
	require.NoError(t, err)
	require.Zero(t, deleted)
}

func TestRemoveDuplicatesKeepsSubSecondNeighbors(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	st := createStudio(t, db, "1MILLION")
	d := createDancer(t, db, "리아킴")
	at := time.Date(2025, 1, 15, 5, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, CreateParams{
		StudioID:  st.ID,
		DancerIDs: []string{d.ID},
		DateTime:  at,
		Timezone:  "Asia/Seoul",
	})
	require.NoError(t, err)

	// Same second, different sub-second instant: not a duplicate.
	_, err = repo.Create(ctx, CreateParams{
		StudioID:  st.ID,
		DancerIDs: []string{d.ID},
		DateTime:  at.Add(500 * time.Millisecond),
		Timezone:  "Asia/Seoul",
	})
	require.NoError(t, err)

	deleted, err := repo.RemoveDuplicates(ctx)
	require.NoError(t, err)
	require.Zero(t, deleted)

	var cnt int64
	require.NoError(t, db.Model(&Class{}).Count(&cnt).Error)
	require.EqualValues(t, 2, cnt)
}
