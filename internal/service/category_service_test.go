package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rick2303/Olanchito/internal/model"
)

func TestCategoryListarWithoutCache(t *testing.T) {
	id := uuid.New()
	cats := &stubCategoryRepo{byID: map[uuid.UUID]*model.Category{
		id: {ID: id, Name: "Farmacias", Slug: "farmacias"},
	}}
	svc := NewCategoryService(cats, nil)

	list, err := svc.Listar(context.Background())
	require.NoError(t, err)

	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
	assert.Equal(t, "farmacias", list[0].Slug)
}

func TestCategoryListarEmptyTaxonomy(t *testing.T) {
	svc := NewCategoryService(&stubCategoryRepo{}, nil)

	list, err := svc.Listar(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)
}

func TestCategoryListarRepoErrorIsLoadFailure(t *testing.T) {
	svc := NewCategoryService(&stubCategoryRepo{listErr: errors.New("conn refused")}, nil)

	_, err := svc.Listar(context.Background())
	assert.ErrorIs(t, err, ErrLoadFailure)
}
