package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/secondchance-backend/internal/models"
	"github.com/sbilibin2017/secondchance-backend/internal/services"
)

func TestSearchService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSearcher := services.NewMockItemSearcher(ctrl)
	svc := services.NewSearchService(mockSearcher)

	two := 2
	found := []models.ItemDB{{ID: "1", Name: "Wooden chair"}}

	tests := []struct {
		name       string
		params     [4]string // name, category, condition, age_years
		wantFilter models.ItemFilter
		results    []models.ItemDB
		searchErr  error
		wantErr    error
	}{
		{
			name:       "all filters set",
			params:     [4]string{"chair", "Home", "Good", "2"},
			wantFilter: models.ItemFilter{Name: "chair", Category: "Home", Condition: "Good", MaxAgeYears: &two},
			results:    found,
		},
		{
			name:       "blank name is excluded from the filter",
			params:     [4]string{"   ", "Home", "", ""},
			wantFilter: models.ItemFilter{Category: "Home"},
			results:    found,
		},
		{
			name:       "non-numeric age_years is ignored",
			params:     [4]string{"", "", "", "old"},
			wantFilter: models.ItemFilter{},
			results:    found,
		},
		{
			name:       "no items found",
			params:     [4]string{"", "Toys", "", ""},
			wantFilter: models.ItemFilter{Category: "Toys"},
			results:    nil,
			wantErr:    services.ErrNoItemsFound,
		},
		{
			name:       "searcher error",
			params:     [4]string{"", "", "", ""},
			wantFilter: models.ItemFilter{},
			searchErr:  errors.New("db error"),
			wantErr:    errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSearcher.EXPECT().
				Search(gomock.Any(), tt.wantFilter).
				Return(tt.results, tt.searchErr)

			items, err := svc.Search(context.Background(), tt.params[0], tt.params[1], tt.params[2], tt.params[3])
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.results, items)
		})
	}
}
