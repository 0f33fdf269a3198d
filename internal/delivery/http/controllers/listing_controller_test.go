package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"elevatecart/internal/delivery/http/helpers"
	"elevatecart/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingController_ListPageListings(t *testing.T) {
	page := &domain.PageConfig{ID: "fall", EndpointURL: "https://elevate.test/api"}
	fall := &domain.Group{ID: "42", Code: "FALL25", Title: "Fall 2025"}

	tests := []struct {
		name           string
		pageID         string
		repoErr        error
		listings       []*domain.GroupListing
		serviceErr     error
		wantStatus     int
		wantBodySubstr string
		checkResponse  func(t *testing.T, data []*domain.GroupListing)
	}{
		{
			name:   "success",
			pageID: "fall",
			listings: []*domain.GroupListing{
				{
					Selector:  domain.GroupSelector{MatchMethod: domain.MatchByCode, MatchValue: "FALL25"},
					Group:     fall,
					Instances: []*domain.InstanceView{{ObjectID: "i1", Availability: domain.AvailabilityOpen}},
				},
				{
					Selector:  domain.GroupSelector{MatchMethod: domain.MatchByID, MatchValue: "77"},
					Message:   "Nothing this term.",
					Instances: []*domain.InstanceView{},
				},
			},
			wantStatus: http.StatusOK,
			checkResponse: func(t *testing.T, data []*domain.GroupListing) {
				require.Len(t, data, 2)
				require.NotNil(t, data[0].Group)
				assert.Equal(t, "Fall 2025", data[0].Group.Title)
				require.Len(t, data[0].Instances, 1)
				assert.Equal(t, domain.AvailabilityOpen, data[0].Instances[0].Availability)
				assert.Equal(t, "77", data[1].Selector.MatchValue)
				assert.Nil(t, data[1].Group)
				assert.Equal(t, "Nothing this term.", data[1].Message)
			},
		},
		{
			name:       "no groups configured",
			pageID:     "fall",
			wantStatus: http.StatusOK,
			checkResponse: func(t *testing.T, data []*domain.GroupListing) {
				assert.NotNil(t, data)
				assert.Empty(t, data)
			},
		},
		{
			name:           "missing pageID",
			pageID:         "",
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "missing pageID",
		},
		{
			name:           "page not found",
			pageID:         "summer",
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "page not found",
		},
		{
			name:           "repository error",
			pageID:         "fall",
			repoErr:        errors.New("disk error"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "disk error",
		},
		{
			name:           "invalid page",
			pageID:         "fall",
			serviceErr:     domain.ErrInvalidInput,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid input",
		},
		{
			name:           "service error",
			pageID:         "fall",
			serviceErr:     errors.New("boom"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakePageRepo{pages: map[string]*domain.PageConfig{"fall": page}, err: tt.repoErr}
			svc := &fakeListingService{listings: tt.listings, err: tt.serviceErr}
			ctrl := NewListingController(testLogger, repo, svc)
			req := httptest.NewRequest(http.MethodGet, "http://test/pages/"+tt.pageID+"/listings", nil)
			if tt.pageID != "" {
				req.SetPathValue("pageID", tt.pageID)
			}
			rr := httptest.NewRecorder()

			ctrl.ListPageListings(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBodySubstr != "" {
				assert.Contains(t, rr.Body.String(), tt.wantBodySubstr)
			}
			if tt.checkResponse != nil {
				var resp ListPageListingsSuccessResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Nil(t, resp.Error)
				tt.checkResponse(t, resp.Data)
				assert.Same(t, page, svc.lastPage)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	rr := httptest.NewRecorder()
	Health(rr, httptest.NewRequest(http.MethodGet, "http://test/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, map[string]any{"status": "ok"}, resp.Data)
}
