package elevate

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"elevatecart/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogJSON = `{
  "programs": [
    {"program": {
      "id": 501,
      "programTitle": "Pottery",
      "instructionalMethod": {"code": "CLASS", "title": "Classroom"},
      "programInstances": [
        {"programInstance": {
          "id": "PI-1",
          "code": "POT-101",
          "programInstanceID": "POT-101-FALL25",
          "programInstanceTitle": "Pottery I",
          "programInstanceSummaryBrief": "<p>Wheel basics</p>",
          "programInstanceSummaryLong": null,
          "fee": 250,
          "credits": 1.5,
          "placesLeft": 0,
          "waitlistPlacesLeft": 3,
          "status": {"code": "CI_OPEN", "title": "Open"},
          "courseStream": {"id": 42, "code": "FALL25", "title": "Fall 2025"},
          "services": [
            {"service": {"code": "ONLINE_REG", "title": "Enroll and Pay", "startDate": "01-JAN-2020", "endDate": "02-JAN-2020"},
             "startDate": "01-OCT-2024", "endDate": "31-OCT-2024"},
            {"service": {"code": "INFO", "title": "Request Info"}}
          ],
          "sections": [
            {"section": {
              "id": 9001,
              "sectionID": "POT-101-01",
              "sectionTitle": "Studio",
              "credits": 1.5,
              "fees": [{"fee": {"amount": 200}}, {"fee": {"amount": 50}}],
              "tutorials": [
                {"tutorial": {"daysOfTheWeek": "Monday, Thursday", "tutorialtime": "18:00 - 21:00", "startDate": "05-MAR-2025", "endDate": "12-MAR-2025", "tutor": "Ada"}}
              ]
            }}
          ]
        }},
        {"programInstance": {"id": "PI-2", "programInstanceTitle": "Pottery II"}}
      ]
    }}
  ]
}`

func TestHTTPFetcher_Fetch(t *testing.T) {
	var gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(catalogJSON))
	}))
	defer srv.Close()

	doc, err := NewHTTPFetcher(srv.Client(), 0).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotAccept)
	require.Len(t, doc.Programs, 1)

	prog := doc.Programs[0]
	assert.Equal(t, domain.FlexString("501"), prog.ID)
	assert.Equal(t, "Pottery", prog.Title)
	require.Len(t, prog.Instances, 2)

	inst := prog.Instances[0]
	assert.Equal(t, domain.FlexString("PI-1"), inst.ObjectID)
	assert.Equal(t, "POT-101-FALL25", inst.ProgramInstanceID)
	assert.Equal(t, "<p>Wheel basics</p>", inst.SummaryBrief)
	assert.Empty(t, inst.SummaryLong)
	assert.Equal(t, 250.0, inst.Fee)
	assert.Equal(t, 0, inst.PlacesLeft)
	assert.Equal(t, 3, inst.WaitlistPlacesLeft)
	assert.Equal(t, "CI_OPEN", inst.Status.Code)
	require.NotNil(t, inst.Group)
	assert.Equal(t, domain.Group{ID: "42", Code: "FALL25", Title: "Fall 2025"}, *inst.Group)
	assert.Same(t, prog, inst.Program)
	assert.Nil(t, inst.InstructionalMethod)

	require.Len(t, inst.Services, 2)
	assert.Equal(t, "01-OCT-2024", inst.Services[0].StartDate, "envelope dates win")
	assert.Equal(t, "31-OCT-2024", inst.Services[0].EndDate)
	assert.Empty(t, inst.Services[1].StartDate)

	require.Len(t, inst.Sections, 1)
	sec := inst.Sections[0]
	assert.Equal(t, domain.FlexString("9001"), sec.ObjectID)
	assert.Equal(t, "Studio", sec.Title)
	assert.Equal(t, []domain.Fee{{Amount: 200}, {Amount: 50}}, sec.Fees)
	require.Len(t, sec.Tutorials, 1)
	assert.Equal(t, "18:00 - 21:00", sec.Tutorials[0].TutorialTime)

	bare := prog.Instances[1]
	assert.Nil(t, bare.Group)
	assert.NotNil(t, bare.Services)
	assert.NotNil(t, bare.Sections)
}

func TestHTTPFetcher_FetchErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantFetch  bool
		wantParse  bool
		wantStatus int
	}{
		{name: "server error", status: http.StatusServiceUnavailable, body: "down", wantFetch: true, wantStatus: http.StatusServiceUnavailable},
		{name: "not found", status: http.StatusNotFound, wantFetch: true, wantStatus: http.StatusNotFound},
		{name: "malformed json", status: http.StatusOK, body: `{"programs": [`, wantParse: true},
		{name: "wrong shape", status: http.StatusOK, body: `{"programs": {"program": 1}}`, wantParse: true},
		{name: "missing programs", status: http.StatusOK, body: `{"items": []}`, wantParse: true},
		{name: "html page", status: http.StatusOK, body: `<html>maintenance</html>`, wantParse: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			doc, err := NewHTTPFetcher(srv.Client(), 0).Fetch(context.Background(), srv.URL)
			require.Error(t, err)
			assert.Nil(t, doc)
			assert.Equal(t, tt.wantFetch, errors.Is(err, domain.ErrFetch))
			assert.Equal(t, tt.wantParse, errors.Is(err, domain.ErrParse))
			if tt.wantStatus != 0 {
				var fe *domain.FetchError
				require.True(t, errors.As(err, &fe))
				assert.Equal(t, tt.wantStatus, fe.StatusCode)
				assert.Equal(t, srv.URL, fe.URL)
			}
		})
	}
}

func TestHTTPFetcher_EmptyCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"programs": []}`))
	}))
	defer srv.Close()

	doc, err := NewHTTPFetcher(srv.Client(), 0).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.NotNil(t, doc.Programs)
	assert.Empty(t, doc.Programs)
}

func TestHTTPFetcher_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewHTTPFetcher(nil, 50*time.Millisecond).Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFetch))
}

func TestHTTPFetcher_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPFetcher(nil, time.Second).Fetch(context.Background(), url)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFetch))

	_, err = NewHTTPFetcher(nil, time.Second).Fetch(context.Background(), "://bad")
	assert.True(t, errors.Is(err, domain.ErrFetch))
}
