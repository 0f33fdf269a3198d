package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"elevatecart/internal/domain"
)

// fetchLogTimeout bounds the audit write so a slow database cannot hold up a
// listing request.
const fetchLogTimeout = 2 * time.Second

type listingService struct {
	fetcher       domain.CatalogFetcher
	fetchLog      domain.FetchLogRepository
	logger        *slog.Logger
	now           func() time.Time
	recordTimeout time.Duration
}

// NewListingService creates a ListingService. fetchLog may be nil, in which
// case fetches are not recorded. now defaults to time.Now.
func NewListingService(
	fetcher domain.CatalogFetcher,
	fetchLog domain.FetchLogRepository,
	logger *slog.Logger,
	now func() time.Time,
) domain.ListingService {
	if now == nil {
		now = time.Now
	}
	return &listingService{
		fetcher:       fetcher,
		fetchLog:      fetchLog,
		logger:        logger,
		now:           now,
		recordTimeout: fetchLogTimeout,
	}
}

// ListGroups fetches the page's catalog once and builds one listing per
// configured group. A failed fetch is not returned as an error: every group of
// the page falls back to the no-courses message instead.
func (s *listingService) ListGroups(ctx context.Context, page *domain.PageConfig) ([]*domain.GroupListing, error) {
	if page == nil || page.EndpointURL == "" {
		return nil, domain.ErrInvalidInput
	}
	message := page.NoCoursesMessage
	if message == "" {
		message = domain.DefaultNoCoursesMessage
	}

	doc := s.fetch(ctx, page)
	now := s.now()

	listings := make([]*domain.GroupListing, 0, len(page.Groups))
	for _, sel := range page.Groups {
		listing := &domain.GroupListing{
			Selector:  sel,
			Instances: []*domain.InstanceView{},
		}
		instances := FilterByGroup(doc, sel.MatchMethod, sel.MatchValue)
		group, ok := GroupIdentity(instances)
		if !ok {
			listing.Message = message
			listings = append(listings, listing)
			continue
		}
		if err := CheckGroupIdentity(instances); err != nil {
			s.logger.WarnContext(ctx, "group members disagree on identity",
				"page", page.ID, "match_method", sel.MatchMethod, "match_value", sel.MatchValue, "err", err)
		}
		listing.Group = &group
		for _, inst := range instances {
			listing.Instances = append(listing.Instances, BuildInstanceView(inst, now))
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

// fetch returns nil when the catalog is unavailable; filtering nil yields no
// instances.
func (s *listingService) fetch(ctx context.Context, page *domain.PageConfig) *domain.CatalogDocument {
	start := time.Now()
	doc, err := s.fetcher.Fetch(ctx, page.EndpointURL)
	elapsed := time.Since(start)

	outcome := domain.FetchOutcomeOK
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrParse):
		outcome = domain.FetchOutcomeParseError
	default:
		outcome = domain.FetchOutcomeFetchError
	}
	if err != nil {
		s.logger.WarnContext(ctx, "catalog unavailable", "page", page.ID, "endpoint", page.EndpointURL, "outcome", outcome, "err", err)
		doc = nil
	}
	s.record(ctx, page, doc, outcome, elapsed, err)
	return doc
}

func (s *listingService) record(ctx context.Context, page *domain.PageConfig, doc *domain.CatalogDocument, outcome domain.FetchOutcome, elapsed time.Duration, fetchErr error) {
	if s.fetchLog == nil {
		return
	}
	entry := domain.NewFetchLog(page.ID, page.EndpointURL, outcome, elapsed, s.now())
	if fetchErr != nil {
		entry.Error = fetchErr.Error()
	}
	if doc != nil {
		entry.ProgramCount = len(doc.Programs)
		for _, p := range doc.Programs {
			if p != nil {
				entry.InstanceCount += len(p.Instances)
			}
		}
	}
	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.recordTimeout)
	defer cancel()
	if err := s.fetchLog.Create(recordCtx, entry); err != nil {
		s.logger.WarnContext(ctx, "record catalog fetch", "page", page.ID, "err", err)
	}
}

// BuildInstanceView evaluates one instance into its card view model.
func BuildInstanceView(inst *domain.ProgramInstance, now time.Time) *domain.InstanceView {
	state := Evaluate(inst, now)
	sections := make([]domain.SectionView, 0, len(inst.Sections))
	cartSections := make([]domain.Section, 0, len(inst.Sections))
	for _, sec := range inst.Sections {
		sections = append(sections, buildSectionView(sec))
		cartSections = append(cartSections, sec)
	}
	return &domain.InstanceView{
		ObjectID:            string(inst.ObjectID),
		Code:                inst.Code,
		ProgramInstanceID:   inst.ProgramInstanceID,
		Title:               inst.Title,
		SummaryBrief:        PlainText(inst.SummaryBrief),
		SummaryLong:         PlainText(inst.SummaryLong),
		Fee:                 inst.Fee,
		FriendlyFee:         FriendlyFee(inst),
		Credits:             inst.Credits,
		SectionCount:        len(inst.Sections),
		PlacesLeft:          inst.PlacesLeft,
		WaitlistPlacesLeft:  inst.WaitlistPlacesLeft,
		InstructionalMethod: InstructionalMethod(inst),
		Availability:        state,
		Action:              ActionFor(state),
		StatusMessage:       StatusMessage(inst, state),
		Sections:            sections,
		CartSections:        cartSections,
	}
}

func buildSectionView(sec domain.Section) domain.SectionView {
	total := FriendlySectionFeeTotal(sec)
	tutorials := DedupeTutorials(sec.Tutorials)
	views := make([]domain.TutorialView, 0, len(tutorials))
	for _, t := range tutorials {
		views = append(views, domain.TutorialView{
			DateRange:   FriendlyDateRange(t.StartDate, t.EndDate),
			Days:        FriendlyDaysOfWeek(t.DaysOfTheWeek),
			MeetingTime: FriendlyMeetingTime(t.TutorialTime),
			Tutor:       t.Tutor,
		})
	}
	return domain.SectionView{
		ObjectID:     string(sec.ObjectID),
		SectionID:    sec.SectionID,
		Title:        sec.Title,
		SummaryBrief: PlainText(sec.SummaryBrief),
		SummaryLong:  PlainText(sec.SummaryLong),
		Credits:      sec.Credits,
		FeeTotal:     total,
		FriendlyFee:  FormatCurrency(total),
		Tutorials:    views,
	}
}
