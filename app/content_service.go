package app

import (
	"fmt"

	"gotrial/domain/condition"
	"gotrial/domain/stimuli"
	"gotrial/models"
	"gotrial/summarize"
)

// ContentService resolves which rendition of a round's material a participant
// sees. Everything here is a pure function of the participant's assignment
// and the test slug, so a page refresh always reproduces the same content.
type ContentService struct {
	engine *condition.Engine
}

func NewContentService(engine *condition.Engine) *ContentService {
	return &ContentService{engine: engine}
}

// ContentFor builds the payload for one round.
func (s *ContentService) ContentFor(participant *models.Participant, slug condition.TestSlug) (*models.ContentPayload, error) {
	source, err := s.engine.ResolveSource(slug, participant.AssignedSourceOrder)
	if err != nil {
		return nil, err
	}

	payload := &models.ContentPayload{
		Slug:   slug,
		Source: source,
		Length: participant.AssignedLength,
	}

	// The practice round is a fixed warm-up and skips the length filter.
	if slug == condition.SlugPractice {
		payload.Original = stimuli.PracticeData
		return payload, nil
	}

	switch slug {
	case condition.SlugPushNotifications:
		return fillContent(payload, stimuli.NotificationsData, stimuli.NotificationsAISummary, func(items []stimuli.NotificationItem) interface{} {
			return summarize.Notifications(items)
		})
	case condition.SlugEmailInbox:
		return fillContent(payload, stimuli.EmailsData, stimuli.EmailsAISummary, func(items []stimuli.EmailItem) interface{} {
			return summarize.Emails(items)
		})
	case condition.SlugMeetingTranscription:
		return fillContent(payload, stimuli.TranscriptData, stimuli.TranscriptsAISummary, func(items []stimuli.TranscriptItem) interface{} {
			return summarize.Transcripts(items)
		})
	case condition.SlugPresentationSlide:
		return fillContent(payload, stimuli.SlidesData, stimuli.SlidesAISummary, func(items []stimuli.SlideItem) interface{} {
			return summarize.Slides(items)
		})
	case condition.SlugProductListing:
		return fillContent(payload, stimuli.ProductsData, stimuli.ProductsAISummary, func(items []stimuli.ProductItem) interface{} {
			return summarize.Products(items)
		})
	case condition.SlugSearchEngine:
		return fillContent(payload, stimuli.SearchData, stimuli.SearchAISummaryData, func(items []stimuli.SearchResultItem) interface{} {
			return summarize.SearchResults(items)
		})
	default:
		return nil, fmt.Errorf("no content registered for test %q", slug)
	}
}

// fillContent applies the length filter and selects the rendition for one corpus.
func fillContent[T stimuli.Flagged](payload *models.ContentPayload, items []T, aiSummary interface{}, digest func([]T) interface{}) (*models.ContentPayload, error) {
	filtered, err := stimuli.FilterByLength(items, payload.Length)
	if err != nil {
		return nil, err
	}

	switch payload.Source {
	case condition.SourceOriginal:
		payload.Original = filtered
	case condition.SourceAI:
		payload.AISummary = aiSummary
	case condition.SourceProgrammatic:
		payload.Digest = digest(filtered)
	default:
		return nil, fmt.Errorf("unknown content source %q", payload.Source)
	}

	return payload, nil
}
