package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/marcusvinicius1er/Reach-online/pkg/clients/airtable"
	"github.com/marcusvinicius1er/Reach-online/pkg/config"
	"github.com/marcusvinicius1er/Reach-online/pkg/models"
	"github.com/marcusvinicius1er/Reach-online/pkg/sanitize"
)

// SubmissionService defines the interface for forwarding sanitized leads
// to the upstream record store.
type SubmissionService interface {
	ProcessSubmission(ctx context.Context, record sanitize.Record) error
}

type submissionServiceImpl struct {
	airtableClient airtable.Client
	config         *config.Config
	log            *logrus.Logger
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(
	airtableClient airtable.Client,
	config *config.Config,
	log *logrus.Logger,
) SubmissionService {
	return &submissionServiceImpl{
		airtableClient: airtableClient,
		config:         config,
		log:            log,
	}
}

// Fixed mapping from form field names to Airtable column names. Optional
// columns are only sent when the lead filled them in.
var optionalColumns = map[string]string{
	models.FieldLocation:   "Location",
	models.FieldGoals:      "Goals",
	models.FieldSourcePage: "Source Page",
}

// ProcessSubmission builds the upstream record and sends it. One attempt,
// no retry: an upstream failure fails the whole request.
func (s *submissionServiceImpl) ProcessSubmission(ctx context.Context, record sanitize.Record) error {
	fields := map[string]interface{}{
		"Full Name":    record.Get(models.FieldFullName),
		"Email":        record.Get(models.FieldEmail),
		"WhatsApp":     record.Get(models.FieldWhatsApp),
		"Origin":       record.Origin(),
		"Submitted At": record.SubmittedAt(),
	}
	for field, column := range optionalColumns {
		if v := record.Get(field); v != "" {
			fields[column] = v
		}
	}

	if err := s.airtableClient.CreateRecord(ctx, s.config.AirtableTable, fields); err != nil {
		s.log.WithError(err).Error("Error creating Airtable record")
		return err
	}

	s.log.WithField("origin", record.Origin()).Info("Lead forwarded to Airtable")
	return nil
}
