package excel

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"gotrial/models"
	"gotrial/ports"

	"github.com/xuri/excelize/v2"
)

// Exporter writes the collected data as a multi-sheet workbook for offline
// analysis in SPSS or R.
type Exporter struct {
	participants   ports.ParticipantRepository
	questionnaires ports.QuestionnaireResponseRepository
	testResponses  ports.TestResponseRepository
}

func NewExporter(participants ports.ParticipantRepository, questionnaires ports.QuestionnaireResponseRepository, testResponses ports.TestResponseRepository) *Exporter {
	return &Exporter{
		participants:   participants,
		questionnaires: questionnaires,
		testResponses:  testResponses,
	}
}

// WriteTo streams the workbook to w.
func (e *Exporter) WriteTo(ctx context.Context, w io.Writer) error {
	f, err := e.build(ctx)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// SaveAs writes the workbook to a file path.
func (e *Exporter) SaveAs(ctx context.Context, path string) error {
	f, err := e.build(ctx)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func (e *Exporter) build(ctx context.Context) (*excelize.File, error) {
	participants, err := e.participants.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}
	questionnaires, err := e.questionnaires.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load questionnaire responses: %w", err)
	}
	testResponses, err := e.testResponses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load test responses: %w", err)
	}

	f := excelize.NewFile()

	if err := writeSheet(f, "Participants",
		[]string{"id", "assigned_length", "assigned_source_order", "age", "is_pilot", "is_controlled", "is_mobile", "created_at"},
		participantRows(participants)); err != nil {
		return nil, err
	}

	if err := writeSheet(f, "QuestionnaireResponses",
		[]string{"participant_id", "questionnaire_type", "question_id", "response_value", "created_at"},
		questionnaireRows(questionnaires)); err != nil {
		return nil, err
	}

	if err := writeSheet(f, "TestResponses",
		[]string{"participant_id", "test_slug", "question_id", "response_value", "reaction_time_ms", "content_source", "content_length", "created_at"},
		testResponseRows(testResponses)); err != nil {
		return nil, err
	}

	// Drop the default sheet so Participants opens first.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	f.SetActiveSheet(0)

	return f, nil
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]string) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for r, row := range rows {
		rowIdx := r + 2
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, rowIdx)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return nil
}

func participantRows(participants []models.Participant) [][]string {
	rows := make([][]string, 0, len(participants))
	for _, p := range participants {
		rows = append(rows, []string{
			string(p.ID),
			string(p.AssignedLength),
			strconv.Itoa(p.AssignedSourceOrder),
			strconv.Itoa(p.Age),
			strconv.FormatBool(p.IsPilot),
			strconv.FormatBool(p.IsControlled),
			strconv.FormatBool(p.IsMobile),
			p.CreatedAt.Format(time.RFC3339),
		})
	}
	return rows
}

func questionnaireRows(responses []models.QuestionnaireResponse) [][]string {
	rows := make([][]string, 0, len(responses))
	for _, r := range responses {
		rows = append(rows, []string{
			string(r.ParticipantID),
			string(r.QuestionnaireType),
			r.QuestionID,
			strconv.Itoa(r.ResponseValue),
			r.CreatedAt.Format(time.RFC3339),
		})
	}
	return rows
}

func testResponseRows(responses []models.TestResponse) [][]string {
	rows := make([][]string, 0, len(responses))
	for _, r := range responses {
		rows = append(rows, []string{
			string(r.ParticipantID),
			string(r.TestSlug),
			r.QuestionID,
			r.ResponseValue,
			strconv.Itoa(r.ReactionTimeMs),
			string(r.ContentSource),
			string(r.ContentLength),
			r.CreatedAt.Format(time.RFC3339),
		})
	}
	return rows
}
