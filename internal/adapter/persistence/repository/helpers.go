package repository

import (
	"errors"
	"time"

	"supplyops/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

type noteItem struct {
	Text   string `dynamodbav:"text"`
	Author string `dynamodbav:"author,omitempty"`
	At     string `dynamodbav:"at"`
}

func toNoteItems(notes []entities.Note) []noteItem {
	if len(notes) == 0 {
		return nil
	}
	out := make([]noteItem, 0, len(notes))
	for _, n := range notes {
		out = append(out, noteItem{Text: n.Text, Author: n.Author, At: formatTime(n.At)})
	}
	return out
}

func fromNoteItems(items []noteItem) []entities.Note {
	if len(items) == 0 {
		return nil
	}
	out := make([]entities.Note, 0, len(items))
	for _, it := range items {
		out = append(out, entities.Note{Text: it.Text, Author: it.Author, At: parseTime(it.At)})
	}
	return out
}

func asConditionFailed(err error) (*types.ConditionalCheckFailedException, bool) {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return cfe, true
	}
	return nil, false
}

func asTransactionCanceled(err error) (*types.TransactionCanceledException, bool) {
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		return tce, true
	}
	return nil, false
}
