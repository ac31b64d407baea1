package source

import (
	"context"

	"github.com/jsphweid/pianoroll/db"
	"github.com/jsphweid/pianoroll/model"
)

// Dynamo reads the Notes attribute of one DynamoDB item.
type Dynamo struct {
	Endpoint string
	Region   string
	Table    string
	Key      string
}

func (d *Dynamo) Load(ctx context.Context) (model.NoteSequence, error) {
	client, err := db.NewClient(d.Endpoint, d.Region)
	if err != nil {
		return nil, unavailable(err, "could not create DynamoDB session")
	}
	raw, err := db.GetNotes(ctx, client, d.Table, d.Key)
	if err != nil {
		return nil, unavailable(err, "could not read notes from DynamoDB")
	}
	return toSequence(raw), nil
}
