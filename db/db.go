package db

import (
	"context"
	"fmt"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"

	"github.com/jsphweid/pianoroll/errs"
	"github.com/jsphweid/pianoroll/model"
)

const DefaultEndpoint = "http://localhost:8000"
const DefaultRegion = "localhost"
const DefaultTable = "pianoroll-notes"

func NewClient(endpoint, region string) (dynamodbiface.DynamoDBAPI, error) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if region == "" {
		region = DefaultRegion
	}
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(region),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return nil, fault.Wrap(err, fmsg.With("could not create a new DynamoDB session"))
	}
	return dynamodb.New(sess), nil
}

// GetNotes reads the Notes list of the item whose PK is key.
func GetNotes(ctx context.Context, client dynamodbiface.DynamoDBAPI, table, key string) ([]model.RawNote, error) {
	if table == "" {
		table = DefaultTable
	}
	out, err := client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(key)},
		},
	})
	if err != nil {
		return nil, fault.Wrap(err, fmsg.With("error from DynamoDB"))
	}
	if len(out.Item) == 0 {
		return nil, fault.Wrap(fault.New(fmt.Sprintf("no item %q in %s", key, table)), ftag.With(errs.NotFound))
	}

	notes, ok := out.Item["Notes"]
	if !ok {
		return nil, fault.Wrap(fault.New(fmt.Sprintf("item %q has no Notes attribute", key)), ftag.With(errs.NotFound))
	}

	var res []model.RawNote
	if err := dynamodbattribute.Unmarshal(notes, &res); err != nil {
		return nil, fault.Wrap(err, fmsg.With("could not decode Notes attribute"))
	}
	return res, nil
}

// PutNotes stores a sequence under key, used to seed a table from another
// source.
func PutNotes(ctx context.Context, client dynamodbiface.DynamoDBAPI, table, key string, notes []model.RawNote) error {
	if table == "" {
		table = DefaultTable
	}
	av, err := dynamodbattribute.Marshal(notes)
	if err != nil {
		return fault.Wrap(err, fmsg.With("could not encode notes"))
	}
	_, err = client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item: map[string]*dynamodb.AttributeValue{
			"PK":    {S: aws.String(key)},
			"Notes": av,
		},
	})
	if err != nil {
		return fault.Wrap(err, fmsg.With("error from DynamoDB"))
	}
	return nil
}
