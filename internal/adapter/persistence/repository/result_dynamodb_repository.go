package repository

import (
	"context"
	"errors"
	"time"

	"photostock/internal/domain/entities"
	"photostock/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultResultsTableName = "results"

// batchGetLimit is the DynamoDB BatchGetItem cap.
const batchGetLimit = 100

type resultItem struct {
	InvNumber       string `dynamodbav:"invNumber"`
	Total           string `dynamodbav:"total"`
	OriginalContent string `dynamodbav:"originalContent"`
	NasLocation     string `dynamodbav:"nasLocation"`
	ImagePath       string `dynamodbav:"imagePath"`
	Status          string `dynamodbav:"status"`
	CreatedAt       string `dynamodbav:"created_at"`
}

// ResultDynamoRepository persists Result entities in DynamoDB.
//
// Table requirements:
//   - PK: invNumber (string)
//
// invNumber is the catalog's natural key; the conditional put makes the
// duplicate check authoritative even if the analyze-time check raced.

type ResultDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IResultRepository = (*ResultDynamoRepository)(nil)

func NewResultDynamoRepository(ddb *dynamodb.Client) *ResultDynamoRepository {
	return &ResultDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RESULTS_TABLE", defaultResultsTableName),
	}
}

// TableName reports the configured table, for bootstrap-time setup.
func (r *ResultDynamoRepository) TableName() string {
	return r.tableName
}

func (r *ResultDynamoRepository) Save(ctx context.Context, res entities.Result) (entities.Result, error) {
	it := toResultItem(res)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Result{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#inv)"),
		ExpressionAttributeNames: map[string]string{
			"#inv": "invNumber",
		},
	})
	if err != nil {
		return entities.Result{}, err
	}
	return res, nil
}

func (r *ResultDynamoRepository) GetByInvNumber(ctx context.Context, invNumber string) (entities.Result, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"invNumber": &types.AttributeValueMemberS{Value: invNumber},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Result{}, err
	}
	if len(out.Item) == 0 {
		return entities.Result{}, nil
	}

	var it resultItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Result{}, err
	}
	return fromResultItem(it), nil
}

// FindAll scans the whole table. The catalog stays in the low thousands
// of records, so the scan snapshot is the search/ranking input.
func (r *ResultDynamoRepository) FindAll(ctx context.Context) ([]entities.Result, error) {
	var results []entities.Result
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []resultItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			results = append(results, fromResultItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return results, nil
}

// FindExisting returns the subset of invNumbers already stored, the
// BatchGetItem equivalent of the SQL IN duplicate check.
func (r *ResultDynamoRepository) FindExisting(ctx context.Context, invNumbers []string) ([]string, error) {
	unique := make([]string, 0, len(invNumbers))
	seen := make(map[string]bool, len(invNumbers))
	for _, inv := range invNumbers {
		if inv == "" || seen[inv] {
			continue
		}
		seen[inv] = true
		unique = append(unique, inv)
	}

	var existing []string
	for start := 0; start < len(unique); start += batchGetLimit {
		end := start + batchGetLimit
		if end > len(unique) {
			end = len(unique)
		}

		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, inv := range unique[start:end] {
			keys = append(keys, map[string]types.AttributeValue{
				"invNumber": &types.AttributeValueMemberS{Value: inv},
			})
		}

		request := map[string]types.KeysAndAttributes{
			r.tableName: {
				Keys:                 keys,
				ProjectionExpression: aws.String("invNumber"),
			},
		}
		for len(request) > 0 {
			out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
				RequestItems: request,
			})
			if err != nil {
				return nil, err
			}
			for _, item := range out.Responses[r.tableName] {
				var it resultItem
				if err := attributevalue.UnmarshalMap(item, &it); err != nil {
					return nil, err
				}
				existing = append(existing, it.InvNumber)
			}
			request = out.UnprocessedKeys
		}
	}
	return existing, nil
}

func (r *ResultDynamoRepository) UpdateStatus(ctx context.Context, invNumber string, status entities.Status) (entities.Result, error) {
	return r.update(ctx, invNumber, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status"
		vals := map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
		names := map[string]string{
			"#status": "status",
		}
		return expr, vals, names
	})
}

func (r *ResultDynamoRepository) UpdateImagePath(ctx context.Context, invNumber, imagePath string) (entities.Result, error) {
	return r.update(ctx, invNumber, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #imagePath = :imagePath"
		vals := map[string]types.AttributeValue{
			":imagePath": &types.AttributeValueMemberS{Value: imagePath},
		}
		names := map[string]string{
			"#imagePath": "imagePath",
		}
		return expr, vals, names
	})
}

func (r *ResultDynamoRepository) Delete(ctx context.Context, invNumber string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"invNumber": &types.AttributeValueMemberS{Value: invNumber},
		},
	})
	return err
}

func (r *ResultDynamoRepository) update(
	ctx context.Context,
	invNumber string,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Result, error) {
	updateExpr, values, names := build()

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"invNumber": &types.AttributeValueMemberS{Value: invNumber},
		},
		ConditionExpression:       aws.String("attribute_exists(#inv)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#inv": "invNumber"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Result{}, nil
		}
		return entities.Result{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Result{}, nil
	}
	var it resultItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Result{}, err
	}
	return fromResultItem(it), nil
}

func toResultItem(r entities.Result) resultItem {
	return resultItem{
		InvNumber:       r.InvNumber,
		Total:           r.Total,
		OriginalContent: r.OriginalContent,
		NasLocation:     r.NasLocation,
		ImagePath:       r.ImagePath,
		Status:          string(r.Status),
		CreatedAt:       r.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromResultItem(it resultItem) entities.Result {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Result{
		InvNumber:       it.InvNumber,
		Total:           it.Total,
		OriginalContent: it.OriginalContent,
		NasLocation:     it.NasLocation,
		ImagePath:       it.ImagePath,
		Status:          entities.Status(it.Status),
		CreatedAt:       createdAt,
	}
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
