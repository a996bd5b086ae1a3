package repository

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"checkmaster/internal/domain/entities"
	"checkmaster/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	seededFlag      = "seeded"
	templateCounter = "next_template_position"
	orderCounter    = "next_order_seq"
)

type templateItem struct {
	ID        string `dynamodbav:"id"`
	Position  int64  `dynamodbav:"position"`
	Name      string `dynamodbav:"name"`
	Body      string `dynamodbav:"body"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type orderItem struct {
	ID         string `dynamodbav:"id"`
	Seq        int64  `dynamodbav:"seq"`
	TemplateID string `dynamodbav:"template_id"`
	ClientName string `dynamodbav:"client_name"`
	TotalValue string `dynamodbav:"total_value"`
	Date       string `dynamodbav:"date"`
	Body       string `dynamodbav:"body"`
}

// TemplateDynamoStore keeps templates and the order log in DynamoDB.
//
// Table requirements:
//   - templates table, PK: id (string). Also holds the "#meta" item with the
//     seeded flag and the position/sequence counters.
//   - orders table, PK: id (string)
//
// Collection order comes from the position and seq attributes, assigned from
// atomic counters.

type TemplateDynamoStore struct {
	ddb            DynamoAPI
	templatesTable string
	ordersTable    string
}

var _ interfaces.ITemplateStore = (*TemplateDynamoStore)(nil)

func NewTemplateDynamoStore(ddb DynamoAPI, templatesTable, ordersTable string) *TemplateDynamoStore {
	return &TemplateDynamoStore{
		ddb:            ddb,
		templatesTable: templatesTable,
		ordersTable:    ordersTable,
	}
}

func (r *TemplateDynamoStore) LoadTemplates(ctx context.Context) ([]entities.ChecklistTemplate, error) {
	if err := r.ensureSeeded(ctx); err != nil {
		return nil, interfaces.NewStoreError("seed", "templates", "", err)
	}
	items, err := r.templateItems(ctx)
	if err != nil {
		return nil, interfaces.NewStoreError("load", "templates", "", err)
	}
	out := make([]entities.ChecklistTemplate, 0, len(items))
	for _, it := range items {
		var t entities.ChecklistTemplate
		if err := json.Unmarshal([]byte(it.Body), &t); err != nil {
			return nil, interfaces.NewStoreError("decode", "template", it.ID, err)
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *TemplateDynamoStore) SaveTemplate(ctx context.Context, t entities.ChecklistTemplate) error {
	if err := r.ensureSeeded(ctx); err != nil {
		return interfaces.NewStoreError("seed", "templates", "", err)
	}
	if err := r.putTemplate(ctx, t); err != nil {
		return interfaces.NewStoreError("save", "template", t.ID, err)
	}
	return nil
}

func (r *TemplateDynamoStore) LoadOrders(ctx context.Context) ([]entities.ServiceOrder, error) {
	raw, err := scanAll(ctx, r.ddb, r.ordersTable)
	if err != nil {
		return nil, interfaces.NewStoreError("load", "orders", "", err)
	}
	items := make([]orderItem, 0, len(raw))
	for _, av := range raw {
		var it orderItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, interfaces.NewStoreError("decode", "orders", "", err)
		}
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Seq < items[j].Seq })

	out := make([]entities.ServiceOrder, 0, len(items))
	for _, it := range items {
		var o entities.ServiceOrder
		if err := json.Unmarshal([]byte(it.Body), &o); err != nil {
			return nil, interfaces.NewStoreError("decode", "order", it.ID, err)
		}
		out = append(out, o)
	}
	return out, nil
}

// AppendOrder writes o with the next log sequence number. An id already in
// the log is rejected.
func (r *TemplateDynamoStore) AppendOrder(ctx context.Context, o entities.ServiceOrder) error {
	body, err := json.Marshal(o)
	if err != nil {
		return interfaces.NewStoreError("encode", "order", o.ID, err)
	}
	seq, err := nextCounter(ctx, r.ddb, r.templatesTable, orderCounter)
	if err != nil {
		return interfaces.NewStoreError("append", "order", o.ID, err)
	}
	av, err := attributevalue.MarshalMap(orderItem{
		ID:         o.ID,
		Seq:        seq,
		TemplateID: o.TemplateID,
		ClientName: o.ClientName,
		TotalValue: o.TotalValue.String(),
		Date:       o.Date.UTC().Format(time.RFC3339Nano),
		Body:       string(body),
	})
	if err != nil {
		return interfaces.NewStoreError("encode", "order", o.ID, err)
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.ordersTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return interfaces.NewStoreError("append", "order", o.ID, err)
	}
	return nil
}

// ensureSeeded writes the presets on the first read of a store that has no
// templates. The seeded flag on the meta item is set only once every preset
// is stored, so a failed attempt is resumed by the next call. Until the flag
// exists SaveTemplate cannot have succeeded, so any template already present
// is a preset left by an interrupted attempt, unless its id is not a preset
// id (data written before the flag existed).
func (r *TemplateDynamoStore) ensureSeeded(ctx context.Context) error {
	done, err := r.seeded(ctx)
	if err != nil || done {
		return err
	}
	items, err := r.templateItems(ctx)
	if err != nil {
		return err
	}
	existing := make(map[string]bool, len(items))
	for _, it := range items {
		existing[it.ID] = true
	}

	presets := entities.DefaultTemplates()
	if !onlyPresets(existing, presets) {
		_, err := markOnce(ctx, r.ddb, r.templatesTable, seededFlag)
		return err
	}
	for _, t := range presets {
		if existing[t.ID] {
			continue
		}
		if err := r.putTemplate(ctx, t); err != nil {
			return err
		}
	}
	_, err = markOnce(ctx, r.ddb, r.templatesTable, seededFlag)
	return err
}

func (r *TemplateDynamoStore) seeded(ctx context.Context) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.templatesTable),
		Key:            idKey(metaID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	_, ok := out.Item[seededFlag]
	return ok, nil
}

func onlyPresets(existing map[string]bool, presets []entities.ChecklistTemplate) bool {
	ids := make(map[string]bool, len(presets))
	for _, t := range presets {
		ids[t.ID] = true
	}
	for id := range existing {
		if !ids[id] {
			return false
		}
	}
	return true
}

// putTemplate upserts t, keeping the position of an existing entry.
func (r *TemplateDynamoStore) putTemplate(ctx context.Context, t entities.ChecklistTemplate) error {
	body, err := json.Marshal(t)
	if err != nil {
		return err
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.templatesTable),
		Key:            idKey(t.ID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return err
	}
	var position int64
	if len(out.Item) > 0 {
		var existing templateItem
		if err := attributevalue.UnmarshalMap(out.Item, &existing); err != nil {
			return err
		}
		position = existing.Position
	} else {
		position, err = nextCounter(ctx, r.ddb, r.templatesTable, templateCounter)
		if err != nil {
			return err
		}
	}

	av, err := attributevalue.MarshalMap(templateItem{
		ID:        t.ID,
		Position:  position,
		Name:      t.Name,
		Body:      string(body),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.templatesTable),
		Item:      av,
	})
	return err
}

func (r *TemplateDynamoStore) templateItems(ctx context.Context) ([]templateItem, error) {
	raw, err := scanAll(ctx, r.ddb, r.templatesTable)
	if err != nil {
		return nil, err
	}
	items := make([]templateItem, 0, len(raw))
	for _, av := range raw {
		var it templateItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		if it.ID == metaID {
			continue
		}
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Position < items[j].Position })
	return items, nil
}
