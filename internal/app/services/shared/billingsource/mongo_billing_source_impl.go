package billingsource

import (
	"context"
	"rips-service/internal/app/contracts"
	"rips-service/internal/app/models"
	"rips-service/internal/pkg/constvars"
	"rips-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type mongoBillingSource struct {
	Invoices *mongo.Collection
	Patients *mongo.Collection
	Services *mongo.Collection
	Entities *mongo.Collection
	Log      *zap.Logger
}

// NewMongoBillingSource reads invoices and what they reference from the
// billing database. The client must be built with the billing registry so
// amounts decode into decimals.
func NewMongoBillingSource(db *mongo.Client, dbName string, logger *zap.Logger) contracts.BillingSource {
	database := db.Database(dbName)
	return &mongoBillingSource{
		Invoices: database.Collection(constvars.MongoCollectionInvoices),
		Patients: database.Collection(constvars.MongoCollectionPatients),
		Services: database.Collection(constvars.MongoCollectionServices),
		Entities: database.Collection(constvars.MongoCollectionEntities),
		Log:      logger,
	}
}

func (s *mongoBillingSource) Load(ctx context.Context, filter models.BillingFilter) (*models.BillingBatch, error) {
	s.Log.Info("mongoBillingSource.Load called",
		zap.Time("from", filter.From),
		zap.Time("to", filter.To),
	)

	batch := &models.BillingBatch{}
	invoiceOptions := options.Find().SetSort(bson.D{{Key: "issueDate", Value: 1}, {Key: "prefix", Value: 1}, {Key: "number", Value: 1}})
	if err := findAll(ctx, s.Invoices, invoiceQuery(filter), &batch.Invoices, invoiceOptions); err != nil {
		s.Log.Error("mongoBillingSource.Load error finding invoices", zap.Error(err))
		return nil, err
	}
	if len(batch.Invoices) == 0 {
		return batch, nil
	}

	invoiceIDs, entityIDs, patientIDs := invoiceReferences(batch.Invoices)
	serviceQuery := bson.M{"invoiceId": bson.M{"$in": invoiceIDs.ids}}
	if err := findAll(ctx, s.Services, serviceQuery, &batch.Services, options.Find().SetSort(bson.D{{Key: "date", Value: 1}})); err != nil {
		s.Log.Error("mongoBillingSource.Load error finding services", zap.Error(err))
		return nil, err
	}
	for _, service := range batch.Services {
		patientIDs.add(service.PatientID)
	}

	if err := findAll(ctx, s.Patients, bson.M{"_id": bson.M{"$in": patientIDs.ids}}, &batch.Patients); err != nil {
		s.Log.Error("mongoBillingSource.Load error finding patients", zap.Error(err))
		return nil, err
	}
	for i := range batch.Patients {
		batch.Patients[i].DocumentType = models.NormalizeDocumentType(batch.Patients[i].DocumentType)
	}
	if err := findAll(ctx, s.Entities, bson.M{"_id": bson.M{"$in": entityIDs.ids}}, &batch.Entities); err != nil {
		s.Log.Error("mongoBillingSource.Load error finding entities", zap.Error(err))
		return nil, err
	}

	s.Log.Info("mongoBillingSource.Load succeeded",
		zap.Int(constvars.LoggingInvoiceCountKey, len(batch.Invoices)),
	)
	return batch, nil
}

// invoiceQuery matches issue dates inside the filter's calendar days.
func invoiceQuery(filter models.BillingFilter) bson.M {
	issueDate := bson.M{}
	if !filter.From.IsZero() {
		issueDate["$gte"] = filter.From
	}
	if !filter.To.IsZero() {
		issueDate["$lt"] = filter.To.Add(24 * time.Hour)
	}
	if len(issueDate) == 0 {
		return bson.M{}
	}
	return bson.M{"issueDate": issueDate}
}

func invoiceReferences(invoices []models.Invoice) (invoiceIDs, entityIDs, patientIDs *idSet) {
	invoiceIDs, entityIDs, patientIDs = newIDSet(), newIDSet(), newIDSet()
	for _, invoice := range invoices {
		invoiceIDs.add(invoice.ID)
		entityIDs.add(invoice.EntityID)
		for _, patientID := range invoice.PatientIDs {
			patientIDs.add(patientID)
		}
	}
	return invoiceIDs, entityIDs, patientIDs
}

// idSet keeps insertion order so queries are deterministic. ids is never
// nil because $in rejects null.
type idSet struct {
	ids  []primitive.ObjectID
	seen map[primitive.ObjectID]struct{}
}

func newIDSet() *idSet {
	return &idSet{
		ids:  []primitive.ObjectID{},
		seen: make(map[primitive.ObjectID]struct{}),
	}
}

func (s *idSet) add(id primitive.ObjectID) {
	if id.IsZero() {
		return
	}
	if _, ok := s.seen[id]; ok {
		return
	}
	s.seen[id] = struct{}{}
	s.ids = append(s.ids, id)
}

func findAll(ctx context.Context, collection *mongo.Collection, query interface{}, results interface{}, opts ...*options.FindOptions) error {
	cursor, err := collection.Find(ctx, query, opts...)
	if err != nil {
		return exceptions.ErrMongoDBFindDocuments(err, collection.Name())
	}
	if err := cursor.All(ctx, results); err != nil {
		return exceptions.ErrMongoDBIterateDocuments(err, collection.Name())
	}
	return nil
}
