package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/careerlounge/consultancy-api/internal/core/domain"
)

const leadsCollection = "leads"

// LeadRepository implements ports.LeadRepository on MongoDB.
type LeadRepository struct {
	coll *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) *LeadRepository {
	return &LeadRepository{coll: db.Collection(leadsCollection)}
}

type mongoLead struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone"`
	Service   string             `bson:"service"`
	Message   string             `bson:"message,omitempty"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (ml *mongoLead) toDomain() *domain.Lead {
	return &domain.Lead{
		ID:        ml.ID.Hex(),
		Name:      ml.Name,
		Email:     ml.Email,
		Phone:     ml.Phone,
		Service:   ml.Service,
		Message:   ml.Message,
		Status:    domain.LeadStatus(ml.Status),
		CreatedAt: ml.CreatedAt.UTC(),
		UpdatedAt: ml.UpdatedAt.UTC(),
	}
}

func (r *LeadRepository) Create(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	doc := mongoLead{
		Name:      lead.Name,
		Email:     lead.Email,
		Phone:     lead.Phone,
		Service:   lead.Service,
		Message:   lead.Message,
		Status:    string(lead.Status),
		CreatedAt: lead.CreatedAt.UTC(),
		UpdatedAt: lead.UpdatedAt.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert lead: %w", err)
	}

	created := *lead
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *LeadRepository) List(ctx context.Context) ([]*domain.Lead, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer cur.Close(ctx)

	leads := make([]*domain.Lead, 0)
	for cur.Next(ctx) {
		var ml mongoLead
		if err := cur.Decode(&ml); err != nil {
			return nil, fmt.Errorf("decode lead: %w", err)
		}
		leads = append(leads, ml.toDomain())
	}
	return leads, cur.Err()
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id string, status domain.LeadStatus) (*domain.Lead, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrLeadNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var ml mongoLead
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&ml); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLeadNotFound
		}
		return nil, fmt.Errorf("update lead status: %w", err)
	}
	return ml.toDomain(), nil
}
